package util_test

import (
	"testing"
	"time"

	util "github.com/lucasmoraes-dev/habitflow/internal/utils"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	late := time.Date(2025, 3, 9, 23, 30, 0, 0, loc) // 02:30 UTC on March 10

	got := util.StartOfDay(late)
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestParseDay(t *testing.T) {
	t.Run("PlainDay", func(t *testing.T) {
		got, err := util.ParseDay("2025-03-10")
		if err != nil {
			t.Fatalf("ParseDay failed: %v", err)
		}
		if util.DayString(got) != "2025-03-10" {
			t.Errorf("ParseDay = %v", got)
		}
	})

	t.Run("RFC3339", func(t *testing.T) {
		got, err := util.ParseDay("2025-03-10T18:45:00Z")
		if err != nil {
			t.Fatalf("ParseDay failed: %v", err)
		}
		want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("ParseDay = %v, want %v", got, want)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := util.ParseDay("not-a-date"); err == nil {
			t.Fatal("ParseDay should reject garbage input")
		}
	})
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	if !util.SameDay(a, b) {
		t.Error("Expected a and b to share a day")
	}
	if util.SameDay(a, c) {
		t.Error("Expected a and c to differ")
	}
}
