package auth_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/lucasmoraes-dev/habitflow/internal/auth"
)

func gateRequest(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	auth.PageGate(next).ServeHTTP(rec, req)
	return rec
}

func TestPageGate(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	validToken, err := auth.GenerateJWT(testUserID, testEmail, time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	t.Run("AnonymousProtectedPathRedirectsToLogin", func(t *testing.T) {
		rec := gateRequest(t, "/dashboard", "")
		if rec.Code != http.StatusTemporaryRedirect {
			t.Fatalf("Expected redirect, got status %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("Expected redirect to /login, got %s", loc)
		}
	})

	t.Run("AnonymousPublicPathPasses", func(t *testing.T) {
		rec := gateRequest(t, "/login", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
	})

	t.Run("AuthenticatedLoginRedirectsToDashboard", func(t *testing.T) {
		rec := gateRequest(t, "/login", validToken)
		if rec.Code != http.StatusTemporaryRedirect {
			t.Fatalf("Expected redirect, got status %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/dashboard" {
			t.Errorf("Expected redirect to /dashboard, got %s", loc)
		}
	})

	t.Run("AuthenticatedProtectedPathPasses", func(t *testing.T) {
		rec := gateRequest(t, "/habits", validToken)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
	})

	t.Run("ExpiredTokenClearedAndRedirected", func(t *testing.T) {
		expired, err := auth.GenerateJWT(testUserID, testEmail, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		rec := gateRequest(t, "/dashboard", expired)
		if rec.Code != http.StatusTemporaryRedirect {
			t.Fatalf("Expected redirect, got status %d", rec.Code)
		}

		cleared := false
		for _, c := range rec.Result().Cookies() {
			if c.Name == auth.CookieName && c.MaxAge < 0 {
				cleared = true
			}
		}
		if !cleared {
			t.Error("Expected the invalid cookie to be cleared")
		}
	})
}
