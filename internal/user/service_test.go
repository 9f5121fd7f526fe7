package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lucasmoraes-dev/habitflow/internal/user"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*user.User{}}
}

func (f *fakeUserRepo) Create(u *user.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*user.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(newFakeUserRepo())

	signup := user.SignupRequest{Email: "ana@example.com", Password: "secret123", Name: "Ana"}

	created, err := svc.Signup(ctx, signup)
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if created.Email != signup.Email {
		t.Errorf("Expected email %s, got %s", signup.Email, created.Email)
	}

	t.Run("LoginWithSameCredentials", func(t *testing.T) {
		logged, err := svc.Login(ctx, user.LoginRequest{Email: signup.Email, Password: signup.Password})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if logged.ID != created.ID {
			t.Errorf("Expected user %s, got %s", created.ID, logged.ID)
		}
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		_, err := svc.Signup(ctx, user.SignupRequest{Email: signup.Email, Password: "other-password", Name: "Other"})
		if !errors.Is(err, user.ErrEmailTaken) {
			t.Fatalf("Expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("WrongPasswordRejected", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginRequest{Email: signup.Email, Password: "wrong"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("UnknownEmailRejected", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}
