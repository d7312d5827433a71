package service

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/foodtour/foodtour-backend-go/internal/database"
	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewAuthService(repository.NewUserRepository(db), "test-secret")
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	reg, err := svc.Register(models.RegisterInput{
		Email:       "Demo@Example.COM",
		Password:    "long-enough-pass",
		DisplayName: "Demo",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.Token == "" {
		t.Error("register returned empty token")
	}
	if reg.User.Email != "demo@example.com" {
		t.Errorf("email = %q, want lowercased", reg.User.Email)
	}
	if reg.User.Role != models.RoleUser {
		t.Errorf("role = %q, want user", reg.User.Role)
	}

	// Login works regardless of email casing.
	login, err := svc.Login(models.LoginInput{Email: "demo@example.com", Password: "long-enough-pass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login user = %s, want %s", login.User.ID, reg.User.ID)
	}

	_, err = svc.Login(models.LoginInput{Email: "demo@example.com", Password: "wrong-password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(models.LoginInput{Email: "nobody@example.com", Password: "whatever-pass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)

	tests := []struct {
		name  string
		input models.RegisterInput
		want  error
	}{
		{"bad email", models.RegisterInput{Email: "not-an-email", Password: "long-enough-pass", DisplayName: "X"}, ErrValidation},
		{"short password", models.RegisterInput{Email: "a@b.c", Password: "short", DisplayName: "X"}, ErrValidation},
		{"admin role refused", models.RegisterInput{Email: "a@b.c", Password: "long-enough-pass", DisplayName: "X", Role: "admin"}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	input := models.RegisterInput{Email: "dup@example.com", Password: "long-enough-pass", DisplayName: "First"}
	if _, err := svc.Register(input); err != nil {
		t.Fatalf("first register: %v", err)
	}

	input.DisplayName = "Second"
	if _, err := svc.Register(input); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterOwnerRole(t *testing.T) {
	svc := newAuthService(t)

	reg, err := svc.Register(models.RegisterInput{
		Email:       "owner@example.com",
		Password:    "long-enough-pass",
		DisplayName: "Owner",
		Role:        models.RoleOwner,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.User.Role != models.RoleOwner {
		t.Errorf("role = %q, want owner", reg.User.Role)
	}

	got, err := svc.GetUser(reg.User.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "owner@example.com" {
		t.Errorf("GetUser email = %q", got.Email)
	}

	if _, err := svc.GetUser("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing user err = %v, want ErrNotFound", err)
	}
}
