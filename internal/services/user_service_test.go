package services

import (
	"errors"
	"testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	s := NewUserService(testDB(t))

	user, err := s.Register("Ada", "Ada@Example.com ", "correct horse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Errorf("expected a generated user ID")
	}
	if user.Email != "ada@example.com" {
		t.Errorf("email = %q, want lowercased/trimmed", user.Email)
	}
	if user.PasswordHash == "correct horse" {
		t.Errorf("password stored in clear")
	}

	got, err := s.Authenticate("ADA@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated wrong user")
	}
}

func TestRegisterValidation(t *testing.T) {
	s := NewUserService(testDB(t))

	if _, err := s.Register("", "", "correct horse"); !errors.Is(err, ErrEmailRequired) {
		t.Errorf("missing email: err = %v", err)
	}
	if _, err := s.Register("", "ada@example.com", "short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("short password: err = %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := NewUserService(testDB(t))

	if _, err := s.Register("Ada", "ada@example.com", "correct horse"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := s.Register("Other", "ADA@example.com", "different pass"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email: err = %v", err)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	s := NewUserService(testDB(t))

	if _, err := s.Register("Ada", "ada@example.com", "correct horse"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := s.Authenticate("ada@example.com", "wrong pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password: err = %v", err)
	}
	if _, err := s.Authenticate("nobody@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v", err)
	}
}
