package admin

import (
	"errors"
	"testing"
	"time"
)

// TestSetPassword_HashesAndChecks verifies the bcrypt round trip.
func TestSetPassword_HashesAndChecks(t *testing.T) {
	a := Account{Username: "admin"}
	if err := a.SetPassword("admin123"); err != nil {
		t.Fatalf("SetPassword() = %v", err)
	}
	if a.PasswordHash == "" || a.PasswordHash == "admin123" {
		t.Fatalf("PasswordHash = %q, want bcrypt hash", a.PasswordHash)
	}
	if err := a.CheckPassword("admin123"); err != nil {
		t.Fatalf("CheckPassword(correct) = %v, want nil", err)
	}
	if err := a.CheckPassword("wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("CheckPassword(wrong) = %v, want ErrBadCredentials", err)
	}
}

// TestSetPassword_MinimumLength verifies the six-character policy.
func TestSetPassword_MinimumLength(t *testing.T) {
	a := Account{Username: "admin"}
	if err := a.SetPassword("12345"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("SetPassword(short) = %v, want ErrPasswordTooShort", err)
	}
	if err := a.SetPassword(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("SetPassword(empty) = %v, want ErrEmptyPassword", err)
	}
	if err := a.SetPassword("123456"); err != nil {
		t.Fatalf("SetPassword(six chars) = %v, want nil", err)
	}
}

// TestCheckPassword_EmptyHash verifies an account with no hash never matches.
func TestCheckPassword_EmptyHash(t *testing.T) {
	a := Account{Username: "admin"}
	if err := a.CheckPassword("anything"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("CheckPassword() = %v, want ErrBadCredentials", err)
	}
}

// TestRecordLogin stamps last-login.
func TestRecordLogin(t *testing.T) {
	a := Account{Username: "admin"}
	if !a.LastLogin.IsZero() {
		t.Fatal("LastLogin should start zero")
	}
	now := time.Now()
	a.RecordLogin(now)
	if !a.LastLogin.Equal(now) {
		t.Fatalf("LastLogin = %v, want %v", a.LastLogin, now)
	}
}

// TestValidate rejects a blank username.
func TestValidate(t *testing.T) {
	a := Account{Username: "  "}
	if err := a.Validate(); !errors.Is(err, ErrEmptyUsername) {
		t.Fatalf("Validate() = %v, want ErrEmptyUsername", err)
	}
	a.Username = "admin"
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
