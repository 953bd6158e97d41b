package admin

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the minimum admin password length.
const MinPasswordLength = 6

// Domain errors. ErrBadCredentials is deliberately generic: a failed login
// never reveals whether the username exists.
var (
	ErrBadCredentials    = errors.New("incorrect username or password")
	ErrEmptyUsername     = errors.New("username cannot be empty")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch  = errors.New("new password and confirmation do not match")
	ErrPasswordUnchanged = errors.New("new password must be different from current password")
)

// Account holds state for an administrator account. Passwords are stored
// only as bcrypt hashes.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    time.Time // zero when the account has never logged in
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return ErrEmptyUsername
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt.
// PRE: plaintext is non-empty and >= 6 characters
// POST: PasswordHash is set to bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// bcrypt's comparison runs in constant time over the hash.
// INVARIANT: Account fields are not mutated
func (a *Account) CheckPassword(plaintext string) error {
	if a.PasswordHash == "" {
		return ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)); err != nil {
		return ErrBadCredentials
	}
	return nil
}

// RecordLogin stamps the last-login time. Called only after a successful
// credential check.
// POST: LastLogin is set to now
func (a *Account) RecordLogin(now time.Time) {
	a.LastLogin = now
}
