package admin

import (
	"context"

	domain "esursi/internal/domain/admin"
)

// Store persists AdministratorAccount state.
type Store interface {
	// GetByUsername returns domain.ErrBadCredentials semantics at a higher
	// layer; at this layer an absent username is reported as ErrNotFound.
	GetByUsername(ctx context.Context, username string) (domain.Account, error)
	// GetByID retrieves an account by its identifier.
	GetByID(ctx context.Context, id int64) (domain.Account, error)
	// Create inserts a new account and returns its identifier.
	Create(ctx context.Context, a domain.Account) (int64, error)
	// UpdatePasswordHash replaces the stored hash for one account.
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	// TouchLastLogin stamps last_login. Called only after a successful
	// credential check.
	TouchLastLogin(ctx context.Context, id int64) error
	// Count returns the total number of admin accounts.
	Count(ctx context.Context) (int, error)
}
