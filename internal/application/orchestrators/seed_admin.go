package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	adminstore "esursi/internal/adapters/storage/admin"
	domain "esursi/internal/domain/admin"
)

// AdminStoreForSeed defines the store interface needed by SeedAdmin.
type AdminStoreForSeed interface {
	GetByUsername(ctx context.Context, username string) (domain.Account, error)
	Create(ctx context.Context, a domain.Account) (int64, error)
}

// SeedAdminInput carries the bootstrap credentials.
type SeedAdminInput struct {
	Username string
	Password string
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AdminStore AdminStoreForSeed
}

// ExecuteSeedAdmin ensures the bootstrap admin account exists. Run at
// startup; a second run against the same database is a no-op.
// PRE: Username and Password are non-empty
// POST: An account with Username exists; an existing account is never
// overwritten
func ExecuteSeedAdmin(ctx context.Context, input SeedAdminInput, deps SeedAdminDeps) error {
	acct := domain.Account{Username: input.Username}
	if err := acct.Validate(); err != nil {
		return err
	}
	if err := acct.SetPassword(input.Password); err != nil {
		return err
	}

	_, err := deps.AdminStore.GetByUsername(ctx, input.Username)
	if err == nil {
		slog.Debug("auth_event", "event", "admin_seed_skipped", "username", input.Username)
		return nil
	}
	if !errors.Is(err, adminstore.ErrNotFound) {
		return err
	}

	id, err := deps.AdminStore.Create(ctx, acct)
	if err != nil {
		return err
	}

	slog.Info("auth_event", "event", "admin_seeded", "username", input.Username, "id", id)
	return nil
}
