package orchestrators

import (
	"context"
	"log/slog"

	"esursi/internal/application/gate"
	domain "esursi/internal/domain/admin"
)

// AdminStoreForChangePassword defines the store interface needed by ChangePassword.
type AdminStoreForChangePassword interface {
	GetByID(ctx context.Context, id int64) (domain.Account, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}

// ChangePasswordInput carries input for the change-password orchestrator.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// ChangePasswordDeps holds dependencies for ChangePassword.
type ChangePasswordDeps struct {
	Gate       *gate.Gate
	AdminStore AdminStoreForChangePassword
}

// ExecuteChangePassword re-verifies the current password and installs the new one.
// PRE: Gate is Admin; NewPassword equals ConfirmPassword
// POST: Stored hash replaced; the old password no longer authenticates
func ExecuteChangePassword(ctx context.Context, input ChangePasswordInput, deps ChangePasswordDeps) error {
	if err := deps.Gate.Require(); err != nil {
		return err
	}

	if input.NewPassword != input.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	if input.NewPassword == input.CurrentPassword {
		return domain.ErrPasswordUnchanged
	}

	acct, err := deps.AdminStore.GetByID(ctx, deps.Gate.AdminID())
	if err != nil {
		return err
	}

	if err := acct.CheckPassword(input.CurrentPassword); err != nil {
		slog.Info("auth_event", "event", "password_change_failed", "username", acct.Username, "reason", "wrong_password")
		return err
	}

	// SetPassword enforces the minimum length and hashes.
	if err := acct.SetPassword(input.NewPassword); err != nil {
		return err
	}

	if err := deps.AdminStore.UpdatePasswordHash(ctx, acct.ID, acct.PasswordHash); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "password_changed", "username", acct.Username)
	return nil
}
