package orchestrators

import (
	"context"
	"log/slog"

	domain "esursi/internal/domain/admin"
)

// AdminStoreForLogin defines the store interface needed by Login.
type AdminStoreForLogin interface {
	GetByUsername(ctx context.Context, username string) (domain.Account, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult carries the verified identity for session creation.
type LoginResult struct {
	AdminID  int64
	Username string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AdminStore AdminStoreForLogin
}

// ExecuteLogin validates admin credentials.
// PRE: Username and Password provided
// POST: Returns the identity on success; unknown usernames and wrong
// passwords both yield admin.ErrBadCredentials
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Username == "" || input.Password == "" {
		return LoginResult{}, domain.ErrBadCredentials
	}

	acct, err := deps.AdminStore.GetByUsername(ctx, input.Username)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", input.Username, "reason", "not_found")
		return LoginResult{}, domain.ErrBadCredentials
	}

	if err := acct.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", input.Username, "reason", "wrong_password")
		return LoginResult{}, domain.ErrBadCredentials
	}

	if err := deps.AdminStore.TouchLastLogin(ctx, acct.ID); err != nil {
		slog.Warn("auth_event", "event", "last_login_update_failed", "username", input.Username, "error", err)
	}

	slog.Info("auth_event", "event", "login_success", "username", input.Username)
	return LoginResult{AdminID: acct.ID, Username: acct.Username}, nil
}
