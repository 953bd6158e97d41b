package projections

import (
	"context"
	"time"

	"esursi/internal/application/gate"
	admindomain "esursi/internal/domain/admin"
)

// ProfessorStoreForStats defines the store interface needed by the stats projection.
type ProfessorStoreForStats interface {
	Count(ctx context.Context) (int, error)
}

// AdminStoreForStats defines the admin store interface needed by the stats projection.
type AdminStoreForStats interface {
	GetByID(ctx context.Context, id int64) (admindomain.Account, error)
}

// Stats is the dashboard summary. Field names match the public API contract.
type Stats struct {
	TotalProfessors int        `json:"totalProfesseurs"`
	LastLogin       *time.Time `json:"lastLogin,omitempty"`
}

// StatsDeps holds dependencies for the stats projection.
type StatsDeps struct {
	Gate           *gate.Gate
	ProfessorStore ProfessorStoreForStats
	AdminStore     AdminStoreForStats
}

// QueryStats returns the registry total and the calling admin's last login.
// PRE: Gate is Admin
// POST: LastLogin is nil when the account has never logged in before
func QueryStats(ctx context.Context, deps StatsDeps) (Stats, error) {
	if err := deps.Gate.Require(); err != nil {
		return Stats{}, err
	}

	total, err := deps.ProfessorStore.Count(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalProfessors: total}
	if acct, err := deps.AdminStore.GetByID(ctx, deps.Gate.AdminID()); err == nil && !acct.LastLogin.IsZero() {
		last := acct.LastLogin
		stats.LastLogin = &last
	}
	return stats, nil
}
