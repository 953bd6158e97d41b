package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"esursi/internal/application/gate"
	domain "esursi/internal/domain/professor"
)

// ProfessorStoreForUpdate defines the store interface needed by UpdateProfessor.
type ProfessorStoreForUpdate interface {
	Update(ctx context.Context, id int64, u domain.Update) error
}

// ErrNoFields is returned when an update carries nothing to change.
var ErrNoFields = errors.New("no fields to update")

// UpdateProfessorInput carries input for the update orchestrator.
type UpdateProfessorInput struct {
	ID     int64
	Update domain.Update
}

// UpdateProfessorDeps holds dependencies for UpdateProfessor.
type UpdateProfessorDeps struct {
	Gate           *gate.Gate
	ProfessorStore ProfessorStoreForUpdate
}

// ExecuteUpdateProfessor applies a sparse update to an existing record.
// PRE: Gate is Admin; Update carries at least one field
// POST: Only the supplied fields are changed; absent id yields
// professor.ErrNotFound
func ExecuteUpdateProfessor(ctx context.Context, input UpdateProfessorInput, deps UpdateProfessorDeps) error {
	if err := deps.Gate.Require(); err != nil {
		return err
	}

	if input.Update.IsEmpty() {
		return ErrNoFields
	}
	if err := input.Update.Validate(); err != nil {
		return err
	}

	if err := deps.ProfessorStore.Update(ctx, input.ID, input.Update); err != nil {
		return err
	}

	slog.Info("registry_event", "event", "professor_updated", "id", input.ID, "admin", deps.Gate.Username())
	return nil
}
