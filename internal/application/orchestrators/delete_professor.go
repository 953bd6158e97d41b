package orchestrators

import (
	"context"
	"log/slog"

	"esursi/internal/application/gate"
	domain "esursi/internal/domain/professor"
)

// ProfessorStoreForDelete defines the store interface needed by DeleteProfessor.
type ProfessorStoreForDelete interface {
	GetByID(ctx context.Context, id int64) (domain.Professor, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// DeleteProfessorInput carries input for the delete orchestrator.
type DeleteProfessorInput struct {
	ID int64
}

// DeleteProfessorDeps holds dependencies for DeleteProfessor.
type DeleteProfessorDeps struct {
	Gate           *gate.Gate
	ProfessorStore ProfessorStoreForDelete
	Files          AttachmentRemover
}

// ExecuteDeleteProfessor removes a record and its stored attachments.
// PRE: Gate is Admin
// POST: Record and attachments are gone; absent id yields
// professor.ErrNotFound
func ExecuteDeleteProfessor(ctx context.Context, input DeleteProfessorInput, deps DeleteProfessorDeps) error {
	if err := deps.Gate.Require(); err != nil {
		return err
	}

	p, err := deps.ProfessorStore.GetByID(ctx, input.ID)
	if err != nil {
		return err
	}

	removed, err := deps.ProfessorStore.DeleteByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}

	// Attachments only after the row is gone: a failed delete must not strand
	// a record pointing at missing files.
	if deps.Files != nil {
		deps.Files.Remove(p.Attachments()...)
	}

	slog.Info("registry_event", "event", "professor_deleted", "id", input.ID,
		"matricule", p.Matricule, "admin", deps.Gate.Username())
	return nil
}
