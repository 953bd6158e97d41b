// Package orchestrators contains the application write operations. Each
// orchestrator declares the narrow store interface it needs, takes an input
// struct and a deps struct, and logs a structured event on success.
package orchestrators

import (
	"context"
	"log/slog"

	"esursi/internal/adapters/email"
	domain "esursi/internal/domain/professor"
)

// ProfessorStoreForRegister defines the store interface needed by RegisterProfessor.
type ProfessorStoreForRegister interface {
	Insert(ctx context.Context, p domain.Professor) (int64, error)
}

// AttachmentRemover cleans up stored uploads when a submission fails after
// its attachments were already written.
type AttachmentRemover interface {
	Remove(names ...string)
}

// RegisterProfessorInput carries input for the registration orchestrator.
// File name fields on Record reference uploads already stored by the caller.
type RegisterProfessorInput struct {
	Record domain.Professor
}

// RegisterProfessorDeps holds dependencies for RegisterProfessor.
type RegisterProfessorDeps struct {
	ProfessorStore ProfessorStoreForRegister
	Files          AttachmentRemover
	Email          email.Sender
}

// ExecuteRegisterProfessor validates and persists a new professor record.
// This is the one public write: no gate check.
// PRE: Record.Confirmed is true; attachments referenced by Record are stored
// POST: Record persisted with a fresh ID; acknowledgement email attempted;
// on failure, stored attachments are removed
func ExecuteRegisterProfessor(ctx context.Context, input RegisterProfessorInput, deps RegisterProfessorDeps) (int64, error) {
	p := input.Record

	discard := func() {
		if deps.Files != nil {
			deps.Files.Remove(p.Attachments()...)
		}
	}

	if err := p.Validate(); err != nil {
		discard()
		return 0, err
	}

	id, err := deps.ProfessorStore.Insert(ctx, p)
	if err != nil {
		discard()
		return 0, err
	}

	slog.Info("registry_event", "event", "professor_registered", "id", id, "matricule", p.Matricule)

	// Acknowledgement is best-effort: the record is already persisted and a
	// provider outage must not fail the submission.
	if deps.Email != nil {
		if _, err := deps.Email.Send(ctx, email.RegistrationAcknowledgement(p.Email, p.Name, p.Matricule)); err != nil {
			slog.Warn("registry_event", "event", "ack_email_failed", "id", id, "error", err)
		}
	}

	return id, nil
}
