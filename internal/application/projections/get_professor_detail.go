package projections

import (
	"context"

	"esursi/internal/application/gate"
	domain "esursi/internal/domain/professor"
)

// ProfessorStoreForDetail defines the store interface needed by the detail projection.
type ProfessorStoreForDetail interface {
	GetByID(ctx context.Context, id int64) (domain.Professor, error)
}

// ProfessorDetailInput carries the record identifier.
type ProfessorDetailInput struct {
	ID int64
}

// ProfessorDetailDeps holds dependencies for the detail projection.
type ProfessorDetailDeps struct {
	Gate           *gate.Gate
	ProfessorStore ProfessorStoreForDetail
}

// QueryProfessorDetail returns one full record.
// PRE: Gate is Admin
// POST: Absent id yields professor.ErrNotFound
func QueryProfessorDetail(ctx context.Context, input ProfessorDetailInput, deps ProfessorDetailDeps) (domain.Professor, error) {
	if err := deps.Gate.Require(); err != nil {
		return domain.Professor{}, err
	}
	return deps.ProfessorStore.GetByID(ctx, input.ID)
}
