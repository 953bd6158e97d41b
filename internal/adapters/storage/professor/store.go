package professor

import (
	"context"

	domain "esursi/internal/domain/professor"
)

// Store persists ProfessorRecord state.
type Store interface {
	// Insert assigns the identifier and creation timestamp. Returns a
	// *professor.ConstraintError on a unique-column collision.
	Insert(ctx context.Context, p domain.Professor) (int64, error)
	// GetAll returns all records ordered by creation timestamp descending.
	GetAll(ctx context.Context, filter ListFilter) ([]domain.Professor, error)
	// GetByID returns professor.ErrNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (domain.Professor, error)
	// Search matches term as a substring of name, matricule or phone,
	// OR-combined, ordered by creation timestamp descending. An empty term
	// is equivalent to GetAll.
	Search(ctx context.Context, term string) ([]domain.Professor, error)
	// Update applies only the supplied fields. Returns professor.ErrNotFound
	// when the id is absent, *professor.ConstraintError on collisions.
	Update(ctx context.Context, id int64, u domain.Update) error
	// DeleteByID reports whether a row was actually removed.
	DeleteByID(ctx context.Context, id int64) (bool, error)
	// Count returns the total number of records.
	Count(ctx context.Context) (int, error)
	// DistinctUniversities returns the sorted distinct affiliated universities.
	DistinctUniversities(ctx context.Context) ([]string, error)
}

// ListFilter carries filtering parameters for GetAll.
type ListFilter struct {
	University string
}
