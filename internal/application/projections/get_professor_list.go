// Package projections contains the application read operations. Every
// projection over registered records is privileged: it checks the gate
// before touching a store and returns gate.ErrRestricted while Public.
package projections

import (
	"context"
	"strings"

	"esursi/internal/adapters/storage/professor"
	"esursi/internal/application/gate"
	domain "esursi/internal/domain/professor"
)

// ProfessorStoreForList defines the store interface needed by the list projection.
type ProfessorStoreForList interface {
	GetAll(ctx context.Context, filter professor.ListFilter) ([]domain.Professor, error)
	Search(ctx context.Context, term string) ([]domain.Professor, error)
}

// ProfessorListInput carries the list parameters. SearchTerm and University
// are mutually exclusive; SearchTerm wins when both are set.
type ProfessorListInput struct {
	SearchTerm string
	University string
}

// ProfessorListDeps holds dependencies for the list projection.
type ProfessorListDeps struct {
	Gate           *gate.Gate
	ProfessorStore ProfessorStoreForList
}

// QueryProfessorList returns records newest-first, optionally narrowed by a
// search term or an affiliated-university filter.
// PRE: Gate is Admin
// POST: Returns a non-nil slice; no match yields an empty slice, not an error
func QueryProfessorList(ctx context.Context, input ProfessorListInput, deps ProfessorListDeps) ([]domain.Professor, error) {
	if err := deps.Gate.Require(); err != nil {
		return nil, err
	}

	if term := strings.TrimSpace(input.SearchTerm); term != "" {
		return deps.ProfessorStore.Search(ctx, term)
	}
	return deps.ProfessorStore.GetAll(ctx, professor.ListFilter{University: input.University})
}
