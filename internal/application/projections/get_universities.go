package projections

import (
	"context"

	"esursi/internal/application/gate"
)

// ProfessorStoreForUniversities defines the store interface needed by the
// universities projection.
type ProfessorStoreForUniversities interface {
	DistinctUniversities(ctx context.Context) ([]string, error)
}

// UniversitiesDeps holds dependencies for the universities projection.
type UniversitiesDeps struct {
	Gate           *gate.Gate
	ProfessorStore ProfessorStoreForUniversities
}

// QueryUniversities returns the sorted distinct affiliated universities,
// feeding the list filter dropdown.
// PRE: Gate is Admin
// POST: Returns a non-nil slice
func QueryUniversities(ctx context.Context, deps UniversitiesDeps) ([]string, error) {
	if err := deps.Gate.Require(); err != nil {
		return nil, err
	}
	names, err := deps.ProfessorStore.DistinctUniversities(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
