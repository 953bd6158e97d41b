package orchestrators

import (
	"context"
	"errors"
	"testing"

	"esursi/internal/application/gate"
	domain "esursi/internal/domain/professor"
)

// TestExecuteDeleteProfessor_RequiresAdmin refuses while Public.
func TestExecuteDeleteProfessor_RequiresAdmin(t *testing.T) {
	store := newMockProfessorStore()
	id, _ := store.Insert(context.Background(), submission())

	err := ExecuteDeleteProfessor(context.Background(),
		DeleteProfessorInput{ID: id},
		DeleteProfessorDeps{Gate: gate.NewPublic(), ProfessorStore: store, Files: &mockRemover{}})
	if !errors.Is(err, gate.ErrRestricted) {
		t.Fatalf("expected ErrRestricted, got %v", err)
	}
	if _, ok := store.records[id]; !ok {
		t.Error("record must survive a restricted delete")
	}
}

// TestExecuteDeleteProfessor_Valid removes the record and its attachments.
func TestExecuteDeleteProfessor_Valid(t *testing.T) {
	store := newMockProfessorStore()
	files := &mockRemover{}
	id, _ := store.Insert(context.Background(), submission())

	err := ExecuteDeleteProfessor(context.Background(),
		DeleteProfessorInput{ID: id},
		DeleteProfessorDeps{Gate: gate.NewAdmin(1, "admin"), ProfessorStore: store, Files: files})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.records[id]; ok {
		t.Error("record must be removed")
	}
	// photo + two thesis copies
	if len(files.removed) != 3 {
		t.Errorf("expected 3 attachments removed, got %v", files.removed)
	}
}

// TestExecuteDeleteProfessor_Absent propagates ErrNotFound.
func TestExecuteDeleteProfessor_Absent(t *testing.T) {
	err := ExecuteDeleteProfessor(context.Background(),
		DeleteProfessorInput{ID: 42},
		DeleteProfessorDeps{Gate: gate.NewAdmin(1, "admin"), ProfessorStore: newMockProfessorStore(), Files: &mockRemover{}})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
