package pdf

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	domain "esursi/internal/domain/professor"
)

func sampleProfessor(i int) domain.Professor {
	return domain.Professor{
		ID:                   int64(i),
		Name:                 fmt.Sprintf("Kabila Mwamba %d", i),
		Sex:                  domain.SexMale,
		Matricule:            fmt.Sprintf("MAT-%04d", i),
		Birthplace:           "Kinshasa",
		BirthDate:            "1970-05-12",
		Grade:                domain.GradeProfessor,
		DefenseCountry:       "France",
		DefenseUniversity:    "Université de Lyon",
		DefenseDate:          "2005-06-30",
		DiplomaType:          "Doctorat",
		AffiliatedUniversity: "Université de Kinshasa",
		Email:                fmt.Sprintf("prof%d@unikin.cd", i),
		Phone:                "+243990000000",
		ThesisSubject:        "Étude des systèmes répartis",
		Confirmed:            true,
		CreatedAt:            time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// TestRenderList produces a valid PDF for a populated roster.
func TestRenderList(t *testing.T) {
	r := NewRenderer()
	var buf bytes.Buffer

	profs := []domain.Professor{sampleProfessor(1), sampleProfessor(2), sampleProfessor(3)}
	if err := r.RenderList(&buf, profs); err != nil {
		t.Fatalf("RenderList() = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not start with PDF magic, got %q", buf.Bytes()[:8])
	}
}

// TestRenderList_Empty tolerates an empty registry.
func TestRenderList_Empty(t *testing.T) {
	r := NewRenderer()
	var buf bytes.Buffer
	if err := r.RenderList(&buf, nil); err != nil {
		t.Fatalf("RenderList(nil) = %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty registry produced no document")
	}
}

// TestRenderList_Paginates keeps rendering past one page.
func TestRenderList_Paginates(t *testing.T) {
	r := NewRenderer()
	var buf bytes.Buffer

	profs := make([]domain.Professor, 80)
	for i := range profs {
		profs[i] = sampleProfessor(i + 1)
	}
	if err := r.RenderList(&buf, profs); err != nil {
		t.Fatalf("RenderList(80 rows) = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
}

// TestRenderDetail produces a valid sheet including optional sections.
func TestRenderDetail(t *testing.T) {
	r := NewRenderer()
	var buf bytes.Buffer

	p := sampleProfessor(7)
	p.Comment = "Dossier complet, pièces vérifiées."
	p.EquivalenceNumber = "EQ-2024-017"
	if err := r.RenderDetail(&buf, p); err != nil {
		t.Fatalf("RenderDetail() = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
}
