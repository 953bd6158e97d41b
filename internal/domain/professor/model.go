package professor

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Sex constants.
const (
	SexMale   = "M"
	SexFemale = "F"
)

// Academic grade constants.
const (
	GradeFullProfessor      = "PO" // professeur ordinaire
	GradeEmeritusProfessor  = "PE" // professeur émérite
	GradeProfessor          = "P"
	GradeAssociateProfessor = "PA" // professeur associé
)

// ValidGrades contains all valid grade values.
var ValidGrades = []string{GradeEmeritusProfessor, GradeFullProfessor, GradeProfessor, GradeAssociateProfessor}

// Max length constants for user-editable fields.
const (
	MaxNameLength    = 200
	MaxEmailLength   = 254
	MaxCommentLength = 2000
)

// phonePattern is the national phone format: +243 prefix or a leading 0,
// followed by exactly nine digits.
var phonePattern = regexp.MustCompile(`^(\+243|0)[0-9]{9}$`)

// Domain errors.
var (
	ErrNotFound     = errors.New("professor not found")
	ErrNotConfirmed = errors.New("submitter must confirm the information is true and verifiable")
)

// ValidationError reports a missing or malformed input field. The Field name
// is safe to surface to the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// ConstraintError reports a uniqueness collision on a column.
type ConstraintError struct {
	Column string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("value for %q is already registered", e.Column)
}

// Professor holds the credentials record of one registered professor.
// File-reference fields store generated filenames, never file content;
// multi-valued references are comma-joined.
type Professor struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Sex                  string    `json:"sex"`
	Matricule            string    `json:"matricule"`
	Birthplace           string    `json:"birthplace"`
	BirthDate            string    `json:"birth_date"`
	Grade                string    `json:"grade"`
	DefenseCountry       string    `json:"defense_country"`
	DefenseUniversity    string    `json:"defense_university"`
	EquivalenceNumber    string    `json:"equivalence_number,omitempty"`
	EquivalenceDecree    string    `json:"equivalence_decree,omitempty"`
	EquivalenceDocs      string    `json:"equivalence_docs,omitempty"`
	DefenseDate          string    `json:"defense_date"`
	DiplomaType          string    `json:"diploma_type"`
	AffiliatedUniversity string    `json:"affiliated_university"`
	Email                string    `json:"email,omitempty"`
	Phone                string    `json:"phone"`
	DecreeNumber         string    `json:"decree_number"`
	InstitutionalBonus   string    `json:"institutional_bonus"`
	BaseSalary           string    `json:"base_salary"`
	HasDiploma           string    `json:"has_diploma,omitempty"`
	Photo                string    `json:"photo,omitempty"`
	DiplomaCopy          string    `json:"diploma_copy,omitempty"`
	ThesisCopies         string    `json:"thesis_copies,omitempty"`
	ThesisSubject        string    `json:"thesis_subject,omitempty"`
	Comment              string    `json:"comment"`
	Confirmed            bool      `json:"confirmed"`
	CreatedAt            time.Time `json:"created_at"`
}

// requiredFields enumerates exactly which fields must be present at
// submission time, in form order. File attachments are optional.
var requiredFields = []struct {
	name  string
	value func(*Professor) string
}{
	{"name", func(p *Professor) string { return p.Name }},
	{"sex", func(p *Professor) string { return p.Sex }},
	{"matricule", func(p *Professor) string { return p.Matricule }},
	{"birthplace", func(p *Professor) string { return p.Birthplace }},
	{"birth_date", func(p *Professor) string { return p.BirthDate }},
	{"grade", func(p *Professor) string { return p.Grade }},
	{"defense_country", func(p *Professor) string { return p.DefenseCountry }},
	{"defense_university", func(p *Professor) string { return p.DefenseUniversity }},
	{"defense_date", func(p *Professor) string { return p.DefenseDate }},
	{"diploma_type", func(p *Professor) string { return p.DiplomaType }},
	{"affiliated_university", func(p *Professor) string { return p.AffiliatedUniversity }},
	{"phone", func(p *Professor) string { return p.Phone }},
	{"decree_number", func(p *Professor) string { return p.DecreeNumber }},
	{"institutional_bonus", func(p *Professor) string { return p.InstitutionalBonus }},
	{"base_salary", func(p *Professor) string { return p.BaseSalary }},
	{"comment", func(p *Professor) string { return p.Comment }},
}

// Validate checks required-field presence, enum membership, phone format
// and the confirmation flag.
// PRE: Professor struct is populated from a submission
// POST: Returns nil if acceptable, *ValidationError or ErrNotConfirmed otherwise
func (p *Professor) Validate() error {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(p)) == "" {
			return &ValidationError{Field: f.name, Reason: "required"}
		}
	}
	if p.Sex != SexMale && p.Sex != SexFemale {
		return &ValidationError{Field: "sex", Reason: "must be M or F"}
	}
	if !isValidGrade(p.Grade) {
		return &ValidationError{Field: "grade", Reason: "must be one of: PE, PO, P, PA"}
	}
	if !phonePattern.MatchString(p.Phone) {
		return &ValidationError{Field: "phone", Reason: "must match +243XXXXXXXXX or 0XXXXXXXXX"}
	}
	if len(p.Name) > MaxNameLength {
		return &ValidationError{Field: "name", Reason: "cannot exceed 200 characters"}
	}
	if len(p.Comment) > MaxCommentLength {
		return &ValidationError{Field: "comment", Reason: "cannot exceed 2000 characters"}
	}
	if p.Email != "" {
		if len(p.Email) > MaxEmailLength {
			return &ValidationError{Field: "email", Reason: "cannot exceed 254 characters"}
		}
		if !strings.Contains(p.Email, "@") {
			return &ValidationError{Field: "email", Reason: "must contain '@'"}
		}
	}
	for _, d := range []struct{ field, value string }{
		{"birth_date", p.BirthDate},
		{"defense_date", p.DefenseDate},
	} {
		if _, err := time.Parse("2006-01-02", d.value); err != nil {
			return &ValidationError{Field: d.field, Reason: "must be a date in YYYY-MM-DD format"}
		}
	}
	if !p.Confirmed {
		return ErrNotConfirmed
	}
	return nil
}

// ThesisCopyList splits the comma-joined thesis copy references.
// INVARIANT: Professor fields are not mutated
func (p *Professor) ThesisCopyList() []string {
	return splitRefs(p.ThesisCopies)
}

// EquivalenceDocList splits the comma-joined equivalence document references.
// INVARIANT: Professor fields are not mutated
func (p *Professor) EquivalenceDocList() []string {
	return splitRefs(p.EquivalenceDocs)
}

// Attachments returns every stored upload the record references: photo,
// diploma copy, thesis copies and equivalence documents.
// INVARIANT: Professor fields are not mutated
func (p *Professor) Attachments() []string {
	var names []string
	if p.Photo != "" {
		names = append(names, p.Photo)
	}
	if p.DiplomaCopy != "" {
		names = append(names, p.DiplomaCopy)
	}
	names = append(names, p.ThesisCopyList()...)
	names = append(names, p.EquivalenceDocList()...)
	return names
}

func splitRefs(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	refs := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			refs = append(refs, s)
		}
	}
	return refs
}

func isValidGrade(grade string) bool {
	for _, g := range ValidGrades {
		if g == grade {
			return true
		}
	}
	return false
}
