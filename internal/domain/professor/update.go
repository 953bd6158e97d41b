package professor

import (
	"strings"
	"time"
)

// Update carries a sparse set of fields for an admin-triggered record update.
// Nil fields are left untouched; the identifier and creation timestamp can
// never be updated.
type Update struct {
	Name                 *string `json:"name,omitempty"`
	Sex                  *string `json:"sex,omitempty"`
	Matricule            *string `json:"matricule,omitempty"`
	Birthplace           *string `json:"birthplace,omitempty"`
	BirthDate            *string `json:"birth_date,omitempty"`
	Grade                *string `json:"grade,omitempty"`
	DefenseCountry       *string `json:"defense_country,omitempty"`
	DefenseUniversity    *string `json:"defense_university,omitempty"`
	EquivalenceNumber    *string `json:"equivalence_number,omitempty"`
	EquivalenceDecree    *string `json:"equivalence_decree,omitempty"`
	EquivalenceDocs      *string `json:"equivalence_docs,omitempty"`
	DefenseDate          *string `json:"defense_date,omitempty"`
	DiplomaType          *string `json:"diploma_type,omitempty"`
	AffiliatedUniversity *string `json:"affiliated_university,omitempty"`
	Email                *string `json:"email,omitempty"`
	Phone                *string `json:"phone,omitempty"`
	DecreeNumber         *string `json:"decree_number,omitempty"`
	InstitutionalBonus   *string `json:"institutional_bonus,omitempty"`
	BaseSalary           *string `json:"base_salary,omitempty"`
	HasDiploma           *string `json:"has_diploma,omitempty"`
	Photo                *string `json:"photo,omitempty"`
	DiplomaCopy          *string `json:"diploma_copy,omitempty"`
	ThesisCopies         *string `json:"thesis_copies,omitempty"`
	ThesisSubject        *string `json:"thesis_subject,omitempty"`
	Comment              *string `json:"comment,omitempty"`
	Confirmed            *bool   `json:"confirmed,omitempty"`
}

// Fields returns column-name/value pairs for every supplied field, in a
// stable order suitable for building a sparse UPDATE statement.
// INVARIANT: Update fields are not mutated
func (u *Update) Fields() ([]string, []any) {
	var cols []string
	var vals []any
	add := func(col string, v *string) {
		if v != nil {
			cols = append(cols, col)
			vals = append(vals, *v)
		}
	}
	add("name", u.Name)
	add("sex", u.Sex)
	add("matricule", u.Matricule)
	add("birthplace", u.Birthplace)
	add("birth_date", u.BirthDate)
	add("grade", u.Grade)
	add("defense_country", u.DefenseCountry)
	add("defense_university", u.DefenseUniversity)
	add("equivalence_number", u.EquivalenceNumber)
	add("equivalence_decree", u.EquivalenceDecree)
	add("equivalence_docs", u.EquivalenceDocs)
	add("defense_date", u.DefenseDate)
	add("diploma_type", u.DiplomaType)
	add("affiliated_university", u.AffiliatedUniversity)
	add("email", u.Email)
	add("phone", u.Phone)
	add("decree_number", u.DecreeNumber)
	add("institutional_bonus", u.InstitutionalBonus)
	add("base_salary", u.BaseSalary)
	add("has_diploma", u.HasDiploma)
	add("photo", u.Photo)
	add("diploma_copy", u.DiplomaCopy)
	add("thesis_copies", u.ThesisCopies)
	add("thesis_subject", u.ThesisSubject)
	add("comment", u.Comment)
	if u.Confirmed != nil {
		cols = append(cols, "confirmed")
		if *u.Confirmed {
			vals = append(vals, 1)
		} else {
			vals = append(vals, 0)
		}
	}
	return cols, vals
}

// IsEmpty reports whether the update supplies no fields at all.
// INVARIANT: Update fields are not mutated
func (u *Update) IsEmpty() bool {
	cols, _ := u.Fields()
	return len(cols) == 0
}

// Validate checks the supplied fields against the same rules as a full
// submission; absent fields are not checked.
// PRE: Update carries zero or more supplied fields
// POST: Returns nil if every supplied field is acceptable
func (u *Update) Validate() error {
	if u.Sex != nil && *u.Sex != SexMale && *u.Sex != SexFemale {
		return &ValidationError{Field: "sex", Reason: "must be M or F"}
	}
	if u.Grade != nil && !isValidGrade(*u.Grade) {
		return &ValidationError{Field: "grade", Reason: "must be one of: PE, PO, P, PA"}
	}
	if u.Phone != nil && !phonePattern.MatchString(*u.Phone) {
		return &ValidationError{Field: "phone", Reason: "must match +243XXXXXXXXX or 0XXXXXXXXX"}
	}
	if u.Email != nil && *u.Email != "" && !strings.Contains(*u.Email, "@") {
		return &ValidationError{Field: "email", Reason: "must contain '@'"}
	}
	for _, d := range []struct {
		field string
		value *string
	}{
		{"birth_date", u.BirthDate},
		{"defense_date", u.DefenseDate},
	} {
		if d.value == nil {
			continue
		}
		if _, err := time.Parse("2006-01-02", *d.value); err != nil {
			return &ValidationError{Field: d.field, Reason: "must be a date in YYYY-MM-DD format"}
		}
	}
	return nil
}
