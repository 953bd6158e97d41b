package professor

import (
	"errors"
	"strings"
	"testing"
)

// validProfessor returns a fully populated, acceptable submission.
func validProfessor() Professor {
	return Professor{
		Name:                 "KABILA Mwamba Jean",
		Sex:                  SexMale,
		Matricule:            "M123",
		Birthplace:           "Lubumbashi",
		BirthDate:            "1970-04-12",
		Grade:                GradeFullProfessor,
		DefenseCountry:       "Belgique",
		DefenseUniversity:    "Université de Liège",
		DefenseDate:          "2005-09-30",
		DiplomaType:          "Doctorat",
		AffiliatedUniversity: "Université de Kinshasa",
		Email:                "j.kabila@unikin.cd",
		Phone:                "+243123456789",
		DecreeNumber:         "ARR-2021/044",
		InstitutionalBonus:   "oui",
		BaseSalary:           "oui",
		Comment:              "Dossier complet",
		Confirmed:            true,
	}
}

// TestValidate_AcceptsCompleteSubmission verifies a complete confirmed
// submission passes validation.
func TestValidate_AcceptsCompleteSubmission(t *testing.T) {
	p := validProfessor()
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

// TestValidate_RequiredFields verifies each required field is enforced with
// a ValidationError naming the field.
func TestValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		field string
		blank func(*Professor)
	}{
		{"name", func(p *Professor) { p.Name = "" }},
		{"sex", func(p *Professor) { p.Sex = "" }},
		{"matricule", func(p *Professor) { p.Matricule = "  " }},
		{"birthplace", func(p *Professor) { p.Birthplace = "" }},
		{"birth_date", func(p *Professor) { p.BirthDate = "" }},
		{"grade", func(p *Professor) { p.Grade = "" }},
		{"defense_country", func(p *Professor) { p.DefenseCountry = "" }},
		{"defense_university", func(p *Professor) { p.DefenseUniversity = "" }},
		{"defense_date", func(p *Professor) { p.DefenseDate = "" }},
		{"diploma_type", func(p *Professor) { p.DiplomaType = "" }},
		{"affiliated_university", func(p *Professor) { p.AffiliatedUniversity = "" }},
		{"phone", func(p *Professor) { p.Phone = "" }},
		{"decree_number", func(p *Professor) { p.DecreeNumber = "" }},
		{"institutional_bonus", func(p *Professor) { p.InstitutionalBonus = "" }},
		{"base_salary", func(p *Professor) { p.BaseSalary = "" }},
		{"comment", func(p *Professor) { p.Comment = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			p := validProfessor()
			tc.blank(&p)
			var verr *ValidationError
			if err := p.Validate(); !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want ValidationError", err)
			} else if verr.Field != tc.field {
				t.Fatalf("ValidationError.Field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

// TestValidate_PhoneFormat verifies the national phone pattern is enforced
// regardless of other fields being valid.
func TestValidate_PhoneFormat(t *testing.T) {
	valid := []string{"+243123456789", "0123456789", "0999999999"}
	invalid := []string{"123456789", "+2431234567", "+24312345678901", "+244123456789", "0 123456789", "+243abcdefghi"}

	for _, phone := range valid {
		p := validProfessor()
		p.Phone = phone
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() with phone %q = %v, want nil", phone, err)
		}
	}
	for _, phone := range invalid {
		p := validProfessor()
		p.Phone = phone
		var verr *ValidationError
		if err := p.Validate(); !errors.As(err, &verr) || verr.Field != "phone" {
			t.Errorf("Validate() with phone %q = %v, want phone ValidationError", phone, err)
		}
	}
}

// TestValidate_ConfirmationRequired verifies an unconfirmed submission is
// rejected with ErrNotConfirmed even when everything else is valid.
func TestValidate_ConfirmationRequired(t *testing.T) {
	p := validProfessor()
	p.Confirmed = false
	if err := p.Validate(); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("Validate() = %v, want ErrNotConfirmed", err)
	}
}

// TestValidate_EnumsAndDates covers sex, grade and date format rules.
func TestValidate_EnumsAndDates(t *testing.T) {
	p := validProfessor()
	p.Sex = "X"
	var verr *ValidationError
	if err := p.Validate(); !errors.As(err, &verr) || verr.Field != "sex" {
		t.Fatalf("bad sex: Validate() = %v", err)
	}

	p = validProfessor()
	p.Grade = "DR"
	if err := p.Validate(); !errors.As(err, &verr) || verr.Field != "grade" {
		t.Fatalf("bad grade: Validate() = %v", err)
	}

	p = validProfessor()
	p.BirthDate = "12/04/1970"
	if err := p.Validate(); !errors.As(err, &verr) || verr.Field != "birth_date" {
		t.Fatalf("bad birth_date: Validate() = %v", err)
	}

	p = validProfessor()
	p.Email = "not-an-email"
	if err := p.Validate(); !errors.As(err, &verr) || verr.Field != "email" {
		t.Fatalf("bad email: Validate() = %v", err)
	}

	// Email is optional: an empty email is fine.
	p = validProfessor()
	p.Email = ""
	if err := p.Validate(); err != nil {
		t.Fatalf("empty email: Validate() = %v, want nil", err)
	}
}

// TestValidate_LengthLimits verifies oversized fields are rejected.
func TestValidate_LengthLimits(t *testing.T) {
	p := validProfessor()
	p.Comment = strings.Repeat("x", MaxCommentLength+1)
	var verr *ValidationError
	if err := p.Validate(); !errors.As(err, &verr) || verr.Field != "comment" {
		t.Fatalf("oversized comment: Validate() = %v", err)
	}
}

// TestThesisCopyList covers splitting of comma-joined file references.
func TestThesisCopyList(t *testing.T) {
	p := Professor{ThesisCopies: "copieThese-1.pdf, copieThese-2.pdf,"}
	got := p.ThesisCopyList()
	want := []string{"copieThese-1.pdf", "copieThese-2.pdf"}
	if len(got) != len(want) {
		t.Fatalf("ThesisCopyList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ThesisCopyList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if (&Professor{}).ThesisCopyList() != nil {
		t.Fatal("empty ThesisCopies should yield nil")
	}
}

// TestUpdate_Fields verifies sparse updates carry only supplied columns.
func TestUpdate_Fields(t *testing.T) {
	name := "New Name"
	confirmed := true
	u := Update{Name: &name, Confirmed: &confirmed}
	cols, vals := u.Fields()
	if len(cols) != 2 || cols[0] != "name" || cols[1] != "confirmed" {
		t.Fatalf("Fields() cols = %v", cols)
	}
	if vals[0] != "New Name" || vals[1] != 1 {
		t.Fatalf("Fields() vals = %v", vals)
	}
	if u.IsEmpty() {
		t.Fatal("IsEmpty() = true for non-empty update")
	}
	if !(&Update{}).IsEmpty() {
		t.Fatal("IsEmpty() = false for empty update")
	}
}

// TestUpdate_Validate verifies supplied fields follow submission rules and
// absent fields are ignored.
func TestUpdate_Validate(t *testing.T) {
	if err := (&Update{}).Validate(); err != nil {
		t.Fatalf("empty update: Validate() = %v, want nil", err)
	}
	bad := "12345"
	u := Update{Phone: &bad}
	var verr *ValidationError
	if err := u.Validate(); !errors.As(err, &verr) || verr.Field != "phone" {
		t.Fatalf("bad phone update: Validate() = %v", err)
	}
	good := "0123456789"
	u = Update{Phone: &good}
	if err := u.Validate(); err != nil {
		t.Fatalf("good phone update: Validate() = %v, want nil", err)
	}
}
