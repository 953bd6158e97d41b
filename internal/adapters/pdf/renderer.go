// Package pdf renders professor records as printable documents for the
// administration: a tabular roster of the whole registry and a one-page
// sheet for a single record.
package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	domain "esursi/internal/domain/professor"
)

// Header band colour, matching the web interface.
var headerBlue = [3]int{30, 64, 175}

// Renderer produces PDF exports. Zero value is ready to use.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderList writes the full roster as an A4 landscape table.
// PRE: professors is the list to print, already filtered and ordered
// POST: A complete PDF document is written to w
func (r *Renderer) RenderList(w io.Writer, professors []domain.Professor) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d / {nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	r.drawHeader(pdf, tr, "Liste du Personnel Académique")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total: %d professeur(s) - Exporté le %s",
		len(professors), time.Now().Format("02/01/2006"))),
		"", 1, "L", false, 0, "")
	pdf.Ln(2)

	type column struct {
		title string
		width float64
	}
	columns := []column{
		{"Matricule", 28},
		{"Nom", 58},
		{"Grade", 15},
		{"Université", 62},
		{"Téléphone", 30},
		{"Email", 60},
		{"Enregistré le", 24},
	}

	drawTableHead := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(headerBlue[0], headerBlue[1], headerBlue[2])
		pdf.SetTextColor(255, 255, 255)
		for i, col := range columns {
			last := 0
			if i == len(columns)-1 {
				last = 1
			}
			pdf.CellFormat(col.width, 8, tr(col.title), "1", last, "L", true, 0, "")
		}
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(0, 0, 0)
	}
	drawTableHead()

	fill := false
	for _, p := range professors {
		if pdf.GetY() > 180 {
			pdf.AddPage()
			drawTableHead()
			fill = false
		}
		pdf.SetFillColor(239, 246, 255)
		cells := []string{
			p.Matricule,
			p.Name,
			p.Grade,
			p.AffiliatedUniversity,
			p.Phone,
			p.Email,
			p.CreatedAt.Format("02/01/2006"),
		}
		for i, text := range cells {
			last := 0
			if i == len(cells)-1 {
				last = 1
			}
			pdf.CellFormat(columns[i].width, 7, tr(clip(text, 40)), "1", last, "L", fill, 0, "")
		}
		fill = !fill
	}

	return pdf.Output(w)
}

// RenderDetail writes a single record as an A4 portrait sheet.
// POST: A complete PDF document is written to w
func (r *Renderer) RenderDetail(w io.Writer, p domain.Professor) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d / {nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	r.drawHeader(pdf, tr, "Fiche d'Identification")

	section := func(title string) {
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 11)
		pdf.SetTextColor(headerBlue[0], headerBlue[1], headerBlue[2])
		pdf.CellFormat(0, 7, tr(title), "", 1, "L", false, 0, "")
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.3)
		pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
		pdf.Ln(2)
	}
	row := func(label, value string) {
		if value == "" {
			value = "-"
		}
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(60, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
	}

	section("Identité")
	row("Nom complet", p.Name)
	row("Sexe", sexLabel(p.Sex))
	row("Matricule", p.Matricule)
	row("Lieu de naissance", p.Birthplace)
	row("Date de naissance", p.BirthDate)

	section("Parcours Académique")
	row("Grade", gradeLabel(p.Grade))
	row("Type de diplôme", p.DiplomaType)
	row("Pays de défense", p.DefenseCountry)
	row("Université de défense", p.DefenseUniversity)
	row("Date de défense", p.DefenseDate)
	row("Sujet de thèse", p.ThesisSubject)
	if p.EquivalenceNumber != "" {
		row("Numéro d'équivalence", p.EquivalenceNumber)
	}

	section("Affectation")
	row("Université d'attache", p.AffiliatedUniversity)
	row("Numéro d'arrêté", p.DecreeNumber)
	row("Prime institutionnelle", p.InstitutionalBonus)
	row("Salaire de base", p.BaseSalary)

	section("Contact")
	row("Email", p.Email)
	row("Téléphone", p.Phone)

	if p.Comment != "" {
		section("Commentaire")
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 5, tr(p.Comment), "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Dossier enregistré le %s",
		p.CreatedAt.Format("02/01/2006 15:04"))), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// drawHeader paints the blue institutional band at the top of a page.
func (r *Renderer) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, subtitle string) {
	pageW, _ := pdf.GetPageSize()
	pdf.SetFillColor(headerBlue[0], headerBlue[1], headerBlue[2])
	pdf.Rect(0, 0, pageW, 24, "F")

	pdf.SetY(5)
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(0, 8, "ESU-RSI", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, tr("Répertoire du Personnel Académique - "+subtitle), "", 1, "C", false, 0, "")

	pdf.SetY(28)
	pdf.SetTextColor(0, 0, 0)
}

func sexLabel(code string) string {
	switch code {
	case domain.SexMale:
		return "Masculin"
	case domain.SexFemale:
		return "Féminin"
	}
	return code
}

func gradeLabel(code string) string {
	switch code {
	case domain.GradeFullProfessor:
		return "Professeur Ordinaire"
	case domain.GradeEmeritusProfessor:
		return "Professeur Émérite"
	case domain.GradeProfessor:
		return "Professeur"
	case domain.GradeAssociateProfessor:
		return "Professeur Associé"
	}
	return code
}

// clip shortens cell text so long values cannot overflow a table column.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
