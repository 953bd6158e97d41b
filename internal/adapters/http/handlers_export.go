package web

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"esursi/internal/application/projections"
)

// handleExportList renders the current roster (optionally filtered like the
// list endpoint) as a downloadable PDF.
func (s *Server) handleExportList(w http.ResponseWriter, r *http.Request) {
	professors, err := projections.QueryProfessorList(r.Context(),
		projections.ProfessorListInput{
			SearchTerm: r.URL.Query().Get("search"),
			University: r.URL.Query().Get("university"),
		},
		projections.ProfessorListDeps{
			Gate:           s.gate(r),
			ProfessorStore: s.stores.ProfessorStore,
		})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// Render into memory first so a renderer failure can still produce a
	// clean JSON error instead of a truncated download.
	var buf bytes.Buffer
	if err := s.renderer.RenderList(&buf, professors); err != nil {
		writeDomainError(w, err)
		return
	}

	servePDF(w, fmt.Sprintf("professeurs-%s.pdf", time.Now().Format("2006-01-02")), &buf)
}

// handleExportDetail renders one record as a downloadable PDF sheet.
func (s *Server) handleExportDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := projections.QueryProfessorDetail(r.Context(),
		projections.ProfessorDetailInput{ID: id},
		projections.ProfessorDetailDeps{
			Gate:           s.gate(r),
			ProfessorStore: s.stores.ProfessorStore,
		})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderDetail(&buf, p); err != nil {
		writeDomainError(w, err)
		return
	}

	servePDF(w, fmt.Sprintf("professeur-%d.pdf", p.ID), &buf)
}

func servePDF(w http.ResponseWriter, filename string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprint(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
