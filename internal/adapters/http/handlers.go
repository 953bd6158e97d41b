package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"esursi/internal/adapters/files"
	"esursi/internal/application/gate"
	"esursi/internal/application/orchestrators"
	"esursi/internal/application/projections"
	admindomain "esursi/internal/domain/admin"
	domain "esursi/internal/domain/professor"
)

// maxUploadBytes bounds one multipart submission (fields plus attachments).
const maxUploadBytes = 32 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response_encode_failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps application errors to stable status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	var cerr *domain.ConstraintError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &cerr):
		writeError(w, http.StatusConflict, cerr.Error())
	case errors.Is(err, domain.ErrNotConfirmed),
		errors.Is(err, orchestrators.ErrNoFields),
		errors.Is(err, files.ErrUnsupportedType),
		errors.Is(err, admindomain.ErrPasswordMismatch),
		errors.Is(err, admindomain.ErrPasswordTooShort),
		errors.Is(err, admindomain.ErrPasswordUnchanged):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, gate.ErrRestricted),
		errors.Is(err, admindomain.ErrBadCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		slog.Error("request_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// handleRegister accepts the public multipart submission. Field names are
// the web form's contract and stay in French; attachments are stored first
// so the record can reference their generated names.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var saved []string
	var saveErr error
	saveOne := func(field string) string {
		fhs := r.MultipartForm.File[field]
		if saveErr != nil || len(fhs) == 0 {
			return ""
		}
		name, err := s.saveUpload(field, fhs[0])
		if err != nil {
			saveErr = err
			return ""
		}
		saved = append(saved, name)
		return name
	}
	saveMany := func(field string) string {
		var names []string
		for _, fh := range r.MultipartForm.File[field] {
			if saveErr != nil {
				break
			}
			name, err := s.saveUpload(field, fh)
			if err != nil {
				saveErr = err
				break
			}
			saved = append(saved, name)
			names = append(names, name)
		}
		return strings.Join(names, ",")
	}

	p := domain.Professor{
		Name:                 r.FormValue("nom"),
		Sex:                  r.FormValue("sexe"),
		Matricule:            r.FormValue("matricule"),
		Birthplace:           r.FormValue("lieuNaissance"),
		BirthDate:            r.FormValue("dateNaissance"),
		Grade:                r.FormValue("grade"),
		DefenseCountry:       r.FormValue("paysSoutenance"),
		DefenseUniversity:    r.FormValue("universiteSoutenance"),
		EquivalenceNumber:    r.FormValue("numeroEquivalence"),
		DefenseDate:          r.FormValue("dateSoutenance"),
		DiplomaType:          r.FormValue("typeDiplome"),
		AffiliatedUniversity: r.FormValue("universiteAttache"),
		Email:                r.FormValue("email"),
		Phone:                r.FormValue("telephone"),
		DecreeNumber:         r.FormValue("numeroArrete"),
		InstitutionalBonus:   r.FormValue("primeInstitutionnelle"),
		BaseSalary:           r.FormValue("salaireBase"),
		HasDiploma:           r.FormValue("possedeDiplome"),
		ThesisSubject:        r.FormValue("sujetThese"),
		Comment:              r.FormValue("commentaire"),
		Confirmed:            r.FormValue("confirmation") == "true",
		Photo:                saveOne("photoIdentite"),
		DiplomaCopy:          saveOne("copieDiplome"),
		EquivalenceDecree:    saveOne("arreteEquivalence"),
		ThesisCopies:         saveMany("copieThese"),
		EquivalenceDocs:      saveMany("documentEquivalent"),
	}

	if saveErr != nil {
		s.files.Remove(saved...)
		writeDomainError(w, saveErr)
		return
	}

	id, err := orchestrators.ExecuteRegisterProfessor(r.Context(),
		orchestrators.RegisterProfessorInput{Record: p},
		orchestrators.RegisterProfessorDeps{
			ProfessorStore: s.stores.ProfessorStore,
			Files:          s.files,
			Email:          s.sender,
		})
	if err != nil {
		// The orchestrator removed the attachments it knew about; clear any
		// the submission never referenced.
		s.files.Remove(saved...)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": id})
}

func (s *Server) saveUpload(field string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return s.files.Save(field, fh.Filename, src)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	professors, err := projections.QueryProfessorList(r.Context(),
		projections.ProfessorListInput{University: r.URL.Query().Get("university")},
		projections.ProfessorListDeps{
			Gate:           s.gate(r),
			ProfessorStore: s.stores.ProfessorStore,
		})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, professors)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	professors, err := projections.QueryProfessorList(r.Context(),
		projections.ProfessorListInput{SearchTerm: chi.URLParam(r, "term")},
		projections.ProfessorListDeps{
			Gate:           s.gate(r),
			ProfessorStore: s.stores.ProfessorStore,
		})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, professors)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var u domain.Update
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	err = orchestrators.ExecuteUpdateProfessor(r.Context(),
		orchestrators.UpdateProfessorInput{ID: id, Update: u},
		orchestrators.UpdateProfessorDeps{
			Gate:           s.gate(r),
			ProfessorStore: s.stores.ProfessorStore,
		})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	err = orchestrators.ExecuteDeleteProfessor(r.Context(),
		orchestrators.DeleteProfessorInput{ID: id},
		orchestrators.DeleteProfessorDeps{
			Gate:           s.gate(r),
			ProfessorStore: s.stores.ProfessorStore,
			Files:          s.files,
		})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleUniversities(w http.ResponseWriter, r *http.Request) {
	names, err := projections.QueryUniversities(r.Context(),
		projections.UniversitiesDeps{
			Gate:           s.gate(r),
			ProfessorStore: s.stores.ProfessorStore,
		})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// handleFile serves one stored upload.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	f, err := s.files.Open(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	http.ServeContent(w, r, name, info.ModTime(), f)
}
