package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"esursi/internal/adapters/http/middleware"
	"esursi/internal/application/gate"
	"esursi/internal/application/orchestrators"
	"esursi/internal/application/projections"
)

// gate builds the access gate for the current request.
func (s *Server) gate(r *http.Request) *gate.Gate {
	return middleware.GateFromContext(r.Context())
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := orchestrators.ExecuteLogin(r.Context(),
		orchestrators.LoginInput{Username: body.Username, Password: body.Password},
		orchestrators.LoginDeps{AdminStore: s.stores.AdminStore})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	token, err := s.sessions.Issue(res.AdminID, res.Username)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// The grant transition drives the audit trail.
	g := gate.NewPublic()
	g.OnGrant(func(adminID int64, username string) {
		slog.Info("audit_event", "event", "access_granted", "admin_id", adminID, "username", username)
	})
	g.Grant(res.AdminID, res.Username)

	middleware.SetSessionCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "username": res.Username})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Sessions are stateless; clearing the cookie is the revocation.
	g := s.gate(r)
	g.OnRevoke(func() {
		slog.Info("audit_event", "event", "access_revoked")
	})
	g.Revoke()
	middleware.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, gate.ErrRestricted.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":       session.AdminID,
		"username": session.Username,
	})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := orchestrators.ExecuteChangePassword(r.Context(),
		orchestrators.ChangePasswordInput{
			CurrentPassword: body.CurrentPassword,
			NewPassword:     body.NewPassword,
			ConfirmPassword: body.ConfirmPassword,
		},
		orchestrators.ChangePasswordDeps{
			Gate:       s.gate(r),
			AdminStore: s.stores.AdminStore,
		})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := projections.QueryStats(r.Context(),
		projections.StatsDeps{
			Gate:           s.gate(r),
			ProfessorStore: s.stores.ProfessorStore,
			AdminStore:     s.stores.AdminStore,
		})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handlePerf exposes the in-process timing snapshot.
// Query params: minutes (default 15), top (default 20).
func (s *Server) handlePerf(w http.ResponseWriter, r *http.Request) {
	if s.collector == nil {
		writeError(w, http.StatusNotFound, "perf collection disabled")
		return
	}
	minutes := 15
	if v, err := strconv.Atoi(r.URL.Query().Get("minutes")); err == nil && v > 0 {
		minutes = v
	}
	top := 20
	if v, err := strconv.Atoi(r.URL.Query().Get("top")); err == nil && v > 0 {
		top = v
	}
	since := time.Now().Add(-time.Duration(minutes) * time.Minute)
	writeJSON(w, http.StatusOK, s.collector.Snapshot(since, top))
}
