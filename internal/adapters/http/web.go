// Package web wires the JSON API: one public registration endpoint, the
// admin-gated registry operations, and static serving of stored uploads.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"esursi/internal/adapters/email"
	"esursi/internal/adapters/files"
	"esursi/internal/adapters/http/middleware"
	"esursi/internal/adapters/http/perf"
	"esursi/internal/adapters/pdf"
	adminStore "esursi/internal/adapters/storage/admin"
	professorStore "esursi/internal/adapters/storage/professor"
)

// Stores holds all storage dependencies.
type Stores struct {
	ProfessorStore professorStore.Store
	AdminStore     adminStore.Store
}

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Server holds the API dependencies.
type Server struct {
	staticDir string
	stores    *Stores
	sessions  *middleware.SessionCodec
	files     *files.Store
	renderer  *pdf.Renderer
	sender    email.Sender
	collector *perf.Collector
}

// NewServer assembles the API server. staticDir holds the web client; an
// empty staticDir disables static serving.
// PRE: stores and uploads are non-nil; sender may be nil to skip emails
func NewServer(staticDir string, stores *Stores, sessions *middleware.SessionCodec, uploads *files.Store, sender email.Sender, collector *perf.Collector) *Server {
	return &Server{
		staticDir: staticDir,
		stores:    stores,
		sessions:  sessions,
		files:     uploads,
		renderer:  pdf.NewRenderer(),
		sender:    sender,
		collector: collector,
	}
}

// Router builds the route tree with the full middleware chain applied.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public surface: submission, stored uploads, web client.
	r.Post("/api/professeurs", s.handleRegister)
	r.Get("/files/*", s.handleFile)
	if s.staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.staticDir)))
	}

	r.Post("/api/admin/login", s.handleLogin)
	r.Post("/api/admin/logout", s.handleLogout)

	// Privileged surface. The handlers also consult the gate, so a route
	// wired here without RequireAdmin still fails closed.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)

		r.Get("/api/professeurs", s.handleList)
		r.Get("/api/professeurs/export", s.handleExportList)
		r.Get("/api/professeurs/search/{term}", s.handleSearch)
		r.Get("/api/professeurs/{id}", s.handleDetail)
		r.Get("/api/professeurs/{id}/export", s.handleExportDetail)
		r.Put("/api/professeurs/{id}", s.handleUpdate)
		r.Delete("/api/professeurs/{id}", s.handleDelete)

		r.Get("/api/universities", s.handleUniversities)
		r.Get("/api/stats", s.handleStats)
		r.Get("/api/admin/me", s.handleMe)
		r.Post("/api/admin/change-password", s.handleChangePassword)
		r.Get("/api/admin/perf", s.handlePerf)
	})

	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	return middleware.Chain(r,
		middleware.SecurityHeaders,
		middleware.CSRF(loadCSRFKey()),
		middleware.Auth(s.sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(s.collector),
	)
}

// LoadSessionSecret reads the session-signing secret from
// ESURSI_SESSION_SECRET. In production the secret MUST be set; in
// development a random one is generated per startup, which invalidates
// sessions on restart.
func LoadSessionSecret() []byte {
	if secret := os.Getenv("ESURSI_SESSION_SECRET"); secret != "" {
		return []byte(secret)
	}
	if os.Getenv("ESURSI_ENV") == "production" {
		log.Fatal("ESURSI_SESSION_SECRET is required in production")
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("failed to generate session secret: %v", err)
	}
	log.Println("WARNING: using random session secret (logins won't survive restart). Set ESURSI_SESSION_SECRET for production.")
	return secret
}

// loadCSRFKey reads the CSRF secret from ESURSI_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("ESURSI_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("ESURSI_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("ESURSI_ENV") == "production" {
		log.Fatal("ESURSI_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	return key
}
