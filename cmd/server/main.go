package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "esursi/internal/adapters/email"
	"esursi/internal/adapters/files"
	web "esursi/internal/adapters/http"
	"esursi/internal/adapters/http/middleware"
	"esursi/internal/adapters/http/perf"
	"esursi/internal/adapters/storage"
	adminStore "esursi/internal/adapters/storage/admin"
	professorStore "esursi/internal/adapters/storage/professor"
	"esursi/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	configureLogging()

	// WAL mode, foreign keys and a busy timeout for concurrent admin use
	dbPath := envOrDefault("ESURSI_DB_PATH", "esursi.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to init database schema: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	admins := adminStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		ProfessorStore: professorStore.NewSQLiteStore(timedDB),
		AdminStore:     admins,
	}

	// Bootstrap admin account (idempotent)
	seedInput := orchestrators.SeedAdminInput{
		Username: envOrDefault("ESURSI_ADMIN_USERNAME", "admin"),
		Password: envOrDefault("ESURSI_ADMIN_PASSWORD", "admin123"),
	}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedInput,
		orchestrators.SeedAdminDeps{AdminStore: admins}); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	uploads, err := files.NewStore(envOrDefault("ESURSI_UPLOAD_DIR", "uploads"))
	if err != nil {
		log.Fatalf("failed to create upload store: %v", err)
	}

	// Acknowledgement emails go through Resend when a key is configured.
	var sender emailPkg.Sender
	emailFrom := envOrDefault("ESURSI_RESEND_FROM", "ESU-RSI <noreply@esu-rsi.cd>")
	if resendKey := os.Getenv("ESURSI_RESEND_KEY"); resendKey != "" {
		sender = emailPkg.NewResendSender(resendKey, emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		log.Println("Email sender configured (noop — set ESURSI_RESEND_KEY for real delivery)")
	}

	middleware.SecureCookies = os.Getenv("ESURSI_ENV") == "production"
	codec := middleware.NewSessionCodec(web.LoadSessionSecret())

	srv := web.NewServer(envOrDefault("ESURSI_STATIC_DIR", "public"), stores, codec, uploads, sender, collector)

	addr := envOrDefault("ESURSI_ADDR", ":3000")
	log.Printf("ESU-RSI %s starting on %s (env=%s)", version, addr, envOrDefault("ESURSI_ENV", "development"))

	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// configureLogging sets the default slog level from ESURSI_LOG_LEVEL.
func configureLogging() {
	level := slog.LevelInfo
	switch envOrDefault("ESURSI_LOG_LEVEL", "info") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
