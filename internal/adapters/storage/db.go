package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Authoritative schema: matricule is the unique business identifier;
	// email and phone are deliberately NOT unique (professors may share a
	// contact channel).
	schema := `
	CREATE TABLE IF NOT EXISTS professor (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		sex TEXT NOT NULL,
		matricule TEXT NOT NULL UNIQUE,
		birthplace TEXT NOT NULL,
		birth_date TEXT NOT NULL,
		grade TEXT NOT NULL,
		defense_country TEXT NOT NULL,
		defense_university TEXT NOT NULL,
		equivalence_number TEXT,
		equivalence_decree TEXT,
		equivalence_docs TEXT,
		defense_date TEXT NOT NULL,
		diploma_type TEXT NOT NULL,
		affiliated_university TEXT NOT NULL,
		email TEXT,
		phone TEXT NOT NULL,
		decree_number TEXT NOT NULL,
		institutional_bonus TEXT NOT NULL,
		base_salary TEXT NOT NULL,
		has_diploma TEXT,
		photo TEXT,
		diploma_copy TEXT,
		thesis_copies TEXT,
		thesis_subject TEXT,
		comment TEXT NOT NULL,
		confirmed INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_professor_created_at ON professor(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_professor_affiliated_university ON professor(affiliated_university);

	CREATE TABLE IF NOT EXISTS admin_account (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TEXT NOT NULL,
		last_login TEXT
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
