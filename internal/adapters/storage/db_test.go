package storage

import (
	"database/sql"
	"sort"
	"testing"

	_ "modernc.org/sqlite"
)

// openTestDB creates an in-memory SQLite database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestInitDB_CreatesTables verifies the schema lands with both tables.
func TestInitDB_CreatesTables(t *testing.T) {
	db := openTestDB(t)
	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB() = %v", err)
	}

	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		t.Fatalf("failed to query sqlite_master: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("failed to scan table name: %v", err)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	want := []string{"admin_account", "professor"}
	if len(names) != len(want) {
		t.Fatalf("tables = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("tables = %v, want %v", names, want)
		}
	}
}

// TestInitDB_Idempotent verifies a second run is harmless.
func TestInitDB_Idempotent(t *testing.T) {
	db := openTestDB(t)
	if err := InitDB(db); err != nil {
		t.Fatalf("first InitDB() = %v", err)
	}
	if err := InitDB(db); err != nil {
		t.Fatalf("second InitDB() = %v", err)
	}
}

// TestInitDB_MatriculeUnique pins the authoritative uniqueness decision at
// the schema level.
func TestInitDB_MatriculeUnique(t *testing.T) {
	db := openTestDB(t)
	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB() = %v", err)
	}

	insert := `INSERT INTO professor (
		name, sex, matricule, birthplace, birth_date, grade, defense_country,
		defense_university, defense_date, diploma_type, affiliated_university,
		phone, decree_number, institutional_bonus, base_salary, comment,
		confirmed, created_at
	) VALUES ('a', 'M', 'M1', 'b', '1970-01-01', 'P', 'c', 'd', '2000-01-01',
		'Doctorat', 'e', '0123456789', 'f', 'oui', 'oui', 'g', 1, '2026-01-01T00:00:00.000000000Z')`

	if _, err := db.Exec(insert); err != nil {
		t.Fatalf("first insert = %v", err)
	}
	if _, err := db.Exec(insert); err == nil {
		t.Fatal("duplicate matricule accepted, want UNIQUE violation")
	}
}
