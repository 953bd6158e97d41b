package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"esursi/internal/adapters/storage"
	domain "esursi/internal/domain/admin"
)

// ErrNotFound reports an absent admin account. Callers on the login path
// must translate it into the generic bad-credentials error.
var ErrNotFound = errors.New("admin account not found")

const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new admin account store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByUsername retrieves an account by its unique username.
// POST: Returns the account or ErrNotFound
func (s *SQLiteStore) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at, last_login FROM admin_account WHERE username = ?",
		username)
	return scanAccount(row.Scan)
}

// GetByID retrieves an account by its identifier.
// POST: Returns the account or ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at, last_login FROM admin_account WHERE id = ?",
		id)
	return scanAccount(row.Scan)
}

// Create inserts a new account.
// PRE: a has been validated and carries a bcrypt hash
// POST: Returns the assigned identifier
func (s *SQLiteStore) Create(ctx context.Context, a domain.Account) (int64, error) {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO admin_account (username, password_hash, created_at) VALUES (?, ?, ?)",
		a.Username, a.PasswordHash, createdAt.Format(timeFormat))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// UpdatePasswordHash replaces the stored hash for one account.
// POST: Returns ErrNotFound when the id is absent
func (s *SQLiteStore) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE admin_account SET password_hash = ? WHERE id = ?", hash, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchLastLogin stamps last_login with the current time.
// PRE: credentials for id have just been verified
func (s *SQLiteStore) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE admin_account SET last_login = ? WHERE id = ?",
		time.Now().UTC().Format(timeFormat), id)
	return err
}

// Count returns the total number of admin accounts.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM admin_account").Scan(&count)
	return count, err
}

// scanAccount extracts an Account from a row scanner function.
func scanAccount(scan func(dest ...any) error) (domain.Account, error) {
	var entity domain.Account
	var createdAt string
	var lastLogin sql.NullString
	err := scan(&entity.ID, &entity.Username, &entity.PasswordHash, &createdAt, &lastLogin)
	if err == sql.ErrNoRows {
		return domain.Account{}, ErrNotFound
	}
	if err != nil {
		return domain.Account{}, err
	}
	entity.CreatedAt, _ = parseTime(createdAt)
	if lastLogin.Valid && lastLogin.String != "" {
		entity.LastLogin, _ = parseTime(lastLogin.String)
	}
	return entity, nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		t, err := time.Parse(f, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time: %s", s)
}
