package admin

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"esursi/internal/adapters/storage"
	domain "esursi/internal/domain/admin"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return NewSQLiteStore(db)
}

func createTestAdmin(t *testing.T, s *SQLiteStore, username, password string) int64 {
	t.Helper()
	a := domain.Account{Username: username}
	if err := a.SetPassword(password); err != nil {
		t.Fatalf("SetPassword() = %v", err)
	}
	id, err := s.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("Create() = %v", err)
	}
	return id
}

// TestCreateAndGet covers the create/read round trip by username and id.
func TestCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id := createTestAdmin(t, s, "admin", "admin123")

	byName, err := s.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetByUsername() = %v", err)
	}
	if byName.ID != id || byName.Username != "admin" {
		t.Fatalf("GetByUsername() = %+v", byName)
	}
	if err := byName.CheckPassword("admin123"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if !byName.LastLogin.IsZero() {
		t.Fatal("LastLogin must start empty")
	}

	byID, err := s.GetByID(ctx, id)
	if err != nil || byID.Username != "admin" {
		t.Fatalf("GetByID() = %+v, %v", byID, err)
	}
}

// TestGetByUsername_Absent returns ErrNotFound.
func TestGetByUsername_Absent(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetByUsername(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByUsername(absent) = %v, want ErrNotFound", err)
	}
}

// TestCreate_DuplicateUsername enforces store-level username uniqueness.
func TestCreate_DuplicateUsername(t *testing.T) {
	s := openTestStore(t)
	createTestAdmin(t, s, "admin", "admin123")

	a := domain.Account{Username: "admin"}
	a.SetPassword("other-password")
	if _, err := s.Create(context.Background(), a); err == nil {
		t.Fatal("Create(duplicate username) = nil, want error")
	}
}

// TestTouchLastLogin stamps the login time as a side effect of success only.
func TestTouchLastLogin(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	id := createTestAdmin(t, s, "admin", "admin123")

	if err := s.TouchLastLogin(ctx, id); err != nil {
		t.Fatalf("TouchLastLogin() = %v", err)
	}
	got, _ := s.GetByID(ctx, id)
	if got.LastLogin.IsZero() {
		t.Fatal("LastLogin still zero after TouchLastLogin")
	}
}

// TestUpdatePasswordHash covers replacement and the absent-id path.
func TestUpdatePasswordHash(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	id := createTestAdmin(t, s, "admin", "admin123")

	a := domain.Account{Username: "admin"}
	if err := a.SetPassword("newpass456"); err != nil {
		t.Fatalf("SetPassword() = %v", err)
	}
	if err := s.UpdatePasswordHash(ctx, id, a.PasswordHash); err != nil {
		t.Fatalf("UpdatePasswordHash() = %v", err)
	}

	got, _ := s.GetByID(ctx, id)
	if err := got.CheckPassword("newpass456"); err != nil {
		t.Fatalf("new password does not verify: %v", err)
	}
	if err := got.CheckPassword("admin123"); err == nil {
		t.Fatal("old password still verifies after change")
	}

	if err := s.UpdatePasswordHash(ctx, 999, a.PasswordHash); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdatePasswordHash(absent) = %v, want ErrNotFound", err)
	}
}

// TestCount counts accounts.
func TestCount(t *testing.T) {
	s := openTestStore(t)
	if n, _ := s.Count(context.Background()); n != 0 {
		t.Fatalf("Count(empty) = %d", n)
	}
	createTestAdmin(t, s, "admin", "admin123")
	if n, _ := s.Count(context.Background()); n != 1 {
		t.Fatalf("Count() = %d, want 1", n)
	}
}
