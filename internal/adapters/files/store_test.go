package files

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() = %v", err)
	}
	return s
}

// TestSaveAndOpen round-trips an upload through a generated name.
func TestSaveAndOpen(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save("photoIdentite", "me.JPG", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if !strings.HasPrefix(name, "photoIdentite-") || !strings.HasSuffix(name, ".jpg") {
		t.Fatalf("generated name = %q", name)
	}

	f, err := s.Open(name)
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer f.Close()
	data, _ := io.ReadAll(f)
	if string(data) != "jpeg-bytes" {
		t.Fatalf("content = %q", data)
	}
}

// TestSave_GeneratesUniqueNames verifies two saves never collide.
func TestSave_GeneratesUniqueNames(t *testing.T) {
	s := newTestStore(t)
	a, _ := s.Save("copieThese", "these.pdf", strings.NewReader("a"))
	b, _ := s.Save("copieThese", "these.pdf", strings.NewReader("b"))
	if a == b {
		t.Fatalf("Save() produced colliding names %q", a)
	}
}

// TestSave_RejectsUnsupportedType enforces the upload whitelist.
func TestSave_RejectsUnsupportedType(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Save("photoIdentite", "evil.exe", strings.NewReader("x")); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("Save(exe) = %v, want ErrUnsupportedType", err)
	}
	if _, err := s.Save("photoIdentite", "noext", strings.NewReader("x")); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("Save(no extension) = %v, want ErrUnsupportedType", err)
	}
}

// TestOpen_RejectsTraversal blocks names that escape the upload directory.
func TestOpen_RejectsTraversal(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"../etc/passwd", "a/b.pdf", "", ".hidden"} {
		if _, err := s.Open(name); !errors.Is(err, ErrBadName) {
			t.Errorf("Open(%q) = %v, want ErrBadName", name, err)
		}
	}
}

// TestRemove deletes stored uploads and ignores absent or unsafe names.
func TestRemove(t *testing.T) {
	s := newTestStore(t)
	name, _ := s.Save("copieDiplome", "d.pdf", strings.NewReader("x"))

	s.Remove(name, "ghost.pdf", "../nope")
	if _, err := s.Open(name); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open(removed) = %v, want not-exist", err)
	}
}
