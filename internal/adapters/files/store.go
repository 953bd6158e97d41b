// Package files stores uploaded supporting documents on the local
// filesystem. Records reference uploads by generated filename only; file
// content never enters the database.
package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Errors surfaced to the HTTP boundary.
var (
	ErrUnsupportedType = errors.New("file type must be PDF, JPEG or PNG")
	ErrBadName         = errors.New("invalid file name")
)

// allowedExtensions for uploaded documents (photos, diploma and thesis
// copies, equivalence decrees).
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Store persists uploads under a single directory.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed.
// POST: dir exists and is writable by the process
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the upload directory, for static file serving.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes one upload under a generated unique name and returns that
// name. The name embeds the form field for traceability, a UUID for
// uniqueness, and keeps the original extension.
// PRE: field is a known form field name; src is the upload body
// POST: Returns the stored filename, never the caller-supplied one
func (s *Store) Save(field, originalName string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	name := field + "-" + uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return name, nil
}

// Open opens a previously stored upload by name, rejecting any name that
// would escape the upload directory.
// POST: Returns the file or ErrBadName / os.ErrNotExist
func (s *Store) Open(name string) (*os.File, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, ErrBadName
	}
	return os.Open(filepath.Join(s.dir, name))
}

// Remove deletes stored uploads by name, ignoring absent ones. Used when a
// record submission fails after its attachments were already written.
func (s *Store) Remove(names ...string) {
	for _, name := range names {
		if name == "" || name != filepath.Base(name) {
			continue
		}
		_ = os.Remove(filepath.Join(s.dir, name))
	}
}
