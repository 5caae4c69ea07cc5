// Package uploads persists supplier attachments on the local filesystem.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrTypeNotAllowed is returned for file extensions outside the allow-list.
var ErrTypeNotAllowed = errors.New("file type not allowed")

// allowedExtensions is the accepted attachment set: documents,
// spreadsheets and images.
var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".doc":  {},
	".docx": {},
	".xls":  {},
	".xlsx": {},
}

// Stored describes a persisted attachment.
type Stored struct {
	// Name is the sanitised original filename, shown to users.
	Name string
	// URL is the retrievable path, unique per upload.
	URL string
}

// Store writes attachment files into a single directory. Collisions are
// avoided only by the uniqueness of the generated prefix; files are never
// deduplicated or cleaned up.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("uploads: mkdir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory files are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the content under a uuid-prefixed filename and returns its
// URL. Two uploads of the same original name produce distinct URLs.
func (s *Store) Save(originalName string, r io.Reader) (Stored, error) {
	name := sanitizeFilename(originalName)
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExtensions[ext]; !ok {
		return Stored{}, ErrTypeNotAllowed
	}

	storedName := uuid.NewString() + "-" + name
	path := filepath.Join(s.dir, storedName)

	f, err := os.Create(path)
	if err != nil {
		return Stored{}, fmt.Errorf("uploads: create %s: %w", storedName, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return Stored{}, fmt.Errorf("uploads: write %s: %w", storedName, err)
	}

	return Stored{Name: name, URL: "/uploads/" + storedName}, nil
}

// sanitizeFilename strips any path components and replaces characters
// that are unsafe in a filename or URL path segment.
func sanitizeFilename(name string) string {
	name = filepath.Base(filepath.Clean(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" || out == "." || out == ".." {
		out = "file"
	}
	return out
}
