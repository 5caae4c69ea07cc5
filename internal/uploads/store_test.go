package uploads

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveSameNameTwice(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	first, err := store.Save("invoice.pdf", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := store.Save("invoice.pdf", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if first.URL == second.URL {
		t.Fatalf("expected distinct URLs, both %s", first.URL)
	}
	if first.Name != "invoice.pdf" || second.Name != "invoice.pdf" {
		t.Fatalf("names = %q, %q, want invoice.pdf", first.Name, second.Name)
	}

	for _, stored := range []Stored{first, second} {
		path := filepath.Join(store.Dir(), strings.TrimPrefix(stored.URL, "/uploads/"))
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("stored file missing: %v", err)
		}
	}
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for _, name := range []string{"run.exe", "script.sh", "noext", "archive.tar.gz"} {
		if _, err := store.Save(name, strings.NewReader("x")); !errors.Is(err, ErrTypeNotAllowed) {
			t.Fatalf("Save(%q) = %v, want ErrTypeNotAllowed", name, err)
		}
	}
}

func TestSaveSanitizesFilename(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	stored, err := store.Save("../../etc/pass wd&.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if stored.Name != "pass_wd_.pdf" {
		t.Fatalf("sanitised name = %q, want pass_wd_.pdf", stored.Name)
	}
	if strings.Contains(stored.URL, "..") {
		t.Fatalf("URL leaks path traversal: %s", stored.URL)
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d files in upload dir, want 1", len(entries))
	}
	if !strings.HasSuffix(entries[0].Name(), "-pass_wd_.pdf") {
		t.Fatalf("stored file %q lacks sanitised suffix", entries[0].Name())
	}
}

func TestSanitizeFilenameFallback(t *testing.T) {
	for _, name := range []string{"", ".", ".."} {
		if got := sanitizeFilename(name); got != "file" {
			t.Fatalf("sanitizeFilename(%q) = %q, want file", name, got)
		}
	}
}
