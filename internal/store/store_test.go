package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesStoreFile(t *testing.T) {
	tmpDir := t.TempDir()

	s, err := Open(Options{Filename: "test.ftagdb", StartDir: tmpDir})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	want := filepath.Join(tmpDir, "test.ftagdb")
	if s.Path() != want {
		t.Errorf("Path() = %q, want %q", s.Path(), want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("store file not created: %v", err)
	}
}

func TestOpen_CreatesSchema(t *testing.T) {
	s, err := Open(Options{Filename: MemoryStore})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	for _, table := range []string{"files", "tags", "file_tags"} {
		var count int
		err := s.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count)
		if err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Errorf("table %q not created", table)
		}
	}

	for _, index := range []string{"idx_files_path", "idx_tags_name", "idx_file_tags_pair", "idx_file_tags_tag"} {
		var count int
		err := s.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = ?`, index).Scan(&count)
		if err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Errorf("index %q not created", index)
		}
	}
}

func TestOpen_FindsAncestorStore(t *testing.T) {
	tmpDir := t.TempDir()

	// Create the store at the top
	s, err := Open(Options{Filename: "test.ftagdb", StartDir: tmpDir})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Tag("notes.txt", "work"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// Open from three levels down finds the same store
	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	s, err = Open(Options{Filename: "test.ftagdb", StartDir: nested})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	want := filepath.Join(tmpDir, "test.ftagdb")
	if s.Path() != want {
		t.Errorf("Path() = %q, want %q", s.Path(), want)
	}

	files, err := collect(s.FilesTagged("work"))
	if err != nil {
		t.Fatalf("FilesTagged failed: %v", err)
	}
	if len(files) != 1 || files[0] != "notes.txt" {
		t.Errorf("expected [notes.txt], got %v", files)
	}
}

func TestOpen_CreatesInStartDirWhenNotFound(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "sub")
	if err := os.Mkdir(nested, 0755); err != nil {
		t.Fatal(err)
	}

	// No store anywhere above, so it is created in the start directory
	s, err := Open(Options{Filename: "test.ftagdb", StartDir: nested})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	want := filepath.Join(nested, "test.ftagdb")
	if s.Path() != want {
		t.Errorf("Path() = %q, want %q", s.Path(), want)
	}
}

func TestOpen_InMemory(t *testing.T) {
	s, err := Open(Options{Filename: MemoryStore})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if s.Path() != MemoryStore {
		t.Errorf("Path() = %q, want %q", s.Path(), MemoryStore)
	}

	if err := s.Tag("notes.txt", "work"); err != nil {
		t.Fatalf("Tag failed: %v", err)
	}
	files, err := collect(s.FilesTagged("work"))
	if err != nil {
		t.Fatalf("FilesTagged failed: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("expected 1 file, got %d", len(files))
	}
}

func TestOpen_EmptyFilename(t *testing.T) {
	_, err := Open(Options{})
	if !errors.Is(err, ErrEmptyFilename) {
		t.Errorf("expected ErrEmptyFilename, got %v", err)
	}
}

func TestOpen_ExplicitDir(t *testing.T) {
	tmpDir := t.TempDir()

	s, err := Open(Options{Filename: "test.ftagdb", Dir: tmpDir})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	want := filepath.Join(tmpDir, "test.ftagdb")
	if s.Path() != want {
		t.Errorf("Path() = %q, want %q", s.Path(), want)
	}
}

func TestOpen_ExplicitDirMissing(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Open(Options{Filename: "test.ftagdb", Dir: filepath.Join(tmpDir, "missing")})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestOpen_SecondHandleFails(t *testing.T) {
	s, err := Open(Options{Filename: MemoryStore})
	if err != nil {
		t.Fatal(err)
	}

	_, err = Open(Options{Filename: MemoryStore})
	if !errors.Is(err, ErrAlreadyOpen) {
		t.Errorf("expected ErrAlreadyOpen, got %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// Close released the slot
	s2, err := Open(Options{Filename: MemoryStore})
	if err != nil {
		t.Fatalf("Open after Close failed: %v", err)
	}
	s2.Close()
}

func TestStore_CloseIdempotent(t *testing.T) {
	s, err := Open(Options{Filename: MemoryStore})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestStore_ReopenSeesData(t *testing.T) {
	tmpDir := t.TempDir()

	s, err := Open(Options{Filename: "test.ftagdb", StartDir: tmpDir})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Tag("notes.txt", "work"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(Options{Filename: "test.ftagdb", StartDir: tmpDir})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	tags, err := collect(s.TagsOf("notes.txt"))
	if err != nil {
		t.Fatalf("TagsOf failed: %v", err)
	}
	if len(tags) != 1 || tags[0] != "work" {
		t.Errorf("expected [work], got %v", tags)
	}
}

// collect drains a query result into a slice, propagating the query error.
func collect(s *Stream, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	return s.Collect()
}
