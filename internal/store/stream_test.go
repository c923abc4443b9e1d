package store

import (
	"reflect"
	"testing"
)

func TestStream_HidesDotValues(t *testing.T) {
	s, err := Open(Options{Filename: MemoryStore})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.Tag("notes.txt", "work"); err != nil {
		t.Fatal(err)
	}
	if err := s.Tag(".secrets.txt", "work"); err != nil {
		t.Fatal(err)
	}
	if err := s.Tag("notes.txt", ".internal"); err != nil {
		t.Fatal(err)
	}

	files, err := collect(s.FilesTagged("work"))
	if err != nil {
		t.Fatalf("FilesTagged failed: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"notes.txt"}) {
		t.Errorf("expected dot file suppressed, got %v", files)
	}

	tags, err := collect(s.TagsOf("notes.txt"))
	if err != nil {
		t.Fatalf("TagsOf failed: %v", err)
	}
	if !reflect.DeepEqual(tags, []string{"work"}) {
		t.Errorf("expected dot tag suppressed, got %v", tags)
	}

	all, err := collect(s.AllFiles())
	if err != nil {
		t.Fatalf("AllFiles failed: %v", err)
	}
	if !reflect.DeepEqual(all, []string{"notes.txt"}) {
		t.Errorf("expected dot file suppressed from AllFiles, got %v", all)
	}
}

func TestStream_ShowHidden(t *testing.T) {
	s, err := Open(Options{Filename: MemoryStore, ShowHidden: true})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.Tag(".secrets.txt", "work"); err != nil {
		t.Fatal(err)
	}
	if err := s.Tag("notes.txt", "work"); err != nil {
		t.Fatal(err)
	}

	files, err := collect(s.FilesTagged("work"))
	if err != nil {
		t.Fatalf("FilesTagged failed: %v", err)
	}
	want := []string{".secrets.txt", "notes.txt"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("FilesTagged = %v, want %v", files, want)
	}
}

func TestStore_SetShowHidden(t *testing.T) {
	s, err := Open(Options{Filename: MemoryStore})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.Tag(".secrets.txt", "work"); err != nil {
		t.Fatal(err)
	}

	files, err := collect(s.FilesTagged("work"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("expected hidden file suppressed, got %v", files)
	}

	s.SetShowHidden(true)
	files, err = collect(s.FilesTagged("work"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Errorf("expected hidden file shown, got %v", files)
	}
}

func TestStream_Next(t *testing.T) {
	s := openUnionFixture(t)

	stream, err := s.FilesTagged("alpha")
	if err != nil {
		t.Fatal(err)
	}

	first, ok := stream.Next()
	if !ok || first != "a.txt" {
		t.Errorf("first Next = %q, %v", first, ok)
	}
	second, ok := stream.Next()
	if !ok || second != "b.txt" {
		t.Errorf("second Next = %q, %v", second, ok)
	}

	if _, ok := stream.Next(); ok {
		t.Error("expected exhaustion after two values")
	}
	// Exhausted streams stay exhausted
	if _, ok := stream.Next(); ok {
		t.Error("expected Next to keep reporting false")
	}
	if err := stream.Err(); err != nil {
		t.Errorf("Err = %v, want nil", err)
	}
}

func TestStream_CloseEarly(t *testing.T) {
	s := openUnionFixture(t)

	stream, err := s.FilesTagged("alpha")
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := stream.Next(); !ok {
		t.Fatal("expected a first value")
	}
	if err := stream.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Closed streams read as exhausted
	if _, ok := stream.Next(); ok {
		t.Error("expected no values after Close")
	}
	if err := stream.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestStream_CollectEmpty(t *testing.T) {
	s, err := Open(Options{Filename: MemoryStore})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	values, err := collect(s.AllTags())
	if err != nil {
		t.Fatalf("AllTags failed: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("expected no values, got %v", values)
	}
}
