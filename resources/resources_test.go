package resources

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSource_Acquire(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lamp.tlt")
	if err := os.WriteFile(path, []byte("1\n0\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	data, err := FileSource{}.Acquire(path)
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	if string(data) != "1\n0\n" {
		t.Fatalf("unexpected data: %q", data)
	}
}

func TestFileSource_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ies")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := (FileSource{}).Acquire(path); !errors.Is(err, ErrEmptyResource) {
		t.Fatalf("expected ErrEmptyResource, got %v", err)
	}
}

func TestFileSource_Missing(t *testing.T) {
	if _, err := (FileSource{}).Acquire(filepath.Join(t.TempDir(), "nope.ies")); err == nil {
		t.Fatalf("expected failure for missing file")
	}
}

func TestFileSink_Persist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ies")
	if err := (FileSink{}).Persist(path, []byte("IESNA91\n")); err != nil {
		t.Fatalf("persist failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "IESNA91\n" {
		t.Fatalf("unexpected contents: %q", data)
	}
}
