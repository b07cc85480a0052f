// Package resources defines the byte acquisition and persistence
// collaborators used around the core parse/serialize pipeline. The parser
// uses a Source to fetch external TILT files named on the "TILT=" line.
package resources

import (
	"errors"
	"fmt"
	"os"
)

// ErrEmptyResource is returned when an acquired resource has no content.
// An empty file can never be a valid LM-63 document or TILT table.
var ErrEmptyResource = errors.New("resource is empty")

// Source acquires the raw bytes of a named resource.
type Source interface {
	Acquire(name string) ([]byte, error)
}

// Sink persists bytes under a named resource.
type Sink interface {
	Persist(name string, data []byte) error
}

// FileSource reads resources from the filesystem, relative to the process
// working directory unless names are absolute.
type FileSource struct{}

func (FileSource) Acquire(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("acquire %s: %w", name, ErrEmptyResource)
	}
	return data, nil
}

// FileSink writes resources to the filesystem.
type FileSink struct{}

func (FileSink) Persist(name string, data []byte) error {
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("persist %s: %w", name, err)
	}
	return nil
}
