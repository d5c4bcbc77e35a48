// Package document loads structured-data documents and exposes them as a
// generic tree of scalars, sequences and mappings.
package document

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/providers/file"
)

// ErrEmptyPath is returned by Load when no path is given.
var ErrEmptyPath = errors.New("document path cannot be empty")

// ReadFunc returns the raw contents of the document at path.
type ReadFunc func(path string) ([]byte, error)

// FileReader reads path from the local file system.
func FileReader(path string) ([]byte, error) {
	return file.Provider(path).ReadBytes()
}

// Load reads the raw document at path using read. Read failures are
// returned wrapped, so callers can still match the underlying error.
func Load(read ReadFunc, path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if read == nil {
		read = FileReader
	}

	raw, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	return raw, nil
}
