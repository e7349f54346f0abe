// Package uploads writes claim attachments to a local directory under
// randomized names.
package uploads

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store saves files beneath a single directory.
type Store struct {
	dir string
}

// NewStore returns a Store writing to dir, creating the directory if
// needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory files are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes content to a new file named by a random hex token followed by
// the extension of filename, and returns the file's path.
func (s *Store) Save(filename string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("reading upload %q: %w", filename, err)
	}
	path := filepath.Join(s.dir, newName(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload %q: %w", filename, err)
	}
	return path, nil
}

// Remove deletes previously saved files. Files already gone are ignored.
func (s *Store) Remove(paths ...string) error {
	var errs []error
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newName(filename string) string {
	id := uuid.New()
	return hex.EncodeToString(id[:]) + filepath.Ext(filename)
}
