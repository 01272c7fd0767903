package search

import (
	"fmt"
	"os"

	"github.com/lerenn/depub/pkg/fs"
)

// FileState is the committed content of one file under test.
// Buffer always holds the last content accepted by the oracle.
type FileState struct {
	Path   string
	Buffer string
	Perm   os.FileMode
}

// LoadFile reads path into a new FileState.
func LoadFile(fsys fs.FS, path string) (*FileState, error) {
	perm, err := fsys.FileMode(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
	}

	return &FileState{
		Path:   path,
		Buffer: string(data),
		Perm:   perm,
	}, nil
}

// Persist writes the committed buffer back to disk.
func (s *FileState) Persist(fsys fs.FS) error {
	if err := s.write(fsys, s.Buffer); err != nil {
		return fmt.Errorf("%w %s: %w", ErrRestore, s.Path, err)
	}
	return nil
}

func (s *FileState) write(fsys fs.FS, content string) error {
	return fsys.WriteFile(s.Path, []byte(content), s.Perm)
}
