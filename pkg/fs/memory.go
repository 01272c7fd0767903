package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// MemoryFS is an in-memory FS. It lets callers run depub against buffers
// whose oracle inspects memory instead of disk.
type MemoryFS struct {
	mu     sync.RWMutex
	files  map[string]memoryFile
	writes map[string]int
}

type memoryFile struct {
	data []byte
	perm os.FileMode
}

var _ FS = (*MemoryFS)(nil)

// NewMemoryFS creates an empty in-memory FS.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:  make(map[string]memoryFile),
		writes: make(map[string]int),
	}
}

// AddFile creates or replaces a file without counting it as a write.
func (m *MemoryFS) AddFile(path, content string, perm os.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = memoryFile{data: []byte(content), perm: perm}
}

// Content returns the current content of a file, or "" if it does not exist.
func (m *MemoryFS) Content(path string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return string(m.files[filepath.Clean(path)].data)
}

// Writes returns how many times WriteFile targeted path.
func (m *MemoryFS) Writes(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes[filepath.Clean(path)]
}

// Exists checks if a file or directory exists at the given path.
func (m *MemoryFS) Exists(path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	path = filepath.Clean(path)
	if _, ok := m.files[path]; ok {
		return true, nil
	}
	return m.isDirLocked(path), nil
}

// IsDir checks if the path is a directory, i.e. the parent of some file.
func (m *MemoryFS) IsDir(path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	path = filepath.Clean(path)
	if _, ok := m.files[path]; ok {
		return false, nil
	}
	if m.isDirLocked(path) {
		return true, nil
	}
	return false, notExist("stat", path)
}

// ReadFile reads the contents of a file.
func (m *MemoryFS) ReadFile(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, notExist("open", path)
	}
	return append([]byte(nil), f.data...), nil
}

// WriteFile replaces the content of a file. An existing file keeps its permission bits.
func (m *MemoryFS) WriteFile(filename string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	filename = filepath.Clean(filename)
	if f, ok := m.files[filename]; ok {
		perm = f.perm
	}
	m.files[filename] = memoryFile{data: append([]byte(nil), data...), perm: perm}
	m.writes[filename]++
	return nil
}

// FileMode returns the permission bits of a regular file.
func (m *MemoryFS) FileMode(path string) (os.FileMode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	path = filepath.Clean(path)
	if f, ok := m.files[path]; ok {
		return f.perm, nil
	}
	if m.isDirLocked(path) {
		return 0, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	return 0, notExist("stat", path)
}

// Glob returns the sorted files matching the pattern.
func (m *MemoryFS) Glob(pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matches []string
	for name := range m.files {
		if ok, _ := filepath.Match(pattern, name); ok {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// ExpandPath returns path unchanged; MemoryFS has no home directory.
func (m *MemoryFS) ExpandPath(path string) (string, error) {
	return path, nil
}

// IsNotExist checks if an error indicates that a file or directory doesn't exist.
func (m *MemoryFS) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (m *MemoryFS) isDirLocked(path string) bool {
	prefix := path + string(filepath.Separator)
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func notExist(op, path string) error {
	return &iofs.PathError{Op: op, Path: path, Err: iofs.ErrNotExist}
}
