package savestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/json"
	"go.trai.ch/zerr"
)

// FileStore keeps one JSON document per package, named after the hash of the package name.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileStore creates a FileStore in dir, creating the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create save directory"), "dir", dir)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file holding the save of packageName.
func (s *FileStore) Path(packageName string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x.json", xxhash.Sum64String(packageName)))
}

// Get retrieves the save of packageName. It returns nil, nil when there is none.
func (s *FileStore) Get(packageName string) (*domain.SaveFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(packageName)
}

func (s *FileStore) get(packageName string) (*domain.SaveFile, error) {
	//nolint:gosec // Path is derived from a hash inside the store directory
	data, err := os.ReadFile(s.Path(packageName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read save"), "package", packageName)
	}
	return decode(data)
}

// Put stores save unless the stored save already has the same content.
func (s *FileStore) Put(save domain.SaveFile) (bool, error) {
	save, err := prepare(save)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, err := s.get(save.Package); err == nil && existing != nil && existing.Checksum == save.Checksum {
		return false, nil
	}

	data, err := json.MarshalIndent(save, "", "  ")
	if err != nil {
		return false, zerr.Wrap(err, "failed to encode save")
	}
	//nolint:gosec // Path is derived from a hash inside the store directory
	if err := os.WriteFile(s.Path(save.Package), data, 0o644); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to write save"), "package", save.Package)
	}
	return true, nil
}

// List returns the names of all saved packages, sorted.
func (s *FileStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list saves")
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		//nolint:gosec // Path is inside the store directory
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read save")
		}
		var header struct {
			Package string `json:"Package"`
		}
		if err := json.Unmarshal(data, &header); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to decode save"), "file", e.Name())
		}
		names = append(names, header.Package)
	}
	slices.Sort(names)
	return names, nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}
