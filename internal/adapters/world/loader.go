package world

import (
	"os"
	"path/filepath"

	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.WorldLoader for YAML world descriptions on disk.
type Loader struct{}

var _ ports.WorldLoader = (*Loader)(nil)

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the world description at path.
func (l *Loader) Load(path string) (ports.World, error) {
	w, err := Load(path)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Save writes the description of world to path.
func (l *Loader) Save(world ports.World, path string) error {
	w, ok := world.(*World)
	if !ok {
		return zerr.New("world was not created by this loader")
	}
	return Save(w, path)
}

// Load reads and decodes the world description at path.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read world description"), "path", path)
	}
	w, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return w, nil
}

// Save encodes w and writes it to path.
func Save(w *World, path string) error {
	data, err := Encode(w)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for world description")
	}
	//nolint:gosec // path is provided by user
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write world description")
	}
	return nil
}
