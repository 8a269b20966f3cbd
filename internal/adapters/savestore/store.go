// Package savestore persists package saves on disk, as JSON files or in a SQLite database.
package savestore

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/modkit/internal/json"
	"go.trai.ch/zerr"
)

// DatabaseName is the SQLite database file inside the save directory.
const DatabaseName = "saves.db"

// Opener implements ports.SaveStoreOpener.
type Opener struct{}

var _ ports.SaveStoreOpener = Opener{}

// Open opens the store selected by cfg.
func (Opener) Open(cfg domain.Config, root string) (ports.SaveStore, error) {
	return Open(cfg, root)
}

// Open opens the store selected by cfg. A relative save directory is resolved against root.
func Open(cfg domain.Config, root string) (ports.SaveStore, error) {
	dir := cfg.SaveDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}

	switch cfg.Store {
	case domain.StoreFile, "":
		store, err := NewFileStore(dir)
		if err != nil {
			return nil, err
		}
		return store, nil
	case domain.StoreSQLite:
		store, err := OpenSQLite(filepath.Join(dir, DatabaseName))
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownStore, "failed to open save store"), "store", string(cfg.Store))
	}
}

// Checksum returns the content checksum of save. The stored checksum and the save time do
// not contribute, so saving identical records twice yields the same checksum.
func Checksum(save domain.SaveFile) (string, error) {
	save.Checksum = ""
	save.SavedAt = time.Time{}
	data, err := json.Marshal(save)
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode save")
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16), nil
}

// prepare fills in the checksum and save time of save.
func prepare(save domain.SaveFile) (domain.SaveFile, error) {
	sum, err := Checksum(save)
	if err != nil {
		return save, err
	}
	save.Checksum = sum
	if save.SavedAt.IsZero() {
		save.SavedAt = time.Now().UTC()
	}
	return save, nil
}

func decode(data []byte) (*domain.SaveFile, error) {
	var save domain.SaveFile
	if err := json.Unmarshal(data, &save); err != nil {
		return nil, zerr.Wrap(err, "failed to decode save")
	}
	sum, err := Checksum(save)
	if err != nil {
		return nil, err
	}
	if sum != save.Checksum {
		err := zerr.With(zerr.Wrap(domain.ErrSaveCorrupted, "failed to verify save"), "package", save.Package)
		return nil, zerr.With(zerr.With(err, "stored_checksum", save.Checksum), "checksum", sum)
	}
	return &save, nil
}
