package ports

import "go.trai.ch/modkit/internal/core/domain"

// SaveStore defines the interface for storing and retrieving package saves.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SaveStore interface {
	// Get retrieves the save for a package.
	// Returns nil, nil if not found.
	Get(packageName string) (*domain.SaveFile, error)

	// Put stores the save, filling in its checksum.
	// It reports whether the stored content changed.
	Put(save domain.SaveFile) (bool, error)

	// List returns the names of all packages with a save.
	List() ([]string, error)

	// Close releases the store.
	Close() error
}

// SaveStoreOpener opens the save store selected by a configuration.
type SaveStoreOpener interface {
	// Open opens the store. Relative save directories are resolved against root.
	Open(cfg domain.Config, root string) (SaveStore, error)
}
