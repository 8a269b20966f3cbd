package app

import (
	"context"
	"slices"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/engine/hierarchy"
	"go.trai.ch/zerr"
)

// Deps returns the packages the stored save of pkg references, sorted.
func (a *App) Deps(_ context.Context, pkg string) ([]string, error) {
	_, store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	defer a.closeStore(store)

	save, err := readSave(store, pkg)
	if err != nil {
		return nil, err
	}

	var packages []string
	err = hierarchy.Guard(func() error {
		s := hierarchy.NewSerializer(nil, nil, a.logger)
		s.InitializeForDeserialization(domain.NoObject, save.Objects)
		packages = s.CollectReferencedPackages(allIndices(len(save.Objects)))
		_, err := s.Finalize()
		return err
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "deps session failed"), "package", pkg)
	}

	packages = slices.DeleteFunc(packages, func(name string) bool { return name == pkg })
	slices.Sort(packages)
	return packages, nil
}

// List returns the packages that have a stored save.
func (a *App) List(_ context.Context) ([]string, error) {
	_, store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	defer a.closeStore(store)

	names, err := store.List()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list saves")
	}
	return names, nil
}
