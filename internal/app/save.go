package app

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/modkit/internal/engine/hierarchy"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// PackageSave is the outcome of saving one package.
type PackageSave struct {
	Package string
	Records int
	Status  domain.SessionStatus
}

// SaveReport is the outcome of a Save run.
type SaveReport struct {
	Packages []PackageSave
	// UnhandledNativeClasses lists classes with native serialization that is not allowed in
	// the configuration. Their native state is not part of the saves.
	UnhandledNativeClasses []string
}

// Save serializes every object of each named package in the world at worldPath and stores
// one save per package. Packages are saved concurrently, bounded by the configured parallelism.
func (a *App) Save(ctx context.Context, worldPath string, packages []string) (*SaveReport, error) {
	if len(packages) == 0 {
		return nil, domain.ErrNoPackagesSpecified
	}
	world, err := a.loadWorld(worldPath)
	if err != nil {
		return nil, err
	}
	return a.save(ctx, world, packages)
}

// SaveAll saves every package of the world at worldPath except engine-builtin ones.
func (a *App) SaveAll(ctx context.Context, worldPath string) (*SaveReport, error) {
	world, err := a.loadWorld(worldPath)
	if err != nil {
		return nil, err
	}
	var packages []string
	for _, name := range world.Packages() {
		if !isScriptPackage(name) {
			packages = append(packages, name)
		}
	}
	if len(packages) == 0 {
		return nil, domain.ErrNoPackagesSpecified
	}
	return a.save(ctx, world, packages)
}

func (a *App) save(ctx context.Context, world ports.World, packages []string) (*SaveReport, error) {
	cfg, store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	defer a.closeStore(store)

	hierarchy.ResetUnhandledNativeClasses()

	var (
		mu      sync.Mutex
		results []PackageSave
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)

	for _, pkg := range packages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := a.savePackage(ctx, world, cfg, store, pkg)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(x, y PackageSave) int {
		return strings.Compare(x.Package, y.Package)
	})
	return &SaveReport{
		Packages:               results,
		UnhandledNativeClasses: hierarchy.UnhandledNativeClasses(),
	}, nil
}

func (a *App) savePackage(
	ctx context.Context,
	world ports.World,
	cfg *domain.Config,
	store ports.SaveStore,
	pkg string,
) (PackageSave, error) {
	_, vertex := a.telemetry.Record(ctx, "save "+pkg)

	records, err := a.serializePackage(world, cfg, pkg)
	if err != nil {
		vertex.Complete(err)
		return PackageSave{}, err
	}

	changed, err := store.Put(domain.SaveFile{
		FormatVersion: domain.SaveFormatVersion.String(),
		Package:       pkg,
		Objects:       records,
	})
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to store save"), "package", pkg)
		vertex.Complete(err)
		return PackageSave{}, err
	}

	status := domain.SessionStatusCompleted
	if !changed {
		status = domain.SessionStatusUnchanged
		vertex.Cached()
	}
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d records, %s", len(records), status))
	vertex.Complete(nil)

	return PackageSave{Package: pkg, Records: len(records), Status: status}, nil
}

// serializePackage runs one serialization session over every object in pkg.
func (a *App) serializePackage(world ports.World, cfg *domain.Config, pkg string) ([]domain.Record, error) {
	source := world.FindPackage(pkg)
	if source.IsNone() {
		return nil, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "failed to save package"), "package", pkg)
	}

	var records []domain.Record
	err := hierarchy.Guard(func() error {
		s := a.newSession(world, cfg)
		s.InitializeForSerialization(source)
		for _, obj := range world.ObjectsIn(source) {
			s.SerializeObject(obj)
		}
		var err error
		records, err = s.Finalize()
		return err
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "save session failed"), "package", pkg)
	}
	return records, nil
}
