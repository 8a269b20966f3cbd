// Package app implements the application layer for modkit.
package app

import (
	"slices"
	"strings"

	"go.trai.ch/modkit/internal/adapters/propcodec" //nolint:depguard // Sessions need a codec per world
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/modkit/internal/engine/hierarchy"
	"go.trai.ch/zerr"
)

// App runs save, load, diff and deps sessions against a world and a save store.
type App struct {
	configLoader ports.ConfigLoader
	stores       ports.SaveStoreOpener
	worlds       ports.WorldLoader
	logger       ports.Logger
	telemetry    ports.Telemetry
	root         string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	stores ports.SaveStoreOpener,
	worlds ports.WorldLoader,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		stores:       stores,
		worlds:       worlds,
		logger:       logger,
		telemetry:    telemetry,
		root:         ".",
	}
}

// WithRoot sets the directory holding modkit.yaml. Relative save directories resolve against it.
func (a *App) WithRoot(root string) *App {
	a.root = root
	return a
}

func (a *App) loadConfig() (*domain.Config, error) {
	cfg, err := a.configLoader.Load(a.root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// openStore loads the configuration and opens the save store it selects.
func (a *App) openStore() (*domain.Config, ports.SaveStore, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := a.stores.Open(*cfg, a.root)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to open save store")
	}
	return cfg, store, nil
}

func (a *App) closeStore(store ports.SaveStore) {
	if err := store.Close(); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to close save store"))
	}
}

// readSave returns the stored save of pkg after checking its format version.
func readSave(store ports.SaveStore, pkg string) (*domain.SaveFile, error) {
	save, err := store.Get(pkg)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read save"), "package", pkg)
	}
	if save == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSaveNotFound, "failed to read save"), "package", pkg)
	}
	if err := domain.CheckSaveFormat(save.FormatVersion); err != nil {
		return nil, zerr.With(err, "package", pkg)
	}
	return save, nil
}

func (a *App) loadWorld(path string) (ports.World, error) {
	world, err := a.worlds.Load(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load world"), "path", path)
	}
	return world, nil
}

// newSession creates a serializer over world with the configured marks and allowed native
// classes registered. Entries naming objects that do not exist are skipped with a warning.
func (a *App) newSession(world ports.World, cfg *domain.Config) *hierarchy.Serializer {
	s := hierarchy.NewSerializer(world, propcodec.New(world), a.logger)

	for _, path := range cfg.AllowedNativeClasses {
		class := world.FindByPath(path)
		if class.IsNone() {
			a.logger.Warn("allowed native class " + path + " does not exist")
			continue
		}
		s.AllowNativeClass(class)
	}

	tags := make([]string, 0, len(cfg.ObjectMarks))
	for tag := range cfg.ObjectMarks {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	for _, tag := range tags {
		path := cfg.ObjectMarks[tag]
		obj := world.FindByPath(path)
		if obj.IsNone() {
			a.logger.Warn("object mark " + tag + " points to missing object " + path)
			continue
		}
		s.SetObjectMark(obj, tag)
	}
	return s
}

// allIndices returns 0..n-1.
func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// isScriptPackage reports whether name is an engine-builtin package.
func isScriptPackage(name string) bool {
	return strings.HasPrefix(name, hierarchy.ScriptPackagePrefix)
}
