// Package config loads the modkit.yaml framework configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "modkit.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a FileConfigLoader reading DefaultFilename.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename, logger: logger}
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	return l.load(filepath.Join(cwd, l.Filename))
}

func (l *FileConfigLoader) load(path string) (*domain.Config, error) {
	file, err := readFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Info("creating default configuration at " + path)
		file = &File{}
	case err != nil:
		var parseErr *parseError
		if !errors.As(err, &parseErr) {
			return nil, err
		}
		l.logger.Warn("configuration at " + path + " is malformed, restoring defaults: " + parseErr.Error())
		file = &File{}
	}

	if complete(file) {
		if err := writeFile(path, file); err != nil {
			return nil, err
		}
	}

	var overrides Env
	if err := env.Parse(&overrides); err != nil {
		return nil, zerr.Wrap(err, "failed to parse environment overrides")
	}
	applyEnv(file, &overrides)

	cfg := toDomain(file)
	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return &cfg, nil
}

// Load reads the configuration file at path without creating or completing it on disk.
// It serves embedders that only inspect a configuration; the CLI loads through
// FileConfigLoader, which also writes defaults back.
func Load(path string) (*domain.Config, error) {
	file, err := readFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.Wrap(err, "failed to read config file")
	}
	if err != nil {
		return nil, err
	}
	complete(file)
	cfg := toDomain(file)
	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return &cfg, nil
}

type parseError struct {
	err error
}

func (e *parseError) Error() string { return e.err.Error() }
func (e *parseError) Unwrap() error { return e.err }

func readFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &parseError{err: zerr.Wrap(err, "failed to parse config file")}
	}
	return &file, nil
}

func writeFile(path string, file *File) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return zerr.Wrap(err, "failed to encode config file")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create config directory")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write config file"), "path", path)
	}
	return nil
}

// complete fills missing keys with defaults and reports whether anything was added.
func complete(file *File) bool {
	def := domain.DefaultConfig()
	changed := false
	if file.SaveDir == nil {
		file.SaveDir = &def.SaveDir
		changed = true
	}
	if file.Store == nil {
		store := string(def.Store)
		file.Store = &store
		changed = true
	}
	if file.Parallelism == nil {
		file.Parallelism = &def.Parallelism
		changed = true
	}
	if file.AllowedNativeClasses == nil {
		file.AllowedNativeClasses = def.AllowedNativeClasses
		changed = true
	}
	if file.ObjectMarks == nil {
		file.ObjectMarks = def.ObjectMarks
		changed = true
	}
	return changed
}

func applyEnv(file *File, overrides *Env) {
	if overrides.SaveDir != nil {
		file.SaveDir = overrides.SaveDir
	}
	if overrides.Store != nil {
		file.Store = overrides.Store
	}
	if overrides.Parallelism != nil {
		file.Parallelism = overrides.Parallelism
	}
}

func toDomain(file *File) domain.Config {
	return domain.Config{
		SaveDir:              *file.SaveDir,
		Store:                domain.StoreKind(*file.Store),
		Parallelism:          *file.Parallelism,
		AllowedNativeClasses: file.AllowedNativeClasses,
		ObjectMarks:          file.ObjectMarks,
	}
}

func validate(cfg domain.Config) error {
	switch cfg.Store {
	case domain.StoreFile, domain.StoreSQLite:
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownStore, "failed to validate config"), "store", string(cfg.Store))
	}
	if cfg.Parallelism < 1 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "parallelism must be at least 1"), "parallelism", cfg.Parallelism)
	}
	if cfg.SaveDir == "" {
		return zerr.Wrap(domain.ErrInvalidConfig, "saveDir must not be empty")
	}
	for tag, path := range cfg.ObjectMarks {
		if tag == "" || path == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "object marks need a tag and a path"), "tag", tag)
		}
	}
	return nil
}
