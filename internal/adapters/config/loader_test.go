package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/internal/adapters/config"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func readBack(t *testing.T, path string) config.File {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var file config.File
	require.NoError(t, yaml.Unmarshal(data, &file))
	return file
}

func TestLoader_CreatesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Times(1)

	dir := t.TempDir()
	cfg, err := config.NewLoader(log).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), *cfg)

	file := readBack(t, filepath.Join(dir, config.DefaultFilename))
	require.NotNil(t, file.Store)
	assert.Equal(t, "file", *file.Store)
	require.NotNil(t, file.Parallelism)
	assert.Equal(t, 4, *file.Parallelism)
}

func TestLoader_CompletesMissingKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)
	content := `
store: sqlite
objectMarks:
  GameState: /Game/Maps/Main.State
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.NewLoader(log).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.StoreSQLite, cfg.Store)
	assert.Equal(t, "saves", cfg.SaveDir)
	assert.Equal(t, 4, cfg.Parallelism)
	assert.Equal(t, map[string]string{"GameState": "/Game/Maps/Main.State"}, cfg.ObjectMarks)

	file := readBack(t, path)
	require.NotNil(t, file.SaveDir)
	assert.Equal(t, "saves", *file.SaveDir)
	assert.Equal(t, "sqlite", *file.Store)
	assert.Equal(t, []string{"/Script/CoreUObject.Object"}, file.AllowedNativeClasses)
}

func TestLoader_LeavesCompleteFileUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)
	content := `saveDir: data
store: file
parallelism: 2
allowedNativeClasses: []
objectMarks: {}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.NewLoader(log).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.SaveDir)
	assert.Equal(t, 2, cfg.Parallelism)
	assert.Empty(t, cfg.AllowedNativeClasses)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestLoader_RestoresMalformedFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte("store: [unterminated"), 0o600))

	cfg, err := config.NewLoader(log).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), *cfg)

	file := readBack(t, path)
	assert.Equal(t, "file", *file.Store)
}

func TestLoader_EnvOverrides(t *testing.T) {
	t.Setenv("MODKIT_SAVE_DIR", "/var/modkit")
	t.Setenv("MODKIT_STORE", "sqlite")
	t.Setenv("MODKIT_PARALLELISM", "8")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	cfg, err := config.NewLoader(log).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/var/modkit", cfg.SaveDir)
	assert.Equal(t, domain.StoreSQLite, cfg.Store)
	assert.Equal(t, 8, cfg.Parallelism)

	// Overrides are not persisted.
	file := readBack(t, filepath.Join(dir, config.DefaultFilename))
	assert.Equal(t, "saves", *file.SaveDir)
}

func TestLoader_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unknown store", "store: s3\n", domain.ErrUnknownStore},
		{"zero parallelism", "parallelism: 0\n", domain.ErrInvalidConfig},
		{"empty save dir", "saveDir: \"\"\n", domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)

			dir := t.TempDir()
			path := filepath.Join(dir, config.DefaultFilename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := config.NewLoader(log).Load(dir)
			require.ErrorIs(t, err, tt.wantErr)

			_, err = config.Load(path)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	content := "store: sqlite\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.StoreSQLite, cfg.Store)
	assert.Equal(t, "saves", cfg.SaveDir)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}
