package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes/internal/config"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, config.StoreJSONL, cfg.Store)
	assert.Equal(t, config.DefaultPageSize, cfg.PageSize)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, filepath.Join(dir, "tasks.jsonl"), cfg.StorePath())
	require.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
store = "sqlite"
page_size = 5
no_color = true
`)

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, config.StoreSQLite, cfg.Store)
	assert.Equal(t, 5, cfg.PageSize)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, filepath.Join(dir, "tasks.db"), cfg.StorePath())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
store = "sqlite"
page_size = 5
`)
	t.Setenv("NOTES_STORE", "memory")
	t.Setenv("NOTES_PAGE_SIZE", "7")
	t.Setenv("NOTES_FILE", "/tmp/elsewhere.jsonl")

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.Equal(t, 7, cfg.PageSize)
	assert.Equal(t, "/tmp/elsewhere.jsonl", cfg.StorePath())
}

func TestLoad_InvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `store = `},
		{"wrong type", `page_size = "ten"`},
		{"unknown key", `colour = "red"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := config.Load(dir)

			var cfgErr *config.Error
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, filepath.Join(dir, config.FileName), cfgErr.Source)
		})
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("NOTES_PAGE_SIZE", "many")

	_, err := config.Load(t.TempDir())

	var cfgErr *config.Error
	require.True(t, errors.As(err, &cfgErr), "got %v", err)
	assert.Equal(t, "environment", cfgErr.Source)
}

func TestValidate(t *testing.T) {
	cfg := config.New(t.TempDir())
	cfg.Store = " SQLite "
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.StoreSQLite, cfg.Store)

	cfg.Store = "postgres"
	var cfgErr *config.Error
	assert.True(t, errors.As(cfg.Validate(), &cfgErr))

	cfg.Store = config.StoreJSONL
	cfg.PageSize = 0
	assert.True(t, errors.As(cfg.Validate(), &cfgErr))
}

func TestStorePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := config.New(t.TempDir())
	cfg.File = "~/tasks/notes.jsonl"
	assert.Equal(t, filepath.Join(home, "tasks", "notes.jsonl"), cfg.StorePath())

	cfg.File = ""
	cfg.Store = config.StoreMemory
	assert.Empty(t, cfg.StorePath())
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", config.AppName), config.DefaultConfigDir())
}
