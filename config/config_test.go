package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	d := Data{Logging: LoggingConfig{Level: "trace", Format: "xml"}, Parser: "grammar"}
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.addr")
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "parser")
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, LoadFrom(path))
	assert.Equal(t, Defaults(), Get())
}

func TestLoadFrom_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "server": {"addr": "127.0.0.1:9000"},
  "logging": {"level": "debug", "format": "json"},
  "documents_dir": "/tmp/docs",
  "custom_install_path": "/games/ets2",
  "parser": "line"
}`), 0644))

	require.NoError(t, LoadFrom(path))
	got := Get()
	assert.Equal(t, "127.0.0.1:9000", got.Server.Addr)
	assert.Equal(t, "debug", got.Logging.Level)
	assert.Equal(t, "json", got.Logging.Format)
	assert.Equal(t, "/tmp/docs", got.DocumentsDir)
	assert.Equal(t, "/games/ets2", got.CustomInstallPath)
	assert.Equal(t, "line", got.Parser)
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("FLEETDESK_LOGGING_LEVEL", "warn")
	require.NoError(t, LoadFrom(path))
	assert.Equal(t, "warn", Get().Logging.Level)
}

func TestLoadFrom_InvalidFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"parser": "grammar"}`), 0644))
	assert.Error(t, LoadFrom(path))
	assert.Equal(t, Defaults(), Get())
}

func TestSave_DoesNotOverwriteInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	original := []byte(`{"parser": "grammar", "custom_install_path": "/games/ets2"}`)
	require.NoError(t, os.WriteFile(path, original, 0644))
	require.Error(t, LoadFrom(path))

	data := Get()
	data.CustomInstallPath = "/elsewhere"
	assert.Error(t, Save(data))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, got)
	assert.Empty(t, Get().CustomInstallPath)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	require.NoError(t, LoadFrom(path))

	data := Get()
	data.CustomInstallPath = "/games/ets2"
	require.NoError(t, Save(data))
	assert.Equal(t, "/games/ets2", Get().CustomInstallPath)

	require.NoError(t, LoadFrom(path))
	assert.Equal(t, data, Get())
}

func TestSave_RejectsInvalid(t *testing.T) {
	require.NoError(t, LoadFrom(filepath.Join(t.TempDir(), "config.json")))
	data := Get()
	data.Parser = "grammar"
	assert.Error(t, Save(data))
	assert.Equal(t, "pattern", Get().Parser)
}
