package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetServeFlags restores the serve command's flags and config path after a
// test mutates them.
func resetServeFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		serveConfigPath = ""
		for _, name := range []string{"port", "uploads-dir", "config"} {
			f := serveCmd.Flags().Lookup(name)
			require.NotNil(t, f)
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		}
	})
}

func writeServeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveServeConfig_Defaults(t *testing.T) {
	resetServeFlags(t)

	cfg, err := resolveServeConfig(serveCmd)
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultUploadsDir, cfg.UploadsDir)
}

func TestResolveServeConfig_FileValuesApply(t *testing.T) {
	resetServeFlags(t)
	serveConfigPath = writeServeConfig(t, `{
		"port": 3000,
		"uploads_dir": "/srv/uploads",
		"database_url": "postgres://localhost/screener"
	}`)

	cfg, err := resolveServeConfig(serveCmd)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "/srv/uploads", cfg.UploadsDir)
	assert.Equal(t, "postgres://localhost/screener", cfg.DatabaseURL)
}

func TestResolveServeConfig_FlagsOverrideFile(t *testing.T) {
	resetServeFlags(t)
	serveConfigPath = writeServeConfig(t, `{"port": 3000, "uploads_dir": "/srv/uploads"}`)
	require.NoError(t, serveCmd.Flags().Set("port", "9090"))

	cfg, err := resolveServeConfig(serveCmd)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port, "explicit flag wins over config file")
	assert.Equal(t, "/srv/uploads", cfg.UploadsDir, "unset flag keeps config file value")
}

func TestResolveServeConfig_DatabaseURLFromEnv(t *testing.T) {
	resetServeFlags(t)
	t.Setenv("DATABASE_URL", "postgres://env/screener")

	cfg, err := resolveServeConfig(serveCmd)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/screener", cfg.DatabaseURL)
}

func TestResolveServeConfig_FileDatabaseURLWinsOverEnv(t *testing.T) {
	resetServeFlags(t)
	t.Setenv("DATABASE_URL", "postgres://env/screener")
	serveConfigPath = writeServeConfig(t, `{"database_url": "postgres://file/screener"}`)

	cfg, err := resolveServeConfig(serveCmd)
	require.NoError(t, err)

	assert.Equal(t, "postgres://file/screener", cfg.DatabaseURL)
}

func TestResolveServeConfig_MissingFile(t *testing.T) {
	resetServeFlags(t)
	serveConfigPath = filepath.Join(t.TempDir(), "nope.json")

	_, err := resolveServeConfig(serveCmd)
	assert.Error(t, err)
}
