package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CLOCK_CONFIG_PATH",
		"CLOCK_DB_PATH",
		"CLOCK_LOG_LEVEL",
		"CLOCK_LOG_PATH",
		"CLOCK_WATCH_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".clockdb"), cfg.DB.Path)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Empty(t, cfg.Log.Path)
	require.Equal(t, time.Second, cfg.Watch.RefreshInterval())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "clock.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db:
  path: /tmp/work.db
log:
  level: debug
watch:
  interval: 5
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/work.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 5*time.Second, cfg.Watch.RefreshInterval())
}

func TestLoad_FileFromEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "clock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db:\n  path: /tmp/env.db\n"), 0o600))
	t.Setenv("CLOCK_CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "/tmp/env.db", cfg.DB.Path)
	require.Equal(t, "warn", cfg.Log.Level, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "clock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db:\n  path: /tmp/file.db\n"), 0o600))
	t.Setenv("CLOCK_DB_PATH", "/tmp/override.db")
	t.Setenv("CLOCK_LOG_LEVEL", "error")
	t.Setenv("CLOCK_LOG_PATH", "/tmp/clock.log")
	t.Setenv("CLOCK_WATCH_INTERVAL", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/override.db", cfg.DB.Path)
	require.Equal(t, "error", cfg.Log.Level)
	require.Equal(t, "/tmp/clock.log", cfg.Log.Path)
	require.Equal(t, 3*time.Second, cfg.Watch.RefreshInterval())
}

func TestLoad_InvalidInterval(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOCK_DB_PATH", "/tmp/x.db")

	t.Setenv("CLOCK_WATCH_INTERVAL", "soon")
	_, err := Load("")
	require.Error(t, err)

	t.Setenv("CLOCK_WATCH_INTERVAL", "0")
	_, err = Load("")
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "clock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/data/clock.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "data", "clock.db"), got)

	got, err = ExpandHome("~")
	require.NoError(t, err)
	require.Equal(t, home, got)

	got, err = ExpandHome("/abs/clock.db")
	require.NoError(t, err)
	require.Equal(t, "/abs/clock.db", got)

	got, err = ExpandHome("~other/clock.db")
	require.NoError(t, err)
	require.Equal(t, "~other/clock.db", got)
}
