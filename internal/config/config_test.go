package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"SESSIONKIT_DB", "SESSIONKIT_DB_PATH", "SESSIONKIT_LOG_LEVEL", "SESSIONKIT_LOG_FORMAT", "SESSIONKIT_MAX_INPUT_BYTES", "SESSIONKIT_TITLE_FORMAT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".sessionkit", "sessions.db"), cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, int64(1<<20), cfg.MaxInputBytes)
	assert.Equal(t, "%d일차 세션: %s", cfg.TitleFormat)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "sessionkit.yaml")
	data := "db_path: /tmp/x.db\nlog_level: debug\nlog_format: json\nmax_input_bytes: 2048\ntitle_format: \"Day %d: %s\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, int64(2048), cfg.MaxInputBytes)
	assert.Equal(t, "Day %d: %s", cfg.TitleFormat)
}

func TestLoad_HomeFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".sessionkit")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sessionkit.yaml"), []byte("log_level: info\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "sessionkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/file.db\n"), 0o644))
	t.Setenv("SESSIONKIT_DB", "/tmp/env.db")
	t.Setenv("SESSIONKIT_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.LogFormat = "xml"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.MaxInputBytes = 0
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.TitleFormat = "no verbs"
	assert.Error(t, bad.Validate())
}

func TestCheckTitleFormat(t *testing.T) {
	for _, format := range []string{DefaultTitleFormat, "Day %d: %s", "%d · %s", "[%02d] %s"} {
		assert.NoError(t, CheckTitleFormat(format), format)
	}

	for _, format := range []string{"no verbs", "%s %d", "%%%d", "%d일차", "%s", "%d %s %s", "%d %d"} {
		assert.Error(t, CheckTitleFormat(format), format)
	}
}

func TestLoad_RejectsSwappedTitleVerbs(t *testing.T) {
	isolate(t)
	t.Setenv("SESSIONKIT_TITLE_FORMAT", "%s %d")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title_format")
}
