package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codefionn/ttok/internal/consts"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), settings)
	assert.Equal(t, "o200k_base", settings.DefaultEncoding)
	assert.Equal(t, "git", settings.GitBinary)
	assert.Empty(t, settings.LogPath)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"default_encoding": "cl100k_base", "offline_vocab": true}`), 0644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cl100k_base", settings.DefaultEncoding)
	assert.True(t, settings.OfflineVocab)
	assert.Equal(t, "git", settings.GitBinary)
	assert.Equal(t, "info", settings.LogLevel)
}

func TestLoad_BlankValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"default_encoding": " ", "git_binary": ""}`), 0644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, consts.DefaultEncoding, settings.DefaultEncoding)
	assert.Equal(t, consts.DefaultGitBinary, settings.GitBinary)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.DefaultEncoding = "p50k_base"
	settings.GitBinary = "/usr/local/bin/git"
	settings.LogPath = "/tmp/ttok.log"
	require.NoError(t, settings.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		consts.EnvEncoding:  "r50k_base",
		consts.EnvGitBinary: "/opt/git",
		consts.EnvOffline:   "true",
		consts.EnvLogLevel:  "debug",
		consts.EnvLogPath:   "/var/log/ttok.log",

		consts.EnvCPUProfile:  "/tmp/cpu.out",
		consts.EnvHeapProfile: "/tmp/heap.out",
	}

	settings := DefaultSettings()
	settings.ApplyEnv(func(key string) string { return env[key] })

	assert.Equal(t, "r50k_base", settings.DefaultEncoding)
	assert.Equal(t, "/opt/git", settings.GitBinary)
	assert.True(t, settings.OfflineVocab)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "/var/log/ttok.log", settings.LogPath)
	assert.Equal(t, "/tmp/cpu.out", settings.CPUProfile)
	assert.Equal(t, "/tmp/heap.out", settings.HeapProfile)
	assert.Empty(t, settings.TraceProfile)
}

func TestApplyEnv_IgnoresBlankAndInvalid(t *testing.T) {
	env := map[string]string{
		consts.EnvEncoding: "   ",
		consts.EnvOffline:  "maybe",
	}

	settings := DefaultSettings()
	settings.OfflineVocab = true
	settings.ApplyEnv(func(key string) string { return env[key] })

	assert.Equal(t, consts.DefaultEncoding, settings.DefaultEncoding)
	assert.True(t, settings.OfflineVocab)

	// nil lookup is a no-op
	settings.ApplyEnv(nil)
	assert.Equal(t, consts.DefaultEncoding, settings.DefaultEncoding)
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv(consts.EnvConfigPath, "/etc/ttok.json")
	assert.Equal(t, "/etc/ttok.json", GetConfigPath())

	t.Setenv(consts.EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if filepath.Separator == '/' {
		assert.Equal(t, "/xdg/ttok/config.json", GetConfigPath())
	}
}
