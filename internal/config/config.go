package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/codefionn/ttok/internal/consts"
)

// Settings holds the persistent defaults of ttok. Command-line flags always
// take precedence over these values.
type Settings struct {
	DefaultEncoding string `json:"default_encoding"`
	GitBinary       string `json:"git_binary"`
	WorkingDir      string `json:"working_dir,omitempty"` // directory git runs in, empty means the process cwd
	OfflineVocab    bool   `json:"offline_vocab"`         // use embedded BPE tables instead of downloading them
	LogLevel        string `json:"log_level"`             // debug, info, warn, error, none
	LogPath         string `json:"log_path,omitempty"`    // logging is disabled when empty

	CPUProfile   string `json:"cpu_profile,omitempty"`
	HeapProfile  string `json:"heap_profile,omitempty"`
	TraceProfile string `json:"trace_profile,omitempty"`
}

func defaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := strings.TrimSpace(os.Getenv("APPDATA")); appData != "" {
			return filepath.Join(appData, consts.AppName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Roaming", consts.AppName)
	default:
		if configHome := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); configHome != "" {
			return filepath.Join(configHome, consts.AppName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".config", consts.AppName)
	}
}

// DefaultSettings returns the built-in defaults
func DefaultSettings() *Settings {
	return &Settings{
		DefaultEncoding: consts.DefaultEncoding,
		GitBinary:       consts.DefaultGitBinary,
		LogLevel:        "info",
	}
}

// Load reads settings from path. A missing file yields the defaults; fields
// absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	settings.fillDefaults()
	return settings, nil
}

func (s *Settings) fillDefaults() {
	if strings.TrimSpace(s.DefaultEncoding) == "" {
		s.DefaultEncoding = consts.DefaultEncoding
	}
	if strings.TrimSpace(s.GitBinary) == "" {
		s.GitBinary = consts.DefaultGitBinary
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
}

// ApplyEnv overrides settings from environment variables looked up through
// getenv. Blank values are ignored.
func (s *Settings) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := strings.TrimSpace(getenv(consts.EnvEncoding)); v != "" {
		s.DefaultEncoding = v
	}
	if v := strings.TrimSpace(getenv(consts.EnvGitBinary)); v != "" {
		s.GitBinary = v
	}
	if v := strings.TrimSpace(getenv(consts.EnvOffline)); v != "" {
		if offline, err := strconv.ParseBool(v); err == nil {
			s.OfflineVocab = offline
		}
	}
	if v := strings.TrimSpace(getenv(consts.EnvLogLevel)); v != "" {
		s.LogLevel = v
	}
	if v := strings.TrimSpace(getenv(consts.EnvLogPath)); v != "" {
		s.LogPath = v
	}
	if v := strings.TrimSpace(getenv(consts.EnvCPUProfile)); v != "" {
		s.CPUProfile = v
	}
	if v := strings.TrimSpace(getenv(consts.EnvHeapProfile)); v != "" {
		s.HeapProfile = v
	}
	if v := strings.TrimSpace(getenv(consts.EnvTraceProfile)); v != "" {
		s.TraceProfile = v
	}
}

// Save writes settings to path, creating the directory if needed
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}

// GetConfigPath returns the settings file path, honoring TTOK_CONFIG
func GetConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(consts.EnvConfigPath)); p != "" {
		return p
	}
	return filepath.Join(defaultConfigDir(), "config.json")
}
