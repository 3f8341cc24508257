package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBackendURL is used when neither flags, env vars, nor
// settings.json name a backend.
const DefaultBackendURL = "http://localhost:8001"

// Settings represents the settings.json file under the forja home
// directory. Pointer fields distinguish "not configured" from zero
// values so CLI flags and env vars can take precedence.
type Settings struct {
	BackendURL      string `json:"backend_url,omitempty"`
	Debug           *bool  `json:"debug,omitempty"`
	ErrorClearDelay *int   `json:"error_clear_delay,omitempty"`
	MaxLogFiles     *int   `json:"max_log_files,omitempty"`
	SSHHost         string `json:"ssh_host,omitempty"`
	SSHPort         string `json:"ssh_port,omitempty"`
}

// ForjaHome returns the forja home directory (~/.forja)
func ForjaHome() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".forja"), nil
}

// SettingsPath returns the path of the settings file
func SettingsPath() (string, error) {
	home, err := ForjaHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "settings.json"), nil
}

// LoadSettings reads settings.json from the forja home directory. A
// missing file yields empty settings, not an error.
func LoadSettings() (*Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFromPath(path)
}

// LoadSettingsFromPath reads settings from an explicit path (used in
// tests)
func LoadSettingsFromPath(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return &settings, nil
}
