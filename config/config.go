package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// StaffConfig holds the staff geometry handed to the editor. Units are
// whatever the render layer's pixels are; the TUI uses terminal cells.
type StaffConfig struct {
	Measures  int     `json:"measures"`
	BeatWidth float64 `json:"beatWidth"`
	LineGap   float64 `json:"lineGap"`
}

// MIDIConfig selects the playback output.
type MIDIConfig struct {
	PortName string `json:"portName,omitempty"`
}

// User is an account the API server accepts logins for.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// APIConfig configures the HTTP surface.
type APIConfig struct {
	Addr  string `json:"addr,omitempty"`
	Users []User `json:"users,omitempty"`
}

// UIConfig stores editor preferences.
type UIConfig struct {
	LastTempo int    `json:"lastTempo,omitempty"`
	LastScore string `json:"lastScore,omitempty"`
	Palette   string `json:"palette,omitempty"` // optional .gpl file
}

// Config is the main configuration structure.
type Config struct {
	Staff StaffConfig `json:"staff"`
	MIDI  MIDIConfig  `json:"midi,omitempty"`
	API   APIConfig   `json:"api,omitempty"`
	UI    UIConfig    `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Staff: StaffConfig{
			Measures:  4,
			BeatWidth: 4,
			LineGap:   2,
		},
		API: APIConfig{
			Addr: ":8080",
			Users: []User{
				{Username: "demo", Email: "demo@example.com", Password: "demo"},
			},
		},
		UI: UIConfig{
			LastTempo: 120,
		},
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fiveline"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
