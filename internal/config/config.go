package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoSource is returned when a config names neither a dataset file nor a source URL.
var ErrNoSource = errors.New("config missing dataset_path or source_url")

// Config holds CLI configuration stored at ~/.cardlist/config.
type Config struct {
	DatasetPath string        `yaml:"dataset_path,omitempty"`
	SourceURL   string        `yaml:"source_url,omitempty"`
	APIKey      string        `yaml:"api_key,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
	VimKeys     bool          `yaml:"vim_keys"`
	LogFile     string        `yaml:"log_file,omitempty"`
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cardlist", "config")
}

// Load reads the config file and requires a dataset source.
func Load() (*Config, error) {
	cfg, err := Read()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read parses the config file without checking for a dataset source.
// Returns error if missing or insecure.
func Read() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	// The file may carry an api_key for the remote source.
	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Validate reports whether the config names a dataset source.
func (c *Config) Validate() error {
	if c.DatasetPath == "" && c.SourceURL == "" {
		return ErrNoSource
	}
	return nil
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}
	// WriteFile keeps the mode of an existing file.
	return os.Chmod(path, 0600)
}
