package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the folio application configuration.
type Config struct {
	Library LibraryConfig `yaml:"library"`
	Reader  ReaderConfig  `yaml:"reader"`
}

type LibraryConfig struct {
	// Path to the DuckDB database file holding books and reading state.
	DatabasePath string `yaml:"database_path"`
	// Directory EPUB exports are written to.
	ExportDir string `yaml:"export_dir"`
}

type ReaderConfig struct {
	// Theme used for books that have no persisted theme yet.
	DefaultTheme string `yaml:"default_theme"`
}

// Default returns a Config populated with all default values.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Library: LibraryConfig{
			DatabasePath: filepath.Join(home, ".folio", "library.db"),
			ExportDir:    filepath.Join(home, ".folio", "exports"),
		},
		Reader: ReaderConfig{
			DefaultTheme: "dark",
		},
	}
}

// DefaultPath is where LoadOrCreate looks for the config file.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "folio", "config.yaml"), nil
}

// Load reads a YAML config file at path and merges it over defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// LoadOrCreate loads the config from path, writing defaults there first
// if no file exists yet.
func LoadOrCreate(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		return cfg, nil
	}

	return Load(path)
}
