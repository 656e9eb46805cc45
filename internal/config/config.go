package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/qawamdev/qawam/internal/model"
)

// Config holds all qawam configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Advisor    AdvisorConfig    `toml:"advisor"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Language string `toml:"language"`
	Currency string `toml:"currency,omitempty"`
	DataDir  string `toml:"data_dir,omitempty"`
}

// AdvisorConfig holds the remote advisor settings. An empty key means the
// advisor runs offline on the local heuristic.
type AdvisorConfig struct {
	APIKey  string `toml:"api_key,omitempty"`
	BaseURL string `toml:"base_url,omitempty"`
	Model   string `toml:"model,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Language: string(model.Arabic),
			Currency: "SAR",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Language returns the configured display language.
func (c Config) Language() model.Language {
	if c.General.Language == string(model.English) {
		return model.English
	}
	return model.Arabic
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "qawam")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "qawam")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the SQLite database, honoring the
// configured override.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "qawam")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "qawam")
}

// DBPath returns the full path to the database file.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "qawam.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// AdvisorAPIKey returns the API key from env var or config, in that order.
func AdvisorAPIKey(cfg Config) string {
	if key := os.Getenv("QAWAM_API_KEY"); key != "" {
		return key
	}
	return cfg.Advisor.APIKey
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
