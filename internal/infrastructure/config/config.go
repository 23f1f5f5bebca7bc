// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for dex configuration and data.
	DefaultConfigDir = ".dex"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDatabaseFile is the default SQLite file name.
	DefaultDatabaseFile = "dex.db"
	// DefaultProfile is the profile used when none is given.
	DefaultProfile = "default"
	// HomeEnvVar overrides the base directory holding DefaultConfigDir.
	HomeEnvVar = "DEX_HOME"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// Config holds static configuration (read-only after load).
type Config struct {
	API       APIConfig       `yaml:"api,omitempty"`
	Search    SearchConfig    `yaml:"search,omitempty"`
	SQLite    SQLiteConfig    `yaml:"sqlite,omitempty"`
	Favorites FavoritesConfig `yaml:"favorites,omitempty"`
}

// APIConfig holds configuration for the remote creature API.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url,omitempty" env:"DEX_API_BASE_URL"`
	Timeout        time.Duration `yaml:"timeout,omitempty" env:"DEX_API_TIMEOUT"`
	MaxConcurrency int           `yaml:"max_concurrency,omitempty" env:"DEX_MAX_CONCURRENCY"`
	UserAgent      string        `yaml:"user_agent,omitempty" env:"DEX_USER_AGENT"`
}

// SearchConfig holds defaults for search operations.
type SearchConfig struct {
	DefaultLimit  int    `yaml:"default_limit,omitempty" env:"DEX_SEARCH_LIMIT"`
	RandomCount   int    `yaml:"random_count,omitempty" env:"DEX_RANDOM_COUNT"`
	MaxID         int    `yaml:"max_id,omitempty" env:"DEX_MAX_ID"`
	VariantPolicy string `yaml:"variant_policy,omitempty" env:"DEX_VARIANT_POLICY"`
}

// SQLiteConfig holds configuration for the SQLite key-value store.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database.
	// Empty means DefaultDatabaseFile inside the config directory.
	Path string `yaml:"path,omitempty" env:"DEX_SQLITE_PATH"`
}

// FavoritesConfig holds configuration for the favorites slot.
type FavoritesConfig struct {
	// Key is the storage key for the default profile.
	Key string `yaml:"key,omitempty" env:"DEX_FAVORITES_KEY"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://pokeapi.co/api/v2",
			Timeout:        10 * time.Second,
			MaxConcurrency: 8,
			UserAgent:      "dex-core",
		},
		Search: SearchConfig{
			DefaultLimit:  12,
			RandomCount:   12,
			MaxID:         1010,
			VariantPolicy: "none",
		},
		Favorites: FavoritesConfig{
			Key: "pokemon-favorites",
		},
	}
}

// BaseDir returns the directory holding the .dex directory: $DEX_HOME when
// set, otherwise the user's home directory.
func BaseDir() (string, error) {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return home, nil
}

// Load loads configuration from the .dex directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(configFile)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Apply environment variable overrides
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigDir returns the path to the .dex config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// SQLitePath returns the database path, resolving the default location.
func (c *Config) SQLitePath(basePath string) string {
	if c.SQLite.Path != "" {
		return c.SQLite.Path
	}
	return filepath.Join(basePath, DefaultConfigDir, DefaultDatabaseFile)
}

// Exists checks if a dex config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}

// SanitizeProfileName converts a profile name to a valid key suffix.
func SanitizeProfileName(name string) string {
	// Convert to lowercase
	name = strings.ToLower(name)

	// Replace spaces and hyphens with underscores
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	// Remove any characters that aren't alphanumeric or underscore
	name = reNonAlphanumeric.ReplaceAllString(name, "")

	// Remove consecutive underscores
	name = reMultipleUnderscores.ReplaceAllString(name, "_")

	// Trim leading/trailing underscores
	name = strings.Trim(name, "_")

	if name == "" {
		return DefaultProfile
	}

	return name
}

// FavoritesKey returns the storage key holding a profile's favorites.
// The default profile uses the configured key unchanged.
func (c *Config) FavoritesKey(profile string) string {
	base := c.Favorites.Key
	if base == "" {
		base = Default().Favorites.Key
	}
	name := SanitizeProfileName(profile)
	if name == DefaultProfile {
		return base
	}
	return base + ":" + name
}
