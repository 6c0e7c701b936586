package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override the catalog token
const (
	EnvToken         = "MOVIEGRIP_TMDB_TOKEN"
	EnvTokenFallback = "TMDB_TOKEN"
)

// Failure policies for the result list when a fetch fails
const (
	// PolicySplit clears results on a bad status and keeps them on transport errors
	PolicySplit = "split"
	PolicyClear = "clear"
	PolicyKeep  = "keep"
)

// ErrMissingToken is returned by Validate when no catalog token is configured
var ErrMissingToken = errors.New("catalog token is not set (set catalog.token or " + EnvToken + ")")

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Search   SearchConfig   `toml:"search"`
	Trending TrendingConfig `toml:"trending"`
	Storage  StorageConfig  `toml:"storage"`
	Log      LogConfig      `toml:"log"`
	UI       UISettings     `toml:"ui"`
}

// CatalogConfig configures the movie catalog API
type CatalogConfig struct {
	BaseURL      string   `toml:"base_url"`
	Token        string   `toml:"token"`
	ImageBaseURL string   `toml:"image_base_url"`
	Timeout      Duration `toml:"timeout"` // 0 keeps the HTTP client default
}

// SearchConfig configures debouncing and failure handling
type SearchConfig struct {
	Debounce      Duration `toml:"debounce"`
	FailurePolicy string   `toml:"failure_policy"`
}

// TrendingConfig configures the trending strip
type TrendingConfig struct {
	Limit int `toml:"limit"`
}

// StorageConfig configures the search-count store
type StorageConfig struct {
	Driver string `toml:"driver"` // sqlite or memory
	Path   string `toml:"path"`
}

// LogConfig configures the log file
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowTrending bool   `toml:"show_trending"`
	PosterSize   string `toml:"poster_size"`
}

// Duration is a time.Duration stored as text ("500ms", "10s")
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
	getenv   func(string) string
}

// NewConfigService creates a config service backed by the default config file
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service backed by the given file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{
		filePath: path,
		getenv:   os.Getenv,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/moviegrip/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "moviegrip", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, writing the defaults on first run
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return nil, err
		}
		cs.applyEnv(cfg)
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.fillDefaults()
	cs.applyEnv(cfg)

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may hold the API token
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) applyEnv(cfg *Config) {
	if cs.getenv == nil {
		return
	}
	if token := cs.getenv(EnvToken); token != "" {
		cfg.Catalog.Token = token
	} else if token := cs.getenv(EnvTokenFallback); token != "" {
		cfg.Catalog.Token = token
	}
}

// fillDefaults replaces zero values left by a partial config file
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = def.Catalog.BaseURL
	}
	if c.Catalog.ImageBaseURL == "" {
		c.Catalog.ImageBaseURL = def.Catalog.ImageBaseURL
	}
	if c.Search.Debounce.Duration <= 0 {
		c.Search.Debounce = def.Search.Debounce
	}
	if c.Search.FailurePolicy == "" {
		c.Search.FailurePolicy = def.Search.FailurePolicy
	}
	if c.Trending.Limit <= 0 {
		c.Trending.Limit = def.Trending.Limit
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = def.Storage.Driver
	}
	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.UI.PosterSize == "" {
		c.UI.PosterSize = def.UI.PosterSize
	}
}

// Validate checks the settings needed to talk to the catalog
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Catalog.Token) == "" {
		return ErrMissingToken
	}
	switch c.Search.FailurePolicy {
	case PolicySplit, PolicyClear, PolicyKeep:
	default:
		return fmt.Errorf("unknown search.failure_policy %q", c.Search.FailurePolicy)
	}
	switch c.Storage.Driver {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dataDir, err := os.UserCacheDir()
	if err != nil {
		dataDir = "."
	}

	return &Config{
		Version: 1,
		Catalog: CatalogConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
		},
		Search: SearchConfig{
			Debounce:      Duration{500 * time.Millisecond},
			FailurePolicy: PolicySplit,
		},
		Trending: TrendingConfig{
			Limit: 5,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   filepath.Join(dataDir, "moviegrip", "searches.db"),
		},
		Log: LogConfig{
			File:  "moviegrip.log",
			Level: "info",
		},
		UI: UISettings{
			ShowTrending: true,
			PosterSize:   "w500",
		},
	}
}
