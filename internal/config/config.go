package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rshade/callhistory/internal/pagination"
)

// Defaults applied by New before the config file and environment are read.
const (
	DefaultTimeoutSeconds = 30
	DefaultCacheTTL       = 300
	DefaultMemoryEntries  = 64
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"

	configFileName = "config.yaml"
)

// Validation errors.
var (
	ErrInvalidAPIURL          = errors.New("api.url must be an absolute http(s) URL")
	ErrInvalidDefaultPageSize = errors.New("pagination.default_page_size must be one of pagination.page_size_options")
	ErrInvalidPageSizeOptions = errors.New("pagination.page_size_options must be positive")
	ErrInvalidTimeout         = errors.New("api.timeout_seconds must be > 0")
	ErrInvalidCacheTTL        = errors.New("cache.ttl_seconds must be >= 0")
)

// Config is the callhistory configuration file.
type Config struct {
	API        APIConfig        `yaml:"api"`
	Pagination PaginationConfig `yaml:"pagination"`
	Cache      CacheConfig      `yaml:"cache"`
	Logging    LoggingConfig    `yaml:"logging"`
	Fixtures   FixturesConfig   `yaml:"fixtures"`

	// path is the file the config was loaded from and is saved to.
	path string
}

// APIConfig points at the calls GraphQL API.
type APIConfig struct {
	URL            string `yaml:"url"`
	Token          string `yaml:"token,omitempty"`
	Username       string `yaml:"username,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// PaginationConfig holds the page size preference defaults.
type PaginationConfig struct {
	DefaultPageSize int   `yaml:"default_page_size"`
	PageSizeOptions []int `yaml:"page_size_options"`
}

// CacheConfig configures the page cache in front of the API.
type CacheConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Directory     string `yaml:"directory,omitempty"`
	TTLSeconds    int    `yaml:"ttl_seconds"`
	MemoryEntries int    `yaml:"memory_entries"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// FixturesConfig points at a YAML file of calls served instead of the API.
type FixturesConfig struct {
	File string `yaml:"file,omitempty"`
}

// Default returns a Config holding only built-in defaults.
func Default() *Config {
	options := make([]int, len(pagination.DefaultPageSizeOptions))
	copy(options, pagination.DefaultPageSizeOptions)

	return &Config{
		API: APIConfig{
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Pagination: PaginationConfig{
			DefaultPageSize: pagination.DefaultPageSize,
			PageSizeOptions: options,
		},
		Cache: CacheConfig{
			Enabled:       true,
			TTLSeconds:    DefaultCacheTTL,
			MemoryEntries: DefaultMemoryEntries,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// New loads the config file from the config directory (if present) and
// applies environment overrides. Errors reading the file are ignored so a
// broken file never prevents the CLI from starting; Load reports them.
func New() *Config {
	cfg, err := Load(DefaultConfigPath())
	if err != nil {
		cfg = Default()
		cfg.path = DefaultConfigPath()
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the file the config is saved to.
func (c *Config) Path() string {
	return c.path
}

// SetPath changes the file the config is saved to.
func (c *Config) SetPath(path string) {
	c.path = path
}

// Save writes the config to its path with owner-only permissions.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.path, err)
	}
	return nil
}

// Validate checks the config for values the CLI cannot work with.
func (c *Config) Validate() error {
	if c.API.URL != "" {
		u, err := url.Parse(c.API.URL)
		if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: got %q", ErrInvalidAPIURL, c.API.URL)
		}
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTimeout, c.API.TimeoutSeconds)
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCacheTTL, c.Cache.TTLSeconds)
	}

	for _, opt := range c.Pagination.PageSizeOptions {
		if opt < pagination.MinPageSize || opt > pagination.MaxPageSize {
			return fmt.Errorf("%w: got %d", ErrInvalidPageSizeOptions, opt)
		}
	}
	if !c.isPageSizeOption(c.Pagination.DefaultPageSize) {
		return fmt.Errorf("%w: got %d", ErrInvalidDefaultPageSize, c.Pagination.DefaultPageSize)
	}
	return nil
}

// PageSizeOptions returns the sorted page-size options, falling back to the
// built-in list when none are configured.
func (c *Config) PageSizeOptions() []int {
	src := c.Pagination.PageSizeOptions
	if len(src) == 0 {
		src = pagination.DefaultPageSizeOptions
	}
	options := make([]int, len(src))
	copy(options, src)
	sort.Ints(options)
	return options
}

func (c *Config) isPageSizeOption(size int) bool {
	if len(c.Pagination.PageSizeOptions) == 0 {
		return size >= pagination.MinPageSize && size <= pagination.MaxPageSize
	}
	for _, opt := range c.Pagination.PageSizeOptions {
		if opt == size {
			return true
		}
	}
	return false
}
