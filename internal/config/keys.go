package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned by Get and Set for keys outside Keys().
var ErrUnknownKey = errors.New("unknown config key")

// Dotted keys understood by Get and Set.
const (
	KeyAPIURL          = "api.url"
	KeyAPIToken        = "api.token"
	KeyAPIUsername     = "api.username"
	KeyAPITimeout      = "api.timeout_seconds"
	KeyDefaultPageSize = "pagination.default_page_size"
	KeyPageSizeOptions = "pagination.page_size_options"
	KeyCacheEnabled    = "cache.enabled"
	KeyCacheDirectory  = "cache.directory"
	KeyCacheTTL        = "cache.ttl_seconds"
	KeyCacheMemory     = "cache.memory_entries"
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
	KeyLogFile         = "logging.file"
	KeyFixturesFile    = "fixtures.file"
)

// Keys lists every settable key in display order.
func Keys() []string {
	return []string{
		KeyAPIURL, KeyAPIToken, KeyAPIUsername, KeyAPITimeout,
		KeyDefaultPageSize, KeyPageSizeOptions,
		KeyCacheEnabled, KeyCacheDirectory, KeyCacheTTL, KeyCacheMemory,
		KeyLogLevel, KeyLogFormat, KeyLogFile,
		KeyFixturesFile,
	}
}

// Get returns the string form of the value at key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyAPIURL:
		return c.API.URL, nil
	case KeyAPIToken:
		return c.API.Token, nil
	case KeyAPIUsername:
		return c.API.Username, nil
	case KeyAPITimeout:
		return strconv.Itoa(c.API.TimeoutSeconds), nil
	case KeyDefaultPageSize:
		return strconv.Itoa(c.Pagination.DefaultPageSize), nil
	case KeyPageSizeOptions:
		parts := make([]string, 0, len(c.Pagination.PageSizeOptions))
		for _, opt := range c.Pagination.PageSizeOptions {
			parts = append(parts, strconv.Itoa(opt))
		}
		return strings.Join(parts, ","), nil
	case KeyCacheEnabled:
		return strconv.FormatBool(c.Cache.Enabled), nil
	case KeyCacheDirectory:
		return c.Cache.Directory, nil
	case KeyCacheTTL:
		return strconv.Itoa(c.Cache.TTLSeconds), nil
	case KeyCacheMemory:
		return strconv.Itoa(c.Cache.MemoryEntries), nil
	case KeyLogLevel:
		return c.Logging.Level, nil
	case KeyLogFormat:
		return c.Logging.Format, nil
	case KeyLogFile:
		return c.Logging.File, nil
	case KeyFixturesFile:
		return c.Fixtures.File, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set parses value and stores it at key.
//
//nolint:gocyclo // One case per key keeps the mapping readable.
func (c *Config) Set(key, value string) error {
	var err error
	switch key {
	case KeyAPIURL:
		c.API.URL = value
	case KeyAPIToken:
		c.API.Token = value
	case KeyAPIUsername:
		c.API.Username = value
	case KeyAPITimeout:
		c.API.TimeoutSeconds, err = strconv.Atoi(value)
	case KeyDefaultPageSize:
		c.Pagination.DefaultPageSize, err = strconv.Atoi(value)
	case KeyPageSizeOptions:
		c.Pagination.PageSizeOptions, err = parseIntList(value)
	case KeyCacheEnabled:
		c.Cache.Enabled, err = strconv.ParseBool(value)
	case KeyCacheDirectory:
		c.Cache.Directory = value
	case KeyCacheTTL:
		c.Cache.TTLSeconds, err = strconv.Atoi(value)
	case KeyCacheMemory:
		c.Cache.MemoryEntries, err = strconv.Atoi(value)
	case KeyLogLevel:
		c.Logging.Level = value
	case KeyLogFormat:
		c.Logging.Format = value
	case KeyLogFile:
		c.Logging.File = value
	case KeyFixturesFile:
		c.Fixtures.File = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
	return nil
}

func parseIntList(value string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
