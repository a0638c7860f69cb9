package config

import (
	"strconv"
)

// Environment variables that override the config file.
const (
	EnvHome         = "CALLHISTORY_HOME"
	EnvAPIURL       = "CALLHISTORY_API_URL"
	EnvToken        = "CALLHISTORY_TOKEN"
	EnvPageSize     = "CALLHISTORY_PAGE_SIZE"
	EnvLogLevel     = "CALLHISTORY_LOG_LEVEL"
	EnvLogFormat    = "CALLHISTORY_LOG_FORMAT"
	EnvCacheEnabled = "CALLHISTORY_CACHE_ENABLED"
	EnvCacheTTL     = "CALLHISTORY_CACHE_TTL_SECONDS"
	EnvFixtures     = "CALLHISTORY_FIXTURES"
)

// ApplyEnv overrides config values from the environment. Values that do not
// parse are ignored and the file value is kept.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvAPIURL); ok && v != "" {
		c.API.URL = v
	}
	if v, ok := lookupEnv(EnvToken); ok && v != "" {
		c.API.Token = v
	}
	if v, ok := lookupEnv(EnvPageSize); ok {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			c.Pagination.DefaultPageSize = size
		}
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvCacheEnabled); ok {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Cache.Enabled = enabled
		}
	}
	if v, ok := lookupEnv(EnvCacheTTL); ok {
		if ttl, err := strconv.Atoi(v); err == nil && ttl >= 0 {
			c.Cache.TTLSeconds = ttl
		}
	}
	if v, ok := lookupEnv(EnvFixtures); ok && v != "" {
		c.Fixtures.File = v
	}
}
