package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/callhistory/internal/logging"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 25, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, []int{10, 25, 50, 100}, cfg.Pagination.PageSizeOptions)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, DefaultCacheTTL, cfg.Cache.TTLSeconds)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.API.TimeoutSeconds)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, Default().Pagination, cfg.Pagination)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unclosed"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.SetPath(path)
	cfg.API.URL = "https://calls.example.com/graphql"
	cfg.Pagination.DefaultPageSize = 50
	require.NoError(t, cfg.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://calls.example.com/graphql", loaded.API.URL)
	assert.Equal(t, 50, loaded.Pagination.DefaultPageSize)
}

func TestSave_NoPath(t *testing.T) {
	assert.Error(t, Default().Save())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"relative url", func(c *Config) { c.API.URL = "calls/graphql" }, ErrInvalidAPIURL},
		{"ftp url", func(c *Config) { c.API.URL = "ftp://example.com" }, ErrInvalidAPIURL},
		{"zero timeout", func(c *Config) { c.API.TimeoutSeconds = 0 }, ErrInvalidTimeout},
		{"negative ttl", func(c *Config) { c.Cache.TTLSeconds = -1 }, ErrInvalidCacheTTL},
		{"zero option", func(c *Config) { c.Pagination.PageSizeOptions = []int{0, 25} }, ErrInvalidPageSizeOptions},
		{"default not an option", func(c *Config) { c.Pagination.DefaultPageSize = 30 }, ErrInvalidDefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestPageSizeOptions_SortedCopy(t *testing.T) {
	cfg := Default()
	cfg.Pagination.PageSizeOptions = []int{100, 10, 50}

	options := cfg.PageSizeOptions()
	assert.Equal(t, []int{10, 50, 100}, options)

	options[0] = 999
	assert.Equal(t, []int{100, 10, 50}, cfg.Pagination.PageSizeOptions)

	cfg.Pagination.PageSizeOptions = nil
	assert.Equal(t, []int{10, 25, 50, 100}, cfg.PageSizeOptions())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAPIURL:       "https://env.example.com/graphql",
		EnvToken:        "secret",
		EnvPageSize:     "50",
		EnvLogLevel:     "debug",
		EnvCacheEnabled: "false",
		EnvCacheTTL:     "60",
		EnvFixtures:     "calls.yaml",
	}
	cfg := Default()
	cfg.ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	assert.Equal(t, "https://env.example.com/graphql", cfg.API.URL)
	assert.Equal(t, "secret", cfg.API.Token)
	assert.Equal(t, 50, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
	assert.Equal(t, "calls.yaml", cfg.Fixtures.File)
}

func TestApplyEnv_IgnoresUnparsable(t *testing.T) {
	env := map[string]string{
		EnvPageSize:     "lots",
		EnvCacheEnabled: "maybe",
		EnvCacheTTL:     "-5",
	}
	cfg := Default()
	cfg.ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	assert.Equal(t, 25, cfg.Pagination.DefaultPageSize)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, DefaultCacheTTL, cfg.Cache.TTLSeconds)
}

func TestGetConfigDir_HomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	got, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join(dir, "logs", "callhistory.log"), DefaultLogFile())

	cacheDir, err := Default().GetCacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cache"), cacheDir)
}

func TestGlobalConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)
	t.Setenv(EnvPageSize, "10")
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
	assert.Same(t, cfg, GetGlobalConfig())

	replacement := Default()
	SetGlobalConfig(replacement)
	assert.Same(t, replacement, GetGlobalConfig())
}

func TestEnsureLogDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := Default()
	cfg.Logging.File = filepath.Join(dir, "logs", "app.log")
	SetGlobalConfig(cfg)

	require.NoError(t, EnsureLogDir())
	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set(KeyAPIURL, "https://calls.example.com/graphql"))
	require.NoError(t, cfg.Set(KeyPageSizeOptions, "5, 15,45"))
	require.NoError(t, cfg.Set(KeyCacheEnabled, "false"))
	require.NoError(t, cfg.Set(KeyDefaultPageSize, "15"))

	got, err := cfg.Get(KeyAPIURL)
	require.NoError(t, err)
	assert.Equal(t, "https://calls.example.com/graphql", got)

	got, err = cfg.Get(KeyPageSizeOptions)
	require.NoError(t, err)
	assert.Equal(t, "5,15,45", got)

	got, err = cfg.Get(KeyCacheEnabled)
	require.NoError(t, err)
	assert.Equal(t, "false", got)

	require.NoError(t, cfg.Validate())
}

func TestGetSet_Errors(t *testing.T) {
	cfg := Default()

	_, err := cfg.Get("output.color")
	require.ErrorIs(t, err, ErrUnknownKey)
	require.ErrorIs(t, cfg.Set("output.color", "red"), ErrUnknownKey)

	err = cfg.Set(KeyCacheTTL, "soon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyCacheTTL)
}

func TestKeys_AllGettable(t *testing.T) {
	cfg := Default()
	for _, key := range Keys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

func TestShallowMergeYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	overlay := `
api:
  url: https://overlay.example.com/graphql
  timeout_seconds: 5
pagination:
  default_page_size: 10
  page_size_options: [10, 20]
unknown_section:
  ignored: true
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o600))

	cfg := Default()
	cfg.API.Token = "kept-only-if-section-absent"
	cfg.Logging.Level = "warn"

	require.NoError(t, ShallowMergeYAML(cfg, path))

	assert.Equal(t, "https://overlay.example.com/graphql", cfg.API.URL)
	assert.Empty(t, cfg.API.Token, "api section is replaced wholesale")
	assert.Equal(t, 5, cfg.API.TimeoutSeconds)
	assert.Equal(t, []int{10, 20}, cfg.Pagination.PageSizeOptions)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	require.Error(t, ShallowMergeYAML(nil, "x"))
	require.Error(t, ShallowMergeYAML(Default(), filepath.Join(t.TempDir(), "missing.yaml")))

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n"), 0o600))
	require.NoError(t, ShallowMergeYAML(Default(), empty))
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)
	assert.Equal(t, "debug", got.Level)

	lc.File = "/tmp/callhistory.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/callhistory.log", got.File)
}
