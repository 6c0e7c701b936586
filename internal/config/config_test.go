package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(path string, env map[string]string) *configService {
	return &configService{
		filePath: path,
		getenv:   func(k string) string { return env[k] },
	}
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moviegrip", "config.toml")
	cs := newTestService(path, nil)

	cfg, err := cs.Load()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.Catalog.BaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Search.Debounce.Duration)
	assert.Equal(t, PolicySplit, cfg.Search.FailurePolicy)
	assert.Equal(t, 5, cfg.Trending.Limit)

	data, err := os.ReadFile(path)
	require.NoError(t, err, "defaults should be written to disk")
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "500ms")
}

func TestLoadFromPathFillsMissingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `version = 1

[catalog]
token = "file-token"

[search]
debounce = "250ms"

[ui]
show_trending = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := newTestService(path, nil).LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Catalog.Token)
	assert.Equal(t, 250*time.Millisecond, cfg.Search.Debounce.Duration)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.Catalog.BaseURL)
	assert.Equal(t, PolicySplit, cfg.Search.FailurePolicy)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.NotEmpty(t, cfg.Storage.Path)
	assert.False(t, cfg.UI.ShowTrending)
}

func TestEnvTokenOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[catalog]\ntoken = \"file-token\"\n"), 0600))

	cfg, err := newTestService(path, map[string]string{EnvToken: "env-token"}).Load()
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Catalog.Token)

	cfg, err = newTestService(path, map[string]string{EnvTokenFallback: "fallback"}).Load()
	require.NoError(t, err)
	assert.Equal(t, "fallback", cfg.Catalog.Token)
}

func TestEnvTokenIsNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	_, err := newTestService(path, map[string]string{EnvToken: "secret"}).Load()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
}

func TestLoadFromPathInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [oops"), 0600))

	_, err := newTestService(path, nil).LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSaveRoundTripKeepsDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := newTestService(path, nil)

	cfg := DefaultConfig()
	cfg.Catalog.Timeout = Duration{15 * time.Second}
	cfg.Search.FailurePolicy = PolicyKeep
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, loaded.Catalog.Timeout.Duration)
	assert.Equal(t, PolicyKeep, loaded.Search.FailurePolicy)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		errText string
	}{
		{name: "ok", mutate: func(c *Config) { c.Catalog.Token = "t" }},
		{name: "missing token", mutate: func(c *Config) {}, wantErr: ErrMissingToken},
		{name: "bad policy", mutate: func(c *Config) {
			c.Catalog.Token = "t"
			c.Search.FailurePolicy = "sometimes"
		}, errText: "failure_policy"},
		{name: "bad driver", mutate: func(c *Config) {
			c.Catalog.Token = "t"
			c.Storage.Driver = "postgres"
		}, errText: "storage.driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
