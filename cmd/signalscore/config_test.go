package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutchdutchdutch/signalscore/internal/config"
	"github.com/dutchdutchdutch/signalscore/internal/crawl"
)

func TestResolveConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MAX_SATELLITES", "")

	cfg, err := resolveConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5, cfg.MaxSatellites)
}

func TestResolveConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9191, "max_satellites": 2}`), 0o644))

	cfg, err := resolveConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, 2, cfg.MaxSatellites)
	assert.Equal(t, 30, cfg.TimeoutSeconds, "unset fields fall back to defaults")
}

func TestResolveConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9191}`), 0o644))
	t.Setenv("PORT", "7777")

	cfg, err := resolveConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Port)
}

func TestResolveConfigMissingFile(t *testing.T) {
	_, err := resolveConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestCrawlOptions(t *testing.T) {
	cfg := config.Config{
		TimeoutSeconds: 12,
		UserAgent:      "testbot/1.0",
		UseBrowser:     true,
		Verbose:        true,
	}

	opts := crawlOptions(cfg)
	assert.Equal(t, 12*time.Second, opts.Timeout)
	assert.Equal(t, "testbot/1.0", opts.UserAgent)
	assert.True(t, opts.UseBrowser)
	assert.True(t, opts.Verbose)
}

func TestCrawlOptionsDefaults(t *testing.T) {
	opts := crawlOptions(config.Config{})
	assert.Equal(t, crawl.DefaultTimeout, opts.Timeout)
	assert.Equal(t, crawl.DefaultUserAgent, opts.UserAgent)
	assert.False(t, opts.UseBrowser)
}
