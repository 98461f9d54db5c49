package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	require.Equal(t, CacheBolt, cfg.Cache.Backend, "cached collections must survive a restart by default")
	require.NotEmpty(t, cfg.Cache.Path)
}

func TestLoad_MemoryBackend(t *testing.T) {
	cfg, err := Load(env(map[string]string{"PORTAL_CACHE_BACKEND": "memory"}))
	require.NoError(t, err)
	require.Equal(t, CacheMemory, cfg.Cache.Backend)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(env(map[string]string{
		"PORTAL_ADDR":           ":9090",
		"PORTAL_CACHE_BACKEND":  "bolt",
		"PORTAL_CACHE_TTL":      "30m",
		"PORTAL_COALESCE_READS": "false",
		"JWT_SECRET":            "s3cret",
		"PORTAL_LOG_LEVEL":      "debug",
	}))
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, CacheBolt, cfg.Cache.Backend)
	require.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	require.False(t, cfg.Remote.CoalesceReads)
	require.Equal(t, "s3cret", cfg.Auth.Secret)
	require.Equal(t, 12*time.Second, cfg.Remote.Timeout)
}

func TestLoad_BadValues(t *testing.T) {
	_, err := Load(env(map[string]string{
		"PORTAL_CACHE_TTL":      "an hour",
		"PORTAL_COALESCE_READS": "maybe",
	}))
	require.ErrorContains(t, err, "PORTAL_CACHE_TTL")
	require.ErrorContains(t, err, "PORTAL_COALESCE_READS")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"unknown backend": func(c *Config) { c.Cache.Backend = "redis" },
		"bolt no path":    func(c *Config) { c.Cache.Backend = CacheBolt; c.Cache.Path = "" },
		"zero ttl":        func(c *Config) { c.Cache.TTL = 0 },
		"zero timeout":    func(c *Config) { c.Remote.Timeout = 0 },
		"no secret":       func(c *Config) { c.Auth.Secret = "" },
		"bad level":       func(c *Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Defaults()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
