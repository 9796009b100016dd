package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv clears the ambient variables the loader reads so tests do
// not depend on the machine they run on. The koanf env provider picks
// up even empty-valued variables, so they must be unset, not blanked.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "CHADDON_SERVER_PORT", "CHADDON_LOG_LEVEL"} {
		if v, ok := os.LookupEnv(key); ok {
			t.Setenv(key, v) // register restoration of the original value
			os.Unsetenv(key)
		}
	}
	t.Setenv("HOME", t.TempDir())
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://www.googleapis.com/auth/chat.bot", cfg.Chat.Scope)
	assert.Equal(t, float64(5), cfg.Chat.RateLimit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigFromFile(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "chaddon.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = 9090

[log]
level = "debug"
format = "console"
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	// Defaults survive for sections the file does not mention.
	assert.Equal(t, "https://www.googleapis.com/auth/chat.bot", cfg.Chat.Scope)
}

func TestLoadConfigMissingFileFails(t *testing.T) {
	isolateEnv(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CHADDON_SERVER_PORT", "9999")
	t.Setenv("CHADDON_LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// Hosting platforms inject a bare PORT variable; it overrides the file
// default but loses to an explicit CHADDON_SERVER_PORT.
func TestLoadConfigPlatformPort(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PORT", "7777")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 7777, cfg.Server.Port)

	t.Setenv("CHADDON_SERVER_PORT", "8888")
	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 8888, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Server.Port = 8080
		cfg.Chat.RateLimit = 5
		cfg.Log.Level = "info"
		cfg.Log.Format = "json"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"console format", func(c *Config) { c.Log.Format = "console" }, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"rate limit zero", func(c *Config) { c.Chat.RateLimit = 0 }, true},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"credentials file missing", func(c *Config) { c.Chat.Credentials = "/does/not/exist.json" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "chaddon.toml")

	require.NoError(t, InitConfig(path))

	// The scaffold must load and validate as-is.
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.NoError(t, Validate(cfg))

	// A second init must refuse to overwrite.
	assert.Error(t, InitConfig(path))
}
