package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port int `koanf:"port"`
	} `koanf:"server"`

	Chat struct {
		Endpoint    string  `koanf:"endpoint"`
		Credentials string  `koanf:"credentials"`
		Scope       string  `koanf:"scope"`
		RateLimit   float64 `koanf:"ratelimit"`
	} `koanf:"chat"`

	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
	} `koanf:"log"`
}

// LoadConfig loads the configuration from a file
func LoadConfig(configPath string) (*Config, error) {
	var k = koanf.New(".")

	// Set up default configuration
	k.Load(confmap.Provider(map[string]interface{}{
		"server.port":    8080,
		"chat.scope":     "https://www.googleapis.com/auth/chat.bot",
		"chat.ratelimit": 5,
		"log.level":      "info",
		"log.format":     "json",
	}, "."), nil)

	// Load from TOML file if it exists
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		// Try to load from default locations
		defaultPaths := []string{"./chaddon.toml", "$HOME/.chaddon.toml"}
		for _, path := range defaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	// Honor the bare PORT variable the hosting platform injects
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			k.Set("server.port", n)
		}
	}

	// Load from environment variables with prefix CHADDON_
	k.Load(env.Provider("CHADDON_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "CHADDON_")), "_", ".", -1)
	}), nil)

	// Unmarshal into Config struct
	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &config, nil
}

// InitConfig initializes a new configuration file
func InitConfig(configPath string) error {
	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	// Create sample configuration
	sampleConfig := `# Chaddon Configuration

[server]
port = 8080

[chat]
# Optional override of the Chat API endpoint; leave empty for the default.
endpoint = ""
# Path to a service account key file. Leave empty to use Application
# Default Credentials.
credentials = ""
scope = "https://www.googleapis.com/auth/chat.bot"
ratelimit = 5

[log]
level = "info"
format = "json"
`

	return os.WriteFile(configPath, []byte(sampleConfig), 0644)
}

// Validate validates the configuration
func Validate(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port %d is out of range", config.Server.Port)
	}

	if config.Chat.RateLimit <= 0 {
		return fmt.Errorf("chat rate limit must be positive")
	}

	if config.Chat.Credentials != "" {
		if _, err := os.Stat(config.Chat.Credentials); err != nil {
			return fmt.Errorf("chat credentials file %s not readable: %w", config.Chat.Credentials, err)
		}
	}

	switch config.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log format must be json or console, got %s", config.Log.Format)
	}

	return nil
}
