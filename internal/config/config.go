package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	Telegram TelegramConfig `yaml:"telegram"`
	Resolver ResolverConfig `yaml:"resolver"`
}

// AppConfig holds display/identity configuration.
type AppConfig struct {
	Name    string `yaml:"name" envconfig:"APP_NAME" default:"tunelink"`
	BaseURL string `yaml:"base_url" envconfig:"BASE_URL"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string        `yaml:"host" envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port         int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
}

// AuthConfig holds the shared HTTP secret and the bot owner identity.
type AuthConfig struct {
	Secret  string `yaml:"secret" envconfig:"API_SECRET"`
	OwnerID int64  `yaml:"owner_id" envconfig:"OWNER_ID"`
}

// TelegramConfig holds the chat transport credentials. An empty token
// disables the bot surface; the HTTP surface is unaffected.
type TelegramConfig struct {
	Token string `yaml:"token" envconfig:"BOT_TOKEN"`
}

// Enabled reports whether the bot surface should be started.
func (c *TelegramConfig) Enabled() bool {
	return c.Token != ""
}

// ResolverConfig holds extractor configuration.
type ResolverConfig struct {
	BinPath string `yaml:"bin_path" envconfig:"YTDLP_PATH" default:"yt-dlp"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	// Load from YAML file if provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	// Without a configured secret the keyed endpoints would be open, so
	// generate one per process start. It stays unknown to clients until
	// retrieved through the privileged bot command.
	if cfg.Auth.Secret == "" {
		cfg.Auth.Secret = uuid.NewString()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Resolver.BinPath == "" {
		return fmt.Errorf("YTDLP_PATH is required")
	}
	if c.Telegram.Enabled() && c.Auth.OwnerID == 0 {
		return fmt.Errorf("OWNER_ID is required when the bot surface is enabled")
	}
	return nil
}

// Address returns the server address in host:port format.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
