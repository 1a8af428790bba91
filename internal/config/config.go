package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port            string        `yaml:"port"`
		Environment     string        `yaml:"environment"` // development or production
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"` // postgres or sqlite
		URL    string `yaml:"url"`
	} `yaml:"database"`
	API struct {
		DefaultLimit int `yaml:"default_limit"`
		MaxLimit     int `yaml:"max_limit"`
	} `yaml:"api"`
	Auth struct {
		JWTSecret string        `yaml:"jwt_secret"`
		TokenTTL  time.Duration `yaml:"token_ttl"`
	} `yaml:"auth"`
	CORS struct {
		AllowedOrigin string `yaml:"allowed_origin"`
	} `yaml:"cors"`
	Security struct {
		MasterKey        string `yaml:"master_key"`        // base64, 32 bytes
		MasterPassphrase string `yaml:"master_passphrase"` // alternative to master_key, argon2id-derived
	} `yaml:"security"`
	Telegram struct {
		Enabled     bool   `yaml:"enabled"`
		BotToken    string `yaml:"bot_token"`
		AlertChatID int64  `yaml:"alert_chat_id"`
	} `yaml:"telegram"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// LoadConfig reads configuration from the specified YAML file. A missing file
// is not an error: defaults and environment overrides still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to open config file: %w", err)
	default:
		defer file.Close()
		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	config.expandEnv()
	config.applyEnvOverrides()
	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// IsProduction reports whether error details must be hidden from clients.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment reports whether error details may be returned to clients.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// Validate checks settings that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.API.DefaultLimit <= 0 || c.API.MaxLimit <= 0 {
		return errors.New("api limits must be positive")
	}
	if c.API.DefaultLimit > c.API.MaxLimit {
		return errors.New("api.default_limit must not exceed api.max_limit")
	}
	if c.Security.MasterKey != "" && c.Security.MasterPassphrase != "" {
		return errors.New("set only one of security.master_key and security.master_passphrase")
	}
	if c.Telegram.Enabled && (c.Telegram.BotToken == "" || c.Telegram.AlertChatID == 0) {
		return errors.New("telegram.enabled requires bot_token and alert_chat_id")
	}
	return nil
}

func (c *Config) expandEnv() {
	c.Database.URL = os.ExpandEnv(c.Database.URL)
	c.Auth.JWTSecret = os.ExpandEnv(c.Auth.JWTSecret)
	c.Security.MasterKey = os.ExpandEnv(c.Security.MasterKey)
	c.Security.MasterPassphrase = os.ExpandEnv(c.Security.MasterPassphrase)
	c.Telegram.BotToken = os.ExpandEnv(c.Telegram.BotToken)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("NODE_ENV"); v != "" {
		c.Server.Environment = v
	}
	if v := os.Getenv("NAVIO_ENV"); v != "" {
		c.Server.Environment = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Auth.TokenTTL = d
		}
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		c.CORS.AllowedOrigin = v
	}
	if v := os.Getenv("MASTER_KEY"); v != "" {
		c.Security.MasterKey = v
	}
	if v := os.Getenv("MASTER_PASSPHRASE"); v != "" {
		c.Security.MasterPassphrase = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_ALERT_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Telegram.AlertChatID = id
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) setDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "3000"
	}
	if c.Server.Environment == "" {
		c.Server.Environment = "development"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverPostgres
	}
	if c.API.DefaultLimit == 0 {
		c.API.DefaultLimit = 50
	}
	if c.API.MaxLimit == 0 {
		c.API.MaxLimit = 200
	}
	if c.Auth.JWTSecret == "" {
		c.Auth.JWTSecret = "secret"
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 7 * 24 * time.Hour
	}
	if c.CORS.AllowedOrigin == "" {
		c.CORS.AllowedOrigin = "*"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
