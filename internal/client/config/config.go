package config

import (
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	ServerURL         string        `env:"PHOTOALBUM_SERVER_URL"`
	DBPath            string        `env:"PHOTOALBUM_DB_PATH"`
	RequestTimeout    time.Duration `env:"PHOTOALBUM_REQUEST_TIMEOUT"`
	TokenPollInterval time.Duration `env:"PHOTOALBUM_TOKEN_POLL_INTERVAL"`
	LogLevel          string        `env:"PHOTOALBUM_LOG_LEVEL"`
	LogFormat         string        `env:"PHOTOALBUM_LOG_FORMAT"`
}

func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:4000"
	c.DBPath = defaultDBPath()
	c.RequestTimeout = 15 * time.Second
	c.TokenPollInterval = time.Second
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig applies defaults, then the JSON file, the environment and the
// flags found in args, in that order.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultDBPath places the database in the user's config directory and
// falls back to the working directory.
func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "photoalbum.db"
	}
	return filepath.Join(dir, "photoalbum", "client.db")
}
