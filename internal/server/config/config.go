// Package config handles configuration for the development server,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/photoalbum/internal/common"
)

const (
	StorageFS = "fs"
	StorageS3 = "s3"
)

// Config holds runtime settings for the photo-album server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP API.
//   - SecretKey: HMAC secret for signing JWTs (HS256). A random one is made when empty.
//   - TokenTTL: lifetime of issued tokens.
//   - Storage: where picture bytes live, StorageFS or StorageS3.
//   - UploadDir: root directory of the fs storage.
//   - MaxUploadBytes: largest accepted picture.
//   - S3RootUser / S3RootPassword / S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
type Config struct {
	ListenAddr     string        `env:"PHOTOALBUM_LISTEN_ADDR"`
	SecretKey      string        `env:"PHOTOALBUM_SECRET_KEY"`
	TokenTTL       time.Duration `env:"PHOTOALBUM_TOKEN_TTL"`
	Storage        string        `env:"PHOTOALBUM_STORAGE"`
	UploadDir      string        `env:"PHOTOALBUM_UPLOAD_DIR"`
	MaxUploadBytes int64         `env:"PHOTOALBUM_MAX_UPLOAD_BYTES"`
	S3RootUser     string        `env:"PHOTOALBUM_S3_ROOT_USER"`
	S3RootPassword string        `env:"PHOTOALBUM_S3_ROOT_PASSWORD"`
	S3Bucket       string        `env:"PHOTOALBUM_S3_BUCKET"`
	S3Region       string        `env:"PHOTOALBUM_S3_REGION"`
	S3BaseEndpoint string        `env:"PHOTOALBUM_S3_BASE_ENDPOINT"`
	LogLevel       string        `env:"PHOTOALBUM_LOG_LEVEL"`
	LogFormat      string        `env:"PHOTOALBUM_LOG_FORMAT"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the S3 credentials are the local MinIO ones and must be overridden elsewhere.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":4000"
	c.TokenTTL = 24 * time.Hour
	c.Storage = StorageFS
	c.UploadDir = "uploads"
	c.MaxUploadBytes = 10 << 20
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "photoalbum"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config from defaults, the optional JSON file, the
// environment and finally the flags in args.
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
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) finish() error {
	switch c.Storage {
	case StorageFS, StorageS3:
	default:
		return fmt.Errorf("unknown storage %q (want %s or %s)", c.Storage, StorageFS, StorageS3)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if c.SecretKey == "" {
		key, err := common.MakeRandHexString(32)
		if err != nil {
			return fmt.Errorf("generate secret key: %w", err)
		}
		c.SecretKey = key
	}
	return nil
}
