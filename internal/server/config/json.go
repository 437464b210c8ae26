package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/photoalbum/internal/flagx"
	"github.com/dmitrijs2005/photoalbum/internal/timex"
)

// JSONConfig is the intermediate DTO for the config file; it uses
// timex.Duration so token_ttl may be "24h" or integer nanoseconds.
type JSONConfig struct {
	ListenAddr     string         `json:"listen_addr"`
	SecretKey      string         `json:"secret_key"`
	TokenTTL       timex.Duration `json:"token_ttl"`
	Storage        string         `json:"storage"`
	UploadDir      string         `json:"upload_dir"`
	MaxUploadBytes int64          `json:"max_upload_bytes"`
	S3RootUser     string         `json:"s3_root_user"`
	S3RootPassword string         `json:"s3_root_password"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var c JSONConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.ListenAddr, c.ListenAddr)
	setString(&cfg.SecretKey, c.SecretKey)
	if c.TokenTTL.Duration != 0 {
		cfg.TokenTTL = c.TokenTTL.Duration
	}
	setString(&cfg.Storage, c.Storage)
	setString(&cfg.UploadDir, c.UploadDir)
	if c.MaxUploadBytes != 0 {
		cfg.MaxUploadBytes = c.MaxUploadBytes
	}
	setString(&cfg.S3RootUser, c.S3RootUser)
	setString(&cfg.S3RootPassword, c.S3RootPassword)
	setString(&cfg.S3Bucket, c.S3Bucket)
	setString(&cfg.S3Region, c.S3Region)
	setString(&cfg.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&cfg.LogLevel, c.LogLevel)
	setString(&cfg.LogFormat, c.LogFormat)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
