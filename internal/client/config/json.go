package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/photoalbum/internal/flagx"
	"github.com/dmitrijs2005/photoalbum/internal/timex"
)

// JSONConfig is the on-disk shape of the config file. Fields left out of the
// file keep their previous values.
type JSONConfig struct {
	ServerURL         string         `json:"server_url"`
	DBPath            string         `json:"db_path"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	TokenPollInterval timex.Duration `json:"token_poll_interval"`
	LogLevel          string         `json:"log_level"`
	LogFormat         string         `json:"log_format"`
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

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.TokenPollInterval.Duration != 0 {
		cfg.TokenPollInterval = jc.TokenPollInterval.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	return nil
}
