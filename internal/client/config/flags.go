package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/photoalbum/internal/flagx"
)

var knownFlags = []string{
	"-a", "-db", "-timeout", "-poll", "-log-level", "-log-format",
}

func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("photoalbum", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the photo-album service")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path of the local database")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-request timeout")
	fs.DurationVar(&cfg.TokenPollInterval, "poll", cfg.TokenPollInterval, "token change poll interval")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (json or text)")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags...)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
