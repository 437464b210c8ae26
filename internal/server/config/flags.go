package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/photoalbum/internal/flagx"
)

// parseFlags overlays the server flags found in args.
//
// Supported flags:
//
//	-a string            HTTP bind address (e.g. ":4000")
//	-s string            JWT HMAC secret key
//	-t duration          token lifetime
//	-storage string      fs or s3
//	-upload-dir string   root of the fs storage
//	-max-upload int      largest accepted picture, bytes
//	-u string            S3 root user
//	-p string            S3 root password
//	-b string            S3 bucket name
//	-g string            S3 region
//	-e string            S3 base endpoint (e.g. "http://127.0.0.1:9000/")
//	-log-level string    debug, info, warn or error
//	-log-format string   json or text
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args,
		"-a", "-s", "-t", "-storage", "-upload-dir", "-max-upload",
		"-u", "-p", "-b", "-g", "-e", "-log-level", "-log-format",
	)

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address and port to run server")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	fs.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "token lifetime")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "picture storage (fs or s3)")
	fs.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "upload directory for fs storage")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload", cfg.MaxUploadBytes, "max upload size in bytes")
	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 root user")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 root password")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (json or text)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
