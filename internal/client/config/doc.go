// Package config loads runtime configuration for the photoalbum CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. PHOTOALBUM_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string            base URL of the photo-album service
//	-db string           path of the local SQLite database
//	-timeout duration    per-request timeout
//	-poll duration       how often the token slot is checked for changes
//	-log-level string    debug, info, warn or error
//	-log-format string   json or text
//
// # JSON schema
//
// Durations are either strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:4000",
//	  "db_path": "/home/ann/.config/photoalbum/client.db",
//	  "request_timeout": "15s",
//	  "token_poll_interval": "1s",
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
package config
