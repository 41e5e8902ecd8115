// Package config loads runtime configuration for the marketplace console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables (MARKET_*).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base address of the marketplace API (no /api suffix)
//	-s string   session backend: sqlite or file
//	-d string   sqlite database file
//	-f string   session directory for the file backend
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5000",
//	  "session_backend": "sqlite",
//	  "data_path": "console.db",
//	  "session_dir": ".session",
//	  "request_timeout": "15s",
//	  "log_level": "info"
//	}
//
// The API base address is resolved once at startup and handed to the
// transport; nothing re-reads it afterwards.
package config
