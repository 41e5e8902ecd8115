package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"

	DefaultAPIBaseURL = "http://localhost:5000"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings for the console.
type Config struct {
	APIBaseURL     string        `env:"MARKET_API_URL"`
	SessionBackend string        `env:"MARKET_SESSION_BACKEND"`
	DataPath       string        `env:"MARKET_DATA_PATH"`
	SessionDir     string        `env:"MARKET_SESSION_DIR"`
	RequestTimeout time.Duration `env:"MARKET_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"MARKET_LOG_LEVEL"`
}

// LoadDefaults populates c with local development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.SessionBackend = BackendSQLite
	c.DataPath = "console.db"
	c.SessionDir = ".session"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
}

// Validate normalises the base address and checks the remaining fields.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("%w: api base url: %w", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: api base url %q must be http or https", ErrInvalidConfig, c.APIBaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: api base url %q has no host", ErrInvalidConfig, c.APIBaseURL)
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")

	switch c.SessionBackend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("%w: unknown session backend %q", ErrInvalidConfig, c.SessionBackend)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and args (usually os.Args[1:]), in that order, and validates the result.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
