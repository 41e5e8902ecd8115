package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/nftconsole/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Empty fields leave the
// corresponding Config value untouched.
type JsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	SessionBackend string `json:"session_backend"`
	DataPath       string `json:"data_path"`
	SessionDir     string `json:"session_dir"`
	RequestTimeout string `json:"request_timeout"`
	LogLevel       string `json:"log_level"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIfNotEmpty(&cfg.APIBaseURL, jc.APIBaseURL)
	setIfNotEmpty(&cfg.SessionBackend, jc.SessionBackend)
	setIfNotEmpty(&cfg.DataPath, jc.DataPath)
	setIfNotEmpty(&cfg.SessionDir, jc.SessionDir)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)

	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse config %s: request_timeout: %w", path, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
