// internal/config/config.go
//
// This package loads the brokerdesk configuration: a brokerdesk.yaml file
// next to the binary (created with commented defaults on first run) with
// environment-variable overrides on top.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "brokerdesk.yaml"

const defaultConfigYAML = `# brokerdesk configuration
version: 1

api:
  # Base URL of the collaborator API. When the API is unreachable the
  # dashboard falls back to its built-in fixture dataset.
  base_url: http://localhost:8080
  timeout_seconds: 10

broker:
  # Broker whose stats the overview panel shows.
  id: "1"

pipeline:
  # Start in F-Sanitised mode (home-loan borrowers only).
  sanitised: true

log:
  # Session journal written by the TUI.
  path: brokerdesk.log

server:
  # Listen port for cmd/brokerdesk-api.
  port: "8080"
`

// Config holds the runtime configuration for brokerdesk.
type Config struct {
	Version int `yaml:"version"`

	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`

	Broker struct {
		ID string `yaml:"id"`
	} `yaml:"broker"`

	Pipeline struct {
		Sanitised bool `yaml:"sanitised"`
	} `yaml:"pipeline"`

	Log struct {
		Path string `yaml:"path"`
	} `yaml:"log"`

	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{Version: 1}
	cfg.API.BaseURL = "http://localhost:8080"
	cfg.API.TimeoutSeconds = 10
	cfg.Broker.ID = "1"
	cfg.Pipeline.Sanitised = true
	cfg.Log.Path = "brokerdesk.log"
	cfg.Server.Port = "8080"
	return cfg
}

// Load reads the config file at path, creating it with defaults when it does
// not exist, then applies environment overrides. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if writeErr := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); writeErr != nil {
			return nil, fmt.Errorf("config: write default %s: %w", path, writeErr)
		}
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: api.base_url is required")
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = Default().API.TimeoutSeconds
	}
	if cfg.Broker.ID == "" {
		cfg.Broker.ID = Default().Broker.ID
	}
	return cfg, nil
}

// Timeout returns the per-request timeout for collaborator calls.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func applyEnv(cfg *Config) {
	cfg.API.BaseURL = getEnv("BROKERDESK_API_URL", cfg.API.BaseURL)
	cfg.Broker.ID = getEnv("BROKERDESK_BROKER_ID", cfg.Broker.ID)
	cfg.Log.Path = getEnv("BROKERDESK_LOG_PATH", cfg.Log.Path)
	cfg.Server.Port = getEnv("BROKERDESK_PORT", cfg.Server.Port)
	if v, ok := os.LookupEnv("BROKERDESK_TIMEOUT_SECONDS"); ok {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.API.TimeoutSeconds = secs
		}
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
