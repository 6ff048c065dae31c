package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".repocheck"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .repocheck configuration file.
// Every field is optional; CLI flags take precedence over file values.
// Durations are written as Go duration strings (e.g. "10s", "500ms").
type File struct {
	// APIBaseURL overrides the repository-metadata endpoint.
	APIBaseURL string `yaml:"apiBaseURL,omitempty"`

	// Timeout is the per-request timeout.
	Timeout string `yaml:"timeout,omitempty"`

	// Delay is the fixed inter-request interval.
	Delay string `yaml:"delay,omitempty"`

	// Concurrency is the number of probe workers.
	Concurrency int `yaml:"concurrency,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`

	// Proxy is a SOCKS5 proxy address in "host:port" format.
	Proxy string `yaml:"proxy,omitempty"`
}

// LoadConfigFile loads run defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers
// should handle this based on whether the path was explicitly specified.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Apply merges file values into the config. Only fields still at their
// default value are overridden, so flag values always win.
func (cf *File) Apply(cfg *Config) error {
	if cf.APIBaseURL != "" && cfg.APIBaseURL == DefaultAPIBaseURL {
		cfg.APIBaseURL = cf.APIBaseURL
	}
	if cf.UserAgent != "" && cfg.UserAgent == DefaultUserAgent {
		cfg.UserAgent = cf.UserAgent
	}
	if cf.Proxy != "" && cfg.ProxyAddress == "" {
		cfg.ProxyAddress = cf.Proxy
	}
	if cf.Concurrency > 0 && cfg.Concurrency == DefaultConcurrency {
		cfg.Concurrency = cf.Concurrency
	}

	if cf.Timeout != "" && cfg.Timeout == DefaultTimeout {
		d, err := time.ParseDuration(cf.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout in config file: %w", err)
		}
		cfg.Timeout = d
	}
	if cf.Delay != "" && cfg.Delay == DefaultDelay {
		d, err := time.ParseDuration(cf.Delay)
		if err != nil {
			return fmt.Errorf("invalid delay in config file: %w", err)
		}
		cfg.Delay = d
	}
	return nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .repocheck in the current directory
// 3. Look for .repocheck in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
