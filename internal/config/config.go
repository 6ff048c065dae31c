package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These mirror the GitHub API's documented behavior: unauthenticated
// clients get 60 requests/hour, authenticated clients 5000/hour, so a
// conservative fixed delay keeps sequential runs under both ceilings.
const (
	// DefaultAPIBaseURL is the public GitHub REST API endpoint.
	// Override via --api-url for GitHub Enterprise installations.
	DefaultAPIBaseURL = "https://api.github.com"

	// DefaultTimeout bounds each repository lookup. 10 seconds is generous
	// for a single metadata GET; anything slower is classified as ERROR
	// rather than hanging the run.
	DefaultTimeout = 10 * time.Second

	// DefaultDelay is the fixed inter-request throttle. This is a blunt,
	// non-adaptive cap on request rate: it does not read rate-limit
	// headers, it simply spaces requests out.
	DefaultDelay = 1 * time.Second

	// DefaultConcurrency of 1 preserves strictly sequential probing and
	// deterministic progress ordering. Higher values enable the bounded
	// worker pool; the shared rate limiter still caps the request rate.
	DefaultConcurrency = 1

	// DefaultUserAgent identifies repocheck in HTTP requests.
	// The GitHub API rejects requests without a User-Agent header.
	DefaultUserAgent = "repocheck/1.0 (+https://github.com/nao1215/repocheck)"

	// DefaultMaxBodySize limits the response body size to read.
	// Repository metadata responses are a few KB; 1MB is a safety cap.
	DefaultMaxBodySize = 1 * 1024 * 1024 // 1MB

	// AppName is the application name used for XDG directory paths.
	AppName = "repocheck"
)

// Config holds all configuration options for a check run.
// It is populated from CLI flags (optionally merged with a YAML config
// file) and passed through the application via dependency injection
// rather than global state.
type Config struct {
	// ListPath is the path to the newline-delimited URL list.
	// This is the only required input; a missing or unreadable file is
	// fatal for the whole run.
	ListPath string

	// Token is the optional bearer credential attached to API requests.
	// Supplying a token raises the rate-limit ceiling and grants access
	// to private repositories the token can see.
	Token string

	// APIBaseURL is the base URL of the repository-metadata endpoint.
	APIBaseURL string

	// Timeout is the per-request timeout. Requests exceeding it are
	// classified as ERROR; there is no retry.
	Timeout time.Duration

	// Delay is the fixed interval enforced between requests.
	Delay time.Duration

	// Concurrency is the number of probe workers. 1 means sequential.
	Concurrency int

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	// When set, all API requests are routed through it.
	ProxyAddress string

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	MaxBodySize int64

	// JSONReport enables JSON summary output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown summary output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the summary report.
	// When empty, the report is written to stdout.
	ReportFile string

	// Quiet replaces per-URL progress lines with a progress bar.
	Quiet bool

	// Verbose enables detailed log output using slog.LevelDebug.
	Verbose bool

	// ConfigFilePath is the explicit path to the YAML config file.
	// If empty, the standard search locations are tried.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
// Users override specific fields after creation, typically from flags.
func NewConfig() *Config {
	return &Config{
		APIBaseURL:  DefaultAPIBaseURL,
		Timeout:     DefaultTimeout,
		Delay:       DefaultDelay,
		Concurrency: DefaultConcurrency,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
	}
}

// XDGConfigDir returns the XDG config directory for repocheck.
// On Linux: ~/.config/repocheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGDataDir returns the XDG data directory for repocheck.
// Callers that want a stable location for report files use this.
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It is called once after CLI parsing, before any file or network I/O,
// and returns the first error found.
func (c *Config) Validate() error {
	if c.ListPath == "" {
		return ErrNoURLList
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Delay < 0 {
		return ErrInvalidDelay
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidAPIBaseURL
	}

	return nil
}
