package config

import "errors"

// Configuration validation errors.
// These are package-level sentinel errors so callers can use errors.Is
// for programmatic handling while still getting readable messages.
var (
	// ErrNoURLList is returned when no URL list file is specified.
	ErrNoURLList = errors.New("no URL list specified: provide a path to a file with one URL per line")

	// ErrURLListNotFound is returned when the URL list file does not exist
	// or cannot be read. This is fatal for the whole run: no partial
	// processing happens without the input list.
	ErrURLListNotFound = errors.New("URL list file not found or unreadable")

	// ErrInvalidTimeout is returned when the per-request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidDelay is returned when the inter-request delay is negative.
	// Use 0 to disable the throttle entirely.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidConcurrency is returned when the worker count is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidAPIBaseURL is returned when the API base URL is not a
	// valid http or https URL.
	ErrInvalidAPIBaseURL = errors.New("invalid API base URL: must be an http(s) URL")
)
