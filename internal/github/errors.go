package github

import "errors"

var (
	// ErrInvalidRepoURL is returned when an input line cannot be parsed
	// into an owner/repository pair. The caller classifies the line as
	// INVALID_URL and makes no network call.
	ErrInvalidRepoURL = errors.New("invalid repository URL")

	// ErrInvalidProxyAddress is returned when the SOCKS5 proxy address
	// is not in "host:port" format.
	ErrInvalidProxyAddress = errors.New("invalid proxy address: expected host:port")
)
