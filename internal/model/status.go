package model

// StatusCode classifies the reachability of a repository.
// It is derived from, but distinct from, HTTP status codes: the set is
// closed and every input line maps to exactly one StatusCode.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and grouping. The String() method provides
// human-readable output when needed.
type StatusCode int

const (
	// StatusExists indicates the repository exists and is accessible.
	// Produced by HTTP 200, including responses reached via redirect.
	StatusExists StatusCode = iota

	// StatusNotFound indicates the repository does not exist (HTTP 404).
	StatusNotFound

	// StatusForbidden indicates access was denied (HTTP 403 or 429).
	// This covers both private repositories and rate limiting; the API
	// does not distinguish the two for unauthenticated callers.
	StatusForbidden

	// StatusError indicates an unexpected HTTP status or a transport-level
	// failure (DNS, connection refused, timeout).
	StatusError

	// StatusInvalidURL indicates the input line could not be parsed into
	// an owner/repository pair. No network request is made.
	StatusInvalidURL
)

// String returns the canonical name of the status.
func (s StatusCode) String() string {
	switch s {
	case StatusExists:
		return "EXISTS"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusForbidden:
		return "FORBIDDEN"
	case StatusError:
		return "ERROR"
	case StatusInvalidURL:
		return "INVALID_URL"
	default:
		return "UNKNOWN"
	}
}

// Glyph returns the single-character progress indicator for the status.
func (s StatusCode) Glyph() string {
	switch s {
	case StatusExists:
		return "✓"
	case StatusNotFound:
		return "✗"
	case StatusForbidden:
		return "⚠"
	case StatusError:
		return "?"
	case StatusInvalidURL:
		return "!"
	default:
		return "?"
	}
}

// IsProblem reports whether the status marks a dead or problematic link.
// Every status except StatusExists is a problem.
func (s StatusCode) IsProblem() bool {
	return s != StatusExists
}

// AllStatuses lists every StatusCode in summary display order.
// Keeping this in one place keeps per-status reporting exhaustive.
func AllStatuses() []StatusCode {
	return []StatusCode{
		StatusExists,
		StatusNotFound,
		StatusForbidden,
		StatusError,
		StatusInvalidURL,
	}
}
