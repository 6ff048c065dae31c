package model

// CheckResult is the outcome of checking a single input line.
// Exactly one CheckResult is produced per non-blank line, and it is
// never mutated after creation.
type CheckResult struct {
	// Ref is the parsed repository reference.
	// Nil when the line could not be parsed (StatusInvalidURL).
	Ref *RepoRef `json:"ref,omitempty"`

	// RawURL is the original input line.
	RawURL string `json:"url"`

	// Status is the classification of this line.
	Status StatusCode `json:"-"`

	// StatusText is the canonical status name, kept alongside Status
	// so JSON output is self-describing.
	StatusText string `json:"status"`

	// Detail carries extra context: the archived flag or resolved name
	// for EXISTS, a fixed message for NOT_FOUND/FORBIDDEN, the error or
	// status code text for ERROR.
	Detail string `json:"detail,omitempty"`
}

// NewCheckResult creates a result for a parsed reference.
func NewCheckResult(ref *RepoRef, status StatusCode, detail string) CheckResult {
	raw := ""
	if ref != nil {
		raw = ref.OriginalURL
	}
	return CheckResult{
		Ref:        ref,
		RawURL:     raw,
		Status:     status,
		StatusText: status.String(),
		Detail:     detail,
	}
}

// NewInvalidResult creates a result for a line that failed to parse.
func NewInvalidResult(rawURL, detail string) CheckResult {
	return CheckResult{
		RawURL:     rawURL,
		Status:     StatusInvalidURL,
		StatusText: StatusInvalidURL.String(),
		Detail:     detail,
	}
}

// Target returns the display name for the result: "owner/name" when the
// URL parsed, otherwise the raw URL itself.
func (r CheckResult) Target() string {
	if r.Ref != nil {
		return r.Ref.FullName()
	}
	return r.RawURL
}
