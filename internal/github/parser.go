package github

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nao1215/repocheck/internal/model"
)

// ParseRepoURL extracts an owner/repository reference from a raw URL line.
//
// The accepted shape is https://github.com/<owner>/<repo>, optionally with
// the www. host prefix, a trailing slash, a .git suffix on the repository
// name, or extra path segments (tree/blob paths etc.), which are ignored
// beyond the first two. http is also accepted; the API endpoint is always
// https regardless.
//
// Any other shape (missing scheme or host, unknown host, fewer than two
// path segments, empty owner or repository) returns ErrInvalidRepoURL.
// Case is preserved as given: GitHub names are case-insensitive but
// repocheck does not normalize.
func ParseRepoURL(rawURL string) (*model.RepoRef, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRepoURL, rawURL)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: missing or unsupported scheme: %s", ErrInvalidRepoURL, rawURL)
	}

	host := strings.ToLower(parsed.Host)
	if host != "github.com" && host != "www.github.com" {
		return nil, fmt.Errorf("%w: unsupported host %q", ErrInvalidRepoURL, parsed.Host)
	}

	segments := splitPath(parsed.Path)
	if len(segments) < 2 {
		return nil, fmt.Errorf("%w: expected /<owner>/<repo> path: %s", ErrInvalidRepoURL, rawURL)
	}

	owner := segments[0]
	name := strings.TrimSuffix(segments[1], ".git")
	if owner == "" || name == "" {
		return nil, fmt.Errorf("%w: empty owner or repository name: %s", ErrInvalidRepoURL, rawURL)
	}

	return &model.RepoRef{
		Owner:       owner,
		Name:        name,
		OriginalURL: rawURL,
	}, nil
}

// splitPath splits a URL path on "/" and drops empty segments, so
// leading, trailing, and doubled slashes do not produce phantom parts.
func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
