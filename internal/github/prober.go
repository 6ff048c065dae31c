package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nao1215/repocheck/internal/model"
)

// Prober determines repository accessibility with a single GET against
// the repository-metadata endpoint (/repos/{owner}/{repo}).
//
// One request, one outcome: there is no retry or backoff. Every HTTP
// status and transport failure maps onto exactly one StatusCode, so the
// caller always receives a classification, never an error.
type Prober struct {
	// client is the HTTP client shared across the run.
	client *http.Client

	// baseURL is the API endpoint, without a trailing slash.
	baseURL string

	// token is the optional bearer credential. Read-only after startup.
	token string

	// userAgent is the User-Agent header sent with every request.
	userAgent string

	// maxBodySize limits how much of the metadata response is read.
	maxBodySize int64
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithToken sets the bearer credential attached to each request.
func WithToken(token string) ProberOption {
	return func(p *Prober) {
		p.token = token
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) ProberOption {
	return func(p *Prober) {
		p.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size to read.
func WithMaxBodySize(size int64) ProberOption {
	return func(p *Prober) {
		p.maxBodySize = size
	}
}

// NewProber creates a Prober that issues lookups against baseURL using
// the given client. The client carries the timeout, redirect, and proxy
// configuration (see NewHTTPClient).
func NewProber(client *http.Client, baseURL string, opts ...ProberOption) *Prober {
	p := &Prober{
		client:      client,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		userAgent:   "repocheck",
		maxBodySize: 1 * 1024 * 1024,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// repoMetadata is the subset of the repository response body that
// repocheck surfaces in result details.
type repoMetadata struct {
	FullName string `json:"full_name"`
	Private  bool   `json:"private"`
	Archived bool   `json:"archived"`
	Stars    int    `json:"stargazers_count"`
}

// Probe checks one repository reference and classifies the outcome.
//
// The mapping is exhaustive and checked in this order:
//
//	200                      -> EXISTS (archived flag / resolved name in detail)
//	403, 429                 -> FORBIDDEN
//	404                      -> NOT_FOUND
//	anything else, transport -> ERROR
//
// Redirects (renamed or transferred repositories) are followed by the
// HTTP layer, so a 301 chain ending in 200 classifies as EXISTS with the
// final owner/name reported in the detail.
func (p *Prober) Probe(ctx context.Context, ref *model.RepoRef) model.CheckResult {
	endpoint := fmt.Sprintf("%s/repos/%s/%s", p.baseURL, ref.Owner, ref.Name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.NewCheckResult(ref, model.StatusError, err.Error())
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", p.userAgent)
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		// DNS failure, connection refused, timeout. The error text is the
		// only diagnostic available, so surface it as the detail.
		return model.NewCheckResult(ref, model.StatusError, fmt.Sprintf("network error: %v", err))
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return model.NewCheckResult(ref, model.StatusExists, p.existsDetail(ref, resp.Body))
	case http.StatusForbidden, http.StatusTooManyRequests:
		return model.NewCheckResult(ref, model.StatusForbidden, "Access denied (private or rate limited)")
	case http.StatusNotFound:
		return model.NewCheckResult(ref, model.StatusNotFound, "Repository not found")
	default:
		return model.NewCheckResult(ref, model.StatusError, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}
}

// existsDetail builds the detail string for a 200 response from the
// metadata body: the resolved name when a redirect landed elsewhere,
// plus the archived and private flags when set. A body that fails to
// decode yields an empty detail; the classification stands regardless.
func (p *Prober) existsDetail(ref *model.RepoRef, body io.Reader) string {
	var meta repoMetadata
	if err := json.NewDecoder(io.LimitReader(body, p.maxBodySize)).Decode(&meta); err != nil {
		return ""
	}

	var parts []string
	if meta.FullName != "" && !strings.EqualFold(meta.FullName, ref.FullName()) {
		parts = append(parts, "resolved to "+meta.FullName)
	}
	if meta.Archived {
		parts = append(parts, "archived")
	}
	if meta.Private {
		parts = append(parts, "private")
	}
	if meta.Stars > 0 {
		parts = append(parts, fmt.Sprintf("%d stars", meta.Stars))
	}
	return strings.Join(parts, ", ")
}
