package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/repocheck/internal/model"
)

// newTestRef returns a reference for the given owner/repo.
func newTestRef(owner, repo string) *model.RepoRef {
	return &model.RepoRef{
		Owner:       owner,
		Name:        repo,
		OriginalURL: fmt.Sprintf("https://github.com/%s/%s", owner, repo),
	}
}

// TestProberClassification tests the HTTP status to StatusCode mapping.
func TestProberClassification(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/Hello-World":
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, `{"full_name":"octocat/Hello-World","private":false,"archived":false,"stargazers_count":0}`)
		case "/repos/octocat/archived-repo":
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, `{"full_name":"octocat/archived-repo","archived":true}`)
		case "/repos/nouser/doesnotexist123456":
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"Not Found"}`)
		case "/repos/secret/private-repo":
			w.WriteHeader(http.StatusForbidden)
		case "/repos/busy/rate-limited":
			w.WriteHeader(http.StatusTooManyRequests)
		case "/repos/flaky/server-error":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	t.Cleanup(server.Close)

	prober := NewProber(server.Client(), server.URL)

	testCases := []struct {
		name           string
		owner, repo    string
		expectedStatus model.StatusCode
		detailContains string
	}{
		{"existing repo", "octocat", "Hello-World", model.StatusExists, ""},
		{"archived repo", "octocat", "archived-repo", model.StatusExists, "archived"},
		{"missing repo", "nouser", "doesnotexist123456", model.StatusNotFound, "Repository not found"},
		{"forbidden repo", "secret", "private-repo", model.StatusForbidden, "Access denied (private or rate limited)"},
		{"rate limited", "busy", "rate-limited", model.StatusForbidden, "Access denied (private or rate limited)"},
		{"server error", "flaky", "server-error", model.StatusError, "HTTP 500"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := prober.Probe(context.Background(), newTestRef(tc.owner, tc.repo))
			if result.Status != tc.expectedStatus {
				t.Errorf("expected %s, got %s (detail: %s)", tc.expectedStatus, result.Status, result.Detail)
			}
			if tc.detailContains != "" && !strings.Contains(result.Detail, tc.detailContains) {
				t.Errorf("expected detail containing %q, got %q", tc.detailContains, result.Detail)
			}
		})
	}
}

// TestProberRedirect tests that a redirect followed by the HTTP layer
// classifies as EXISTS with the resolved name in the detail.
func TestProberRedirect(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/oldowner/renamed":
			http.Redirect(w, r, "/repos/newowner/renamed", http.StatusMovedPermanently)
		case "/repos/newowner/renamed":
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, `{"full_name":"newowner/renamed"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	prober := NewProber(server.Client(), server.URL)
	result := prober.Probe(context.Background(), newTestRef("oldowner", "renamed"))

	if result.Status != model.StatusExists {
		t.Fatalf("expected EXISTS, got %s", result.Status)
	}
	if !strings.Contains(result.Detail, "resolved to newowner/renamed") {
		t.Errorf("expected resolved name in detail, got %q", result.Detail)
	}
}

// TestProberHeaders tests the request contract: bearer credential,
// User-Agent, and Accept headers.
func TestProberHeaders(t *testing.T) {
	t.Parallel()

	var gotAuth, gotUA, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	prober := NewProber(server.Client(), server.URL,
		WithToken("ghp_testtoken123"),
		WithUserAgent("repocheck-test"),
	)
	prober.Probe(context.Background(), newTestRef("octocat", "Hello-World"))

	if gotAuth != "Bearer ghp_testtoken123" {
		t.Errorf("expected bearer credential, got %q", gotAuth)
	}
	if gotUA != "repocheck-test" {
		t.Errorf("expected custom user agent, got %q", gotUA)
	}
	if gotAccept != "application/vnd.github+json" {
		t.Errorf("unexpected accept header: %q", gotAccept)
	}
}

// TestProberAnonymous tests that no Authorization header is sent
// without a token.
func TestProberAnonymous(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var sawAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	prober := NewProber(server.Client(), server.URL)
	prober.Probe(context.Background(), newTestRef("octocat", "Hello-World"))

	if sawAuth {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

// TestProberTimeout tests that a request exceeding the client timeout
// classifies as ERROR and does not hang.
func TestProberTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := server.Client()
	client.Timeout = 50 * time.Millisecond

	prober := NewProber(client, server.URL)
	result := prober.Probe(context.Background(), newTestRef("slow", "repo"))

	if result.Status != model.StatusError {
		t.Fatalf("expected ERROR, got %s", result.Status)
	}
	if !strings.Contains(result.Detail, "network error") {
		t.Errorf("expected network error detail, got %q", result.Detail)
	}
}

// TestProberMalformedBody tests that an undecodable 200 body still
// classifies as EXISTS with an empty detail.
func TestProberMalformedBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `not json at all`)
	}))
	defer server.Close()

	prober := NewProber(server.Client(), server.URL)
	result := prober.Probe(context.Background(), newTestRef("octocat", "Hello-World"))

	if result.Status != model.StatusExists {
		t.Errorf("expected EXISTS, got %s", result.Status)
	}
	if result.Detail != "" {
		t.Errorf("expected empty detail, got %q", result.Detail)
	}
}
