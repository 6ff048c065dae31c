package github

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/net/proxy"
)

// maxRedirects caps redirect following to prevent loops while still
// handling renamed and transferred repositories, which the API answers
// with 301/302 to the new location.
const maxRedirects = 10

// NewHTTPClient creates the HTTP client used for all repository lookups.
//
// The client enforces the per-request timeout, follows up to maxRedirects
// redirects, and optionally routes every connection through a SOCKS5
// proxy when proxyAddress is non-empty.
//
// Design decision: A single shared client is created at startup and
// passed to the prober rather than constructing one per request because:
//  1. Proxy and timeout configuration should be consistent across the run
//  2. Connection pooling reuses the TLS session to the API host
//  3. Tests can substitute a client pointing at an httptest server
func NewHTTPClient(proxyAddress string, timeout time.Duration) (*http.Client, error) {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     30 * time.Second,
	}

	if proxyAddress != "" {
		if !isValidProxyAddress(proxyAddress) {
			return nil, ErrInvalidProxyAddress
		}
		// Auth is nil: typical SOCKS5 proxies (Tor, ssh -D) run without
		// authentication on localhost.
		dialer, err := proxy.SOCKS5("tcp", proxyAddress, nil, proxy.Direct)
		if err != nil {
			return nil, err
		}
		transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}, nil
}

// isValidProxyAddress checks if the address is in "host:port" format
// with a port in the valid range.
func isValidProxyAddress(address string) bool {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return false
	}
	// ParseUint rejects signed forms like "+80" that Atoi would accept.
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return false
	}
	return n >= 1
}
