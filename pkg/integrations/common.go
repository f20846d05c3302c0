package integrations

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when an entity or resource doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 4xx responses).
	ErrNetwork = errors.New("network error")

	// ErrServer is returned when the registry answers with a 5xx status.
	ErrServer = errors.New("registry server error")

	// ErrDecode is returned when a response body is not the JSON we expect.
	ErrDecode = errors.New("decode response")
)

// NewHTTPClient creates an HTTP client with the given timeout.
// A non-positive timeout falls back to the 10 second default.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = httpTimeout
	}
	return &http.Client{Timeout: timeout}
}

// SplitEntityURL splits a detail URL at its last slash, returning the
// endpoint and the trailing identifier. A URL without a slash is returned
// as the id with an empty base.
func SplitEntityURL(raw string) (base, id string) {
	raw = strings.TrimSpace(raw)
	i := strings.LastIndex(raw, "/")
	if i < 0 {
		return "", raw
	}
	return raw[:i], raw[i+1:]
}

// JoinURL joins a base URL and path segments with single slashes.
func JoinURL(base string, segments ...string) string {
	s := strings.TrimRight(base, "/")
	for _, seg := range segments {
		s += "/" + strings.Trim(seg, "/")
	}
	return s
}
