package client

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client, e.g. with an
// httptest server's client in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client timeout, a coarse safety
// net around each whole request. Per-call context deadlines are preferred.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithListRetries sets how many times a failed list fetch is retried before
// the error is surfaced. Zero disables retries. Mutating calls are never
// retried.
func WithListRetries(n uint64) Option {
	return func(c *Client) error {
		c.listRetries = n
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request and response
// is dumped at debug level. Also enabled by the JOURNAL_DEBUG or DEBUG
// environment variables.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}

func debugLoggingRequested() bool {
	for _, key := range []string{"JOURNAL_DEBUG", "DEBUG"} {
		if v := os.Getenv(key); strings.EqualFold(v, "true") || v == "1" {
			return true
		}
	}
	return false
}
