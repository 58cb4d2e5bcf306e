package adtsecurehome

// Functional options that configure a Client during construction. They are
// applied before the first transport session is built, so transport-related
// options take effect on the first session and on every session a reset
// creates after it.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in NewClient.
type Option func(*Client) error

// WithTimeout sets the per-request timeout. The value must be greater than
// zero.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithToken seeds the client with a previously issued session token, so
// authenticated calls work without calling Login first.
func WithToken(token string) Option {
	return func(c *Client) error {
		c.token = token
		return nil
	}
}

// WithBaseURL points the client at a different API host. Intended for tests
// against a mock server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("base URL must not be empty")
		}
		c.baseURL = baseURL
		return nil
	}
}

// WithTransport replaces the base transport the session is built on. The
// session default headers are still applied on top of it.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("transport must not be nil")
		}
		c.transport = rt
		return nil
	}
}

// WithDebugLogging dumps every request and response to the global zerolog
// logger when enabled. Setting SECUREHOME_DEBUG=true in the environment
// turns on the same dump without code changes. Dumps include credentials
// and tokens; do not enable in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debugWire = enabled
		return nil
	}
}
