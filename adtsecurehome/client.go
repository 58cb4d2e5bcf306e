package adtsecurehome

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the ADT Secure Home cloud API. It owns its transport
// session, the session token, and the per-request timeout.
//
// A Client is not safe for concurrent use: every operation is a synchronous
// blocking round trip, and ResetSession and Logout replace the transport
// session. Callers needing concurrency must serialize access externally or
// use independent clients.
type Client struct {
	baseURL    string
	email      string
	password   string
	token      string
	timeout    time.Duration
	httpClient *http.Client
	transport  http.RoundTripper
	debugWire  bool
	logger     zerolog.Logger
}

// NewClient creates a new Secure Home client. No network call is made;
// Login establishes the session token unless one is supplied with WithToken.
func NewClient(email, password string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	client := &Client{
		baseURL:  DefaultBaseURL,
		email:    email,
		password: password,
		timeout:  DefaultTimeout,
		logger:   logger,
	}

	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	client.ResetSession()

	return client, nil
}

// Token returns the current session token.
func (c *Client) Token() string {
	return c.token
}

// SetToken replaces the session token, for callers that persist tokens
// outside the client.
func (c *Client) SetToken(token string) {
	c.token = token
}

// ResetSession discards the transport session and opens a fresh one with the
// default headers reapplied. It is safe to call at any time, including
// before any session exists.
func (c *Client) ResetSession() {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}

	base := c.transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.debugWire || debugLoggingRequested() {
		base = &debugTransport{base: base}
	}

	c.httpClient = &http.Client{
		Timeout:   c.timeout,
		Transport: &headerTransport{base: base},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Logout ends the session by discarding the transport session. The stored
// token is left in place, matching the behavior of the vendor's own clients.
func (c *Client) Logout() {
	c.ResetSession()
}

// request describes one API call for the executor.
type request struct {
	op     string // operation label used in error messages and metrics
	method string
	path   string
	params url.Values
}

// do performs the request and classifies the outcome. Every public operation
// funnels through here; the classification order is fixed: transport
// failure, HTTP status, JSON decode, vendor status field.
func (c *Client) do(ctx context.Context, req request) (result APIResponse, err error) {
	defer func() {
		requestsTotal.WithLabelValues(req.op, outcome(err)).Inc()
	}()

	// The vendor API takes parameters in the query string on every verb,
	// POST included. The path is appended to the base URL verbatim.
	requestURL := c.baseURL + req.path
	if len(req.params) > 0 {
		requestURL += "?" + req.params.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, requestURL, nil)
	if err != nil {
		return nil, &InvalidURLError{URL: requestURL, Err: err}
	}

	c.logger.Debug().
		Str("method", req.method).
		Str("endpoint", req.path).
		Msg("calling secure home API")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &InvalidURLError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &InvalidURLError{URL: requestURL, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &APIError{Op: req.op, Raw: string(body), Err: err}
	}

	if result.Status() != StatusSuccess {
		return nil, &APIError{Op: req.op, Payload: result}
	}

	return result, nil
}

// headerTransport applies the session-scoped default headers to every
// outgoing request.
type headerTransport struct {
	base http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")
	return t.base.RoundTrip(req)
}
