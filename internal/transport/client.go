// Package transport provides the authenticated HTTP client used to talk
// to the remote board API.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/blueteamops/detsync/pkg/errors"
)

// DefaultHTTPTimeout bounds every request round trip.
const DefaultHTTPTimeout = 30 * time.Second

// Client is an HTTP client that applies authentication to each request.
type Client struct {
	http  *http.Client
	auth  Authenticator
	token string
}

// New creates a transport client with the given authenticator and token.
func New(auth Authenticator, token string) *Client {
	if auth == nil {
		auth = &NoAuth{}
	}
	return &Client{
		http:  &http.Client{Timeout: DefaultHTTPTimeout},
		auth:  auth,
		token: token,
	}
}

// Do performs an HTTP request with authentication and common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		c.auth.Apply(req, c.token)
	}

	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// Post performs a POST request with a JSON-encoded payload.
func (c *Client) Post(ctx context.Context, url string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WrapParse("json", "request payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapIO("create", "POST "+url, err)
	}
	return c.Do(req)
}

// DecodeResponse decodes a JSON response into the target structure. A
// non-200 status is surfaced as an APIError carrying the response body.
func DecodeResponse(resp *http.Response, source string, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", source+" response", err)
	}
	return nil
}
