package randomuser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the upstream random-user endpoint.
const DefaultBaseURL = "https://randomuser.me/api"

// Fetch failures are tagged so the internal log can say what actually
// went wrong; callers above the tool boundary only ever see a fixed
// error message.
var (
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
	ErrUpstreamStatus      = errors.New("upstream returned error status")
	ErrMalformedBody       = errors.New("malformed upstream body")
)

// Client dispatches getUsers queries to the upstream API. It is stateless
// and safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client against the production endpoint. The timeout
// bounds the whole request; the reference behavior had none, so anything
// here is a deliberate hardening.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithBaseURL points the client at an alternate endpoint.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// Fetch issues exactly one GET for the given query string, checks that
// the response is a JSON document, and returns it re-serialized as text.
// No retries, no partial results: either the full document comes back or
// a tagged error does. The context cancels the in-flight request.
func (c *Client) Fetch(ctx context.Context, query string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrUpstreamStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return string(out), nil
}
