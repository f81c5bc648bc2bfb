// Package api implements the typed HTTP client for the manage-salary REST
// API. Amounts cross this boundary in minor units exactly as the wire carries
// them; conversion to display units happens in the domain services.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer token. The session store implements
// it; an empty token means logged out.
type TokenSource interface {
	Token() string
}

// StatusError is a transport-level failure: a non-2xx response with the HTTP
// status attached and a best-effort message from the body.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}

type errorBody struct {
	Message string `json:"message"`
}

// Client handles communication with the manage-salary API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	logger     *logrus.Logger
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource
	Logger  *logrus.Logger
	// Instrument wraps the transport with otelhttp so every request becomes a
	// client span.
	Instrument bool
}

// NewClient creates a new manage-salary API client.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var transport http.RoundTripper = http.DefaultTransport
	if opts.Instrument {
		transport = otelhttp.NewTransport(transport)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		baseURL: opts.BaseURL,
		tokens:  opts.Tokens,
		logger:  logger,
	}
}

// do executes one API request. Non-2xx responses become a StatusError whose
// message follows the "Error fetching: ..." convention; bodies that are not
// the expected JSON fall back to the request URL.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, withAuth bool) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if withAuth && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorBody
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &StatusError{
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("Error fetching: %s", errResp.Message),
			}
		}
		return &StatusError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Error fetching: %s", fullURL),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
