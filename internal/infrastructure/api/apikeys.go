package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListAPIKeys returns the long-lived API keys of the account. Secrets are not
// included; only creation returns one.
func (c *Client) ListAPIKeys(ctx context.Context) ([]APIKey, error) {
	var resp APIKeysResponse
	if err := c.do(ctx, http.MethodGet, "/auth/api-keys", nil, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Keys, nil
}

// CreateAPIKey mints a key with named permissions and optional expiry.
func (c *Client) CreateAPIKey(ctx context.Context, req CreateAPIKeyRequest) (*CreateAPIKeyResponse, error) {
	var resp CreateAPIKeyResponse
	if err := c.do(ctx, http.MethodPost, "/auth/api-keys", nil, req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateAPIKey patches permissions, expiry or active state of a key.
func (c *Client) UpdateAPIKey(ctx context.Context, id string, req UpdateAPIKeyRequest) (*UpdateAPIKeyResponse, error) {
	var resp UpdateAPIKeyResponse
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/auth/api-keys/%s", id), nil, req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAPIKey deactivates a key.
func (c *Client) DeleteAPIKey(ctx context.Context, id string) (*DeleteAPIKeyResponse, error) {
	var resp DeleteAPIKeyResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/auth/api-keys/%s", id), nil, nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}
