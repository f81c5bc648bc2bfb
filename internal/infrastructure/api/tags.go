package api

import (
	"context"
	"fmt"
	"net/http"
)

type createTagRequest struct {
	Name string `json:"name"`
}

// ListTags returns every category of the current session.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var resp TagsResponse
	if err := c.do(ctx, http.MethodGet, "/tags", nil, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Tags, nil
}

// CreateTag creates a category. Name uniqueness is enforced server-side.
func (c *Client) CreateTag(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/tags", nil, createTagRequest{Name: name}, nil, true)
}

// DeleteTag removes a category. Records referencing it are left orphaned and
// render as untagged.
func (c *Client) DeleteTag(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tags/%s", id), nil, nil, nil, true)
}

// TagInfo fetches a category together with its grouped in/out records and
// totals.
func (c *Client) TagInfo(ctx context.Context, id string) (*TagInfoResponse, error) {
	var resp TagInfoResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tags/%s/info", id), nil, nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}
