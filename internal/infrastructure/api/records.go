package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListRecordsParams scopes the paginated record listing. Type "all" (or empty)
// means no type filter; empty date bounds mean unbounded on that side.
type ListRecordsParams struct {
	Page  int
	Limit int
	Type  string
	Tag   string
	From  string
	To    string
}

// Query renders the parameter set. Every field that affects the response is
// included, so the encoding doubles as a cache key suffix.
func (p ListRecordsParams) Query() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	if p.Type != "" && p.Type != "all" {
		q.Set("recordType", p.Type)
	}
	if p.Tag != "" {
		q.Set("tag", p.Tag)
	}
	if p.From != "" {
		q.Set("from", p.From)
	}
	if p.To != "" {
		q.Set("to", p.To)
	}
	return q
}

// ListRecords fetches one page of records.
func (c *Client) ListRecords(ctx context.Context, params ListRecordsParams) ([]Record, error) {
	var resp RecordsResponse
	if err := c.do(ctx, http.MethodGet, "/records", params.Query(), nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// CreateRecord posts a new record. The caller has already validated and
// converted the payload to wire form.
func (c *Client) CreateRecord(ctx context.Context, req CreateRecordRequest) error {
	return c.do(ctx, http.MethodPost, "/records", nil, req, nil, true)
}

// UpdateRecord applies a partial update to one record.
func (c *Client) UpdateRecord(ctx context.Context, id string, req UpdateRecordRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/records/%s", id), nil, req, nil, true)
}

// DeleteRecord removes one record.
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/records/%s", id), nil, nil, nil, true)
}
