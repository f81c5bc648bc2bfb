package record

import (
	"context"
	"fmt"
	"time"

	"managesalary/internal/domain/money"
	"managesalary/internal/domain/tag"
	"managesalary/internal/infrastructure/api"
	"managesalary/internal/shared/handlers"
	"managesalary/internal/shared/swr"
)

// API is the slice of the remote client this service needs.
type API interface {
	ListRecords(ctx context.Context, params api.ListRecordsParams) ([]api.Record, error)
	CreateRecord(ctx context.Context, req api.CreateRecordRequest) error
	UpdateRecord(ctx context.Context, id string, req api.UpdateRecordRequest) error
	DeleteRecord(ctx context.Context, id string) error
}

type Service struct {
	api   API
	cache *swr.Store
}

func NewService(apiClient API, cache *swr.Store) *Service {
	return &Service{api: apiClient, cache: cache}
}

// ListParams scopes a record listing page.
type ListParams struct {
	Page  int
	Limit int
	Type  string // "in", "out" or "all"
	Tag   string
	Range DateRange
}

func (p ListParams) wire() api.ListRecordsParams {
	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}
	return api.ListRecordsParams{
		Page:  p.Page,
		Limit: limit,
		Type:  p.Type,
		Tag:   p.Tag,
		From:  p.Range.From,
		To:    p.Range.To,
	}
}

// List fetches one page, cached per full parameter set, amounts converted to
// major units.
func (s *Service) List(ctx context.Context, params ListParams) ([]Record, error) {
	wire := params.wire()
	key := swr.Key("/records", wire.Query())
	return swr.Get(ctx, s.cache, key, func(ctx context.Context) ([]Record, error) {
		resp, err := s.api.ListRecords(ctx, wire)
		if err != nil {
			return nil, err
		}
		records := make([]Record, 0, len(resp))
		for _, w := range resp {
			converted, err := FromWire(w)
			if err != nil {
				return nil, err
			}
			records = append(records, converted)
		}
		return records, nil
	})
}

// Create validates, converts and posts a new record. Validation failures are
// reported through OnError without touching the network.
func (s *Service) Create(ctx context.Context, params CreateParams, h handlers.Fn) {
	req, err := params.Validate()
	if err != nil {
		h.Error(err)
		return
	}
	if err := s.api.CreateRecord(ctx, req); err != nil {
		h.Error(err)
		return
	}
	s.invalidate(ctx)
	h.Success()
}

// Update applies a partial update with the same per-field validation.
func (s *Service) Update(ctx context.Context, id string, params UpdateParams, h handlers.Fn) {
	if id == "" {
		h.Error(&ValidationError{Field: "id", Reason: "record id is required"})
		return
	}
	req, err := params.Validate()
	if err != nil {
		h.Error(err)
		return
	}
	if err := s.api.UpdateRecord(ctx, id, req); err != nil {
		h.Error(err)
		return
	}
	s.invalidate(ctx)
	h.Success()
}

// Remove deletes a record.
func (s *Service) Remove(ctx context.Context, id string, h handlers.Fn) {
	if id == "" {
		h.Error(&ValidationError{Field: "id", Reason: "record id is required"})
		return
	}
	if err := s.api.DeleteRecord(ctx, id); err != nil {
		h.Error(err)
		return
	}
	s.invalidate(ctx)
	h.Success()
}

// A record mutation can change any list page, the dashboards, analytics and
// every tag's grouped detail. Exact overlap is not computed; the fixed
// prefixes are coarse but complete.
func (s *Service) invalidate(ctx context.Context) {
	_ = s.cache.InvalidatePrefix(ctx, "/records")
	_ = s.cache.InvalidatePrefix(ctx, "/tags")
}

// FromWire converts a wire record: minor units to major, dates parsed, a
// missing tag degraded to the Untagged placeholder.
func FromWire(w api.Record) (Record, error) {
	minor, err := money.ParseMinorString(w.Amount)
	if err != nil {
		return Record{}, fmt.Errorf("record %s: %w", w.ID, err)
	}

	r := Record{
		ID:          w.ID,
		Type:        Type(w.Type),
		Amount:      money.ToMajorUnits(minor),
		Description: w.Description,
		Currency:    w.Currency,
		Tag:         tag.Untagged,
	}
	if w.Tag != nil && w.Tag.Name != "" {
		r.Tag = tag.Tag{ID: w.Tag.ID, Name: w.Tag.Name}
	}
	if w.Date != "" {
		parsed, err := parseWireDate(w.Date)
		if err != nil {
			return Record{}, fmt.Errorf("record %s: %w", w.ID, err)
		}
		r.Date = parsed
	}
	if w.CreatedAt != "" {
		if parsed, err := parseWireDate(w.CreatedAt); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}

func parseWireDate(s string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		parsed, err = time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date %q: %w", s, err)
		}
	}
	return parsed, nil
}
