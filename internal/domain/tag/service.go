package tag

import (
	"context"
	"errors"
	"time"

	"managesalary/internal/domain/money"
	"managesalary/internal/infrastructure/api"
	"managesalary/internal/shared/handlers"
	"managesalary/internal/shared/swr"
)

// API is the slice of the remote client this service needs.
type API interface {
	ListTags(ctx context.Context) ([]api.Tag, error)
	CreateTag(ctx context.Context, name string) error
	DeleteTag(ctx context.Context, id string) error
	TagInfo(ctx context.Context, id string) (*api.TagInfoResponse, error)
}

type Service struct {
	api   API
	cache *swr.Store
}

func NewService(apiClient API, cache *swr.Store) *Service {
	return &Service{api: apiClient, cache: cache}
}

// List returns every category, cached under the bare /tags key.
func (s *Service) List(ctx context.Context) ([]Tag, error) {
	return swr.Get(ctx, s.cache, swr.Key("/tags", nil), func(ctx context.Context) ([]Tag, error) {
		wire, err := s.api.ListTags(ctx)
		if err != nil {
			return nil, err
		}
		tags := make([]Tag, 0, len(wire))
		for _, w := range wire {
			tags = append(tags, fromWire(w))
		}
		return tags, nil
	})
}

// Create adds a category. The name check is a soft pre-submit validation;
// uniqueness is the server's call.
func (s *Service) Create(ctx context.Context, params CreateTagParams, h handlers.Fn) {
	if err := params.Validate(); err != nil {
		h.Error(err)
		return
	}
	if err := s.api.CreateTag(ctx, params.Name); err != nil {
		h.Error(err)
		return
	}
	s.invalidate(ctx)
	h.Success()
}

// Remove deletes a category. Orphaned records degrade to Untagged; nothing is
// cascade-validated client-side.
func (s *Service) Remove(ctx context.Context, id string, h handlers.Fn) {
	if id == "" {
		h.Error(errors.New("tag id is required"))
		return
	}
	if err := s.api.DeleteTag(ctx, id); err != nil {
		h.Error(err)
		return
	}
	s.invalidate(ctx)
	h.Success()
}

// Info fetches a tag with its grouped in/out records, amounts converted to
// major units at the boundary.
func (s *Service) Info(ctx context.Context, id string) (*Info, error) {
	if id == "" {
		return nil, errors.New("tag id is required")
	}
	return swr.Get(ctx, s.cache, swr.Key("/tags/"+id+"/info", nil), func(ctx context.Context) (*Info, error) {
		resp, err := s.api.TagInfo(ctx, id)
		if err != nil {
			return nil, err
		}

		info := &Info{Tag: fromWire(resp.Tag)}
		for _, group := range resp.RecordsGrouped {
			converted, err := convertGroup(group)
			if err != nil {
				return nil, err
			}
			switch group.ID {
			case "in":
				info.InRecords = converted
			case "out":
				info.OutRecords = converted
			}
		}
		return info, nil
	})
}

// Tag mutations ripple into every record-derived view: lists resolve tag
// names and aggregations group by them.
func (s *Service) invalidate(ctx context.Context) {
	_ = s.cache.InvalidatePrefix(ctx, "/tags")
	_ = s.cache.InvalidatePrefix(ctx, "/records")
}

func convertGroup(group api.RecordGroup) (GroupedRecords, error) {
	total, err := money.ParseMinorString(group.Total)
	if err != nil {
		return GroupedRecords{}, err
	}

	out := GroupedRecords{Total: money.ToMajorUnits(total)}
	for _, r := range group.Records {
		minor, err := money.ParseMinorString(r.Amount)
		if err != nil {
			return GroupedRecords{}, err
		}
		out.Records = append(out.Records, RecordSummary{
			ID:          r.ID,
			Type:        r.Type,
			Description: r.Description,
			Amount:      money.ToMajorUnits(minor),
			Date:        r.Date,
		})
	}
	return out, nil
}

func fromWire(w api.Tag) Tag {
	t := Tag{ID: w.ID, Name: w.Name}
	if w.CreatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
			t.CreatedAt = parsed
		}
	}
	return t
}
