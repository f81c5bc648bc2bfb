package apikey

import (
	"context"
	"time"

	"managesalary/internal/infrastructure/api"
	"managesalary/internal/shared/handlers"
)

// API is the slice of the remote client this service needs.
type API interface {
	ListAPIKeys(ctx context.Context) ([]api.APIKey, error)
	CreateAPIKey(ctx context.Context, req api.CreateAPIKeyRequest) (*api.CreateAPIKeyResponse, error)
	UpdateAPIKey(ctx context.Context, id string, req api.UpdateAPIKeyRequest) (*api.UpdateAPIKeyResponse, error)
	DeleteAPIKey(ctx context.Context, id string) (*api.DeleteAPIKeyResponse, error)
}

// Service manages the account's API keys. Key listings are small and mutated
// rarely, so they always hit the server; no cache layer sits in front.
type Service struct {
	api API
}

func NewService(apiClient API) *Service {
	return &Service{api: apiClient}
}

func (s *Service) List(ctx context.Context) ([]Key, error) {
	resp, err := s.api.ListAPIKeys(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]Key, 0, len(resp))
	for _, w := range resp {
		keys = append(keys, fromWire(w))
	}
	return keys, nil
}

// Create mints a key and delivers the secret through OnSuccess. The secret is
// never retrievable again.
func (s *Service) Create(ctx context.Context, params CreateParams, h handlers.FnOf[Created]) {
	req, err := params.Validate()
	if err != nil {
		h.Error(err)
		return
	}
	resp, err := s.api.CreateAPIKey(ctx, req)
	if err != nil {
		h.Error(err)
		return
	}
	h.Success(Created{
		Secret:      resp.APIKey,
		Name:        resp.Name,
		Permissions: resp.Permissions,
		ExpiresAt:   parseWireTime(resp.ExpiresAt),
	})
}

func (s *Service) Update(ctx context.Context, id string, params UpdateParams, h handlers.Fn) {
	if id == "" {
		h.Error(&ValidationError{Field: "id", Reason: "key id is required"})
		return
	}
	req, err := params.Validate()
	if err != nil {
		h.Error(err)
		return
	}
	if _, err := s.api.UpdateAPIKey(ctx, id, req); err != nil {
		h.Error(err)
		return
	}
	h.Success()
}

func (s *Service) Remove(ctx context.Context, id string, h handlers.Fn) {
	if id == "" {
		h.Error(&ValidationError{Field: "id", Reason: "key id is required"})
		return
	}
	if _, err := s.api.DeleteAPIKey(ctx, id); err != nil {
		h.Error(err)
		return
	}
	h.Success()
}

func fromWire(w api.APIKey) Key {
	return Key{
		ID:          w.ID,
		Name:        w.Name,
		Permissions: w.Permissions,
		ExpiresAt:   parseWireTime(w.ExpiresAt),
		CreatedAt:   parseWireTime(w.CreatedAt),
		Active:      w.Active,
	}
}

func parseWireTime(s string) time.Time {
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
