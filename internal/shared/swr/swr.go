// Package swr maps (resource, query parameters) keys to cached, revalidatable
// results. Identical in-flight fetches are deduplicated; mutations invalidate
// the key families whose underlying data could have changed. A fetch issued
// for a superseded query is harmless because its key no longer matches the
// current parameters.
package swr

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"
)

// Backend is the storage half of the cache. Implementations live in
// internal/infrastructure/cache.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

type Store struct {
	backend Backend
	ttl     time.Duration
	group   singleflight.Group
}

func New(backend Backend, ttl time.Duration) *Store {
	return &Store{backend: backend, ttl: ttl}
}

// Key composes a cache key from a resource path and every parameter that
// affects the response. url.Values encodes in sorted order, so the same query
// always produces the same key.
func Key(resource string, params url.Values) string {
	if len(params) == 0 {
		return resource
	}
	return resource + "?" + params.Encode()
}

// Get returns the cached value for key, or runs fetch and stores the result.
// Concurrent callers of the same key share a single fetch.
func Get[T any](ctx context.Context, s *Store, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	v, err, _ := s.group.Do(key, func() (any, error) {
		if data, ok, err := s.backend.Get(ctx, key); err == nil && ok {
			return data, nil
		}

		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		// A failed cache write only costs a refetch next time.
		_ = s.backend.Set(ctx, key, data, s.ttl)
		return data, nil
	})
	if err != nil {
		return zero, err
	}

	var out T
	if err := json.Unmarshal(v.([]byte), &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Invalidate drops exact keys.
func (s *Store) Invalidate(ctx context.Context, keys ...string) error {
	return s.backend.Delete(ctx, keys...)
}

// InvalidatePrefix drops every key under a resource prefix. Mutation handlers
// use this to coarsely cover all parameter combinations of a resource.
func (s *Store) InvalidatePrefix(ctx context.Context, prefix string) error {
	return s.backend.DeletePrefix(ctx, prefix)
}
