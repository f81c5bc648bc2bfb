package tag

import (
	"context"
	"errors"
	"testing"
	"time"

	"managesalary/internal/infrastructure/api"
	"managesalary/internal/infrastructure/cache"
	"managesalary/internal/shared/handlers"
	"managesalary/internal/shared/swr"
)

// MockAPI is a mock implementation of the API interface.
type MockAPI struct {
	ListTagsFunc  func(ctx context.Context) ([]api.Tag, error)
	CreateTagFunc func(ctx context.Context, name string) error
	DeleteTagFunc func(ctx context.Context, id string) error
	TagInfoFunc   func(ctx context.Context, id string) (*api.TagInfoResponse, error)
}

func (m *MockAPI) ListTags(ctx context.Context) ([]api.Tag, error) {
	if m.ListTagsFunc != nil {
		return m.ListTagsFunc(ctx)
	}
	return nil, nil
}

func (m *MockAPI) CreateTag(ctx context.Context, name string) error {
	if m.CreateTagFunc != nil {
		return m.CreateTagFunc(ctx, name)
	}
	return nil
}

func (m *MockAPI) DeleteTag(ctx context.Context, id string) error {
	if m.DeleteTagFunc != nil {
		return m.DeleteTagFunc(ctx, id)
	}
	return nil
}

func (m *MockAPI) TagInfo(ctx context.Context, id string) (*api.TagInfoResponse, error) {
	if m.TagInfoFunc != nil {
		return m.TagInfoFunc(ctx, id)
	}
	return &api.TagInfoResponse{}, nil
}

func newTestService(mock *MockAPI) *Service {
	return NewService(mock, swr.New(cache.NewMemory(), time.Minute))
}

func TestList_ConvertsAndCaches(t *testing.T) {
	calls := 0
	mock := &MockAPI{
		ListTagsFunc: func(ctx context.Context) ([]api.Tag, error) {
			calls++
			return []api.Tag{
				{ID: "t1", Name: "Food", CreatedAt: "2024-01-15T10:00:00Z"},
				{ID: "t2", Name: "Rent"},
			}, nil
		},
	}
	svc := newTestService(mock)

	ctx := context.Background()
	tags, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("List() returned %d tags, want 2", len(tags))
	}
	if tags[0].Name != "Food" || tags[0].CreatedAt.IsZero() {
		t.Errorf("List()[0] = %+v", tags[0])
	}
	if !tags[1].CreatedAt.IsZero() {
		t.Errorf("missing createdAt should stay zero, got %v", tags[1].CreatedAt)
	}

	svc.List(ctx)
	if calls != 1 {
		t.Errorf("ListTags called %d times, want 1 (cached)", calls)
	}
}

func TestCreate_ValidationSkipsNetwork(t *testing.T) {
	networkCalled := false
	mock := &MockAPI{
		CreateTagFunc: func(ctx context.Context, name string) error {
			networkCalled = true
			return nil
		},
	}
	svc := newTestService(mock)

	var gotErr error
	svc.Create(context.Background(), CreateTagParams{Name: ""}, handlers.Fn{
		OnError: func(err error) { gotErr = err },
	})

	if gotErr == nil {
		t.Fatal("Create() with empty name expected validation error")
	}
	if networkCalled {
		t.Error("validation failure must not reach the network")
	}
}

func TestCreate_InvalidatesTagCache(t *testing.T) {
	listCalls := 0
	mock := &MockAPI{
		ListTagsFunc: func(ctx context.Context) ([]api.Tag, error) {
			listCalls++
			return nil, nil
		},
	}
	svc := newTestService(mock)
	ctx := context.Background()

	svc.List(ctx)

	succeeded := false
	svc.Create(ctx, CreateTagParams{Name: "Travel"}, handlers.Fn{
		OnSuccess: func() { succeeded = true },
		OnError:   func(err error) { t.Fatalf("Create() failed: %v", err) },
	})
	if !succeeded {
		t.Fatal("Create() did not report success")
	}

	svc.List(ctx)
	if listCalls != 2 {
		t.Errorf("ListTags called %d times, want 2 (cache invalidated by create)", listCalls)
	}
}

func TestRemove_RequiresID(t *testing.T) {
	mock := &MockAPI{
		DeleteTagFunc: func(ctx context.Context, id string) error {
			t.Error("delete must not be called without an id")
			return nil
		},
	}
	svc := newTestService(mock)

	var gotErr error
	svc.Remove(context.Background(), "", handlers.Fn{
		OnError: func(err error) { gotErr = err },
	})
	if gotErr == nil {
		t.Fatal("Remove(\"\") expected error")
	}
}

func TestRemove_SurfacesAPIError(t *testing.T) {
	apiErr := errors.New("Error fetching: tag in use")
	mock := &MockAPI{
		DeleteTagFunc: func(ctx context.Context, id string) error { return apiErr },
	}
	svc := newTestService(mock)

	var gotErr error
	svc.Remove(context.Background(), "t1", handlers.Fn{
		OnError: func(err error) { gotErr = err },
	})
	if !errors.Is(gotErr, apiErr) {
		t.Errorf("Remove() error = %v, want %v", gotErr, apiErr)
	}
}

func TestInfo_GroupsAndConverts(t *testing.T) {
	mock := &MockAPI{
		TagInfoFunc: func(ctx context.Context, id string) (*api.TagInfoResponse, error) {
			return &api.TagInfoResponse{
				Tag: api.Tag{ID: "t1", Name: "Food"},
				RecordsGrouped: []api.RecordGroup{
					{
						ID:    "out",
						Total: "20000",
						Records: []api.Record{
							{ID: "r1", Type: "out", Amount: "5000", Description: "groceries"},
							{ID: "r2", Type: "out", Amount: "15000", Description: "restaurant"},
						},
					},
					{
						ID:    "in",
						Total: "100000",
						Records: []api.Record{
							{ID: "r3", Type: "in", Amount: "100000", Description: "refund"},
						},
					},
				},
			}, nil
		},
	}
	svc := newTestService(mock)

	info, err := svc.Info(context.Background(), "t1")
	if err != nil {
		t.Fatalf("Info() failed: %v", err)
	}
	if info.Tag.Name != "Food" {
		t.Errorf("Tag.Name = %q", info.Tag.Name)
	}
	if info.OutRecords.Total != 200 {
		t.Errorf("OutRecords.Total = %v, want 200", info.OutRecords.Total)
	}
	if info.InRecords.Total != 1000 {
		t.Errorf("InRecords.Total = %v, want 1000", info.InRecords.Total)
	}
	if len(info.OutRecords.Records) != 2 || info.OutRecords.Records[0].Amount != 50 {
		t.Errorf("OutRecords.Records = %+v", info.OutRecords.Records)
	}
}
