package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/projecttracker/tracker/internal/infra/blob"
	"github.com/projecttracker/tracker/internal/modules/model"
	"github.com/stretchr/testify/mock"
)

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) List(ctx context.Context) ([]*model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Replace(ctx context.Context, p *model.Project) (*model.Project, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductTypeRepo is a mock implementation of repo.ProductTypeRepo
type MockProductTypeRepo struct {
	mock.Mock
}

func (m *MockProductTypeRepo) List(ctx context.Context) ([]*model.ProductType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProductType), args.Error(1)
}

func (m *MockProductTypeRepo) Seed(ctx context.Context, names []string, createdAt time.Time) error {
	args := m.Called(ctx, names, createdAt)
	return args.Error(0)
}

func (m *MockProductTypeRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductTypeRepo) Create(ctx context.Context, pt *model.ProductType) error {
	args := m.Called(ctx, pt)
	return args.Error(0)
}

func (m *MockProductTypeRepo) DeleteAndPull(ctx context.Context, id uuid.UUID) (*model.ProductType, int64, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*model.ProductType), args.Get(1).(int64), args.Error(2)
}

// MockProductTypeCache is a mock implementation of ProductTypeCache
type MockProductTypeCache struct {
	mock.Mock
}

func (m *MockProductTypeCache) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductTypeCache) Get(ctx context.Context) ([]*model.ProductType, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]*model.ProductType), args.Bool(1), args.Error(2)
}

func (m *MockProductTypeCache) Set(ctx context.Context, gen int64, items []*model.ProductType) error {
	args := m.Called(ctx, gen, items)
	return args.Error(0)
}

func (m *MockProductTypeCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSnapshotStore is a mock implementation of SnapshotStore
type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) UploadJSON(ctx context.Context, keyPrefix string, data interface{}) (*blob.UploadedMeta, error) {
	args := m.Called(ctx, keyPrefix, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blob.UploadedMeta), args.Error(1)
}

func (m *MockSnapshotStore) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

// recordingNotifier keeps every published event.
type recordingNotifier struct {
	mu     sync.Mutex
	events []model.ChangeEvent
	err    error
}

func (n *recordingNotifier) Publish(_ context.Context, ev model.ChangeEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
	return n.err
}

func (n *recordingNotifier) types() []model.EventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]model.EventType, 0, len(n.events))
	for _, ev := range n.events {
		out = append(out, ev.Type)
	}
	return out
}
