package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/obaro89/afridev-backend/internal/domain"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) DeleteAccount(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockPostStore hands out a fresh copy from Get so retries see clean state.
type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) Create(ctx context.Context, p *domain.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPostStore) Get(ctx context.Context, id string) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	cp := *args.Get(0).(*domain.Post)
	cp.Likes = append([]domain.Like{}, cp.Likes...)
	cp.Comments = append([]domain.Comment{}, cp.Comments...)
	return &cp, args.Error(1)
}

func (m *MockPostStore) List(ctx context.Context) ([]*domain.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *MockPostStore) Update(ctx context.Context, p *domain.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPostStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	cp := *args.Get(0).(*domain.Profile)
	cp.Experience = append([]domain.Experience{}, cp.Experience...)
	cp.Education = append([]domain.Education{}, cp.Education...)
	return &cp, args.Error(1)
}

func (m *MockProfileStore) List(ctx context.Context) ([]*domain.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

func (m *MockProfileStore) Create(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProfileStore) Update(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}
