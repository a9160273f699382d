package service

import (
	"context"

	"github.com/obaro89/afridev-backend/internal/domain"
)

// UserStore is implemented by repository.UserRepo and memory.Users.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	DeleteAccount(ctx context.Context, id string) error
}

// ProfileStore keys profiles by owner id. Update and Create return
// domain.ErrVersionConflict when a concurrent write won.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) error
	Update(ctx context.Context, p *domain.Profile) error
}

type PostStore interface {
	Create(ctx context.Context, p *domain.Post) error
	Get(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id string) error
}
