package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/obaro89/afridev-backend/internal/domain"
)

// PostService owns the post aggregate with its likes and comments.
type PostService struct {
	posts PostStore
	users UserStore
	now   func() time.Time
}

func NewPostService(posts PostStore, users UserStore) *PostService {
	return &PostService{posts: posts, users: users, now: time.Now}
}

func (s *PostService) Create(ctx context.Context, userID, text string) (*domain.Post, error) {
	if err := domain.ValidateText(text, "Text is required"); err != nil {
		return nil, err
	}
	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := domain.NewPost(uuid.NewString(), author, text, s.now().UTC())
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrPostNotFound
	}
	return s.posts.Get(ctx, id)
}

// Delete removes the post when userID owns it.
func (s *PostService) Delete(ctx context.Context, userID, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := p.CanDelete(userID); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}

// Like adds userID to the post's likes. applied is false when the user had
// already liked it; nothing is written in that case.
func (s *PostService) Like(ctx context.Context, userID, id string) (likes []domain.Like, applied bool, err error) {
	p, err := s.mutate(ctx, id, func(p *domain.Post) (bool, error) {
		applied = p.Like(userID)
		return applied, nil
	})
	if err != nil {
		return nil, false, err
	}
	return p.Likes, applied, nil
}

// Unlike reports false when userID had not liked the post.
func (s *PostService) Unlike(ctx context.Context, userID, id string) (bool, error) {
	var removed bool
	_, err := s.mutate(ctx, id, func(p *domain.Post) (bool, error) {
		removed = p.Unlike(userID)
		return removed, nil
	})
	return removed, err
}

func (s *PostService) AddComment(ctx context.Context, userID, id, text string) ([]domain.Comment, error) {
	if err := domain.ValidateText(text, "Comment is required"); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrPostNotFound
	}
	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	c := domain.NewComment(uuid.NewString(), author, text, s.now().UTC())
	p, err := s.mutate(ctx, id, func(p *domain.Post) (bool, error) {
		p.AddComment(c)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return p.Comments, nil
}

func (s *PostService) RemoveComment(ctx context.Context, userID, id, commentID string) ([]domain.Comment, error) {
	p, err := s.mutate(ctx, id, func(p *domain.Post) (bool, error) {
		if err := p.RemoveComment(commentID, userID); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return p.Comments, nil
}

func (s *PostService) mutate(ctx context.Context, id string, fn func(*domain.Post) (bool, error)) (*domain.Post, error) {
	var out *domain.Post
	err := withRetry(ctx, "post", func() error {
		p, err := s.Get(ctx, id)
		if err != nil {
			return err
		}
		changed, err := fn(p)
		if err != nil {
			return err
		}
		if changed {
			if err := s.posts.Update(ctx, p); err != nil {
				return err
			}
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
