package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/obaro89/afridev-backend/internal/domain"
)

// ProfileService owns the profile aggregate and its experience and education
// entries. Every write goes through a versioned read-modify-write.
type ProfileService struct {
	profiles ProfileStore
	users    UserStore
	now      func() time.Time
}

func NewProfileService(profiles ProfileStore, users UserStore) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, now: time.Now}
}

// Upsert creates the caller's profile or merges f into the existing one.
func (s *ProfileService) Upsert(ctx context.Context, userID string, f domain.ProfileFields) (*domain.Profile, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var out *domain.Profile
	err := withRetry(ctx, "profile", func() error {
		p, err := s.profiles.Get(ctx, userID)
		if errors.Is(err, domain.ErrProfileNotFound) {
			p = domain.NewProfile(uuid.NewString(), userID, f, s.now().UTC())
			if err := s.profiles.Create(ctx, p); err != nil {
				return err
			}
			out = p
			return nil
		}
		if err != nil {
			return err
		}
		p.Apply(f)
		if err := s.profiles.Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProfileService) GetMine(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.Get(ctx, userID)
}

func (s *ProfileService) List(ctx context.Context) ([]*domain.Profile, error) {
	return s.profiles.List(ctx)
}

// GetByUser is the public lookup; malformed and unknown ids look the same.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrProfileMissing
	}
	p, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil, domain.ErrProfileMissing
	}
	return p, err
}

func (s *ProfileService) AddExperience(ctx context.Context, userID string, in domain.ExperienceInput) (*domain.Profile, error) {
	e, err := in.Build(uuid.NewString())
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, func(p *domain.Profile) (bool, error) {
		p.AddExperience(e)
		return true, nil
	})
}

func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID string) (*domain.Profile, error) {
	return s.mutate(ctx, userID, func(p *domain.Profile) (bool, error) {
		if err := p.RemoveExperience(expID); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (s *ProfileService) AddEducation(ctx context.Context, userID string, in domain.EducationInput) (*domain.Profile, error) {
	e, err := in.Build(uuid.NewString())
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, func(p *domain.Profile) (bool, error) {
		p.AddEducation(e)
		return true, nil
	})
}

// RemoveEducation returns the profile unchanged when eduID is unknown.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID string) (*domain.Profile, error) {
	return s.mutate(ctx, userID, func(p *domain.Profile) (bool, error) {
		return p.RemoveEducation(eduID), nil
	})
}

// Delete removes the caller's profile and user record. Posts are kept.
func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	return s.users.DeleteAccount(ctx, userID)
}

// mutate applies fn to a fresh copy of the caller's profile and persists it
// when fn reports a change.
func (s *ProfileService) mutate(ctx context.Context, userID string, fn func(*domain.Profile) (bool, error)) (*domain.Profile, error) {
	var out *domain.Profile
	err := withRetry(ctx, "profile", func() error {
		p, err := s.profiles.Get(ctx, userID)
		if err != nil {
			return err
		}
		changed, err := fn(p)
		if err != nil {
			return err
		}
		if changed {
			if err := s.profiles.Update(ctx, p); err != nil {
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
