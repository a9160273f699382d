// Package memory is an in-process store used for local runs and tests. It
// honours the same version checks as the Postgres repositories.
package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/obaro89/afridev-backend/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	emails   map[string]string
	profiles map[string][]byte
	pversion map[string]int64
	posts    map[string][]byte
	order    []string
	aversion map[string]int64
}

func New() *Store {
	return &Store{
		users:    map[string]domain.User{},
		emails:   map[string]string{},
		profiles: map[string][]byte{},
		pversion: map[string]int64{},
		posts:    map[string][]byte{},
		aversion: map[string]int64{},
	}
}

func (s *Store) PingContext(context.Context) error { return nil }

// Users returns a view satisfying the user store contract.
func (s *Store) Users() *Users       { return &Users{s} }
func (s *Store) Profiles() *Profiles { return &Profiles{s} }
func (s *Store) Posts() *Posts       { return &Posts{s} }

type Users struct{ s *Store }

func (u *Users) Create(_ context.Context, usr *domain.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.emails[usr.Email]; ok {
		return domain.ErrEmailConflict
	}
	u.s.users[usr.ID] = *usr
	u.s.emails[usr.Email] = usr.ID
	return nil
}

func (u *Users) GetByID(_ context.Context, id string) (*domain.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	usr, ok := u.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &usr, nil
}

func (u *Users) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u.s.mu.RLock()
	id, ok := u.s.emails[email]
	u.s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.GetByID(ctx, id)
}

// DeleteAccount drops the user and their profile atomically. Posts stay.
func (u *Users) DeleteAccount(_ context.Context, id string) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if usr, ok := u.s.users[id]; ok {
		delete(u.s.emails, usr.Email)
		delete(u.s.users, id)
	}
	delete(u.s.profiles, id)
	delete(u.s.pversion, id)
	return nil
}

type Profiles struct{ s *Store }

func (p *Profiles) Get(_ context.Context, userID string) (*domain.Profile, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	doc, ok := p.s.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p.decode(userID, doc)
}

// List returns profiles in creation order.
func (p *Profiles) List(_ context.Context) ([]*domain.Profile, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	out := make([]*domain.Profile, 0, len(p.s.profiles))
	for userID, doc := range p.s.profiles {
		prof, err := p.decode(userID, doc)
		if err != nil {
			return nil, err
		}
		out = append(out, prof)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (p *Profiles) Create(_ context.Context, prof *domain.Profile) error {
	doc, err := json.Marshal(prof)
	if err != nil {
		return err
	}
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.profiles[prof.User.ID]; ok {
		return domain.ErrVersionConflict
	}
	p.s.profiles[prof.User.ID] = doc
	p.s.pversion[prof.User.ID] = 1
	prof.Version = 1
	return nil
}

func (p *Profiles) Update(_ context.Context, prof *domain.Profile) error {
	doc, err := json.Marshal(prof)
	if err != nil {
		return err
	}
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	cur, ok := p.s.pversion[prof.User.ID]
	if !ok || cur != prof.Version {
		return domain.ErrVersionConflict
	}
	p.s.profiles[prof.User.ID] = doc
	p.s.pversion[prof.User.ID] = cur + 1
	prof.Version = cur + 1
	return nil
}

// decode must be called with the lock held.
func (p *Profiles) decode(userID string, doc []byte) (*domain.Profile, error) {
	prof := &domain.Profile{}
	if err := json.Unmarshal(doc, prof); err != nil {
		return nil, err
	}
	prof.Version = p.s.pversion[userID]
	prof.User.Name, prof.User.Avatar = "", ""
	if usr, ok := p.s.users[userID]; ok {
		prof.User.Name = usr.Name
		prof.User.Avatar = usr.Avatar
	}
	return prof, nil
}

type Posts struct{ s *Store }

func (p *Posts) Create(_ context.Context, post *domain.Post) error {
	doc, err := json.Marshal(post)
	if err != nil {
		return err
	}
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.s.posts[post.ID] = doc
	p.s.aversion[post.ID] = 1
	p.s.order = append(p.s.order, post.ID)
	post.Version = 1
	return nil
}

func (p *Posts) Get(_ context.Context, id string) (*domain.Post, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	return p.decode(id)
}

// List returns posts newest first.
func (p *Posts) List(_ context.Context) ([]*domain.Post, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	out := make([]*domain.Post, 0, len(p.s.order))
	for i := len(p.s.order) - 1; i >= 0; i-- {
		post, err := p.decode(p.s.order[i])
		if err != nil {
			return nil, err
		}
		out = append(out, post)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (p *Posts) Update(_ context.Context, post *domain.Post) error {
	doc, err := json.Marshal(post)
	if err != nil {
		return err
	}
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	cur, ok := p.s.aversion[post.ID]
	if !ok || cur != post.Version {
		return domain.ErrVersionConflict
	}
	p.s.posts[post.ID] = doc
	p.s.aversion[post.ID] = cur + 1
	post.Version = cur + 1
	return nil
}

func (p *Posts) Delete(_ context.Context, id string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(p.s.posts, id)
	delete(p.s.aversion, id)
	for i, pid := range p.s.order {
		if pid == id {
			p.s.order = append(p.s.order[:i], p.s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (p *Posts) decode(id string) (*domain.Post, error) {
	doc, ok := p.s.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	post := &domain.Post{}
	if err := json.Unmarshal(doc, post); err != nil {
		return nil, err
	}
	post.Version = p.s.aversion[id]
	return post, nil
}
