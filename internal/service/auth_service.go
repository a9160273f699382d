package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/obaro89/afridev-backend/internal/config"
	"github.com/obaro89/afridev-backend/internal/domain"
	"github.com/obaro89/afridev-backend/internal/security"
)

// AuthService handles registration, login and the current-user lookup.
type AuthService struct {
	users  UserStore
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(users UserStore, cfg *config.Config) *AuthService {
	return &AuthService{users: users, secret: cfg.JWTSecret, ttl: cfg.TokenTTL, now: time.Now}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a user with a gravatar avatar and returns a signed token.
func (a *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	var c domain.Checker
	c.Required("name", in.Name, "Name is required")
	c.Email("email", in.Email, "Please enter a valid email")
	c.MinLen("password", in.Password, 6, "Password must not be less than 6 characters")
	c.MaxLen("password", in.Password, security.MaxPasswordBytes, "Password must not be more than 72 characters")
	if err := c.Err(); err != nil {
		return "", err
	}

	if _, err := a.users.GetByEmail(ctx, in.Email); err == nil {
		return "", domain.ErrEmailConflict
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return "", err
	}

	u := &domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Avatar:       security.GravatarURL(in.Email),
		CreatedAt:    a.now().UTC(),
	}
	if err := a.users.Create(ctx, u); err != nil {
		return "", err
	}
	return security.GenerateAccess(a.secret, u.ID, a.ttl)
}

// Login checks the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var c domain.Checker
	c.Email("email", email, "Please enter a valid email")
	c.Required("password", password, "Password is required")
	if err := c.Err(); err != nil {
		return "", err
	}

	u, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if err := security.ComparePassword(u.PasswordHash, password); err != nil {
		if errors.Is(err, security.ErrPasswordMismatch) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	return security.GenerateAccess(a.secret, u.ID, a.ttl)
}

func (a *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return a.users.GetByID(ctx, userID)
}
