package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/obaro89/afridev-backend/internal/domain"
)

// UserRepo persists credential records in the users table.
type UserRepo struct{ DB *sql.DB }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, avatar, created_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Avatar, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailConflict
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, name, email, password_hash, avatar, created_at FROM users WHERE id=$1`, id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, name, email, password_hash, avatar, created_at FROM users WHERE email=$1`, email)
}

func (r *UserRepo) getOne(ctx context.Context, query, arg string) (*domain.User, error) {
	u := &domain.User{}
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Avatar, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}

// DeleteAccount removes the user and their profile in one transaction.
// Posts are left in place.
func (r *UserRepo) DeleteAccount(ctx context.Context, id string) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE user_id=$1`, id); err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}
