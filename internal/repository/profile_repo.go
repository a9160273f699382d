package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/obaro89/afridev-backend/internal/domain"
)

// ProfileRepo stores each profile aggregate as one JSONB document guarded by
// a version counter.
type ProfileRepo struct{ DB *sql.DB }

const profileSelect = `
	SELECT p.data, p.version, COALESCE(u.name, ''), COALESCE(u.avatar, '')
	FROM profiles p
	LEFT JOIN users u ON u.id = p.user_id`

func (r *ProfileRepo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	row := r.DB.QueryRowContext(ctx, profileSelect+` WHERE p.user_id=$1`, userID)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepo) List(ctx context.Context) ([]*domain.Profile, error) {
	rows, err := r.DB.QueryContext(ctx, profileSelect+` ORDER BY p.created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Create inserts a new profile. A concurrent insert for the same user is
// reported as domain.ErrVersionConflict so the caller re-reads and updates.
func (r *ProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO profiles (id, user_id, data, version, created_at) VALUES ($1,$2,$3,1,$4)`,
		p.ID, p.User.ID, doc, p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrVersionConflict
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	p.Version = 1
	return nil
}

// Update writes p only if the stored version still equals p.Version.
func (r *ProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	res, err := r.DB.ExecContext(ctx,
		`UPDATE profiles SET data=$2, version=version+1, updated_at=NOW() WHERE user_id=$1 AND version=$3`,
		p.User.ID, doc, p.Version)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if err := expectOneRow(res); err != nil {
		return err
	}
	p.Version++
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var (
		doc          []byte
		version      int64
		name, avatar string
	)
	if err := row.Scan(&doc, &version, &name, &avatar); err != nil {
		return nil, err
	}
	p := &domain.Profile{}
	if err := json.Unmarshal(doc, p); err != nil {
		return nil, err
	}
	p.Version = version
	p.User.Name = name
	p.User.Avatar = avatar
	return p, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrVersionConflict
	}
	return nil
}
