package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/obaro89/afridev-backend/internal/domain"
)

// PostRepo stores each post with its likes and comments as one JSONB document.
type PostRepo struct{ DB *sql.DB }

func (r *PostRepo) Create(ctx context.Context, p *domain.Post) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal post: %w", err)
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO posts (id, user_id, data, version, created_at) VALUES ($1,$2,$3,1,$4)`,
		p.ID, p.User, doc, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	p.Version = 1
	return nil
}

func (r *PostRepo) Get(ctx context.Context, id string) (*domain.Post, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT data, version FROM posts WHERE id=$1`, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return p, nil
}

// List returns every post, newest first.
func (r *PostRepo) List(ctx context.Context) ([]*domain.Post, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT data, version FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []*domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Update writes p only if the stored version still equals p.Version.
func (r *PostRepo) Update(ctx context.Context, p *domain.Post) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal post: %w", err)
	}
	res, err := r.DB.ExecContext(ctx,
		`UPDATE posts SET data=$2, version=version+1, updated_at=NOW() WHERE id=$1 AND version=$3`,
		p.ID, doc, p.Version)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if err := expectOneRow(res); err != nil {
		return err
	}
	p.Version++
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var (
		doc     []byte
		version int64
	)
	if err := row.Scan(&doc, &version); err != nil {
		return nil, err
	}
	p := &domain.Post{}
	if err := json.Unmarshal(doc, p); err != nil {
		return nil, err
	}
	p.Version = version
	return p, nil
}
