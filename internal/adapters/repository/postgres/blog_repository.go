package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

const blogColumns = `id, title, body, published, owner_id, created_at`

type BlogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) ports.BlogRepository {
	return &BlogRepository{
		db: db,
	}
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	query := `
		INSERT INTO blogs (id, title, body, published, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	owner := uuid.NullUUID{}
	if blog.OwnerID != nil {
		owner = uuid.NullUUID{UUID: *blog.OwnerID, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		blog.ID, blog.Title, blog.Body, blog.Published, owner, blog.CreatedAt,
	).Scan(&blog.CreatedAt)
	if err != nil {
		if pqErr, ok := asPQError(err); ok && pqErr.Code == codeForeignKeyViolation {
			return fmt.Errorf("%w: owner %s does not exist", domain.ErrValidation, owner.UUID)
		}
		return fmt.Errorf("failed to insert blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return blog, nil
}

func (r *BlogRepository) List(ctx context.Context, filter ports.BlogFilter) ([]*domain.Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE published = $1
		ORDER BY seq
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, filter.Published, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	var blogs []*domain.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blogs: %w", err)
	}
	return blogs, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

func scanBlog(s scanner) (*domain.Blog, error) {
	var (
		blog  domain.Blog
		owner uuid.NullUUID
	)
	if err := s.Scan(&blog.ID, &blog.Title, &blog.Body, &blog.Published, &owner, &blog.CreatedAt); err != nil {
		return nil, err
	}
	if owner.Valid {
		blog.OwnerID = &owner.UUID
	}
	return &blog, nil
}
