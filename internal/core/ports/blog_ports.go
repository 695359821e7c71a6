package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
)

type BlogFilter struct {
	Published bool
	Limit     int
	Offset    int
}

// BlogRepository persists blogs. GetByID and Delete return
// domain.ErrBlogNotFound for unknown ids. List returns blogs in insertion order.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	List(ctx context.Context, filter BlogFilter) ([]*domain.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateBlogInput struct {
	Title     string
	Body      string
	Published *bool
	OwnerID   *uuid.UUID
}

type ListBlogsInput struct {
	Limit     int
	Start     int
	Published bool
}

type BlogService interface {
	Create(ctx context.Context, input CreateBlogInput) (*domain.Blog, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	List(ctx context.Context, input ListBlogsInput) ([]*domain.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
