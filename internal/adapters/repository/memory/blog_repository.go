package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

type BlogRepository struct {
	store *Store
}

func NewBlogRepository(store *Store) ports.BlogRepository {
	return &BlogRepository{store: store}
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if blog.OwnerID != nil && r.store.userIndex(*blog.OwnerID) < 0 {
		return fmt.Errorf("%w: owner %s does not exist", domain.ErrValidation, blog.OwnerID)
	}

	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now().UTC()
	}
	r.store.blogs = append(r.store.blogs, copyBlog(blog))
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := r.store.blogIndex(id)
	if i < 0 {
		return nil, domain.ErrBlogNotFound
	}
	return copyBlog(r.store.blogs[i]), nil
}

func (r *BlogRepository) List(ctx context.Context, filter ports.BlogFilter) ([]*domain.Blog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matched []*domain.Blog
	for _, b := range r.store.blogs {
		if b.Published == filter.Published {
			matched = append(matched, b)
		}
	}

	page := paginate(matched, filter.Limit, filter.Offset)
	blogs := make([]*domain.Blog, 0, len(page))
	for _, b := range page {
		blogs = append(blogs, copyBlog(b))
	}
	return blogs, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.store.blogIndex(id)
	if i < 0 {
		return domain.ErrBlogNotFound
	}
	r.store.blogs = append(r.store.blogs[:i], r.store.blogs[i+1:]...)
	return nil
}
