package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
)

// UserRepository persists users. Lookups return domain.ErrUserNotFound when
// nothing matches. Create must report unique violations as
// domain.ErrUsernameTaken, domain.ErrEmailTaken or domain.ErrConflict.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
