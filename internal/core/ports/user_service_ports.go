package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
)

type ListUsersInput struct {
	Limit int
	Start int
}

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, input ListUsersInput) ([]*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
