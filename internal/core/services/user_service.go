package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
	"github.com/vncsmyrnk/blog/internal/logger"
)

type UserService struct {
	repo   ports.UserRepository
	logger *logger.Logger
}

func NewUserService(repo ports.UserRepository, logger *logger.Logger) ports.UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, input ports.ListUsersInput) ([]*domain.User, error) {
	offset, err := pageOffset(input.Limit, input.Start)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.List(ctx, input.Limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes a user; the storage layer cascades to the user's blogs.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		s.logger.Error("User service: failed to delete user", "user_id", id, "error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted", "user_id", id)
	return nil
}
