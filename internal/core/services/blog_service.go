package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
	"github.com/vncsmyrnk/blog/internal/logger"
)

type BlogService struct {
	repo   ports.BlogRepository
	logger *logger.Logger
}

func NewBlogService(repo ports.BlogRepository, logger *logger.Logger) ports.BlogService {
	return &BlogService{
		repo:   repo,
		logger: logger,
	}
}

func (s *BlogService) Create(ctx context.Context, input ports.CreateBlogInput) (*domain.Blog, error) {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&input.Body, validation.Required),
	)
	if err != nil {
		return nil, domain.NewValidationError(err)
	}

	published := true
	if input.Published != nil {
		published = *input.Published
	}

	blog := &domain.Blog{
		ID:        uuid.New(),
		Title:     input.Title,
		Body:      input.Body,
		Published: published,
		OwnerID:   input.OwnerID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		s.logger.Error("Blog service: failed to create blog", "error", err.Error())
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	s.logger.Debug("Blog service: blog created", "blog_id", blog.ID)
	return blog, nil
}

func (s *BlogService) Get(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBlogNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return blog, nil
}

func (s *BlogService) List(ctx context.Context, input ports.ListBlogsInput) ([]*domain.Blog, error) {
	offset, err := pageOffset(input.Limit, input.Start)
	if err != nil {
		return nil, err
	}

	blogs, err := s.repo.List(ctx, ports.BlogFilter{
		Published: input.Published,
		Limit:     input.Limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrBlogNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	s.logger.Info("Blog service: blog deleted", "blog_id", id)
	return nil
}
