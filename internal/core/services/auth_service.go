package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
	"github.com/vncsmyrnk/blog/internal/logger"
)

const (
	minPasswordBytes = 8
	// bcrypt only looks at the first 72 bytes.
	maxPasswordBytes = 72
)

type AuthService struct {
	userRepo ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	tokenTTL time.Duration
	logger   *logger.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(
	userRepo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	tokenTTL time.Duration,
	logger *logger.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

func validateSignup(input ports.SignupInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&input.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&input.FullName, validation.Length(0, 200)),
		validation.Field(&input.Password, validation.Required, validation.Length(minPasswordBytes, maxPasswordBytes)),
		validation.Field(&input.Gender),
		validation.Field(&input.Role),
	)
	if err != nil {
		return domain.NewValidationError(err)
	}
	return nil
}

// Signup registers a new user. The username and email pre-checks give early
// feedback, but the repository's unique constraints remain the final word:
// a violation at insert time is reported as the same conflict.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	s.logger.Debug("Auth service: starting signup", "username", input.Username)

	if input.Role == "" {
		input.Role = domain.RoleUser
	}
	if err := validateSignup(input); err != nil {
		return nil, err
	}

	if err := s.ensureAvailable(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("Auth service: failed to hash password", "username", input.Username, "error", err.Error())
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hash,
		IsActive:     true,
		Gender:       input.Gender,
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.logger.Info("Auth service: signup lost uniqueness race", "username", input.Username, "error", err.Error())
			return nil, err
		}
		s.logger.Error("Auth service: failed to create user", "username", input.Username, "error", err.Error())
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Auth service: user signed up", "username", user.Username, "user_id", user.ID)
	return user, nil
}

func (s *AuthService) ensureAvailable(ctx context.Context, username, email string) error {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return domain.ErrUsernameTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("failed to get user by username: %w", err)
	}

	_, err = s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	return nil
}

// Login checks credentials and issues a bearer token. Unknown usernames and
// wrong passwords produce the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.verifyDummy(password)
			s.logger.Info("Auth service: login rejected", "username", username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Info("Auth service: login rejected", "username", username)
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Info("Auth service: login for inactive user", "user_id", user.ID)
		return nil, domain.ErrInactiveUser
	}

	accessToken, expiresAt, err := s.tokens.Issue(user.ID.String(), s.tokenTTL)
	if err != nil {
		s.logger.Error("Auth service: failed to issue token", "user_id", user.ID, "error", err.Error())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("Auth service: user logged in", "user_id", user.ID)
	return &domain.Token{
		AccessToken: accessToken,
		TokenType:   domain.TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// verifyDummy compares password against a throwaway hash so an unknown
// username costs the same hash comparison as a wrong password.
func (s *AuthService) verifyDummy(password string) {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(uuid.NewString())
		if err != nil {
			s.logger.Error("Auth service: failed to prepare dummy hash", "error", err.Error())
			return
		}
		s.dummyHash = hash
	})
	s.hasher.Verify(password, s.dummyHash)
}

// Authenticate resolves a bearer token to its active user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", domain.ErrInvalidToken)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: subject no longer exists", domain.ErrInvalidToken)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}

	return user, nil
}
