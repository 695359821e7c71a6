package ports

import (
	"context"
	"time"

	"github.com/vncsmyrnk/blog/internal/core/domain"
)

// PasswordHasher turns plaintext passwords into salted hashes. Verify must
// return false, never panic, for malformed hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer signs and verifies time limited bearer tokens.
type TokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, time.Time, error)
	Verify(token string) (string, error)
}

type SignupInput struct {
	Username string
	Email    string
	FullName string
	Password string
	Gender   domain.Gender
	Role     domain.Role
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.Token, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
