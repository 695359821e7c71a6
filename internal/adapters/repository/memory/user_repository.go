package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) ports.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Username conflicts take precedence over email conflicts.
	for _, u := range r.store.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	for _, u := range r.store.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	r.store.users = append(r.store.users, copyUser(user))
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.ID == id })
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Username == username })
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email == email })
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	page := paginate(r.store.users, limit, offset)
	users := make([]*domain.User, 0, len(page))
	for _, u := range page {
		users = append(users, copyUser(u))
	}
	return users, nil
}

// Delete removes the user and every blog it owns.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.store.userIndex(id)
	if i < 0 {
		return domain.ErrUserNotFound
	}
	r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)

	kept := r.store.blogs[:0]
	for _, b := range r.store.blogs {
		if b.OwnerID != nil && *b.OwnerID == id {
			continue
		}
		kept = append(kept, b)
	}
	r.store.blogs = kept
	return nil
}

func (r *UserRepository) find(match func(*domain.User) bool) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if match(u) {
			return copyUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}
