// Package memory provides map backed repositories that honour the same
// contracts as the postgres adapters: unique usernames and emails, insertion
// ordered listings and cascading deletes of a user's blogs.
package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
)

// Store holds the data shared by the user and blog repositories.
type Store struct {
	mu    sync.RWMutex
	users []*domain.User
	blogs []*domain.Blog
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) userIndex(id uuid.UUID) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) blogIndex(id uuid.UUID) int {
	for i, b := range s.blogs {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func copyBlog(b *domain.Blog) *domain.Blog {
	c := *b
	if b.OwnerID != nil {
		owner := *b.OwnerID
		c.OwnerID = &owner
	}
	return &c
}
