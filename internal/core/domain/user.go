package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	Gender       Gender    `json:"gender,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is one of the known genders. The zero value is
// accepted since gender is optional.
func (g Gender) Valid() bool {
	switch g {
	case "", GenderMale, GenderFemale:
		return true
	}
	return false
}

func (g Gender) Validate() error {
	if !g.Valid() {
		return errors.New("must be male or female")
	}
	return nil
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Validate lets ozzo-validation check roles as part of a struct.
func (r Role) Validate() error {
	if !r.Valid() {
		return errors.New("must be admin or user")
	}
	return nil
}

// Token is the result of a successful login. It is never persisted.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

const TokenTypeBearer = "bearer"
