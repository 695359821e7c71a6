package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

const userColumns = `id, username, email, full_name, password_hash, is_active, gender, role, created_at`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) ports.UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user inside a transaction. Unique violations raised by
// the database are rolled back and translated to conflicts.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (id, username, email, full_name, password_hash, is_active, gender, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, query,
		user.ID, user.Username, user.Email, user.FullName, user.PasswordHash,
		user.IsActive, string(user.Gender), string(user.Role), user.CreatedAt,
	).Scan(&user.CreatedAt)
	if err != nil {
		return translateUserError(err)
	}

	if err := tx.Commit(); err != nil {
		return translateUserError(err)
	}

	return nil
}

func translateUserError(err error) error {
	pqErr, ok := asPQError(err)
	if !ok || pqErr.Code != codeUniqueViolation {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	switch pqErr.Constraint {
	case usernameConstraint:
		return domain.ErrUsernameTaken
	case emailConstraint:
		return domain.ErrEmailTaken
	default:
		return fmt.Errorf("%w: %s", domain.ErrConflict, pqErr.Constraint)
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY seq LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// Delete removes the user. Owned blogs go with it through ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*domain.User, error) {
	var (
		user   domain.User
		gender string
		role   string
	)
	err := s.Scan(
		&user.ID, &user.Username, &user.Email, &user.FullName, &user.PasswordHash,
		&user.IsActive, &gender, &role, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Gender = domain.Gender(gender)
	user.Role = domain.Role(role)
	return &user, nil
}
