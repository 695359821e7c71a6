package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	user := &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash", IsActive: true}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)
	require.False(t, user.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_Uniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "alice", Email: "alice@example.com"}))

	err := repo.Create(ctx, &domain.User{Username: "alice", Email: "other@example.com"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = repo.Create(ctx, &domain.User{Username: "bob", Email: "alice@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserRepository_UsernameConflictReportedFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "carol", Email: "shared@example.com"}))
	require.NoError(t, repo.Create(ctx, &domain.User{Username: "dave", Email: "dave@example.com"}))

	err := repo.Create(ctx, &domain.User{Username: "dave", Email: "shared@example.com"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.NotErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserRepository_ConcurrentIdenticalCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Create(ctx, &domain.User{Username: "same", Email: "same@example.com"})
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrConflict)
	}
	assert.Equal(t, 1, succeeded)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	user := &domain.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, repo.Create(ctx, user))
	user.Username = "mutated"

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestUserRepository_DeleteCascadesBlogs(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	users := NewUserRepository(store)
	blogs := NewBlogRepository(store)

	owner := &domain.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, users.Create(ctx, owner))

	owned := &domain.Blog{Title: "owned", Body: "b", Published: true, OwnerID: &owner.ID}
	orphan := &domain.Blog{Title: "orphan", Body: "b", Published: true}
	require.NoError(t, blogs.Create(ctx, owned))
	require.NoError(t, blogs.Create(ctx, orphan))

	require.NoError(t, users.Delete(ctx, owner.ID))

	_, err := blogs.GetByID(ctx, owned.ID)
	assert.ErrorIs(t, err, domain.ErrBlogNotFound)
	_, err = blogs.GetByID(ctx, orphan.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, users.Delete(ctx, owner.ID), domain.ErrUserNotFound)
}

func TestBlogRepository_ListFiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository(NewStore())

	for i := 0; i < 15; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Blog{
			Title:     fmt.Sprintf("blog %d", i),
			Body:      "body",
			Published: i%3 != 0,
		}))
	}

	published, err := repo.List(ctx, ports.BlogFilter{Published: true, Limit: 100})
	require.NoError(t, err)
	require.Len(t, published, 10)
	assert.Equal(t, "blog 1", published[0].Title)
	assert.Equal(t, "blog 2", published[1].Title)
	assert.Equal(t, "blog 4", published[2].Title)

	page, err := repo.List(ctx, ports.BlogFilter{Published: true, Limit: 3, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "blog 4", page[0].Title)

	drafts, err := repo.List(ctx, ports.BlogFilter{Published: false, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, drafts, 5)

	beyond, err := repo.List(ctx, ports.BlogFilter{Published: true, Limit: 10, Offset: 50})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestBlogRepository_UnknownOwner(t *testing.T) {
	repo := NewBlogRepository(NewStore())
	owner := uuid.New()

	err := repo.Create(context.Background(), &domain.Blog{Title: "t", Body: "b", OwnerID: &owner})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBlogRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository(NewStore())

	blog := &domain.Blog{Title: "t", Body: "b", Published: true}
	require.NoError(t, repo.Create(ctx, blog))

	require.NoError(t, repo.Delete(ctx, blog.ID))
	_, err := repo.GetByID(ctx, blog.ID)
	assert.ErrorIs(t, err, domain.ErrBlogNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, blog.ID), domain.ErrBlogNotFound)
}
