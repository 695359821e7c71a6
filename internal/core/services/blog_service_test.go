package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/blog/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
	"github.com/vncsmyrnk/blog/internal/testutil"
)

func newBlogService() ports.BlogService {
	return NewBlogService(memory.NewBlogRepository(memory.NewStore()), testutil.MakeNoopLogger())
}

func TestBlogService_Create(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()

	blog, err := svc.Create(ctx, ports.CreateBlogInput{Title: "Hello", Body: "World"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, blog.ID)
	assert.True(t, blog.Published, "published defaults to true")
	assert.Nil(t, blog.OwnerID)

	draft := false
	blog, err = svc.Create(ctx, ports.CreateBlogInput{Title: "Draft", Body: "WIP", Published: &draft})
	require.NoError(t, err)
	assert.False(t, blog.Published)
}

func TestBlogService_Create_Validation(t *testing.T) {
	svc := newBlogService()

	_, err := svc.Create(context.Background(), ports.CreateBlogInput{Body: "no title"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), ports.CreateBlogInput{Title: "no body"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBlogService_List(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()
	draft := false

	for i := 0; i < 12; i++ {
		_, err := svc.Create(ctx, ports.CreateBlogInput{Title: fmt.Sprintf("post %02d", i), Body: "b"})
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, ports.CreateBlogInput{Title: fmt.Sprintf("draft %d", i), Body: "b", Published: &draft})
		require.NoError(t, err)
	}

	blogs, err := svc.List(ctx, ports.ListBlogsInput{Limit: 10, Start: 1, Published: true})
	require.NoError(t, err)
	require.Len(t, blogs, 10)
	for i, b := range blogs {
		assert.True(t, b.Published)
		assert.Equal(t, fmt.Sprintf("post %02d", i), b.Title)
	}

	blogs, err = svc.List(ctx, ports.ListBlogsInput{Limit: 10, Start: 11, Published: true})
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "post 10", blogs[0].Title)

	blogs, err = svc.List(ctx, ports.ListBlogsInput{Limit: 10, Start: 1, Published: false})
	require.NoError(t, err)
	assert.Len(t, blogs, 3)
}

func TestBlogService_List_Validation(t *testing.T) {
	svc := newBlogService()

	for _, in := range []ports.ListBlogsInput{
		{Limit: 0, Start: 1},
		{Limit: MaxLimit + 1, Start: 1},
		{Limit: 10, Start: 0},
		{Limit: 10, Start: -3},
	} {
		_, err := svc.List(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", in)
	}
}

func TestBlogService_GetAndDelete(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()

	blog, err := svc.Create(ctx, ports.CreateBlogInput{Title: "t", Body: "b"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, blog.Title, got.Title)

	require.NoError(t, svc.Delete(ctx, blog.ID))

	_, err = svc.Get(ctx, blog.ID)
	assert.ErrorIs(t, err, domain.ErrBlogNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New()), domain.ErrBlogNotFound)
}
