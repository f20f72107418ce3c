package repository

import (
	"context"
	"sync"
	"testing"

	"blog-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_CreateLinksCategories(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	golang := createCategory(t, db, "go")
	rust := createCategory(t, db, "rust")

	content := "hello"
	post := &models.Post{Title: "first", Content: &content, AuthorID: alice.ID}
	require.NoError(t, repo.CreatePostWithCategories(ctx, post, []uint{golang.ID, rust.ID}))
	assert.NotZero(t, post.ID)

	ids, err := repo.GetCategoryIDs(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{golang.ID, rust.ID}, ids)

	found, err := repo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", found.Title)
	require.NotNil(t, found.Content)
	assert.Equal(t, "hello", *found.Content)
	require.Len(t, found.Categories, 2)
	assert.Equal(t, "go", found.Categories[0].Title)
	assert.Equal(t, "rust", found.Categories[1].Title)
}

func TestPostRepository_CreateDeduplicatesCategoryIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	golang := createCategory(t, db, "go")
	rust := createCategory(t, db, "rust")

	post := &models.Post{Title: "dupes", AuthorID: alice.ID}
	require.NoError(t, repo.CreatePostWithCategories(ctx, post, []uint{rust.ID, golang.ID, rust.ID, golang.ID}))

	ids, err := repo.GetCategoryIDs(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{golang.ID, rust.ID}, ids)
}

func TestPostRepository_CreateWithoutCategories(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")

	post := &models.Post{Title: "bare", AuthorID: alice.ID}
	require.NoError(t, repo.CreatePostWithCategories(ctx, post, nil))

	found, err := repo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Content)
	assert.Empty(t, found.Categories)
}

func TestPostRepository_CreateAcceptsUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")

	post := &models.Post{Title: "dangling", AuthorID: alice.ID}
	require.NoError(t, repo.CreatePostWithCategories(ctx, post, []uint{999}))

	ids, err := repo.GetCategoryIDs(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{999}, ids)

	found, err := repo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Categories, "links to missing categories are not resolved")
}

func TestPostRepository_CreateRollsBackOnLinkFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	golang := createCategory(t, db, "go")

	require.NoError(t, db.Migrator().DropTable(&models.PostCategory{}))

	post := &models.Post{Title: "doomed", AuthorID: alice.ID}
	err := repo.CreatePostWithCategories(ctx, post, []uint{golang.ID})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count, "post insert must be rolled back with its links")
}

func TestPostRepository_ConcurrentCreates(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	golang := createCategory(t, db, "go")
	rust := createCategory(t, db, "rust")

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			post := &models.Post{Title: "parallel", AuthorID: alice.ID}
			errs <- repo.CreatePostWithCategories(ctx, post, []uint{golang.ID, rust.ID, golang.ID})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	posts, err := repo.GetAllPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, n)
	for _, post := range posts {
		assert.Len(t, post.Categories, 2)
	}
}

func TestPostRepository_UpdatePost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	content := "draft"
	post := &models.Post{Title: "old", Content: &content, AuthorID: alice.ID}
	require.NoError(t, repo.CreatePostWithCategories(ctx, post, nil))

	updated, err := repo.UpdatePost(ctx, post.ID, "new", nil)
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)

	found, err := repo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", found.Title)
	assert.Nil(t, found.Content)

	_, err = repo.UpdatePost(ctx, 999, "x", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepository_DeletePost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	golang := createCategory(t, db, "go")
	post := &models.Post{Title: "bye", AuthorID: alice.ID}
	require.NoError(t, repo.CreatePostWithCategories(ctx, post, []uint{golang.ID}))

	require.NoError(t, repo.DeletePost(ctx, post.ID))

	_, err := repo.GetPostByID(ctx, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	ids, err := repo.GetCategoryIDs(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.ErrorIs(t, repo.DeletePost(ctx, post.ID), ErrNotFound)
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, uniqueIDs([]uint{3, 1, 3, 2, 1}))
	assert.Empty(t, uniqueIDs(nil))
}
