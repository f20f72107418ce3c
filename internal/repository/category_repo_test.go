package repository

import (
	"context"
	"testing"

	"blog-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepo(db)
	ctx := context.Background()

	createCategory(t, db, "rust")
	createCategory(t, db, "go")

	err := repo.CreateCategory(ctx, &models.Category{Title: "go"})
	assert.ErrorIs(t, err, ErrDuplicate)

	categories, err := repo.GetAllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "go", categories[0].Title)
	assert.Equal(t, "rust", categories[1].Title)
}
