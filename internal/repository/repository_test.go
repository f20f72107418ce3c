package repository

import (
	"context"
	"testing"

	"blog-backend/internal/database"
	"blog-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenInMemory(uuid.NewString())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, PasswordHash: "hash"}
	require.NoError(t, NewUserRepo(db).CreateUser(context.Background(), user))
	return user
}

func createCategory(t *testing.T, db *gorm.DB, title string) *models.Category {
	t.Helper()

	category := &models.Category{Title: title}
	require.NoError(t, NewCategoryRepo(db).CreateCategory(context.Background(), category))
	return category
}
