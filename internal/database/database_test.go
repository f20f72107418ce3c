package database

import (
	"testing"

	"blog-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInMemory_CreatesSchema(t *testing.T) {
	db, err := OpenInMemory(t.Name())
	require.NoError(t, err)

	for _, model := range []interface{}{
		&models.User{},
		&models.Post{},
		&models.Category{},
		&models.PostCategory{},
		&models.AuditLog{},
		&models.RevokedToken{},
	} {
		assert.True(t, db.Migrator().HasTable(model), "missing table for %T", model)
	}
}

func TestOpenInMemory_DatabasesAreIsolated(t *testing.T) {
	first, err := OpenInMemory(t.Name() + "_first")
	require.NoError(t, err)
	second, err := OpenInMemory(t.Name() + "_second")
	require.NoError(t, err)

	require.NoError(t, first.Create(&models.Category{Title: "go"}).Error)

	var count int64
	require.NoError(t, second.Model(&models.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}
