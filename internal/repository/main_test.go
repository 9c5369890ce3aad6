package repository

import (
	"testing"

	"pulse/internal/database"
	"pulse/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, userID uint, content string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:     userID,
		Content:    content,
		Visibility: models.VisibilityPublic,
		IsActive:   true,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
