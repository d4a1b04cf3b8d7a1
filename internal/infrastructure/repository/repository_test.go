package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"inkpress/internal/domain/article"
	"inkpress/internal/domain/user"
	"inkpress/internal/infrastructure/persistence/models"
	"inkpress/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.TagModel{},
		&models.ArticleModel{},
		&models.SubscriptionModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(name, email, "$2a$12$hashhashhashhashhashha", false)
	require.NoError(t, err)

	repo := NewUserRepository(db, logger.NewLogger())
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func createTestArticle(t *testing.T, db *gorm.DB, title string, isPremium, isPublished bool, publishedAt *time.Time, authorID uint) *article.Article {
	t.Helper()
	a, err := article.NewArticle(title, "", nil, "<p>body</p>", isPremium, isPublished, publishedAt, authorID)
	require.NoError(t, err)

	repo := NewArticleRepository(db, logger.NewLogger())
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}
