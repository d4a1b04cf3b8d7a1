package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/internal/domain/article"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
)

func TestArticleRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, logger.NewLogger())
	ctx := context.Background()

	author := createTestUser(t, db, "Alice", "alice@example.com")

	t.Run("create assigns id and round-trips", func(t *testing.T) {
		a := createTestArticle(t, db, "First Article", false, true, nil, author.ID())
		assert.NotZero(t, a.ID())

		found, err := repo.FindByID(ctx, a.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "First Article", found.Title())
		assert.Equal(t, "first-article", found.Slug())
		assert.Equal(t, "Alice", found.AuthorName())
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		a2, err := article.NewArticle("First Article", "", nil, "<p>other</p>", false, true, nil, author.ID())
		require.NoError(t, err)
		err = repo.Create(ctx, a2)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("find by slug", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "first-article")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "First Article", found.Title())
	})

	t.Run("missing article returns nil without error", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repo.FindBySlug(ctx, "no-such-slug")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestArticleRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, logger.NewLogger())
	ctx := context.Background()

	author := createTestUser(t, db, "Alice", "alice@example.com")
	a := createTestArticle(t, db, "Draft Piece", false, true, nil, author.ID())

	t.Run("unpublishing persists the false flag", func(t *testing.T) {
		require.NoError(t, a.Update(a.Title(), a.Slug(), nil, a.Content(), false, false, nil))
		require.NoError(t, repo.Update(ctx, a))

		found, err := repo.FindByID(ctx, a.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.False(t, found.IsPublished())
		// The original publish date survives unpublishing.
		assert.NotNil(t, found.PublishedAt())
	})

	t.Run("updating a missing article reports not found", func(t *testing.T) {
		ghost, err := article.ReconstructArticle(
			4242, "Ghost", "ghost", nil, "<p>x</p>",
			false, false, nil, author.ID(), "", nil,
			time.Now().UTC(), time.Now().UTC(),
		)
		require.NoError(t, err)
		err = repo.Update(ctx, ghost)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestArticleRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, logger.NewLogger())
	tagRepo := NewTagRepository(db, logger.NewLogger())
	ctx := context.Background()

	author := createTestUser(t, db, "Alice", "alice@example.com")

	t.Run("delete removes the article but not its tags", func(t *testing.T) {
		tag, err := article.NewTag("golang", "")
		require.NoError(t, err)
		require.NoError(t, tagRepo.Create(ctx, tag))

		a := createTestArticle(t, db, "Tagged Piece", false, true, nil, author.ID())
		require.NoError(t, repo.SyncTags(ctx, a.ID(), []uint{tag.ID()}))

		require.NoError(t, repo.Delete(ctx, a.ID()))

		found, err := repo.FindByID(ctx, a.ID())
		require.NoError(t, err)
		assert.Nil(t, found)

		stillThere, err := tagRepo.GetByID(ctx, tag.ID())
		require.NoError(t, err)
		assert.NotNil(t, stillThere)
	})

	t.Run("deleting a missing article reports not found", func(t *testing.T) {
		err := repo.Delete(ctx, 9999)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestArticleRepository_ListPublished(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, logger.NewLogger())
	ctx := context.Background()

	author := createTestUser(t, db, "Alice", "alice@example.com")

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	older := base.Add(-24 * time.Hour)

	// Two articles share a publish date so the id tie-break is observable.
	first := createTestArticle(t, db, "Oldest", false, true, &older, author.ID())
	second := createTestArticle(t, db, "Newer A", false, true, &base, author.ID())
	third := createTestArticle(t, db, "Newer B", false, true, &base, author.ID())
	createTestArticle(t, db, "Hidden Draft", false, false, nil, author.ID())

	t.Run("orders by publish date descending then id ascending", func(t *testing.T) {
		list, total, err := repo.ListPublished(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, list, 3)

		assert.Equal(t, second.ID(), list[0].ID())
		assert.Equal(t, third.ID(), list[1].ID())
		assert.Equal(t, first.ID(), list[2].ID())
	})

	t.Run("drafts are excluded", func(t *testing.T) {
		list, _, err := repo.ListPublished(ctx, 1, 10)
		require.NoError(t, err)
		for _, a := range list {
			assert.True(t, a.IsPublished())
		}
	})

	t.Run("pagination slices the same ordering", func(t *testing.T) {
		page1, total, err := repo.ListPublished(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, page1, 2)

		page2, _, err := repo.ListPublished(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page2, 1)
		assert.Equal(t, first.ID(), page2[0].ID())
	})
}

func TestArticleRepository_SyncTags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, logger.NewLogger())
	tagRepo := NewTagRepository(db, logger.NewLogger())
	ctx := context.Background()

	author := createTestUser(t, db, "Alice", "alice@example.com")
	a := createTestArticle(t, db, "Tag Sync", false, true, nil, author.ID())

	makeTag := func(name string) uint {
		tag, err := article.NewTag(name, "")
		require.NoError(t, err)
		require.NoError(t, tagRepo.Create(ctx, tag))
		return tag.ID()
	}
	goID := makeTag("go")
	webID := makeTag("web")
	dbID := makeTag("databases")

	tagNames := func(t *testing.T) []string {
		found, err := repo.FindByID(ctx, a.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		names := make([]string, 0, len(found.Tags()))
		for _, tag := range found.Tags() {
			names = append(names, tag.Name())
		}
		return names
	}

	t.Run("attach a set", func(t *testing.T) {
		require.NoError(t, repo.SyncTags(ctx, a.ID(), []uint{goID, webID}))
		assert.ElementsMatch(t, []string{"go", "web"}, tagNames(t))
	})

	t.Run("re-syncing the same set is a no-op", func(t *testing.T) {
		require.NoError(t, repo.SyncTags(ctx, a.ID(), []uint{goID, webID}))
		assert.ElementsMatch(t, []string{"go", "web"}, tagNames(t))
	})

	t.Run("replace the set", func(t *testing.T) {
		require.NoError(t, repo.SyncTags(ctx, a.ID(), []uint{dbID}))
		assert.ElementsMatch(t, []string{"databases"}, tagNames(t))
	})

	t.Run("empty set detaches everything", func(t *testing.T) {
		require.NoError(t, repo.SyncTags(ctx, a.ID(), nil))
		assert.Empty(t, tagNames(t))
	})

	t.Run("missing article reports not found", func(t *testing.T) {
		err := repo.SyncTags(ctx, 9999, []uint{goID})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestArticleRepository_Counts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db, logger.NewLogger())
	ctx := context.Background()

	author := createTestUser(t, db, "Alice", "alice@example.com")
	createTestArticle(t, db, "Free Published", false, true, nil, author.ID())
	createTestArticle(t, db, "Premium Published", true, true, nil, author.ID())
	createTestArticle(t, db, "Premium Draft", true, false, nil, author.ID())

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	published, err := repo.CountPublished(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), published)

	premium, err := repo.CountPremium(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), premium)
}
