package usecases

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/internal/domain/access"
	"inkpress/internal/domain/article"
	"inkpress/internal/domain/subscription"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
	"inkpress/internal/shared/services/content"
)

// fakeArticleRepo keeps articles in memory keyed by id and slug.
type fakeArticleRepo struct {
	byID   map[uint]*article.Article
	tags   map[uint][]uint
	nextID uint
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{byID: make(map[uint]*article.Article), tags: make(map[uint][]uint), nextID: 1}
}

func (f *fakeArticleRepo) Create(ctx context.Context, a *article.Article) error {
	for _, existing := range f.byID {
		if existing.Slug() == a.Slug() {
			return errors.NewConflictError("article slug already exists")
		}
	}
	if err := a.SetID(f.nextID); err != nil {
		return err
	}
	f.nextID++
	f.byID[a.ID()] = a
	return nil
}

func (f *fakeArticleRepo) Update(ctx context.Context, a *article.Article) error {
	if _, ok := f.byID[a.ID()]; !ok {
		return errors.NewNotFoundError("article not found")
	}
	f.byID[a.ID()] = a
	return nil
}

func (f *fakeArticleRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.byID[id]; !ok {
		return errors.NewNotFoundError("article not found")
	}
	delete(f.byID, id)
	delete(f.tags, id)
	return nil
}

func (f *fakeArticleRepo) FindByID(ctx context.Context, id uint) (*article.Article, error) {
	return f.byID[id], nil
}

func (f *fakeArticleRepo) FindBySlug(ctx context.Context, slug string) (*article.Article, error) {
	for _, a := range f.byID {
		if a.Slug() == slug {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeArticleRepo) ListPublished(ctx context.Context, page, pageSize int) ([]*article.Article, int64, error) {
	var out []*article.Article
	for _, a := range f.byID {
		if a.IsPublished() {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeArticleRepo) ListAll(ctx context.Context, page, pageSize int) ([]*article.Article, int64, error) {
	var out []*article.Article
	for _, a := range f.byID {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeArticleRepo) ListRecent(ctx context.Context, limit int) ([]*article.Article, error) {
	var out []*article.Article
	for _, a := range f.byID {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeArticleRepo) SyncTags(ctx context.Context, articleID uint, tagIDs []uint) error {
	if _, ok := f.byID[articleID]; !ok {
		return errors.NewNotFoundError("article not found")
	}
	f.tags[articleID] = tagIDs
	return nil
}

func (f *fakeArticleRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeArticleRepo) CountPublished(ctx context.Context) (int64, error) {
	list, total, _ := f.ListPublished(ctx, 1, 1000)
	_ = list
	return total, nil
}

func (f *fakeArticleRepo) CountPremium(ctx context.Context) (int64, error) {
	var n int64
	for _, a := range f.byID {
		if a.IsPremium() {
			n++
		}
	}
	return n, nil
}

// fakeTagRepo holds a fixed set of tag rows.
type fakeTagRepo struct {
	tags map[uint]*article.Tag
}

func newFakeTagRepo(t *testing.T, names ...string) *fakeTagRepo {
	t.Helper()
	repo := &fakeTagRepo{tags: make(map[uint]*article.Tag)}
	for i, name := range names {
		tag, err := article.NewTag(name, "")
		require.NoError(t, err)
		require.NoError(t, tag.SetID(uint(i+1)))
		repo.tags[tag.ID()] = tag
	}
	return repo
}

func (f *fakeTagRepo) Create(ctx context.Context, tag *article.Tag) error { return nil }
func (f *fakeTagRepo) Delete(ctx context.Context, id uint) error          { return nil }

func (f *fakeTagRepo) GetByID(ctx context.Context, id uint) (*article.Tag, error) {
	return f.tags[id], nil
}

func (f *fakeTagRepo) GetByIDs(ctx context.Context, ids []uint) ([]*article.Tag, error) {
	var out []*article.Tag
	for _, id := range ids {
		if tag, ok := f.tags[id]; ok {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (f *fakeTagRepo) GetByName(ctx context.Context, name string) (*article.Tag, error) {
	for _, tag := range f.tags {
		if tag.Name() == name {
			return tag, nil
		}
	}
	return nil, nil
}

func (f *fakeTagRepo) List(ctx context.Context) ([]*article.Tag, error) {
	var out []*article.Tag
	for _, tag := range f.tags {
		out = append(out, tag)
	}
	return out, nil
}

type stubEntitlements struct {
	sub *subscription.Subscription
}

func (s *stubEntitlements) FindActiveByUser(ctx context.Context, userID uint, now time.Time) (*subscription.Subscription, error) {
	return s.sub, nil
}

func activeSub(t *testing.T, userID uint) *subscription.Subscription {
	t.Helper()
	now := time.Now().UTC()
	ends := now.AddDate(0, 1, 0)
	price := 99000.0
	sub, err := subscription.ReconstructSubscription(
		1, userID, subscription.TypePremium, subscription.StatusActive,
		&price, now.Add(-time.Hour), &ends, nil, nil, nil, now, now,
	)
	require.NoError(t, err)
	return sub
}

func TestCreateArticleUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("renders markdown and derives the slug", func(t *testing.T) {
		repo := newFakeArticleRepo()
		uc := NewCreateArticleUseCase(repo, newFakeTagRepo(t), content.NewRenderer(), logger.NewLogger())

		resp, err := uc.Execute(ctx, CreateArticleCommand{
			Title:         "Hello World",
			Content:       "Some **bold** text.",
			ContentFormat: content.FormatMarkdown,
			IsPublished:   true,
			AuthorID:      1,
		})
		require.NoError(t, err)
		assert.Equal(t, "hello-world", resp.Slug)
		assert.Contains(t, resp.Content, "<strong>bold</strong>")
		assert.NotNil(t, resp.PublishedAt)
	})

	t.Run("sanitizes submitted html", func(t *testing.T) {
		repo := newFakeArticleRepo()
		uc := NewCreateArticleUseCase(repo, newFakeTagRepo(t), content.NewRenderer(), logger.NewLogger())

		resp, err := uc.Execute(ctx, CreateArticleCommand{
			Title:    "Sneaky",
			Content:  `<p>fine</p><script>alert(1)</script>`,
			AuthorID: 1,
		})
		require.NoError(t, err)
		assert.NotContains(t, resp.Content, "<script")
	})

	t.Run("attaches existing tags", func(t *testing.T) {
		repo := newFakeArticleRepo()
		uc := NewCreateArticleUseCase(repo, newFakeTagRepo(t, "go", "web"), content.NewRenderer(), logger.NewLogger())

		resp, err := uc.Execute(ctx, CreateArticleCommand{
			Title:    "Tagged",
			Content:  "<p>x</p>",
			TagIDs:   []uint{1, 2},
			AuthorID: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, []uint{1, 2}, repo.tags[resp.ID])
	})

	t.Run("rejects unknown tag ids", func(t *testing.T) {
		repo := newFakeArticleRepo()
		uc := NewCreateArticleUseCase(repo, newFakeTagRepo(t, "go"), content.NewRenderer(), logger.NewLogger())

		_, err := uc.Execute(ctx, CreateArticleCommand{
			Title:    "Bad Tags",
			Content:  "<p>x</p>",
			TagIDs:   []uint{1, 42},
			AuthorID: 1,
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Empty(t, repo.byID)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		repo := newFakeArticleRepo()
		uc := NewCreateArticleUseCase(repo, newFakeTagRepo(t), content.NewRenderer(), logger.NewLogger())

		_, err := uc.Execute(ctx, CreateArticleCommand{Title: "Same Title", Content: "<p>a</p>", AuthorID: 1})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, CreateArticleCommand{Title: "Same Title", Content: "<p>b</p>", AuthorID: 1})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestUpdateArticleUseCase(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo *fakeArticleRepo, authorID uint) *article.Article {
		t.Helper()
		a, err := article.NewArticle("Original", "", nil, "<p>v1</p>", false, true, nil, authorID)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, a))
		return a
	}

	t.Run("author may edit", func(t *testing.T) {
		repo := newFakeArticleRepo()
		uc := NewUpdateArticleUseCase(repo, newFakeTagRepo(t), content.NewRenderer(), logger.NewLogger())
		a := seed(t, repo, 7)

		resp, err := uc.Execute(ctx, UpdateArticleCommand{
			ArticleID:   a.ID(),
			Title:       "Renamed",
			Content:     "<p>v2</p>",
			IsPublished: true,
			Viewer:      &access.Viewer{ID: 7},
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", resp.Title)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		repo := newFakeArticleRepo()
		uc := NewUpdateArticleUseCase(repo, newFakeTagRepo(t), content.NewRenderer(), logger.NewLogger())
		a := seed(t, repo, 7)

		_, err := uc.Execute(ctx, UpdateArticleCommand{
			ArticleID: a.ID(),
			Title:     "Hijacked",
			Content:   "<p>x</p>",
			Viewer:    &access.Viewer{ID: 8},
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("admin may edit any article", func(t *testing.T) {
		repo := newFakeArticleRepo()
		uc := NewUpdateArticleUseCase(repo, newFakeTagRepo(t), content.NewRenderer(), logger.NewLogger())
		a := seed(t, repo, 7)

		_, err := uc.Execute(ctx, UpdateArticleCommand{
			ArticleID:   a.ID(),
			Title:       "Moderated",
			Content:     "<p>x</p>",
			IsPublished: true,
			Viewer:      &access.Viewer{ID: 99, IsAdmin: true},
		})
		require.NoError(t, err)
	})

	t.Run("nil tag ids leave the tag set alone", func(t *testing.T) {
		repo := newFakeArticleRepo()
		uc := NewUpdateArticleUseCase(repo, newFakeTagRepo(t, "go"), content.NewRenderer(), logger.NewLogger())
		a := seed(t, repo, 7)
		repo.tags[a.ID()] = []uint{1}

		_, err := uc.Execute(ctx, UpdateArticleCommand{
			ArticleID:   a.ID(),
			Title:       "Renamed",
			Content:     "<p>v2</p>",
			IsPublished: true,
			TagIDs:      nil,
			Viewer:      &access.Viewer{ID: 7},
		})
		require.NoError(t, err)
		assert.Equal(t, []uint{1}, repo.tags[a.ID()])
	})

	t.Run("empty tag ids detach everything", func(t *testing.T) {
		repo := newFakeArticleRepo()
		uc := NewUpdateArticleUseCase(repo, newFakeTagRepo(t, "go"), content.NewRenderer(), logger.NewLogger())
		a := seed(t, repo, 7)
		repo.tags[a.ID()] = []uint{1}

		_, err := uc.Execute(ctx, UpdateArticleCommand{
			ArticleID:   a.ID(),
			Title:       "Renamed",
			Content:     "<p>v2</p>",
			IsPublished: true,
			TagIDs:      []uint{},
			Viewer:      &access.Viewer{ID: 7},
		})
		require.NoError(t, err)
		assert.Empty(t, repo.tags[a.ID()])
	})

	t.Run("missing article reports not found", func(t *testing.T) {
		repo := newFakeArticleRepo()
		uc := NewUpdateArticleUseCase(repo, newFakeTagRepo(t), content.NewRenderer(), logger.NewLogger())

		_, err := uc.Execute(ctx, UpdateArticleCommand{
			ArticleID: 999,
			Title:     "Ghost",
			Content:   "<p>x</p>",
			Viewer:    &access.Viewer{ID: 7},
		})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDeleteArticleUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("author may delete", func(t *testing.T) {
		repo := newFakeArticleRepo()
		a, err := article.NewArticle("Doomed", "", nil, "<p>x</p>", false, true, nil, 7)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, a))

		uc := NewDeleteArticleUseCase(repo, logger.NewLogger())
		require.NoError(t, uc.Execute(ctx, DeleteArticleCommand{ArticleID: a.ID(), Viewer: &access.Viewer{ID: 7}}))
		assert.Empty(t, repo.byID)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		repo := newFakeArticleRepo()
		a, err := article.NewArticle("Safe", "", nil, "<p>x</p>", false, true, nil, 7)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, a))

		uc := NewDeleteArticleUseCase(repo, logger.NewLogger())
		err = uc.Execute(ctx, DeleteArticleCommand{ArticleID: a.ID(), Viewer: &access.Viewer{ID: 8}})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestGetArticleBySlugUseCase(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo *fakeArticleRepo, isPremium, isPublished bool) *article.Article {
		t.Helper()
		a, err := article.NewArticle("Gated Piece", "", nil, "<p>the secret body</p>", isPremium, isPublished, nil, 7)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, a))
		return a
	}

	t.Run("unknown slug reports not found", func(t *testing.T) {
		repo := newFakeArticleRepo()
		uc := NewGetArticleBySlugUseCase(repo, access.NewEvaluator(&stubEntitlements{}), logger.NewLogger())

		_, err := uc.Execute(ctx, GetArticleBySlugQuery{Slug: "no-such-slug"})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("hidden draft reports the same not found", func(t *testing.T) {
		repo := newFakeArticleRepo()
		seed(t, repo, false, false)
		uc := NewGetArticleBySlugUseCase(repo, access.NewEvaluator(&stubEntitlements{}), logger.NewLogger())

		_, draftErr := uc.Execute(ctx, GetArticleBySlugQuery{Slug: "gated-piece", Viewer: &access.Viewer{ID: 3}})
		_, missingErr := uc.Execute(ctx, GetArticleBySlugQuery{Slug: "no-such-slug", Viewer: &access.Viewer{ID: 3}})
		require.Error(t, draftErr)
		require.Error(t, missingErr)
		assert.Equal(t, missingErr.Error(), draftErr.Error())
	})

	t.Run("premium without entitlement yields a teaser", func(t *testing.T) {
		repo := newFakeArticleRepo()
		seed(t, repo, true, true)
		uc := NewGetArticleBySlugUseCase(repo, access.NewEvaluator(&stubEntitlements{}), logger.NewLogger())

		result, err := uc.Execute(ctx, GetArticleBySlugQuery{Slug: "gated-piece", Viewer: &access.Viewer{ID: 3}})
		require.NoError(t, err)
		assert.Equal(t, access.DecisionTeaser, result.Decision)
		assert.Nil(t, result.Article)
		require.NotNil(t, result.Teaser)

		// The teaser projection has no content field at all.
		raw, err := json.Marshal(result.Teaser)
		require.NoError(t, err)
		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &fields))
		_, hasContent := fields["content"]
		assert.False(t, hasContent)
		assert.NotContains(t, string(raw), "the secret body")
	})

	t.Run("premium with entitlement yields the full article", func(t *testing.T) {
		repo := newFakeArticleRepo()
		seed(t, repo, true, true)
		uc := NewGetArticleBySlugUseCase(repo, access.NewEvaluator(&stubEntitlements{sub: activeSub(t, 3)}), logger.NewLogger())

		result, err := uc.Execute(ctx, GetArticleBySlugQuery{Slug: "gated-piece", Viewer: &access.Viewer{ID: 3}})
		require.NoError(t, err)
		assert.Equal(t, access.DecisionFull, result.Decision)
		assert.Nil(t, result.Teaser)
		require.NotNil(t, result.Article)
		assert.Equal(t, "<p>the secret body</p>", result.Article.Content)
	})

	t.Run("free article is full for anonymous", func(t *testing.T) {
		repo := newFakeArticleRepo()
		seed(t, repo, false, true)
		uc := NewGetArticleBySlugUseCase(repo, access.NewEvaluator(&stubEntitlements{}), logger.NewLogger())

		result, err := uc.Execute(ctx, GetArticleBySlugQuery{Slug: "gated-piece"})
		require.NoError(t, err)
		assert.Equal(t, access.DecisionFull, result.Decision)
	})
}
