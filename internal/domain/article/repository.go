package article

import "context"

// Repository persists articles and resolves them for the read side. Lookup
// methods return nil (not an error) when the key does not resolve.
type Repository interface {
	Create(ctx context.Context, a *Article) error
	Update(ctx context.Context, a *Article) error
	Delete(ctx context.Context, id uint) error

	FindByID(ctx context.Context, id uint) (*Article, error)
	FindBySlug(ctx context.Context, slug string) (*Article, error)

	// ListPublished returns published articles ordered by published_at
	// descending, ties broken by id ascending for determinism.
	ListPublished(ctx context.Context, page, pageSize int) ([]*Article, int64, error)

	// ListAll returns all articles regardless of publication state, newest
	// first (admin surface).
	ListAll(ctx context.Context, page, pageSize int) ([]*Article, int64, error)

	// ListRecent returns the most recently created articles (dashboard).
	ListRecent(ctx context.Context, limit int) ([]*Article, error)

	// SyncTags replaces the article's tag set with exactly the given ids:
	// omitted ids are detached, new ids attached. Idempotent for the same
	// input set.
	SyncTags(ctx context.Context, articleID uint, tagIDs []uint) error

	Count(ctx context.Context) (int64, error)
	CountPublished(ctx context.Context) (int64, error)
	CountPremium(ctx context.Context) (int64, error)
}

// TagRepository persists tags.
type TagRepository interface {
	Create(ctx context.Context, t *Tag) error
	Delete(ctx context.Context, id uint) error

	GetByID(ctx context.Context, id uint) (*Tag, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Tag, error)
	GetByName(ctx context.Context, name string) (*Tag, error)
	List(ctx context.Context) ([]*Tag, error)
}
