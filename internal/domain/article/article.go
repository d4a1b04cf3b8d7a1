package article

import (
	"fmt"
	"time"

	"inkpress/internal/shared/utils"
)

// Article represents the article aggregate root. Content is stored as
// sanitized HTML; the slug is the public URL key and unique across articles.
type Article struct {
	id          uint
	title       string
	slug        string
	excerpt     *string
	content     string
	isPremium   bool
	isPublished bool
	publishedAt *time.Time
	authorID    uint

	// Read-side associations populated on reconstruction.
	authorName string
	tags       []Tag

	createdAt time.Time
	updatedAt time.Time
}

// NewArticle creates a new article. When slug is empty it is derived from
// the title. Publishing without an explicit publish date stamps it with now.
func NewArticle(
	title, slug string,
	excerpt *string,
	content string,
	isPremium, isPublished bool,
	publishedAt *time.Time,
	authorID uint,
) (*Article, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	if slug == "" {
		slug = utils.Slugify(title)
	}
	if slug == "" {
		return nil, fmt.Errorf("cannot derive slug from title %q", title)
	}

	now := time.Now().UTC()
	if isPublished && publishedAt == nil {
		publishedAt = &now
	}

	return &Article{
		title:       title,
		slug:        slug,
		excerpt:     excerpt,
		content:     content,
		isPremium:   isPremium,
		isPublished: isPublished,
		publishedAt: publishedAt,
		authorID:    authorID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructArticle reconstructs an article from persistence, including the
// read-side author name and tag associations.
func ReconstructArticle(
	id uint,
	title, slug string,
	excerpt *string,
	content string,
	isPremium, isPublished bool,
	publishedAt *time.Time,
	authorID uint,
	authorName string,
	tags []Tag,
	createdAt, updatedAt time.Time,
) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Article{
		id:          id,
		title:       title,
		slug:        slug,
		excerpt:     excerpt,
		content:     content,
		isPremium:   isPremium,
		isPublished: isPublished,
		publishedAt: publishedAt,
		authorID:    authorID,
		authorName:  authorName,
		tags:        tags,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (a *Article) ID() uint {
	return a.id
}

func (a *Article) Title() string {
	return a.title
}

func (a *Article) Slug() string {
	return a.slug
}

func (a *Article) Excerpt() *string {
	return a.excerpt
}

func (a *Article) Content() string {
	return a.content
}

func (a *Article) IsPremium() bool {
	return a.isPremium
}

func (a *Article) IsPublished() bool {
	return a.isPublished
}

func (a *Article) PublishedAt() *time.Time {
	return a.publishedAt
}

func (a *Article) AuthorID() uint {
	return a.authorID
}

func (a *Article) AuthorName() string {
	return a.authorName
}

func (a *Article) Tags() []Tag {
	return a.tags
}

func (a *Article) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Article) UpdatedAt() time.Time {
	return a.updatedAt
}

// SetID sets the article ID (only for persistence layer use)
func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

// Update replaces the mutable fields. Slug changes are allowed but not
// recommended once an article is published. Publishing an article without an
// explicit publish date stamps it with now; unpublishing keeps the date.
func (a *Article) Update(
	title, slug string,
	excerpt *string,
	content string,
	isPremium, isPublished bool,
	publishedAt *time.Time,
) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if content == "" {
		return fmt.Errorf("content is required")
	}
	if slug == "" {
		slug = a.slug
	}

	now := time.Now().UTC()
	if publishedAt == nil {
		publishedAt = a.publishedAt
	}
	if isPublished && publishedAt == nil {
		publishedAt = &now
	}

	a.title = title
	a.slug = slug
	a.excerpt = excerpt
	a.content = content
	a.isPremium = isPremium
	a.isPublished = isPublished
	a.publishedAt = publishedAt
	a.updatedAt = now

	return nil
}
