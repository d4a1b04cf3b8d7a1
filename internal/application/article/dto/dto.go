package dto

import (
	"time"

	"inkpress/internal/domain/article"
	"inkpress/internal/shared/mapper"
)

// CreateArticleRequest represents the request to create an article
type CreateArticleRequest struct {
	Title         string     `json:"title" binding:"required,min=3,max=255"`
	Slug          string     `json:"slug" binding:"omitempty,max=255"`
	Excerpt       *string    `json:"excerpt,omitempty" binding:"omitempty,max=500"`
	Content       string     `json:"content" binding:"required"`
	ContentFormat string     `json:"content_format" binding:"omitempty,oneof=html markdown"`
	IsPremium     bool       `json:"is_premium"`
	IsPublished   *bool      `json:"is_published,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	TagIDs        []uint     `json:"tag_ids,omitempty"`
}

// UpdateArticleRequest represents the request to update an article
type UpdateArticleRequest struct {
	Title         string     `json:"title" binding:"required,min=3,max=255"`
	Slug          string     `json:"slug" binding:"omitempty,max=255"`
	Excerpt       *string    `json:"excerpt,omitempty" binding:"omitempty,max=500"`
	Content       string     `json:"content" binding:"required"`
	ContentFormat string     `json:"content_format" binding:"omitempty,oneof=html markdown"`
	IsPremium     bool       `json:"is_premium"`
	IsPublished   bool       `json:"is_published"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	TagIDs        []uint     `json:"tag_ids,omitempty"`
}

// TagResponse represents a tag attached to an article
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ArticleResponse is the full article projection, content included.
type ArticleResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Excerpt     *string       `json:"excerpt,omitempty"`
	Content     string        `json:"content"`
	IsPremium   bool          `json:"is_premium"`
	IsPublished bool          `json:"is_published"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	AuthorName  string        `json:"author_name"`
	Tags        []TagResponse `json:"tags"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ArticleTeaserResponse is the restricted projection for premium articles
// viewed without entitlement. It has no content field at all, so the body
// cannot leak through serialization.
type ArticleTeaserResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Excerpt     *string       `json:"excerpt,omitempty"`
	IsPremium   bool          `json:"is_premium"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	AuthorName  string        `json:"author_name"`
	Tags        []TagResponse `json:"tags"`
}

// ArticleSummaryResponse is the listing projection. Like the teaser it never
// carries content.
type ArticleSummaryResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Excerpt     *string       `json:"excerpt,omitempty"`
	IsPremium   bool          `json:"is_premium"`
	IsPublished bool          `json:"is_published"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	AuthorName  string        `json:"author_name"`
	Tags        []TagResponse `json:"tags"`
	CreatedAt   time.Time     `json:"created_at"`
}

func tagResponses(tags []article.Tag) []TagResponse {
	result := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		result = append(result, TagResponse{ID: t.ID(), Name: t.Name(), Slug: t.Slug()})
	}
	return result
}

// ArticleToResponse converts an article entity to the full projection.
func ArticleToResponse(a *article.Article) *ArticleResponse {
	if a == nil {
		return nil
	}
	return &ArticleResponse{
		ID:          a.ID(),
		Title:       a.Title(),
		Slug:        a.Slug(),
		Excerpt:     a.Excerpt(),
		Content:     a.Content(),
		IsPremium:   a.IsPremium(),
		IsPublished: a.IsPublished(),
		PublishedAt: a.PublishedAt(),
		AuthorName:  a.AuthorName(),
		Tags:        tagResponses(a.Tags()),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

// ArticleToTeaser converts an article entity to the restricted projection.
func ArticleToTeaser(a *article.Article) *ArticleTeaserResponse {
	if a == nil {
		return nil
	}
	return &ArticleTeaserResponse{
		ID:          a.ID(),
		Title:       a.Title(),
		Slug:        a.Slug(),
		Excerpt:     a.Excerpt(),
		IsPremium:   a.IsPremium(),
		PublishedAt: a.PublishedAt(),
		AuthorName:  a.AuthorName(),
		Tags:        tagResponses(a.Tags()),
	}
}

// ArticleToSummary converts an article entity to the listing projection.
func ArticleToSummary(a *article.Article) *ArticleSummaryResponse {
	if a == nil {
		return nil
	}
	return &ArticleSummaryResponse{
		ID:          a.ID(),
		Title:       a.Title(),
		Slug:        a.Slug(),
		Excerpt:     a.Excerpt(),
		IsPremium:   a.IsPremium(),
		IsPublished: a.IsPublished(),
		PublishedAt: a.PublishedAt(),
		AuthorName:  a.AuthorName(),
		Tags:        tagResponses(a.Tags()),
		CreatedAt:   a.CreatedAt(),
	}
}

// ArticlesToSummaries converts a slice of article entities.
func ArticlesToSummaries(articles []*article.Article) []*ArticleSummaryResponse {
	return mapper.MapSlice(articles, ArticleToSummary)
}
