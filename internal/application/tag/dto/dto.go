package dto

import (
	"time"

	"inkpress/internal/domain/article"
	"inkpress/internal/shared/mapper"
)

// CreateTagRequest represents the request to create a tag
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	Slug string `json:"slug" binding:"omitempty,max=100"`
}

// TagResponse represents a tag
type TagResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// TagToResponse converts a tag entity to its response
func TagToResponse(t *article.Tag) *TagResponse {
	if t == nil {
		return nil
	}
	return &TagResponse{
		ID:        t.ID(),
		Name:      t.Name(),
		Slug:      t.Slug(),
		CreatedAt: t.CreatedAt(),
	}
}

// TagsToResponses converts a slice of tag entities
func TagsToResponses(tags []*article.Tag) []*TagResponse {
	return mapper.MapSlice(tags, TagToResponse)
}
