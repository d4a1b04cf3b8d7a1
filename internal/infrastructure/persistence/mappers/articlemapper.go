package mappers

import (
	"fmt"

	"inkpress/internal/domain/article"
	"inkpress/internal/infrastructure/persistence/models"
	"inkpress/internal/shared/mapper"
)

type ArticleMapper interface {
	ToEntity(model *models.ArticleModel) (*article.Article, error)
	ToModel(entity *article.Article) (*models.ArticleModel, error)
	ToEntities(models []*models.ArticleModel) ([]*article.Article, error)
}

type ArticleMapperImpl struct {
	tagMapper TagMapper
}

func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{tagMapper: NewTagMapper()}
}

func (m *ArticleMapperImpl) ToEntity(model *models.ArticleModel) (*article.Article, error) {
	if model == nil {
		return nil, nil
	}

	tags := make([]article.Tag, 0, len(model.Tags))
	for i := range model.Tags {
		tag, err := m.tagMapper.ToEntity(&model.Tags[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map tag %d: %w", model.Tags[i].ID, err)
		}
		tags = append(tags, *tag)
	}

	entity, err := article.ReconstructArticle(
		model.ID,
		model.Title,
		model.Slug,
		model.Excerpt,
		model.Content,
		model.IsPremium,
		model.IsPublished,
		model.PublishedAt,
		model.UserID,
		model.Author.Name,
		tags,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct article entity: %w", err)
	}

	return entity, nil
}

// ToModel maps the aggregate fields only. Associations (author, tags) are
// managed explicitly by the repository so GORM never upserts them as a side
// effect of a write.
func (m *ArticleMapperImpl) ToModel(entity *article.Article) (*models.ArticleModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ArticleModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Slug:        entity.Slug(),
		Excerpt:     entity.Excerpt(),
		Content:     entity.Content(),
		IsPremium:   entity.IsPremium(),
		IsPublished: entity.IsPublished(),
		PublishedAt: entity.PublishedAt(),
		UserID:      entity.AuthorID(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *ArticleMapperImpl) ToEntities(modelList []*models.ArticleModel) ([]*article.Article, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ArticleModel) uint { return model.ID })
}
