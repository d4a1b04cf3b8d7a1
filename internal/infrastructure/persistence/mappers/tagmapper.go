package mappers

import (
	"fmt"

	"inkpress/internal/domain/article"
	"inkpress/internal/infrastructure/persistence/models"
	"inkpress/internal/shared/mapper"
)

type TagMapper interface {
	ToEntity(model *models.TagModel) (*article.Tag, error)
	ToModel(entity *article.Tag) (*models.TagModel, error)
	ToEntities(models []*models.TagModel) ([]*article.Tag, error)
}

type TagMapperImpl struct{}

func NewTagMapper() TagMapper {
	return &TagMapperImpl{}
}

func (m *TagMapperImpl) ToEntity(model *models.TagModel) (*article.Tag, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := article.ReconstructTag(model.ID, model.Name, model.Slug, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct tag entity: %w", err)
	}
	return entity, nil
}

func (m *TagMapperImpl) ToModel(entity *article.Tag) (*models.TagModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TagModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Slug:      entity.Slug(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *TagMapperImpl) ToEntities(modelList []*models.TagModel) ([]*article.Tag, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.TagModel) uint { return model.ID })
}
