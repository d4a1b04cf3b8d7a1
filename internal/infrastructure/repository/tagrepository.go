package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"inkpress/internal/domain/article"
	"inkpress/internal/infrastructure/persistence/mappers"
	"inkpress/internal/infrastructure/persistence/models"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
)

// TagRepositoryImpl implements the article.TagRepository interface
type TagRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TagMapper
	logger logger.Interface
}

// NewTagRepository creates a new tag repository instance
func NewTagRepository(db *gorm.DB, logger logger.Interface) article.TagRepository {
	return &TagRepositoryImpl{
		db:     db,
		mapper: mappers.NewTagMapper(),
		logger: logger,
	}
}

func (r *TagRepositoryImpl) Create(ctx context.Context, t *article.Tag) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map tag to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("tag already exists")
		}
		r.logger.Errorw("failed to create tag", "name", t.Name(), "error", err)
		return fmt.Errorf("failed to create tag: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set tag ID", "error", err)
		return fmt.Errorf("failed to set tag ID: %w", err)
	}

	r.logger.Infow("tag created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *TagRepositoryImpl) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.TagModel{ID: id}
		if err := tx.Model(&model).Association("Articles").Clear(); err != nil {
			return fmt.Errorf("failed to detach tag from articles: %w", err)
		}

		result := tx.Delete(&models.TagModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete tag: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("tag not found")
		}
		return nil
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		r.logger.Errorw("failed to delete tag", "id", id, "error", err)
		return err
	}

	r.logger.Infow("tag deleted", "id", id)
	return nil
}

func (r *TagRepositoryImpl) GetByID(ctx context.Context, id uint) (*article.Tag, error) {
	var model models.TagModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get tag by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TagRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*article.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var modelList []*models.TagModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get tags by IDs", "ids", ids, "error", err)
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *TagRepositoryImpl) GetByName(ctx context.Context, name string) (*article.Tag, error) {
	var model models.TagModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get tag by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TagRepositoryImpl) List(ctx context.Context) ([]*article.Tag, error) {
	var modelList []*models.TagModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list tags", "error", err)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
