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

// ArticleRepositoryImpl implements the article.Repository interface
type ArticleRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
	logger logger.Interface
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB, logger logger.Interface) article.Repository {
	return &ArticleRepositoryImpl{
		db:     db,
		mapper: mappers.NewArticleMapper(),
		logger: logger,
	}
}

func (r *ArticleRepositoryImpl) Create(ctx context.Context, a *article.Article) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map article to model: %w", err)
	}

	// Associations are synced separately so a create never upserts tags.
	if err := r.db.WithContext(ctx).Omit("Author", "Tags").Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("article slug already exists")
		}
		r.logger.Errorw("failed to create article", "slug", a.Slug(), "error", err)
		return fmt.Errorf("failed to create article: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set article ID", "error", err)
		return fmt.Errorf("failed to set article ID: %w", err)
	}

	r.logger.Infow("article created", "id", model.ID, "slug", model.Slug)
	return nil
}

func (r *ArticleRepositoryImpl) Update(ctx context.Context, a *article.Article) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map article to model: %w", err)
	}

	// Save with Select("*") so false booleans and cleared pointers persist.
	result := r.db.WithContext(ctx).
		Model(&models.ArticleModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("article slug already exists")
		}
		r.logger.Errorw("failed to update article", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("article not found")
	}

	r.logger.Infow("article updated", "id", model.ID, "slug", model.Slug)
	return nil
}

func (r *ArticleRepositoryImpl) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.ArticleModel{ID: id}
		if err := tx.Model(&model).Association("Tags").Clear(); err != nil {
			return fmt.Errorf("failed to clear article tags: %w", err)
		}

		result := tx.Delete(&models.ArticleModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete article: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("article not found")
		}
		return nil
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		r.logger.Errorw("failed to delete article", "id", id, "error", err)
		return err
	}

	r.logger.Infow("article deleted", "id", id)
	return nil
}

func (r *ArticleRepositoryImpl) FindByID(ctx context.Context, id uint) (*article.Article, error) {
	var model models.ArticleModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find article by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ArticleRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*article.Article, error) {
	var model models.ArticleModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find article by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ArticleRepositoryImpl) ListPublished(ctx context.Context, page, pageSize int) ([]*article.Article, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).
		Model(&models.ArticleModel{}).
		Where("is_published = ?", true)
	if err := base.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count published articles", "error", err)
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	var modelList []*models.ArticleModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Where("is_published = ?", true).
		Order("published_at DESC, id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list published articles", "page", page, "error", err)
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *ArticleRepositoryImpl) ListAll(ctx context.Context, page, pageSize int) ([]*article.Article, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ArticleModel{}).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count articles", "error", err)
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	var modelList []*models.ArticleModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list articles", "page", page, "error", err)
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *ArticleRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*article.Article, error) {
	var modelList []*models.ArticleModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list recent articles", "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to list recent articles: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *ArticleRepositoryImpl) SyncTags(ctx context.Context, articleID uint, tagIDs []uint) error {
	var model models.ArticleModel
	if err := r.db.WithContext(ctx).First(&model, articleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewNotFoundError("article not found")
		}
		r.logger.Errorw("failed to load article for tag sync", "article_id", articleID, "error", err)
		return fmt.Errorf("failed to load article: %w", err)
	}

	tags := make([]models.TagModel, 0, len(tagIDs))
	for _, id := range tagIDs {
		tags = append(tags, models.TagModel{ID: id})
	}

	// Replace makes the association exactly the given set, so re-syncing the
	// same ids is a no-op.
	if err := r.db.WithContext(ctx).Model(&model).Association("Tags").Replace(tags); err != nil {
		r.logger.Errorw("failed to sync article tags", "article_id", articleID, "tag_ids", tagIDs, "error", err)
		return fmt.Errorf("failed to sync article tags: %w", err)
	}

	r.logger.Infow("article tags synced", "article_id", articleID, "tag_count", len(tagIDs))
	return nil
}

func (r *ArticleRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ArticleModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count articles", "error", err)
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

func (r *ArticleRepositoryImpl) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ArticleModel{}).
		Where("is_published = ?", true).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count published articles", "error", err)
		return 0, fmt.Errorf("failed to count published articles: %w", err)
	}
	return count, nil
}

func (r *ArticleRepositoryImpl) CountPremium(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ArticleModel{}).
		Where("is_premium = ?", true).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count premium articles", "error", err)
		return 0, fmt.Errorf("failed to count premium articles: %w", err)
	}
	return count, nil
}
