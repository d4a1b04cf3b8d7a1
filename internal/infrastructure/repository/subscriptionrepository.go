package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"inkpress/internal/domain/subscription"
	"inkpress/internal/infrastructure/persistence/mappers"
	"inkpress/internal/infrastructure/persistence/models"
	"inkpress/internal/shared/constants"
	"inkpress/internal/shared/logger"
)

// SubscriptionRepositoryImpl implements the subscription.Repository interface
type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "user_id", sub.UserID(), "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set subscription ID", "error", err)
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created",
		"id", model.ID,
		"user_id", model.UserID,
		"type", model.Type,
		"status", model.Status)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get subscriptions by user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// FindActiveByUser fetches the status/type candidate rows and applies the
// temporal window in the domain entity, so the SQL predicate can never drift
// from IsEffectivelyActive.
func (r *SubscriptionRepositoryImpl) FindActiveByUser(ctx context.Context, userID uint, now time.Time) (*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND status = ?",
			userID, constants.SubscriptionTypePremium, string(subscription.StatusActive)).
		Order("created_at DESC, id DESC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to find active subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to find active subscription: %w", err)
	}

	for _, model := range modelList {
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity.IsEffectivelyActive(now) {
			return entity, nil
		}
	}
	return nil, nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription to model: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	r.logger.Infow("subscription updated", "id", model.ID, "status", model.Status)
	return nil
}

func (r *SubscriptionRepositoryImpl) CountActivePremium(ctx context.Context, now time.Time) (int64, error) {
	entities, err := r.activePremium(ctx, now)
	if err != nil {
		return 0, err
	}
	return int64(len(entities)), nil
}

func (r *SubscriptionRepositoryImpl) SumActivePremiumRevenue(ctx context.Context, now time.Time) (float64, error) {
	entities, err := r.activePremium(ctx, now)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, entity := range entities {
		if price := entity.Price(); price != nil {
			sum += *price
		}
	}
	return sum, nil
}

func (r *SubscriptionRepositoryImpl) activePremium(ctx context.Context, now time.Time) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("type = ? AND status = ?",
			constants.SubscriptionTypePremium, string(subscription.StatusActive)).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to load active premium subscriptions", "error", err)
		return nil, fmt.Errorf("failed to load active premium subscriptions: %w", err)
	}

	entities := make([]*subscription.Subscription, 0, len(modelList))
	for _, model := range modelList {
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity.IsEffectivelyActive(now) {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
