package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"inkpress/internal/domain/subscription"
	"inkpress/internal/infrastructure/persistence/models"
	"inkpress/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	var paymentData map[string]interface{}
	if model.PaymentData != nil {
		if err := json.Unmarshal(model.PaymentData, &paymentData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payment data: %w", err)
		}
	}

	entity, err := subscription.ReconstructSubscription(
		model.ID,
		model.UserID,
		subscription.Type(model.Type),
		subscription.Status(model.Status),
		model.Price,
		model.StartsAt,
		model.EndsAt,
		model.PaymentProvider,
		model.PaymentID,
		paymentData,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	var paymentDataJSON datatypes.JSON
	if data := entity.PaymentData(); len(data) > 0 {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payment data: %w", err)
		}
		paymentDataJSON = raw
	}

	return &models.SubscriptionModel{
		ID:              entity.ID(),
		UserID:          entity.UserID(),
		Type:            string(entity.Type()),
		Status:          string(entity.Status()),
		Price:           entity.Price(),
		StartsAt:        entity.StartsAt(),
		EndsAt:          entity.EndsAt(),
		PaymentProvider: entity.PaymentProvider(),
		PaymentID:       entity.PaymentID(),
		PaymentData:     paymentDataJSON,
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(modelList []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SubscriptionModel) uint { return model.ID })
}
