package usecases

import (
	"context"
	"fmt"
	"time"

	"inkpress/internal/application/subscription/dto"
	"inkpress/internal/domain/subscription"
	"inkpress/internal/shared/constants"
	"inkpress/internal/shared/logger"
)

type GetCurrentSubscriptionQuery struct {
	UserID uint
}

// CurrentSubscriptionResult reports the user's effective tier. Subscription
// is nil for free-tier users.
type CurrentSubscriptionResult struct {
	Type         string                    `json:"type"`
	Subscription *dto.SubscriptionResponse `json:"subscription,omitempty"`
}

type GetCurrentSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetCurrentSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *GetCurrentSubscriptionUseCase {
	return &GetCurrentSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetCurrentSubscriptionUseCase) Execute(ctx context.Context, query GetCurrentSubscriptionQuery) (*CurrentSubscriptionResult, error) {
	now := time.Now().UTC()

	active, err := uc.subscriptionRepo.FindActiveByUser(ctx, query.UserID, now)
	if err != nil {
		uc.logger.Errorw("failed to find active subscription", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to find active subscription: %w", err)
	}

	if active == nil {
		return &CurrentSubscriptionResult{Type: constants.SubscriptionTypeFree}, nil
	}

	return &CurrentSubscriptionResult{
		Type:         string(active.Type()),
		Subscription: dto.SubscriptionToResponse(active, now),
	}, nil
}
