package usecases

import (
	"context"
	"fmt"
	"time"

	"inkpress/internal/application/subscription/dto"
	"inkpress/internal/domain/subscription"
	"inkpress/internal/shared/logger"
)

type ListSubscriptionHistoryQuery struct {
	UserID uint
}

type ListSubscriptionHistoryUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListSubscriptionHistoryUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ListSubscriptionHistoryUseCase {
	return &ListSubscriptionHistoryUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute returns the user's full subscription history, newest first,
// superseded and cancelled rows included.
func (uc *ListSubscriptionHistoryUseCase) Execute(ctx context.Context, query ListSubscriptionHistoryQuery) ([]*dto.SubscriptionResponse, error) {
	subs, err := uc.subscriptionRepo.GetByUserID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list subscription history", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return dto.SubscriptionsToResponses(subs, time.Now().UTC()), nil
}
