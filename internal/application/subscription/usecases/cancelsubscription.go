package usecases

import (
	"context"
	"fmt"

	"inkpress/internal/domain/subscription"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	SubscriptionID uint
	UserID         uint
}

type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute cancels a subscription. Entitlement is revoked immediately; the end
// date is left on the row for bookkeeping. Only the owner may cancel.
func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) error {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return errors.NewNotFoundError("subscription not found")
	}

	if sub.UserID() != cmd.UserID {
		return errors.NewForbiddenError("you can only cancel your own subscription")
	}

	if err := sub.Cancel(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update cancelled subscription",
			"subscription_id", cmd.SubscriptionID, "error", err)
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription cancelled",
		"subscription_id", cmd.SubscriptionID,
		"user_id", sub.UserID(),
		"status", sub.Status())
	return nil
}
