package usecases

import (
	"context"
	"fmt"
	"time"

	"inkpress/internal/application/subscription/dto"
	"inkpress/internal/domain/subscription"
	"inkpress/internal/infrastructure/payment"
	"inkpress/internal/shared/config"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
)

type ConfirmPaymentCommand struct {
	UserID      uint
	Provider    string
	PaymentData map[string]interface{}
}

// ConfirmPaymentUseCase records a successful gateway payment as a new premium
// subscription. The gateway response is stored verbatim; this layer trusts
// the caller and does not verify the payment with the provider.
type ConfirmPaymentUseCase struct {
	subscriptionRepo subscription.Repository
	cfg              config.SubscriptionConfig
	logger           logger.Interface
}

func NewConfirmPaymentUseCase(
	subscriptionRepo subscription.Repository,
	cfg config.SubscriptionConfig,
	logger logger.Interface,
) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{
		subscriptionRepo: subscriptionRepo,
		cfg:              cfg,
		logger:           logger,
	}
}

func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, cmd ConfirmPaymentCommand) (*dto.SubscriptionResponse, error) {
	provider, err := payment.ParseProvider(cmd.Provider)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	now := time.Now().UTC()

	// A user holds at most one effectively-active premium row. Any row still
	// active at confirmation time is superseded before the new one is created.
	if err := uc.supersedeActive(ctx, cmd.UserID, now); err != nil {
		return nil, err
	}

	price := uc.cfg.PremiumPriceIDR
	endsAt := now.AddDate(0, uc.cfg.PeriodMonths, 0)
	providerName := string(provider)

	var paymentID *string
	if id := payment.ExtractPaymentID(provider, cmd.PaymentData); id != "" {
		paymentID = &id
	}

	entity, err := subscription.NewSubscription(
		cmd.UserID,
		subscription.TypePremium,
		&price,
		now,
		&endsAt,
		&providerName,
		paymentID,
		cmd.PaymentData,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, entity); err != nil {
		uc.logger.Errorw("failed to create subscription", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.logger.Infow("payment confirmed",
		"subscription_id", entity.ID(),
		"user_id", cmd.UserID,
		"provider", providerName,
		"ends_at", endsAt)

	return dto.SubscriptionToResponse(entity, now), nil
}

func (uc *ConfirmPaymentUseCase) supersedeActive(ctx context.Context, userID uint, now time.Time) error {
	active, err := uc.subscriptionRepo.FindActiveByUser(ctx, userID, now)
	if err != nil {
		return fmt.Errorf("failed to look up active subscription: %w", err)
	}
	if active == nil {
		return nil
	}

	active.Deactivate()
	if err := uc.subscriptionRepo.Update(ctx, active); err != nil {
		uc.logger.Errorw("failed to supersede subscription",
			"subscription_id", active.ID(), "user_id", userID, "error", err)
		return fmt.Errorf("failed to supersede subscription: %w", err)
	}

	uc.logger.Infow("subscription superseded",
		"subscription_id", active.ID(), "user_id", userID)
	return nil
}
