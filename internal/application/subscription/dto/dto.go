package dto

import (
	"time"

	"inkpress/internal/domain/subscription"
	"inkpress/internal/shared/mapper"
)

// ConfirmPaymentRequest represents a successful gateway payment being
// reported by the frontend after checkout.
type ConfirmPaymentRequest struct {
	Provider    string                 `json:"provider" binding:"required,payment_provider"`
	PaymentData map[string]interface{} `json:"payment_data" binding:"required"`
}

// SubscriptionResponse represents a subscription row. PaymentData is echoed
// verbatim as stored.
type SubscriptionResponse struct {
	ID              uint                   `json:"id"`
	UserID          uint                   `json:"user_id"`
	Type            string                 `json:"type"`
	Status          string                 `json:"status"`
	Price           *float64               `json:"price,omitempty"`
	StartsAt        time.Time              `json:"starts_at"`
	EndsAt          *time.Time             `json:"ends_at,omitempty"`
	PaymentProvider *string                `json:"payment_provider,omitempty"`
	PaymentID       *string                `json:"payment_id,omitempty"`
	PaymentData     map[string]interface{} `json:"payment_data,omitempty"`
	IsActive        bool                   `json:"is_active"`
	CreatedAt       time.Time              `json:"created_at"`
}

// SubscriptionToResponse converts a subscription entity. IsActive is the
// effective-activity predicate evaluated at now.
func SubscriptionToResponse(s *subscription.Subscription, now time.Time) *SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &SubscriptionResponse{
		ID:              s.ID(),
		UserID:          s.UserID(),
		Type:            string(s.Type()),
		Status:          string(s.Status()),
		Price:           s.Price(),
		StartsAt:        s.StartsAt(),
		EndsAt:          s.EndsAt(),
		PaymentProvider: s.PaymentProvider(),
		PaymentID:       s.PaymentID(),
		PaymentData:     s.PaymentData(),
		IsActive:        s.IsEffectivelyActive(now),
		CreatedAt:       s.CreatedAt(),
	}
}

// SubscriptionsToResponses converts a slice of subscription entities.
func SubscriptionsToResponses(subs []*subscription.Subscription, now time.Time) []*SubscriptionResponse {
	return mapper.MapSlice(subs, func(s *subscription.Subscription) *SubscriptionResponse {
		return SubscriptionToResponse(s, now)
	})
}
