package subscription

import (
	"context"
	"time"
)

// Repository persists subscription rows and answers entitlement queries.
type Repository interface {
	// Create inserts a new row. It performs no supersede validation;
	// enforcing at-most-one-active-per-user is the caller's job.
	Create(ctx context.Context, sub *Subscription) error

	// GetByID returns the subscription or nil when the id does not resolve.
	GetByID(ctx context.Context, id uint) (*Subscription, error)

	// GetByUserID returns the user's full subscription history, newest first.
	GetByUserID(ctx context.Context, userID uint) ([]*Subscription, error)

	// FindActiveByUser returns the most relevant effectively-active premium
	// subscription for the user at the given instant, or nil when there is
	// none. When several rows qualify the most recently created one wins.
	FindActiveByUser(ctx context.Context, userID uint, now time.Time) (*Subscription, error)

	Update(ctx context.Context, sub *Subscription) error

	// CountActivePremium counts users' effectively-active premium rows.
	CountActivePremium(ctx context.Context, now time.Time) (int64, error)

	// SumActivePremiumRevenue sums the price of effectively-active premium rows.
	SumActivePremiumRevenue(ctx context.Context, now time.Time) (float64, error)
}
