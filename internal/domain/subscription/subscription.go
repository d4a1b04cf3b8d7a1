package subscription

import (
	"fmt"
	"time"
)

// Type identifies the subscription tier.
type Type string

const (
	TypeFree    Type = "free"
	TypePremium Type = "premium"
)

// ValidTypes is the set of accepted subscription types.
var ValidTypes = map[Type]bool{
	TypeFree:    true,
	TypePremium: true,
}

// Status is the stored lifecycle state. Effective activity is derived from
// status plus the date bounds, never from status alone; see IsEffectivelyActive.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusCancelled Status = "cancelled"
)

// ValidStatuses is the set of accepted subscription statuses.
var ValidStatuses = map[Status]bool{
	StatusActive:    true,
	StatusInactive:  true,
	StatusCancelled: true,
}

// Subscription represents the subscription aggregate root. A user may hold
// multiple rows (history); entitlement only considers effectively-active ones.
type Subscription struct {
	id              uint
	userID          uint
	subType         Type
	status          Status
	price           *float64
	startsAt        time.Time
	endsAt          *time.Time
	paymentProvider *string
	paymentID       *string
	paymentData     map[string]interface{}
	createdAt       time.Time
	updatedAt       time.Time
}

// NewSubscription creates a new subscription in active status. The payment
// data blob is recorded verbatim; this layer does not validate that the
// payment actually succeeded.
func NewSubscription(
	userID uint,
	subType Type,
	price *float64,
	startsAt time.Time,
	endsAt *time.Time,
	paymentProvider *string,
	paymentID *string,
	paymentData map[string]interface{},
) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !ValidTypes[subType] {
		return nil, fmt.Errorf("invalid subscription type: %s", subType)
	}
	if endsAt != nil && !endsAt.After(startsAt) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	now := time.Now().UTC()
	return &Subscription{
		userID:          userID,
		subType:         subType,
		status:          StatusActive,
		price:           price,
		startsAt:        startsAt,
		endsAt:          endsAt,
		paymentProvider: paymentProvider,
		paymentID:       paymentID,
		paymentData:     paymentData,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence.
func ReconstructSubscription(
	id, userID uint,
	subType Type,
	status Status,
	price *float64,
	startsAt time.Time,
	endsAt *time.Time,
	paymentProvider *string,
	paymentID *string,
	paymentData map[string]interface{},
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !ValidTypes[subType] {
		return nil, fmt.Errorf("invalid subscription type: %s", subType)
	}
	if !ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:              id,
		userID:          userID,
		subType:         subType,
		status:          status,
		price:           price,
		startsAt:        startsAt,
		endsAt:          endsAt,
		paymentProvider: paymentProvider,
		paymentID:       paymentID,
		paymentData:     paymentData,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) UserID() uint {
	return s.userID
}

func (s *Subscription) Type() Type {
	return s.subType
}

func (s *Subscription) Status() Status {
	return s.status
}

func (s *Subscription) Price() *float64 {
	return s.price
}

func (s *Subscription) StartsAt() time.Time {
	return s.startsAt
}

func (s *Subscription) EndsAt() *time.Time {
	return s.endsAt
}

func (s *Subscription) PaymentProvider() *string {
	return s.paymentProvider
}

func (s *Subscription) PaymentID() *string {
	return s.paymentID
}

func (s *Subscription) PaymentData() map[string]interface{} {
	return s.paymentData
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// IsPremium reports whether this subscription is a premium-tier row.
func (s *Subscription) IsPremium() bool {
	return s.subType == TypePremium
}

// IsEffectivelyActive is the single activity predicate. A subscription is
// effectively active iff status is active, it has started, and it has not
// ended. Boundary semantics: now == startsAt is active, now == endsAt is not.
// The result depends on now and must be recomputed on every call; callers
// must not cache it. Query filters in the repository layer fetch a candidate
// superset and call back into this predicate so the two cannot drift.
func (s *Subscription) IsEffectivelyActive(now time.Time) bool {
	if s.status != StatusActive {
		return false
	}
	if s.startsAt.After(now) {
		return false
	}
	if s.endsAt != nil && !s.endsAt.After(now) {
		return false
	}
	return true
}

// Cancel marks the subscription cancelled. The end date is left untouched,
// but because the activity predicate requires active status, cancellation
// revokes entitlement immediately rather than at the end of the paid period.
func (s *Subscription) Cancel() error {
	if s.status == StatusCancelled {
		return nil
	}
	s.status = StatusCancelled
	s.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate marks the subscription inactive. Used when a newer subscription
// supersedes this row.
func (s *Subscription) Deactivate() {
	if s.status == StatusInactive {
		return
	}
	s.status = StatusInactive
	s.updatedAt = time.Now().UTC()
}
