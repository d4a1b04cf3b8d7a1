package models

import (
	"time"

	"gorm.io/datatypes"

	"inkpress/internal/shared/constants"
)

// SubscriptionModel is the database persistence model for subscriptions.
// PaymentData is an opaque provider-specific document stored verbatim; its
// schema is never normalized across providers.
type SubscriptionModel struct {
	ID              uint      `gorm:"primarykey"`
	UserID          uint      `gorm:"not null;index:idx_subscriptions_user_status,priority:1"`
	Type            string    `gorm:"not null;size:20;default:free;index:idx_subscriptions_type_status,priority:1"`
	Status          string    `gorm:"not null;size:20;default:active;index:idx_subscriptions_user_status,priority:2;index:idx_subscriptions_type_status,priority:2"`
	Price           *float64  `gorm:"type:decimal(8,2)"`
	StartsAt        time.Time `gorm:"not null"`
	EndsAt          *time.Time
	PaymentProvider *string `gorm:"size:50"`
	PaymentID       *string `gorm:"size:255;index:idx_subscriptions_payment"`
	PaymentData     datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
