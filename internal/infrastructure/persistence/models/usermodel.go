package models

import (
	"time"

	"inkpress/internal/shared/constants"
)

// UserModel is the database persistence model for users.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:255"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
