package models

import (
	"time"

	"inkpress/internal/shared/constants"
)

// TagModel is the database persistence model for tags.
type TagModel struct {
	ID   uint   `gorm:"primarykey"`
	Name string `gorm:"uniqueIndex;not null;size:100"`
	Slug string `gorm:"uniqueIndex;not null;size:100"`

	Articles []ArticleModel `gorm:"many2many:article_tags;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (TagModel) TableName() string {
	return constants.TableTags
}
