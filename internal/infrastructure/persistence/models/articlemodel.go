package models

import (
	"time"

	"inkpress/internal/shared/constants"
)

// ArticleModel is the database persistence model for articles.
// This is the anti-corruption layer between domain and database.
type ArticleModel struct {
	ID          uint       `gorm:"primarykey"`
	Title       string     `gorm:"not null;size:255"`
	Slug        string     `gorm:"uniqueIndex;not null;size:255"`
	Excerpt     *string    `gorm:"size:500"`
	Content     string     `gorm:"type:longtext;not null"`
	IsPremium   bool       `gorm:"not null;default:false;index:idx_articles_premium"`
	IsPublished bool       `gorm:"not null;default:true;index:idx_articles_published,priority:1"`
	PublishedAt *time.Time `gorm:"index:idx_articles_published,priority:2"`
	UserID      uint       `gorm:"not null;index:idx_articles_user"`

	Author UserModel  `gorm:"foreignKey:UserID"`
	Tags   []TagModel `gorm:"many2many:article_tags;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ArticleModel) TableName() string {
	return constants.TableArticles
}
