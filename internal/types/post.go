package types

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	Content     string    `gorm:"column:content" json:"content,omitempty"`
	Preview     string    `gorm:"column:preview" json:"preview,omitempty"`
	IsPublished bool      `gorm:"not null;default:false;column:is_published" json:"is_published"`
	ViewsCount  int       `gorm:"not null;default:0;column:views_count" json:"views_count"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Post) TableName() string {
	return "post"
}
