package types

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string     `gorm:"not null;column:name" json:"name"`
	Description string     `gorm:"column:description" json:"description,omitempty"`
	Photo       string     `gorm:"column:photo" json:"photo,omitempty"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category    *Category  `gorm:"constraint:OnDelete:SET NULL;foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	Price       int        `gorm:"not null;column:price" json:"price"`
	OwnerID     *uuid.UUID `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Owner       *User      `gorm:"constraint:OnDelete:SET NULL;foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
	IsPublished bool       `gorm:"not null;default:false;column:is_published" json:"is_published"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updated_at"`

	// ActiveVersion is derived by the listing assembler, never persisted.
	ActiveVersion string `gorm:"-" json:"active_version,omitempty"`
}

func (Product) TableName() string {
	return "product"
}
