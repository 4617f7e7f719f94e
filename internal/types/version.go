package types

import (
	"time"

	"github.com/google/uuid"
)

// Version rows carry no uniqueness constraint on (product, is_current_version):
// a product may have zero or several versions flagged current at once.
type Version struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VersionNumber    uint       `gorm:"not null;column:version_number" json:"version_number"`
	Name             string     `gorm:"not null;column:name" json:"name"`
	IsCurrentVersion bool       `gorm:"not null;default:false;column:is_current_version" json:"is_current_version"`
	ProductID        *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Product          *Product   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	CreatedAt        time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Version) TableName() string {
	return "version"
}
