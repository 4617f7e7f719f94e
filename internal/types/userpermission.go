package types

import (
	"time"

	"github.com/google/uuid"
)

// Moderator capabilities checked by the product edit policy.
const (
	PermCancelPublication = "can_cancel_publication"
	PermChangeDescription = "can_change_description"
	PermChangeCategory    = "can_change_category"
)

type UserPermission struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_perm" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Codename  string    `gorm:"not null;uniqueIndex:idx_user_perm;column:codename" json:"codename"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (UserPermission) TableName() string {
	return "user_permission"
}
