package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	UserEventRegistered     = "registered"
	UserEventEmailConfirmed = "email_confirmed"
	UserEventPasswordReset  = "password_reset"
)

// UserEvent is an append-only audit row for account lifecycle actions.
type UserEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Type      string         `gorm:"not null;index;column:type" json:"type"`
	Data      datatypes.JSON `gorm:"type:jsonb;column:data" json:"data,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (UserEvent) TableName() string {
	return "user_event"
}
