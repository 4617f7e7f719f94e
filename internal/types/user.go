package types

import (
	"time"

	"github.com/google/uuid"
)

// User is created inactive; IsActive flips to true exactly once when the
// emailed confirmation token is redeemed. The token itself is never
// cleared afterwards.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	Phone     string    `gorm:"column:phone" json:"phone,omitempty"`
	Country   string    `gorm:"column:country" json:"country,omitempty"`
	Token     string    `gorm:"index;column:token" json:"-"`
	IsActive  bool      `gorm:"not null;default:false;column:is_active" json:"is_active"`
	IsStaff   bool      `gorm:"not null;default:false;column:is_staff" json:"is_staff"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}
