package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table. Identity is delegated to Google:
// google_uid is the external identity key, unique per user.
type UserModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GoogleUID   string     `gorm:"column:google_uid;size:128;unique;not null" json:"google_uid"`
	HouseholdID *uuid.UUID `gorm:"type:uuid" json:"household_id,omitempty"`
	Email       *string    `gorm:"size:255;unique" json:"email,omitempty"`
	FirstName   *string    `gorm:"size:120" json:"first_name,omitempty"`
	LastName    *string    `gorm:"size:120" json:"last_name,omitempty"`
	Phone       *string    `gorm:"size:32" json:"phone,omitempty"`
	AvatarURL   *string    `gorm:"type:text" json:"avatar_url,omitempty"`
	IsPrimary   bool       `gorm:"not null;default:false" json:"is_primary"`
	Verified    bool       `gorm:"not null;default:false" json:"verified"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string { return "users" }
