package model

import (
	"time"

	"github.com/google/uuid"
)

// KidModel belongs to exactly one household and optionally one parent user.
// Enrollments reference kids but never own them.
type KidModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	HouseholdID  *uuid.UUID `gorm:"type:uuid" json:"household_id,omitempty"`
	ParentUserID *uuid.UUID `gorm:"type:uuid" json:"parent_user_id,omitempty"`
	FirstName    string     `gorm:"size:120;not null" json:"first_name"`
	Dob          *time.Time `gorm:"type:date" json:"dob,omitempty"`
	Gender       *string    `gorm:"size:32" json:"gender,omitempty"`
	AvatarURL    *string    `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (KidModel) TableName() string { return "kids" }
