package model

import (
	"time"

	"github.com/google/uuid"
)

// HouseholdModel is the tenant/family unit owning users, kids, vehicles and
// activities. Coordinates are double precision to avoid rounding loss.
type HouseholdModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   *string   `gorm:"size:255" json:"address,omitempty"`
	Phone     *string   `gorm:"size:32" json:"phone,omitempty"`
	Latitude  *float64  `gorm:"type:double precision" json:"latitude,omitempty"`
	Longitude *float64  `gorm:"type:double precision" json:"longitude,omitempty"`
	AvatarURL *string   `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (HouseholdModel) TableName() string { return "households" }
