package model

import (
	"time"

	"github.com/google/uuid"
)

type VehicleModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	HouseholdID *uuid.UUID `gorm:"type:uuid" json:"household_id,omitempty"`
	Make        *string    `gorm:"size:120" json:"make,omitempty"`
	Model       *string    `gorm:"size:120" json:"model,omitempty"`
	Color       *string    `gorm:"size:64" json:"color,omitempty"`
	SeatCount   *int       `json:"seat_count,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (VehicleModel) TableName() string { return "vehicles" }
