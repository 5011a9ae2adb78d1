package dto

import (
	"strings"

	"github.com/google/uuid"

	hhModel "kidride_backend/internals/features/households/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateHouseholdRequest struct {
	Name      string   `json:"name" validate:"required"`
	Address   *string  `json:"address,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

func (r *CreateHouseholdRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateHouseholdRequest) ToModel() *hhModel.HouseholdModel {
	return &hhModel.HouseholdModel{
		Name:      r.Name,
		Address:   r.Address,
		Phone:     r.Phone,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

// AvatarUploadURLRequest: household_id defaults to the caller's household.
type AvatarUploadURLRequest struct {
	HouseholdID *uuid.UUID `json:"household_id,omitempty"`
	ContentType string     `json:"content_type,omitempty"`
	FileName    string     `json:"file_name,omitempty"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type HouseholdResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	Phone     *string   `json:"phone"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	AvatarURL *string   `json:"avatar_url"`
}

func FromModel(m *hhModel.HouseholdModel) HouseholdResponse {
	return HouseholdResponse{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		Phone:     m.Phone,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		AvatarURL: m.AvatarURL,
	}
}
