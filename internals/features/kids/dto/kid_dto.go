package dto

import (
	"strings"

	"github.com/google/uuid"

	kidModel "kidride_backend/internals/features/kids/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateKidRequest struct {
	FirstName   string     `json:"first_name" validate:"required"`
	Dob         *string    `json:"dob,omitempty"` // ISO date, parsed in controller
	Gender      *string    `json:"gender,omitempty"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	HouseholdID *uuid.UUID `json:"household_id,omitempty"` // defaults to caller's household
}

func (r *CreateKidRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
}

type KidAvatarUploadURLRequest struct {
	KidID       uuid.UUID `json:"kid_id" validate:"required"`
	ContentType string    `json:"content_type,omitempty"`
	FileName    string    `json:"file_name,omitempty"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type KidResponse struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"first_name"`
	Gender       *string    `json:"gender"`
	Dob          *string    `json:"dob"`
	HouseholdID  *uuid.UUID `json:"household_id"`
	ParentUserID *uuid.UUID `json:"parent_user_id"`
	AvatarURL    *string    `json:"avatar_url"`
}

func FromModel(m *kidModel.KidModel) KidResponse {
	resp := KidResponse{
		ID:           m.ID,
		FirstName:    m.FirstName,
		Gender:       m.Gender,
		HouseholdID:  m.HouseholdID,
		ParentUserID: m.ParentUserID,
		AvatarURL:    m.AvatarURL,
	}
	if m.Dob != nil {
		d := m.Dob.Format("2006-01-02")
		resp.Dob = &d
	}
	return resp
}

func FromModels(ms []kidModel.KidModel) []KidResponse {
	out := make([]KidResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
