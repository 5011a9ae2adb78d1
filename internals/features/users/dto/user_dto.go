package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "kidride_backend/internals/features/users/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateSessionRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	GoogleUID   string     `json:"google_uid"`
	HouseholdID *uuid.UUID `json:"household_id"`
	Email       *string    `json:"email"`
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	Phone       *string    `json:"phone"`
	AvatarURL   *string    `json:"avatar_url"`
	IsPrimary   bool       `json:"is_primary"`
	Verified    bool       `json:"verified"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromUserModel(m *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:          m.ID,
		GoogleUID:   m.GoogleUID,
		HouseholdID: m.HouseholdID,
		Email:       m.Email,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Phone:       m.Phone,
		AvatarURL:   m.AvatarURL,
		IsPrimary:   m.IsPrimary,
		Verified:    m.Verified,
		CreatedAt:   m.CreatedAt,
	}
}

type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
