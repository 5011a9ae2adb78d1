package dto

import (
	"strings"

	"github.com/google/uuid"

	vehicleModel "kidride_backend/internals/features/vehicles/model"
)

type CreateVehicleRequest struct {
	Make      *string `json:"make,omitempty"`
	Model     *string `json:"model,omitempty"`
	Color     *string `json:"color,omitempty"`
	SeatCount *int    `json:"seat_count,omitempty" validate:"omitempty,gte=1,lte=20"`
}

func (r *CreateVehicleRequest) Normalize() {
	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		v := strings.TrimSpace(*p)
		return &v
	}
	r.Make = trim(r.Make)
	r.Model = trim(r.Model)
	r.Color = trim(r.Color)
}

func (r *CreateVehicleRequest) ToModel(householdID uuid.UUID) *vehicleModel.VehicleModel {
	return &vehicleModel.VehicleModel{
		HouseholdID: &householdID,
		Make:        r.Make,
		Model:       r.Model,
		Color:       r.Color,
		SeatCount:   r.SeatCount,
	}
}

type VehicleResponse struct {
	ID          uuid.UUID  `json:"id"`
	HouseholdID *uuid.UUID `json:"household_id"`
	Make        *string    `json:"make"`
	Model       *string    `json:"model"`
	Color       *string    `json:"color"`
	SeatCount   *int       `json:"seat_count"`
}

func FromModel(m *vehicleModel.VehicleModel) VehicleResponse {
	return VehicleResponse{
		ID:          m.ID,
		HouseholdID: m.HouseholdID,
		Make:        m.Make,
		Model:       m.Model,
		Color:       m.Color,
		SeatCount:   m.SeatCount,
	}
}

func FromModels(ms []vehicleModel.VehicleModel) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
