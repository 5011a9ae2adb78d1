package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	vehicleDTO "kidride_backend/internals/features/vehicles/dto"
	vehicleModel "kidride_backend/internals/features/vehicles/model"
	helper "kidride_backend/internals/helpers"
	helperAuth "kidride_backend/internals/helpers/auth"
)

type VehicleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *VehicleController {
	return &VehicleController{DB: db, Validate: v}
}

/* =========================
   POST /vehicles
   ========================= */

func (ctl *VehicleController) Create(c *fiber.Ctx) error {
	rc, ferr := helperAuth.RequireHousehold(c)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var req vehicleDTO.CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	vehicle := req.ToModel(rc.HouseholdID)
	if err := ctl.DB.WithContext(c.Context()).Create(vehicle).Error; err != nil {
		log.Printf("[Vehicle.Create] DB error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create vehicle")
	}

	return helper.JsonCreated(c, "Vehicle created", vehicleDTO.FromModel(vehicle))
}

/* =========================
   GET /vehicles
   ========================= */

func (ctl *VehicleController) List(c *fiber.Ctx) error {
	rc, ferr := helperAuth.RequireHousehold(c)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var vehicles []vehicleModel.VehicleModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("household_id = ?", rc.HouseholdID).
		Order("created_at DESC").
		Find(&vehicles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", vehicleDTO.FromModels(vehicles))
}
