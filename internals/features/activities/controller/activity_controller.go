package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityDTO "kidride_backend/internals/features/activities/dto"
	"kidride_backend/internals/features/activities/service"
	helper "kidride_backend/internals/helpers"
	helperAuth "kidride_backend/internals/helpers/auth"
)

type ActivityController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ActivityController {
	return &ActivityController{DB: db, Validate: v}
}

func parseActivityID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

/* =========================
   POST /activities
   ========================= */

func (ctl *ActivityController) Create(c *fiber.Ctx) error {
	rc, ferr := helperAuth.RequireHousehold(c)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	req, _, err := activityDTO.ParseActivityBody(c.Body())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	activity, ferr := service.CreateActivity(
		ctl.DB.WithContext(c.Context()),
		rc.HouseholdID, rc.UserID,
		req.ToInput(),
	)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	return helper.JsonCreated(c, "Activity created", activityDTO.FromActivityModel(activity))
}

/* =========================
   GET /activities
   ========================= */

func (ctl *ActivityController) List(c *fiber.Ctx) error {
	rc, ferr := helperAuth.RequireHousehold(c)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	activities, err := service.ListActivitiesForHousehold(ctl.DB.WithContext(c.Context()), rc.HouseholdID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load activities")
	}

	return helper.JsonOK(c, "ok", activityDTO.FromActivityModels(activities))
}

/* =========================
   GET /activities/:id
   ========================= */

func (ctl *ActivityController) GetByID(c *fiber.Ctx) error {
	rc, ferr := helperAuth.RequireHousehold(c)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	id, ok := parseActivityID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
	}

	activity, ferr := service.GetActivityForHousehold(ctl.DB.WithContext(c.Context()), id, rc.HouseholdID)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	return helper.JsonOK(c, "ok", activityDTO.FromActivityModel(activity))
}

/* =========================
   PATCH /activities/:id
   ========================= */

func (ctl *ActivityController) Patch(c *fiber.Ctx) error {
	rc, ferr := helperAuth.RequireHousehold(c)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	id, ok := parseActivityID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
	}

	req, present, err := activityDTO.ParseActivityBody(c.Body())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	activity, ferr := service.UpdateActivity(
		ctl.DB.WithContext(c.Context()),
		id, rc.HouseholdID,
		req.ToInput(), present,
	)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	return helper.JsonUpdated(c, "Activity updated", activityDTO.FromActivityModel(activity))
}

/* =========================
   DELETE /activities/:id
   ========================= */

func (ctl *ActivityController) Delete(c *fiber.Ctx) error {
	rc, ferr := helperAuth.RequireHousehold(c)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	id, ok := parseActivityID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
	}

	if ferr := service.DeleteActivity(ctl.DB.WithContext(c.Context()), id, rc.HouseholdID); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	return helper.JsonDeleted(c, "Activity deleted", fiber.Map{"id": id})
}
