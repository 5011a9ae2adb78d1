package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kidride_backend/internals/constants"
	hhDTO "kidride_backend/internals/features/households/dto"
	hhModel "kidride_backend/internals/features/households/model"
	userModel "kidride_backend/internals/features/users/model"
	helper "kidride_backend/internals/helpers"
	helperAuth "kidride_backend/internals/helpers/auth"
	ossHelper "kidride_backend/internals/helpers/oss"
)

type HouseholdController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	OSS      *ossHelper.OSSService // nil when object storage is not configured
}

func New(db *gorm.DB, v *validator.Validate, oss *ossHelper.OSSService) *HouseholdController {
	return &HouseholdController{DB: db, Validate: v, OSS: oss}
}

/* =========================
   POST /households
   Creates the household and attaches the caller as its primary member.
   ========================= */

func (ctl *HouseholdController) Create(c *fiber.Ctx) error {
	rc := helperAuth.GetRequestContext(c)
	if !rc.IsAuthenticated {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	var req hhDTO.CreateHouseholdRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if req.Name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "name is required")
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	household := req.ToModel()

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.Create(household).Error; er != nil {
			return er
		}
		// first member becomes primary
		return tx.Model(&userModel.UserModel{}).
			Where("id = ?", rc.UserID).
			Updates(map[string]any{"household_id": household.ID, "is_primary": true}).Error
	}); err != nil {
		log.Printf("[Household.Create] tx error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create household")
	}

	return helper.JsonCreated(c, "Household created", hhDTO.FromModel(household))
}

/* =========================
   GET /households/me
   ========================= */

func (ctl *HouseholdController) GetMyHousehold(c *fiber.Ctx) error {
	rc := helperAuth.GetRequestContext(c)
	if !rc.IsAuthenticated {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !rc.HasHousehold() {
		return helper.JsonError(c, fiber.StatusNotFound, "Household not found")
	}

	var household hhModel.HouseholdModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("id = ?", rc.HouseholdID).First(&household).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Household not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", hhDTO.FromModel(&household))
}

/* =========================
   Avatar upload flow
   ========================= */

// authorizeHouseholdAccess: membership check; 404 unknown, 403 non-member.
func (ctl *HouseholdController) authorizeHouseholdAccess(c *fiber.Ctx, householdID uuid.UUID, rc helperAuth.RequestContext) (*hhModel.HouseholdModel, *fiber.Error) {
	if householdID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "household_id is required")
	}

	var household hhModel.HouseholdModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("id = ?", householdID).First(&household).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Household not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if rc.HouseholdID != household.ID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Not authorized for this household")
	}
	return &household, nil
}

// POST /households/avatar/upload-url
func (ctl *HouseholdController) AvatarUploadURL(c *fiber.Ctx) error {
	rc := helperAuth.GetRequestContext(c)
	if !rc.IsAuthenticated {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	var req hhDTO.AvatarUploadURLRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if !constants.IsAllowedAvatarExt(req.FileName) {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.ErrAvatarFileNameNotImage)
	}
	if !constants.IsAllowedAvatarContentType(req.ContentType) {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.ErrAvatarContentTypeNotImage)
	}

	householdID := rc.HouseholdID
	if req.HouseholdID != nil {
		householdID = *req.HouseholdID
	}

	household, ferr := ctl.authorizeHouseholdAccess(c, householdID, rc)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	if ctl.OSS == nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create upload URL")
	}

	key := ctl.OSS.AvatarKey("households", household.ID.String(), req.FileName)
	presigned, err := ctl.OSS.SignUploadURL(key, req.ContentType)
	if err != nil {
		log.Printf("[Household.AvatarUploadURL] sign error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create upload URL")
	}

	if err := ctl.DB.WithContext(c.Context()).Model(household).
		Update("avatar_url", presigned.PublicURL).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Upload URL created", fiber.Map{
		"household_id": household.ID,
		"upload_url":   presigned.UploadURL,
		"expires_in":   presigned.ExpiresIn,
		"key":          presigned.Key,
		"avatar_url":   presigned.PublicURL,
	})
}

// GET /households/:id/avatar
func (ctl *HouseholdController) GetAvatar(c *fiber.Ctx) error {
	rc := helperAuth.GetRequestContext(c)
	if !rc.IsAuthenticated {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	householdID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "household_id is required")
	}

	household, ferr := ctl.authorizeHouseholdAccess(c, householdID, rc)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	if household.AvatarURL == nil || *household.AvatarURL == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Avatar not set for this household")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"household_id": household.ID,
		"avatar_url":   *household.AvatarURL,
	})
}
