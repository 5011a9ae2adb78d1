package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kidride_backend/internals/constants"
	kidDTO "kidride_backend/internals/features/kids/dto"
	kidModel "kidride_backend/internals/features/kids/model"
	kidService "kidride_backend/internals/features/kids/service"
	helper "kidride_backend/internals/helpers"
	helperAuth "kidride_backend/internals/helpers/auth"
	ossHelper "kidride_backend/internals/helpers/oss"
)

type KidController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	OSS      *ossHelper.OSSService
}

func New(db *gorm.DB, v *validator.Validate, oss *ossHelper.OSSService) *KidController {
	return &KidController{DB: db, Validate: v, OSS: oss}
}

// kidBelongsToUser: household membership or direct parent link.
func kidBelongsToUser(kid *kidModel.KidModel, rc helperAuth.RequestContext) bool {
	if kid == nil {
		return false
	}
	if kid.HouseholdID != nil && rc.HouseholdID == *kid.HouseholdID {
		return true
	}
	if kid.ParentUserID != nil && rc.UserID == *kid.ParentUserID {
		return true
	}
	return false
}

/* =========================
   POST /kids
   ========================= */

func (ctl *KidController) Create(c *fiber.Ctx) error {
	rc := helperAuth.GetRequestContext(c)
	if !rc.IsAuthenticated {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	var req kidDTO.CreateKidRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if req.FirstName == "" {
		log.Printf("[Kid.Create] first_name is required")
		return helper.JsonError(c, fiber.StatusBadRequest, "first_name is required")
	}

	kid := kidModel.KidModel{
		FirstName: req.FirstName,
		Gender:    req.Gender,
		AvatarURL: req.AvatarURL,
	}

	if req.Dob != nil && *req.Dob != "" {
		dob, err := helper.ParseISODate(*req.Dob, "dob")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "dob must be ISO date (YYYY-MM-DD)")
		}
		kid.Dob = &dob
	}

	householdID := rc.HouseholdID
	if req.HouseholdID != nil {
		householdID = *req.HouseholdID
	}
	if householdID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "household_id is required (either on user or payload)")
	}
	kid.HouseholdID = &householdID
	kid.ParentUserID = &rc.UserID

	if err := ctl.DB.WithContext(c.Context()).Create(&kid).Error; err != nil {
		log.Printf("[Kid.Create] DB error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create kid")
	}

	return helper.JsonCreated(c, "Kid created", kidDTO.FromModel(&kid))
}

/* =========================
   GET /kids
   ========================= */

func (ctl *KidController) List(c *fiber.Ctx) error {
	rc := helperAuth.GetRequestContext(c)
	if !rc.IsAuthenticated {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	householdID := rc.HouseholdID
	if raw := c.Query("household_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			householdID = id
		}
	}

	kids, err := kidService.ListKidsForUser(ctl.DB.WithContext(c.Context()), householdID, rc.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", kidDTO.FromModels(kids))
}

/* =========================
   Avatar upload flow
   ========================= */

// POST /kids/avatar/upload-url
func (ctl *KidController) AvatarUploadURL(c *fiber.Ctx) error {
	rc := helperAuth.GetRequestContext(c)
	if !rc.IsAuthenticated {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	var req kidDTO.KidAvatarUploadURLRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.KidID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "kid_id is required")
	}
	if !constants.IsAllowedAvatarExt(req.FileName) {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.ErrAvatarFileNameNotImage)
	}
	if !constants.IsAllowedAvatarContentType(req.ContentType) {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.ErrAvatarContentTypeNotImage)
	}

	var kid kidModel.KidModel
	if err := ctl.DB.WithContext(c.Context()).Where("id = ?", req.KidID).First(&kid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kid not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !kidBelongsToUser(&kid, rc) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized for this kid")
	}

	if ctl.OSS == nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create upload URL")
	}

	key := ctl.OSS.AvatarKey("kids", kid.ID.String(), req.FileName)
	presigned, err := ctl.OSS.SignUploadURL(key, req.ContentType)
	if err != nil {
		log.Printf("[Kid.AvatarUploadURL] sign error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create upload URL")
	}

	if err := ctl.DB.WithContext(c.Context()).Model(&kid).
		Update("avatar_url", presigned.PublicURL).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Upload URL created", fiber.Map{
		"kid_id":     kid.ID,
		"upload_url": presigned.UploadURL,
		"expires_in": presigned.ExpiresIn,
		"key":        presigned.Key,
		"avatar_url": presigned.PublicURL,
	})
}

// GET /kids/:id/avatar
func (ctl *KidController) GetAvatar(c *fiber.Ctx) error {
	rc := helperAuth.GetRequestContext(c)
	if !rc.IsAuthenticated {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	kidID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "kid_id is required")
	}

	var kid kidModel.KidModel
	if err := ctl.DB.WithContext(c.Context()).Where("id = ?", kidID).First(&kid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kid not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !kidBelongsToUser(&kid, rc) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized for this kid")
	}

	if kid.AvatarURL == nil || *kid.AvatarURL == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Avatar not set for this kid")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"kid_id":     kid.ID,
		"avatar_url": *kid.AvatarURL,
	})
}
