package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	householdController "kidride_backend/internals/features/households/controller"
	ossHelper "kidride_backend/internals/helpers/oss"
)

func HouseholdRoutes(private fiber.Router, db *gorm.DB, v *validator.Validate, oss *ossHelper.OSSService) {
	ctl := householdController.New(db, v, oss)

	households := private.Group("/households")
	households.Post("/", ctl.Create)
	households.Get("/me", ctl.GetMyHousehold)
	households.Post("/avatar/upload-url", ctl.AvatarUploadURL)
	households.Get("/:id/avatar", ctl.GetAvatar)
}
