package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kidController "kidride_backend/internals/features/kids/controller"
	ossHelper "kidride_backend/internals/helpers/oss"
)

func KidRoutes(private fiber.Router, db *gorm.DB, v *validator.Validate, oss *ossHelper.OSSService) {
	ctl := kidController.New(db, v, oss)

	kids := private.Group("/kids")
	kids.Post("/", ctl.Create)
	kids.Get("/", ctl.List)
	kids.Post("/avatar/upload-url", ctl.AvatarUploadURL)
	kids.Get("/:id/avatar", ctl.GetAvatar)
}
