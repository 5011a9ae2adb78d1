package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "kidride_backend/internals/features/activities/controller"
)

func ActivityRoutes(private fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := activityController.New(db, v)

	activities := private.Group("/activities")
	activities.Post("/", ctl.Create)
	activities.Get("/", ctl.List)
	activities.Get("/:id", ctl.GetByID)
	activities.Patch("/:id", ctl.Patch)
	activities.Delete("/:id", ctl.Delete)
}
