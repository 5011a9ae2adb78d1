package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	vehicleController "kidride_backend/internals/features/vehicles/controller"
)

func VehicleRoutes(private fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := vehicleController.New(db, v)

	vehicles := private.Group("/vehicles")
	vehicles.Post("/", ctl.Create)
	vehicles.Get("/", ctl.List)
}
