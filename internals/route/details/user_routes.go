package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "kidride_backend/internals/features/users/controller"
)

func UserRoutes(private fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := userController.NewUserController(db, v)

	users := private.Group("/users")
	users.Get("/me", ctl.Me)
}
