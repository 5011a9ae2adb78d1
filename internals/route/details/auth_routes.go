package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "kidride_backend/internals/features/users/controller"
	middlewares "kidride_backend/internals/middlewares"
)

// AuthRoutes: public token exchange (Google ID token -> first-party JWT).
func AuthRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := userController.NewAuthController(db, v)

	auth := api.Group("/auth", middlewares.AuthRateLimiter())
	auth.Post("/session", ctl.CreateSession)
}
