package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"kidride_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain (order matters:
// recovery first so panics in the others are caught too).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
