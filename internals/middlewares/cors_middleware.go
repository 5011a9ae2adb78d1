package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"kidride_backend/internals/configs"
)

// CorsMiddleware builds the CORS middleware from CORS_ALLOW_ORIGINS.
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: configs.CORSAllowOrigins(),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}
