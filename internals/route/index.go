package routes

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kidride_backend/internals/configs"
	ossHelper "kidride_backend/internals/helpers/oss"
	authMiddleware "kidride_backend/internals/middlewares/auth"
	routeDetails "kidride_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, oss *ossHelper.OSSService) {
	startTime = time.Now()

	validate := validator.New()

	BaseRoutes(app, db)

	api := app.Group("/api/v1")

	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})

	// ===================== AUTH (public, rate limited) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, db, validate)

	// ===================== PRIVATE =====================
	// Everything registered after this Use goes through the auth middleware;
	// the token-exchange route above stays public.
	log.Println("[INFO] Setting up PRIVATE group...")
	api.Use(authMiddleware.AuthRequired(db, authMiddleware.AuthOpts{
		JWTSecret:      configs.JWTSecret,
		GoogleClientID: configs.GoogleClientID,
		DevBypass:      configs.AuthDevBypass,
	}))
	private := api

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(private, db, validate)

	log.Println("[INFO] Mounting Household routes...")
	routeDetails.HouseholdRoutes(private, db, validate, oss)

	log.Println("[INFO] Mounting Kid routes...")
	routeDetails.KidRoutes(private, db, validate, oss)

	log.Println("[INFO] Mounting Vehicle routes...")
	routeDetails.VehicleRoutes(private, db, validate)

	log.Println("[INFO] Mounting Activity routes...")
	routeDetails.ActivityRoutes(private, db, validate)
}
