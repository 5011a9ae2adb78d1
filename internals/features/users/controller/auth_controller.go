package controller

import (
	"log"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kidride_backend/internals/configs"
	userDTO "kidride_backend/internals/features/users/dto"
	userService "kidride_backend/internals/features/users/service"
	helper "kidride_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

/* =========================
   POST /auth/session
   Exchange a Google ID token for a first-party access token.
   ========================= */

func (ctl *AuthController) CreateSession(c *fiber.Ctx) error {
	var req userDTO.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Token verification is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	if claimSet.Sub == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token missing uid")
	}

	user, err := userService.GetOrCreateUser(ctl.DB.WithContext(c.Context()),
		claimSet.Sub, strPtrOrNil(claimSet.Email), strPtrOrNil(claimSet.Name), nil)
	if err != nil {
		log.Printf("[Auth.CreateSession] upsert error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve user")
	}

	token, err := userService.IssueAccessToken(configs.JWTSecret, user)
	if err != nil {
		log.Printf("[Auth.CreateSession] token error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue access token")
	}

	return helper.JsonCreated(c, "Session created", userDTO.SessionResponse{
		AccessToken: token,
		User:        userDTO.FromUserModel(user),
	})
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
