package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "kidride_backend/internals/features/users/dto"
	userService "kidride_backend/internals/features/users/service"
	helper "kidride_backend/internals/helpers"
	helperAuth "kidride_backend/internals/helpers/auth"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

/* =========================
   GET /users/me
   ========================= */

func (ctl *UserController) Me(c *fiber.Ctx) error {
	rc := helperAuth.GetRequestContext(c)
	if !rc.IsAuthenticated {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	user, err := userService.FindUserByID(ctl.DB.WithContext(c.Context()), rc.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", userDTO.FromUserModel(user))
}
