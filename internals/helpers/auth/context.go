package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID        = "user_id"
	LocHouseholdID   = "household_id"
	LocAuthenticated = "is_authenticated"
)

// RequestContext is the typed identity attached to every authenticated request.
type RequestContext struct {
	UserID          uuid.UUID
	HouseholdID     uuid.UUID // uuid.Nil when the user has no household yet
	IsAuthenticated bool
}

func (rc RequestContext) HasHousehold() bool {
	return rc.HouseholdID != uuid.Nil
}

// SetRequestContext stores the identity in fiber locals (middleware side).
func SetRequestContext(c *fiber.Ctx, userID, householdID uuid.UUID) {
	c.Locals(LocUserID, userID)
	c.Locals(LocHouseholdID, householdID)
	c.Locals(LocAuthenticated, true)
}

// GetRequestContext reads the identity back out (controller side).
func GetRequestContext(c *fiber.Ctx) RequestContext {
	rc := RequestContext{}
	if v, ok := c.Locals(LocUserID).(uuid.UUID); ok {
		rc.UserID = v
	}
	if v, ok := c.Locals(LocHouseholdID).(uuid.UUID); ok {
		rc.HouseholdID = v
	}
	if v, ok := c.Locals(LocAuthenticated).(bool); ok {
		rc.IsAuthenticated = v
	}
	return rc
}

// RequireHousehold resolves the context and enforces both auth invariants the
// household-scoped routes share.
func RequireHousehold(c *fiber.Ctx) (RequestContext, *fiber.Error) {
	rc := GetRequestContext(c)
	if !rc.IsAuthenticated || rc.UserID == uuid.Nil {
		return rc, fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}
	if !rc.HasHousehold() {
		return rc, fiber.NewError(fiber.StatusBadRequest, "User must belong to a household")
	}
	return rc, nil
}
