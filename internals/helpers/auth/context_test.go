package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHandler(t *testing.T, handler fiber.Handler) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
}

func TestRequestContextRoundTrip(t *testing.T) {
	userID := uuid.New()
	householdID := uuid.New()

	runHandler(t, func(c *fiber.Ctx) error {
		SetRequestContext(c, userID, householdID)

		rc := GetRequestContext(c)
		assert.True(t, rc.IsAuthenticated)
		assert.Equal(t, userID, rc.UserID)
		assert.Equal(t, householdID, rc.HouseholdID)
		assert.True(t, rc.HasHousehold())
		return nil
	})
}

func TestRequireHousehold(t *testing.T) {
	userID := uuid.New()
	householdID := uuid.New()

	runHandler(t, func(c *fiber.Ctx) error {
		SetRequestContext(c, userID, householdID)

		rc, ferr := RequireHousehold(c)
		require.Nil(t, ferr)
		assert.Equal(t, householdID, rc.HouseholdID)
		return nil
	})
}

func TestRequireHousehold_Unauthenticated(t *testing.T) {
	runHandler(t, func(c *fiber.Ctx) error {
		_, ferr := RequireHousehold(c)
		require.NotNil(t, ferr)
		assert.Equal(t, fiber.StatusUnauthorized, ferr.Code)
		assert.Equal(t, "User not found", ferr.Message)
		return nil
	})
}

func TestRequireHousehold_NoHousehold(t *testing.T) {
	runHandler(t, func(c *fiber.Ctx) error {
		SetRequestContext(c, uuid.New(), uuid.Nil)

		_, ferr := RequireHousehold(c)
		require.NotNil(t, ferr)
		assert.Equal(t, fiber.StatusBadRequest, ferr.Code)
		assert.Equal(t, "User must belong to a household", ferr.Message)
		return nil
	})
}
