// internals/middlewares/auth/auth_middleware_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ithra_backend/internals/configs"
	"ithra_backend/internals/constants"
	helper "ithra_backend/internals/helpers"
)

func newGuardedApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = "test-secret"

	app := fiber.New()
	app.Get("/private", AuthRequired(), func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "ok", fiber.Map{"role": helper.GetAdminRole(c)})
	})
	app.Get("/super", AuthRequired(),
		OnlyRoles(constants.ErrOnlySuperAdmin, constants.SuperAdminOnly...),
		func(c *fiber.Ctx) error {
			return helper.JsonOK(c, "ok", nil)
		})
	app.Get("/optional", AuthOptional(), func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "ok", fiber.Map{"role": helper.GetAdminRole(c)})
	})
	return app
}

func signedToken(t *testing.T, role string, now time.Time) string {
	t.Helper()
	token, err := helper.SignAccessToken(uuid.New(), "admin@example.com", role, now)
	require.NoError(t, err)
	return token
}

func TestAuthRequired(t *testing.T) {
	app := newGuardedApp(t)

	t.Run("no token gets 401", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("cookie token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{
			Name:  helper.AccessTokenCookie,
			Value: signedToken(t, constants.RoleAdmin, time.Now()),
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("bearer fallback passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signedToken(t, constants.RoleAdmin, time.Now()))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("expired token gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{
			Name:  helper.AccessTokenCookie,
			Value: signedToken(t, constants.RoleAdmin, time.Now().Add(-48*time.Hour)),
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("tampered token gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{
			Name:  helper.AccessTokenCookie,
			Value: signedToken(t, constants.RoleAdmin, time.Now()) + "x",
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestOnlyRoles(t *testing.T) {
	app := newGuardedApp(t)

	t.Run("admin blocked from super route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/super", nil)
		req.AddCookie(&http.Cookie{
			Name:  helper.AccessTokenCookie,
			Value: signedToken(t, constants.RoleAdmin, time.Now()),
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("super admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/super", nil)
		req.AddCookie(&http.Cookie{
			Name:  helper.AccessTokenCookie,
			Value: signedToken(t, constants.RoleSuperAdmin, time.Now()),
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestAuthOptional(t *testing.T) {
	app := newGuardedApp(t)

	t.Run("anonymous passes with empty role", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/optional", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("bad token still passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/optional", nil)
		req.AddCookie(&http.Cookie{Name: helper.AccessTokenCookie, Value: "not-a-jwt"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
