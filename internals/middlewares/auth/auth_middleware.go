// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"ithra_backend/internals/configs"
	"ithra_backend/internals/constants"
	helper "ithra_backend/internals/helpers"
)

// AuthRequired memverifikasi JWT dari cookie access_token (atau Bearer)
// lalu mengisi Locals admin_id / admin_email / admin_role.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := verify(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.ErrLoginRequired)
		}
		hydrateLocals(c, claims)
		return c.Next()
	}
}

// AuthOptional seperti AuthRequired tapi request tanpa sesi tetap lolos.
// Dipakai alur create publik: wali murid boleh submit tanpa login.
func AuthOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, err := verify(c); err == nil {
			hydrateLocals(c, claims)
		}
		return c.Next()
	}
}

func verify(c *fiber.Ctx) (jwt.MapClaims, error) {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return nil, errors.New("missing token")
	}

	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return nil, errors.New("JWT_SECRET kosong")
	}

	claims, err := helper.ParseAccessToken(raw, secret)
	if err != nil {
		return nil, err
	}

	// Validasi exp manual biar pesan seragam
	if exp, ok := claims["exp"].(float64); !ok || time.Now().Unix() >= int64(exp) {
		return nil, errors.New("token expired")
	}
	return claims, nil
}

func hydrateLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["sub"].(string); ok {
		c.Locals(helper.LocAdminID, v)
	}
	if v, ok := claims["email"].(string); ok {
		c.Locals(helper.LocAdminEmail, v)
	}
	if v, ok := claims["role"].(string); ok {
		c.Locals(helper.LocAdminRole, v)
	}
}
