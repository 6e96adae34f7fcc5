package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "ithra_backend/internals/helpers"
)

// OnlyRoles validasi role dari Locals + custom error message.
// Route guard berdiri sendiri: tetap dijalankan walau handler lain
// sudah cek role (lihat SuperAdminRoute di front-end lama).
func OnlyRoles(customForbiddenMessage string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetAdminRole(c)
		if role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}
