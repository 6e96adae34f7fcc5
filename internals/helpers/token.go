// file: internals/helpers/token.go
package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"ithra_backend/internals/configs"
)

const (
	AccessTokenCookie = "access_token"
	AccessTokenTTL    = 24 * time.Hour

	// Locals keys yang diisi middleware auth
	LocAdminID    = "admin_id"
	LocAdminEmail = "admin_email"
	LocAdminRole  = "admin_role"
)

// GetRawAccessToken mengembalikan access token dari:
// 1) cookie "access_token"
// 2) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(AccessTokenCookie)); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// SignAccessToken membuat JWT HS256 berisi identitas admin.
func SignAccessToken(adminID uuid.UUID, email, role string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   adminID.String(),
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(AccessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// ParseAccessToken memverifikasi tanda tangan + algoritma dan mengembalikan claims.
func ParseAccessToken(raw, secret string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	return claims, nil
}

// SetAuthCookie menempel cookie sesi admin (HTTPOnly, SameSite=None).
func SetAuthCookie(c *fiber.Ctx, accessToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(AccessTokenTTL),
	})
}

// ClearAuthCookie menghapus cookie sesi (logout).
func ClearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
}

// GetAdminID membaca admin_id hasil middleware auth dari Locals.
func GetAdminID(c *fiber.Ctx) (uuid.UUID, error) {
	s, ok := c.Locals(LocAdminID).(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid admin ID in context")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}
	return id, nil
}

// GetAdminRole membaca role hasil middleware auth dari Locals.
func GetAdminRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocAdminRole).(string); ok {
		return s
	}
	return ""
}
