// file: internals/features/admins/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ithra_backend/internals/features/admins/dto"
	"ithra_backend/internals/features/admins/model"
	helper "ithra_backend/internals/helpers"
)

const errBadCredentials = "البريد الإلكتروني أو كلمة المرور غير صحيحة"

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/admin/login
// Respons gagal sengaja seragam: tidak membocorkan apakah email terdaftar.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "طلب غير صالح")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "يرجى إدخال البريد الإلكتروني وكلمة المرور")
	}

	var admin model.AdminModel
	err := ctl.DB.WithContext(c.Context()).
		Where("admin_email = ?", req.Email).
		First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, errBadCredentials)
	}
	if err != nil {
		log.Println("[ERROR] ambil admin gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في تسجيل الدخول")
	}

	if !admin.AdminIsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, errBadCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, errBadCredentials)
	}

	now := time.Now()
	token, err := helper.SignAccessToken(admin.AdminID, admin.AdminEmail, admin.AdminRole, now)
	if err != nil {
		log.Println("[ERROR] sign token gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في تسجيل الدخول")
	}
	helper.SetAuthCookie(c, token, now)

	log.Printf("[SUCCESS] login %s (%s)", admin.AdminEmail, admin.AdminRole)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "تم تسجيل الدخول بنجاح",
		"user": fiber.Map{
			"id":    admin.AdminID,
			"email": admin.AdminEmail,
			"role":  admin.AdminRole,
		},
	})
}

// POST /api/admin/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	helper.ClearAuthCookie(c)
	return helper.JsonOK(c, "تم تسجيل الخروج بنجاح", nil)
}

// GET /api/auth-check
// Front-end memanggil ini saat mount untuk tahu apakah cookie masih hidup.
func (ctl *AuthController) AuthCheck(c *fiber.Ctx) error {
	adminID, err := helper.GetAdminID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "انتهت الجلسة")
	}

	email, _ := c.Locals(helper.LocAdminEmail).(string)
	role := helper.GetAdminRole(c)

	// Key "user" di level atas (bukan di dalam "data"): halaman admin lama
	// membaca response.user langsung.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":    adminID,
			"email": email,
			"role":  role,
		},
	})
}
