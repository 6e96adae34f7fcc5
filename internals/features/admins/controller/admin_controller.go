// file: internals/features/admins/controller/admin_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ithra_backend/internals/constants"
	"ithra_backend/internals/features/admins/dto"
	"ithra_backend/internals/features/admins/model"
	helper "ithra_backend/internals/helpers"
)

type AdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Validate: validator.New()}
}

// GET /api/admin/get-admins (super_admin)
// Key "admins" (bukan "data") dipertahankan; halaman manajemen lama
// membacanya langsung.
func (ctl *AdminController) GetAdmins(c *fiber.Ctx) error {
	var rows []model.AdminModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("admin_created_at ASC").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] ambil daftar admin gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في جلب المشرفين")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"admins":  dto.FromModels(rows),
	})
}

// POST /api/admin/create-admin (super_admin)
func (ctl *AdminController) CreateAdmin(c *fiber.Ctx) error {
	var req dto.AdminRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "طلب غير صالح")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if strings.TrimSpace(req.Password) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "يرجى إدخال كلمة المرور")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] hash password gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في إنشاء المشرف")
	}

	role := req.Role
	if role == "" {
		role = constants.RoleAdmin
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	ent := model.AdminModel{
		AdminEmail:    req.Email,
		AdminPassword: string(hashed),
		AdminRole:     role,
		AdminIsActive: isActive,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&ent).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "البريد الإلكتروني مستخدم بالفعل")
		}
		log.Println("[ERROR] simpan admin gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في إنشاء المشرف")
	}

	log.Printf("[SUCCESS] admin %s (%s) dibuat", ent.AdminEmail, ent.AdminRole)
	return helper.JsonCreated(c, "تم إنشاء المشرف بنجاح", dto.FromModel(ent))
}

// PUT /api/admin/edit-admin/:id (super_admin)
// Password kosong = tidak diganti.
func (ctl *AdminController) UpdateAdmin(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "معرف المشرف غير صالح")
	}

	var req dto.AdminRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "طلب غير صالح")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.AdminModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&ent, "admin_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "المشرف غير موجود")
		}
		log.Println("[ERROR] ambil admin gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في تحديث المشرف")
	}

	// Super admin terakhir tidak boleh diturunkan jadi admin biasa,
	// supaya selalu ada yang bisa mengelola.
	if ent.AdminRole == constants.RoleSuperAdmin &&
		req.Role != "" && req.Role != constants.RoleSuperAdmin {
		count, err := ctl.countSuperAdmins(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في تحديث المشرف")
		}
		if count <= 1 {
			return helper.JsonError(c, fiber.StatusConflict, "لا يمكن تغيير صلاحية آخر مدير عام")
		}
	}

	ent.AdminEmail = req.Email
	if req.Role != "" {
		ent.AdminRole = req.Role
	}
	if req.IsActive != nil {
		ent.AdminIsActive = *req.IsActive
	}
	if strings.TrimSpace(req.Password) != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("[ERROR] hash password gagal:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في تحديث المشرف")
		}
		ent.AdminPassword = string(hashed)
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&ent).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "البريد الإلكتروني مستخدم بالفعل")
		}
		log.Println("[ERROR] update admin gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في تحديث المشرف")
	}

	return helper.JsonUpdated(c, "تم تحديث المشرف بنجاح", dto.FromModel(ent))
}

// DELETE /api/admin/delete-admin/:id (super_admin)
// Dua pagar: tidak boleh hapus diri sendiri, tidak boleh hapus super
// admin terakhir.
func (ctl *AdminController) DeleteAdmin(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "معرف المشرف غير صالح")
	}

	selfID, err := helper.GetAdminID(c)
	if err == nil && selfID == id {
		return helper.JsonError(c, fiber.StatusConflict, "لا يمكنك حذف حسابك الخاص")
	}

	var ent model.AdminModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&ent, "admin_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "المشرف غير موجود")
		}
		log.Println("[ERROR] ambil admin gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في حذف المشرف")
	}

	if ent.AdminRole == constants.RoleSuperAdmin {
		count, err := ctl.countSuperAdmins(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في حذف المشرف")
		}
		if count <= 1 {
			return helper.JsonError(c, fiber.StatusConflict, "لا يمكن حذف آخر مدير عام")
		}
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&ent).Error; err != nil {
		log.Println("[ERROR] hapus admin gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في حذف المشرف")
	}

	log.Printf("[SUCCESS] admin %s dihapus", ent.AdminEmail)
	return helper.JsonDeleted(c, "تم حذف المشرف بنجاح", fiber.Map{"_id": id})
}

func (ctl *AdminController) countSuperAdmins(c *fiber.Ctx) (int64, error) {
	var count int64
	err := ctl.DB.WithContext(c.Context()).
		Model(&model.AdminModel{}).
		Where("admin_role = ?", constants.RoleSuperAdmin).
		Count(&count).Error
	if err != nil {
		log.Println("[ERROR] hitung super admin gagal:", err)
	}
	return count, err
}
