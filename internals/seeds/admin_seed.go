// file: internals/seeds/admin_seed.go
package seeds

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ithra_backend/internals/configs"
	"ithra_backend/internals/constants"
	"ithra_backend/internals/features/admins/model"
)

// SeedSuperAdmin membuat akun super_admin pertama dari env
// SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD. Tanpa env ini, sistem baru
// tidak punya cara login sama sekali.
func SeedSuperAdmin(db *gorm.DB) error {
	email := configs.SeedAdminEmail
	password := configs.SeedAdminPassword
	if email == "" || password == "" {
		log.Println("⏭️  SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD kosong, lewati seed admin")
		return nil
	}

	var existing model.AdminModel
	err := db.Where("admin_email = ?", email).First(&existing).Error
	if err == nil {
		return nil // sudah ada
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.AdminModel{
		AdminEmail:    email,
		AdminPassword: string(hashed),
		AdminRole:     constants.RoleSuperAdmin,
		AdminIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Super admin %s dibuat", email)
	return nil
}
