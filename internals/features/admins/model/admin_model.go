// internals/features/admins/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	// PK
	AdminID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admin_id" json:"admin_id"`

	// Kredensial
	AdminEmail    string `gorm:"type:varchar(120);unique;not null;column:admin_email" json:"admin_email"`
	AdminPassword string `gorm:"type:varchar(120);not null;column:admin_password" json:"-"`

	// "admin" atau "super_admin" (lihat constants.AllRoles)
	AdminRole     string `gorm:"type:varchar(20);not null;default:'admin';column:admin_role" json:"admin_role"`
	AdminIsActive bool   `gorm:"not null;default:true;column:admin_is_active" json:"admin_is_active"`

	// Audit
	AdminCreatedAt time.Time      `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt *time.Time     `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at,omitempty"`
	AdminDeletedAt gorm.DeletedAt `gorm:"column:admin_deleted_at;index" json:"admin_deleted_at,omitempty"`
}

func (AdminModel) TableName() string { return "admins" }
