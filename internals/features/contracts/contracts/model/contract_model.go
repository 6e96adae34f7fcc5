// internals/features/contracts/contracts/model/contract_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContractModel = satu pengajuan kontrak pendaftaran siswa.
// Empat sub-objek form disimpan apa adanya sebagai JSONB; bentuknya
// divalidasi di DTO sebelum masuk ke sini.
type ContractModel struct {
	// PK
	ContractID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:contract_id" json:"contract_id"`

	// Tahun ajaran terpilih, format "<masehi>_<hijri>" mis. "2024-2025_1446-1447"
	ContractYear string `gorm:"type:varchar(24);not null;column:contract_year" json:"contract_year"`

	// Sub-objek form (lihat dto.GuardianDTO dkk)
	ContractGuardian datatypes.JSON `gorm:"type:jsonb;not null;column:contract_guardian" json:"contract_guardian"`
	ContractEditor   datatypes.JSON `gorm:"type:jsonb;not null;column:contract_editor" json:"contract_editor"`
	ContractStudent  datatypes.JSON `gorm:"type:jsonb;not null;column:contract_student" json:"contract_student"`
	ContractPayment  datatypes.JSON `gorm:"type:jsonb;not null;column:contract_payment" json:"contract_payment"`

	// Audit
	ContractCreatedAt time.Time      `gorm:"column:contract_created_at;autoCreateTime" json:"contract_created_at"`
	ContractUpdatedAt *time.Time     `gorm:"column:contract_updated_at;autoUpdateTime" json:"contract_updated_at,omitempty"`
	ContractDeletedAt gorm.DeletedAt `gorm:"column:contract_deleted_at;index" json:"contract_deleted_at,omitempty"`
}

func (ContractModel) TableName() string { return "contracts" }
