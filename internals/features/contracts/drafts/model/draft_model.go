// internals/features/contracts/drafts/model/draft_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Kunci draft yang dikenal. Satu baris = satu sub-objek form milik satu
// sesi pengisian (cookie draft_session). Write-through: setiap perubahan
// menimpa baris utuh, tidak ada merge parsial.
const (
	DraftKeyGuardian       = "guardian"
	DraftKeyContractEditor = "contractEditor"
	DraftKeyStudent        = "student"
	DraftKeyPayment        = "payment"
	DraftKeyContractData   = "contractData"
)

var AllDraftKeys = []string{
	DraftKeyGuardian,
	DraftKeyContractEditor,
	DraftKeyStudent,
	DraftKeyPayment,
	DraftKeyContractData,
}

func IsDraftKey(key string) bool {
	for _, k := range AllDraftKeys {
		if k == key {
			return true
		}
	}
	return false
}

type ContractDraftModel struct {
	ContractDraftID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:contract_draft_id" json:"contract_draft_id"`
	ContractDraftSessionID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_contract_drafts_session_key;column:contract_draft_session_id" json:"contract_draft_session_id"`
	ContractDraftKey       string         `gorm:"type:varchar(32);not null;uniqueIndex:uq_contract_drafts_session_key;column:contract_draft_key" json:"contract_draft_key"`
	ContractDraftValue     datatypes.JSON `gorm:"type:jsonb;not null;column:contract_draft_value" json:"contract_draft_value"`
	ContractDraftUpdatedAt time.Time      `gorm:"column:contract_draft_updated_at;autoUpdateTime" json:"contract_draft_updated_at"`
}

func (ContractDraftModel) TableName() string { return "contract_drafts" }
