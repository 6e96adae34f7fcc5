// internals/features/contracts/templates/model/contract_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContractTemplateModel = "contract variables" satu tahun ajaran:
// harga per jenjang + teks bunyi pasal yang disubstitusi ke dokumen kontrak.
//
// Butir pasal tujuh disimpan sebagai list terurut (index, text) di JSONB,
// bukan 12 kolom bernama; nama field wire lama (ClauseSeven_One..Twelve)
// dipetakan di DTO.
type ContractTemplateModel struct {
	// PK
	ContractTemplateID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:contract_template_id" json:"contract_template_id"`

	// Tahun ajaran, keduanya format "YYYY-YYYY". Satu template per pasangan
	// tahun, ditegakkan di DB (partial index supaya baris soft-delete tidak
	// memblokir pembuatan ulang tahun yang sama).
	ContractTemplateYear      string `gorm:"type:varchar(12);not null;uniqueIndex:uq_contract_templates_year_pair,where:contract_template_deleted_at IS NULL;column:contract_template_year" json:"contract_template_year"`
	ContractTemplateYearHijri string `gorm:"type:varchar(12);not null;uniqueIndex:uq_contract_templates_year_pair,where:contract_template_deleted_at IS NULL;column:contract_template_year_hijri" json:"contract_template_year_hijri"`
	ContractTemplateIsActive  bool   `gorm:"not null;default:true;column:contract_template_is_active" json:"contract_template_is_active"`

	// Pasal empat (teks bebas)
	ContractTemplateClausesFour string `gorm:"type:text;column:contract_template_clauses_four" json:"contract_template_clauses_four"`

	// Harga per jenjang: angka + terbilang
	ContractTemplateKinderPriceNumber     string `gorm:"type:varchar(24);column:contract_template_kinder_price_number" json:"contract_template_kinder_price_number"`
	ContractTemplateKinderPriceText       string `gorm:"type:text;column:contract_template_kinder_price_text" json:"contract_template_kinder_price_text"`
	ContractTemplateElementaryPriceNumber string `gorm:"type:varchar(24);column:contract_template_elementary_price_number" json:"contract_template_elementary_price_number"`
	ContractTemplateElementaryPriceText   string `gorm:"type:text;column:contract_template_elementary_price_text" json:"contract_template_elementary_price_text"`
	ContractTemplateMiddlePriceNumber     string `gorm:"type:varchar(24);column:contract_template_middle_price_number" json:"contract_template_middle_price_number"`
	ContractTemplateMiddlePriceText       string `gorm:"type:text;column:contract_template_middle_price_text" json:"contract_template_middle_price_text"`
	ContractTemplateHighPriceNumber       string `gorm:"type:varchar(24);column:contract_template_high_price_number" json:"contract_template_high_price_number"`
	ContractTemplateHighPriceText         string `gorm:"type:text;column:contract_template_high_price_text" json:"contract_template_high_price_text"`

	// Harga transportasi + pajak
	ContractTemplateOnePathPrice    string `gorm:"type:varchar(24);column:contract_template_one_path_price" json:"contract_template_one_path_price"`
	ContractTemplateTwoPathPrice    string `gorm:"type:varchar(24);column:contract_template_two_path_price" json:"contract_template_two_path_price"`
	ContractTemplateOnePathTaxPrice string `gorm:"type:varchar(24);column:contract_template_one_path_tax_price" json:"contract_template_one_path_tax_price"`
	ContractTemplateTwoPathTaxPrice string `gorm:"type:varchar(24);column:contract_template_two_path_tax_price" json:"contract_template_two_path_tax_price"`

	// Pasal tujuh: list terurut 12 butir [{index, text}]
	ContractTemplateClauseSeven datatypes.JSON `gorm:"type:jsonb;column:contract_template_clause_seven" json:"contract_template_clause_seven"`

	// Pasal delapan
	ContractTemplateClauseEightOne string `gorm:"type:text;column:contract_template_clause_eight_one" json:"contract_template_clause_eight_one"`
	ContractTemplateClauseEightTwo string `gorm:"type:text;column:contract_template_clause_eight_two" json:"contract_template_clause_eight_two"`

	// Rincian rusum insihab (biaya penarikan diri)
	ContractTemplateWithdrawCaseOnePrice        string `gorm:"type:varchar(24);column:contract_template_withdraw_case_one_price" json:"contract_template_withdraw_case_one_price"`
	ContractTemplateWithdrawCaseThreePercentage string `gorm:"type:varchar(24);column:contract_template_withdraw_case_three_percentage" json:"contract_template_withdraw_case_three_percentage"`
	ContractTemplateWithdrawCaseFourPercentage  string `gorm:"type:varchar(24);column:contract_template_withdraw_case_four_percentage" json:"contract_template_withdraw_case_four_percentage"`

	// Audit
	ContractTemplateCreatedAt time.Time      `gorm:"column:contract_template_created_at;autoCreateTime" json:"contract_template_created_at"`
	ContractTemplateUpdatedAt *time.Time     `gorm:"column:contract_template_updated_at;autoUpdateTime" json:"contract_template_updated_at,omitempty"`
	ContractTemplateDeletedAt gorm.DeletedAt `gorm:"column:contract_template_deleted_at;index" json:"contract_template_deleted_at,omitempty"`
}

func (ContractTemplateModel) TableName() string { return "contract_templates" }
