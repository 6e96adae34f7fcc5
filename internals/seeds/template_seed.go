// file: internals/seeds/template_seed.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	"ithra_backend/internals/features/contracts/templates/dto"
	"ithra_backend/internals/features/contracts/templates/model"
)

// SeedDefaultTemplate menanam satu template tahun berjalan supaya form
// pendaftaran langsung bisa dipakai di instance baru. Teks pasal dibiarkan
// kosong; super admin mengisinya lewat halaman template.
func SeedDefaultTemplate(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.ContractTemplateModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	req := dto.ContractTemplateRequestDTO{
		ContractYear:      "2025-2026",
		ContractYearHijri: "1447-1448",
	}
	ent, err := req.ToModel()
	if err != nil {
		return err
	}
	if err := db.Create(&ent).Error; err != nil {
		return err
	}

	log.Printf("✅ Template default %s ditanam", dto.YearStringOf(ent))
	return nil
}
