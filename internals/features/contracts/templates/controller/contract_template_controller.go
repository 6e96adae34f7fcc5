// file: internals/features/contracts/templates/controller/contract_template_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ithra_backend/internals/features/contracts/templates/dto"
	"ithra_backend/internals/features/contracts/templates/model"
	helper "ithra_backend/internals/helpers"
)

type ContractTemplateController struct {
	DB *gorm.DB
}

func NewContractTemplateController(db *gorm.DB) *ContractTemplateController {
	return &ContractTemplateController{DB: db}
}

// GET /api/contract-variables
// Publik: form pendaftaran memakai endpoint ini untuk dropdown tahun.
func (ctl *ContractTemplateController) GetTemplates(c *fiber.Ctx) error {
	var rows []model.ContractTemplateModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("contract_template_created_at DESC").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] ambil daftar template gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في جلب نماذج العقود")
	}

	out := make([]dto.ContractTemplateResponseDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.FromModel(row))
	}
	return helper.JsonOK(c, "تم جلب نماذج العقود بنجاح", out)
}

// POST /api/contract-variables (super_admin)
func (ctl *ContractTemplateController) CreateTemplate(c *fiber.Ctx) error {
	var req dto.ContractTemplateRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "طلب غير صالح")
	}
	req.Normalize()

	if err := dto.ValidateYearPair(req.ContractYear, req.ContractYearHijri); err != nil {
		return err
	}

	// Satu template per tahun dirasah.
	var existing model.ContractTemplateModel
	err := ctl.DB.WithContext(c.Context()).
		Where("contract_template_year = ? AND contract_template_year_hijri = ?",
			req.ContractYear, req.ContractYearHijri).
		First(&existing).Error
	switch {
	case err == nil:
		return helper.JsonError(c, fiber.StatusConflict, "يوجد نموذج عقد لهذه السنة الدراسية بالفعل")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Println("[ERROR] cek duplikat template gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في إنشاء نموذج العقد")
	}

	ent, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "طلب غير صالح")
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&ent).Error; err != nil {
		// Insert balapan dengan pre-check di atas ditangkap index unik
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "يوجد نموذج عقد لهذه السنة الدراسية بالفعل")
		}
		log.Println("[ERROR] simpan template gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في إنشاء نموذج العقد")
	}

	log.Printf("[SUCCESS] template %s dibuat", dto.YearStringOf(ent))
	return helper.JsonCreated(c, "تم إنشاء نموذج العقد بنجاح", dto.FromModel(ent))
}

// PUT /api/contract-variables/:id (super_admin)
func (ctl *ContractTemplateController) UpdateTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "معرف نموذج العقد غير صالح")
	}

	var req dto.ContractTemplateRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "طلب غير صالح")
	}
	req.Normalize()

	// Tahun hanya divalidasi kalau dikirim dua-duanya; body edit biasa
	// mengirim ulang tahun lama apa adanya.
	if req.ContractYear != "" || req.ContractYearHijri != "" {
		if err := dto.ValidateYearPair(req.ContractYear, req.ContractYearHijri); err != nil {
			return err
		}
	}

	var ent model.ContractTemplateModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&ent, "contract_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "نموذج العقد غير موجود")
		}
		log.Println("[ERROR] ambil template gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في تحديث نموذج العقد")
	}

	if err := req.ApplyUpdates(&ent); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "طلب غير صالح")
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&ent).Error; err != nil {
		log.Println("[ERROR] update template gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في تحديث نموذج العقد")
	}

	return helper.JsonUpdated(c, "تم تحديث نموذج العقد بنجاح", dto.FromModel(ent))
}

// DELETE /api/contract-variables/:id (super_admin)
// Sengaja tidak mengecek apakah masih ada kontrak yang memakai tahun ini;
// kontrak lama menyimpan salinan tahunnya sendiri.
func (ctl *ContractTemplateController) DeleteTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "معرف نموذج العقد غير صالح")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.ContractTemplateModel{}, "contract_template_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] hapus template gagal:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في حذف نموذج العقد")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "نموذج العقد غير موجود")
	}

	return helper.JsonDeleted(c, "تم حذف نموذج العقد بنجاح", fiber.Map{"_id": id})
}
