// file: internals/features/contracts/contracts/service/contract_service.go
package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contractModel "ithra_backend/internals/features/contracts/contracts/model"
	templateDto "ithra_backend/internals/features/contracts/templates/dto"
	templateModel "ithra_backend/internals/features/contracts/templates/model"
)

const (
	ErrYearRequired = "يرجى اختيار السنة الدراسية للعقد"
	ErrYearUnknown  = "السنة الدراسية المختارة غير متوفرة"
	ErrNoTemplates  = "لا توجد نماذج عقود متاحة حالياً"
)

type ContractService struct {
	DB *gorm.DB
}

func NewContractService(db *gorm.DB) *ContractService {
	return &ContractService{DB: db}
}

// ResolveYear menentukan tahun dirasah untuk kontrak baru.
// Caller ber-login wajib memilih tahun yang templatenya ada; pendaftar
// publik boleh kosong dan jatuh ke tahun template terbaru.
func (s *ContractService) ResolveYear(ctx context.Context, requested string, authenticated bool) (string, error) {
	if requested != "" {
		var rows []templateModel.ContractTemplateModel
		if err := s.DB.WithContext(ctx).
			Select("contract_template_year", "contract_template_year_hijri").
			Find(&rows).Error; err != nil {
			return "", err
		}
		for _, row := range rows {
			if templateDto.YearStringOf(row) == requested {
				return requested, nil
			}
		}
		return "", fiber.NewError(fiber.StatusBadRequest, ErrYearUnknown)
	}

	if authenticated {
		return "", fiber.NewError(fiber.StatusBadRequest, ErrYearRequired)
	}

	var latest templateModel.ContractTemplateModel
	err := s.DB.WithContext(ctx).
		Order("contract_template_created_at DESC").
		First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fiber.NewError(fiber.StatusServiceUnavailable, ErrNoTemplates)
	}
	if err != nil {
		return "", err
	}
	return templateDto.YearStringOf(latest), nil
}

// Create menyimpan kontrak yang sudah tervalidasi.
func (s *ContractService) Create(ctx context.Context, ent *contractModel.ContractModel) error {
	return s.DB.WithContext(ctx).Create(ent).Error
}
