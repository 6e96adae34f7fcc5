// file: internals/features/contracts/contracts/controller/contract_controller.go
package controller

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ithra_backend/internals/configs"
	"ithra_backend/internals/features/contracts/contracts/dto"
	"ithra_backend/internals/features/contracts/contracts/model"
	"ithra_backend/internals/features/contracts/contracts/service"
	draftCtl "ithra_backend/internals/features/contracts/drafts/controller"
	draftModel "ithra_backend/internals/features/contracts/drafts/model"
	draftRepo "ithra_backend/internals/features/contracts/drafts/repository"
	helper "ithra_backend/internals/helpers"
)

// SubmissionService = potongan alur submit yang menyentuh DB. Dipisah di
// belakang interface kecil (seperti DraftRepository) supaya handler create
// bisa diuji dengan fake tanpa postgres.
type SubmissionService interface {
	ResolveYear(ctx context.Context, requested string, authenticated bool) (string, error)
	Create(ctx context.Context, ent *model.ContractModel) error
}

type ContractController struct {
	DB       *gorm.DB
	Service  SubmissionService
	Drafts   draftRepo.DraftRepository
	Validate *validator.Validate
}

func NewContractController(db *gorm.DB, drafts draftRepo.DraftRepository) *ContractController {
	return &ContractController{
		DB:       db,
		Service:  service.NewContractService(db),
		Drafts:   drafts,
		Validate: validator.New(),
	}
}

// POST /api/user/create
// Publik. Kalau request datang dari admin ber-login, tahun wajib dipilih
// dan harus punya template; pendaftar anonim jatuh ke tahun terbaru.
func (ctl *ContractController) Create(c *fiber.Ctx) error {
	var req dto.ContractRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "طلب غير صالح")
	}
	req.Normalize()

	if err := req.Validate(ctl.Validate); err != nil {
		return err
	}

	authenticated := helper.GetAdminRole(c) != ""
	year, err := ctl.Service.ResolveYear(c.Context(), req.ContractYear, authenticated)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return err
		}
		log.Println("[ERROR] resolve tahun dirasah gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في إرسال العقد")
	}
	req.ContractYear = year

	ent, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "طلب غير صالح")
	}
	if err := ctl.Service.Create(c.Context(), &ent); err != nil {
		log.Println("[ERROR] simpan kontrak gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في إرسال العقد")
	}

	// Draft dibersihkan hanya setelah submit sukses; kalau gagal, isian
	// pendaftar tetap bisa dipulihkan.
	if sessionID, ok := draftCtl.SessionID(c, false); ok {
		if err := ctl.Drafts.Clear(c.Context(), sessionID, draftModel.AllDraftKeys...); err != nil {
			log.Println("[WARN] bersihkan draft gagal:", err)
		}
	}

	resp, err := dto.FromModel(ent)
	if err != nil {
		log.Println("[ERROR] decode kontrak baru gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في إرسال العقد")
	}
	log.Printf("[SUCCESS] kontrak %s terkirim (tahun %s)", ent.ContractID, year)
	return helper.JsonCreated(c, "تم إرسال العقد بنجاح", resp)
}

// GET /api/admin/ViewContarcts
// Nama path dipertahankan apa adanya (typo lama, front-end sudah terlanjur
// memakainya). Filter: ?column=<kolom>&q=<teks>, substring case-insensitive.
func (ctl *ContractController) List(c *fiber.Ctx) error {
	var rows []model.ContractModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("contract_created_at DESC").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] ambil daftar kontrak gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في جلب العقود")
	}

	out := make([]dto.ContractResponseDTO, 0, len(rows))
	for _, row := range rows {
		resp, err := dto.FromModel(row)
		if err != nil {
			log.Printf("[WARN] kontrak %s korup, dilewati: %v", row.ContractID, err)
			continue
		}
		out = append(out, resp)
	}

	column := strings.TrimSpace(c.Query("column"))
	query := strings.TrimSpace(c.Query("q"))
	if column != "" && query != "" {
		out = dto.FilterRows(out, column, query)
	}

	return helper.JsonOK(c, "تم جلب العقود بنجاح", out)
}

// GET /api/admin/get/:id
func (ctl *ContractController) Get(c *fiber.Ctx) error {
	ent, err := ctl.findByParam(c)
	if err != nil {
		return err
	}
	resp, err := dto.FromModel(*ent)
	if err != nil {
		log.Printf("[ERROR] decode kontrak %s gagal: %v", ent.ContractID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في جلب العقد")
	}
	return helper.JsonOK(c, "تم جلب العقد بنجاح", resp)
}

// PUT /api/admin/edit/:id (super_admin)
// Edit menimpa keempat blok form sekaligus (body edit selalu berisi form
// utuh). Tidak menyentuh draft sama sekali.
func (ctl *ContractController) Update(c *fiber.Ctx) error {
	ent, err := ctl.findByParam(c)
	if err != nil {
		return err
	}

	var req dto.ContractRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "طلب غير صالح")
	}
	req.Normalize()

	if err := req.Validate(ctl.Validate); err != nil {
		return err
	}

	if req.ContractYear != "" && req.ContractYear != ent.ContractYear {
		year, err := ctl.Service.ResolveYear(c.Context(), req.ContractYear, true)
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return err
			}
			log.Println("[ERROR] resolve tahun dirasah gagal:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في تحديث العقد")
		}
		ent.ContractYear = year
	}

	updated, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "طلب غير صالح")
	}
	ent.ContractGuardian = updated.ContractGuardian
	ent.ContractEditor = updated.ContractEditor
	ent.ContractStudent = updated.ContractStudent
	ent.ContractPayment = updated.ContractPayment

	if err := ctl.DB.WithContext(c.Context()).Save(ent).Error; err != nil {
		log.Println("[ERROR] update kontrak gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في تحديث العقد")
	}

	resp, err := dto.FromModel(*ent)
	if err != nil {
		log.Printf("[ERROR] decode kontrak %s gagal: %v", ent.ContractID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في تحديث العقد")
	}
	return helper.JsonUpdated(c, "تم تحديث العقد بنجاح", resp)
}

// DELETE /api/admin/delete/:id (super_admin, soft delete)
func (ctl *ContractController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "معرف العقد غير صالح")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.ContractModel{}, "contract_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] hapus kontrak gagal:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في حذف العقد")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "العقد غير موجود")
	}

	return helper.JsonDeleted(c, "تم حذف العقد بنجاح", fiber.Map{"_id": id})
}

// GET /api/admin/print/:id
// Meneruskan data kontrak ke layanan pembuat dokumen dan men-stream balik
// file .docx apa adanya.
func (ctl *ContractController) Print(c *fiber.Ctx) error {
	if configs.DocServiceURL == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "خدمة طباعة العقود غير متاحة حالياً")
	}

	ent, err := ctl.findByParam(c)
	if err != nil {
		return err
	}
	resp, err := dto.FromModel(*ent)
	if err != nil {
		log.Printf("[ERROR] decode kontrak %s gagal: %v", ent.ContractID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في طباعة العقد")
	}

	return sendContractDocument(c, resp)
}

// sendContractDocument memanggil layanan dokumen dan mengirim balik .docx.
// Body upstream dibaca penuh sebelum handler selesai: fasthttp baru membaca
// stream setelah handler return, jadi stream yang ditutup via defer akan
// mati di tengah jalan.
func sendContractDocument(c *fiber.Ctx, resp dto.ContractResponseDTO) error {
	payload, err := sonic.Marshal(resp)
	if err != nil {
		log.Println("[ERROR] encode payload cetak gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في طباعة العقد")
	}

	httpReq, err := http.NewRequestWithContext(c.Context(), http.MethodPost,
		strings.TrimRight(configs.DocServiceURL, "/")+"/generate", bytes.NewReader(payload))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل في طباعة العقد")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	docResp, err := client.Do(httpReq)
	if err != nil {
		log.Println("[ERROR] layanan dokumen tidak merespons:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "خدمة طباعة العقود غير متاحة حالياً")
	}
	defer docResp.Body.Close()

	if docResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(docResp.Body, 2048))
		log.Printf("[ERROR] layanan dokumen balas %d: %s", docResp.StatusCode, body)
		return helper.JsonError(c, fiber.StatusBadGateway, "فشل في طباعة العقد")
	}

	body, err := io.ReadAll(docResp.Body)
	if err != nil {
		log.Println("[ERROR] baca dokumen dari layanan gagal:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "فشل في طباعة العقد")
	}

	c.Set(fiber.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="contract-`+resp.ID.String()+`.docx"`)
	return c.Send(body)
}

func (ctl *ContractController) findByParam(c *fiber.Ctx) (*model.ContractModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "معرف العقد غير صالح")
	}

	var ent model.ContractModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&ent, "contract_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "العقد غير موجود")
		}
		log.Println("[ERROR] ambil kontrak gagal:", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "فشل في جلب العقد")
	}
	return &ent, nil
}
