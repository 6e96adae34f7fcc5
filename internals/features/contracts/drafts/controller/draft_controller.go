// file: internals/features/contracts/drafts/controller/draft_controller.go
package controller

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ithra_backend/internals/features/contracts/drafts/model"
	"ithra_backend/internals/features/contracts/drafts/repository"
	helper "ithra_backend/internals/helpers"
)

// Cookie anonim penanda satu sesi pengisian form create.
// Alur edit sengaja tidak menyentuh draft (data selalu dari server).
const DraftSessionCookie = "draft_session"

const draftSessionTTL = 30 * 24 * time.Hour

type DraftController struct {
	Repo repository.DraftRepository
}

func NewDraftController(repo repository.DraftRepository) *DraftController {
	return &DraftController{Repo: repo}
}

// SessionID membaca cookie draft_session; mint=true membuat UUID baru
// (plus set cookie) kalau belum ada.
func SessionID(c *fiber.Ctx, mint bool) (uuid.UUID, bool) {
	if raw := c.Cookies(DraftSessionCookie); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return id, true
		}
	}
	if !mint {
		return uuid.Nil, false
	}
	id := uuid.New()
	c.Cookie(&fiber.Cookie{
		Name:     DraftSessionCookie,
		Value:    id.String(),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(draftSessionTTL),
	})
	return id, true
}

// PutDraft: PUT /api/user/draft/:key — timpa satu sub-objek utuh.
func (ctl *DraftController) PutDraft(c *fiber.Ctx) error {
	key := c.Params("key")
	if !model.IsDraftKey(key) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown draft key: "+key)
	}

	body := c.Body()
	if !json.Valid(body) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body must be valid JSON")
	}

	sessionID, _ := SessionID(c, true)
	if err := ctl.Repo.Set(c.UserContext(), sessionID, key, append(json.RawMessage(nil), body...)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل حفظ المسودة")
	}
	return helper.JsonOK(c, "saved", fiber.Map{"key": key})
}

// GetDrafts: GET /api/user/draft — rehydrate semua key milik sesi ini.
// Key yang belum ada tidak dikirim; caller jatuh ke default form kosong.
func (ctl *DraftController) GetDrafts(c *fiber.Ctx) error {
	sessionID, ok := SessionID(c, false)
	if !ok {
		return helper.JsonOK(c, "ok", fiber.Map{})
	}

	stored, err := ctl.Repo.GetAll(c.UserContext(), sessionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل تحميل المسودة")
	}

	out := fiber.Map{}
	for key, raw := range stored {
		// Nilai tersimpan yang korup di-skip, bukan dikirim mentah.
		if !json.Valid(raw) {
			continue
		}
		out[key] = json.RawMessage(raw)
	}
	return helper.JsonOK(c, "ok", out)
}

// ClearDrafts: DELETE /api/user/draft — reset penuh atas permintaan user.
func (ctl *DraftController) ClearDrafts(c *fiber.Ctx) error {
	sessionID, ok := SessionID(c, false)
	if !ok {
		return helper.JsonDeleted(c, "cleared", nil)
	}
	if err := ctl.Repo.Clear(c.UserContext(), sessionID, model.AllDraftKeys...); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "فشل مسح المسودة")
	}
	return helper.JsonDeleted(c, "cleared", nil)
}
