// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contractCtl "ithra_backend/internals/features/contracts/contracts/controller"
	draftCtl "ithra_backend/internals/features/contracts/drafts/controller"
	draftRepo "ithra_backend/internals/features/contracts/drafts/repository"
	authMw "ithra_backend/internals/middlewares/auth"
)

// UserRoutes: permukaan publik form pendaftaran. Semua endpoint di sini
// bisa dipakai tanpa login; JWT kalau ada tetap dibaca (menentukan aturan
// tahun dirasah saat submit).
func UserRoutes(app *fiber.App, db *gorm.DB) {
	drafts := draftRepo.NewGormDraftRepository(db)

	contracts := contractCtl.NewContractController(db, drafts)
	draftsCtl := draftCtl.NewDraftController(drafts)

	user := app.Group("/api/user", authMw.AuthOptional())

	user.Post("/create", contracts.Create)

	user.Put("/draft/:key", draftsCtl.PutDraft)
	user.Get("/draft", draftsCtl.GetDrafts)
	user.Delete("/draft", draftsCtl.ClearDrafts)
}
