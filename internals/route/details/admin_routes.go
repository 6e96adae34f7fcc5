// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ithra_backend/internals/constants"
	adminCtl "ithra_backend/internals/features/admins/controller"
	contractCtl "ithra_backend/internals/features/contracts/contracts/controller"
	draftRepo "ithra_backend/internals/features/contracts/drafts/repository"
	"ithra_backend/internals/middlewares"
	authMw "ithra_backend/internals/middlewares/auth"
)

// AdminRoutes: login/logout terbuka (dengan rate limit), sisanya di belakang
// AuthRequired. Edit/hapus kontrak dan manajemen admin khusus super_admin;
// admin biasa hanya lihat + print.
//
// Nama-nama path (ViewContarcts, get/:id, edit/:id, delete-admin/:id, dst)
// dipertahankan persis seperti yang dipanggil front-end yang sudah ter-deploy.
func AdminRoutes(app *fiber.App, db *gorm.DB) {
	drafts := draftRepo.NewGormDraftRepository(db)

	auth := adminCtl.NewAuthController(db)
	admins := adminCtl.NewAdminController(db)
	contracts := contractCtl.NewContractController(db, drafts)

	base := app.Group("/api/admin")

	// ---- Auth ----
	base.Post("/login", middlewares.LoginRateLimiter(), auth.Login)
	base.Post("/logout", auth.Logout)

	app.Get("/api/auth-check", authMw.AuthRequired(), auth.AuthCheck)

	// ---- Semua di bawah ini wajib login ----
	private := base.Group("", authMw.AuthRequired())

	// Kontrak
	private.Get("/ViewContarcts", contracts.List) // path lama, jangan "diperbaiki"
	private.Get("/get/:id", contracts.Get)
	private.Get("/print/:id", contracts.Print)

	superOnly := authMw.OnlyRoles(constants.ErrOnlySuperAdmin, constants.SuperAdminOnly...)

	private.Put("/edit/:id", superOnly, contracts.Update)
	private.Delete("/delete/:id", superOnly, contracts.Delete)

	// Manajemen admin
	private.Get("/get-admins", superOnly, admins.GetAdmins)
	private.Post("/create-admin", superOnly, admins.CreateAdmin)
	private.Put("/edit-admin/:id", superOnly, admins.UpdateAdmin)
	private.Delete("/delete-admin/:id", superOnly, admins.DeleteAdmin)
}
