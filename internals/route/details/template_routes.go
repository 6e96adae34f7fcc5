// file: internals/route/details/template_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ithra_backend/internals/constants"
	templateCtl "ithra_backend/internals/features/contracts/templates/controller"
	authMw "ithra_backend/internals/middlewares/auth"
)

// TemplateRoutes: "contract variables" per tahun dirasah.
// GET publik — form pendaftaran memakai endpoint ini untuk dropdown tahun
// tanpa sesi; operasi tulis khusus super_admin.
func TemplateRoutes(app *fiber.App, db *gorm.DB) {
	templates := templateCtl.NewContractTemplateController(db)

	base := app.Group("/api/contract-variables")

	base.Get("/", templates.GetTemplates)

	superOnly := authMw.OnlyRoles(constants.ErrOnlySuperAdmin, constants.SuperAdminOnly...)

	base.Post("/", authMw.AuthRequired(), superOnly, templates.CreateTemplate)
	base.Put("/:id", authMw.AuthRequired(), superOnly, templates.UpdateTemplate)
	base.Delete("/:id", authMw.AuthRequired(), superOnly, templates.DeleteTemplate)
}
