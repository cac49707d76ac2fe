// file: internals/features/school/academics/periods/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/constants"
	periodCtl "colegio_backend/internals/features/school/academics/periods/controller"
	authMiddleware "colegio_backend/internals/middlewares/auth"
)

func PeriodAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := periodCtl.NewPeriodController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("managing periods"),
			constants.AdminOnly,
		),
	)

	base.Post("/periods", ctl.Create)
	base.Patch("/periods/:id", ctl.Patch)
	base.Delete("/periods/:id", ctl.Delete)
}

func PeriodUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := periodCtl.NewPeriodController(db, nil)
	api.Get("/periods", ctl.List)
	api.Get("/periods/:id", ctl.GetByID)
}
