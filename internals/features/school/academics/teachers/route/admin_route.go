// file: internals/features/school/academics/teachers/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/constants"
	teacherCtl "colegio_backend/internals/features/school/academics/teachers/controller"
	authMiddleware "colegio_backend/internals/middlewares/auth"
)

func TeacherAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := teacherCtl.NewTeacherController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("managing teachers"),
			constants.AdminOnly,
		),
	)

	base.Post("/teachers", ctl.Create)
	base.Patch("/teachers/:id", ctl.Patch)
	base.Delete("/teachers/:id", ctl.Delete)
}

func TeacherUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := teacherCtl.NewTeacherController(db, nil)
	api.Get("/teachers", ctl.List)
	api.Get("/teachers/:id", ctl.GetByID)
}
