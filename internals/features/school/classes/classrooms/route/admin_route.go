// file: internals/features/school/classes/classrooms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/constants"
	classroomCtl "colegio_backend/internals/features/school/classes/classrooms/controller"
	authMiddleware "colegio_backend/internals/middlewares/auth"
)

func ClassroomAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := classroomCtl.NewClassroomController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("managing classrooms"),
			constants.AdminOnly,
		),
	)

	base.Post("/classrooms", ctl.Create)
	base.Patch("/classrooms/:id", ctl.Patch)
	base.Delete("/classrooms/:id", ctl.Delete)
}

func ClassroomUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := classroomCtl.NewClassroomController(db, nil)
	api.Get("/classrooms", ctl.List)
	api.Get("/classrooms/:id", ctl.GetByID)
}
