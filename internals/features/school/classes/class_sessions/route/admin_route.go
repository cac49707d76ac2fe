// file: internals/features/school/classes/class_sessions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/constants"
	sessionCtl "colegio_backend/internals/features/school/classes/class_sessions/controller"
	authMiddleware "colegio_backend/internals/middlewares/auth"
)

func ClassSessionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := sessionCtl.NewClassSessionController(db, nil)

	// Teachers record realized classes; admins manage everything else.
	teacher := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorTeacher("recording class sessions"),
			constants.TeacherAndAbove,
		),
	)
	teacher.Patch("/class-sessions/:id/realize", ctl.Realize)

	admin := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("managing class sessions"),
			constants.AdminOnly,
		),
	)
	admin.Patch("/class-sessions/:id", ctl.Patch)
}

func ClassSessionUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := sessionCtl.NewClassSessionController(db, nil)
	api.Get("/class-sessions", ctl.List)
	api.Get("/class-sessions/:id", ctl.GetByID)
}
