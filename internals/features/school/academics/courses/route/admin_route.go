// file: internals/features/school/academics/courses/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/constants"
	courseCtl "colegio_backend/internals/features/school/academics/courses/controller"
	authMiddleware "colegio_backend/internals/middlewares/auth"
)

func CourseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := courseCtl.NewCourseController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("managing courses"),
			constants.AdminOnly,
		),
	)

	base.Post("/courses", ctl.Create)
	base.Patch("/courses/:id", ctl.Patch)
	base.Delete("/courses/:id", ctl.Delete)
}

func CourseUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := courseCtl.NewCourseController(db, nil)
	api.Get("/courses", ctl.List)
	api.Get("/courses/:id", ctl.GetByID)
}
