// file: internals/features/school/classes/course_groups/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/constants"
	groupCtl "colegio_backend/internals/features/school/classes/course_groups/controller"
	authMiddleware "colegio_backend/internals/middlewares/auth"
)

func CourseGroupAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := groupCtl.NewCourseGroupController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("managing course groups"),
			constants.AdminOnly,
		),
	)

	base.Patch("/course-groups/:id", ctl.Patch)
	base.Delete("/course-groups/:id", ctl.Deactivate)
}

func CourseGroupUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := groupCtl.NewCourseGroupController(db, nil)
	api.Get("/course-groups", ctl.List)
	api.Get("/course-groups/:id", ctl.GetByID)
}
