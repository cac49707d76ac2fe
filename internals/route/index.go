// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "colegio_backend/internals/features/school/academics/courses/route"
	periodRoute "colegio_backend/internals/features/school/academics/periods/route"
	teacherRoute "colegio_backend/internals/features/school/academics/teachers/route"
	sessionRoute "colegio_backend/internals/features/school/classes/class_sessions/route"
	classroomRoute "colegio_backend/internals/features/school/classes/classrooms/route"
	groupRoute "colegio_backend/internals/features/school/classes/course_groups/route"
	timetableRoute "colegio_backend/internals/features/school/classes/timetable/route"
	authMiddleware "colegio_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the whole API surface.
//
//	/api/u — authenticated reads (any role)
//	/api/a — admin/teacher writes
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	user := api.Group("/u", authMiddleware.AuthMiddleware())
	periodRoute.PeriodUserRoutes(user, db)
	courseRoute.CourseUserRoutes(user, db)
	teacherRoute.TeacherUserRoutes(user, db)
	classroomRoute.ClassroomUserRoutes(user, db)
	timetableRoute.TimetableUserRoutes(user, db)
	groupRoute.CourseGroupUserRoutes(user, db)
	sessionRoute.ClassSessionUserRoutes(user, db)

	admin := api.Group("/a", authMiddleware.AuthMiddleware())
	periodRoute.PeriodAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	classroomRoute.ClassroomAdminRoutes(admin, db)
	timetableRoute.TimetableAdminRoutes(admin, db)
	groupRoute.CourseGroupAdminRoutes(admin, db)
	sessionRoute.ClassSessionAdminRoutes(admin, db)

	log.Println("✅ Routes mounted: /api/u (reads), /api/a (admin)")
}
