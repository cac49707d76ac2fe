// file: internals/features/school/classes/timetable/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/constants"
	timetableCtl "colegio_backend/internals/features/school/classes/timetable/controller"
	"colegio_backend/internals/middlewares"
	authMiddleware "colegio_backend/internals/middlewares/auth"
)

func TimetableAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := timetableCtl.NewTimetableController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("managing timetables"),
			constants.AdminOnly,
		),
	)

	base.Post("/classrooms/:id/time-blocks", ctl.CreateBlock)
	base.Patch("/time-blocks/:id", ctl.UpdateBlock)
	base.Delete("/time-blocks/:id", ctl.DeleteBlock)

	// Batch endpoints rewrite or fan out many rows; keep them behind
	// the tighter limiter.
	batch := base.Group("", middlewares.GeneratorRateLimiter())
	batch.Post("/classrooms/:id/replace-schedule", ctl.ReplaceSchedule)
	batch.Post("/classrooms/:id/generate-groups", ctl.GenerateGroups)
	batch.Post("/classrooms/:id/generate-sessions", ctl.GenerateSessions)
}

func TimetableUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := timetableCtl.NewTimetableController(db, nil)
	api.Get("/classrooms/:id/time-blocks", ctl.ListBlocks)
}
