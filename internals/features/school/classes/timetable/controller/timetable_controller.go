// file: internals/features/school/classes/timetable/controller/timetable_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"colegio_backend/internals/features/school/classes/timetable/dto"
	"colegio_backend/internals/features/school/classes/timetable/service"
	helper "colegio_backend/internals/helpers"
)

type TimetableController struct {
	Service   *service.Service
	Validator *validator.Validate
}

func NewTimetableController(db *gorm.DB, v *validator.Validate) *TimetableController {
	if v == nil {
		v = validator.New()
	}
	return &TimetableController{Service: service.NewService(db), Validator: v}
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

// respondServiceError maps service errors onto the response envelope.
// Schedule conflicts go out as 409 with the occupied slot attached.
func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	var conflict *service.ScheduleConflictError
	if errors.As(err, &conflict) {
		return helper.JsonErrorWithData(c, fiber.StatusConflict, conflict.Error(),
			fiber.Map{"existing_block": dto.FromModel(conflict.Existing)})
	}
	var internal *service.InternalConflictError
	if errors.As(err, &internal) {
		return helper.JsonErrorWithData(c, fiber.StatusUnprocessableEntity, internal.Error(),
			fiber.Map{"conflicting_pairs": internal.Pairs})
	}
	switch {
	case errors.Is(err, service.ErrClassroomNotFound),
		errors.Is(err, service.ErrPeriodNotFound),
		errors.Is(err, service.ErrBlockNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPeriodDatesMissing):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}

/* ============================================
   GET /classrooms/:id/time-blocks
============================================ */

func (ctl *TimetableController) ListBlocks(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom id")
	}
	blocks, err := ctl.Service.ListBlocks(c.UserContext(), classroomID)
	if err != nil {
		return respondServiceError(c, err, "Failed to list time-blocks")
	}
	return helper.JsonOK(c, "ok", dto.FromModels(blocks))
}

/* ============================================
   POST /admin/classrooms/:id/time-blocks
============================================ */

func (ctl *TimetableController) CreateBlock(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom id")
	}

	var p dto.TimeBlockCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	ent, err := ctl.Service.CreateBlock(c.UserContext(), classroomID, p)
	if err != nil {
		if isInputError(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return respondServiceError(c, err, "Failed to create time-block")
	}
	return helper.JsonCreated(c, "Time-block created", dto.FromModel(*ent))
}

/* ============================================
   PATCH /admin/time-blocks/:id
============================================ */

func (ctl *TimetableController) UpdateBlock(c *fiber.Ctx) error {
	blockID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid time-block id")
	}

	var p dto.TimeBlockUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	ent, err := ctl.Service.UpdateBlock(c.UserContext(), blockID, p)
	if err != nil {
		if isInputError(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return respondServiceError(c, err, "Failed to update time-block")
	}
	return helper.JsonUpdated(c, "Time-block updated", dto.FromModel(*ent))
}

/* ============================================
   DELETE /admin/time-blocks/:id (idempotent deactivation)
============================================ */

func (ctl *TimetableController) DeleteBlock(c *fiber.Ctx) error {
	blockID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid time-block id")
	}
	if err := ctl.Service.DeleteBlock(c.UserContext(), blockID); err != nil {
		return respondServiceError(c, err, "Failed to delete time-block")
	}
	return helper.JsonDeleted(c, "Time-block deleted", fiber.Map{"time_block_id": blockID})
}

/* ============================================
   POST /admin/classrooms/:id/replace-schedule
============================================ */

func (ctl *TimetableController) ReplaceSchedule(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom id")
	}

	var p dto.ReplaceScheduleDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	res, err := ctl.Service.ReplaceSchedule(c.UserContext(), classroomID, p)
	if err != nil {
		if isInputError(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return respondServiceError(c, err, "Failed to replace schedule")
	}
	return helper.JsonOK(c, "Schedule replaced", res)
}

/* ============================================
   POST /admin/classrooms/:id/generate-groups
   POST /admin/classrooms/:id/generate-sessions
============================================ */

func (ctl *TimetableController) GenerateGroups(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom id")
	}
	res, err := ctl.Service.GenerateGroups(c.UserContext(), classroomID)
	if err != nil {
		return respondServiceError(c, err, "Failed to generate course groups")
	}
	return helper.JsonOK(c, "Course groups generated", res)
}

func (ctl *TimetableController) GenerateSessions(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom id")
	}
	res, err := ctl.Service.GenerateSessions(c.UserContext(), classroomID)
	if err != nil {
		return respondServiceError(c, err, "Failed to generate class sessions")
	}
	return helper.JsonOK(c, "Class sessions generated", res)
}

// isInputError marks DTO validation failures as caller mistakes
// rather than server faults.
func isInputError(err error) bool {
	var ve *dto.ValidationError
	return errors.As(err, &ve)
}
