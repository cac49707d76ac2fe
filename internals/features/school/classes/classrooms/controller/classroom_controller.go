// file: internals/features/school/classes/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	periodModel "colegio_backend/internals/features/school/academics/periods/model"
	dto "colegio_backend/internals/features/school/classes/classrooms/dto"
	model "colegio_backend/internals/features/school/classes/classrooms/model"
	tbModel "colegio_backend/internals/features/school/classes/timetable/model"
	helper "colegio_backend/internals/helpers"
)

type ClassroomController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassroomController(db *gorm.DB, v *validator.Validate) *ClassroomController {
	if v == nil {
		v = validator.New()
	}
	return &ClassroomController{DB: db, Validator: v}
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

/* ============================================
   CREATE
   POST /admin/classrooms
============================================ */

func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var p dto.ClassroomCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	// Period must exist
	var cnt int64
	if err := ctl.DB.Model(&periodModel.PeriodModel{}).
		Where("period_id = ?", p.ClassroomPeriodID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check period")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Period not found")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create classroom")
	}
	return helper.JsonCreated(c, "Classroom created", dto.FromModel(ent))
}

/* ============================================
   PATCH /admin/classrooms/:id
============================================ */

func (ctl *ClassroomController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.ClassroomModel
	if err := ctl.DB.Where("classroom_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Classroom not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load classroom")
	}

	var p dto.ClassroomUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	if p.ClassroomPeriodID != nil {
		var cnt int64
		if err := ctl.DB.Model(&periodModel.PeriodModel{}).
			Where("period_id = ?", *p.ClassroomPeriodID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check period")
		}
		if cnt == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Period not found")
		}
	}

	// Capacity may never drop below the current enrolled count
	if p.ClassroomCapacity != nil && *p.ClassroomCapacity < ent.ClassroomEnrolledCount {
		return helper.JsonError(c, fiber.StatusBadRequest, "Capacity cannot be lower than enrolled count")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update classroom")
	}
	return helper.JsonUpdated(c, "Classroom updated", dto.FromModel(ent))
}

/* ============================================
   DELETE /admin/classrooms/:id (soft)
   Cascade-deactivates the classroom's time-blocks; generated groups
   and sessions survive and only lose their regeneration origin.
============================================ */

func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tbModel.TimeBlockModel{}).
			Where("time_block_classroom_id = ? AND time_block_is_active = TRUE", id).
			Update("time_block_is_active", false).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate time-blocks")
		}
		if err := tx.Where("classroom_id = ?", id).Delete(&model.ClassroomModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete classroom")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Classroom deleted", fiber.Map{"classroom_id": id})
}

/* ============================================
   GET /classrooms, GET /classrooms/:id
============================================ */

func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.Model(&model.ClassroomModel{})
	if v := c.Query("period_id"); v != "" {
		if pid, err := uuid.Parse(v); err == nil {
			q = q.Where("classroom_period_id = ?", pid)
		}
	}
	if v := c.Query("grade"); v != "" {
		q = q.Where("classroom_grade = ?", v)
	}
	if v := c.Query("active"); v != "" {
		q = q.Where("classroom_is_active = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classrooms")
	}

	var rows []model.ClassroomModel
	if err := q.Order("classroom_grade ASC, classroom_section ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list classrooms")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *ClassroomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var ent model.ClassroomModel
	if err := ctl.DB.Where("classroom_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Classroom not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load classroom")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}
