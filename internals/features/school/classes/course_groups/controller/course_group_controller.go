// file: internals/features/school/classes/course_groups/controller/course_group_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "colegio_backend/internals/features/school/classes/course_groups/dto"
	model "colegio_backend/internals/features/school/classes/course_groups/model"
	helper "colegio_backend/internals/helpers"
)

type CourseGroupController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseGroupController(db *gorm.DB, v *validator.Validate) *CourseGroupController {
	if v == nil {
		v = validator.New()
	}
	return &CourseGroupController{DB: db, Validator: v}
}

/* ============================================
   GET /course-groups
   Filters: classroom_id, period_id, course_id, teacher_id, active
============================================ */

func (ctl *CourseGroupController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.Model(&model.CourseGroupModel{})
	for param, column := range map[string]string{
		"classroom_id": "course_group_classroom_id",
		"period_id":    "course_group_period_id",
		"course_id":    "course_group_course_id",
		"teacher_id":   "course_group_teacher_id",
	} {
		if v := c.Query(param); v != "" {
			if id, err := uuid.Parse(v); err == nil {
				q = q.Where(column+" = ?", id)
			}
		}
	}
	if v := c.Query("active"); v != "" {
		q = q.Where("course_group_is_active = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count course groups")
	}

	var rows []model.CourseGroupModel
	if err := q.Order("course_group_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list course groups")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   GET /course-groups/:id
============================================ */

func (ctl *CourseGroupController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var ent model.CourseGroupModel
	if err := ctl.DB.Where("course_group_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course group")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}

/* ============================================
   PATCH /admin/course-groups/:id
============================================ */

func (ctl *CourseGroupController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.CourseGroupModel
	if err := ctl.DB.Where("course_group_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course group")
	}

	var p dto.CourseGroupUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if p.CourseGroupCapacity != nil && *p.CourseGroupCapacity < ent.CourseGroupEnrolledCount {
		return helper.JsonError(c, fiber.StatusBadRequest, "Capacity cannot be lower than enrolled count")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course group")
	}
	return helper.JsonUpdated(c, "Course group updated", dto.FromModel(ent))
}

/* ============================================
   DELETE /admin/course-groups/:id
   Deactivation, not removal: sessions keep pointing at the group.
============================================ */

func (ctl *CourseGroupController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.CourseGroupModel
	if err := ctl.DB.Where("course_group_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course group")
	}
	if ent.CourseGroupIsActive {
		if err := ctl.DB.Model(&ent).
			Update("course_group_is_active", false).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate course group")
		}
	}
	return helper.JsonDeleted(c, "Course group deactivated", fiber.Map{"course_group_id": id})
}
