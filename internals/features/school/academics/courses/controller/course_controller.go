// file: internals/features/school/academics/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "colegio_backend/internals/features/school/academics/courses/dto"
	model "colegio_backend/internals/features/school/academics/courses/model"
	helper "colegio_backend/internals/helpers"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB, v *validator.Validate) *CourseController {
	if v == nil {
		v = validator.New()
	}
	return &CourseController{DB: db, Validator: v}
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

// POST /admin/courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var p dto.CourseCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	// Code uniqueness check for a friendlier message than the raw 23505
	var cnt int64
	if err := ctl.DB.Model(&model.CourseModel{}).
		Where("course_code = ?", p.CourseCode).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check course code")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Course code already in use")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created", dto.FromModel(ent))
}

// PATCH /admin/courses/:id
func (ctl *CourseController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.CourseModel
	if err := ctl.DB.Where("course_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}

	var p dto.CourseUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	if p.CourseCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*p.CourseCode))
		var cnt int64
		if err := ctl.DB.Model(&model.CourseModel{}).
			Where("course_code = ? AND course_id <> ?", code, ent.CourseID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check course code")
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Course code already in use")
		}
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonUpdated(c, "Course updated", dto.FromModel(ent))
}

// DELETE /admin/courses/:id (soft)
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := ctl.DB.Where("course_id = ?", id).Delete(&model.CourseModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"course_id": id})
}

// GET /courses
func (ctl *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.Model(&model.CourseModel{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("course_name ILIKE ? OR course_code ILIKE ?", "%"+v+"%", "%"+v+"%")
	}
	if v := c.Query("active"); v != "" {
		q = q.Where("course_is_active = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var rows []model.CourseModel
	if err := q.Order("course_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list courses")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /courses/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var ent model.CourseModel
	if err := ctl.DB.Where("course_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}
