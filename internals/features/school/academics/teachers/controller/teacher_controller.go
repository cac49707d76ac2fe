// file: internals/features/school/academics/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "colegio_backend/internals/features/school/academics/teachers/dto"
	model "colegio_backend/internals/features/school/academics/teachers/model"
	helper "colegio_backend/internals/helpers"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	if v == nil {
		v = validator.New()
	}
	return &TeacherController{DB: db, Validator: v}
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

// POST /admin/teachers
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var p dto.TeacherCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	var cnt int64
	if err := ctl.DB.Model(&model.TeacherModel{}).
		Where("teacher_code = ?", p.TeacherCode).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check teacher code")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Teacher code already in use")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return helper.JsonCreated(c, "Teacher created", dto.FromModel(ent))
}

// PATCH /admin/teachers/:id
func (ctl *TeacherController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load teacher")
	}

	var p dto.TeacherUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	if p.TeacherCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*p.TeacherCode))
		var cnt int64
		if err := ctl.DB.Model(&model.TeacherModel{}).
			Where("teacher_code = ? AND teacher_id <> ?", code, ent.TeacherID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check teacher code")
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Teacher code already in use")
		}
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.JsonUpdated(c, "Teacher updated", dto.FromModel(ent))
}

// DELETE /admin/teachers/:id (soft)
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := ctl.DB.Where("teacher_id = ?", id).Delete(&model.TeacherModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"teacher_id": id})
}

// GET /teachers
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.Model(&model.TeacherModel{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("teacher_full_name ILIKE ? OR teacher_code ILIKE ?", "%"+v+"%", "%"+v+"%")
	}
	if v := c.Query("active"); v != "" {
		q = q.Where("teacher_is_active = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var rows []model.TeacherModel
	if err := q.Order("teacher_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list teachers")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var ent model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load teacher")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}
