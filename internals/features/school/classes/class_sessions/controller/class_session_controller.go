// file: internals/features/school/classes/class_sessions/controller/class_session_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "colegio_backend/internals/features/school/classes/class_sessions/dto"
	model "colegio_backend/internals/features/school/classes/class_sessions/model"
	helper "colegio_backend/internals/helpers"
)

type ClassSessionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassSessionController(db *gorm.DB, v *validator.Validate) *ClassSessionController {
	if v == nil {
		v = validator.New()
	}
	return &ClassSessionController{DB: db, Validator: v}
}

/* ============================================
   GET /class-sessions
   Filters: group_id, date_from, date_to, realized
============================================ */

func (ctl *ClassSessionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.Model(&model.ClassSessionModel{})
	if v := c.Query("group_id"); v != "" {
		gid, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group_id")
		}
		q = q.Where("class_session_group_id = ?", gid)
	}
	if v := c.Query("date_from"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_from (want YYYY-MM-DD)")
		}
		q = q.Where("class_session_date >= ?", d)
	}
	if v := c.Query("date_to"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_to (want YYYY-MM-DD)")
		}
		q = q.Where("class_session_date <= ?", d)
	}
	if v := c.Query("realized"); v != "" {
		q = q.Where("class_session_is_realized = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count class sessions")
	}

	var rows []model.ClassSessionModel
	if err := q.Order("class_session_date ASC, class_session_start_time ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list class sessions")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   GET /class-sessions/:id
============================================ */

func (ctl *ClassSessionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var ent model.ClassSessionModel
	if err := ctl.DB.Where("class_session_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class session")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}

/* ============================================
   PATCH /admin/class-sessions/:id
   Topic/notes only; the slot itself comes from generation.
============================================ */

func (ctl *ClassSessionController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.ClassSessionModel
	if err := ctl.DB.Where("class_session_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class session")
	}

	var p dto.ClassSessionUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class session")
	}
	return helper.JsonUpdated(c, "Class session updated", dto.FromModel(ent))
}

/* ============================================
   PATCH /admin/class-sessions/:id/realize
   scheduled -> realized is one-way; realizing twice is rejected.
============================================ */

func (ctl *ClassSessionController) Realize(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.ClassSessionModel
	if err := ctl.DB.Where("class_session_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class session")
	}
	if ent.ClassSessionIsRealized {
		return helper.JsonError(c, fiber.StatusConflict, "Class session is already realized")
	}

	var p dto.RealizeDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&p); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
		}
		if err := ctl.Validator.Struct(&p); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
	}

	ent.ClassSessionIsRealized = true
	if p.ClassSessionTopic != nil {
		ent.ClassSessionTopic = p.ClassSessionTopic
	}
	if p.ClassSessionNotes != nil {
		ent.ClassSessionNotes = p.ClassSessionNotes
	}
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to realize class session")
	}
	return helper.JsonUpdated(c, "Class session realized", dto.FromModel(ent))
}
