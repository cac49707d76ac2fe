// file: internals/features/school/academics/periods/controller/period_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "colegio_backend/internals/features/school/academics/periods/dto"
	model "colegio_backend/internals/features/school/academics/periods/model"
	helper "colegio_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type PeriodController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPeriodController(db *gorm.DB, v *validator.Validate) *PeriodController {
	if v == nil {
		v = validator.New()
	}
	return &PeriodController{DB: db, Validator: v}
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
   POST /admin/periods
============================================ */

func (ctl *PeriodController) Create(c *fiber.Ctx) error {
	var p dto.PeriodCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	if p.PeriodStartDate != nil && p.PeriodEndDate != nil && !p.PeriodEndDate.After(*p.PeriodStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End date must be after start date")
	}

	ent := p.ToModel()

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Only one current period at a time
		if ent.PeriodIsCurrent {
			if err := tx.Model(&model.PeriodModel{}).
				Where("period_is_current = TRUE").
				Update("period_is_current", false).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to clear current period")
			}
		}
		if err := tx.Create(&ent).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create period")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Period created", dto.FromModel(ent))
}

/* ============================================
   PATCH /admin/periods/:id
============================================ */

func (ctl *PeriodController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.PeriodModel
	if err := ctl.DB.Where("period_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Period not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load period")
	}

	var p dto.PeriodUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	// Validate dates if changed
	start, end := ent.PeriodStartDate, ent.PeriodEndDate
	if p.PeriodStartDate != nil {
		start = p.PeriodStartDate
	}
	if p.PeriodEndDate != nil {
		end = p.PeriodEndDate
	}
	if start != nil && end != nil && !end.After(*start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End date must be after start date")
	}

	p.ApplyUpdates(&ent)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if ent.PeriodIsCurrent {
			if err := tx.Model(&model.PeriodModel{}).
				Where("period_is_current = TRUE AND period_id <> ?", ent.PeriodID).
				Update("period_is_current", false).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to clear current period")
			}
		}
		if err := tx.Save(&ent).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update period")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Period updated", dto.FromModel(ent))
}

/* ============================================
   DELETE /admin/periods/:id (soft)
============================================ */

func (ctl *PeriodController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := ctl.DB.Where("period_id = ?", id).Delete(&model.PeriodModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete period")
	}
	return helper.JsonDeleted(c, "Period deleted", fiber.Map{"period_id": id})
}

/* ============================================
   GET /periods, GET /periods/:id
============================================ */

func (ctl *PeriodController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.Model(&model.PeriodModel{})
	if v := c.Query("year"); v != "" {
		q = q.Where("period_academic_year = ?", v)
	}
	if v := c.Query("current"); v == "true" {
		q = q.Where("period_is_current = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count periods")
	}

	var rows []model.PeriodModel
	if err := q.Order("period_start_date DESC NULLS LAST").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list periods")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *PeriodController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var ent model.PeriodModel
	if err := ctl.DB.Where("period_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Period not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load period")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}
