// file: internals/features/school/academics/periods/dto/period_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"colegio_backend/internals/features/school/academics/periods/model"
)

// =======================
// Request DTO
// =======================

type PeriodCreateDTO struct {
	PeriodAcademicYear string     `json:"period_academic_year" validate:"required,min=4"`
	PeriodName         string     `json:"period_name"          validate:"required,min=2"`
	PeriodCode         *string    `json:"period_code,omitempty" validate:"omitempty,max=24"`
	PeriodStartDate    *time.Time `json:"period_start_date,omitempty"`
	// gtfield keeps it aligned with the DB CHECK (end > start)
	PeriodEndDate   *time.Time `json:"period_end_date,omitempty" validate:"omitempty,gtfield=PeriodStartDate"`
	PeriodIsCurrent *bool      `json:"period_is_current,omitempty"`
}

type PeriodUpdateDTO struct {
	PeriodAcademicYear *string    `json:"period_academic_year,omitempty" validate:"omitempty,min=4"`
	PeriodName         *string    `json:"period_name,omitempty"          validate:"omitempty,min=2"`
	PeriodCode         *string    `json:"period_code,omitempty"          validate:"omitempty,max=24"`
	PeriodStartDate    *time.Time `json:"period_start_date,omitempty"`
	PeriodEndDate      *time.Time `json:"period_end_date,omitempty"`
	PeriodIsCurrent    *bool      `json:"period_is_current,omitempty"`
}

// =======================
// Response DTO
// =======================

type PeriodResponseDTO struct {
	PeriodID           uuid.UUID  `json:"period_id"`
	PeriodAcademicYear string     `json:"period_academic_year"`
	PeriodName         string     `json:"period_name"`
	PeriodCode         *string    `json:"period_code,omitempty"`
	PeriodStartDate    *time.Time `json:"period_start_date,omitempty"`
	PeriodEndDate      *time.Time `json:"period_end_date,omitempty"`
	PeriodIsCurrent    bool       `json:"period_is_current"`
	PeriodCreatedAt    time.Time  `json:"period_created_at"`
	PeriodUpdatedAt    time.Time  `json:"period_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *PeriodCreateDTO) Normalize() {
	p.PeriodAcademicYear = strings.TrimSpace(p.PeriodAcademicYear)
	p.PeriodName = strings.TrimSpace(p.PeriodName)
}

func (p *PeriodCreateDTO) ToModel() model.PeriodModel {
	isCurrent := false
	if p.PeriodIsCurrent != nil {
		isCurrent = *p.PeriodIsCurrent
	}
	return model.PeriodModel{
		PeriodAcademicYear: p.PeriodAcademicYear,
		PeriodName:         p.PeriodName,
		PeriodCode:         p.PeriodCode,
		PeriodStartDate:    p.PeriodStartDate,
		PeriodEndDate:      p.PeriodEndDate,
		PeriodIsCurrent:    isCurrent,
	}
}

func (u *PeriodUpdateDTO) ApplyUpdates(ent *model.PeriodModel) {
	if u.PeriodAcademicYear != nil {
		ent.PeriodAcademicYear = strings.TrimSpace(*u.PeriodAcademicYear)
	}
	if u.PeriodName != nil {
		ent.PeriodName = strings.TrimSpace(*u.PeriodName)
	}
	if u.PeriodCode != nil {
		ent.PeriodCode = u.PeriodCode
	}
	if u.PeriodStartDate != nil {
		ent.PeriodStartDate = u.PeriodStartDate
	}
	if u.PeriodEndDate != nil {
		ent.PeriodEndDate = u.PeriodEndDate
	}
	if u.PeriodIsCurrent != nil {
		ent.PeriodIsCurrent = *u.PeriodIsCurrent
	}
}

// Mapper entity -> response
func FromModel(ent model.PeriodModel) PeriodResponseDTO {
	return PeriodResponseDTO{
		PeriodID:           ent.PeriodID,
		PeriodAcademicYear: ent.PeriodAcademicYear,
		PeriodName:         ent.PeriodName,
		PeriodCode:         ent.PeriodCode,
		PeriodStartDate:    ent.PeriodStartDate,
		PeriodEndDate:      ent.PeriodEndDate,
		PeriodIsCurrent:    ent.PeriodIsCurrent,
		PeriodCreatedAt:    ent.PeriodCreatedAt,
		PeriodUpdatedAt:    ent.PeriodUpdatedAt,
	}
}

func FromModels(list []model.PeriodModel) []PeriodResponseDTO {
	out := make([]PeriodResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
