// file: internals/features/school/classes/classrooms/dto/classroom_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"colegio_backend/internals/features/school/classes/classrooms/model"
)

// =======================
// Request DTO
// =======================

type ClassroomCreateDTO struct {
	ClassroomGrade        string    `json:"classroom_grade"         validate:"required,min=1,max=8"`
	ClassroomSection      string    `json:"classroom_section"       validate:"required,min=1,max=8"`
	ClassroomAcademicYear string    `json:"classroom_academic_year" validate:"required,min=4"`
	ClassroomPeriodID     uuid.UUID `json:"classroom_period_id"     validate:"required"`
	ClassroomRoomLabel    string    `json:"classroom_room_label"    validate:"required,min=1,max=32"`
	ClassroomCapacity     int       `json:"classroom_capacity"      validate:"required,min=1"`
	ClassroomIsActive     *bool     `json:"classroom_is_active,omitempty"`
}

type ClassroomUpdateDTO struct {
	ClassroomGrade        *string    `json:"classroom_grade,omitempty"         validate:"omitempty,min=1,max=8"`
	ClassroomSection      *string    `json:"classroom_section,omitempty"       validate:"omitempty,min=1,max=8"`
	ClassroomAcademicYear *string    `json:"classroom_academic_year,omitempty" validate:"omitempty,min=4"`
	ClassroomPeriodID     *uuid.UUID `json:"classroom_period_id,omitempty"`
	ClassroomRoomLabel    *string    `json:"classroom_room_label,omitempty"    validate:"omitempty,min=1,max=32"`
	ClassroomCapacity     *int       `json:"classroom_capacity,omitempty"      validate:"omitempty,min=1"`
	ClassroomIsActive     *bool      `json:"classroom_is_active,omitempty"`
}

// =======================
// Response DTO
// =======================

type ClassroomResponseDTO struct {
	ClassroomID            uuid.UUID `json:"classroom_id"`
	ClassroomGrade         string    `json:"classroom_grade"`
	ClassroomSection       string    `json:"classroom_section"`
	ClassroomAcademicYear  string    `json:"classroom_academic_year"`
	ClassroomPeriodID      uuid.UUID `json:"classroom_period_id"`
	ClassroomRoomLabel     string    `json:"classroom_room_label"`
	ClassroomCapacity      int       `json:"classroom_capacity"`
	ClassroomEnrolledCount int       `json:"classroom_enrolled_count"`
	ClassroomIsActive      bool      `json:"classroom_is_active"`
	ClassroomCreatedAt     time.Time `json:"classroom_created_at"`
	ClassroomUpdatedAt     time.Time `json:"classroom_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *ClassroomCreateDTO) Normalize() {
	p.ClassroomGrade = strings.TrimSpace(p.ClassroomGrade)
	p.ClassroomSection = strings.ToUpper(strings.TrimSpace(p.ClassroomSection))
	p.ClassroomAcademicYear = strings.TrimSpace(p.ClassroomAcademicYear)
	p.ClassroomRoomLabel = strings.TrimSpace(p.ClassroomRoomLabel)
}

func (p *ClassroomCreateDTO) ToModel() model.ClassroomModel {
	isActive := true
	if p.ClassroomIsActive != nil {
		isActive = *p.ClassroomIsActive
	}
	return model.ClassroomModel{
		ClassroomGrade:        p.ClassroomGrade,
		ClassroomSection:      p.ClassroomSection,
		ClassroomAcademicYear: p.ClassroomAcademicYear,
		ClassroomPeriodID:     p.ClassroomPeriodID,
		ClassroomRoomLabel:    p.ClassroomRoomLabel,
		ClassroomCapacity:     p.ClassroomCapacity,
		ClassroomIsActive:     isActive,
	}
}

func (u *ClassroomUpdateDTO) ApplyUpdates(ent *model.ClassroomModel) {
	if u.ClassroomGrade != nil {
		ent.ClassroomGrade = strings.TrimSpace(*u.ClassroomGrade)
	}
	if u.ClassroomSection != nil {
		ent.ClassroomSection = strings.ToUpper(strings.TrimSpace(*u.ClassroomSection))
	}
	if u.ClassroomAcademicYear != nil {
		ent.ClassroomAcademicYear = strings.TrimSpace(*u.ClassroomAcademicYear)
	}
	if u.ClassroomPeriodID != nil {
		ent.ClassroomPeriodID = *u.ClassroomPeriodID
	}
	if u.ClassroomRoomLabel != nil {
		ent.ClassroomRoomLabel = strings.TrimSpace(*u.ClassroomRoomLabel)
	}
	if u.ClassroomCapacity != nil {
		ent.ClassroomCapacity = *u.ClassroomCapacity
	}
	if u.ClassroomIsActive != nil {
		ent.ClassroomIsActive = *u.ClassroomIsActive
	}
}

func FromModel(ent model.ClassroomModel) ClassroomResponseDTO {
	return ClassroomResponseDTO{
		ClassroomID:            ent.ClassroomID,
		ClassroomGrade:         ent.ClassroomGrade,
		ClassroomSection:       ent.ClassroomSection,
		ClassroomAcademicYear:  ent.ClassroomAcademicYear,
		ClassroomPeriodID:      ent.ClassroomPeriodID,
		ClassroomRoomLabel:     ent.ClassroomRoomLabel,
		ClassroomCapacity:      ent.ClassroomCapacity,
		ClassroomEnrolledCount: ent.ClassroomEnrolledCount,
		ClassroomIsActive:      ent.ClassroomIsActive,
		ClassroomCreatedAt:     ent.ClassroomCreatedAt,
		ClassroomUpdatedAt:     ent.ClassroomUpdatedAt,
	}
}

func FromModels(list []model.ClassroomModel) []ClassroomResponseDTO {
	out := make([]ClassroomResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
