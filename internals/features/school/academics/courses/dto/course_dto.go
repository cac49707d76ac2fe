// file: internals/features/school/academics/courses/dto/course_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"colegio_backend/internals/features/school/academics/courses/model"
)

type CourseCreateDTO struct {
	CourseCode string `json:"course_code" validate:"required,min=2,max=12"`
	CourseName string `json:"course_name" validate:"required,min=2"`
	CourseIsActive *bool `json:"course_is_active,omitempty"`
}

type CourseUpdateDTO struct {
	CourseCode     *string `json:"course_code,omitempty" validate:"omitempty,min=2,max=12"`
	CourseName     *string `json:"course_name,omitempty" validate:"omitempty,min=2"`
	CourseIsActive *bool   `json:"course_is_active,omitempty"`
}

type CourseResponseDTO struct {
	CourseID       uuid.UUID `json:"course_id"`
	CourseCode     string    `json:"course_code"`
	CourseName     string    `json:"course_name"`
	CourseIsActive bool      `json:"course_is_active"`
	CourseCreatedAt time.Time `json:"course_created_at"`
	CourseUpdatedAt time.Time `json:"course_updated_at"`
}

func (p *CourseCreateDTO) Normalize() {
	p.CourseCode = strings.ToUpper(strings.TrimSpace(p.CourseCode))
	p.CourseName = strings.TrimSpace(p.CourseName)
}

func (p *CourseCreateDTO) ToModel() model.CourseModel {
	isActive := true
	if p.CourseIsActive != nil {
		isActive = *p.CourseIsActive
	}
	return model.CourseModel{
		CourseCode:     p.CourseCode,
		CourseName:     p.CourseName,
		CourseIsActive: isActive,
	}
}

func (u *CourseUpdateDTO) ApplyUpdates(ent *model.CourseModel) {
	if u.CourseCode != nil {
		ent.CourseCode = strings.ToUpper(strings.TrimSpace(*u.CourseCode))
	}
	if u.CourseName != nil {
		ent.CourseName = strings.TrimSpace(*u.CourseName)
	}
	if u.CourseIsActive != nil {
		ent.CourseIsActive = *u.CourseIsActive
	}
}

func FromModel(ent model.CourseModel) CourseResponseDTO {
	return CourseResponseDTO{
		CourseID:        ent.CourseID,
		CourseCode:      ent.CourseCode,
		CourseName:      ent.CourseName,
		CourseIsActive:  ent.CourseIsActive,
		CourseCreatedAt: ent.CourseCreatedAt,
		CourseUpdatedAt: ent.CourseUpdatedAt,
	}
}

func FromModels(list []model.CourseModel) []CourseResponseDTO {
	out := make([]CourseResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
