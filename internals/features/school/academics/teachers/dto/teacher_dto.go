// file: internals/features/school/academics/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"colegio_backend/internals/features/school/academics/teachers/model"
)

type TeacherCreateDTO struct {
	TeacherCode     string  `json:"teacher_code"      validate:"required,min=2,max=12"`
	TeacherFullName string  `json:"teacher_full_name" validate:"required,min=3"`
	TeacherEmail    *string `json:"teacher_email,omitempty" validate:"omitempty,email"`
	TeacherIsActive *bool   `json:"teacher_is_active,omitempty"`
}

type TeacherUpdateDTO struct {
	TeacherCode     *string `json:"teacher_code,omitempty"      validate:"omitempty,min=2,max=12"`
	TeacherFullName *string `json:"teacher_full_name,omitempty" validate:"omitempty,min=3"`
	TeacherEmail    *string `json:"teacher_email,omitempty"     validate:"omitempty,email"`
	TeacherIsActive *bool   `json:"teacher_is_active,omitempty"`
}

type TeacherResponseDTO struct {
	TeacherID        uuid.UUID `json:"teacher_id"`
	TeacherCode      string    `json:"teacher_code"`
	TeacherFullName  string    `json:"teacher_full_name"`
	TeacherEmail     *string   `json:"teacher_email,omitempty"`
	TeacherIsActive  bool      `json:"teacher_is_active"`
	TeacherCreatedAt time.Time `json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `json:"teacher_updated_at"`
}

func (p *TeacherCreateDTO) Normalize() {
	p.TeacherCode = strings.ToUpper(strings.TrimSpace(p.TeacherCode))
	p.TeacherFullName = strings.TrimSpace(p.TeacherFullName)
}

func (p *TeacherCreateDTO) ToModel() model.TeacherModel {
	isActive := true
	if p.TeacherIsActive != nil {
		isActive = *p.TeacherIsActive
	}
	return model.TeacherModel{
		TeacherCode:     p.TeacherCode,
		TeacherFullName: p.TeacherFullName,
		TeacherEmail:    p.TeacherEmail,
		TeacherIsActive: isActive,
	}
}

func (u *TeacherUpdateDTO) ApplyUpdates(ent *model.TeacherModel) {
	if u.TeacherCode != nil {
		ent.TeacherCode = strings.ToUpper(strings.TrimSpace(*u.TeacherCode))
	}
	if u.TeacherFullName != nil {
		ent.TeacherFullName = strings.TrimSpace(*u.TeacherFullName)
	}
	if u.TeacherEmail != nil {
		ent.TeacherEmail = u.TeacherEmail
	}
	if u.TeacherIsActive != nil {
		ent.TeacherIsActive = *u.TeacherIsActive
	}
}

func FromModel(ent model.TeacherModel) TeacherResponseDTO {
	return TeacherResponseDTO{
		TeacherID:        ent.TeacherID,
		TeacherCode:      ent.TeacherCode,
		TeacherFullName:  ent.TeacherFullName,
		TeacherEmail:     ent.TeacherEmail,
		TeacherIsActive:  ent.TeacherIsActive,
		TeacherCreatedAt: ent.TeacherCreatedAt,
		TeacherUpdatedAt: ent.TeacherUpdatedAt,
	}
}

func FromModels(list []model.TeacherModel) []TeacherResponseDTO {
	out := make([]TeacherResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
