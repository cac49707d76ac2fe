// file: internals/features/school/academics/teachers/model/teacher_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`

	TeacherCode     string  `gorm:"type:varchar(12);not null;uniqueIndex;column:teacher_code" json:"teacher_code"`
	TeacherFullName string  `gorm:"type:text;not null;column:teacher_full_name" json:"teacher_full_name"`
	TeacherEmail    *string `gorm:"type:varchar(120);column:teacher_email" json:"teacher_email,omitempty"`

	TeacherIsActive bool `gorm:"not null;default:true;column:teacher_is_active" json:"teacher_is_active"`

	TeacherCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:teacher_created_at" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:teacher_updated_at" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeSave(tx *gorm.DB) error {
	m.TeacherCode = strings.ToUpper(strings.TrimSpace(m.TeacherCode))
	m.TeacherFullName = strings.TrimSpace(m.TeacherFullName)
	if m.TeacherEmail != nil {
		e := strings.ToLower(strings.TrimSpace(*m.TeacherEmail))
		if e == "" {
			m.TeacherEmail = nil
		} else {
			m.TeacherEmail = &e
		}
	}
	return nil
}
