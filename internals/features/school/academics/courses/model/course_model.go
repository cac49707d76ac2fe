// file: internals/features/school/academics/courses/model/course_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	// Short code used in derived group codes, e.g. "MAT", "LEN"
	CourseCode string `gorm:"type:varchar(12);not null;uniqueIndex;column:course_code" json:"course_code"`
	CourseName string `gorm:"type:text;not null;column:course_name" json:"course_name"`

	CourseIsActive bool `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`

	CourseCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:course_created_at" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:course_updated_at" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeSave(tx *gorm.DB) error {
	m.CourseCode = strings.ToUpper(strings.TrimSpace(m.CourseCode))
	m.CourseName = strings.TrimSpace(m.CourseName)
	return nil
}
