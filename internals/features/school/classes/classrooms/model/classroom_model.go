// file: internals/features/school/classes/classrooms/model/classroom_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassroomModel is a cohort: grade + section for one academic year and
// period, with a physical room and a capacity. It owns its time-blocks;
// course groups and sessions only reference it.
type ClassroomModel struct {
	// ============ PK ============
	ClassroomID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:classroom_id" json:"classroom_id"`

	// ============ Cohort identity ============
	// Example grade: "5", section: "A"
	ClassroomGrade        string    `gorm:"type:varchar(8);not null;column:classroom_grade" json:"classroom_grade"`
	ClassroomSection      string    `gorm:"type:varchar(8);not null;column:classroom_section" json:"classroom_section"`
	ClassroomAcademicYear string    `gorm:"type:text;not null;column:classroom_academic_year" json:"classroom_academic_year"`
	ClassroomPeriodID     uuid.UUID `gorm:"type:uuid;not null;column:classroom_period_id" json:"classroom_period_id"`

	// ============ Physical room & capacity ============
	ClassroomRoomLabel     string `gorm:"type:varchar(32);not null;column:classroom_room_label" json:"classroom_room_label"`
	ClassroomCapacity      int    `gorm:"type:integer;not null;default:0;column:classroom_capacity" json:"classroom_capacity"`
	ClassroomEnrolledCount int    `gorm:"type:integer;not null;default:0;column:classroom_enrolled_count" json:"classroom_enrolled_count"`

	ClassroomIsActive bool `gorm:"not null;default:true;column:classroom_is_active" json:"classroom_is_active"`

	// ============ Audit / Soft delete ============
	ClassroomCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:classroom_created_at" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:classroom_updated_at" json:"classroom_updated_at"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"classroom_deleted_at,omitempty"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

// ============ Hooks: validation & light normalization ============
func (m *ClassroomModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: capacity >= enrolled count
	if m.ClassroomCapacity < m.ClassroomEnrolledCount {
		return errors.New("classroom_capacity must be >= classroom_enrolled_count")
	}
	if m.ClassroomCapacity < 0 || m.ClassroomEnrolledCount < 0 {
		return errors.New("classroom_capacity and classroom_enrolled_count must be >= 0")
	}

	m.ClassroomGrade = strings.TrimSpace(m.ClassroomGrade)
	m.ClassroomSection = strings.ToUpper(strings.TrimSpace(m.ClassroomSection))
	m.ClassroomAcademicYear = strings.TrimSpace(m.ClassroomAcademicYear)
	m.ClassroomRoomLabel = strings.TrimSpace(m.ClassroomRoomLabel)

	return nil
}
