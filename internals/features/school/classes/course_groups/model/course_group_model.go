// file: internals/features/school/classes/course_groups/model/course_group_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseGroupModel pairs a course, a teacher and (optionally) a
// classroom cohort for one period. Groups generated from a timetable
// carry the classroom reference; manually created groups may not.
// The (classroom, course, period) unique index backs idempotent
// generation: NULL classrooms never collide, generated ones do.
type CourseGroupModel struct {
	// ============ PK ============
	CourseGroupID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_group_id" json:"course_group_id"`

	// Derived code, e.g. "5A-MAT"
	CourseGroupCode string `gorm:"type:varchar(32);not null;column:course_group_code" json:"course_group_code"`

	// ============ References ============
	CourseGroupCourseID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_course_groups_origin;column:course_group_course_id" json:"course_group_course_id"`
	CourseGroupTeacherID   uuid.UUID  `gorm:"type:uuid;not null;column:course_group_teacher_id" json:"course_group_teacher_id"`
	CourseGroupClassroomID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_course_groups_origin;column:course_group_classroom_id" json:"course_group_classroom_id,omitempty"`
	CourseGroupPeriodID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_course_groups_origin;column:course_group_period_id" json:"course_group_period_id"`

	// ============ Capacity ============
	CourseGroupCapacity      int `gorm:"type:integer;not null;default:0;column:course_group_capacity" json:"course_group_capacity"`
	CourseGroupEnrolledCount int `gorm:"type:integer;not null;default:0;column:course_group_enrolled_count" json:"course_group_enrolled_count"`

	CourseGroupIsActive bool `gorm:"not null;default:true;column:course_group_is_active" json:"course_group_is_active"`

	// Provenance of generation (classroom snapshot at generation time)
	CourseGroupOriginSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:course_group_origin_snapshot" json:"course_group_origin_snapshot,omitempty"`

	// ============ Audit / Soft delete ============
	CourseGroupCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:course_group_created_at" json:"course_group_created_at"`
	CourseGroupUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:course_group_updated_at" json:"course_group_updated_at"`
	CourseGroupDeletedAt gorm.DeletedAt `gorm:"column:course_group_deleted_at;index" json:"course_group_deleted_at,omitempty"`
}

func (CourseGroupModel) TableName() string { return "course_groups" }

func (m *CourseGroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseGroupID == uuid.Nil {
		m.CourseGroupID = uuid.New()
	}
	return nil
}

func (m *CourseGroupModel) BeforeSave(tx *gorm.DB) error {
	m.CourseGroupCode = strings.ToUpper(strings.TrimSpace(m.CourseGroupCode))
	if m.CourseGroupCode == "" {
		return errors.New("course_group_code must not be empty")
	}
	if m.CourseGroupCapacity < m.CourseGroupEnrolledCount {
		return errors.New("course_group_capacity must be >= course_group_enrolled_count")
	}
	return nil
}
