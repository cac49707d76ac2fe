// file: internals/features/school/classes/timetable/model/time_block_model.go
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weekdays are 1..5, Monday..Friday. Times are zero-padded "HH:MM"
// strings, so lexicographic order equals chronological order and the
// half-open interval compare works directly on the columns.
const (
	WeekdayMonday    = 1
	WeekdayTuesday   = 2
	WeekdayWednesday = 3
	WeekdayThursday  = 4
	WeekdayFriday    = 5
)

var weekdayNames = map[int]string{
	WeekdayMonday:    "Monday",
	WeekdayTuesday:   "Tuesday",
	WeekdayWednesday: "Wednesday",
	WeekdayThursday:  "Thursday",
	WeekdayFriday:    "Friday",
}

func WeekdayName(d int) string {
	if n, ok := weekdayNames[d]; ok {
		return n
	}
	return fmt.Sprintf("weekday(%d)", d)
}

type TimeBlockModel struct {
	// ============ PK & owner ============
	TimeBlockID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:time_block_id" json:"time_block_id"`
	TimeBlockClassroomID uuid.UUID `gorm:"type:uuid;not null;index;column:time_block_classroom_id" json:"time_block_classroom_id"`

	// ============ References ============
	TimeBlockCourseID  uuid.UUID `gorm:"type:uuid;not null;column:time_block_course_id" json:"time_block_course_id"`
	TimeBlockTeacherID uuid.UUID `gorm:"type:uuid;not null;column:time_block_teacher_id" json:"time_block_teacher_id"`

	// ============ Weekly slot ============
	TimeBlockWeekday   int    `gorm:"type:smallint;not null;column:time_block_weekday" json:"time_block_weekday"`
	TimeBlockStartTime string `gorm:"type:varchar(5);not null;column:time_block_start_time" json:"time_block_start_time"`
	TimeBlockEndTime   string `gorm:"type:varchar(5);not null;column:time_block_end_time" json:"time_block_end_time"`
	TimeBlockOrder     int    `gorm:"type:integer;not null;default:0;column:time_block_order" json:"time_block_order"`

	TimeBlockIsActive bool `gorm:"not null;default:true;column:time_block_is_active" json:"time_block_is_active"`

	// ============ Audit / Soft delete ============
	TimeBlockCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:time_block_created_at" json:"time_block_created_at"`
	TimeBlockUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:time_block_updated_at" json:"time_block_updated_at"`
	TimeBlockDeletedAt gorm.DeletedAt `gorm:"column:time_block_deleted_at;index" json:"time_block_deleted_at,omitempty"`
}

func (TimeBlockModel) TableName() string { return "time_blocks" }

// ============ Hooks: id & validation ============
func (m *TimeBlockModel) BeforeCreate(tx *gorm.DB) error {
	if m.TimeBlockID == uuid.Nil {
		m.TimeBlockID = uuid.New()
	}
	return nil
}

func (m *TimeBlockModel) BeforeSave(tx *gorm.DB) error {
	if m.TimeBlockWeekday < WeekdayMonday || m.TimeBlockWeekday > WeekdayFriday {
		return errors.New("time_block_weekday must be 1..5 (Monday..Friday)")
	}
	// Mirror CHECK: start < end (string compare is fine for "HH:MM")
	if m.TimeBlockStartTime >= m.TimeBlockEndTime {
		return errors.New("time_block_start_time must be before time_block_end_time")
	}
	return nil
}

// Slot renders the block's weekly slot for conflict messages,
// e.g. "Monday 08:00-09:00".
func (m *TimeBlockModel) Slot() string {
	return fmt.Sprintf("%s %s-%s", WeekdayName(m.TimeBlockWeekday), m.TimeBlockStartTime, m.TimeBlockEndTime)
}
