// file: internals/features/school/classes/class_sessions/model/class_session_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClassSessionModel is one dated occurrence of a course group's class.
// The (group, date, start) unique index makes session generation
// safely re-runnable: duplicates hit the index instead of inserting.
//
// State machine: scheduled (realized=false) → realized (terminal).
type ClassSessionModel struct {
	// ============ PK & owner ============
	ClassSessionID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_session_id" json:"class_session_id"`
	ClassSessionGroupID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_sessions_slot;index;column:class_session_group_id" json:"class_session_group_id"`

	// ============ Occurrence ============
	ClassSessionDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_class_sessions_slot;column:class_session_date" json:"class_session_date"`
	ClassSessionStartTime string    `gorm:"type:varchar(5);not null;uniqueIndex:uq_class_sessions_slot;column:class_session_start_time" json:"class_session_start_time"`
	ClassSessionEndTime   string    `gorm:"type:varchar(5);not null;column:class_session_end_time" json:"class_session_end_time"`

	ClassSessionTopic *string `gorm:"type:text;column:class_session_topic" json:"class_session_topic,omitempty"`
	ClassSessionNotes *string `gorm:"type:text;column:class_session_notes" json:"class_session_notes,omitempty"`

	// Set by the attendance flow once the class actually took place.
	ClassSessionIsRealized bool `gorm:"not null;default:false;column:class_session_is_realized" json:"class_session_is_realized"`

	// Provenance of generation (originating time-block snapshot)
	ClassSessionOriginSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:class_session_origin_snapshot" json:"class_session_origin_snapshot,omitempty"`

	// ============ Audit / Soft delete ============
	ClassSessionCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:class_session_created_at" json:"class_session_created_at"`
	ClassSessionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:class_session_updated_at" json:"class_session_updated_at"`
	ClassSessionDeletedAt gorm.DeletedAt `gorm:"column:class_session_deleted_at;index" json:"class_session_deleted_at,omitempty"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }

func (m *ClassSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassSessionID == uuid.Nil {
		m.ClassSessionID = uuid.New()
	}
	return nil
}

func (m *ClassSessionModel) BeforeSave(tx *gorm.DB) error {
	if m.ClassSessionStartTime >= m.ClassSessionEndTime {
		return errors.New("class_session_start_time must be before class_session_end_time")
	}
	return nil
}
