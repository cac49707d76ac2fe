// file: internals/features/school/academics/periods/model/period_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PeriodModel struct {
	// ============ PK ============
	PeriodID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:period_id" json:"period_id"`

	// ============ Identity ============
	// Example academic_year: "2024/2025"
	PeriodAcademicYear string `gorm:"type:text;not null;column:period_academic_year" json:"period_academic_year"`
	// Example name: "First Trimester"
	PeriodName string  `gorm:"type:text;not null;column:period_name" json:"period_name"`
	PeriodCode *string `gorm:"type:varchar(24);column:period_code" json:"period_code,omitempty"`

	// Date bounds for session generation. Nullable on purpose: a period
	// may be registered before its calendar is settled, and the session
	// generator refuses to run until both dates are set.
	PeriodStartDate *time.Time `gorm:"type:date;column:period_start_date" json:"period_start_date,omitempty"`
	PeriodEndDate   *time.Time `gorm:"type:date;column:period_end_date" json:"period_end_date,omitempty"`

	PeriodIsCurrent bool `gorm:"not null;default:false;column:period_is_current" json:"period_is_current"`

	// ============ Audit / Soft delete ============
	PeriodCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:period_created_at" json:"period_created_at"`
	PeriodUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:period_updated_at" json:"period_updated_at"`
	PeriodDeletedAt gorm.DeletedAt `gorm:"column:period_deleted_at;index" json:"period_deleted_at,omitempty"`
}

func (PeriodModel) TableName() string { return "periods" }

// ============ Hooks: validation & light normalization ============
func (m *PeriodModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: end > start (when both set)
	if m.PeriodStartDate != nil && m.PeriodEndDate != nil {
		if !m.PeriodEndDate.After(*m.PeriodStartDate) {
			return errors.New("period_end_date must be after period_start_date")
		}
	}

	m.PeriodAcademicYear = strings.TrimSpace(m.PeriodAcademicYear)
	m.PeriodName = strings.TrimSpace(m.PeriodName)

	if m.PeriodCode != nil {
		c := strings.TrimSpace(*m.PeriodCode)
		if c == "" {
			m.PeriodCode = nil
		} else {
			m.PeriodCode = &c
		}
	}

	return nil
}
