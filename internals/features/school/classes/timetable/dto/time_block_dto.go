// file: internals/features/school/classes/timetable/dto/time_block_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"colegio_backend/internals/features/school/classes/timetable/model"
)

// =======================
// Request DTO
// =======================

type TimeBlockCreateDTO struct {
	TimeBlockCourseID  uuid.UUID `json:"time_block_course_id"  validate:"required"`
	TimeBlockTeacherID uuid.UUID `json:"time_block_teacher_id" validate:"required"`
	TimeBlockWeekday   int       `json:"time_block_weekday"    validate:"required,min=1,max=5"`
	TimeBlockStartTime string    `json:"time_block_start_time" validate:"required"`
	TimeBlockEndTime   string    `json:"time_block_end_time"   validate:"required"`
	TimeBlockOrder     int       `json:"time_block_order"      validate:"omitempty,min=0"`
}

type TimeBlockUpdateDTO struct {
	TimeBlockCourseID  *uuid.UUID `json:"time_block_course_id,omitempty"`
	TimeBlockTeacherID *uuid.UUID `json:"time_block_teacher_id,omitempty"`
	TimeBlockWeekday   *int       `json:"time_block_weekday,omitempty" validate:"omitempty,min=1,max=5"`
	TimeBlockStartTime *string    `json:"time_block_start_time,omitempty"`
	TimeBlockEndTime   *string    `json:"time_block_end_time,omitempty"`
	TimeBlockOrder     *int       `json:"time_block_order,omitempty" validate:"omitempty,min=0"`
	TimeBlockIsActive  *bool      `json:"time_block_is_active,omitempty"`
}

// ReplaceScheduleDTO carries the full desired weekly schedule for a
// classroom plus the generation flags.
type ReplaceScheduleDTO struct {
	Blocks           []TimeBlockCreateDTO `json:"blocks" validate:"required,min=1,dive"`
	GenerateGroups   bool                 `json:"generate_groups"`
	GenerateSessions bool                 `json:"generate_sessions"`
}

// =======================
// Response DTO
// =======================

type TimeBlockResponseDTO struct {
	TimeBlockID          uuid.UUID `json:"time_block_id"`
	TimeBlockClassroomID uuid.UUID `json:"time_block_classroom_id"`
	TimeBlockCourseID    uuid.UUID `json:"time_block_course_id"`
	TimeBlockTeacherID   uuid.UUID `json:"time_block_teacher_id"`
	TimeBlockWeekday     int       `json:"time_block_weekday"`
	TimeBlockStartTime   string    `json:"time_block_start_time"`
	TimeBlockEndTime     string    `json:"time_block_end_time"`
	TimeBlockOrder       int       `json:"time_block_order"`
	TimeBlockIsActive    bool      `json:"time_block_is_active"`
	TimeBlockCreatedAt   time.Time `json:"time_block_created_at"`
	TimeBlockUpdatedAt   time.Time `json:"time_block_updated_at"`
}

// =======================
// Batch result (replace / generators)
// =======================

type ResultError struct {
	Scope  string `json:"scope"`
	Detail string `json:"detail"`
}

// GenerateResult aggregates what a batch operation accomplished.
// "Existing" counters are not errors: generation is designed to be
// safely re-run and reports skipped duplicates separately.
type GenerateResult struct {
	BlocksInstalled  int           `json:"blocks_installed"`
	GroupsCreated    int           `json:"groups_created"`
	GroupsExisting   int           `json:"groups_existing"`
	SessionsCreated  int           `json:"sessions_created"`
	SessionsExisting int           `json:"sessions_existing"`
	Errors           []ResultError `json:"errors"`
}

func (r *GenerateResult) AddError(scope, detail string) {
	r.Errors = append(r.Errors, ResultError{Scope: scope, Detail: detail})
}

func (r *GenerateResult) Merge(other *GenerateResult) {
	if other == nil {
		return
	}
	r.BlocksInstalled += other.BlocksInstalled
	r.GroupsCreated += other.GroupsCreated
	r.GroupsExisting += other.GroupsExisting
	r.SessionsCreated += other.SessionsCreated
	r.SessionsExisting += other.SessionsExisting
	r.Errors = append(r.Errors, other.Errors...)
}

// =======================
// Helpers
// =======================

// ValidationError marks input the caller can fix (malformed clock
// strings, inverted ranges). Controllers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NormalizeClock accepts "8:00", "08:00" or "08:00:00" and returns the
// canonical zero-padded "HH:MM" form.
func NormalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format("15:04"), nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format("15:04"), nil
	}
	return "", validationErrorf("invalid time-of-day format: %q", s)
}

// ToModel normalizes the clock strings and builds the entity. The
// caller owns classroom assignment.
func (p *TimeBlockCreateDTO) ToModel(classroomID uuid.UUID) (model.TimeBlockModel, error) {
	start, err := NormalizeClock(p.TimeBlockStartTime)
	if err != nil {
		return model.TimeBlockModel{}, err
	}
	end, err := NormalizeClock(p.TimeBlockEndTime)
	if err != nil {
		return model.TimeBlockModel{}, err
	}
	if start >= end {
		return model.TimeBlockModel{}, validationErrorf("start time %s must be before end time %s", start, end)
	}
	return model.TimeBlockModel{
		TimeBlockClassroomID: classroomID,
		TimeBlockCourseID:    p.TimeBlockCourseID,
		TimeBlockTeacherID:   p.TimeBlockTeacherID,
		TimeBlockWeekday:     p.TimeBlockWeekday,
		TimeBlockStartTime:   start,
		TimeBlockEndTime:     end,
		TimeBlockOrder:       p.TimeBlockOrder,
		TimeBlockIsActive:    true,
	}, nil
}

func (u *TimeBlockUpdateDTO) ApplyUpdates(ent *model.TimeBlockModel) error {
	if u.TimeBlockCourseID != nil {
		ent.TimeBlockCourseID = *u.TimeBlockCourseID
	}
	if u.TimeBlockTeacherID != nil {
		ent.TimeBlockTeacherID = *u.TimeBlockTeacherID
	}
	if u.TimeBlockWeekday != nil {
		ent.TimeBlockWeekday = *u.TimeBlockWeekday
	}
	if u.TimeBlockStartTime != nil {
		start, err := NormalizeClock(*u.TimeBlockStartTime)
		if err != nil {
			return err
		}
		ent.TimeBlockStartTime = start
	}
	if u.TimeBlockEndTime != nil {
		end, err := NormalizeClock(*u.TimeBlockEndTime)
		if err != nil {
			return err
		}
		ent.TimeBlockEndTime = end
	}
	if u.TimeBlockOrder != nil {
		ent.TimeBlockOrder = *u.TimeBlockOrder
	}
	if u.TimeBlockIsActive != nil {
		ent.TimeBlockIsActive = *u.TimeBlockIsActive
	}
	if ent.TimeBlockStartTime >= ent.TimeBlockEndTime {
		return validationErrorf("start time %s must be before end time %s", ent.TimeBlockStartTime, ent.TimeBlockEndTime)
	}
	return nil
}

func FromModel(ent model.TimeBlockModel) TimeBlockResponseDTO {
	return TimeBlockResponseDTO{
		TimeBlockID:          ent.TimeBlockID,
		TimeBlockClassroomID: ent.TimeBlockClassroomID,
		TimeBlockCourseID:    ent.TimeBlockCourseID,
		TimeBlockTeacherID:   ent.TimeBlockTeacherID,
		TimeBlockWeekday:     ent.TimeBlockWeekday,
		TimeBlockStartTime:   ent.TimeBlockStartTime,
		TimeBlockEndTime:     ent.TimeBlockEndTime,
		TimeBlockOrder:       ent.TimeBlockOrder,
		TimeBlockIsActive:    ent.TimeBlockIsActive,
		TimeBlockCreatedAt:   ent.TimeBlockCreatedAt,
		TimeBlockUpdatedAt:   ent.TimeBlockUpdatedAt,
	}
}

func FromModels(list []model.TimeBlockModel) []TimeBlockResponseDTO {
	out := make([]TimeBlockResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
