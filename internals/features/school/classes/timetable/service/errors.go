// file: internals/features/school/classes/timetable/service/errors.go
package service

import (
	"errors"
	"fmt"

	"colegio_backend/internals/features/school/classes/timetable/model"
)

var (
	ErrClassroomNotFound = errors.New("classroom not found")
	ErrPeriodNotFound    = errors.New("period not found")
	ErrBlockNotFound     = errors.New("time-block not found")

	// Session generation needs the period's date range up front.
	ErrPeriodDatesMissing = errors.New("period start/end dates are not set; fill them in before generating sessions")
)

// ScheduleConflictError reports a candidate block overlapping an
// already installed one. Carries the existing block so callers can
// show the occupied slot.
type ScheduleConflictError struct {
	Existing model.TimeBlockModel
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("schedule conflict: slot already occupied (%s)", e.Existing.Slot())
}

// ConflictPair is two blocks of one submitted schedule that overlap
// each other.
type ConflictPair struct {
	First  model.TimeBlockModel `json:"first"`
	Second model.TimeBlockModel `json:"second"`
}

// InternalConflictError rejects a replacement schedule whose blocks
// overlap among themselves, before anything touches the database.
type InternalConflictError struct {
	Pairs []ConflictPair
}

func (e *InternalConflictError) Error() string {
	if len(e.Pairs) == 1 {
		return fmt.Sprintf("submitted schedule conflicts with itself: %s overlaps %s",
			e.Pairs[0].First.Slot(), e.Pairs[0].Second.Slot())
	}
	return fmt.Sprintf("submitted schedule conflicts with itself (%d overlapping pairs)", len(e.Pairs))
}
