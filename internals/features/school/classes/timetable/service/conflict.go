// file: internals/features/school/classes/timetable/service/conflict.go
package service

import (
	"github.com/google/uuid"

	"colegio_backend/internals/features/school/classes/timetable/model"
)

// overlaps reports whether two half-open [start, end) clock ranges
// intersect. Times are canonical "HH:MM" strings, so lexicographic
// comparison is chronological. Touching ranges (a ends exactly when b
// starts) do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// FindConflict returns the first block in existing that collides with
// candidate, or nil. A collision requires same classroom, same
// weekday, an active existing block and intersecting time ranges.
// excludeID skips the candidate's own row on updates.
func FindConflict(existing []model.TimeBlockModel, candidate model.TimeBlockModel, excludeID *uuid.UUID) *model.TimeBlockModel {
	for i := range existing {
		other := &existing[i]
		if excludeID != nil && other.TimeBlockID == *excludeID {
			continue
		}
		if !other.TimeBlockIsActive {
			continue
		}
		if other.TimeBlockClassroomID != candidate.TimeBlockClassroomID {
			continue
		}
		if other.TimeBlockWeekday != candidate.TimeBlockWeekday {
			continue
		}
		if overlaps(candidate.TimeBlockStartTime, candidate.TimeBlockEndTime,
			other.TimeBlockStartTime, other.TimeBlockEndTime) {
			return other
		}
	}
	return nil
}

// HasConflict is FindConflict without the witness.
func HasConflict(existing []model.TimeBlockModel, candidate model.TimeBlockModel, excludeID *uuid.UUID) bool {
	return FindConflict(existing, candidate, excludeID) != nil
}

// FindInternalConflicts checks a proposed schedule against itself and
// returns every overlapping pair. Used by full-schedule replacement so
// a bad payload is rejected before the old schedule is torn down.
func FindInternalConflicts(blocks []model.TimeBlockModel) []ConflictPair {
	var pairs []ConflictPair
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			if blocks[i].TimeBlockWeekday != blocks[j].TimeBlockWeekday {
				continue
			}
			if overlaps(blocks[i].TimeBlockStartTime, blocks[i].TimeBlockEndTime,
				blocks[j].TimeBlockStartTime, blocks[j].TimeBlockEndTime) {
				pairs = append(pairs, ConflictPair{First: blocks[i], Second: blocks[j]})
			}
		}
	}
	return pairs
}
