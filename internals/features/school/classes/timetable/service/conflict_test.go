// file: internals/features/school/classes/timetable/service/conflict_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	"colegio_backend/internals/features/school/classes/timetable/model"
)

func block(classroom uuid.UUID, weekday int, start, end string) model.TimeBlockModel {
	return model.TimeBlockModel{
		TimeBlockID:          uuid.New(),
		TimeBlockClassroomID: classroom,
		TimeBlockCourseID:    uuid.New(),
		TimeBlockTeacherID:   uuid.New(),
		TimeBlockWeekday:     weekday,
		TimeBlockStartTime:   start,
		TimeBlockEndTime:     end,
		TimeBlockIsActive:    true,
	}
}

func TestHasConflict(t *testing.T) {
	roomA := uuid.New()
	roomB := uuid.New()

	tests := []struct {
		name      string
		existing  []model.TimeBlockModel
		candidate model.TimeBlockModel
		want      bool
	}{
		{
			name:      "empty schedule never conflicts",
			existing:  nil,
			candidate: block(roomA, model.WeekdayMonday, "08:00", "09:00"),
			want:      false,
		},
		{
			name:      "full overlap",
			existing:  []model.TimeBlockModel{block(roomA, model.WeekdayMonday, "08:00", "09:00")},
			candidate: block(roomA, model.WeekdayMonday, "08:00", "09:00"),
			want:      true,
		},
		{
			name:      "partial overlap at the tail",
			existing:  []model.TimeBlockModel{block(roomA, model.WeekdayMonday, "08:00", "09:00")},
			candidate: block(roomA, model.WeekdayMonday, "08:30", "09:30"),
			want:      true,
		},
		{
			name:      "candidate fully inside existing",
			existing:  []model.TimeBlockModel{block(roomA, model.WeekdayMonday, "08:00", "10:00")},
			candidate: block(roomA, model.WeekdayMonday, "08:30", "09:00"),
			want:      true,
		},
		{
			name:      "touching slots do not conflict",
			existing:  []model.TimeBlockModel{block(roomA, model.WeekdayMonday, "08:00", "09:00")},
			candidate: block(roomA, model.WeekdayMonday, "09:00", "10:00"),
			want:      false,
		},
		{
			name:      "same slot on another weekday",
			existing:  []model.TimeBlockModel{block(roomA, model.WeekdayMonday, "08:00", "09:00")},
			candidate: block(roomA, model.WeekdayTuesday, "08:00", "09:00"),
			want:      false,
		},
		{
			name:      "same slot in another classroom",
			existing:  []model.TimeBlockModel{block(roomA, model.WeekdayMonday, "08:00", "09:00")},
			candidate: block(roomB, model.WeekdayMonday, "08:00", "09:00"),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasConflict(tt.existing, tt.candidate, nil)
			if got != tt.want {
				t.Errorf("HasConflict() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasConflictSkipsInactive(t *testing.T) {
	roomA := uuid.New()
	inactive := block(roomA, model.WeekdayMonday, "08:00", "09:00")
	inactive.TimeBlockIsActive = false

	candidate := block(roomA, model.WeekdayMonday, "08:00", "09:00")
	if HasConflict([]model.TimeBlockModel{inactive}, candidate, nil) {
		t.Error("inactive blocks must not count as conflicts")
	}
}

func TestHasConflictExcludesOwnRow(t *testing.T) {
	roomA := uuid.New()
	existing := block(roomA, model.WeekdayMonday, "08:00", "09:00")

	// Updating a block against a snapshot that contains itself.
	candidate := existing
	candidate.TimeBlockStartTime = "08:15"
	candidate.TimeBlockEndTime = "09:15"

	if HasConflict([]model.TimeBlockModel{existing}, candidate, &existing.TimeBlockID) {
		t.Error("a block must not conflict with its own stored row")
	}
	if !HasConflict([]model.TimeBlockModel{existing}, candidate, nil) {
		t.Error("without the exclusion the overlap should be detected")
	}
}

func TestFindConflictReturnsWitness(t *testing.T) {
	roomA := uuid.New()
	occupied := block(roomA, model.WeekdayFriday, "10:00", "11:00")
	candidate := block(roomA, model.WeekdayFriday, "10:30", "11:30")

	hit := FindConflict([]model.TimeBlockModel{occupied}, candidate, nil)
	if hit == nil {
		t.Fatal("expected a conflict witness")
	}
	if hit.TimeBlockID != occupied.TimeBlockID {
		t.Errorf("witness = %s, want %s", hit.TimeBlockID, occupied.TimeBlockID)
	}
}

func TestFindInternalConflicts(t *testing.T) {
	roomA := uuid.New()

	t.Run("clean schedule", func(t *testing.T) {
		blocks := []model.TimeBlockModel{
			block(roomA, model.WeekdayMonday, "08:00", "09:00"),
			block(roomA, model.WeekdayMonday, "09:00", "10:00"),
			block(roomA, model.WeekdayTuesday, "08:00", "09:00"),
		}
		if pairs := FindInternalConflicts(blocks); len(pairs) != 0 {
			t.Errorf("expected no conflicts, got %d", len(pairs))
		}
	})

	t.Run("one overlapping pair", func(t *testing.T) {
		a := block(roomA, model.WeekdayMonday, "08:00", "09:00")
		b := block(roomA, model.WeekdayMonday, "08:30", "09:30")
		pairs := FindInternalConflicts([]model.TimeBlockModel{a, b})
		if len(pairs) != 1 {
			t.Fatalf("expected 1 pair, got %d", len(pairs))
		}
		if pairs[0].First.TimeBlockID != a.TimeBlockID || pairs[0].Second.TimeBlockID != b.TimeBlockID {
			t.Error("pair does not reference the overlapping blocks")
		}
	})

	t.Run("three mutually overlapping blocks yield three pairs", func(t *testing.T) {
		blocks := []model.TimeBlockModel{
			block(roomA, model.WeekdayWednesday, "08:00", "10:00"),
			block(roomA, model.WeekdayWednesday, "08:30", "09:30"),
			block(roomA, model.WeekdayWednesday, "09:00", "11:00"),
		}
		if pairs := FindInternalConflicts(blocks); len(pairs) != 3 {
			t.Errorf("expected 3 pairs, got %d", len(pairs))
		}
	})
}
