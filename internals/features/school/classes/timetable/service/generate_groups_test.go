// file: internals/features/school/classes/timetable/service/generate_groups_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	"colegio_backend/internals/features/school/classes/timetable/model"
)

func taughtBlock(course, teacher uuid.UUID, weekday int, start, end string) model.TimeBlockModel {
	b := block(uuid.Nil, weekday, start, end)
	b.TimeBlockCourseID = course
	b.TimeBlockTeacherID = teacher
	return b
}

func TestPlanGroupsOnePlanPerDistinctCourse(t *testing.T) {
	math := uuid.New()
	lang := uuid.New()
	teacher := uuid.New()

	blocks := []model.TimeBlockModel{
		taughtBlock(math, teacher, model.WeekdayMonday, "08:00", "09:00"),
		taughtBlock(math, teacher, model.WeekdayWednesday, "08:00", "09:00"),
		taughtBlock(lang, teacher, model.WeekdayTuesday, "10:00", "11:00"),
	}

	plans, errs := PlanGroups(blocks)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(plans) != 2 {
		t.Fatalf("got %d plans, want 2", len(plans))
	}
	seen := map[uuid.UUID]uuid.UUID{}
	for _, p := range plans {
		seen[p.CourseID] = p.TeacherID
	}
	if seen[math] != teacher || seen[lang] != teacher {
		t.Error("plans do not carry the schedule's teacher assignments")
	}
}

func TestPlanGroupsRejectsMultiTeacherCourse(t *testing.T) {
	math := uuid.New()
	lang := uuid.New()
	t1, t2 := uuid.New(), uuid.New()

	blocks := []model.TimeBlockModel{
		taughtBlock(math, t1, model.WeekdayMonday, "08:00", "09:00"),
		taughtBlock(math, t2, model.WeekdayThursday, "08:00", "09:00"),
		taughtBlock(lang, t1, model.WeekdayTuesday, "10:00", "11:00"),
	}

	plans, errs := PlanGroups(blocks)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if len(plans) != 1 {
		t.Fatalf("got %d plans, want 1 (the single-teacher course)", len(plans))
	}
	if plans[0].CourseID != lang {
		t.Error("the surviving plan should be the single-teacher course")
	}
}

func TestPlanGroupsIgnoresInactiveBlocks(t *testing.T) {
	math := uuid.New()
	t1, t2 := uuid.New(), uuid.New()

	stale := taughtBlock(math, t2, model.WeekdayFriday, "08:00", "09:00")
	stale.TimeBlockIsActive = false

	plans, errs := PlanGroups([]model.TimeBlockModel{
		taughtBlock(math, t1, model.WeekdayMonday, "08:00", "09:00"),
		stale,
	})
	if len(errs) != 0 {
		t.Fatalf("inactive block must not trigger the multi-teacher error: %v", errs)
	}
	if len(plans) != 1 || plans[0].TeacherID != t1 {
		t.Error("plan should come from the active block only")
	}
}

func TestDeriveGroupCode(t *testing.T) {
	tests := []struct {
		grade, section, course string
		want                   string
	}{
		{"5", "A", "MAT", "5A-MAT"},
		{"5", "a", "mat", "5A-MAT"},
		{" 11 ", " B ", " FIS ", "11B-FIS"},
	}
	for _, tt := range tests {
		if got := DeriveGroupCode(tt.grade, tt.section, tt.course); got != tt.want {
			t.Errorf("DeriveGroupCode(%q, %q, %q) = %q, want %q",
				tt.grade, tt.section, tt.course, got, tt.want)
		}
	}
}
