// file: internals/features/school/classes/timetable/service/generator_flow_test.go
package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	courseModel "colegio_backend/internals/features/school/academics/courses/model"
	periodModel "colegio_backend/internals/features/school/academics/periods/model"
	teacherModel "colegio_backend/internals/features/school/academics/teachers/model"
	sessionModel "colegio_backend/internals/features/school/classes/class_sessions/model"
	classroomModel "colegio_backend/internals/features/school/classes/classrooms/model"
	groupModel "colegio_backend/internals/features/school/classes/course_groups/model"
	"colegio_backend/internals/features/school/classes/timetable/dto"
)

// The schema is created by hand because the Postgres column defaults
// (gen_random_uuid, jsonb) have no SQLite equivalent; ids come from
// the models' BeforeCreate hooks instead.
var testSchema = []string{
	`CREATE TABLE periods (
		period_id TEXT PRIMARY KEY,
		period_academic_year TEXT NOT NULL,
		period_name TEXT NOT NULL,
		period_code TEXT,
		period_start_date DATE,
		period_end_date DATE,
		period_is_current BOOLEAN NOT NULL DEFAULT FALSE,
		period_created_at DATETIME,
		period_updated_at DATETIME,
		period_deleted_at DATETIME
	)`,
	`CREATE TABLE courses (
		course_id TEXT PRIMARY KEY,
		course_code TEXT NOT NULL UNIQUE,
		course_name TEXT NOT NULL,
		course_is_active BOOLEAN NOT NULL DEFAULT TRUE,
		course_created_at DATETIME,
		course_updated_at DATETIME,
		course_deleted_at DATETIME
	)`,
	`CREATE TABLE teachers (
		teacher_id TEXT PRIMARY KEY,
		teacher_code TEXT NOT NULL UNIQUE,
		teacher_full_name TEXT NOT NULL,
		teacher_email TEXT,
		teacher_is_active BOOLEAN NOT NULL DEFAULT TRUE,
		teacher_created_at DATETIME,
		teacher_updated_at DATETIME,
		teacher_deleted_at DATETIME
	)`,
	`CREATE TABLE classrooms (
		classroom_id TEXT PRIMARY KEY,
		classroom_grade TEXT NOT NULL,
		classroom_section TEXT NOT NULL,
		classroom_academic_year TEXT NOT NULL,
		classroom_period_id TEXT NOT NULL,
		classroom_room_label TEXT NOT NULL,
		classroom_capacity INTEGER NOT NULL DEFAULT 0,
		classroom_enrolled_count INTEGER NOT NULL DEFAULT 0,
		classroom_is_active BOOLEAN NOT NULL DEFAULT TRUE,
		classroom_created_at DATETIME,
		classroom_updated_at DATETIME,
		classroom_deleted_at DATETIME
	)`,
	`CREATE TABLE time_blocks (
		time_block_id TEXT PRIMARY KEY,
		time_block_classroom_id TEXT NOT NULL,
		time_block_course_id TEXT NOT NULL,
		time_block_teacher_id TEXT NOT NULL,
		time_block_weekday INTEGER NOT NULL,
		time_block_start_time TEXT NOT NULL,
		time_block_end_time TEXT NOT NULL,
		time_block_order INTEGER NOT NULL DEFAULT 0,
		time_block_is_active BOOLEAN NOT NULL DEFAULT TRUE,
		time_block_created_at DATETIME,
		time_block_updated_at DATETIME,
		time_block_deleted_at DATETIME
	)`,
	`CREATE TABLE course_groups (
		course_group_id TEXT PRIMARY KEY,
		course_group_code TEXT NOT NULL,
		course_group_course_id TEXT NOT NULL,
		course_group_teacher_id TEXT NOT NULL,
		course_group_classroom_id TEXT,
		course_group_period_id TEXT NOT NULL,
		course_group_capacity INTEGER NOT NULL DEFAULT 0,
		course_group_enrolled_count INTEGER NOT NULL DEFAULT 0,
		course_group_is_active BOOLEAN NOT NULL DEFAULT TRUE,
		course_group_origin_snapshot TEXT,
		course_group_created_at DATETIME,
		course_group_updated_at DATETIME,
		course_group_deleted_at DATETIME
	)`,
	`CREATE UNIQUE INDEX uq_course_groups_origin
		ON course_groups (course_group_course_id, course_group_classroom_id, course_group_period_id)`,
	`CREATE TABLE class_sessions (
		class_session_id TEXT PRIMARY KEY,
		class_session_group_id TEXT NOT NULL,
		class_session_date DATE NOT NULL,
		class_session_start_time TEXT NOT NULL,
		class_session_end_time TEXT NOT NULL,
		class_session_topic TEXT,
		class_session_notes TEXT,
		class_session_is_realized BOOLEAN NOT NULL DEFAULT FALSE,
		class_session_origin_snapshot TEXT,
		class_session_created_at DATETIME,
		class_session_updated_at DATETIME,
		class_session_deleted_at DATETIME
	)`,
	`CREATE UNIQUE INDEX uq_class_sessions_slot
		ON class_sessions (class_session_group_id, class_session_date, class_session_start_time)`,
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	// One connection keeps every statement on the same in-memory DB.
	sqlDB.SetMaxOpenConns(1)
	for _, stmt := range testSchema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("schema: %v", err)
		}
	}
	return db
}

type fixture struct {
	classroomID uuid.UUID
	mathID      uuid.UUID
	langID      uuid.UUID
	teacherID   uuid.UUID
}

// seedCohort sets up classroom "5A" on a two-week period
// (2024-09-02 .. 2024-09-13) with two courses and one teacher.
func seedCohort(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	start := time.Date(2024, time.September, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.September, 13, 0, 0, 0, 0, time.UTC)

	period := periodModel.PeriodModel{
		PeriodID:           uuid.New(),
		PeriodAcademicYear: "2024/2025",
		PeriodName:         "First Trimester",
		PeriodStartDate:    &start,
		PeriodEndDate:      &end,
	}
	math := courseModel.CourseModel{CourseID: uuid.New(), CourseCode: "MAT", CourseName: "Mathematics", CourseIsActive: true}
	lang := courseModel.CourseModel{CourseID: uuid.New(), CourseCode: "LEN", CourseName: "Language", CourseIsActive: true}
	teacher := teacherModel.TeacherModel{TeacherID: uuid.New(), TeacherCode: "D1", TeacherFullName: "Diana Prieto", TeacherIsActive: true}
	room := classroomModel.ClassroomModel{
		ClassroomID:           uuid.New(),
		ClassroomGrade:        "5",
		ClassroomSection:      "A",
		ClassroomAcademicYear: "2024/2025",
		ClassroomPeriodID:     period.PeriodID,
		ClassroomRoomLabel:    "A-101",
		ClassroomCapacity:     30,
		ClassroomIsActive:     true,
	}

	for _, ent := range []any{&period, &math, &lang, &teacher, &room} {
		if err := db.Create(ent).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return fixture{
		classroomID: room.ClassroomID,
		mathID:      math.CourseID,
		langID:      lang.CourseID,
		teacherID:   teacher.TeacherID,
	}
}

func installSchedule(t *testing.T, svc *Service, fx fixture, blocks []dto.TimeBlockCreateDTO) *dto.GenerateResult {
	t.Helper()
	res, err := svc.ReplaceSchedule(context.Background(), fx.classroomID, dto.ReplaceScheduleDTO{Blocks: blocks})
	if err != nil {
		t.Fatalf("ReplaceSchedule: %v", err)
	}
	return res
}

func TestGenerateGroupsSecondRunCreatesNothing(t *testing.T) {
	db := openTestDB(t)
	fx := seedCohort(t, db)
	svc := NewService(db)
	ctx := context.Background()

	res := installSchedule(t, svc, fx, []dto.TimeBlockCreateDTO{
		{TimeBlockCourseID: fx.mathID, TimeBlockTeacherID: fx.teacherID, TimeBlockWeekday: 1, TimeBlockStartTime: "08:00", TimeBlockEndTime: "09:00"},
		{TimeBlockCourseID: fx.mathID, TimeBlockTeacherID: fx.teacherID, TimeBlockWeekday: 3, TimeBlockStartTime: "08:00", TimeBlockEndTime: "09:00"},
		{TimeBlockCourseID: fx.langID, TimeBlockTeacherID: fx.teacherID, TimeBlockWeekday: 2, TimeBlockStartTime: "10:00", TimeBlockEndTime: "11:00"},
	})
	if res.BlocksInstalled != 3 {
		t.Fatalf("BlocksInstalled = %d, want 3", res.BlocksInstalled)
	}

	first, err := svc.GenerateGroups(ctx, fx.classroomID)
	if err != nil {
		t.Fatalf("first GenerateGroups: %v", err)
	}
	if first.GroupsCreated != 2 || first.GroupsExisting != 0 || len(first.Errors) != 0 {
		t.Fatalf("first run = %d created / %d existing / %d errors, want 2/0/0",
			first.GroupsCreated, first.GroupsExisting, len(first.Errors))
	}

	second, err := svc.GenerateGroups(ctx, fx.classroomID)
	if err != nil {
		t.Fatalf("second GenerateGroups: %v", err)
	}
	if second.GroupsCreated != 0 || second.GroupsExisting != 2 {
		t.Fatalf("second run = %d created / %d existing, want 0/2",
			second.GroupsCreated, second.GroupsExisting)
	}

	var groups []groupModel.CourseGroupModel
	if err := db.Order("course_group_code ASC").Find(&groups).Error; err != nil {
		t.Fatalf("load groups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].CourseGroupCode != "5A-LEN" || groups[1].CourseGroupCode != "5A-MAT" {
		t.Errorf("derived codes = %s, %s; want 5A-LEN, 5A-MAT",
			groups[0].CourseGroupCode, groups[1].CourseGroupCode)
	}
	for _, g := range groups {
		if g.CourseGroupCapacity != 30 {
			t.Errorf("group %s capacity = %d, want the classroom's 30", g.CourseGroupCode, g.CourseGroupCapacity)
		}
	}
}

func TestGenerateSessionsTwoWeekScenario(t *testing.T) {
	db := openTestDB(t)
	fx := seedCohort(t, db)
	svc := NewService(db)
	ctx := context.Background()

	installSchedule(t, svc, fx, []dto.TimeBlockCreateDTO{
		{TimeBlockCourseID: fx.mathID, TimeBlockTeacherID: fx.teacherID, TimeBlockWeekday: 1, TimeBlockStartTime: "08:00", TimeBlockEndTime: "09:00"},
	})
	if _, err := svc.GenerateGroups(ctx, fx.classroomID); err != nil {
		t.Fatalf("GenerateGroups: %v", err)
	}

	first, err := svc.GenerateSessions(ctx, fx.classroomID)
	if err != nil {
		t.Fatalf("first GenerateSessions: %v", err)
	}
	if first.SessionsCreated != 2 || first.SessionsExisting != 0 || len(first.Errors) != 0 {
		t.Fatalf("first run = %d created / %d existing / %d errors, want 2/0/0",
			first.SessionsCreated, first.SessionsExisting, len(first.Errors))
	}

	// Re-run on an unchanged schedule: zero net new sessions.
	second, err := svc.GenerateSessions(ctx, fx.classroomID)
	if err != nil {
		t.Fatalf("second GenerateSessions: %v", err)
	}
	if second.SessionsCreated != 0 || second.SessionsExisting != 2 {
		t.Fatalf("second run = %d created / %d existing, want 0/2",
			second.SessionsCreated, second.SessionsExisting)
	}

	var sessions []sessionModel.ClassSessionModel
	if err := db.Order("class_session_date ASC").Find(&sessions).Error; err != nil {
		t.Fatalf("load sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want the two Mondays", len(sessions))
	}
	wantDates := []string{"2024-09-02", "2024-09-09"}
	for i, s := range sessions {
		if got := s.ClassSessionDate.Format("2006-01-02"); got != wantDates[i] {
			t.Errorf("session[%d] date = %s, want %s", i, got, wantDates[i])
		}
		if s.ClassSessionStartTime != "08:00" || s.ClassSessionEndTime != "09:00" {
			t.Errorf("session[%d] slot = %s-%s, want 08:00-09:00",
				i, s.ClassSessionStartTime, s.ClassSessionEndTime)
		}
		if s.ClassSessionIsRealized {
			t.Errorf("session[%d] must start unrealized", i)
		}
	}
}

func TestGenerateSessionsFailsFastWithoutPeriodDates(t *testing.T) {
	db := openTestDB(t)
	fx := seedCohort(t, db)
	svc := NewService(db)
	ctx := context.Background()

	if err := db.Model(&periodModel.PeriodModel{}).
		Where("1 = 1").
		Updates(map[string]any{"period_start_date": nil, "period_end_date": nil}).Error; err != nil {
		t.Fatalf("clear period dates: %v", err)
	}

	installSchedule(t, svc, fx, []dto.TimeBlockCreateDTO{
		{TimeBlockCourseID: fx.mathID, TimeBlockTeacherID: fx.teacherID, TimeBlockWeekday: 1, TimeBlockStartTime: "08:00", TimeBlockEndTime: "09:00"},
	})

	if _, err := svc.GenerateSessions(ctx, fx.classroomID); err != ErrPeriodDatesMissing {
		t.Fatalf("err = %v, want ErrPeriodDatesMissing", err)
	}
}

func TestGenerateSessionsReportsDeactivatedGroup(t *testing.T) {
	db := openTestDB(t)
	fx := seedCohort(t, db)
	svc := NewService(db)
	ctx := context.Background()

	installSchedule(t, svc, fx, []dto.TimeBlockCreateDTO{
		{TimeBlockCourseID: fx.mathID, TimeBlockTeacherID: fx.teacherID, TimeBlockWeekday: 1, TimeBlockStartTime: "08:00", TimeBlockEndTime: "09:00"},
	})
	if _, err := svc.GenerateGroups(ctx, fx.classroomID); err != nil {
		t.Fatalf("GenerateGroups: %v", err)
	}
	if err := db.Model(&groupModel.CourseGroupModel{}).
		Where("course_group_course_id = ?", fx.mathID).
		Update("course_group_is_active", false).Error; err != nil {
		t.Fatalf("deactivate group: %v", err)
	}

	// A re-run of group generation still reports the row as existing,
	// the unique origin index holds regardless of the active flag.
	regen, err := svc.GenerateGroups(ctx, fx.classroomID)
	if err != nil {
		t.Fatalf("regen groups: %v", err)
	}
	if regen.GroupsCreated != 0 || regen.GroupsExisting != 1 {
		t.Fatalf("regen = %d created / %d existing, want 0/1", regen.GroupsCreated, regen.GroupsExisting)
	}

	res, err := svc.GenerateSessions(ctx, fx.classroomID)
	if err != nil {
		t.Fatalf("GenerateSessions: %v", err)
	}
	if res.SessionsCreated != 0 {
		t.Errorf("SessionsCreated = %d, want 0", res.SessionsCreated)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(res.Errors))
	}
	if !strings.Contains(res.Errors[0].Detail, "deactivated") {
		t.Errorf("error detail %q should say the group is deactivated, not missing", res.Errors[0].Detail)
	}
}

func TestReplaceScheduleWithGenerationFlags(t *testing.T) {
	db := openTestDB(t)
	fx := seedCohort(t, db)
	svc := NewService(db)

	res, err := svc.ReplaceSchedule(context.Background(), fx.classroomID, dto.ReplaceScheduleDTO{
		Blocks: []dto.TimeBlockCreateDTO{
			{TimeBlockCourseID: fx.mathID, TimeBlockTeacherID: fx.teacherID, TimeBlockWeekday: 1, TimeBlockStartTime: "08:00", TimeBlockEndTime: "09:00"},
			{TimeBlockCourseID: fx.langID, TimeBlockTeacherID: fx.teacherID, TimeBlockWeekday: 5, TimeBlockStartTime: "11:00", TimeBlockEndTime: "12:00"},
		},
		GenerateGroups:   true,
		GenerateSessions: true,
	})
	if err != nil {
		t.Fatalf("ReplaceSchedule: %v", err)
	}

	if res.BlocksInstalled != 2 {
		t.Errorf("BlocksInstalled = %d, want 2", res.BlocksInstalled)
	}
	if res.GroupsCreated != 2 {
		t.Errorf("GroupsCreated = %d, want 2", res.GroupsCreated)
	}
	// Two Mondays + two Fridays inside 2024-09-02 .. 2024-09-13.
	if res.SessionsCreated != 4 {
		t.Errorf("SessionsCreated = %d, want 4", res.SessionsCreated)
	}
	if len(res.Errors) != 0 {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
}
