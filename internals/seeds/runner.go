// file: internals/seeds/runner.go
package seeds

import (
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "colegio_backend/internals/features/school/academics/courses/model"
	periodModel "colegio_backend/internals/features/school/academics/periods/model"
	teacherModel "colegio_backend/internals/features/school/academics/teachers/model"
	classroomModel "colegio_backend/internals/features/school/classes/classrooms/model"
)

// RunAllSeeds loads a minimal demo dataset: one current period, a
// handful of courses and teachers, and one classroom. Safe to re-run;
// duplicates are skipped on their unique keys.
func RunAllSeeds(db *gorm.DB) {
	seedPeriod(db)
	seedCourses(db)
	seedTeachers(db)
	seedClassroom(db)
	log.Println("🌱 Seed data loaded")
}

func seedPeriod(db *gorm.DB) {
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)
	code := "2025-T1"
	p := periodModel.PeriodModel{
		PeriodAcademicYear: "2025/2026",
		PeriodName:         "First Trimester",
		PeriodCode:         &code,
		PeriodStartDate:    &start,
		PeriodEndDate:      &end,
		PeriodIsCurrent:    true,
	}
	var cnt int64
	db.Model(&periodModel.PeriodModel{}).
		Where("period_code = ?", code).Count(&cnt)
	if cnt == 0 {
		if err := db.Create(&p).Error; err != nil {
			log.Printf("[SEED] period: %v", err)
		}
	}
}

func seedCourses(db *gorm.DB) {
	rows := []courseModel.CourseModel{
		{CourseCode: "MAT", CourseName: "Mathematics", CourseIsActive: true},
		{CourseCode: "LEN", CourseName: "Language", CourseIsActive: true},
		{CourseCode: "FIS", CourseName: "Physics", CourseIsActive: true},
		{CourseCode: "HIS", CourseName: "History", CourseIsActive: true},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error; err != nil {
		log.Printf("[SEED] courses: %v", err)
	}
}

func seedTeachers(db *gorm.DB) {
	email := func(s string) *string { return &s }
	rows := []teacherModel.TeacherModel{
		{TeacherCode: "D1", TeacherFullName: "Diana Prieto", TeacherEmail: email("d.prieto@colegio.test"), TeacherIsActive: true},
		{TeacherCode: "D2", TeacherFullName: "Raúl Medina", TeacherEmail: email("r.medina@colegio.test"), TeacherIsActive: true},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error; err != nil {
		log.Printf("[SEED] teachers: %v", err)
	}
}

func seedClassroom(db *gorm.DB) {
	var period periodModel.PeriodModel
	if err := db.Where("period_is_current = TRUE").First(&period).Error; err != nil {
		log.Printf("[SEED] classroom: no current period, skipping")
		return
	}
	var cnt int64
	db.Model(&classroomModel.ClassroomModel{}).
		Where("classroom_grade = ? AND classroom_section = ? AND classroom_period_id = ?",
			"5", "A", period.PeriodID).Count(&cnt)
	if cnt > 0 {
		return
	}
	room := classroomModel.ClassroomModel{
		ClassroomGrade:        "5",
		ClassroomSection:      "A",
		ClassroomAcademicYear: period.PeriodAcademicYear,
		ClassroomPeriodID:     period.PeriodID,
		ClassroomRoomLabel:    "A-101",
		ClassroomCapacity:     30,
		ClassroomIsActive:     true,
	}
	if err := db.Create(&room).Error; err != nil {
		log.Printf("[SEED] classroom: %v", err)
	}
}
