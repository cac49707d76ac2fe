// file: internals/features/school/classes/timetable/service/generate_groups.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "colegio_backend/internals/features/school/academics/courses/model"
	classroomModel "colegio_backend/internals/features/school/classes/classrooms/model"
	groupModel "colegio_backend/internals/features/school/classes/course_groups/model"
	"colegio_backend/internals/features/school/classes/timetable/dto"
	"colegio_backend/internals/features/school/classes/timetable/model"
)

// GroupPlan is one course group to materialize: the course plus the
// single teacher the timetable assigns to it.
type GroupPlan struct {
	CourseID  uuid.UUID
	TeacherID uuid.UUID
}

// PlanGroups reduces a schedule to one planned group per distinct
// course. A course taught by more than one teacher in the same
// schedule cannot be planned and yields a per-course error instead;
// the remaining courses still go through.
func PlanGroups(blocks []model.TimeBlockModel) ([]GroupPlan, []dto.ResultError) {
	var (
		plans    []GroupPlan
		errs     []dto.ResultError
		teachers = make(map[uuid.UUID]uuid.UUID)
		rejected = make(map[uuid.UUID]bool)
	)
	for i := range blocks {
		b := &blocks[i]
		if !b.TimeBlockIsActive {
			continue
		}
		prev, seen := teachers[b.TimeBlockCourseID]
		if !seen {
			teachers[b.TimeBlockCourseID] = b.TimeBlockTeacherID
			plans = append(plans, GroupPlan{CourseID: b.TimeBlockCourseID, TeacherID: b.TimeBlockTeacherID})
			continue
		}
		if prev != b.TimeBlockTeacherID && !rejected[b.TimeBlockCourseID] {
			rejected[b.TimeBlockCourseID] = true
			errs = append(errs, dto.ResultError{
				Scope:  "course " + b.TimeBlockCourseID.String(),
				Detail: "course is taught by more than one teacher in this schedule; assign one teacher per course",
			})
		}
	}
	if len(rejected) > 0 {
		kept := plans[:0]
		for _, p := range plans {
			if !rejected[p.CourseID] {
				kept = append(kept, p)
			}
		}
		plans = kept
	}
	return plans, errs
}

// DeriveGroupCode builds the group's display code from its cohort and
// course, e.g. grade "5" + section "A" + course "MAT" -> "5A-MAT".
func DeriveGroupCode(grade, section, courseCode string) string {
	return strings.ToUpper(fmt.Sprintf("%s%s-%s",
		strings.TrimSpace(grade), strings.TrimSpace(section), strings.TrimSpace(courseCode)))
}

// GenerateGroups materializes one course group per distinct course on
// the classroom's active schedule. Re-running is safe: groups that
// already exist for the (classroom, course, period) origin are counted
// as existing, not recreated.
func (s *Service) GenerateGroups(ctx context.Context, classroomID uuid.UUID) (*dto.GenerateResult, error) {
	room, err := s.loadClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	blocks, err := s.activeBlocks(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	res := &dto.GenerateResult{}
	if len(blocks) == 0 {
		return res, nil
	}

	plans, planErrs := PlanGroups(blocks)
	res.Errors = append(res.Errors, planErrs...)

	courseIDs := make([]uuid.UUID, 0, len(plans))
	for _, p := range plans {
		courseIDs = append(courseIDs, p.CourseID)
	}

	var courses []courseModel.CourseModel
	if err := s.DB.WithContext(ctx).
		Where("course_id IN ?", courseIDs).
		Find(&courses).Error; err != nil {
		return nil, err
	}
	codes := make(map[uuid.UUID]string, len(courses))
	for i := range courses {
		codes[courses[i].CourseID] = courses[i].CourseCode
	}

	snapshot := originSnapshot(room)

	for _, p := range plans {
		code, ok := codes[p.CourseID]
		if !ok {
			res.AddError("course "+p.CourseID.String(), "course not found; block references a deleted course")
			continue
		}

		ent := groupModel.CourseGroupModel{
			CourseGroupCode:           DeriveGroupCode(room.ClassroomGrade, room.ClassroomSection, code),
			CourseGroupCourseID:       p.CourseID,
			CourseGroupTeacherID:      p.TeacherID,
			CourseGroupClassroomID:    &room.ClassroomID,
			CourseGroupPeriodID:       room.ClassroomPeriodID,
			CourseGroupCapacity:       room.ClassroomCapacity,
			CourseGroupEnrolledCount:  room.ClassroomEnrolledCount,
			CourseGroupIsActive:       true,
			CourseGroupOriginSnapshot: snapshot,
		}

		create := s.DB.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&ent)
		switch {
		case create.Error != nil && errors.Is(create.Error, gorm.ErrDuplicatedKey):
			res.GroupsExisting++
		case create.Error != nil:
			res.AddError("group "+ent.CourseGroupCode, create.Error.Error())
		case create.RowsAffected == 0:
			res.GroupsExisting++
		default:
			res.GroupsCreated++
		}
	}

	return res, nil
}

func originSnapshot(room *classroomModel.ClassroomModel) datatypes.JSONMap {
	return datatypes.JSONMap{
		"generated_from": "timetable",
		"classroom_id":   room.ClassroomID.String(),
		"grade":          room.ClassroomGrade,
		"section":        room.ClassroomSection,
		"academic_year":  room.ClassroomAcademicYear,
		"period_id":      room.ClassroomPeriodID.String(),
	}
}
