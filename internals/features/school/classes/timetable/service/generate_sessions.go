// file: internals/features/school/classes/timetable/service/generate_sessions.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	periodModel "colegio_backend/internals/features/school/academics/periods/model"
	sessionModel "colegio_backend/internals/features/school/classes/class_sessions/model"
	groupModel "colegio_backend/internals/features/school/classes/course_groups/model"
	"colegio_backend/internals/features/school/classes/timetable/dto"
)

// GenerateSessions expands the classroom's active schedule into dated
// class sessions across its period's date range. Every weekday
// occurrence between the period bounds (inclusive) gets a session row.
//
// Fails fast with ErrPeriodDatesMissing when the period has no dates.
// Blocks whose course has no generated group are reported per-block
// and skipped; run group generation first. Re-running never duplicates
// sessions thanks to the (group, date, start) unique index.
func (s *Service) GenerateSessions(ctx context.Context, classroomID uuid.UUID) (*dto.GenerateResult, error) {
	room, err := s.loadClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	var period periodModel.PeriodModel
	if err := s.DB.WithContext(ctx).
		Where("period_id = ?", room.ClassroomPeriodID).
		First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}
	if period.PeriodStartDate == nil || period.PeriodEndDate == nil {
		return nil, ErrPeriodDatesMissing
	}

	blocks, err := s.activeBlocks(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	res := &dto.GenerateResult{}
	if len(blocks) == 0 {
		return res, nil
	}

	// Groups previously generated for this classroom+period, by course.
	// Deactivated groups are resolved too, but only to tell the caller
	// apart from a never-generated group.
	var groups []groupModel.CourseGroupModel
	if err := s.DB.WithContext(ctx).
		Where("course_group_classroom_id = ? AND course_group_period_id = ?",
			classroomID, room.ClassroomPeriodID).
		Find(&groups).Error; err != nil {
		return nil, err
	}
	groupByCourse := make(map[uuid.UUID]uuid.UUID, len(groups))
	inactiveCourses := make(map[uuid.UUID]bool)
	for i := range groups {
		if groups[i].CourseGroupIsActive {
			groupByCourse[groups[i].CourseGroupCourseID] = groups[i].CourseGroupID
		} else {
			inactiveCourses[groups[i].CourseGroupCourseID] = true
		}
	}

	var rows []sessionModel.ClassSessionModel
	for i := range blocks {
		b := &blocks[i]
		groupID, ok := groupByCourse[b.TimeBlockCourseID]
		if !ok {
			if inactiveCourses[b.TimeBlockCourseID] {
				res.AddError("block "+b.Slot(),
					fmt.Sprintf("course group for course %s is deactivated; reactivate it before generating sessions", b.TimeBlockCourseID))
			} else {
				res.AddError("block "+b.Slot(),
					fmt.Sprintf("no course group for course %s; generate groups first", b.TimeBlockCourseID))
			}
			continue
		}
		for _, day := range MatchingDates(*period.PeriodStartDate, *period.PeriodEndDate, b.TimeBlockWeekday) {
			rows = append(rows, sessionModel.ClassSessionModel{
				ClassSessionGroupID:   groupID,
				ClassSessionDate:      day,
				ClassSessionStartTime: b.TimeBlockStartTime,
				ClassSessionEndTime:   b.TimeBlockEndTime,
				ClassSessionOriginSnapshot: datatypes.JSONMap{
					"generated_from": "timetable",
					"time_block_id":  b.TimeBlockID.String(),
					"classroom_id":   classroomID.String(),
					"weekday":        b.TimeBlockWeekday,
				},
			})
		}
	}

	if len(rows) > 0 {
		insert := s.DB.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(&rows, 200)
		if insert.Error != nil {
			return nil, insert.Error
		}
		res.SessionsCreated = int(insert.RowsAffected)
		res.SessionsExisting = len(rows) - res.SessionsCreated
	}

	return res, nil
}
