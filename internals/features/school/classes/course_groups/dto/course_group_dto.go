// file: internals/features/school/classes/course_groups/dto/course_group_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"colegio_backend/internals/features/school/classes/course_groups/model"
)

type CourseGroupResponseDTO struct {
	CourseGroupID             uuid.UUID         `json:"course_group_id"`
	CourseGroupCode           string            `json:"course_group_code"`
	CourseGroupCourseID       uuid.UUID         `json:"course_group_course_id"`
	CourseGroupTeacherID      uuid.UUID         `json:"course_group_teacher_id"`
	CourseGroupClassroomID    *uuid.UUID        `json:"course_group_classroom_id,omitempty"`
	CourseGroupPeriodID       uuid.UUID         `json:"course_group_period_id"`
	CourseGroupCapacity       int               `json:"course_group_capacity"`
	CourseGroupEnrolledCount  int               `json:"course_group_enrolled_count"`
	CourseGroupIsActive       bool              `json:"course_group_is_active"`
	CourseGroupOriginSnapshot datatypes.JSONMap `json:"course_group_origin_snapshot,omitempty"`
	CourseGroupCreatedAt      time.Time         `json:"course_group_created_at"`
	CourseGroupUpdatedAt      time.Time         `json:"course_group_updated_at"`
}

type CourseGroupUpdateDTO struct {
	CourseGroupTeacherID *uuid.UUID `json:"course_group_teacher_id,omitempty"`
	CourseGroupCapacity  *int       `json:"course_group_capacity,omitempty" validate:"omitempty,min=0"`
	CourseGroupIsActive  *bool      `json:"course_group_is_active,omitempty"`
}

func (u *CourseGroupUpdateDTO) ApplyUpdates(ent *model.CourseGroupModel) {
	if u.CourseGroupTeacherID != nil {
		ent.CourseGroupTeacherID = *u.CourseGroupTeacherID
	}
	if u.CourseGroupCapacity != nil {
		ent.CourseGroupCapacity = *u.CourseGroupCapacity
	}
	if u.CourseGroupIsActive != nil {
		ent.CourseGroupIsActive = *u.CourseGroupIsActive
	}
}

func FromModel(ent model.CourseGroupModel) CourseGroupResponseDTO {
	return CourseGroupResponseDTO{
		CourseGroupID:             ent.CourseGroupID,
		CourseGroupCode:           ent.CourseGroupCode,
		CourseGroupCourseID:       ent.CourseGroupCourseID,
		CourseGroupTeacherID:      ent.CourseGroupTeacherID,
		CourseGroupClassroomID:    ent.CourseGroupClassroomID,
		CourseGroupPeriodID:       ent.CourseGroupPeriodID,
		CourseGroupCapacity:       ent.CourseGroupCapacity,
		CourseGroupEnrolledCount:  ent.CourseGroupEnrolledCount,
		CourseGroupIsActive:       ent.CourseGroupIsActive,
		CourseGroupOriginSnapshot: ent.CourseGroupOriginSnapshot,
		CourseGroupCreatedAt:      ent.CourseGroupCreatedAt,
		CourseGroupUpdatedAt:      ent.CourseGroupUpdatedAt,
	}
}

func FromModels(list []model.CourseGroupModel) []CourseGroupResponseDTO {
	out := make([]CourseGroupResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
