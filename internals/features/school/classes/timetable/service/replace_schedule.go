// file: internals/features/school/classes/timetable/service/replace_schedule.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"colegio_backend/internals/features/school/classes/timetable/dto"
	"colegio_backend/internals/features/school/classes/timetable/model"
)

// ReplaceSchedule swaps a classroom's entire weekly schedule in one
// transaction: every active block is deactivated and the submitted set
// is installed. The payload is validated in memory first, so a
// conflicting payload never tears down the old schedule.
//
// When the generation flags are set, group and session generation run
// afterwards best-effort: their failures land in the result's error
// list and never roll back the installed schedule.
func (s *Service) ReplaceSchedule(ctx context.Context, classroomID uuid.UUID, req dto.ReplaceScheduleDTO) (*dto.GenerateResult, error) {
	if _, err := s.loadClassroom(ctx, classroomID); err != nil {
		return nil, err
	}

	incoming := make([]model.TimeBlockModel, 0, len(req.Blocks))
	for i := range req.Blocks {
		ent, err := req.Blocks[i].ToModel(classroomID)
		if err != nil {
			return nil, err
		}
		incoming = append(incoming, ent)
	}

	if pairs := FindInternalConflicts(incoming); len(pairs) > 0 {
		return nil, &InternalConflictError{Pairs: pairs}
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TimeBlockModel{}).
			Where("time_block_classroom_id = ? AND time_block_is_active = TRUE", classroomID).
			Update("time_block_is_active", false).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(&incoming, 100).Error
	})
	if err != nil {
		return nil, err
	}

	res := &dto.GenerateResult{BlocksInstalled: len(incoming)}

	if req.GenerateGroups {
		gr, err := s.GenerateGroups(ctx, classroomID)
		if err != nil {
			log.Printf("[TIMETABLE] group generation failed for classroom %s: %v", classroomID, err)
			res.AddError("groups", err.Error())
		} else {
			res.Merge(gr)
		}
	}
	if req.GenerateSessions {
		sr, err := s.GenerateSessions(ctx, classroomID)
		if err != nil {
			log.Printf("[TIMETABLE] session generation failed for classroom %s: %v", classroomID, err)
			res.AddError("sessions", err.Error())
		} else {
			res.Merge(sr)
		}
	}

	return res, nil
}
