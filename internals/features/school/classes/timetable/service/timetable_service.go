// file: internals/features/school/classes/timetable/service/timetable_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomModel "colegio_backend/internals/features/school/classes/classrooms/model"
	"colegio_backend/internals/features/school/classes/timetable/dto"
	"colegio_backend/internals/features/school/classes/timetable/model"
)

// Service owns all timetable writes: single-block CRUD, full-schedule
// replacement, and the group/session generators built on top.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{DB: db} }

func (s *Service) loadClassroom(ctx context.Context, classroomID uuid.UUID) (*classroomModel.ClassroomModel, error) {
	var room classroomModel.ClassroomModel
	if err := s.DB.WithContext(ctx).
		Where("classroom_id = ?", classroomID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassroomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (s *Service) activeBlocks(ctx context.Context, classroomID uuid.UUID) ([]model.TimeBlockModel, error) {
	var blocks []model.TimeBlockModel
	err := s.DB.WithContext(ctx).
		Where("time_block_classroom_id = ? AND time_block_is_active = TRUE", classroomID).
		Order("time_block_weekday ASC, time_block_start_time ASC").
		Find(&blocks).Error
	return blocks, err
}

// ListBlocks returns the classroom's active weekly schedule ordered by
// weekday then start time.
func (s *Service) ListBlocks(ctx context.Context, classroomID uuid.UUID) ([]model.TimeBlockModel, error) {
	if _, err := s.loadClassroom(ctx, classroomID); err != nil {
		return nil, err
	}
	return s.activeBlocks(ctx, classroomID)
}

// CreateBlock installs one block after checking it against the
// classroom's current schedule. Returns *ScheduleConflictError when
// the slot is taken.
func (s *Service) CreateBlock(ctx context.Context, classroomID uuid.UUID, in dto.TimeBlockCreateDTO) (*model.TimeBlockModel, error) {
	if _, err := s.loadClassroom(ctx, classroomID); err != nil {
		return nil, err
	}

	ent, err := in.ToModel(classroomID)
	if err != nil {
		return nil, err
	}

	existing, err := s.activeBlocks(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	if hit := FindConflict(existing, ent, nil); hit != nil {
		return nil, &ScheduleConflictError{Existing: *hit}
	}

	if err := s.DB.WithContext(ctx).Create(&ent).Error; err != nil {
		return nil, err
	}
	return &ent, nil
}

// UpdateBlock patches one block, re-running the conflict check against
// the rest of the schedule (the block's own row is excluded).
func (s *Service) UpdateBlock(ctx context.Context, blockID uuid.UUID, in dto.TimeBlockUpdateDTO) (*model.TimeBlockModel, error) {
	var ent model.TimeBlockModel
	if err := s.DB.WithContext(ctx).
		Where("time_block_id = ?", blockID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, err
	}

	if err := in.ApplyUpdates(&ent); err != nil {
		return nil, err
	}

	if ent.TimeBlockIsActive {
		existing, err := s.activeBlocks(ctx, ent.TimeBlockClassroomID)
		if err != nil {
			return nil, err
		}
		if hit := FindConflict(existing, ent, &ent.TimeBlockID); hit != nil {
			return nil, &ScheduleConflictError{Existing: *hit}
		}
	}

	if err := s.DB.WithContext(ctx).Save(&ent).Error; err != nil {
		return nil, err
	}
	return &ent, nil
}

// DeleteBlock deactivates one block. Deleting an already inactive
// block is a no-op; only an unknown id is an error.
func (s *Service) DeleteBlock(ctx context.Context, blockID uuid.UUID) error {
	var ent model.TimeBlockModel
	if err := s.DB.WithContext(ctx).
		Where("time_block_id = ?", blockID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlockNotFound
		}
		return err
	}
	if !ent.TimeBlockIsActive {
		return nil
	}
	return s.DB.WithContext(ctx).Model(&ent).
		Update("time_block_is_active", false).Error
}
