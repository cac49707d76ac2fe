// file: internals/features/school/classes/class_sessions/dto/class_session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"colegio_backend/internals/features/school/classes/class_sessions/model"
)

type ClassSessionResponseDTO struct {
	ClassSessionID             uuid.UUID         `json:"class_session_id"`
	ClassSessionGroupID        uuid.UUID         `json:"class_session_group_id"`
	ClassSessionDate           string            `json:"class_session_date"`
	ClassSessionStartTime      string            `json:"class_session_start_time"`
	ClassSessionEndTime        string            `json:"class_session_end_time"`
	ClassSessionTopic          *string           `json:"class_session_topic,omitempty"`
	ClassSessionNotes          *string           `json:"class_session_notes,omitempty"`
	ClassSessionIsRealized     bool              `json:"class_session_is_realized"`
	ClassSessionOriginSnapshot datatypes.JSONMap `json:"class_session_origin_snapshot,omitempty"`
	ClassSessionCreatedAt      time.Time         `json:"class_session_created_at"`
	ClassSessionUpdatedAt      time.Time         `json:"class_session_updated_at"`
}

// RealizeDTO marks a session as having taken place, optionally
// recording what was covered.
type RealizeDTO struct {
	ClassSessionTopic *string `json:"class_session_topic,omitempty" validate:"omitempty,max=500"`
	ClassSessionNotes *string `json:"class_session_notes,omitempty" validate:"omitempty,max=2000"`
}

type ClassSessionUpdateDTO struct {
	ClassSessionTopic *string `json:"class_session_topic,omitempty" validate:"omitempty,max=500"`
	ClassSessionNotes *string `json:"class_session_notes,omitempty" validate:"omitempty,max=2000"`
}

func (u *ClassSessionUpdateDTO) ApplyUpdates(ent *model.ClassSessionModel) {
	if u.ClassSessionTopic != nil {
		ent.ClassSessionTopic = u.ClassSessionTopic
	}
	if u.ClassSessionNotes != nil {
		ent.ClassSessionNotes = u.ClassSessionNotes
	}
}

func FromModel(ent model.ClassSessionModel) ClassSessionResponseDTO {
	return ClassSessionResponseDTO{
		ClassSessionID:             ent.ClassSessionID,
		ClassSessionGroupID:        ent.ClassSessionGroupID,
		ClassSessionDate:           ent.ClassSessionDate.Format("2006-01-02"),
		ClassSessionStartTime:      ent.ClassSessionStartTime,
		ClassSessionEndTime:        ent.ClassSessionEndTime,
		ClassSessionTopic:          ent.ClassSessionTopic,
		ClassSessionNotes:          ent.ClassSessionNotes,
		ClassSessionIsRealized:     ent.ClassSessionIsRealized,
		ClassSessionOriginSnapshot: ent.ClassSessionOriginSnapshot,
		ClassSessionCreatedAt:      ent.ClassSessionCreatedAt,
		ClassSessionUpdatedAt:      ent.ClassSessionUpdatedAt,
	}
}

func FromModels(list []model.ClassSessionModel) []ClassSessionResponseDTO {
	out := make([]ClassSessionResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
