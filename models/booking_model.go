package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingRequest struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LearnerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"learner_id"`
	TutorID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"tutor_id"`
	SubjectID *uuid.UUID `gorm:"type:uuid" json:"subject_id"`

	Mode     string `gorm:"size:50" json:"mode"`
	SlotDay  string `gorm:"size:20" json:"slot_day"`
	SlotTime string `gorm:"size:20" json:"slot_time"`
	SlotText string `gorm:"size:255" json:"slot_text"`

	LearnerNote   string   `gorm:"type:text" json:"learner_note"`
	TutorResponse *string  `gorm:"type:text" json:"tutor_response"`
	ProposedPrice *float64 `gorm:"type:numeric(10,2)" json:"proposed_price"`

	Status BookingStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	RespondedAt *time.Time `json:"responded_at"`
}
