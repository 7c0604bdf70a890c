package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is private tutor-to-learner session feedback, visible only to the
// two parties.
type Feedback struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"tutor_id"`
	LearnerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"learner_id"`
	BookingID *uuid.UUID `gorm:"type:uuid" json:"booking_id"`
	SubjectID *uuid.UUID `gorm:"type:uuid" json:"subject_id"`

	SessionDate         *time.Time `json:"session_date"`
	FeedbackText        string     `gorm:"type:text;not null" json:"feedback_text"`
	Strengths           *string    `gorm:"type:text" json:"strengths"`
	AreasForImprovement *string    `gorm:"type:text" json:"areas_for_improvement"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Feedback) TableName() string { return "feedback" }
