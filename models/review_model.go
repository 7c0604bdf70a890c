package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is unique per (tutor, learner). Reviews are created PENDING and only
// count toward the tutor's rating once a moderator approves them.
type Review struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_tutor_learner_review,unique" json:"tutor_id"`
	LearnerID uuid.UUID  `gorm:"type:uuid;not null;index:idx_tutor_learner_review,unique" json:"learner_id"`
	BookingID *uuid.UUID `gorm:"type:uuid" json:"booking_id"`

	Rating  int          `gorm:"not null" json:"rating"`
	Comment string       `gorm:"type:text" json:"comment"`
	Status  ReviewStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
