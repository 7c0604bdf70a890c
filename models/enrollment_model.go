package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment is unique per (class, learner). A dropped enrollment is
// reactivated in place on re-enroll rather than duplicated.
type Enrollment struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClassID   uuid.UUID        `gorm:"type:uuid;not null;index:idx_class_learner,unique" json:"class_id"`
	LearnerID uuid.UUID        `gorm:"type:uuid;not null;index:idx_class_learner,unique" json:"learner_id"`
	Status    EnrollmentStatus `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`

	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
