package models

import (
	"time"

	"github.com/google/uuid"
)

// Flag is an independent moderation trail; it is not tied 1:1 to the flagged
// entity's own status field.
type Flag struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	ContentType FlagContentType `gorm:"size:50;not null" json:"content_type"`
	ContentID   uuid.UUID       `gorm:"type:uuid;not null" json:"content_id"`
	Reason      string          `gorm:"type:text" json:"reason"`
	Status      FlagStatus      `gorm:"size:50;not null;default:'PENDING'" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
