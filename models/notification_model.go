package models

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type    string    `gorm:"size:50;not null" json:"type"`
	Payload string    `gorm:"type:text" json:"payload"`
	IsRead  bool      `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
