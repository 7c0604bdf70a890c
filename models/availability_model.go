package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is a recurring weekly window, not a calendar date.
// Overlapping slots for the same tutor are permitted.
type AvailabilitySlot struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"tutor_id"`
	DayOfWeek DayOfWeek `gorm:"size:20;not null" json:"day_of_week"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Covers reports whether the slot fully contains the [startMin, endMin)
// minutes-of-day window. Partial overlap is not enough.
func (s *AvailabilitySlot) Covers(startMin, endMin int) bool {
	slotStart, err := ParseClock(s.StartTime)
	if err != nil {
		return false
	}
	slotEnd, err := ParseClock(s.EndTime)
	if err != nil {
		return false
	}
	return slotStart <= startMin && endMin <= slotEnd
}
