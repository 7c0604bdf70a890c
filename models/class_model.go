package models

import (
	"time"

	"github.com/google/uuid"
)

type Class struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"tutor_id"`
	SubjectID *uuid.UUID `gorm:"type:uuid" json:"subject_id"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ClassType   string `gorm:"size:50;default:'INDIVIDUAL'" json:"class_type"`

	// CurrentStudents mirrors the count of ACTIVE enrollments and is only
	// mutated together with enrollment rows inside one transaction.
	MaxStudents     int `gorm:"not null;default:1" json:"max_students"`
	CurrentStudents int `gorm:"not null;default:0" json:"current_students"`

	PricePerSession *float64   `gorm:"type:numeric(10,2)" json:"price_per_session"`
	TotalSessions   int        `gorm:"default:0" json:"total_sessions"`
	DurationMinutes int        `gorm:"default:0" json:"duration_minutes"`
	ScheduleDay     *DayOfWeek `gorm:"size:20" json:"schedule_day"`
	ScheduleTime    *string    `gorm:"size:20" json:"schedule_time"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`

	AvailabilitySlotID *uuid.UUID `gorm:"type:uuid" json:"availability_slot_id"`

	Status ClassStatus `gorm:"size:20;not null;default:'OPEN'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Class) TableName() string { return "classes" }
