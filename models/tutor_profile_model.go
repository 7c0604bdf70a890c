package models

import (
	"time"

	"github.com/google/uuid"
)

// TutorProfile is the business-facing tutor entity. Its ID is distinct from
// the owning user's account ID: bookings, reviews and memberships reference
// the profile, notifications reference the user.
type TutorProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	CityID          *uuid.UUID `gorm:"type:uuid" json:"city_id"`
	Headline        *string    `gorm:"size:255" json:"headline"`
	Bio             *string    `gorm:"type:text" json:"bio"`
	Qualifications  *string    `gorm:"type:text" json:"qualifications"`
	ExperienceYears int        `gorm:"default:0" json:"experience_years"`
	MonthlyRate     float64    `gorm:"type:numeric(10,2);default:0" json:"monthly_rate"`

	// RatingAvg and RatingCount are a materialized view over the tutor's
	// APPROVED reviews; only the rating aggregator writes them.
	RatingAvg   float64 `gorm:"default:0" json:"rating_avg"`
	RatingCount int     `gorm:"default:0" json:"rating_count"`

	IsVerified bool `gorm:"default:false" json:"is_verified"`
	IsActive   bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (TutorProfile) TableName() string { return "tutor_profiles" }
