package models

import "github.com/google/uuid"

type City struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"size:100;not null;unique" json:"name"`
}

type District struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CityID uuid.UUID `gorm:"type:uuid;not null;index" json:"city_id"`
	Name   string    `gorm:"size:100;not null" json:"name"`
}

type Subject struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:100;not null;unique" json:"name"`
	Category *string   `gorm:"size:100" json:"category"`
}

// TutorSubject links a tutor profile to a subject it teaches.
type TutorSubject struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID     uuid.UUID `gorm:"type:uuid;not null;index:idx_tutor_subject,unique" json:"tutor_id"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null;index:idx_tutor_subject,unique" json:"subject_id"`
	Proficiency *string   `gorm:"size:50" json:"proficiency"`
}

// TutorDistrict links a tutor profile to a district it serves.
type TutorDistrict struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID    uuid.UUID `gorm:"type:uuid;not null;index:idx_tutor_district,unique" json:"tutor_id"`
	DistrictID uuid.UUID `gorm:"type:uuid;not null;index:idx_tutor_district,unique" json:"district_id"`
}
