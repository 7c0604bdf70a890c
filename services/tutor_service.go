package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// TutorService owns the tutor profile itself: the public detail read and the
// tutor's own profile edits. Memberships and slots hang off
// AvailabilityService.
type TutorService struct {
	store Store
}

func NewTutorService(store Store) *TutorService {
	return &TutorService{store: store}
}

// TutorDetail is the public profile page: the profile joined with the pieces
// discovery only filters on.
type TutorDetail struct {
	Profile   models.TutorProfile      `json:"profile"`
	FirstName string                   `json:"first_name"`
	LastName  string                   `json:"last_name"`
	City      *models.City             `json:"city"`
	Subjects  []models.Subject         `json:"subjects"`
	Districts []models.District        `json:"districts"`
	Slots     []models.AvailabilitySlot `json:"availability"`
	Reviews   []models.Review          `json:"reviews"`
}

func (s *TutorService) GetDetail(ctx context.Context, tutorID uuid.UUID) (*TutorDetail, error) {
	profile, err := s.store.Tutors().Get(ctx, tutorID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor")
	}
	if err != nil {
		return nil, err
	}

	detail := &TutorDetail{Profile: *profile}

	user, err := s.store.Users().Get(ctx, profile.UserID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if user != nil {
		detail.FirstName = user.FirstName
		detail.LastName = user.LastName
	}

	if profile.CityID != nil {
		city, err := s.store.Catalog().GetCity(ctx, *profile.CityID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		detail.City = city
	}

	subjectRows, err := s.store.Catalog().SubjectsForTutor(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	detail.Subjects = make([]models.Subject, 0, len(subjectRows))
	for i := range subjectRows {
		subject, err := s.store.Catalog().GetSubject(ctx, subjectRows[i].SubjectID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		detail.Subjects = append(detail.Subjects, *subject)
	}

	districtRows, err := s.store.Catalog().DistrictsForTutor(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	detail.Districts = make([]models.District, 0, len(districtRows))
	for i := range districtRows {
		district, err := s.store.Catalog().GetDistrict(ctx, districtRows[i].DistrictID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		detail.Districts = append(detail.Districts, *district)
	}

	detail.Slots, err = s.store.Slots().ListActiveByTutor(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	detail.Reviews, err = s.store.Reviews().ListByTutorAndStatus(ctx, profile.ID, models.ReviewApproved)
	if err != nil {
		return nil, err
	}

	return detail, nil
}

// CreateProfile is called when a tutor account registers. One profile per
// user.
func (s *TutorService) CreateProfile(ctx context.Context, userID uuid.UUID) (*models.TutorProfile, error) {
	existing, err := s.store.Tutors().GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, conflict("tutor profile already exists")
	}

	profile := &models.TutorProfile{UserID: userID, IsActive: true}
	if err := s.store.Tutors().Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *TutorService) GetMine(ctx context.Context, tutorUserID uuid.UUID) (*models.TutorProfile, error) {
	profile, err := s.store.Tutors().GetByUserID(ctx, tutorUserID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor profile")
	}
	return profile, err
}

type UpdateProfileInput struct {
	CityID          *uuid.UUID
	Headline        *string
	Bio             *string
	Qualifications  *string
	ExperienceYears *int
	MonthlyRate     *float64
}

// UpdateMine is a partial update: nil fields keep their current value.
func (s *TutorService) UpdateMine(ctx context.Context, tutorUserID uuid.UUID, input UpdateProfileInput) (*models.TutorProfile, error) {
	profile, err := s.store.Tutors().GetByUserID(ctx, tutorUserID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor profile")
	}
	if err != nil {
		return nil, err
	}

	if input.CityID != nil {
		if _, err := s.store.Catalog().GetCity(ctx, *input.CityID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, notFound("city")
			}
			return nil, err
		}
		profile.CityID = input.CityID
	}
	if input.Headline != nil {
		profile.Headline = input.Headline
	}
	if input.Bio != nil {
		profile.Bio = input.Bio
	}
	if input.Qualifications != nil {
		profile.Qualifications = input.Qualifications
	}
	if input.ExperienceYears != nil {
		if *input.ExperienceYears < 0 {
			return nil, invalidInput("experience years must be >= 0")
		}
		profile.ExperienceYears = *input.ExperienceYears
	}
	if input.MonthlyRate != nil {
		if *input.MonthlyRate < 0 {
			return nil, invalidInput("monthly rate must be >= 0")
		}
		profile.MonthlyRate = *input.MonthlyRate
	}

	if err := s.store.Tutors().Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
