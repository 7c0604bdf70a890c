package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// AvailabilityService maintains each tutor's recurring weekly slots and the
// subject/district memberships discovery joins against. Slots are allowed to
// overlap; the index does not deduplicate.
type AvailabilityService struct {
	store Store
}

func NewAvailabilityService(store Store) *AvailabilityService {
	return &AvailabilityService{store: store}
}

func (s *AvailabilityService) profileForUser(ctx context.Context, userID uuid.UUID) (*models.TutorProfile, error) {
	profile, err := s.store.Tutors().GetByUserID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor profile")
	}
	return profile, err
}

func (s *AvailabilityService) AddSlot(ctx context.Context, tutorUserID uuid.UUID, day, startTime, endTime string) (*models.AvailabilitySlot, error) {
	profile, err := s.profileForUser(ctx, tutorUserID)
	if err != nil {
		return nil, err
	}

	parsedDay, err := models.ParseDayOfWeek(day)
	if err != nil {
		return nil, invalidInput(err.Error())
	}
	startMin, err := models.ParseClock(startTime)
	if err != nil {
		return nil, invalidInput(err.Error())
	}
	endMin, err := models.ParseClock(endTime)
	if err != nil {
		return nil, invalidInput(err.Error())
	}
	if startMin >= endMin {
		return nil, invalidInput("start time must be before end time")
	}

	slot := &models.AvailabilitySlot{
		TutorID:   profile.ID,
		DayOfWeek: parsedDay,
		StartTime: startTime,
		EndTime:   endTime,
		IsActive:  true,
	}
	if err := s.store.Slots().Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *AvailabilityService) RemoveSlot(ctx context.Context, tutorUserID, slotID uuid.UUID) error {
	profile, err := s.profileForUser(ctx, tutorUserID)
	if err != nil {
		return err
	}

	slot, err := s.store.Slots().Get(ctx, slotID)
	if errors.Is(err, ErrNotFound) {
		return notFound("availability slot")
	}
	if err != nil {
		return err
	}
	if slot.TutorID != profile.ID {
		return unauthorized("slot does not belong to you")
	}
	return s.store.Slots().Delete(ctx, slotID)
}

// ListForTutor is the public read: active slots of a tutor profile.
func (s *AvailabilityService) ListForTutor(ctx context.Context, tutorID uuid.UUID) ([]models.AvailabilitySlot, error) {
	if _, err := s.store.Tutors().Get(ctx, tutorID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, notFound("tutor profile")
		}
		return nil, err
	}
	return s.store.Slots().ListActiveByTutor(ctx, tutorID)
}

// ListMine returns every slot of the calling tutor, active or not.
func (s *AvailabilityService) ListMine(ctx context.Context, tutorUserID uuid.UUID) ([]models.AvailabilitySlot, error) {
	profile, err := s.profileForUser(ctx, tutorUserID)
	if err != nil {
		return nil, err
	}
	return s.store.Slots().ListByTutor(ctx, profile.ID)
}

func (s *AvailabilityService) AddSubject(ctx context.Context, tutorUserID, subjectID uuid.UUID, proficiency *string) error {
	profile, err := s.profileForUser(ctx, tutorUserID)
	if err != nil {
		return err
	}
	if _, err := s.store.Catalog().GetSubject(ctx, subjectID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound("subject")
		}
		return err
	}

	memberships, err := s.store.Catalog().SubjectsForTutor(ctx, profile.ID)
	if err != nil {
		return err
	}
	if containsSubject(memberships, subjectID) {
		return conflict("subject already on your profile")
	}

	return s.store.Catalog().AddTutorSubject(ctx, &models.TutorSubject{
		TutorID:     profile.ID,
		SubjectID:   subjectID,
		Proficiency: proficiency,
	})
}

func (s *AvailabilityService) RemoveSubject(ctx context.Context, tutorUserID, subjectID uuid.UUID) error {
	profile, err := s.profileForUser(ctx, tutorUserID)
	if err != nil {
		return err
	}
	memberships, err := s.store.Catalog().SubjectsForTutor(ctx, profile.ID)
	if err != nil {
		return err
	}
	if !containsSubject(memberships, subjectID) {
		return notFound("subject on your profile")
	}
	return s.store.Catalog().RemoveTutorSubject(ctx, profile.ID, subjectID)
}

func (s *AvailabilityService) AddDistrict(ctx context.Context, tutorUserID, districtID uuid.UUID) error {
	profile, err := s.profileForUser(ctx, tutorUserID)
	if err != nil {
		return err
	}
	if _, err := s.store.Catalog().GetDistrict(ctx, districtID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound("district")
		}
		return err
	}

	memberships, err := s.store.Catalog().DistrictsForTutor(ctx, profile.ID)
	if err != nil {
		return err
	}
	if containsDistrict(memberships, districtID) {
		return conflict("district already on your profile")
	}

	return s.store.Catalog().AddTutorDistrict(ctx, &models.TutorDistrict{
		TutorID:    profile.ID,
		DistrictID: districtID,
	})
}

func (s *AvailabilityService) RemoveDistrict(ctx context.Context, tutorUserID, districtID uuid.UUID) error {
	profile, err := s.profileForUser(ctx, tutorUserID)
	if err != nil {
		return err
	}
	memberships, err := s.store.Catalog().DistrictsForTutor(ctx, profile.ID)
	if err != nil {
		return err
	}
	if !containsDistrict(memberships, districtID) {
		return notFound("district on your profile")
	}
	return s.store.Catalog().RemoveTutorDistrict(ctx, profile.ID, districtID)
}
