package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// ClassService owns the class catalog side of enrollment: tutors create and
// manage classes, learners browse open ones. Occupancy itself is handled by
// EnrollmentService under the class lock.
type ClassService struct {
	store Store
}

func NewClassService(store Store) *ClassService {
	return &ClassService{store: store}
}

type CreateClassInput struct {
	SubjectID   *uuid.UUID
	Name        string
	Description string
	ClassType   string

	MaxStudents     int
	PricePerSession *float64
	TotalSessions   int
	DurationMinutes int

	ScheduleDay  string
	ScheduleTime *string
	StartDate    *time.Time
	EndDate      *time.Time

	AvailabilitySlotID *uuid.UUID
}

type UpdateClassInput struct {
	Name            *string
	Description     *string
	MaxStudents     *int
	PricePerSession *float64
	TotalSessions   *int
	DurationMinutes *int
	ScheduleTime    *string
	StartDate       *time.Time
	EndDate         *time.Time
}

func (s *ClassService) Create(ctx context.Context, tutorUserID uuid.UUID, input CreateClassInput) (*models.Class, error) {
	profile, err := s.store.Tutors().GetByUserID(ctx, tutorUserID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor profile")
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, invalidInput("class name is required")
	}
	if input.MaxStudents < 1 {
		return nil, invalidInput("max students must be >= 1")
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, invalidInput("end date before start date")
	}

	class := &models.Class{
		TutorID:         profile.ID,
		SubjectID:       input.SubjectID,
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		ClassType:       strings.ToUpper(strings.TrimSpace(input.ClassType)),
		MaxStudents:     input.MaxStudents,
		PricePerSession: input.PricePerSession,
		TotalSessions:   input.TotalSessions,
		DurationMinutes: input.DurationMinutes,
		ScheduleTime:    input.ScheduleTime,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Status:          models.ClassOpen,
	}
	if class.ClassType == "" {
		class.ClassType = "INDIVIDUAL"
	}

	if day := strings.TrimSpace(input.ScheduleDay); day != "" {
		parsed, err := models.ParseDayOfWeek(day)
		if err != nil {
			return nil, invalidInput(err.Error())
		}
		class.ScheduleDay = &parsed
	}
	if input.ScheduleTime != nil {
		if _, err := models.ParseClock(*input.ScheduleTime); err != nil {
			return nil, invalidInput(err.Error())
		}
	}

	if input.SubjectID != nil {
		if _, err := s.store.Catalog().GetSubject(ctx, *input.SubjectID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, notFound("subject")
			}
			return nil, err
		}
	}
	if input.AvailabilitySlotID != nil {
		slot, err := s.store.Slots().Get(ctx, *input.AvailabilitySlotID)
		if errors.Is(err, ErrNotFound) {
			return nil, notFound("availability slot")
		}
		if err != nil {
			return nil, err
		}
		if slot.TutorID != profile.ID {
			return nil, unauthorized("slot does not belong to you")
		}
		class.AvailabilitySlotID = input.AvailabilitySlotID
	}

	if err := s.store.Classes().Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Update(ctx context.Context, tutorUserID, classID uuid.UUID, input UpdateClassInput) (*models.Class, error) {
	var class *models.Class
	err := s.store.InTx(ctx, func(tx Store) error {
		var err error
		class, err = s.ownedClassForUpdate(ctx, tx, tutorUserID, classID)
		if err != nil {
			return err
		}
		if class.Status.Terminal() {
			return conflict("class is closed")
		}

		if input.Name != nil {
			if strings.TrimSpace(*input.Name) == "" {
				return invalidInput("class name is required")
			}
			class.Name = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			class.Description = *input.Description
		}
		if input.MaxStudents != nil {
			if *input.MaxStudents < class.CurrentStudents {
				return conflict("max students below current enrollment")
			}
			class.MaxStudents = *input.MaxStudents
			if class.CurrentStudents >= class.MaxStudents {
				class.Status = models.ClassFull
			} else {
				class.Status = models.ClassOpen
			}
		}
		if input.PricePerSession != nil {
			class.PricePerSession = input.PricePerSession
		}
		if input.TotalSessions != nil {
			class.TotalSessions = *input.TotalSessions
		}
		if input.DurationMinutes != nil {
			class.DurationMinutes = *input.DurationMinutes
		}
		if input.ScheduleTime != nil {
			if _, err := models.ParseClock(*input.ScheduleTime); err != nil {
				return invalidInput(err.Error())
			}
			class.ScheduleTime = input.ScheduleTime
		}
		if input.StartDate != nil {
			class.StartDate = input.StartDate
		}
		if input.EndDate != nil {
			class.EndDate = input.EndDate
		}
		if class.StartDate != nil && class.EndDate != nil && class.EndDate.Before(*class.StartDate) {
			return invalidInput("end date before start date")
		}

		return tx.Classes().Save(ctx, class)
	})
	if err != nil {
		return nil, err
	}
	return class, nil
}

// Delete removes a class that has no active enrollments.
func (s *ClassService) Delete(ctx context.Context, tutorUserID, classID uuid.UUID) error {
	return s.store.InTx(ctx, func(tx Store) error {
		class, err := s.ownedClassForUpdate(ctx, tx, tutorUserID, classID)
		if err != nil {
			return err
		}
		active, err := tx.Enrollments().CountActiveByClass(ctx, class.ID)
		if err != nil {
			return err
		}
		if active > 0 {
			return conflict("class has active enrollments")
		}
		return tx.Classes().Delete(ctx, class.ID)
	})
}

// Cancel marks a class CANCELLED; enrollments stay as-is for history.
func (s *ClassService) Cancel(ctx context.Context, tutorUserID, classID uuid.UUID) (*models.Class, error) {
	var class *models.Class
	err := s.store.InTx(ctx, func(tx Store) error {
		var err error
		class, err = s.ownedClassForUpdate(ctx, tx, tutorUserID, classID)
		if err != nil {
			return err
		}
		if class.Status.Terminal() {
			return conflict("class is already closed")
		}
		class.Status = models.ClassCancelled
		return tx.Classes().Save(ctx, class)
	})
	if err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) ownedClassForUpdate(ctx context.Context, tx Store, tutorUserID, classID uuid.UUID) (*models.Class, error) {
	profile, err := tx.Tutors().GetByUserID(ctx, tutorUserID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor profile")
	}
	if err != nil {
		return nil, err
	}
	class, err := tx.Classes().GetForUpdate(ctx, classID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("class")
	}
	if err != nil {
		return nil, err
	}
	if class.TutorID != profile.ID {
		return nil, unauthorized("class belongs to another tutor")
	}
	return class, nil
}

func (s *ClassService) Get(ctx context.Context, classID uuid.UUID) (*models.Class, error) {
	class, err := s.store.Classes().Get(ctx, classID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("class")
	}
	return class, err
}

// ListOpen is the learner-facing browse: classes still accepting enrollments.
func (s *ClassService) ListOpen(ctx context.Context) ([]models.Class, error) {
	return s.store.Classes().ListByStatus(ctx, models.ClassOpen)
}

func (s *ClassService) ListMine(ctx context.Context, tutorUserID uuid.UUID) ([]models.Class, error) {
	profile, err := s.store.Tutors().GetByUserID(ctx, tutorUserID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor profile")
	}
	if err != nil {
		return nil, err
	}
	return s.store.Classes().ListByTutor(ctx, profile.ID)
}

// CompleteEnded flips non-terminal classes whose end date has passed to
// COMPLETED. Called from the scheduled sweep.
func (s *ClassService) CompleteEnded(ctx context.Context, now time.Time) (int, error) {
	ended, err := s.store.Classes().ListEndedBefore(ctx, now)
	if err != nil {
		return 0, err
	}
	completed := 0
	for i := range ended {
		err := s.store.InTx(ctx, func(tx Store) error {
			class, err := tx.Classes().GetForUpdate(ctx, ended[i].ID)
			if err != nil {
				return err
			}
			if class.Status.Terminal() || class.EndDate == nil || !class.EndDate.Before(now) {
				return nil
			}
			class.Status = models.ClassCompleted
			if err := tx.Classes().Save(ctx, class); err != nil {
				return err
			}
			completed++
			return nil
		})
		if err != nil && !errors.Is(err, ErrNotFound) {
			return completed, err
		}
	}
	return completed, nil
}
