package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// EnrollmentService manages class membership. Every mutation runs inside a
// transaction that locks the class row first, so the ACTIVE-enrollment count
// is authoritative and CurrentStudents never drifts from it.
type EnrollmentService struct {
	store Store
}

func NewEnrollmentService(store Store) *EnrollmentService {
	return &EnrollmentService{store: store}
}

func (s *EnrollmentService) Enroll(ctx context.Context, learnerID, classID uuid.UUID) (*models.Enrollment, error) {
	var enrollment *models.Enrollment
	err := s.store.InTx(ctx, func(tx Store) error {
		class, err := tx.Classes().GetForUpdate(ctx, classID)
		if errors.Is(err, ErrNotFound) {
			return notFound("class")
		}
		if err != nil {
			return err
		}
		if class.Status.Terminal() {
			return conflict("class is no longer open")
		}

		existing, err := tx.Enrollments().GetByClassAndLearner(ctx, classID, learnerID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		if existing != nil && existing.Status == models.EnrollmentActive {
			return conflict("already enrolled in this class")
		}

		active, err := tx.Enrollments().CountActiveByClass(ctx, classID)
		if err != nil {
			return err
		}
		if active >= int64(class.MaxStudents) {
			return conflict("class is full")
		}

		if existing != nil {
			// dropped before; reactivate the same row to keep the
			// (class, learner) uniqueness
			existing.Status = models.EnrollmentActive
			if err := tx.Enrollments().Save(ctx, existing); err != nil {
				return err
			}
			enrollment = existing
		} else {
			enrollment = &models.Enrollment{
				ClassID:   classID,
				LearnerID: learnerID,
				Status:    models.EnrollmentActive,
			}
			if err := tx.Enrollments().Create(ctx, enrollment); err != nil {
				return err
			}
		}

		return syncClassOccupancy(ctx, tx, class)
	})
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) Drop(ctx context.Context, learnerID, classID uuid.UUID) error {
	return s.store.InTx(ctx, func(tx Store) error {
		class, err := tx.Classes().GetForUpdate(ctx, classID)
		if errors.Is(err, ErrNotFound) {
			return notFound("class")
		}
		if err != nil {
			return err
		}

		enrollment, err := tx.Enrollments().GetByClassAndLearner(ctx, classID, learnerID)
		if errors.Is(err, ErrNotFound) {
			return notFound("enrollment")
		}
		if err != nil {
			return err
		}
		if enrollment.Status != models.EnrollmentActive {
			return conflict("enrollment already dropped")
		}

		enrollment.Status = models.EnrollmentDropped
		if err := tx.Enrollments().Save(ctx, enrollment); err != nil {
			return err
		}

		return syncClassOccupancy(ctx, tx, class)
	})
}

// syncClassOccupancy recounts ACTIVE enrollments under the class lock and
// flips OPEN/FULL accordingly. Terminal classes keep their status.
func syncClassOccupancy(ctx context.Context, tx Store, class *models.Class) error {
	active, err := tx.Enrollments().CountActiveByClass(ctx, class.ID)
	if err != nil {
		return err
	}
	if active < 0 {
		active = 0
	}
	class.CurrentStudents = int(active)
	if !class.Status.Terminal() {
		if class.CurrentStudents >= class.MaxStudents {
			class.Status = models.ClassFull
		} else {
			class.Status = models.ClassOpen
		}
	}
	return tx.Classes().Save(ctx, class)
}

// Roster lists the enrollments of a class for its owning tutor.
func (s *EnrollmentService) Roster(ctx context.Context, tutorUserID, classID uuid.UUID) ([]models.Enrollment, error) {
	profile, err := s.store.Tutors().GetByUserID(ctx, tutorUserID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor profile")
	}
	if err != nil {
		return nil, err
	}

	class, err := s.store.Classes().Get(ctx, classID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("class")
	}
	if err != nil {
		return nil, err
	}
	if class.TutorID != profile.ID {
		return nil, unauthorized("class belongs to another tutor")
	}
	return s.store.Enrollments().ListByClass(ctx, classID)
}

// ListMine returns the learner's enrollments, optionally narrowed by status.
func (s *EnrollmentService) ListMine(ctx context.Context, learnerID uuid.UUID, status string) ([]models.Enrollment, error) {
	parsed, err := parseEnrollmentStatus(status)
	if err != nil {
		return nil, err
	}
	return s.store.Enrollments().ListByLearner(ctx, learnerID, parsed)
}

func parseEnrollmentStatus(status string) (*models.EnrollmentStatus, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" {
		return nil, nil
	}
	parsed := models.EnrollmentStatus(status)
	switch parsed {
	case models.EnrollmentActive, models.EnrollmentDropped:
		return &parsed, nil
	}
	return nil, invalidInput("unknown enrollment status")
}
