package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// ReviewService handles learner-submitted reviews. A new review is always
// PENDING and invisible to the public until moderation approves it; the
// approval itself lives in ModerationService.
type ReviewService struct {
	store Store
}

func NewReviewService(store Store) *ReviewService {
	return &ReviewService{store: store}
}

type CreateReviewInput struct {
	TutorID   uuid.UUID
	BookingID *uuid.UUID
	Rating    int
	Comment   string
}

func (s *ReviewService) Create(ctx context.Context, learnerID uuid.UUID, input CreateReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, invalidInput("rating must be between 1 and 5")
	}

	tutor, err := s.store.Tutors().Get(ctx, input.TutorID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor")
	}
	if err != nil {
		return nil, err
	}
	if tutor.UserID == learnerID {
		return nil, invalidInput("cannot review yourself")
	}

	if input.BookingID != nil {
		booking, err := s.store.Bookings().Get(ctx, *input.BookingID)
		if errors.Is(err, ErrNotFound) {
			return nil, notFound("booking")
		}
		if err != nil {
			return nil, err
		}
		if booking.LearnerID != learnerID || booking.TutorID != tutor.ID {
			return nil, unauthorized("booking does not match this review")
		}
	}

	existing, err := s.store.Reviews().GetByTutorAndLearner(ctx, tutor.ID, learnerID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, conflict("you already reviewed this tutor")
	}

	review := &models.Review{
		TutorID:   tutor.ID,
		LearnerID: learnerID,
		BookingID: input.BookingID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		Status:    models.ReviewPending,
	}
	if err := s.store.Reviews().Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListApprovedForTutor is the public read used on tutor profiles.
func (s *ReviewService) ListApprovedForTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Review, error) {
	if _, err := s.store.Tutors().Get(ctx, tutorID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, notFound("tutor")
		}
		return nil, err
	}
	return s.store.Reviews().ListByTutorAndStatus(ctx, tutorID, models.ReviewApproved)
}

func (s *ReviewService) ListMine(ctx context.Context, learnerID uuid.UUID) ([]models.Review, error) {
	return s.store.Reviews().ListByLearner(ctx, learnerID)
}
