package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// FeedbackService handles private tutor-to-learner session feedback. Unlike
// reviews it skips moderation entirely: only the two parties can read it.
type FeedbackService struct {
	store  Store
	notify NotificationSink
}

func NewFeedbackService(store Store, notify NotificationSink) *FeedbackService {
	return &FeedbackService{store: store, notify: notify}
}

type CreateFeedbackInput struct {
	LearnerID           uuid.UUID
	BookingID           *uuid.UUID
	SubjectID           *uuid.UUID
	SessionDate         *time.Time
	FeedbackText        string
	Strengths           *string
	AreasForImprovement *string
}

func (s *FeedbackService) Create(ctx context.Context, tutorUserID uuid.UUID, input CreateFeedbackInput) (*models.Feedback, error) {
	profile, err := s.store.Tutors().GetByUserID(ctx, tutorUserID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor profile")
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.FeedbackText) == "" {
		return nil, invalidInput("feedback text is required")
	}

	learner, err := s.store.Users().Get(ctx, input.LearnerID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("learner")
	}
	if err != nil {
		return nil, err
	}

	if input.BookingID != nil {
		booking, err := s.store.Bookings().Get(ctx, *input.BookingID)
		if errors.Is(err, ErrNotFound) {
			return nil, notFound("booking")
		}
		if err != nil {
			return nil, err
		}
		if booking.TutorID != profile.ID || booking.LearnerID != learner.ID {
			return nil, unauthorized("booking does not match this feedback")
		}
	}

	feedback := &models.Feedback{
		TutorID:             profile.ID,
		LearnerID:           learner.ID,
		BookingID:           input.BookingID,
		SubjectID:           input.SubjectID,
		SessionDate:         input.SessionDate,
		FeedbackText:        strings.TrimSpace(input.FeedbackText),
		Strengths:           input.Strengths,
		AreasForImprovement: input.AreasForImprovement,
	}
	if err := s.store.Feedback().Create(ctx, feedback); err != nil {
		return nil, err
	}

	s.notify.Emit(learner.ID, EventFeedbackAdded, map[string]any{"feedbackId": feedback.ID})

	return feedback, nil
}

// Get enforces the two-party privacy rule: the learner it is about, or the
// tutor who wrote it.
func (s *FeedbackService) Get(ctx context.Context, callerUserID, feedbackID uuid.UUID) (*models.Feedback, error) {
	feedback, err := s.store.Feedback().Get(ctx, feedbackID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("feedback")
	}
	if err != nil {
		return nil, err
	}

	if feedback.LearnerID == callerUserID {
		return feedback, nil
	}
	profile, err := s.store.Tutors().GetByUserID(ctx, callerUserID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if profile != nil && feedback.TutorID == profile.ID {
		return feedback, nil
	}
	return nil, unauthorized("feedback is private to its parties")
}

func (s *FeedbackService) ListReceived(ctx context.Context, learnerID uuid.UUID) ([]models.Feedback, error) {
	return s.store.Feedback().ListByLearner(ctx, learnerID)
}

func (s *FeedbackService) ListGiven(ctx context.Context, tutorUserID uuid.UUID) ([]models.Feedback, error) {
	profile, err := s.store.Tutors().GetByUserID(ctx, tutorUserID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor profile")
	}
	if err != nil {
		return nil, err
	}
	return s.store.Feedback().ListByTutor(ctx, profile.ID)
}
