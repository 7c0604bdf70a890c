package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// BookingService runs the PENDING -> ACCEPTED/DECLINED lifecycle of a booking
// request. The persisted transition always lands before the notification; the
// notification can fail without affecting the booking.
type BookingService struct {
	store  Store
	notify NotificationSink
}

func NewBookingService(store Store, notify NotificationSink) *BookingService {
	return &BookingService{store: store, notify: notify}
}

type CreateBookingInput struct {
	TutorID       uuid.UUID
	SubjectID     *uuid.UUID
	Mode          string
	Slot          string
	Note          string
	ProposedPrice *float64
}

func (s *BookingService) Create(ctx context.Context, learnerID uuid.UUID, input CreateBookingInput) (*models.BookingRequest, error) {
	tutor, err := s.store.Tutors().Get(ctx, input.TutorID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor")
	}
	if err != nil {
		return nil, err
	}

	booking := &models.BookingRequest{
		LearnerID:     learnerID,
		TutorID:       tutor.ID,
		SubjectID:     input.SubjectID,
		Mode:          input.Mode,
		SlotText:      input.Slot,
		LearnerNote:   input.Note,
		ProposedPrice: input.ProposedPrice,
		Status:        models.BookingPending,
	}
	booking.SlotDay, booking.SlotTime = splitSlotText(input.Slot)

	if err := s.store.Bookings().Create(ctx, booking); err != nil {
		return nil, err
	}

	s.notify.Emit(tutor.UserID, EventBookingCreated, map[string]any{"bookingId": booking.ID})

	return booking, nil
}

// Respond applies the tutor's single accept/decline decision. Validation
// order: existence, ownership, state.
func (s *BookingService) Respond(ctx context.Context, tutorUserID, bookingID uuid.UUID, accept bool, responseText *string) (*models.BookingRequest, error) {
	profile, err := s.store.Tutors().GetByUserID(ctx, tutorUserID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor profile")
	}
	if err != nil {
		return nil, err
	}

	next := models.BookingDeclined
	event := EventBookingDeclined
	if accept {
		next = models.BookingAccepted
		event = EventBookingAccepted
	}

	var booking *models.BookingRequest
	err = s.store.InTx(ctx, func(tx Store) error {
		booking, err = tx.Bookings().GetForUpdate(ctx, bookingID)
		if errors.Is(err, ErrNotFound) {
			return notFound("booking")
		}
		if err != nil {
			return err
		}
		if booking.TutorID != profile.ID {
			return unauthorized("booking belongs to another tutor")
		}
		if !booking.Status.CanTransitionTo(next) {
			return conflict("booking already responded to")
		}

		now := time.Now()
		booking.Status = next
		booking.TutorResponse = responseText
		booking.RespondedAt = &now
		return tx.Bookings().Save(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.notify.Emit(booking.LearnerID, event, map[string]any{"bookingId": booking.ID})

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, bookingID uuid.UUID) (*models.BookingRequest, error) {
	booking, err := s.store.Bookings().Get(ctx, bookingID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("booking")
	}
	return booking, err
}

// ListSent returns bookings created by a learner, optionally narrowed by
// status.
func (s *BookingService) ListSent(ctx context.Context, learnerID uuid.UUID, status string) ([]models.BookingRequest, error) {
	parsed, err := parseBookingStatus(status)
	if err != nil {
		return nil, err
	}
	return s.store.Bookings().ListByLearner(ctx, learnerID, parsed)
}

// ListReceived returns bookings addressed to the calling tutor.
func (s *BookingService) ListReceived(ctx context.Context, tutorUserID uuid.UUID, status string) ([]models.BookingRequest, error) {
	profile, err := s.store.Tutors().GetByUserID(ctx, tutorUserID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor profile")
	}
	if err != nil {
		return nil, err
	}
	parsed, err := parseBookingStatus(status)
	if err != nil {
		return nil, err
	}
	return s.store.Bookings().ListByTutor(ctx, profile.ID, parsed)
}

func parseBookingStatus(status string) (*models.BookingStatus, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" {
		return nil, nil
	}
	parsed := models.BookingStatus(status)
	switch parsed {
	case models.BookingPending, models.BookingAccepted, models.BookingDeclined:
		return &parsed, nil
	}
	return nil, invalidInput("unknown booking status")
}

// splitSlotText breaks "Monday 10:00-11:00" into its day and time halves,
// mirroring how learners describe the requested slot.
func splitSlotText(slot string) (day, timeRange string) {
	parts := strings.SplitN(strings.TrimSpace(slot), " ", 2)
	if len(parts) == 0 || parts[0] == "" {
		return "", ""
	}
	day = parts[0]
	if len(parts) > 1 {
		timeRange = parts[1]
	}
	return day, timeRange
}
