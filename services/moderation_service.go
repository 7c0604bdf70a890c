package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// ModerationService is the admin surface: review decisions, content flags,
// tutor verification and account activation. Review decisions and the rating
// rebuild they trigger commit atomically.
type ModerationService struct {
	store Store
}

func NewModerationService(store Store) *ModerationService {
	return &ModerationService{store: store}
}

func (s *ModerationService) ApproveReview(ctx context.Context, reviewID uuid.UUID) (*models.Review, error) {
	return s.decideReview(ctx, reviewID, models.ReviewApproved)
}

func (s *ModerationService) RejectReview(ctx context.Context, reviewID uuid.UUID) (*models.Review, error) {
	return s.decideReview(ctx, reviewID, models.ReviewRejected)
}

func (s *ModerationService) decideReview(ctx context.Context, reviewID uuid.UUID, next models.ReviewStatus) (*models.Review, error) {
	var review *models.Review
	err := s.store.InTx(ctx, func(tx Store) error {
		var err error
		review, err = tx.Reviews().GetForUpdate(ctx, reviewID)
		if errors.Is(err, ErrNotFound) {
			return notFound("review")
		}
		if err != nil {
			return err
		}
		if !review.Status.CanTransitionTo(next) {
			return conflict("review cannot move from " + string(review.Status) + " to " + string(next))
		}

		prev := review.Status
		review.Status = next
		if err := tx.Reviews().Save(ctx, review); err != nil {
			return err
		}

		// the approved set changed when approving, or when rejecting a
		// previously approved review
		if next == models.ReviewApproved || prev == models.ReviewApproved {
			return recomputeRating(ctx, tx, review.TutorID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ModerationService) ListPendingReviews(ctx context.Context) ([]models.Review, error) {
	return s.store.Reviews().ListByStatus(ctx, models.ReviewPending)
}

type CreateFlagInput struct {
	ContentType string
	ContentID   uuid.UUID
	Reason      string
}

// CreateFlag records a user report against a piece of content. The flag does
// not verify the target still exists; moderators resolve that.
func (s *ModerationService) CreateFlag(ctx context.Context, userID uuid.UUID, input CreateFlagInput) (*models.Flag, error) {
	contentType := models.FlagContentType(strings.ToUpper(strings.TrimSpace(input.ContentType)))
	if !contentType.Valid() {
		return nil, invalidInput("unknown content type")
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, invalidInput("reason is required")
	}

	flag := &models.Flag{
		UserID:      userID,
		ContentType: contentType,
		ContentID:   input.ContentID,
		Reason:      strings.TrimSpace(input.Reason),
		Status:      models.FlagPending,
	}
	if err := s.store.Flags().Create(ctx, flag); err != nil {
		return nil, err
	}
	return flag, nil
}

func (s *ModerationService) ListFlags(ctx context.Context, status, contentType string, page, pageSize int) (*Page[models.Flag], error) {
	page, pageSize, err := normalizePaging(page, pageSize)
	if err != nil {
		return nil, err
	}

	filter := FlagFilter{Page: page, PageSize: pageSize}
	if v := strings.ToUpper(strings.TrimSpace(status)); v != "" {
		parsed := models.FlagStatus(v)
		if !parsed.Valid() {
			return nil, invalidInput("unknown flag status")
		}
		filter.Status = &parsed
	}
	if v := strings.ToUpper(strings.TrimSpace(contentType)); v != "" {
		parsed := models.FlagContentType(v)
		if !parsed.Valid() {
			return nil, invalidInput("unknown content type")
		}
		filter.ContentType = &parsed
	}

	flags, total, err := s.store.Flags().List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &Page[models.Flag]{Items: flags, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateFlagStatus overwrites the flag's status. Any status may replace any
// other; flags are a ledger of decisions, not a state machine.
func (s *ModerationService) UpdateFlagStatus(ctx context.Context, flagID uuid.UUID, status string) (*models.Flag, error) {
	parsed := models.FlagStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !parsed.Valid() {
		return nil, invalidInput("unknown flag status")
	}

	flag, err := s.store.Flags().Get(ctx, flagID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("flag")
	}
	if err != nil {
		return nil, err
	}

	flag.Status = parsed
	if err := s.store.Flags().Save(ctx, flag); err != nil {
		return nil, err
	}
	return flag, nil
}

func (s *ModerationService) SetTutorVerified(ctx context.Context, tutorID uuid.UUID, verified bool) (*models.TutorProfile, error) {
	profile, err := s.store.Tutors().Get(ctx, tutorID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("tutor profile")
	}
	if err != nil {
		return nil, err
	}
	profile.IsVerified = verified
	if err := s.store.Tutors().Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetUserActive toggles an account. Deactivating a tutor also pulls their
// profile out of discovery; reactivating puts it back.
func (s *ModerationService) SetUserActive(ctx context.Context, userID uuid.UUID, active bool) (*models.User, error) {
	var user *models.User
	err := s.store.InTx(ctx, func(tx Store) error {
		var err error
		user, err = tx.Users().Get(ctx, userID)
		if errors.Is(err, ErrNotFound) {
			return notFound("user")
		}
		if err != nil {
			return err
		}
		user.IsActive = active
		if err := tx.Users().Save(ctx, user); err != nil {
			return err
		}

		if user.Role == models.RoleTutor {
			profile, err := tx.Tutors().GetByUserID(ctx, userID)
			if err != nil && !errors.Is(err, ErrNotFound) {
				return err
			}
			if profile != nil {
				profile.IsActive = active
				return tx.Tutors().Save(ctx, profile)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *ModerationService) ListUsers(ctx context.Context, role string) ([]models.User, error) {
	var parsed *models.UserRole
	if v := strings.ToUpper(strings.TrimSpace(role)); v != "" {
		r := models.UserRole(v)
		if !r.Valid() {
			return nil, invalidInput("unknown role")
		}
		parsed = &r
	}
	return s.store.Users().List(ctx, parsed)
}

func (s *ModerationService) ListTutors(ctx context.Context, verified *bool) ([]models.TutorProfile, error) {
	if verified == nil {
		return s.store.Tutors().ListAll(ctx)
	}
	return s.store.Tutors().ListByVerified(ctx, *verified)
}

// ReconcileRatings rebuilds every tutor's materialized rating. Normally a
// no-op safety net behind the per-decision recompute; runs from the scheduled
// sweep.
func (s *ModerationService) ReconcileRatings(ctx context.Context) (int, error) {
	tutors, err := s.store.Tutors().ListAll(ctx)
	if err != nil {
		return 0, err
	}
	for i := range tutors {
		tutorID := tutors[i].ID
		err := s.store.InTx(ctx, func(tx Store) error {
			return recomputeRating(ctx, tx, tutorID)
		})
		if err != nil {
			return i, err
		}
	}
	return len(tutors), nil
}

type PlatformStats struct {
	Learners       int `json:"learners"`
	Tutors         int `json:"tutors"`
	VerifiedTutors int `json:"verified_tutors"`
	PendingReviews int `json:"pending_reviews"`
	PendingFlags   int `json:"pending_flags"`
}

func (s *ModerationService) Stats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}

	learnerRole := models.RoleLearner
	learners, err := s.store.Users().List(ctx, &learnerRole)
	if err != nil {
		return nil, err
	}
	stats.Learners = len(learners)

	tutors, err := s.store.Tutors().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.Tutors = len(tutors)
	for i := range tutors {
		if tutors[i].IsVerified {
			stats.VerifiedTutors++
		}
	}

	pending, err := s.store.Reviews().ListByStatus(ctx, models.ReviewPending)
	if err != nil {
		return nil, err
	}
	stats.PendingReviews = len(pending)

	flagPending := models.FlagPending
	_, total, err := s.store.Flags().List(ctx, FlagFilter{Status: &flagPending, PageSize: 1})
	if err != nil {
		return nil, err
	}
	stats.PendingFlags = int(total)

	return stats, nil
}
