package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// recomputeRating rebuilds the tutor's materialized rating from the APPROVED
// reviews. It must run inside the same transaction as the moderation decision
// that changed the review set; the profile row is locked for the rebuild.
// A tutor with no approved reviews goes back to 0/0.
func recomputeRating(ctx context.Context, tx Store, tutorID uuid.UUID) error {
	profile, err := tx.Tutors().GetForUpdate(ctx, tutorID)
	if errors.Is(err, ErrNotFound) {
		return notFound("tutor profile")
	}
	if err != nil {
		return err
	}

	approved, err := tx.Reviews().ListByTutorAndStatus(ctx, tutorID, models.ReviewApproved)
	if err != nil {
		return err
	}

	sum := 0
	for i := range approved {
		sum += approved[i].Rating
	}
	if len(approved) == 0 {
		profile.RatingAvg = 0
	} else {
		profile.RatingAvg = float64(sum) / float64(len(approved))
	}
	profile.RatingCount = len(approved)

	return tx.Tutors().Save(ctx, profile)
}
