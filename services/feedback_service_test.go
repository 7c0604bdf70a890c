package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team13/tutorfind/models"
)

func TestCreateFeedbackNotifiesLearner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	tutorUser, tutor := f.addTutor("Aysel", "Mammadova")
	learner := f.addUser(models.RoleLearner, "Nigar", "Guliyeva")

	feedback, err := f.svc.Feedback.Create(ctx, tutorUser.ID, CreateFeedbackInput{
		LearnerID:    learner.ID,
		FeedbackText: " Strong progress on quadratic equations. ",
	})
	require.NoError(t, err)
	assert.Equal(t, tutor.ID, feedback.TutorID)
	assert.Equal(t, "Strong progress on quadratic equations.", feedback.FeedbackText)

	require.Len(t, f.sink.events, 1)
	assert.Equal(t, learner.ID, f.sink.events[0].userID)
	assert.Equal(t, EventFeedbackAdded, f.sink.events[0].eventType)
}

func TestCreateFeedbackValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	tutorUser, tutor := f.addTutor("Aysel", "Mammadova")
	_, other := f.addTutor("Rashad", "Aliyev")
	learner := f.addUser(models.RoleLearner, "Nigar", "Guliyeva")
	stranger := f.addUser(models.RoleLearner, "Kamran", "Huseynov")

	_, err := f.svc.Feedback.Create(ctx, tutorUser.ID, CreateFeedbackInput{
		LearnerID:    learner.ID,
		FeedbackText: "   ",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Feedback.Create(ctx, tutorUser.ID, CreateFeedbackInput{
		LearnerID:    uuid.New(),
		FeedbackText: "good work",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// the referenced booking must involve both parties
	booking := &models.BookingRequest{
		TutorID:   other.ID,
		LearnerID: stranger.ID,
		Status:    models.BookingPending,
	}
	require.NoError(t, f.store.Bookings().Create(ctx, booking))
	_, err = f.svc.Feedback.Create(ctx, tutorUser.ID, CreateFeedbackInput{
		LearnerID:    learner.ID,
		BookingID:    &booking.ID,
		FeedbackText: "good work",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)

	own := &models.BookingRequest{
		TutorID:   tutor.ID,
		LearnerID: learner.ID,
		Status:    models.BookingAccepted,
	}
	require.NoError(t, f.store.Bookings().Create(ctx, own))
	_, err = f.svc.Feedback.Create(ctx, tutorUser.ID, CreateFeedbackInput{
		LearnerID:    learner.ID,
		BookingID:    &own.ID,
		FeedbackText: "good work",
	})
	require.NoError(t, err)
}

func TestFeedbackIsPrivateToItsParties(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	tutorUser, _ := f.addTutor("Aysel", "Mammadova")
	otherTutorUser, _ := f.addTutor("Rashad", "Aliyev")
	learner := f.addUser(models.RoleLearner, "Nigar", "Guliyeva")
	stranger := f.addUser(models.RoleLearner, "Kamran", "Huseynov")

	feedback, err := f.svc.Feedback.Create(ctx, tutorUser.ID, CreateFeedbackInput{
		LearnerID:    learner.ID,
		FeedbackText: "good work",
	})
	require.NoError(t, err)

	_, err = f.svc.Feedback.Get(ctx, learner.ID, feedback.ID)
	require.NoError(t, err)
	_, err = f.svc.Feedback.Get(ctx, tutorUser.ID, feedback.ID)
	require.NoError(t, err)

	_, err = f.svc.Feedback.Get(ctx, stranger.ID, feedback.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.svc.Feedback.Get(ctx, otherTutorUser.ID, feedback.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.svc.Feedback.Get(ctx, learner.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotificationFeed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user := f.addUser(models.RoleLearner, "Nigar", "Guliyeva")
	other := f.addUser(models.RoleLearner, "Kamran", "Huseynov")

	for i := 0; i < 3; i++ {
		n := &models.Notification{UserID: user.ID, Type: EventBookingAccepted}
		require.NoError(t, f.store.Notifications().Create(ctx, n))
	}
	foreign := &models.Notification{UserID: other.ID, Type: EventBookingAccepted}
	require.NoError(t, f.store.Notifications().Create(ctx, foreign))

	unread, err := f.svc.Notifications.ListForUser(ctx, user.ID, true)
	require.NoError(t, err)
	require.Len(t, unread, 3)

	marked, err := f.svc.Notifications.MarkRead(ctx, user.ID, unread[0].ID)
	require.NoError(t, err)
	assert.True(t, marked.IsRead)

	// cannot mark someone else's notification
	_, err = f.svc.Notifications.MarkRead(ctx, user.ID, foreign.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	count, err := f.svc.Notifications.MarkAllRead(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	unread, err = f.svc.Notifications.ListForUser(ctx, user.ID, true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err := f.svc.Notifications.ListForUser(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
