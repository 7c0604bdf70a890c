package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team13/tutorfind/models"
)

func TestRegisterTutorCreatesProfile(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user, err := f.svc.Auth.Register(ctx, RegisterInput{
		FirstName: "Aysel",
		LastName:  "Mammadova",
		Email:     "  Aysel.M@Example.COM ",
		Password:  "secret123",
		Role:      models.RoleTutor,
	})
	require.NoError(t, err)
	assert.Equal(t, "aysel.m@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret123", user.Password)

	profile, err := f.store.Tutors().GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, profile.IsActive)

	learner, err := f.svc.Auth.Register(ctx, RegisterInput{
		FirstName: "Nigar",
		LastName:  "Guliyeva",
		Email:     "nigar@example.com",
		Password:  "secret123",
		Role:      models.RoleLearner,
	})
	require.NoError(t, err)
	_, err = f.store.Tutors().GetByUserID(ctx, learner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	input := RegisterInput{
		FirstName: "Aysel", LastName: "Mammadova",
		Email: "aysel@example.com", Password: "secret123", Role: models.RoleLearner,
	}
	_, err := f.svc.Auth.Register(ctx, input)
	require.NoError(t, err)

	// duplicate detection is case-insensitive
	input.Email = "AYSEL@example.com"
	_, err = f.svc.Auth.Register(ctx, input)
	assert.ErrorIs(t, err, ErrConflict)

	input.Email = "second@example.com"
	input.Role = "SUPERUSER"
	_, err = f.svc.Auth.Register(ctx, input)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	registered, err := f.svc.Auth.Register(ctx, RegisterInput{
		FirstName: "Aysel", LastName: "Mammadova",
		Email: "aysel@example.com", Password: "secret123", Role: models.RoleLearner,
	})
	require.NoError(t, err)

	user, err := f.svc.Auth.Authenticate(ctx, "AYSEL@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = f.svc.Auth.Authenticate(ctx, "aysel@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.svc.Auth.Authenticate(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.svc.Moderation.SetUserActive(ctx, registered.ID, false)
	require.NoError(t, err)
	_, err = f.svc.Auth.Authenticate(ctx, "aysel@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPasswordResetRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Auth.Register(ctx, RegisterInput{
		FirstName: "Aysel", LastName: "Mammadova",
		Email: "aysel@example.com", Password: "original1", Role: models.RoleLearner,
	})
	require.NoError(t, err)

	_, err = f.svc.Auth.StartPasswordReset(ctx, "aysel@example.com", "tok-valid", time.Now().Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, f.svc.Auth.CompletePasswordReset(ctx, "tok-valid", "changed99"))

	_, err = f.svc.Auth.Authenticate(ctx, "aysel@example.com", "original1")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.svc.Auth.Authenticate(ctx, "aysel@example.com", "changed99")
	require.NoError(t, err)

	// token is single-use
	err = f.svc.Auth.CompletePasswordReset(ctx, "tok-valid", "again")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPasswordResetExpiredToken(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Auth.Register(ctx, RegisterInput{
		FirstName: "Aysel", LastName: "Mammadova",
		Email: "aysel@example.com", Password: "original1", Role: models.RoleLearner,
	})
	require.NoError(t, err)

	_, err = f.svc.Auth.StartPasswordReset(ctx, "aysel@example.com", "tok-stale", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	err = f.svc.Auth.CompletePasswordReset(ctx, "tok-stale", "changed99")
	assert.ErrorIs(t, err, ErrUnauthorized)

	// expired token is cleared, and the old password still works
	err = f.svc.Auth.CompletePasswordReset(ctx, "tok-stale", "changed99")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.svc.Auth.Authenticate(ctx, "aysel@example.com", "original1")
	require.NoError(t, err)

	err = f.svc.Auth.CompletePasswordReset(ctx, "never-issued", "changed99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAccount(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user := f.addUser(models.RoleLearner, "Nigar", "Guliyeva")

	updated, err := f.svc.Auth.UpdateAccount(ctx, user.ID, UpdateAccountInput{
		FirstName:   ptrString("  Nigar "),
		PhoneNumber: ptrString("+994501234567"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Nigar", updated.FirstName)
	require.NotNil(t, updated.PhoneNumber)
	assert.Equal(t, "+994501234567", *updated.PhoneNumber)

	_, err = f.svc.Auth.UpdateAccount(ctx, user.ID, UpdateAccountInput{LastName: ptrString("   ")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
