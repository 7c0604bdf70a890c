package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
	"golang.org/x/crypto/bcrypt"
)

// AuthService owns accounts and credentials. Registering a TUTOR account
// creates the empty tutor profile in the same transaction.
type AuthService struct {
	store Store
}

func NewAuthService(store Store) *AuthService {
	return &AuthService{store: store}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      models.UserRole
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !input.Role.Valid() {
		return nil, invalidInput("unknown role")
	}

	existing, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, conflict("email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     email,
		Password:  string(hashed),
		Role:      input.Role,
		IsActive:  true,
	}
	err = s.store.InTx(ctx, func(tx Store) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		if user.Role == models.RoleTutor {
			return tx.Tutors().Create(ctx, &models.TutorProfile{UserID: user.ID, IsActive: true})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.store.Users().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, ErrNotFound) {
		return nil, unauthorized("invalid credentials")
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, unauthorized("invalid credentials")
	}
	if !user.IsActive {
		return nil, unauthorized("account is deactivated")
	}
	return user, nil
}

// StartPasswordReset stores the reset token on the account. The caller
// generates the token and delivers it.
func (s *AuthService) StartPasswordReset(ctx context.Context, email, token string, expiresAt time.Time) (*models.User, error) {
	user, err := s.store.Users().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("account")
	}
	if err != nil {
		return nil, err
	}

	user.ResetPasswordToken = &token
	user.ResetPasswordTokenExpiresAt = &expiresAt
	if err := s.store.Users().Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	user, err := s.store.Users().GetByResetToken(ctx, token)
	if errors.Is(err, ErrNotFound) {
		return notFound("reset token")
	}
	if err != nil {
		return err
	}

	if user.ResetPasswordTokenExpiresAt == nil || user.ResetPasswordTokenExpiresAt.Before(time.Now()) {
		user.ResetPasswordToken = nil
		user.ResetPasswordTokenExpiresAt = nil
		_ = s.store.Users().Save(ctx, user)
		return unauthorized("reset token expired")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.ResetPasswordToken = nil
	user.ResetPasswordTokenExpiresAt = nil
	return s.store.Users().Save(ctx, user)
}

func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.store.Users().Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("user")
	}
	return user, err
}

type UpdateAccountInput struct {
	FirstName         *string
	LastName          *string
	PhoneNumber       *string
	ProfilePictureURL *string
}

func (s *AuthService) UpdateAccount(ctx context.Context, id uuid.UUID, input UpdateAccountInput) (*models.User, error) {
	user, err := s.store.Users().Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("user")
	}
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		if strings.TrimSpace(*input.FirstName) == "" {
			return nil, invalidInput("first name is required")
		}
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		if strings.TrimSpace(*input.LastName) == "" {
			return nil, invalidInput("last name is required")
		}
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.ProfilePictureURL != nil {
		user.ProfilePictureURL = input.ProfilePictureURL
	}

	if err := s.store.Users().Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
