package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// Store is the transactional persistence boundary of the core. Repositories
// return ErrNotFound when the referenced row is absent. InTx runs fn against a
// transaction-scoped Store; mutations inside fn are committed atomically or
// not at all.
type Store interface {
	InTx(ctx context.Context, fn func(Store) error) error

	Users() UserDirectory
	Tutors() TutorProfileRepo
	Slots() AvailabilitySlotRepo
	Catalog() CatalogStore
	Bookings() BookingRepo
	Classes() ClassRepo
	Enrollments() EnrollmentRepo
	Reviews() ReviewRepo
	Feedback() FeedbackRepo
	Flags() FlagRepo
	Notifications() NotificationRepo
}

// UserDirectory resolves user accounts for display names and role checks.
type UserDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByResetToken(ctx context.Context, token string) (*models.User, error)
	List(ctx context.Context, role *models.UserRole) ([]models.User, error)
	Create(ctx context.Context, u *models.User) error
	Save(ctx context.Context, u *models.User) error
}

type TutorProfileRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*models.TutorProfile, error)
	// GetForUpdate locks the profile row for the duration of the enclosing
	// transaction. Used by the rating aggregator.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.TutorProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.TutorProfile, error)
	ListActive(ctx context.Context) ([]models.TutorProfile, error)
	ListAll(ctx context.Context) ([]models.TutorProfile, error)
	ListByVerified(ctx context.Context, verified bool) ([]models.TutorProfile, error)
	Create(ctx context.Context, p *models.TutorProfile) error
	Save(ctx context.Context, p *models.TutorProfile) error
}

type AvailabilitySlotRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*models.AvailabilitySlot, error)
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.AvailabilitySlot, error)
	ListActiveByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.AvailabilitySlot, error)
	Create(ctx context.Context, s *models.AvailabilitySlot) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogStore is the read-mostly city/district/subject catalog plus the
// tutor membership rows that join tutors into it. Catalog CRUD itself is
// managed elsewhere; the core only reads names and ids and edits memberships.
type CatalogStore interface {
	GetCity(ctx context.Context, id uuid.UUID) (*models.City, error)
	GetCityByName(ctx context.Context, name string) (*models.City, error)
	ListCities(ctx context.Context) ([]models.City, error)

	GetDistrict(ctx context.Context, id uuid.UUID) (*models.District, error)
	GetDistrictByName(ctx context.Context, name string) (*models.District, error)
	ListDistrictsByCity(ctx context.Context, cityID uuid.UUID) ([]models.District, error)

	GetSubject(ctx context.Context, id uuid.UUID) (*models.Subject, error)
	GetSubjectByName(ctx context.Context, name string) (*models.Subject, error)
	ListSubjects(ctx context.Context) ([]models.Subject, error)

	SubjectsForTutor(ctx context.Context, tutorID uuid.UUID) ([]models.TutorSubject, error)
	DistrictsForTutor(ctx context.Context, tutorID uuid.UUID) ([]models.TutorDistrict, error)
	AddTutorSubject(ctx context.Context, ts *models.TutorSubject) error
	RemoveTutorSubject(ctx context.Context, tutorID, subjectID uuid.UUID) error
	AddTutorDistrict(ctx context.Context, td *models.TutorDistrict) error
	RemoveTutorDistrict(ctx context.Context, tutorID, districtID uuid.UUID) error
}

type BookingRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error)
	Create(ctx context.Context, b *models.BookingRequest) error
	Save(ctx context.Context, b *models.BookingRequest) error
	ListByLearner(ctx context.Context, learnerID uuid.UUID, status *models.BookingStatus) ([]models.BookingRequest, error)
	ListByTutor(ctx context.Context, tutorID uuid.UUID, status *models.BookingStatus) ([]models.BookingRequest, error)
}

type ClassRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Class, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Class, error)
	Create(ctx context.Context, c *models.Class) error
	Save(ctx context.Context, c *models.Class) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]models.Class, error)
	ListByStatus(ctx context.Context, status models.ClassStatus) ([]models.Class, error)
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Class, error)
	// ListEndedBefore returns non-terminal classes whose end date has passed.
	ListEndedBefore(ctx context.Context, t time.Time) ([]models.Class, error)
}

type EnrollmentRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Enrollment, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Enrollment, error)
	GetByClassAndLearner(ctx context.Context, classID, learnerID uuid.UUID) (*models.Enrollment, error)
	Create(ctx context.Context, e *models.Enrollment) error
	Save(ctx context.Context, e *models.Enrollment) error
	ListByClass(ctx context.Context, classID uuid.UUID) ([]models.Enrollment, error)
	ListByLearner(ctx context.Context, learnerID uuid.UUID, status *models.EnrollmentStatus) ([]models.Enrollment, error)
	CountActiveByClass(ctx context.Context, classID uuid.UUID) (int64, error)
}

type ReviewRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Review, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Review, error)
	GetByTutorAndLearner(ctx context.Context, tutorID, learnerID uuid.UUID) (*models.Review, error)
	Create(ctx context.Context, r *models.Review) error
	Save(ctx context.Context, r *models.Review) error
	ListByTutorAndStatus(ctx context.Context, tutorID uuid.UUID, status models.ReviewStatus) ([]models.Review, error)
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]models.Review, error)
	ListByStatus(ctx context.Context, status models.ReviewStatus) ([]models.Review, error)
}

type FeedbackRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Feedback, error)
	Create(ctx context.Context, f *models.Feedback) error
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]models.Feedback, error)
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Feedback, error)
}

// FlagFilter narrows ListFlags; nil fields match everything.
type FlagFilter struct {
	Status      *models.FlagStatus
	ContentType *models.FlagContentType
	Page        int
	PageSize    int
}

type FlagRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Flag, error)
	Create(ctx context.Context, f *models.Flag) error
	Save(ctx context.Context, f *models.Flag) error
	List(ctx context.Context, filter FlagFilter) ([]models.Flag, int64, error)
}

type NotificationRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	Create(ctx context.Context, n *models.Notification) error
	Save(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
	ListUnreadByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
}

// NotificationSink delivers fire-and-forget events to a user. Implementations
// must never fail the caller: delivery errors are logged and swallowed.
type NotificationSink interface {
	Emit(userID uuid.UUID, eventType string, payload map[string]any)
}

// Event types emitted by the core.
const (
	EventBookingCreated  = "booking_created"
	EventBookingAccepted = "booking_accepted"
	EventBookingDeclined = "booking_declined"
	EventFeedbackAdded   = "feedback_added"
)

// Page is an offset-paginated result slice with the pre-pagination total.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}
