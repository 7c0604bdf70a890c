package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
	"github.com/team13/tutorfind/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implements services.Store on gorm. InTx re-roots every repository on
// the transaction handle, so repositories obtained inside the closure share
// one transaction; GetForUpdate variants take a row lock that lives until
// commit.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(services.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) Users() services.UserDirectory           { return userRepo{s.db} }
func (s *Store) Tutors() services.TutorProfileRepo       { return tutorRepo{s.db} }
func (s *Store) Slots() services.AvailabilitySlotRepo    { return slotRepo{s.db} }
func (s *Store) Catalog() services.CatalogStore          { return catalogRepo{s.db} }
func (s *Store) Bookings() services.BookingRepo          { return bookingRepo{s.db} }
func (s *Store) Classes() services.ClassRepo             { return classRepo{s.db} }
func (s *Store) Enrollments() services.EnrollmentRepo    { return enrollmentRepo{s.db} }
func (s *Store) Reviews() services.ReviewRepo            { return reviewRepo{s.db} }
func (s *Store) Feedback() services.FeedbackRepo         { return feedbackRepo{s.db} }
func (s *Store) Flags() services.FlagRepo                { return flagRepo{s.db} }
func (s *Store) Notifications() services.NotificationRepo { return notificationRepo{s.db} }

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrNotFound
	}
	return err
}

var forUpdate = clause.Locking{Strength: "UPDATE"}

type userRepo struct{ db *gorm.DB }

func (r userRepo) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r userRepo) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "reset_password_token = ?", token).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r userRepo) List(ctx context.Context, role *models.UserRole) ([]models.User, error) {
	var users []models.User
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if role != nil {
		q = q.Where("role = ?", *role)
	}
	return users, q.Find(&users).Error
}

func (r userRepo) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r userRepo) Save(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

type tutorRepo struct{ db *gorm.DB }

func (r tutorRepo) Get(ctx context.Context, id uuid.UUID) (*models.TutorProfile, error) {
	var p models.TutorProfile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r tutorRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.TutorProfile, error) {
	var p models.TutorProfile
	if err := r.db.WithContext(ctx).Clauses(forUpdate).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r tutorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.TutorProfile, error) {
	var p models.TutorProfile
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r tutorRepo) ListActive(ctx context.Context) ([]models.TutorProfile, error) {
	var profiles []models.TutorProfile
	return profiles, r.db.WithContext(ctx).Where("is_active = ?", true).Find(&profiles).Error
}

func (r tutorRepo) ListAll(ctx context.Context) ([]models.TutorProfile, error) {
	var profiles []models.TutorProfile
	return profiles, r.db.WithContext(ctx).Find(&profiles).Error
}

func (r tutorRepo) ListByVerified(ctx context.Context, verified bool) ([]models.TutorProfile, error) {
	var profiles []models.TutorProfile
	return profiles, r.db.WithContext(ctx).Where("is_verified = ?", verified).Find(&profiles).Error
}

func (r tutorRepo) Create(ctx context.Context, p *models.TutorProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r tutorRepo) Save(ctx context.Context, p *models.TutorProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

type slotRepo struct{ db *gorm.DB }

func (r slotRepo) Get(ctx context.Context, id uuid.UUID) (*models.AvailabilitySlot, error) {
	var s models.AvailabilitySlot
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r slotRepo) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	return slots, r.db.WithContext(ctx).Where("tutor_id = ?", tutorID).Order("day_of_week, start_time").Find(&slots).Error
}

func (r slotRepo) ListActiveByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	return slots, r.db.WithContext(ctx).Where("tutor_id = ? AND is_active = ?", tutorID, true).Order("day_of_week, start_time").Find(&slots).Error
}

func (r slotRepo) Create(ctx context.Context, s *models.AvailabilitySlot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r slotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.AvailabilitySlot{}, "id = ?", id).Error
}

type catalogRepo struct{ db *gorm.DB }

func (r catalogRepo) GetCity(ctx context.Context, id uuid.UUID) (*models.City, error) {
	var c models.City
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r catalogRepo) GetCityByName(ctx context.Context, name string) (*models.City, error) {
	var c models.City
	if err := r.db.WithContext(ctx).First(&c, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r catalogRepo) ListCities(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	return cities, r.db.WithContext(ctx).Order("name").Find(&cities).Error
}

func (r catalogRepo) GetDistrict(ctx context.Context, id uuid.UUID) (*models.District, error) {
	var d models.District
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r catalogRepo) GetDistrictByName(ctx context.Context, name string) (*models.District, error) {
	var d models.District
	if err := r.db.WithContext(ctx).First(&d, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r catalogRepo) ListDistrictsByCity(ctx context.Context, cityID uuid.UUID) ([]models.District, error) {
	var districts []models.District
	return districts, r.db.WithContext(ctx).Where("city_id = ?", cityID).Order("name").Find(&districts).Error
}

func (r catalogRepo) GetSubject(ctx context.Context, id uuid.UUID) (*models.Subject, error) {
	var s models.Subject
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r catalogRepo) GetSubjectByName(ctx context.Context, name string) (*models.Subject, error) {
	var s models.Subject
	if err := r.db.WithContext(ctx).First(&s, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r catalogRepo) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	return subjects, r.db.WithContext(ctx).Order("name").Find(&subjects).Error
}

func (r catalogRepo) SubjectsForTutor(ctx context.Context, tutorID uuid.UUID) ([]models.TutorSubject, error) {
	var rows []models.TutorSubject
	return rows, r.db.WithContext(ctx).Where("tutor_id = ?", tutorID).Find(&rows).Error
}

func (r catalogRepo) DistrictsForTutor(ctx context.Context, tutorID uuid.UUID) ([]models.TutorDistrict, error) {
	var rows []models.TutorDistrict
	return rows, r.db.WithContext(ctx).Where("tutor_id = ?", tutorID).Find(&rows).Error
}

func (r catalogRepo) AddTutorSubject(ctx context.Context, ts *models.TutorSubject) error {
	return r.db.WithContext(ctx).Create(ts).Error
}

func (r catalogRepo) RemoveTutorSubject(ctx context.Context, tutorID, subjectID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.TutorSubject{}, "tutor_id = ? AND subject_id = ?", tutorID, subjectID).Error
}

func (r catalogRepo) AddTutorDistrict(ctx context.Context, td *models.TutorDistrict) error {
	return r.db.WithContext(ctx).Create(td).Error
}

func (r catalogRepo) RemoveTutorDistrict(ctx context.Context, tutorID, districtID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.TutorDistrict{}, "tutor_id = ? AND district_id = ?", tutorID, districtID).Error
}

type bookingRepo struct{ db *gorm.DB }

func (r bookingRepo) Get(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error) {
	var b models.BookingRequest
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r bookingRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error) {
	var b models.BookingRequest
	if err := r.db.WithContext(ctx).Clauses(forUpdate).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r bookingRepo) Create(ctx context.Context, b *models.BookingRequest) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r bookingRepo) Save(ctx context.Context, b *models.BookingRequest) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r bookingRepo) ListByLearner(ctx context.Context, learnerID uuid.UUID, status *models.BookingStatus) ([]models.BookingRequest, error) {
	var bookings []models.BookingRequest
	q := r.db.WithContext(ctx).Where("learner_id = ?", learnerID).Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	return bookings, q.Find(&bookings).Error
}

func (r bookingRepo) ListByTutor(ctx context.Context, tutorID uuid.UUID, status *models.BookingStatus) ([]models.BookingRequest, error) {
	var bookings []models.BookingRequest
	q := r.db.WithContext(ctx).Where("tutor_id = ?", tutorID).Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	return bookings, q.Find(&bookings).Error
}

type classRepo struct{ db *gorm.DB }

func (r classRepo) Get(ctx context.Context, id uuid.UUID) (*models.Class, error) {
	var c models.Class
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r classRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Class, error) {
	var c models.Class
	if err := r.db.WithContext(ctx).Clauses(forUpdate).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r classRepo) Create(ctx context.Context, c *models.Class) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r classRepo) Save(ctx context.Context, c *models.Class) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r classRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Class{}, "id = ?", id).Error
}

func (r classRepo) List(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	return classes, r.db.WithContext(ctx).Order("created_at DESC").Find(&classes).Error
}

func (r classRepo) ListByStatus(ctx context.Context, status models.ClassStatus) ([]models.Class, error) {
	var classes []models.Class
	return classes, r.db.WithContext(ctx).Where("status = ?", status).Order("created_at DESC").Find(&classes).Error
}

func (r classRepo) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Class, error) {
	var classes []models.Class
	return classes, r.db.WithContext(ctx).Where("tutor_id = ?", tutorID).Order("created_at DESC").Find(&classes).Error
}

func (r classRepo) ListEndedBefore(ctx context.Context, t time.Time) ([]models.Class, error) {
	var classes []models.Class
	err := r.db.WithContext(ctx).
		Where("end_date IS NOT NULL AND end_date < ?", t).
		Where("status IN ?", []models.ClassStatus{models.ClassOpen, models.ClassFull}).
		Find(&classes).Error
	return classes, err
}

type enrollmentRepo struct{ db *gorm.DB }

func (r enrollmentRepo) Get(ctx context.Context, id uuid.UUID) (*models.Enrollment, error) {
	var e models.Enrollment
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r enrollmentRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Enrollment, error) {
	var e models.Enrollment
	if err := r.db.WithContext(ctx).Clauses(forUpdate).First(&e, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r enrollmentRepo) GetByClassAndLearner(ctx context.Context, classID, learnerID uuid.UUID) (*models.Enrollment, error) {
	var e models.Enrollment
	if err := r.db.WithContext(ctx).First(&e, "class_id = ? AND learner_id = ?", classID, learnerID).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r enrollmentRepo) Create(ctx context.Context, e *models.Enrollment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r enrollmentRepo) Save(ctx context.Context, e *models.Enrollment) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r enrollmentRepo) ListByClass(ctx context.Context, classID uuid.UUID) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	return enrollments, r.db.WithContext(ctx).Where("class_id = ?", classID).Order("enrolled_at").Find(&enrollments).Error
}

func (r enrollmentRepo) ListByLearner(ctx context.Context, learnerID uuid.UUID, status *models.EnrollmentStatus) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	q := r.db.WithContext(ctx).Where("learner_id = ?", learnerID).Order("enrolled_at DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	return enrollments, q.Find(&enrollments).Error
}

func (r enrollmentRepo) CountActiveByClass(ctx context.Context, classID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("class_id = ? AND status = ?", classID, models.EnrollmentActive).
		Count(&count).Error
	return count, err
}

type reviewRepo struct{ db *gorm.DB }

func (r reviewRepo) Get(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var rev models.Review
	if err := r.db.WithContext(ctx).First(&rev, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rev, nil
}

func (r reviewRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var rev models.Review
	if err := r.db.WithContext(ctx).Clauses(forUpdate).First(&rev, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rev, nil
}

func (r reviewRepo) GetByTutorAndLearner(ctx context.Context, tutorID, learnerID uuid.UUID) (*models.Review, error) {
	var rev models.Review
	if err := r.db.WithContext(ctx).First(&rev, "tutor_id = ? AND learner_id = ?", tutorID, learnerID).Error; err != nil {
		return nil, translate(err)
	}
	return &rev, nil
}

func (r reviewRepo) Create(ctx context.Context, rev *models.Review) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r reviewRepo) Save(ctx context.Context, rev *models.Review) error {
	return r.db.WithContext(ctx).Save(rev).Error
}

func (r reviewRepo) ListByTutorAndStatus(ctx context.Context, tutorID uuid.UUID, status models.ReviewStatus) ([]models.Review, error) {
	var reviews []models.Review
	return reviews, r.db.WithContext(ctx).Where("tutor_id = ? AND status = ?", tutorID, status).Order("created_at DESC").Find(&reviews).Error
}

func (r reviewRepo) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	return reviews, r.db.WithContext(ctx).Where("learner_id = ?", learnerID).Order("created_at DESC").Find(&reviews).Error
}

func (r reviewRepo) ListByStatus(ctx context.Context, status models.ReviewStatus) ([]models.Review, error) {
	var reviews []models.Review
	return reviews, r.db.WithContext(ctx).Where("status = ?", status).Order("created_at").Find(&reviews).Error
}

type feedbackRepo struct{ db *gorm.DB }

func (r feedbackRepo) Get(ctx context.Context, id uuid.UUID) (*models.Feedback, error) {
	var f models.Feedback
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (r feedbackRepo) Create(ctx context.Context, f *models.Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r feedbackRepo) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]models.Feedback, error) {
	var feedback []models.Feedback
	return feedback, r.db.WithContext(ctx).Where("learner_id = ?", learnerID).Order("created_at DESC").Find(&feedback).Error
}

func (r feedbackRepo) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Feedback, error) {
	var feedback []models.Feedback
	return feedback, r.db.WithContext(ctx).Where("tutor_id = ?", tutorID).Order("created_at DESC").Find(&feedback).Error
}

type flagRepo struct{ db *gorm.DB }

func (r flagRepo) Get(ctx context.Context, id uuid.UUID) (*models.Flag, error) {
	var f models.Flag
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (r flagRepo) Create(ctx context.Context, f *models.Flag) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r flagRepo) Save(ctx context.Context, f *models.Flag) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r flagRepo) List(ctx context.Context, filter services.FlagFilter) ([]models.Flag, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Flag{})
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.ContentType != nil {
		q = q.Where("content_type = ?", *filter.ContentType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var flags []models.Flag
	err := q.Order("created_at DESC").
		Offset(filter.Page * filter.PageSize).
		Limit(filter.PageSize).
		Find(&flags).Error
	return flags, total, err
}

type notificationRepo struct{ db *gorm.DB }

func (r notificationRepo) Get(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r notificationRepo) Create(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r notificationRepo) Save(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r notificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	return notifications, r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error
}

func (r notificationRepo) ListUnreadByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	return notifications, r.db.WithContext(ctx).Where("user_id = ? AND is_read = ?", userID, false).Order("created_at DESC").Find(&notifications).Error
}
