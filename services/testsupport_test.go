package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// memStore is an in-memory Store used by the service tests. It hands out
// copies the way a database driver would, so a mutation only lands once Save
// is called. InTx serializes callers; the tests never rely on rollback since
// every service validates before it writes.
type memStore struct {
	mu sync.Mutex

	users          map[uuid.UUID]models.User
	tutors         map[uuid.UUID]models.TutorProfile
	slots          map[uuid.UUID]models.AvailabilitySlot
	cities         map[uuid.UUID]models.City
	districts      map[uuid.UUID]models.District
	subjects       map[uuid.UUID]models.Subject
	tutorSubjects  []models.TutorSubject
	tutorDistricts []models.TutorDistrict
	bookings       map[uuid.UUID]models.BookingRequest
	classes        map[uuid.UUID]models.Class
	enrollments    map[uuid.UUID]models.Enrollment
	reviews        map[uuid.UUID]models.Review
	feedback       map[uuid.UUID]models.Feedback
	flags          map[uuid.UUID]models.Flag
	flagOrder      []uuid.UUID
	notifications  map[uuid.UUID]models.Notification
	notifOrder     []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		users:         map[uuid.UUID]models.User{},
		tutors:        map[uuid.UUID]models.TutorProfile{},
		slots:         map[uuid.UUID]models.AvailabilitySlot{},
		cities:        map[uuid.UUID]models.City{},
		districts:     map[uuid.UUID]models.District{},
		subjects:      map[uuid.UUID]models.Subject{},
		bookings:      map[uuid.UUID]models.BookingRequest{},
		classes:       map[uuid.UUID]models.Class{},
		enrollments:   map[uuid.UUID]models.Enrollment{},
		reviews:       map[uuid.UUID]models.Review{},
		feedback:      map[uuid.UUID]models.Feedback{},
		flags:         map[uuid.UUID]models.Flag{},
		notifications: map[uuid.UUID]models.Notification{},
	}
}

func (m *memStore) InTx(ctx context.Context, fn func(Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m)
}

func (m *memStore) Users() UserDirectory            { return memUsers{m} }
func (m *memStore) Tutors() TutorProfileRepo        { return memTutors{m} }
func (m *memStore) Slots() AvailabilitySlotRepo     { return memSlots{m} }
func (m *memStore) Catalog() CatalogStore           { return memCatalog{m} }
func (m *memStore) Bookings() BookingRepo           { return memBookings{m} }
func (m *memStore) Classes() ClassRepo              { return memClasses{m} }
func (m *memStore) Enrollments() EnrollmentRepo     { return memEnrollments{m} }
func (m *memStore) Reviews() ReviewRepo             { return memReviews{m} }
func (m *memStore) Feedback() FeedbackRepo          { return memFeedback{m} }
func (m *memStore) Flags() FlagRepo                 { return memFlags{m} }
func (m *memStore) Notifications() NotificationRepo { return memNotifications{m} }

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

type memUsers struct{ m *memStore }

func (r memUsers) Get(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := r.m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r memUsers) GetByResetToken(_ context.Context, token string) (*models.User, error) {
	for _, u := range r.m.users {
		if u.ResetPasswordToken != nil && *u.ResetPasswordToken == token {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r memUsers) List(_ context.Context, role *models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, u := range r.m.users {
		if role == nil || u.Role == *role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r memUsers) Create(_ context.Context, u *models.User) error {
	ensureID(&u.ID)
	u.CreatedAt = time.Now()
	r.m.users[u.ID] = *u
	return nil
}

func (r memUsers) Save(_ context.Context, u *models.User) error {
	r.m.users[u.ID] = *u
	return nil
}

type memTutors struct{ m *memStore }

func (r memTutors) Get(_ context.Context, id uuid.UUID) (*models.TutorProfile, error) {
	p, ok := r.m.tutors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r memTutors) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.TutorProfile, error) {
	return r.Get(ctx, id)
}

func (r memTutors) GetByUserID(_ context.Context, userID uuid.UUID) (*models.TutorProfile, error) {
	for _, p := range r.m.tutors {
		if p.UserID == userID {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r memTutors) ListActive(_ context.Context) ([]models.TutorProfile, error) {
	var out []models.TutorProfile
	for _, p := range r.m.tutors {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memTutors) ListAll(_ context.Context) ([]models.TutorProfile, error) {
	var out []models.TutorProfile
	for _, p := range r.m.tutors {
		out = append(out, p)
	}
	return out, nil
}

func (r memTutors) ListByVerified(_ context.Context, verified bool) ([]models.TutorProfile, error) {
	var out []models.TutorProfile
	for _, p := range r.m.tutors {
		if p.IsVerified == verified {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memTutors) Create(_ context.Context, p *models.TutorProfile) error {
	ensureID(&p.ID)
	r.m.tutors[p.ID] = *p
	return nil
}

func (r memTutors) Save(_ context.Context, p *models.TutorProfile) error {
	r.m.tutors[p.ID] = *p
	return nil
}

type memSlots struct{ m *memStore }

func (r memSlots) Get(_ context.Context, id uuid.UUID) (*models.AvailabilitySlot, error) {
	s, ok := r.m.slots[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r memSlots) ListByTutor(_ context.Context, tutorID uuid.UUID) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	for _, s := range r.m.slots {
		if s.TutorID == tutorID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r memSlots) ListActiveByTutor(_ context.Context, tutorID uuid.UUID) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	for _, s := range r.m.slots {
		if s.TutorID == tutorID && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r memSlots) Create(_ context.Context, s *models.AvailabilitySlot) error {
	ensureID(&s.ID)
	r.m.slots[s.ID] = *s
	return nil
}

func (r memSlots) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.m.slots, id)
	return nil
}

type memCatalog struct{ m *memStore }

func (r memCatalog) GetCity(_ context.Context, id uuid.UUID) (*models.City, error) {
	c, ok := r.m.cities[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r memCatalog) GetCityByName(_ context.Context, name string) (*models.City, error) {
	for _, c := range r.m.cities {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memCatalog) ListCities(_ context.Context) ([]models.City, error) {
	var out []models.City
	for _, c := range r.m.cities {
		out = append(out, c)
	}
	return out, nil
}

func (r memCatalog) GetDistrict(_ context.Context, id uuid.UUID) (*models.District, error) {
	d, ok := r.m.districts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (r memCatalog) GetDistrictByName(_ context.Context, name string) (*models.District, error) {
	for _, d := range r.m.districts {
		if d.Name == name {
			d := d
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (r memCatalog) ListDistrictsByCity(_ context.Context, cityID uuid.UUID) ([]models.District, error) {
	var out []models.District
	for _, d := range r.m.districts {
		if d.CityID == cityID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r memCatalog) GetSubject(_ context.Context, id uuid.UUID) (*models.Subject, error) {
	s, ok := r.m.subjects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r memCatalog) GetSubjectByName(_ context.Context, name string) (*models.Subject, error) {
	for _, s := range r.m.subjects {
		if s.Name == name {
			s := s
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r memCatalog) ListSubjects(_ context.Context) ([]models.Subject, error) {
	var out []models.Subject
	for _, s := range r.m.subjects {
		out = append(out, s)
	}
	return out, nil
}

func (r memCatalog) SubjectsForTutor(_ context.Context, tutorID uuid.UUID) ([]models.TutorSubject, error) {
	var out []models.TutorSubject
	for _, ts := range r.m.tutorSubjects {
		if ts.TutorID == tutorID {
			out = append(out, ts)
		}
	}
	return out, nil
}

func (r memCatalog) DistrictsForTutor(_ context.Context, tutorID uuid.UUID) ([]models.TutorDistrict, error) {
	var out []models.TutorDistrict
	for _, td := range r.m.tutorDistricts {
		if td.TutorID == tutorID {
			out = append(out, td)
		}
	}
	return out, nil
}

func (r memCatalog) AddTutorSubject(_ context.Context, ts *models.TutorSubject) error {
	ensureID(&ts.ID)
	r.m.tutorSubjects = append(r.m.tutorSubjects, *ts)
	return nil
}

func (r memCatalog) RemoveTutorSubject(_ context.Context, tutorID, subjectID uuid.UUID) error {
	kept := r.m.tutorSubjects[:0]
	for _, ts := range r.m.tutorSubjects {
		if !(ts.TutorID == tutorID && ts.SubjectID == subjectID) {
			kept = append(kept, ts)
		}
	}
	r.m.tutorSubjects = kept
	return nil
}

func (r memCatalog) AddTutorDistrict(_ context.Context, td *models.TutorDistrict) error {
	ensureID(&td.ID)
	r.m.tutorDistricts = append(r.m.tutorDistricts, *td)
	return nil
}

func (r memCatalog) RemoveTutorDistrict(_ context.Context, tutorID, districtID uuid.UUID) error {
	kept := r.m.tutorDistricts[:0]
	for _, td := range r.m.tutorDistricts {
		if !(td.TutorID == tutorID && td.DistrictID == districtID) {
			kept = append(kept, td)
		}
	}
	r.m.tutorDistricts = kept
	return nil
}

type memBookings struct{ m *memStore }

func (r memBookings) Get(_ context.Context, id uuid.UUID) (*models.BookingRequest, error) {
	b, ok := r.m.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r memBookings) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error) {
	return r.Get(ctx, id)
}

func (r memBookings) Create(_ context.Context, b *models.BookingRequest) error {
	ensureID(&b.ID)
	b.CreatedAt = time.Now()
	r.m.bookings[b.ID] = *b
	return nil
}

func (r memBookings) Save(_ context.Context, b *models.BookingRequest) error {
	r.m.bookings[b.ID] = *b
	return nil
}

func (r memBookings) ListByLearner(_ context.Context, learnerID uuid.UUID, status *models.BookingStatus) ([]models.BookingRequest, error) {
	var out []models.BookingRequest
	for _, b := range r.m.bookings {
		if b.LearnerID == learnerID && (status == nil || b.Status == *status) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r memBookings) ListByTutor(_ context.Context, tutorID uuid.UUID, status *models.BookingStatus) ([]models.BookingRequest, error) {
	var out []models.BookingRequest
	for _, b := range r.m.bookings {
		if b.TutorID == tutorID && (status == nil || b.Status == *status) {
			out = append(out, b)
		}
	}
	return out, nil
}

type memClasses struct{ m *memStore }

func (r memClasses) Get(_ context.Context, id uuid.UUID) (*models.Class, error) {
	c, ok := r.m.classes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r memClasses) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Class, error) {
	return r.Get(ctx, id)
}

func (r memClasses) Create(_ context.Context, c *models.Class) error {
	ensureID(&c.ID)
	c.CreatedAt = time.Now()
	r.m.classes[c.ID] = *c
	return nil
}

func (r memClasses) Save(_ context.Context, c *models.Class) error {
	r.m.classes[c.ID] = *c
	return nil
}

func (r memClasses) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.m.classes, id)
	return nil
}

func (r memClasses) List(_ context.Context) ([]models.Class, error) {
	var out []models.Class
	for _, c := range r.m.classes {
		out = append(out, c)
	}
	return out, nil
}

func (r memClasses) ListByStatus(_ context.Context, status models.ClassStatus) ([]models.Class, error) {
	var out []models.Class
	for _, c := range r.m.classes {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memClasses) ListByTutor(_ context.Context, tutorID uuid.UUID) ([]models.Class, error) {
	var out []models.Class
	for _, c := range r.m.classes {
		if c.TutorID == tutorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memClasses) ListEndedBefore(_ context.Context, t time.Time) ([]models.Class, error) {
	var out []models.Class
	for _, c := range r.m.classes {
		if !c.Status.Terminal() && c.EndDate != nil && c.EndDate.Before(t) {
			out = append(out, c)
		}
	}
	return out, nil
}

type memEnrollments struct{ m *memStore }

func (r memEnrollments) Get(_ context.Context, id uuid.UUID) (*models.Enrollment, error) {
	e, ok := r.m.enrollments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (r memEnrollments) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Enrollment, error) {
	return r.Get(ctx, id)
}

func (r memEnrollments) GetByClassAndLearner(_ context.Context, classID, learnerID uuid.UUID) (*models.Enrollment, error) {
	for _, e := range r.m.enrollments {
		if e.ClassID == classID && e.LearnerID == learnerID {
			e := e
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (r memEnrollments) Create(_ context.Context, e *models.Enrollment) error {
	ensureID(&e.ID)
	e.EnrolledAt = time.Now()
	r.m.enrollments[e.ID] = *e
	return nil
}

func (r memEnrollments) Save(_ context.Context, e *models.Enrollment) error {
	r.m.enrollments[e.ID] = *e
	return nil
}

func (r memEnrollments) ListByClass(_ context.Context, classID uuid.UUID) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range r.m.enrollments {
		if e.ClassID == classID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memEnrollments) ListByLearner(_ context.Context, learnerID uuid.UUID, status *models.EnrollmentStatus) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range r.m.enrollments {
		if e.LearnerID == learnerID && (status == nil || e.Status == *status) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memEnrollments) CountActiveByClass(_ context.Context, classID uuid.UUID) (int64, error) {
	var count int64
	for _, e := range r.m.enrollments {
		if e.ClassID == classID && e.Status == models.EnrollmentActive {
			count++
		}
	}
	return count, nil
}

type memReviews struct{ m *memStore }

func (r memReviews) Get(_ context.Context, id uuid.UUID) (*models.Review, error) {
	rev, ok := r.m.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rev, nil
}

func (r memReviews) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	return r.Get(ctx, id)
}

func (r memReviews) GetByTutorAndLearner(_ context.Context, tutorID, learnerID uuid.UUID) (*models.Review, error) {
	for _, rev := range r.m.reviews {
		if rev.TutorID == tutorID && rev.LearnerID == learnerID {
			rev := rev
			return &rev, nil
		}
	}
	return nil, ErrNotFound
}

func (r memReviews) Create(_ context.Context, rev *models.Review) error {
	ensureID(&rev.ID)
	rev.CreatedAt = time.Now()
	r.m.reviews[rev.ID] = *rev
	return nil
}

func (r memReviews) Save(_ context.Context, rev *models.Review) error {
	r.m.reviews[rev.ID] = *rev
	return nil
}

func (r memReviews) ListByTutorAndStatus(_ context.Context, tutorID uuid.UUID, status models.ReviewStatus) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.m.reviews {
		if rev.TutorID == tutorID && rev.Status == status {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r memReviews) ListByLearner(_ context.Context, learnerID uuid.UUID) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.m.reviews {
		if rev.LearnerID == learnerID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r memReviews) ListByStatus(_ context.Context, status models.ReviewStatus) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.m.reviews {
		if rev.Status == status {
			out = append(out, rev)
		}
	}
	return out, nil
}

type memFeedback struct{ m *memStore }

func (r memFeedback) Get(_ context.Context, id uuid.UUID) (*models.Feedback, error) {
	f, ok := r.m.feedback[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &f, nil
}

func (r memFeedback) Create(_ context.Context, f *models.Feedback) error {
	ensureID(&f.ID)
	f.CreatedAt = time.Now()
	r.m.feedback[f.ID] = *f
	return nil
}

func (r memFeedback) ListByLearner(_ context.Context, learnerID uuid.UUID) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, f := range r.m.feedback {
		if f.LearnerID == learnerID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r memFeedback) ListByTutor(_ context.Context, tutorID uuid.UUID) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, f := range r.m.feedback {
		if f.TutorID == tutorID {
			out = append(out, f)
		}
	}
	return out, nil
}

type memFlags struct{ m *memStore }

func (r memFlags) Get(_ context.Context, id uuid.UUID) (*models.Flag, error) {
	f, ok := r.m.flags[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &f, nil
}

func (r memFlags) Create(_ context.Context, f *models.Flag) error {
	ensureID(&f.ID)
	f.CreatedAt = time.Now()
	r.m.flags[f.ID] = *f
	r.m.flagOrder = append(r.m.flagOrder, f.ID)
	return nil
}

func (r memFlags) Save(_ context.Context, f *models.Flag) error {
	r.m.flags[f.ID] = *f
	return nil
}

func (r memFlags) List(_ context.Context, filter FlagFilter) ([]models.Flag, int64, error) {
	var matched []models.Flag
	for _, id := range r.m.flagOrder {
		f := r.m.flags[id]
		if filter.Status != nil && f.Status != *filter.Status {
			continue
		}
		if filter.ContentType != nil && f.ContentType != *filter.ContentType {
			continue
		}
		matched = append(matched, f)
	}

	total := int64(len(matched))
	offset := filter.Page * filter.PageSize
	if offset >= len(matched) {
		return []models.Flag{}, total, nil
	}
	end := offset + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type memNotifications struct{ m *memStore }

func (r memNotifications) Get(_ context.Context, id uuid.UUID) (*models.Notification, error) {
	n, ok := r.m.notifications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &n, nil
}

func (r memNotifications) Create(_ context.Context, n *models.Notification) error {
	ensureID(&n.ID)
	n.CreatedAt = time.Now()
	r.m.notifications[n.ID] = *n
	r.m.notifOrder = append(r.m.notifOrder, n.ID)
	return nil
}

func (r memNotifications) Save(_ context.Context, n *models.Notification) error {
	r.m.notifications[n.ID] = *n
	return nil
}

func (r memNotifications) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Notification, error) {
	var out []models.Notification
	for _, id := range r.m.notifOrder {
		if n := r.m.notifications[id]; n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r memNotifications) ListUnreadByUser(_ context.Context, userID uuid.UUID) ([]models.Notification, error) {
	var out []models.Notification
	for _, id := range r.m.notifOrder {
		if n := r.m.notifications[id]; n.UserID == userID && !n.IsRead {
			out = append(out, n)
		}
	}
	return out, nil
}

// recordingSink captures emitted events for assertions.
type recordingSink struct {
	events []sinkEvent
}

type sinkEvent struct {
	userID    uuid.UUID
	eventType string
	payload   map[string]any
}

func (r *recordingSink) Emit(userID uuid.UUID, eventType string, payload map[string]any) {
	r.events = append(r.events, sinkEvent{userID: userID, eventType: eventType, payload: payload})
}

// fixture bundles a fresh store, sink and service registry plus seed helpers.
type fixture struct {
	store *memStore
	sink  *recordingSink
	svc   *Services
}

func newFixture() *fixture {
	store := newMemStore()
	sink := &recordingSink{}
	return &fixture{store: store, sink: sink, svc: New(store, sink)}
}

func (f *fixture) addUser(role models.UserRole, first, last string) *models.User {
	u := &models.User{
		FirstName: first,
		LastName:  last,
		Email:     first + "." + last + "@example.com",
		Password:  "x",
		Role:      role,
		IsActive:  true,
	}
	_ = f.store.Users().Create(context.Background(), u)
	return u
}

func (f *fixture) addTutor(first, last string) (*models.User, *models.TutorProfile) {
	u := f.addUser(models.RoleTutor, first, last)
	p := &models.TutorProfile{UserID: u.ID, IsActive: true}
	_ = f.store.Tutors().Create(context.Background(), p)
	return u, p
}

func (f *fixture) addCity(name string) *models.City {
	c := models.City{ID: uuid.New(), Name: name}
	f.store.cities[c.ID] = c
	return &c
}

func (f *fixture) addDistrict(city *models.City, name string) *models.District {
	d := models.District{ID: uuid.New(), CityID: city.ID, Name: name}
	f.store.districts[d.ID] = d
	return &d
}

func (f *fixture) addSubject(name string) *models.Subject {
	s := models.Subject{ID: uuid.New(), Name: name}
	f.store.subjects[s.ID] = s
	return &s
}

func (f *fixture) addSlot(tutorID uuid.UUID, day models.DayOfWeek, start, end string) *models.AvailabilitySlot {
	s := &models.AvailabilitySlot{TutorID: tutorID, DayOfWeek: day, StartTime: start, EndTime: end, IsActive: true}
	_ = f.store.Slots().Create(context.Background(), s)
	return s
}

func (f *fixture) addClass(tutorID uuid.UUID, name string, maxStudents int) *models.Class {
	c := &models.Class{
		TutorID:     tutorID,
		Name:        name,
		ClassType:   "GROUP",
		MaxStudents: maxStudents,
		Status:      models.ClassOpen,
	}
	_ = f.store.Classes().Create(context.Background(), c)
	return c
}
