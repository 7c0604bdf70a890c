package services

// Services bundles the core components over one Store and one sink, wired
// once at startup.
type Services struct {
	Auth          *AuthService
	Catalog       *CatalogService
	Search        *SearchService
	Availability  *AvailabilityService
	Tutors        *TutorService
	Bookings      *BookingService
	Classes       *ClassService
	Enrollments   *EnrollmentService
	Reviews       *ReviewService
	Moderation    *ModerationService
	Feedback      *FeedbackService
	Notifications *NotificationService
}

func New(store Store, notify NotificationSink) *Services {
	return &Services{
		Auth:          NewAuthService(store),
		Catalog:       NewCatalogService(store),
		Search:        NewSearchService(store),
		Availability:  NewAvailabilityService(store),
		Tutors:        NewTutorService(store),
		Bookings:      NewBookingService(store, notify),
		Classes:       NewClassService(store),
		Enrollments:   NewEnrollmentService(store),
		Reviews:       NewReviewService(store),
		Moderation:    NewModerationService(store),
		Feedback:      NewFeedbackService(store, notify),
		Notifications: NewNotificationService(store),
	}
}
