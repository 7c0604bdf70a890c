package models

// Status values are closed enumerations. Every entity with a lifecycle owns its
// allowed-transition set here instead of accepting free-form strings.

type UserRole string

const (
	RoleLearner UserRole = "LEARNER"
	RoleTutor   UserRole = "TUTOR"
	RoleAdmin   UserRole = "ADMIN"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleLearner, RoleTutor, RoleAdmin:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingPending  BookingStatus = "PENDING"
	BookingAccepted BookingStatus = "ACCEPTED"
	BookingDeclined BookingStatus = "DECLINED"
)

// Terminal reports whether the booking has been responded to. A terminal
// booking is immutable.
func (s BookingStatus) Terminal() bool {
	return s == BookingAccepted || s == BookingDeclined
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return s == BookingPending && next.Terminal()
}

type ClassStatus string

const (
	ClassOpen      ClassStatus = "OPEN"
	ClassFull      ClassStatus = "FULL"
	ClassCompleted ClassStatus = "COMPLETED"
	ClassCancelled ClassStatus = "CANCELLED"
)

func (s ClassStatus) Terminal() bool {
	return s == ClassCompleted || s == ClassCancelled
}

func (s ClassStatus) Valid() bool {
	switch s {
	case ClassOpen, ClassFull, ClassCompleted, ClassCancelled:
		return true
	}
	return false
}

type EnrollmentStatus string

const (
	EnrollmentActive  EnrollmentStatus = "ACTIVE"
	EnrollmentDropped EnrollmentStatus = "DROPPED"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewRejected ReviewStatus = "REJECTED"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewRejected:
		return true
	}
	return false
}

// CanTransitionTo encodes the moderation state machine: a review is approved
// only from PENDING and rejected from PENDING or APPROVED. There is no path
// out of REJECTED.
func (s ReviewStatus) CanTransitionTo(next ReviewStatus) bool {
	switch next {
	case ReviewApproved:
		return s == ReviewPending
	case ReviewRejected:
		return s == ReviewPending || s == ReviewApproved
	}
	return false
}

// FlagStatus has no transition restrictions: moderators may overwrite any
// status with any other.
type FlagStatus string

const (
	FlagPending  FlagStatus = "PENDING"
	FlagApproved FlagStatus = "APPROVED"
	FlagRejected FlagStatus = "REJECTED"
	FlagHidden   FlagStatus = "HIDDEN"
)

func (s FlagStatus) Valid() bool {
	switch s {
	case FlagPending, FlagApproved, FlagRejected, FlagHidden:
		return true
	}
	return false
}

type FlagContentType string

const (
	FlagContentReview   FlagContentType = "REVIEW"
	FlagContentFeedback FlagContentType = "FEEDBACK"
	FlagContentBooking  FlagContentType = "BOOKING"
	FlagContentClass    FlagContentType = "CLASS"
	FlagContentOther    FlagContentType = "OTHER"
)

func (t FlagContentType) Valid() bool {
	switch t {
	case FlagContentReview, FlagContentFeedback, FlagContentBooking, FlagContentClass, FlagContentOther:
		return true
	}
	return false
}
