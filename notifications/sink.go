package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
	"github.com/team13/tutorfind/services"
)

// Sink persists every emitted event as an in-app notification row and mirrors
// it to email when the email client is configured. Delivery never fails the
// caller: errors are logged and dropped.
type Sink struct {
	store services.Store
}

func NewSink(store services.Store) *Sink {
	return &Sink{store: store}
}

var emailSubjects = map[string]string{
	services.EventBookingCreated:  "New booking request",
	services.EventBookingAccepted: "Your booking was accepted",
	services.EventBookingDeclined: "Your booking was declined",
	services.EventFeedbackAdded:   "You received new session feedback",
}

func (s *Sink) Emit(userID uuid.UUID, eventType string, payload map[string]any) {
	ctx := context.Background()

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("🔥 Failed to encode notification payload for %s: %v", eventType, err)
		body = []byte("{}")
	}

	notification := &models.Notification{
		UserID:  userID,
		Type:    eventType,
		Payload: string(body),
	}
	if err := s.store.Notifications().Create(ctx, notification); err != nil {
		log.Printf("🔥 Failed to store notification %s for user %s: %v", eventType, userID, err)
		return
	}

	subject, ok := emailSubjects[eventType]
	if !ok || EmailClient == nil {
		return
	}
	user, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		log.Printf("🔥 Failed to resolve notification recipient %s: %v", userID, err)
		return
	}
	html := fmt.Sprintf("<p>Hi %s,</p><p>%s. Open TutorFind to see the details.</p>", user.FirstName, subject)
	go SendEmail(user.FullName(), user.Email, subject, html)
}
