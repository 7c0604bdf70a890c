package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// NotificationService is the read side of the in-app notification feed.
type NotificationService struct {
	store Store
}

func NewNotificationService(store Store) *NotificationService {
	return &NotificationService{store: store}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]models.Notification, error) {
	if unreadOnly {
		return s.store.Notifications().ListUnreadByUser(ctx, userID)
	}
	return s.store.Notifications().ListByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*models.Notification, error) {
	notification, err := s.store.Notifications().Get(ctx, notificationID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("notification")
	}
	if err != nil {
		return nil, err
	}
	if notification.UserID != userID {
		return nil, unauthorized("notification belongs to another user")
	}
	if !notification.IsRead {
		notification.IsRead = true
		if err := s.store.Notifications().Save(ctx, notification); err != nil {
			return nil, err
		}
	}
	return notification, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	unread, err := s.store.Notifications().ListUnreadByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	for i := range unread {
		unread[i].IsRead = true
		if err := s.store.Notifications().Save(ctx, &unread[i]); err != nil {
			return i, err
		}
	}
	return len(unread), nil
}
