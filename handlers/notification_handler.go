package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team13/tutorfind/utils"
)

func GetMyNotifications(c *fiber.Ctx) error {
	unreadOnly := c.Query("unread") == "true"
	notifications, err := svc.Notifications.ListForUser(c.Context(), utils.CurrentUserID(c), unreadOnly)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notifications)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	notificationID, err := utils.ParseUUIDParam(c, "notificationId")
	if err != nil {
		return err
	}
	notification, err := svc.Notifications.MarkRead(c.Context(), utils.CurrentUserID(c), notificationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notification)
}

func MarkAllNotificationsRead(c *fiber.Ctx) error {
	count, err := svc.Notifications.MarkAllRead(c.Context(), utils.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"marked_read": count})
}
