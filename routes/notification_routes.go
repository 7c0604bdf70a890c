package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team13/tutorfind/handlers"
	"github.com/team13/tutorfind/middleware"
)

func NotificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	notifications := api.Group("/notifications", middleware.Protected())
	notifications.Get("", handlers.GetMyNotifications)
	notifications.Post("/read-all", handlers.MarkAllNotificationsRead)
	notifications.Post("/:notificationId/read", handlers.MarkNotificationRead)
}
