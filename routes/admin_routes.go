package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team13/tutorfind/handlers"
	"github.com/team13/tutorfind/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	reviews := admin.Group("/reviews")
	reviews.Get("/pending", handlers.ListPendingReviews)
	reviews.Post("/:reviewId/approve", handlers.ApproveReview)
	reviews.Post("/:reviewId/reject", handlers.RejectReview)

	flags := admin.Group("/flags")
	flags.Get("", handlers.ListFlags)
	flags.Put("/:flagId/status", handlers.UpdateFlagStatus)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.SetUserActive)

	tutors := admin.Group("/tutors")
	tutors.Get("", handlers.GetAllTutors)
	tutors.Put("/:tutorId/verify", handlers.SetTutorVerified)

	admin.Get("/stats", handlers.GetPlatformStats)
}
