package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team13/tutorfind/handlers"
	"github.com/team13/tutorfind/middleware"
)

// LearnerRoutes covers booking, enrollment, reviews and feedback from the
// learner's side.
func LearnerRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Post("", handlers.CreateBooking)
	bookings.Get("/me", handlers.GetMySentBookings)
	bookings.Get("/:bookingId", handlers.GetBooking)

	enrollments := api.Group("/enrollments", middleware.Protected())
	enrollments.Get("/me", handlers.GetMyEnrollments)
	enrollments.Post("/:classId", handlers.EnrollInClass)
	enrollments.Delete("/:classId", handlers.DropEnrollment)

	reviews := api.Group("/reviews", middleware.Protected())
	reviews.Post("", handlers.CreateReview)
	reviews.Get("/me", handlers.GetMyReviews)

	feedback := api.Group("/feedback", middleware.Protected())
	feedback.Get("/me", handlers.GetMyReceivedFeedback)
	feedback.Get("/:feedbackId", handlers.GetFeedback)

	api.Post("/flags", middleware.Protected(), handlers.FlagContent)
}
