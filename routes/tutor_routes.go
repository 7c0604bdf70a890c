package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team13/tutorfind/handlers"
	"github.com/team13/tutorfind/middleware"
)

// TutorRoutes is the tutor's own management surface.
func TutorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	tutor := api.Group("/tutor", middleware.Protected(), middleware.TutorRequired())

	tutor.Get("/profile", handlers.GetMyTutorProfile)
	tutor.Put("/profile", handlers.UpdateMyTutorProfile)

	availability := tutor.Group("/availability")
	availability.Get("", handlers.GetMyAvailability)
	availability.Post("", handlers.AddAvailabilitySlot)
	availability.Delete("/:slotId", handlers.RemoveAvailabilitySlot)

	subjects := tutor.Group("/subjects")
	subjects.Post("", handlers.AddMySubject)
	subjects.Delete("/:subjectId", handlers.RemoveMySubject)

	districts := tutor.Group("/districts")
	districts.Post("", handlers.AddMyDistrict)
	districts.Delete("/:districtId", handlers.RemoveMyDistrict)

	classes := tutor.Group("/classes")
	classes.Get("", handlers.GetMyClasses)
	classes.Post("", handlers.CreateClass)
	classes.Put("/:classId", handlers.UpdateClass)
	classes.Delete("/:classId", handlers.DeleteClass)
	classes.Post("/:classId/cancel", handlers.CancelClass)
	classes.Get("/:classId/roster", handlers.GetClassRoster)

	tutor.Get("/bookings", handlers.GetMyReceivedBookings)
	tutor.Post("/bookings/:bookingId/respond", handlers.RespondBooking)

	feedback := tutor.Group("/feedback")
	feedback.Post("", handlers.SubmitFeedback)
	feedback.Get("", handlers.GetMyGivenFeedback)
}
