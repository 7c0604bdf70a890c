package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team13/tutorfind/handlers"
)

// PublicRoutes are readable without authentication: discovery, tutor pages
// and the catalog.
func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	tutors := api.Group("/tutors")
	tutors.Get("/search", handlers.SearchTutors)
	tutors.Get("/:tutorId", handlers.GetTutorDetail)
	tutors.Get("/:tutorId/availability", handlers.GetTutorAvailability)
	tutors.Get("/:tutorId/reviews", handlers.GetTutorReviews)

	catalog := api.Group("/catalog")
	catalog.Get("/cities", handlers.ListCities)
	catalog.Get("/cities/:cityId/districts", handlers.ListDistricts)
	catalog.Get("/subjects", handlers.ListSubjects)

	classes := api.Group("/classes")
	classes.Get("", handlers.ListOpenClasses)
	classes.Get("/:classId", handlers.GetClass)
}
