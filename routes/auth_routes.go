package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team13/tutorfind/handlers"
	"github.com/team13/tutorfind/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
	auth.Post("/forgot-password", handlers.ForgotPassword)
	auth.Post("/reset-password", handlers.ResetPassword)

	me := api.Group("/me", middleware.Protected())
	me.Get("", handlers.GetMe)
	me.Put("", handlers.UpdateMe)
}
