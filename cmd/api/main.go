package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	config "github.com/team13/tutorfind/configs"
	"github.com/team13/tutorfind/database"
	"github.com/team13/tutorfind/handlers"
	"github.com/team13/tutorfind/jobs"
	"github.com/team13/tutorfind/notifications"
	"github.com/team13/tutorfind/routes"
	"github.com/team13/tutorfind/services"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	database.SeedCatalog()
	notifications.InitEmailService()

	store := database.NewStore(database.DB)
	svc := services.New(store, notifications.NewSink(store))
	handlers.Init(svc)
	jobs.Init(svc)

	c := cron.New()
	c.AddFunc("*/10 * * * *", jobs.CompleteEndedClasses)
	c.AddFunc("0 3 * * *", jobs.ReconcileRatings)
	go c.Start()
	log.Println("✅ Cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "TutorFind",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Baku",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to TutorFind API",
		})
	})

	routes.PublicRoutes(app)
	routes.AuthRoutes(app)
	routes.TutorRoutes(app)
	routes.LearnerRoutes(app)
	routes.AdminRoutes(app)
	routes.NotificationRoutes(app)
	routes.UploadRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	addr := ":" + config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
