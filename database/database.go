package database

import (
	"fmt"
	"log"

	config "github.com/team13/tutorfind/configs"
	"github.com/team13/tutorfind/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.TutorProfile{},
		&models.AvailabilitySlot{},
		&models.City{},
		&models.District{},
		&models.Subject{},
		&models.TutorSubject{},
		&models.TutorDistrict{},
		&models.BookingRequest{},
		&models.Class{},
		&models.Enrollment{},
		&models.Review{},
		&models.Feedback{},
		&models.Flag{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FirstName: config.Config("ADMIN_FIRST_NAME"),
		LastName:  config.Config("ADMIN_LAST_NAME"),
		Email:     adminEmail,
		Password:  string(hashedPassword),
		Role:      models.RoleAdmin,
		IsActive:  true,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// SeedCatalog loads the starter city/district/subject catalog on an empty
// database. Names are the lookup keys for search, so they stay stable.
func SeedCatalog() {
	var count int64
	if err := DB.Model(&models.City{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check catalog: %v", err)
		return
	}
	if count > 0 {
		return
	}

	cities := map[string][]string{
		"Baku":     {"Yasamal", "Nasimi", "Sabail", "Narimanov", "Binagadi"},
		"Ganja":    {"Kapaz", "Nizami"},
		"Sumqayit": {},
	}
	for cityName, districts := range cities {
		city := models.City{Name: cityName}
		if err := DB.Create(&city).Error; err != nil {
			log.Fatalf("🔥 Failed to seed city %s: %v", cityName, err)
			return
		}
		for _, districtName := range districts {
			district := models.District{CityID: city.ID, Name: districtName}
			if err := DB.Create(&district).Error; err != nil {
				log.Fatalf("🔥 Failed to seed district %s: %v", districtName, err)
				return
			}
		}
	}

	subjects := []models.Subject{
		{Name: "Mathematics"},
		{Name: "Physics"},
		{Name: "Chemistry"},
		{Name: "English"},
		{Name: "Azerbaijani"},
		{Name: "History"},
		{Name: "Informatics"},
	}
	for i := range subjects {
		if err := DB.Create(&subjects[i]).Error; err != nil {
			log.Fatalf("🔥 Failed to seed subject %s: %v", subjects[i].Name, err)
			return
		}
	}

	log.Println("✅ Catalog seeded successfully")
}
