package database

import (
	"fmt"
	"log"

	config "github.com/anyango/dev_circle/configs"
	"github.com/anyango/dev_circle/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
		// Cross-entity links are id references resolved at read time.
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
		&models.Question{},
		&models.Answer{},
		&models.Tag{},
		&models.Vote{},
		&models.Mentor{},
		&models.AvailabilityWindow{},
		&models.MentorshipRequest{},
		&models.ProposedTime{},
		&models.RequestMessage{},
		&models.Session{},
		&models.ExpertProfile{},
		&models.Event{},
		&models.Article{},
		&models.CodeChallenge{},
		&models.Job{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminExternalID := config.Config("ADMIN_EXTERNAL_ID")
	adminEmail := config.Config("ADMIN_EMAIL")
	if adminExternalID == "" {
		log.Println("ADMIN_EXTERNAL_ID not set, skipping admin seed.")
		return
	}

	var count int64
	err := DB.Model(&models.User{}).Where("external_id = ?", adminExternalID).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	adminUser := models.User{
		ExternalID: adminExternalID,
		Name:       config.Config("ADMIN_FULL_NAME"),
		Username:   "admin",
		Email:      adminEmail,
		Role:       models.RoleAdmin,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}
