package initializers

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/models"
)

// LoadEnv pulls in a local .env when present; deployed environments provide
// real environment variables instead.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}
}

func ConnectToDatabase() (*gorm.DB, error) {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	// The hosted database presents a certificate we cannot verify; the
	// override mirrors the frontend-era deployment config.
	if sslmode := os.Getenv("DB_SSLMODE"); sslmode != "" && !strings.Contains(dsn, "sslmode=") {
		if strings.Contains(dsn, "?") {
			dsn += "&sslmode=" + sslmode
		} else {
			dsn += "?sslmode=" + sslmode
		}
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Plan{},
		&models.Folder{},
		&models.File{},
		&models.Share{},
	); err != nil {
		return nil, fmt.Errorf("migrate database schema: %w", err)
	}

	log.Println("✅ Database connected and migrated successfully")
	return db, nil
}
