package database

import (
	"log"
	"strings"

	"quill/config"
	"quill/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database described by DATABASE_URL. A "postgres://"
// URL is passed through to the postgres driver, a "sqlite://" URL opens
// the file after the prefix. Without DATABASE_URL the postgres DSN is
// assembled from the individual DB_* settings.
func Connect(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector

	switch {
	case strings.HasPrefix(cfg.DatabaseURL, "sqlite://"):
		dialector = sqlite.Open(strings.TrimPrefix(cfg.DatabaseURL, "sqlite://"))
	case cfg.DatabaseURL != "":
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		dialector = postgres.Open(cfg.PostgresDSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connected successfully")
	return db
}

func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
	)

	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database migrated successfully")
}
