package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ahmad-zhafir/ReFeed-sub001/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}
}

// ConnectDB opens the Postgres connection and migrates the schema.
// TABLE_NAMESPACE prefixes every table for a namespaced multi-tenant layout;
// leaving it empty keeps the flat single-tenant one.
func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	cfg := &gorm.Config{}
	if ns := os.Getenv("TABLE_NAMESPACE"); ns != "" {
		cfg.NamingStrategy = schema.NamingStrategy{TablePrefix: ns + "_"}
	}

	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	return db
}

// Migrate is separate from ConnectDB so tests can run it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Claim{},
		&models.Rating{},
	)
}
