package services

import (
	"testing"

	"github.com/ahmad-zhafir/ReFeed-sub001/config"
	"github.com/ahmad-zhafir/ReFeed-sub001/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    email,
		Password: "not-a-real-hash",
		FullName: "Test " + role,
		Contact:  "012-3456789",
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createListing(t *testing.T, db *gorm.DB, generator *models.User, quantity string, lat, lng float64) *models.Listing {
	t.Helper()
	svc := NewListingService(db, nil)
	listing, err := svc.Create(generator, CreateListingInput{
		Title:     "Surplus vegetables",
		Quantity:  quantity,
		Address:   "Jalan Test 1",
		Latitude:  lat,
		Longitude: lng,
	})
	if err != nil {
		t.Fatalf("create listing: %v", err)
	}
	return listing
}
