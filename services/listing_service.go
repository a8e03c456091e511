package services

import (
	"errors"
	"fmt"

	"github.com/ahmad-zhafir/ReFeed-sub001/models"
	"github.com/ahmad-zhafir/ReFeed-sub001/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultSearchRadiusKm applies when a farmer has a home location but never
// configured a radius.
const DefaultSearchRadiusKm = 10.0

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

type ListingService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewListingService(db *gorm.DB, hub *RealtimeHub) *ListingService {
	return &ListingService{db: db, hub: hub}
}

type CreateListingInput struct {
	Title     string  `json:"title" binding:"required"`
	Quantity  string  `json:"quantity" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	ImageURL  string  `json:"image_url"`
}

func (s *ListingService) Create(generator *models.User, input CreateListingInput) (*models.Listing, error) {
	if _, _, err := utils.ParseQuantity(input.Quantity); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuantity, err)
	}

	listing := models.Listing{
		ID:               uuid.NewString(),
		GeneratorID:      generator.ID,
		GeneratorName:    generator.FullName,
		GeneratorContact: generator.Contact,
		Title:            input.Title,
		OriginalQty:      input.Quantity,
		RemainingQty:     input.Quantity,
		Address:          input.Address,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		ImageURL:         input.ImageURL,
		Status:           models.ListingStatusActive,
	}
	if err := s.db.Create(&listing).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastListing("listing.created", &listing)
	}
	return &listing, nil
}

func (s *ListingService) Get(id string) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (s *ListingService) ListByGenerator(generatorID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := s.db.
		Where("generator_id = ?", generatorID).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (s *ListingService) ActiveListings() ([]models.Listing, error) {
	var listings []models.Listing
	err := s.db.
		Where("status = ?", models.ListingStatusActive).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

// VisibleListings keeps the listings within radiusKm of the farmer's home
// location. A farmer without a home location sees everything (fail-open);
// a zero radius falls back to DefaultSearchRadiusKm.
func VisibleListings(listings []models.Listing, homeLat, homeLng *float64, radiusKm float64) []models.Listing {
	if homeLat == nil || homeLng == nil {
		return listings
	}
	if radiusKm <= 0 {
		radiusKm = DefaultSearchRadiusKm
	}

	visible := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if utils.HaversineKm(*homeLat, *homeLng, l.Latitude, l.Longitude) <= radiusKm {
			visible = append(visible, l)
		}
	}
	return visible
}

// VisibleToFarmer loads the active listing set filtered by the farmer's
// search radius.
func (s *ListingService) VisibleToFarmer(farmer *models.User) ([]models.Listing, error) {
	listings, err := s.ActiveListings()
	if err != nil {
		return nil, err
	}
	return VisibleListings(listings, farmer.HomeLat, farmer.HomeLng, farmer.SearchRadiusKm), nil
}
