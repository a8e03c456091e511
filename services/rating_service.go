package services

import (
	"errors"
	"log"
	"math"

	"github.com/ahmad-zhafir/ReFeed-sub001/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderAlreadyRated = errors.New("order has already been rated")
	ErrStarsOutOfRange   = errors.New("stars must be between 1 and 5")
)

type RatingService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewRatingService(db *gorm.DB, notifier Notifier) *RatingService {
	return &RatingService{db: db, notifier: notifier}
}

// SubmitRating stores a farmer's rating for a completed order (claim) and
// back-links it onto the claim in the same transaction, so a second rating
// for the same order is rejected. The generator's aggregate is recomputed
// afterwards; if that fails the rating stands and the next submission
// repairs the aggregate.
func (s *RatingService) SubmitRating(orderID string, farmer *models.User, stars int, comment string) (*models.Rating, error) {
	if stars < 1 || stars > 5 {
		return nil, ErrStarsOutOfRange
	}

	var rating *models.Rating
	var listing models.Listing

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var claim models.Claim
		if err := tx.First(&claim, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if claim.ClaimerID != farmer.ID {
			// only the claimer may rate their order
			return ErrOrderNotFound
		}
		if claim.RatingID != "" {
			return ErrOrderAlreadyRated
		}

		if err := tx.First(&listing, "id = ?", claim.ListingID).Error; err != nil {
			return err
		}

		rating = &models.Rating{
			ID:          uuid.NewString(),
			OrderID:     claim.ID,
			ListingID:   listing.ID,
			GeneratorID: listing.GeneratorID,
			FarmerID:    farmer.ID,
			Stars:       stars,
			Comment:     comment,
		}
		if err := tx.Create(rating).Error; err != nil {
			return err
		}

		claim.RatingID = rating.ID
		return tx.Save(&claim).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.RecomputeGeneratorAverage(listing.GeneratorID); err != nil {
		log.Printf("rating aggregate recompute failed for generator %d: %v", listing.GeneratorID, err)
	}

	if s.notifier != nil {
		var generator models.User
		if err := s.db.First(&generator, listing.GeneratorID).Error; err == nil {
			if err := s.notifier.SendRatingNotification(generator.Email, listing.Title, stars); err != nil {
				log.Printf("rating notification email failed: %v", err)
			}
		}
	}

	return rating, nil
}

// RecomputeGeneratorAverage stores the arithmetic mean of all ratings for a
// generator, rounded to one decimal place, together with the rating count.
// Zero ratings map to average 0 and count 0.
func (s *RatingService) RecomputeGeneratorAverage(generatorID uint) error {
	var ratings []models.Rating
	if err := s.db.Where("generator_id = ?", generatorID).Find(&ratings).Error; err != nil {
		return err
	}

	avg := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Stars
		}
		avg = round1(float64(sum) / float64(len(ratings)))
	}

	return s.db.Model(&models.User{}).
		Where("id = ?", generatorID).
		Updates(map[string]interface{}{
			"avg_rating":   avg,
			"rating_count": len(ratings),
		}).Error
}

func (s *RatingService) ListByGenerator(generatorID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.db.
		Where("generator_id = ?", generatorID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
