package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/ahmad-zhafir/ReFeed-sub001/models"
	"github.com/ahmad-zhafir/ReFeed-sub001/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrClaimOwnListing       = errors.New("cannot claim your own listing")
	ErrListingFullyClaimed   = errors.New("listing has already been fully claimed")
	ErrClaimExceedsRemaining = errors.New("requested quantity exceeds remaining quantity")
	ErrQuantityUnitMismatch  = errors.New("quantity unit does not match the listing")
)

// Notifier is the mail surface claim and rating flows need; utils.Mailer
// implements it, tests leave it nil.
type Notifier interface {
	SendClaimNotification(to, listingTitle, claimerName, quantity string) error
	SendRatingNotification(to, listingTitle string, stars int) error
}

type ClaimService struct {
	db       *gorm.DB
	hub      *RealtimeHub
	notifier Notifier
}

func NewClaimService(db *gorm.DB, hub *RealtimeHub, notifier Notifier) *ClaimService {
	return &ClaimService{db: db, hub: hub, notifier: notifier}
}

// ClaimListing records a claim and updates the listing inside a single
// transaction. The listing row is locked for the duration so two farmers
// racing for the last of a listing cannot jointly exceed the original
// quantity; the remainder is recomputed from the claim rows rather than
// decremented blindly.
func (s *ClaimService) ClaimListing(listingID string, claimer *models.User, quantity string) (*models.Claim, error) {
	reqVal, reqUnit, err := utils.ParseQuantity(quantity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuantity, err)
	}

	var claim *models.Claim
	var listing models.Listing

	err = s.db.Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			// sqlite (tests) has no row locks; its writes are serialized anyway
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&listing, "id = ?", listingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrListingNotFound
			}
			return err
		}

		if listing.GeneratorID == claimer.ID {
			return ErrClaimOwnListing
		}
		if listing.Status != models.ListingStatusActive {
			return ErrListingFullyClaimed
		}

		remVal, remUnit, err := utils.ParseQuantity(listing.RemainingQty)
		if err != nil {
			return fmt.Errorf("listing %s has malformed remaining quantity: %w", listing.ID, err)
		}
		if reqUnit != "" && remUnit != "" && reqUnit != remUnit {
			return ErrQuantityUnitMismatch
		}
		if reqUnit == "" {
			reqUnit = remUnit
		}
		if reqVal > remVal {
			return ErrClaimExceedsRemaining
		}

		claim = &models.Claim{
			ID:             uuid.NewString(),
			ListingID:      listing.ID,
			ClaimerID:      claimer.ID,
			ClaimerName:    claimer.FullName,
			ClaimerContact: claimer.Contact,
			Quantity:       utils.FormatQuantity(reqVal, reqUnit),
		}
		if err := tx.Create(claim).Error; err != nil {
			return err
		}

		// remaining = original - sum of all claims
		origVal, origUnit, err := utils.ParseQuantity(listing.OriginalQty)
		if err != nil {
			return fmt.Errorf("listing %s has malformed original quantity: %w", listing.ID, err)
		}
		var claims []models.Claim
		if err := tx.Where("listing_id = ?", listing.ID).Find(&claims).Error; err != nil {
			return err
		}
		claimed := 0.0
		for _, c := range claims {
			v, _, err := utils.ParseQuantity(c.Quantity)
			if err != nil {
				return fmt.Errorf("claim %s has malformed quantity: %w", c.ID, err)
			}
			claimed += v
		}

		remaining := origVal - claimed
		if remaining < 0 {
			// unreachable while the row lock holds
			return ErrClaimExceedsRemaining
		}
		if remaining < 1e-9 {
			// float dust from fractional claims counts as empty
			remaining = 0
			listing.Status = models.ListingStatusClaimed
		}
		listing.RemainingQty = utils.FormatQuantity(remaining, origUnit)

		return tx.Save(&listing).Error
	})
	if err != nil {
		return nil, err
	}

	// post-commit fanout is best-effort
	if s.hub != nil {
		event := "listing.updated"
		if listing.Status == models.ListingStatusClaimed {
			event = "listing.claimed"
		}
		s.hub.BroadcastListing(event, &listing)
	}
	if s.notifier != nil {
		var generator models.User
		if err := s.db.First(&generator, listing.GeneratorID).Error; err == nil {
			if err := s.notifier.SendClaimNotification(generator.Email, listing.Title, claimer.FullName, claim.Quantity); err != nil {
				log.Printf("claim notification email failed: %v", err)
			}
		}
	}

	return claim, nil
}

func (s *ClaimService) ListByClaimer(claimerID uint) ([]models.Claim, error) {
	var claims []models.Claim
	err := s.db.
		Where("claimer_id = ?", claimerID).
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}

func (s *ClaimService) ListByListing(listingID string) ([]models.Claim, error) {
	var claims []models.Claim
	err := s.db.
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}
