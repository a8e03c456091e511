package services

import (
	"errors"
	"testing"

	"github.com/ahmad-zhafir/ReFeed-sub001/models"
)

func TestClaimListingPartial(t *testing.T) {
	db := setupTestDB(t)
	generator := createUser(t, db, "gen@example.com", models.RoleGenerator)
	farmer := createUser(t, db, "farm@example.com", models.RoleFarmer)
	listing := createListing(t, db, generator, "25 kg", 3.14, 101.69)

	svc := NewClaimService(db, nil, nil)
	claim, err := svc.ClaimListing(listing.ID, farmer, "10 kg")
	if err != nil {
		t.Fatalf("ClaimListing: %v", err)
	}
	if claim.Quantity != "10 kg" {
		t.Errorf("claim quantity = %q, want %q", claim.Quantity, "10 kg")
	}

	var got models.Listing
	if err := db.First(&got, "id = ?", listing.ID).Error; err != nil {
		t.Fatalf("reload listing: %v", err)
	}
	if got.RemainingQty != "15 kg" {
		t.Errorf("RemainingQty = %q, want %q", got.RemainingQty, "15 kg")
	}
	if got.Status != models.ListingStatusActive {
		t.Errorf("Status = %q, want active", got.Status)
	}
}

func TestClaimListingFullFlipsStatus(t *testing.T) {
	db := setupTestDB(t)
	generator := createUser(t, db, "gen@example.com", models.RoleGenerator)
	farmer := createUser(t, db, "farm@example.com", models.RoleFarmer)
	listing := createListing(t, db, generator, "25 kg", 3.14, 101.69)

	svc := NewClaimService(db, nil, nil)
	if _, err := svc.ClaimListing(listing.ID, farmer, "25 kg"); err != nil {
		t.Fatalf("ClaimListing: %v", err)
	}

	var got models.Listing
	db.First(&got, "id = ?", listing.ID)
	if got.Status != models.ListingStatusClaimed {
		t.Errorf("Status = %q, want claimed", got.Status)
	}
	if got.RemainingQty != "0 kg" {
		t.Errorf("RemainingQty = %q, want %q", got.RemainingQty, "0 kg")
	}
}

func TestClaimListingRejectsOverClaim(t *testing.T) {
	db := setupTestDB(t)
	generator := createUser(t, db, "gen@example.com", models.RoleGenerator)
	farmer := createUser(t, db, "farm@example.com", models.RoleFarmer)
	listing := createListing(t, db, generator, "25 kg", 3.14, 101.69)

	svc := NewClaimService(db, nil, nil)
	_, err := svc.ClaimListing(listing.ID, farmer, "30 kg")
	if !errors.Is(err, ErrClaimExceedsRemaining) {
		t.Fatalf("err = %v, want ErrClaimExceedsRemaining", err)
	}

	// nothing may have been written
	var claimCount int64
	db.Model(&models.Claim{}).Count(&claimCount)
	if claimCount != 0 {
		t.Errorf("claim count = %d, want 0", claimCount)
	}
	var got models.Listing
	db.First(&got, "id = ?", listing.ID)
	if got.RemainingQty != "25 kg" || got.Status != models.ListingStatusActive {
		t.Errorf("listing mutated on rejected claim: %+v", got)
	}
}

func TestClaimListingRejectsOwnListing(t *testing.T) {
	db := setupTestDB(t)
	generator := createUser(t, db, "gen@example.com", models.RoleGenerator)
	listing := createListing(t, db, generator, "25 kg", 3.14, 101.69)

	svc := NewClaimService(db, nil, nil)
	if _, err := svc.ClaimListing(listing.ID, generator, "1 kg"); !errors.Is(err, ErrClaimOwnListing) {
		t.Fatalf("err = %v, want ErrClaimOwnListing", err)
	}
}

func TestClaimListingRejectsFullyClaimed(t *testing.T) {
	db := setupTestDB(t)
	generator := createUser(t, db, "gen@example.com", models.RoleGenerator)
	farmer := createUser(t, db, "farm@example.com", models.RoleFarmer)
	other := createUser(t, db, "farm2@example.com", models.RoleFarmer)
	listing := createListing(t, db, generator, "25 kg", 3.14, 101.69)

	svc := NewClaimService(db, nil, nil)
	if _, err := svc.ClaimListing(listing.ID, farmer, "25 kg"); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if _, err := svc.ClaimListing(listing.ID, other, "1 kg"); !errors.Is(err, ErrListingFullyClaimed) {
		t.Fatalf("err = %v, want ErrListingFullyClaimed", err)
	}
}

func TestClaimListingRejectsBadQuantity(t *testing.T) {
	db := setupTestDB(t)
	generator := createUser(t, db, "gen@example.com", models.RoleGenerator)
	farmer := createUser(t, db, "farm@example.com", models.RoleFarmer)
	listing := createListing(t, db, generator, "25 kg", 3.14, 101.69)

	svc := NewClaimService(db, nil, nil)
	for _, qty := range []string{"", "abc", "0 kg", "-5 kg"} {
		if _, err := svc.ClaimListing(listing.ID, farmer, qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %q: err = %v, want ErrInvalidQuantity", qty, err)
		}
	}
}

func TestClaimListingRejectsUnitMismatch(t *testing.T) {
	db := setupTestDB(t)
	generator := createUser(t, db, "gen@example.com", models.RoleGenerator)
	farmer := createUser(t, db, "farm@example.com", models.RoleFarmer)
	listing := createListing(t, db, generator, "25 kg", 3.14, 101.69)

	svc := NewClaimService(db, nil, nil)
	if _, err := svc.ClaimListing(listing.ID, farmer, "5 trays"); !errors.Is(err, ErrQuantityUnitMismatch) {
		t.Fatalf("err = %v, want ErrQuantityUnitMismatch", err)
	}
}

func TestClaimListingUnknownListing(t *testing.T) {
	db := setupTestDB(t)
	farmer := createUser(t, db, "farm@example.com", models.RoleFarmer)

	svc := NewClaimService(db, nil, nil)
	if _, err := svc.ClaimListing("00000000-0000-0000-0000-000000000000", farmer, "1 kg"); !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("err = %v, want ErrListingNotFound", err)
	}
}

// Claims keep being accepted until the listing is exhausted, and their sum
// never exceeds the original quantity.
func TestClaimsNeverExceedOriginal(t *testing.T) {
	db := setupTestDB(t)
	generator := createUser(t, db, "gen@example.com", models.RoleGenerator)
	farmer := createUser(t, db, "farm@example.com", models.RoleFarmer)
	listing := createListing(t, db, generator, "25 kg", 3.14, 101.69)

	svc := NewClaimService(db, nil, nil)
	accepted := 0
	for i := 0; i < 10; i++ {
		if _, err := svc.ClaimListing(listing.ID, farmer, "10 kg"); err == nil {
			accepted++
		}
	}
	if accepted != 2 {
		t.Errorf("accepted %d claims of 10 kg against 25 kg, want 2", accepted)
	}

	var got models.Listing
	db.First(&got, "id = ?", listing.ID)
	if got.RemainingQty != "5 kg" {
		t.Errorf("RemainingQty = %q, want %q", got.RemainingQty, "5 kg")
	}
}
