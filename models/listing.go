package models

import "time"

const (
    ListingStatusActive  = "active"
    ListingStatusClaimed = "claimed"
)

// Listing is a generator's offer of surplus food or waste. Quantities are
// free text in the form "<number> <unit>" ("25 kg", "10 trays"); RemainingQty
// is derived from the claims and never exceeds OriginalQty. Listings are
// never hard-deleted, Status carries the lifecycle.
type Listing struct {
    ID               string  `gorm:"type:uuid;primaryKey" json:"id"`
    GeneratorID      uint    `gorm:"index;not null" json:"generator_id"`
    GeneratorName    string  `json:"generator_name"`
    GeneratorContact string  `json:"generator_contact"`
    Title            string  `gorm:"not null" json:"title"`
    OriginalQty      string  `json:"original_qty"`
    RemainingQty     string  `json:"remaining_qty"`
    Address          string  `json:"address"`
    Latitude         float64 `json:"latitude"`
    Longitude        float64 `json:"longitude"`
    ImageURL         string  `json:"image_url,omitempty"`
    Status           string  `gorm:"index;default:active" json:"status"`

    CreatedAt time.Time `json:"created_at"`

    Claims []Claim `gorm:"foreignKey:ListingID" json:"claims,omitempty"`
}
