package models

import "time"

// Claim is a farmer's commitment against a listing. A claim doubles as the
// order a rating later refers to; RatingID is set exactly once when that
// rating is submitted. Claims are immutable apart from that back-link.
type Claim struct {
    ID             string `gorm:"type:uuid;primaryKey" json:"id"`
    ListingID      string `gorm:"type:uuid;index;not null" json:"listing_id"`
    ClaimerID      uint   `gorm:"index;not null" json:"claimer_id"`
    ClaimerName    string `json:"claimer_name"`
    ClaimerContact string `json:"claimer_contact"`
    Quantity       string `json:"quantity"`
    RatingID       string `gorm:"type:uuid;default:''" json:"rating_id,omitempty"`

    CreatedAt time.Time `json:"created_at"`
}
