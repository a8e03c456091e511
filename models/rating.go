package models

import "time"

// Rating is a farmer's feedback on a completed order (claim). The unique
// index on OrderID backs the one-rating-per-order rule.
type Rating struct {
    ID          string `gorm:"type:uuid;primaryKey" json:"id"`
    OrderID     string `gorm:"type:uuid;uniqueIndex;not null" json:"order_id"`
    ListingID   string `gorm:"type:uuid;index" json:"listing_id"`
    GeneratorID uint   `gorm:"index;not null" json:"generator_id"`
    FarmerID    uint   `gorm:"index;not null" json:"farmer_id"`
    Stars       int    `gorm:"not null;check:stars >= 1 AND stars <= 5" json:"stars"`
    Comment     string `json:"comment,omitempty"`

    CreatedAt time.Time `json:"created_at"`
}

func (Rating) TableName() string {
    return "ratings"
}
