package models

import (
    "gorm.io/gorm"
)

const (
    RoleGenerator = "generator"
    RoleFarmer    = "farmer"
)

// User is both the auth identity and the marketplace profile. Role is empty
// until the one-time role selection and is never changed afterwards.
type User struct {
    gorm.Model
    Email    string `gorm:"uniqueIndex;not null"`
    Password string `gorm:"not null"`
    FullName string
    Contact  string
    Role     string `gorm:"index;default:''"`

    // Home location, set by farmers for radius filtering and by generators
    // as a default pickup address. Nil coordinates mean "not configured".
    HomeLat     *float64
    HomeLng     *float64
    HomeAddress string

    SearchRadiusKm float64 // farmer only

    AvgRating   float64 // generator only, derived
    RatingCount int     // generator only, derived

    Disabled bool
}
