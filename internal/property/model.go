// Package property provides the location listing domain model and data access.
package property

import (
	"errors"
	"time"
)

// ErrNotFound is returned by lookups for ids that don't exist in the catalog.
var ErrNotFound = errors.New("property not found")

// Category classifies a filming location.
type Category string

const (
	CategoryBeach      Category = "Beach"
	CategoryMountain   Category = "Mountain"
	CategoryUrban      Category = "Urban"
	CategoryNature     Category = "Nature"
	CategoryHistorical Category = "Historical"
	CategoryHeritage   Category = "Heritage"
	CategoryIsland     Category = "Island"
)

// ValidCategories is the set of allowed location categories.
var ValidCategories = []Category{
	CategoryBeach, CategoryMountain, CategoryUrban, CategoryNature,
	CategoryHistorical, CategoryHeritage, CategoryIsland,
}

// IsValid checks if a category is recognized.
func (c Category) IsValid() bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Status represents where a listing is in its publication lifecycle.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// ValidStatus returns true if s is a known listing status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// Property represents a bookable filming or photography location.
type Property struct {
	ID          int64     `json:"id"`
	ScoutID     int64     `json:"scout_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Price       int64     `json:"price"` // whole pesos per shoot day
	Status      Status    `json:"status"`
	Bookings    int64     `json:"bookings"`
	Rating      float64   `json:"rating"`
	Views       int64     `json:"views"`
	Revenue     int64     `json:"revenue"` // whole pesos
	Tags        []string  `json:"tags"`
	Features    []string  `json:"features"`
	Amenities   []string  `json:"amenities"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DisplayPrice renders the per-day price for presentation, e.g. "₱5,000".
func (p *Property) DisplayPrice() string {
	return FormatPrice(p.Price)
}

// Image represents a photo attached to a property listing.
// At most one image per property carries IsPrimary; SetPrimaryImage
// enforces this when flipping the flag.
type Image struct {
	ID          int64     `json:"id"`
	PropertyID  int64     `json:"property_id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AltText     string    `json:"alt_text"`
	Tags        []string  `json:"tags"`
	IsPrimary   bool      `json:"is_primary"`
	SortOrder   int64     `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}
