// Package catalog implements the discovery query engine: filtering,
// sorting, and pagination over an in-memory slice of the property catalog.
// All operations are pure and total; malformed inputs fall back to
// defined defaults instead of returning errors.
package catalog

import (
	"strings"
	"time"

	"github.com/lokascout/lokascout/internal/property"
)

// Bucket is a named range used to coarsely classify a numeric field.
type Bucket string

const (
	BucketAll    Bucket = "all"
	BucketHigh   Bucket = "high"
	BucketMedium Bucket = "medium"
	BucketLow    Bucket = "low"
)

// Rating and booking-count thresholds shared by the buckets and the
// quick filters.
const (
	ratingHigh   = 4.5
	ratingMedium = 3.5

	bookingsHigh   = 100
	bookingsMedium = 50

	attentionRating   = 4.0
	attentionBookings = 50

	recentWindow = 7 * 24 * time.Hour
)

// FilterSpec describes one catalog query. The zero value matches
// everything. Every set field narrows the result; a property must satisfy
// all of them to be included.
type FilterSpec struct {
	// Search matches as a case-insensitive substring of the name,
	// location, or any tag.
	Search string

	// Category and Status are exact matches; "" or "all" means no
	// constraint.
	Category string
	Status   string

	// Inclusive price bounds in pesos; nil means unbounded on that side.
	PriceMin *int64
	PriceMax *int64

	// Coarse range filters. Unknown bucket values behave as BucketAll.
	RatingBucket   Bucket
	BookingsBucket Bucket

	// Tags must each match as a case-insensitive substring of at least
	// one of the property's tags. Empty means no tag constraint.
	Tags []string

	// Quick filters: independent switches, each narrows further.
	HighPerforming bool
	NeedsAttention bool
	RecentlyAdded  bool

	// Now anchors the RecentlyAdded window. The zero value means
	// time.Now at match time.
	Now time.Time
}

// Filter returns the subset of props matching spec, preserving input order.
func Filter(props []*property.Property, spec FilterSpec) []*property.Property {
	var out []*property.Property
	for _, p := range props {
		if spec.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether a single property satisfies every active clause
// of the spec.
func (s FilterSpec) Match(p *property.Property) bool {
	if !matchSearch(p, s.Search) {
		return false
	}
	if s.Category != "" && s.Category != "all" && string(p.Category) != s.Category {
		return false
	}
	if s.Status != "" && s.Status != "all" && string(p.Status) != s.Status {
		return false
	}
	if s.PriceMin != nil && p.Price < *s.PriceMin {
		return false
	}
	if s.PriceMax != nil && p.Price > *s.PriceMax {
		return false
	}
	if !matchRatingBucket(p.Rating, s.RatingBucket) {
		return false
	}
	if !matchBookingsBucket(p.Bookings, s.BookingsBucket) {
		return false
	}
	if !matchTags(p.Tags, s.Tags) {
		return false
	}
	if s.HighPerforming && !(p.Rating >= ratingHigh && p.Bookings >= bookingsHigh) {
		return false
	}
	if s.NeedsAttention && (p.Rating >= attentionRating && p.Bookings >= attentionBookings) {
		return false
	}
	if s.RecentlyAdded {
		now := s.Now
		if now.IsZero() {
			now = time.Now()
		}
		if now.Sub(p.UpdatedAt) > recentWindow {
			return false
		}
	}
	return true
}

func matchSearch(p *property.Property, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Location), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// matchTags requires every selected filter tag to be found as a substring
// of at least one property tag. "all must match", not "any".
func matchTags(propTags, filterTags []string) bool {
	for _, ft := range filterTags {
		ft = strings.ToLower(ft)
		found := false
		for _, pt := range propTags {
			if strings.Contains(strings.ToLower(pt), ft) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchRatingBucket(rating float64, b Bucket) bool {
	switch b {
	case BucketHigh:
		return rating >= ratingHigh
	case BucketMedium:
		return rating >= ratingMedium && rating < ratingHigh
	case BucketLow:
		return rating < ratingMedium
	}
	return true
}

func matchBookingsBucket(bookings int64, b Bucket) bool {
	switch b {
	case BucketHigh:
		return bookings >= bookingsHigh
	case BucketMedium:
		return bookings >= bookingsMedium && bookings < bookingsHigh
	case BucketLow:
		return bookings < bookingsMedium
	}
	return true
}
