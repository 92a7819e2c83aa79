package catalog

import (
	"testing"
	"time"

	"github.com/lokascout/lokascout/internal/property"
)

func makeProperty(id int64, name string, mutate func(*property.Property)) *property.Property {
	p := &property.Property{
		ID:       id,
		Name:     name,
		Location: "Palawan",
		Category: property.CategoryBeach,
		Status:   property.StatusActive,
		Price:    5000,
		Rating:   4.0,
		Bookings: 60,
	}
	if mutate != nil {
		mutate(p)
	}
	return p
}

func ids(props []*property.Property) []int64 {
	out := make([]int64, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterEmptySpecMatchesAll(t *testing.T) {
	props := []*property.Property{
		makeProperty(1, "Boracay Beach Resort", nil),
		makeProperty(2, "Baguio Mountain View", nil),
		makeProperty(3, "Intramuros Courtyard", nil),
	}

	got := Filter(props, FilterSpec{})
	if !equalIDs(ids(got), []int64{1, 2, 3}) {
		t.Errorf("got ids %v, want all in input order", ids(got))
	}
}

func TestFilterSearch(t *testing.T) {
	props := []*property.Property{
		makeProperty(1, "Boracay Beach Resort", nil),
		makeProperty(2, "Baguio Mountain View", func(p *property.Property) {
			p.Location = "Baguio, Benguet"
		}),
		makeProperty(3, "Old Manila House", func(p *property.Property) {
			p.Tags = []string{"Heritage", "Sunset View"}
		}),
	}

	tests := []struct {
		term string
		want []int64
	}{
		{"boracay", []int64{1}},
		{"BENGUET", []int64{2}},       // location match, case-insensitive
		{"sunset", []int64{3}},        // tag match
		{"view", []int64{2, 3}},       // name and tag
		{"nowhere", nil},
	}
	for _, tt := range tests {
		got := Filter(props, FilterSpec{Search: tt.term})
		if !equalIDs(ids(got), tt.want) {
			t.Errorf("search %q: got %v, want %v", tt.term, ids(got), tt.want)
		}
	}
}

func TestFilterCategoryAndStatus(t *testing.T) {
	props := []*property.Property{
		makeProperty(1, "Beach Spot", nil),
		makeProperty(2, "Mountain Spot", func(p *property.Property) {
			p.Category = property.CategoryMountain
			p.Status = property.StatusPending
		}),
	}

	if got := Filter(props, FilterSpec{Category: "Mountain"}); !equalIDs(ids(got), []int64{2}) {
		t.Errorf("category filter: got %v", ids(got))
	}
	if got := Filter(props, FilterSpec{Status: "active"}); !equalIDs(ids(got), []int64{1}) {
		t.Errorf("status filter: got %v", ids(got))
	}
	// "all" is a no-op sentinel for both
	if got := Filter(props, FilterSpec{Category: "all", Status: "all"}); len(got) != 2 {
		t.Errorf(`"all" sentinel: got %d, want 2`, len(got))
	}
}

func TestFilterPriceBounds(t *testing.T) {
	props := []*property.Property{
		makeProperty(1, "Cheap", func(p *property.Property) { p.Price = 2000 }),
		makeProperty(2, "Mid", func(p *property.Property) { p.Price = 5000 }),
		makeProperty(3, "Dear", func(p *property.Property) { p.Price = 9000 }),
	}
	min := int64(5000)
	max := int64(5000)

	// Bounds are inclusive
	got := Filter(props, FilterSpec{PriceMin: &min, PriceMax: &max})
	if !equalIDs(ids(got), []int64{2}) {
		t.Errorf("got %v, want [2]", ids(got))
	}

	got = Filter(props, FilterSpec{PriceMin: &min})
	if !equalIDs(ids(got), []int64{2, 3}) {
		t.Errorf("min only: got %v, want [2 3]", ids(got))
	}
}

func TestFilterRatingBuckets(t *testing.T) {
	props := []*property.Property{
		makeProperty(1, "High", func(p *property.Property) { p.Rating = 4.5 }),
		makeProperty(2, "Medium", func(p *property.Property) { p.Rating = 3.5 }),
		makeProperty(3, "Low", func(p *property.Property) { p.Rating = 3.4 }),
	}

	tests := []struct {
		bucket Bucket
		want   []int64
	}{
		{BucketHigh, []int64{1}},
		{BucketMedium, []int64{2}},
		{BucketLow, []int64{3}},
		{BucketAll, []int64{1, 2, 3}},
		{Bucket("bogus"), []int64{1, 2, 3}}, // unknown bucket is a no-op
	}
	for _, tt := range tests {
		got := Filter(props, FilterSpec{RatingBucket: tt.bucket})
		if !equalIDs(ids(got), tt.want) {
			t.Errorf("rating bucket %q: got %v, want %v", tt.bucket, ids(got), tt.want)
		}
	}
}

func TestFilterBookingsBuckets(t *testing.T) {
	props := []*property.Property{
		makeProperty(1, "Busy", func(p *property.Property) { p.Bookings = 100 }),
		makeProperty(2, "Steady", func(p *property.Property) { p.Bookings = 50 }),
		makeProperty(3, "Quiet", func(p *property.Property) { p.Bookings = 49 }),
	}

	tests := []struct {
		bucket Bucket
		want   []int64
	}{
		{BucketHigh, []int64{1}},
		{BucketMedium, []int64{2}},
		{BucketLow, []int64{3}},
	}
	for _, tt := range tests {
		got := Filter(props, FilterSpec{BookingsBucket: tt.bucket})
		if !equalIDs(ids(got), tt.want) {
			t.Errorf("bookings bucket %q: got %v, want %v", tt.bucket, ids(got), tt.want)
		}
	}
}

func TestFilterTagsAllMustMatch(t *testing.T) {
	props := []*property.Property{
		makeProperty(1, "Resort", func(p *property.Property) {
			p.Tags = []string{"Beachfront", "Sunset View"}
		}),
		makeProperty(2, "Cove", func(p *property.Property) {
			p.Tags = []string{"Beachfront"}
		}),
	}

	// Both terms must hit, each as a substring of some tag
	got := Filter(props, FilterSpec{Tags: []string{"beach", "sunset"}})
	if !equalIDs(ids(got), []int64{1}) {
		t.Errorf("got %v, want [1]", ids(got))
	}

	got = Filter(props, FilterSpec{Tags: []string{"beach"}})
	if !equalIDs(ids(got), []int64{1, 2}) {
		t.Errorf("got %v, want [1 2]", ids(got))
	}
}

func TestFilterQuickFilters(t *testing.T) {
	props := []*property.Property{
		makeProperty(1, "Star", func(p *property.Property) {
			p.Rating = 4.8
			p.Bookings = 156
		}),
		makeProperty(2, "Healthy", func(p *property.Property) {
			p.Rating = 4.2
			p.Bookings = 60
		}),
		makeProperty(3, "Struggling", func(p *property.Property) {
			p.Rating = 3.0
			p.Bookings = 200
		}),
	}

	got := Filter(props, FilterSpec{HighPerforming: true})
	if !equalIDs(ids(got), []int64{1}) {
		t.Errorf("high performing: got %v, want [1]", ids(got))
	}

	// Needs attention is the complement of (rating >= 4.0 AND bookings >= 50),
	// so a heavily-booked but poorly-rated listing still qualifies.
	got = Filter(props, FilterSpec{NeedsAttention: true})
	if !equalIDs(ids(got), []int64{3}) {
		t.Errorf("needs attention: got %v, want [3]", ids(got))
	}
}

func TestFilterRecentlyAdded(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	props := []*property.Property{
		makeProperty(1, "Fresh", func(p *property.Property) {
			p.UpdatedAt = now.Add(-3 * 24 * time.Hour)
		}),
		makeProperty(2, "Stale", func(p *property.Property) {
			p.UpdatedAt = now.Add(-8 * 24 * time.Hour)
		}),
	}

	got := Filter(props, FilterSpec{RecentlyAdded: true, Now: now})
	if !equalIDs(ids(got), []int64{1}) {
		t.Errorf("got %v, want [1]", ids(got))
	}
}

func TestFilterConjunction(t *testing.T) {
	props := []*property.Property{
		makeProperty(1, "Boracay Beach Resort", func(p *property.Property) {
			p.Rating = 4.8
		}),
		makeProperty(2, "Boracay Budget Hut", func(p *property.Property) {
			p.Rating = 3.0
		}),
		makeProperty(3, "Baguio Beach House", func(p *property.Property) {
			p.Rating = 4.9
			p.Category = property.CategoryMountain
		}),
	}

	got := Filter(props, FilterSpec{
		Search:       "boracay",
		Category:     "Beach",
		RatingBucket: BucketHigh,
	})
	if !equalIDs(ids(got), []int64{1}) {
		t.Errorf("got %v, want [1]", ids(got))
	}
}
