package catalog

import (
	"testing"
	"time"

	"github.com/lokascout/lokascout/internal/property"
)

func TestSortByPrice(t *testing.T) {
	props := []*property.Property{
		makeProperty(1, "Mid", func(p *property.Property) { p.Price = 5000 }),
		makeProperty(2, "Cheap", func(p *property.Property) { p.Price = 2000 }),
		makeProperty(3, "Dear", func(p *property.Property) { p.Price = 9000 }),
	}

	Sort(props, SortByPrice, Ascending)
	if !equalIDs(ids(props), []int64{2, 1, 3}) {
		t.Errorf("asc: got %v", ids(props))
	}

	Sort(props, SortByPrice, Descending)
	if !equalIDs(ids(props), []int64{3, 1, 2}) {
		t.Errorf("desc: got %v", ids(props))
	}
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	props := []*property.Property{
		makeProperty(1, "banaue Terrace", nil),
		makeProperty(2, "Anilao Dive Camp", nil),
		makeProperty(3, "CEBU Loft", nil),
	}

	Sort(props, SortByName, Ascending)
	if !equalIDs(ids(props), []int64{2, 1, 3}) {
		t.Errorf("got %v", ids(props))
	}
}

func TestSortByRatingAndBookings(t *testing.T) {
	props := []*property.Property{
		makeProperty(1, "A", func(p *property.Property) { p.Rating = 3.0; p.Bookings = 200 }),
		makeProperty(2, "B", func(p *property.Property) { p.Rating = 4.8; p.Bookings = 50 }),
	}

	Sort(props, SortByRating, Descending)
	if !equalIDs(ids(props), []int64{2, 1}) {
		t.Errorf("rating desc: got %v", ids(props))
	}

	Sort(props, SortByBookings, Descending)
	if !equalIDs(ids(props), []int64{1, 2}) {
		t.Errorf("bookings desc: got %v", ids(props))
	}
}

func TestSortByUpdated(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	props := []*property.Property{
		makeProperty(1, "Old", func(p *property.Property) { p.UpdatedAt = base }),
		makeProperty(2, "New", func(p *property.Property) { p.UpdatedAt = base.AddDate(0, 1, 0) }),
	}

	Sort(props, SortByUpdated, Descending)
	if !equalIDs(ids(props), []int64{2, 1}) {
		t.Errorf("got %v", ids(props))
	}
}

func TestSortStability(t *testing.T) {
	// Equal keys keep their prior relative order.
	props := []*property.Property{
		makeProperty(1, "First", func(p *property.Property) { p.Price = 5000 }),
		makeProperty(2, "Second", func(p *property.Property) { p.Price = 5000 }),
		makeProperty(3, "Third", func(p *property.Property) { p.Price = 5000 }),
	}

	Sort(props, SortByPrice, Ascending)
	if !equalIDs(ids(props), []int64{1, 2, 3}) {
		t.Errorf("asc ties: got %v", ids(props))
	}

	Sort(props, SortByPrice, Descending)
	if !equalIDs(ids(props), []int64{1, 2, 3}) {
		t.Errorf("desc ties: got %v", ids(props))
	}
}

func TestSortUnknownKeyLeavesOrder(t *testing.T) {
	props := []*property.Property{
		makeProperty(3, "C", nil),
		makeProperty(1, "A", nil),
		makeProperty(2, "B", nil),
	}

	Sort(props, SortKey("popularity"), Ascending)
	if !equalIDs(ids(props), []int64{3, 1, 2}) {
		t.Errorf("got %v, want input order", ids(props))
	}
}
