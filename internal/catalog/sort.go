package catalog

import (
	"sort"
	"strings"

	"github.com/lokascout/lokascout/internal/property"
)

// SortKey names a property field results can be ordered by.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByPrice    SortKey = "price"
	SortByBookings SortKey = "bookings"
	SortByRating   SortKey = "rating"
	SortByUpdated  SortKey = "updated"
)

// Order is a sort direction.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// Sort orders props in place by the given key and direction. The sort is
// stable: equal keys keep their prior relative order. An unknown key
// leaves the order unchanged.
func Sort(props []*property.Property, key SortKey, order Order) {
	sort.SliceStable(props, func(i, j int) bool {
		c := compare(props[i], props[j], key)
		if order == Descending {
			c = -c
		}
		return c < 0
	})
}

func compare(a, b *property.Property, key SortKey) int {
	switch key {
	case SortByName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case SortByPrice:
		return compareInt64(a.Price, b.Price)
	case SortByBookings:
		return compareInt64(a.Bookings, b.Bookings)
	case SortByRating:
		switch {
		case a.Rating < b.Rating:
			return -1
		case a.Rating > b.Rating:
			return 1
		}
		return 0
	case SortByUpdated:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
