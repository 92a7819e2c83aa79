// Package export provides bulk catalog export destinations.
package export

import (
	"github.com/lokascout/lokascout/internal/property"
)

// Writer is the destination for a bulk catalog export.
type Writer interface {
	// Write stores the listings and returns how many were written.
	Write(props []*property.Property) (int, error)
	Close() error
}
