// Package booking provides the shoot booking domain model and data access.
package booking

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by lookups for booking ids that don't exist.
var ErrNotFound = errors.New("booking not found")

// ErrInvalidTransition is returned when a status change is not allowed
// from the booking's current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents where a booking is in its lifecycle.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatuses is the set of allowed booking statuses.
var ValidStatuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// IsValid checks if a booking status is recognized.
func (s Status) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving from s to
// next. Bookings start pending; a scout confirms or cancels them, and a
// confirmed booking can complete or still be cancelled. Completed and
// cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// Booking represents a reservation of a location for a shoot date range.
type Booking struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	UserID     int64     `json:"user_id"`
	StartDate  string    `json:"start_date"` // YYYY-MM-DD
	EndDate    string    `json:"end_date"`   // YYYY-MM-DD
	Status     Status    `json:"status"`
	Total      int64     `json:"total"` // pesos: shoot days × per-day price
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

const dateLayout = "2006-01-02"

// ShootDays returns the inclusive number of calendar days covered by the
// range, validating the YYYY-MM-DD format and start ≤ end.
func ShootDays(startDate, endDate string) (int64, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date (use YYYY-MM-DD): %w", err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date (use YYYY-MM-DD): %w", err)
	}
	if end.Before(start) {
		return 0, fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}
	return int64(end.Sub(start)/(24*time.Hour)) + 1, nil
}
