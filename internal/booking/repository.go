package booking

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Repository provides CRUD operations for bookings.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a booking repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, property_id, user_id, start_date, end_date, status, total, created_at, updated_at`

// Create records a new pending booking. The total is computed here as
// shoot days times the per-day price the caller looked up.
func (r *Repository) Create(propertyID, userID int64, startDate, endDate string, pricePerDay int64) (*Booking, error) {
	days, err := ShootDays(startDate, endDate)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(
		`INSERT INTO bookings (property_id, user_id, start_date, end_date, status, total)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		propertyID, userID, startDate, endDate, string(StatusPending), days*pricePerDay,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns a booking by its ID.
func (r *Repository) GetByID(id int64) (*Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM bookings WHERE id = ?", selectColumns)
	b, err := scanBooking(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying booking %d: %w", id, err)
	}
	return b, nil
}

// ListOptions controls filtering for List. Nil/empty fields apply no
// constraint.
type ListOptions struct {
	PropertyID *int64
	UserID     *int64
	Status     Status
}

// List returns bookings matching the options, newest first.
func (r *Repository) List(opts ListOptions) ([]*Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM bookings", selectColumns)
	var args []interface{}
	var conditions []string

	if opts.PropertyID != nil {
		conditions = append(conditions, "property_id = ?")
		args = append(args, *opts.PropertyID)
	}
	if opts.UserID != nil {
		conditions = append(conditions, "user_id = ?")
		args = append(args, *opts.UserID)
	}
	if opts.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opts.Status))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_date DESC, id DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookings: %w", err)
	}

	return bookings, nil
}

// UpdateStatus moves a booking to the next lifecycle status. Disallowed
// transitions report ErrInvalidTransition; a missing id reports
// ErrNotFound. Returns the updated booking.
func (r *Repository) UpdateStatus(id int64, next Status) (*Booking, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("invalid booking status: %q", next)
	}

	current, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("booking %d: %s -> %s: %w", id, current.Status, next, ErrInvalidTransition)
	}

	_, err = r.db.Exec(
		"UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		string(next), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating booking %d: %w", id, err)
	}

	return r.GetByID(id)
}

func scanBooking(row interface{ Scan(...interface{}) error }) (*Booking, error) {
	var b Booking
	var status string
	err := row.Scan(
		&b.ID, &b.PropertyID, &b.UserID, &b.StartDate, &b.EndDate,
		&status, &b.Total, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Status = Status(status)
	return &b, nil
}
