package property

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Repository provides CRUD operations for property listings.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a property repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, scout_id, name, location, category, description, price, status, bookings, rating, views, revenue, tags, features, amenities, created_at, updated_at`

// Insert adds a new listing and returns it with its generated ID.
func (r *Repository) Insert(p *Property) (*Property, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	if p.Status == "" {
		p.Status = StatusPending
	}

	result, err := r.db.Exec(
		`INSERT INTO properties
		(scout_id, name, location, category, description, price, status, bookings, rating, views, revenue, tags, features, amenities)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ScoutID, p.Name, p.Location, string(p.Category), p.Description,
		p.Price, string(p.Status), p.Bookings, p.Rating, p.Views, p.Revenue,
		encodeList(p.Tags), encodeList(p.Features), encodeList(p.Amenities),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting property: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns a listing by its ID.
// A missing id reports ErrNotFound, checkable with errors.Is.
func (r *Repository) GetByID(id int64) (*Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = ?", selectColumns)
	row := r.db.QueryRow(query, id)

	p, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("property %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying property %d: %w", id, err)
	}

	return p, nil
}

// List returns the full catalog ordered by id. Filtering, sorting, and
// pagination happen in memory in the catalog package.
func (r *Repository) List() ([]*Property, error) {
	return r.list("", nil)
}

// ListByScout returns every listing represented by the given scout.
func (r *Repository) ListByScout(scoutID int64) ([]*Property, error) {
	return r.list("WHERE scout_id = ?", []interface{}{scoutID})
}

func (r *Repository) list(where string, args []interface{}) ([]*Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties %s ORDER BY id", selectColumns, where)
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var properties []*Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties: %w", err)
	}

	return properties, nil
}

// UpdateFields holds the optional fields for a partial update.
// Nil fields are left untouched.
type UpdateFields struct {
	ScoutID     *int64
	Name        *string
	Location    *string
	Category    *Category
	Description *string
	Price       *int64
	Status      *Status
	Rating      *float64
	Tags        *[]string
	Features    *[]string
	Amenities   *[]string
}

// Update applies a partial update to a listing and bumps updated_at.
// Updating an id that doesn't exist is a no-op, not an error.
func (r *Repository) Update(id int64, f UpdateFields) error {
	var sets []string
	var args []interface{}

	add := func(col string, v interface{}) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if f.ScoutID != nil {
		add("scout_id", *f.ScoutID)
	}
	if f.Name != nil {
		add("name", *f.Name)
	}
	if f.Location != nil {
		add("location", *f.Location)
	}
	if f.Category != nil {
		if !f.Category.IsValid() {
			return fmt.Errorf("invalid category: %q", *f.Category)
		}
		add("category", string(*f.Category))
	}
	if f.Description != nil {
		add("description", *f.Description)
	}
	if f.Price != nil {
		if *f.Price < 0 {
			return fmt.Errorf("price must be non-negative, got %d", *f.Price)
		}
		add("price", *f.Price)
	}
	if f.Status != nil {
		if !ValidStatus(string(*f.Status)) {
			return fmt.Errorf("invalid status: %q", *f.Status)
		}
		add("status", string(*f.Status))
	}
	if f.Rating != nil {
		if *f.Rating < 0 || *f.Rating > 5 {
			return fmt.Errorf("rating must be 0-5, got %g", *f.Rating)
		}
		add("rating", *f.Rating)
	}
	if f.Tags != nil {
		add("tags", encodeList(*f.Tags))
	}
	if f.Features != nil {
		add("features", encodeList(*f.Features))
	}
	if f.Amenities != nil {
		add("amenities", encodeList(*f.Amenities))
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE properties SET %s WHERE id = ?", strings.Join(sets, ", "))
	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("updating property %d: %w", id, err)
	}

	return nil
}

// Delete removes a listing by ID. Images cascade. Deleting an id that
// doesn't exist is a no-op.
func (r *Repository) Delete(id int64) error {
	if _, err := r.db.Exec("DELETE FROM properties WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting property %d: %w", id, err)
	}
	return nil
}

// IncrementViews bumps the view counter for a listing.
func (r *Repository) IncrementViews(id int64) error {
	if _, err := r.db.Exec("UPDATE properties SET views = views + 1 WHERE id = ?", id); err != nil {
		return fmt.Errorf("incrementing views for property %d: %w", id, err)
	}
	return nil
}

// RecordBooking bumps the booking counter and adds the booking total to
// running revenue. Called when a booking is confirmed.
func (r *Repository) RecordBooking(id, total int64) error {
	_, err := r.db.Exec(
		"UPDATE properties SET bookings = bookings + 1, revenue = revenue + ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		total, id,
	)
	if err != nil {
		return fmt.Errorf("recording booking for property %d: %w", id, err)
	}
	return nil
}

func validate(p *Property) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !p.Category.IsValid() {
		return fmt.Errorf("invalid category: %q", p.Category)
	}
	if p.Status != "" && !ValidStatus(string(p.Status)) {
		return fmt.Errorf("invalid status: %q", p.Status)
	}
	if p.Price < 0 {
		return fmt.Errorf("price must be non-negative, got %d", p.Price)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("rating must be 0-5, got %g", p.Rating)
	}
	return nil
}

// scanProperty scans a listing from a database row.
func scanProperty(row interface{ Scan(...interface{}) error }) (*Property, error) {
	var p Property
	var category, status, tags, features, amenities string

	err := row.Scan(
		&p.ID, &p.ScoutID, &p.Name, &p.Location, &category, &p.Description,
		&p.Price, &status, &p.Bookings, &p.Rating, &p.Views, &p.Revenue,
		&tags, &features, &amenities, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Category = Category(category)
	p.Status = Status(status)
	p.Tags = decodeList(tags)
	p.Features = decodeList(features)
	p.Amenities = decodeList(amenities)

	return &p, nil
}

// encodeList stores a string slice as a JSON text column.
func encodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}
