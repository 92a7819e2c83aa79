package user

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Repository provides CRUD operations for users and their saved
// properties.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a user repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, name, email, role, region, bio, created_at`

// Insert adds a new user and returns it with its generated ID.
func (r *Repository) Insert(u *User) (*User, error) {
	if strings.TrimSpace(u.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if !ValidRole(string(u.Role)) {
		return nil, fmt.Errorf("invalid role: %q", u.Role)
	}

	result, err := r.db.Exec(
		"INSERT INTO users (name, email, role, region, bio) VALUES (?, ?, ?, ?, ?)",
		u.Name, u.Email, string(u.Role), u.Region, u.Bio,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns a user by its ID.
// A missing id reports ErrNotFound, checkable with errors.Is.
func (r *Repository) GetByID(id int64) (*User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = ?", selectColumns)
	u, err := scanUser(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying user %d: %w", id, err)
	}
	return u, nil
}

// List returns all users, optionally restricted to one role.
func (r *Repository) List(role Role) ([]*User, error) {
	query := fmt.Sprintf("SELECT %s FROM users", selectColumns)
	var args []interface{}
	if role != "" {
		query += " WHERE role = ?"
		args = append(args, string(role))
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var users []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	return users, nil
}

// SaveProperty bookmarks a property for a user. Saving twice is a no-op;
// the returned bool reports whether a new bookmark was created.
func (r *Repository) SaveProperty(userID, propertyID int64) (bool, error) {
	result, err := r.db.Exec(
		"INSERT OR IGNORE INTO saved_properties (user_id, property_id) VALUES (?, ?)",
		userID, propertyID,
	)
	if err != nil {
		return false, fmt.Errorf("saving property %d for user %d: %w", propertyID, userID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking rows affected: %w", err)
	}
	return affected > 0, nil
}

// UnsaveProperty removes a bookmark. Removing one that doesn't exist is
// a no-op.
func (r *Repository) UnsaveProperty(userID, propertyID int64) error {
	_, err := r.db.Exec(
		"DELETE FROM saved_properties WHERE user_id = ? AND property_id = ?",
		userID, propertyID,
	)
	if err != nil {
		return fmt.Errorf("unsaving property %d for user %d: %w", propertyID, userID, err)
	}
	return nil
}

// SavedPropertyIDs returns the ids of every property the user has
// bookmarked, oldest bookmark first.
func (r *Repository) SavedPropertyIDs(userID int64) ([]int64, error) {
	rows, err := r.db.Query(
		"SELECT property_id FROM saved_properties WHERE user_id = ? ORDER BY created_at, property_id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing saved properties: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning saved property: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating saved properties: %w", err)
	}

	return ids, nil
}

func scanUser(row interface{ Scan(...interface{}) error }) (*User, error) {
	var u User
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &u.Region, &u.Bio, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = Role(role)
	return &u, nil
}
