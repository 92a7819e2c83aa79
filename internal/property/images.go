package property

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrImageNotFound is returned when an image id doesn't exist for the
// property it was addressed through.
var ErrImageNotFound = errors.New("image not found")

const imageColumns = `id, property_id, url, title, description, alt_text, tags, is_primary, sort_order, created_at`

// AddImage attaches an image to a listing. The first image added to a
// property becomes primary automatically.
func (r *Repository) AddImage(propertyID int64, img *Image) (*Image, error) {
	if img.URL == "" {
		return nil, fmt.Errorf("image url is required")
	}
	if _, err := r.GetByID(propertyID); err != nil {
		return nil, err
	}

	existing, err := r.ListImages(propertyID)
	if err != nil {
		return nil, err
	}
	isPrimary := img.IsPrimary || len(existing) == 0

	result, err := r.db.Exec(
		`INSERT INTO property_images (property_id, url, title, description, alt_text, tags, is_primary, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		propertyID, img.URL, img.Title, img.Description, img.AltText,
		encodeList(img.Tags), isPrimary, img.SortOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting image: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	if isPrimary {
		if err := r.SetPrimaryImage(propertyID, id); err != nil {
			return nil, err
		}
	}

	return r.getImage(id)
}

// ListImages returns a listing's images, primary first, then sort order.
func (r *Repository) ListImages(propertyID int64) ([]*Image, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM property_images WHERE property_id = ? ORDER BY is_primary DESC, sort_order, id",
		imageColumns,
	)
	rows, err := r.db.Query(query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var images []*Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating images: %w", err)
	}

	return images, nil
}

// SetPrimaryImage marks one image as the listing's primary and clears the
// flag on every other image of the same property, keeping the
// one-primary-per-property invariant.
func (r *Repository) SetPrimaryImage(propertyID, imageID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.Exec(
		"UPDATE property_images SET is_primary = 1 WHERE id = ? AND property_id = ?",
		imageID, propertyID,
	)
	if err != nil {
		return fmt.Errorf("setting primary image: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("image %d on property %d: %w", imageID, propertyID, ErrImageNotFound)
	}

	_, err = tx.Exec(
		"UPDATE property_images SET is_primary = 0 WHERE property_id = ? AND id != ?",
		propertyID, imageID,
	)
	if err != nil {
		return fmt.Errorf("clearing primary flags: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// DeleteImage removes an image by ID. Deleting an id that doesn't exist
// is a no-op.
func (r *Repository) DeleteImage(imageID int64) error {
	if _, err := r.db.Exec("DELETE FROM property_images WHERE id = ?", imageID); err != nil {
		return fmt.Errorf("deleting image %d: %w", imageID, err)
	}
	return nil
}

func (r *Repository) getImage(id int64) (*Image, error) {
	query := fmt.Sprintf("SELECT %s FROM property_images WHERE id = ?", imageColumns)
	img, err := scanImage(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("image %d: %w", id, ErrImageNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying image %d: %w", id, err)
	}
	return img, nil
}

func scanImage(row interface{ Scan(...interface{}) error }) (*Image, error) {
	var img Image
	var tags string
	err := row.Scan(
		&img.ID, &img.PropertyID, &img.URL, &img.Title, &img.Description,
		&img.AltText, &tags, &img.IsPrimary, &img.SortOrder, &img.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	img.Tags = decodeList(tags)
	return &img, nil
}
