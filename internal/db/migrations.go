package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT    NOT NULL,
		email      TEXT    NOT NULL UNIQUE,
		role       TEXT    NOT NULL DEFAULT 'user',
		region     TEXT    NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		scout_id    INTEGER NOT NULL DEFAULT 0,
		name        TEXT    NOT NULL,
		location    TEXT    NOT NULL DEFAULT '',
		category    TEXT    NOT NULL,
		description TEXT    NOT NULL DEFAULT '',
		price       INTEGER NOT NULL DEFAULT 0 CHECK (price >= 0),
		status      TEXT    NOT NULL DEFAULT 'pending',
		bookings    INTEGER NOT NULL DEFAULT 0 CHECK (bookings >= 0),
		rating      REAL    NOT NULL DEFAULT 0 CHECK (rating >= 0 AND rating <= 5),
		views       INTEGER NOT NULL DEFAULT 0,
		tags        TEXT    NOT NULL DEFAULT '[]',
		features    TEXT    NOT NULL DEFAULT '[]',
		amenities   TEXT    NOT NULL DEFAULT '[]',
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS property_images (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		url         TEXT    NOT NULL,
		title       TEXT    NOT NULL DEFAULT '',
		description TEXT    NOT NULL DEFAULT '',
		alt_text    TEXT    NOT NULL DEFAULT '',
		tags        TEXT    NOT NULL DEFAULT '[]',
		is_primary  INTEGER NOT NULL DEFAULT 0,
		sort_order  INTEGER NOT NULL DEFAULT 0,
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		user_id     INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		start_date  TEXT    NOT NULL,
		end_date    TEXT    NOT NULL,
		status      TEXT    NOT NULL DEFAULT 'pending',
		total       INTEGER NOT NULL DEFAULT 0,
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS saved_properties (
		user_id     INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, property_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_scout ON properties(scout_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_property ON bookings(property_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings(user_id)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	// Column additions (idempotent — checks if column exists first)
	columnMigrations := []struct {
		table, column, definition string
	}{
		{"users", "bio", "TEXT NOT NULL DEFAULT ''"},
		{"properties", "revenue", "INTEGER NOT NULL DEFAULT 0"},
	}

	for _, cm := range columnMigrations {
		if err := addColumnIfNotExists(db, cm.table, cm.column, cm.definition); err != nil {
			return fmt.Errorf("adding %s.%s: %w", cm.table, cm.column, err)
		}
	}

	return nil
}

// addColumnIfNotExists adds a column to a table if it doesn't already exist.
func addColumnIfNotExists(db *sql.DB, table, column, definition string) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return fmt.Errorf("checking table info: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			fmt.Printf("warning: closing rows: %v\n", cerr)
		}
	}()

	for rows.Next() {
		var cid int
		var name, colType string
		var notNull, pk int
		var dfltValue interface{}
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return fmt.Errorf("scanning column info: %w", err)
		}
		if name == column {
			return nil // column already exists
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating columns: %w", err)
	}

	_, err = db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition))
	return err
}
