package export

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/lokascout/lokascout/internal/property"
)

// PostgresWriter mirrors the catalog into a PostgreSQL table, for teams
// that report against a warehouse instead of the app's SQLite file.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter connects to PostgreSQL, pings it, and ensures the
// export table exists.
func NewPostgresWriter(connStr string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("pinging postgres: %w (also failed to close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	w := &PostgresWriter{db: db}
	if err := w.ensureTable(); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close: %v)", err, closeErr)
		}
		return nil, err
	}

	return w, nil
}

func (w *PostgresWriter) ensureTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS catalog_export (
		id          BIGINT PRIMARY KEY,
		scout_id    BIGINT       NOT NULL,
		name        TEXT         NOT NULL,
		location    TEXT,
		category    VARCHAR(50)  NOT NULL,
		status      VARCHAR(20)  NOT NULL,
		price       BIGINT       NOT NULL DEFAULT 0,
		bookings    BIGINT       NOT NULL DEFAULT 0,
		rating      NUMERIC(3,1) NOT NULL DEFAULT 0,
		views       BIGINT       NOT NULL DEFAULT 0,
		revenue     BIGINT       NOT NULL DEFAULT 0,
		tags        TEXT,
		updated_at  TIMESTAMP    NOT NULL,
		exported_at TIMESTAMP    NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_catalog_export_category ON catalog_export (category);
	CREATE INDEX IF NOT EXISTS idx_catalog_export_rating   ON catalog_export (rating);
	`
	if _, err := w.db.Exec(query); err != nil {
		return fmt.Errorf("creating export table: %w", err)
	}
	return nil
}

// Write upserts all listings in a single transaction.
func (w *PostgresWriter) Write(props []*property.Property) (int, error) {
	if len(props) == 0 {
		return 0, nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO catalog_export (id, scout_id, name, location, category, status, price, bookings, rating, views, revenue, tags, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			scout_id = EXCLUDED.scout_id,
			name = EXCLUDED.name,
			location = EXCLUDED.location,
			category = EXCLUDED.category,
			status = EXCLUDED.status,
			price = EXCLUDED.price,
			bookings = EXCLUDED.bookings,
			rating = EXCLUDED.rating,
			views = EXCLUDED.views,
			revenue = EXCLUDED.revenue,
			tags = EXCLUDED.tags,
			updated_at = EXCLUDED.updated_at,
			exported_at = NOW()
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing statement: %w", err)
	}
	defer func() {
		if closeErr := stmt.Close(); closeErr != nil {
			slog.Warn("closing statement", "error", closeErr)
		}
	}()

	written := 0
	for _, p := range props {
		_, err = stmt.Exec(
			p.ID, p.ScoutID, p.Name, p.Location, string(p.Category), string(p.Status),
			p.Price, p.Bookings, p.Rating, p.Views, p.Revenue,
			strings.Join(p.Tags, ";"), p.UpdatedAt,
		)
		if err != nil {
			slog.Warn("skipping export row", "property", p.Name, "error", err)
			err = nil
			continue
		}
		written++
	}

	if err = tx.Commit(); err != nil {
		return written, fmt.Errorf("committing transaction: %w", err)
	}

	slog.Info("catalog mirrored to postgres", "rows", written, "total", len(props))
	return written, nil
}

// Close closes the database connection.
func (w *PostgresWriter) Close() error {
	return w.db.Close()
}
