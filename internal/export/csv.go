package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lokascout/lokascout/internal/property"
)

// CSVWriter writes the catalog to a CSV file.
type CSVWriter struct {
	filePath string
}

// NewCSVWriter creates a CSV export writer targeting filePath.
func NewCSVWriter(filePath string) *CSVWriter {
	return &CSVWriter{filePath: filePath}
}

// Path returns the target file path.
func (w *CSVWriter) Path() string {
	return w.filePath
}

// Write writes all listings to the CSV file, creating parent directories
// as needed.
func (w *CSVWriter) Write(props []*property.Property) (int, error) {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating export directory: %w", err)
	}

	file, err := os.Create(w.filePath)
	if err != nil {
		return 0, fmt.Errorf("creating CSV file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("closing export file", "path", w.filePath, "error", closeErr)
		}
	}()

	cw := csv.NewWriter(file)

	header := []string{
		"id", "scout_id", "name", "location", "category", "status",
		"price", "bookings", "rating", "views", "revenue", "tags", "updated_at",
	}
	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("writing CSV header: %w", err)
	}

	written := 0
	for _, p := range props {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.ScoutID, 10),
			p.Name,
			p.Location,
			string(p.Category),
			string(p.Status),
			property.FormatPrice(p.Price),
			strconv.FormatInt(p.Bookings, 10),
			strconv.FormatFloat(p.Rating, 'f', 1, 64),
			strconv.FormatInt(p.Views, 10),
			property.FormatPrice(p.Revenue),
			strings.Join(p.Tags, ";"),
			p.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return written, fmt.Errorf("writing CSV row for %q: %w", p.Name, err)
		}
		written++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return written, fmt.Errorf("flushing CSV: %w", err)
	}

	slog.Info("catalog exported to CSV", "path", w.filePath, "rows", written)
	return written, nil
}

// Close is a no-op; the file handle is scoped to Write.
func (w *CSVWriter) Close() error {
	return nil
}
