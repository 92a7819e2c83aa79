// Package cli defines the cobra command tree for lokascout.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lokascout/lokascout/internal/db"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lks",
		Short:         "Discover and book Philippine filming locations",
		Long:          "A marketplace tool for Philippine filming and photography locations. Browse the catalog, manage listings and images, book shoot dates, and run the JSON API server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.config/lks/lokascout.db)")

	root.AddCommand(
		newServeCmd(),
		newListCmd(),
		newShowCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newBookCmd(),
		newBookingsCmd(),
		newBookingStatusCmd("confirm", "Confirm a pending booking", "confirmed"),
		newBookingStatusCmd("cancel", "Cancel a booking", "cancelled"),
		newBookingStatusCmd("complete", "Mark a confirmed booking completed", "completed"),
		newSaveCmd(),
		newUnsaveCmd(),
		newSavedCmd(),
		newScoutCmd(),
		newExportCmd(),
		newSeedCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using the --db flag, config, or
// default path.
func openDB() (*sql.DB, error) {
	path := flagDB
	if path == "" {
		path = getDatabasePath()
	}
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
