package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lokascout/lokascout/internal/db"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample dataset",
		Long:  "Load the bundled sample locations, scouts, and users. A no-op if the catalog already has data.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
}

func runSeed() error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	if err := db.Seed(database); err != nil {
		return err
	}

	fmt.Println("Sample dataset loaded.")
	return nil
}
