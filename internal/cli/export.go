package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lokascout/lokascout/internal/export"
	"github.com/lokascout/lokascout/internal/property"
)

func newExportCmd() *cobra.Command {
	var out string
	var postgres string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog",
		Long:  "Export the full catalog to a CSV file, optionally mirroring it into a PostgreSQL table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(out, postgres)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "CSV output path (default: a timestamped file in the export dir)")
	cmd.Flags().StringVar(&postgres, "postgres", "", "PostgreSQL connection string to mirror into")

	return cmd
}

func runExport(out, postgres string) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	props, err := property.NewRepository(database).List()
	if err != nil {
		return err
	}

	if out == "" {
		name := fmt.Sprintf("catalog-%s.csv", time.Now().Format("20060102-150405"))
		out = filepath.Join(getExportDir(), name)
	}

	writer := export.NewCSVWriter(out)
	rows, err := writer.Write(props)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d locations to %s\n", rows, out)

	if postgres != "" {
		pg, err := export.NewPostgresWriter(postgres)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := pg.Close(); closeErr != nil {
				fmt.Printf("warning: closing postgres connection: %v\n", closeErr)
			}
		}()

		mirrored, err := pg.Write(props)
		if err != nil {
			return err
		}
		fmt.Printf("Mirrored %d locations to PostgreSQL\n", mirrored)
	}

	return nil
}
