package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lokascout/lokascout/internal/property"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a location's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid location id: %q", args[0])
			}
			return runShow(id)
		},
	}
}

func runShow(id int64) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	repo := property.NewRepository(database)
	p, err := repo.GetByID(id)
	if err != nil {
		return err
	}

	images, err := repo.ListImages(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"property": p, "images": images})
	}

	printPropertyDetail(p, images)
	return nil
}
