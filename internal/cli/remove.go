package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lokascout/lokascout/internal/property"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a location listing",
		Long:  "Remove a location listing and its images. Removing an id that doesn't exist is not an error.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid location id: %q", args[0])
			}
			return runRemove(id)
		},
	}
}

func runRemove(id int64) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	if err := property.NewRepository(database).Delete(id); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"id": id, "removed": true})
	}

	fmt.Printf("Location #%d removed.\n", id)
	return nil
}
