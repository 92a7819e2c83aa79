package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lokascout/lokascout/internal/property"
	"github.com/lokascout/lokascout/internal/user"
)

func newScoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scout <id>",
		Short: "Show a scout's profile and listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid scout id: %q", args[0])
			}
			return runScout(id)
		},
	}
}

func runScout(id int64) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	u, err := user.NewRepository(database).GetByID(id)
	if err != nil {
		return err
	}
	if u.Role != user.RoleScout {
		return fmt.Errorf("user %d is not a scout", id)
	}

	props, err := property.NewRepository(database).ListByScout(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"scout": u, "properties": props})
	}

	printScoutDetail(u)
	fmt.Println()
	if len(props) == 0 {
		fmt.Println("No listings.")
		return nil
	}
	return printPropertyTable(props)
}
