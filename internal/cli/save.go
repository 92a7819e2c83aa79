package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lokascout/lokascout/internal/property"
	"github.com/lokascout/lokascout/internal/user"
)

func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <user-id> <property-id>",
		Short: "Bookmark a location for a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, propertyID, err := parseSaveArgs(args)
			if err != nil {
				return err
			}
			return runSave(userID, propertyID)
		},
	}
}

func newUnsaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unsave <user-id> <property-id>",
		Short: "Remove a user's bookmark",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, propertyID, err := parseSaveArgs(args)
			if err != nil {
				return err
			}
			return runUnsave(userID, propertyID)
		},
	}
}

func newSavedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saved <user-id>",
		Short: "List a user's bookmarked locations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id: %q", args[0])
			}
			return runSaved(userID)
		},
	}
}

func parseSaveArgs(args []string) (int64, int64, error) {
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid user id: %q", args[0])
	}
	propertyID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid property id: %q", args[1])
	}
	return userID, propertyID, nil
}

func runSave(userID, propertyID int64) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	if _, err := property.NewRepository(database).GetByID(propertyID); err != nil {
		return err
	}

	created, err := user.NewRepository(database).SaveProperty(userID, propertyID)
	if err != nil {
		return err
	}

	if created {
		fmt.Printf("Location #%d saved for user #%d.\n", propertyID, userID)
	} else {
		fmt.Printf("Location #%d was already saved for user #%d.\n", propertyID, userID)
	}
	return nil
}

func runUnsave(userID, propertyID int64) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	if err := user.NewRepository(database).UnsaveProperty(userID, propertyID); err != nil {
		return err
	}

	fmt.Printf("Location #%d unsaved for user #%d.\n", propertyID, userID)
	return nil
}

func runSaved(userID int64) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	ids, err := user.NewRepository(database).SavedPropertyIDs(userID)
	if err != nil {
		return err
	}

	repo := property.NewRepository(database)
	var saved []*property.Property
	for _, id := range ids {
		p, err := repo.GetByID(id)
		if err != nil {
			continue // listing deleted since it was saved
		}
		saved = append(saved, p)
	}

	if isJSON() {
		return printJSON(saved)
	}

	if len(saved) == 0 {
		fmt.Println("No saved locations.")
		return nil
	}
	return printPropertyTable(saved)
}
