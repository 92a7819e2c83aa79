package cli

import (
	"github.com/spf13/cobra"

	"github.com/lokascout/lokascout/internal/property"
)

func newAddCmd() *cobra.Command {
	var (
		scoutID     int64
		name        string
		location    string
		category    string
		description string
		price       string
		status      string
		tags        []string
		features    []string
		amenities   []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a location listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(&property.Property{
				ScoutID:     scoutID,
				Name:        name,
				Location:    location,
				Category:    property.Category(category),
				Description: description,
				Price:       property.ParsePrice(price),
				Status:      property.Status(status),
				Tags:        tags,
				Features:    features,
				Amenities:   amenities,
			})
		},
	}

	cmd.Flags().Int64Var(&scoutID, "scout", 0, "id of the scout representing this location")
	cmd.Flags().StringVar(&name, "name", "", "listing name (required)")
	cmd.Flags().StringVar(&location, "location", "", "place name, e.g. \"Boracay, Aklan\"")
	cmd.Flags().StringVar(&category, "category", "", "category (Beach, Mountain, Urban, Nature, Historical, Heritage, Island)")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&price, "price", "0", "per-day price (plain number or ₱ display string)")
	cmd.Flags().StringVar(&status, "status", "pending", "status (active|inactive|pending)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringArrayVar(&features, "feature", nil, "feature (repeatable)")
	cmd.Flags().StringArrayVar(&amenities, "amenity", nil, "amenity (repeatable)")

	if err := cmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagRequired("category"); err != nil {
		panic(err)
	}

	return cmd
}

func runAdd(p *property.Property) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	saved, err := property.NewRepository(database).Insert(p)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(saved)
	}

	printPropertyDetail(saved, nil)
	return nil
}
