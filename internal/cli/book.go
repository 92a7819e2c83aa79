package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lokascout/lokascout/internal/booking"
	"github.com/lokascout/lokascout/internal/property"
)

func newBookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "book <property-id> <user-id> <start-date> <end-date>",
		Short: "Book a location for a shoot date range",
		Long:  "Create a pending booking for a location. Dates are YYYY-MM-DD, inclusive on both ends.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			propertyID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid property id: %q", args[0])
			}
			userID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id: %q", args[1])
			}
			return runBook(propertyID, userID, args[2], args[3])
		},
	}
}

func runBook(propertyID, userID int64, startDate, endDate string) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	p, err := property.NewRepository(database).GetByID(propertyID)
	if err != nil {
		return err
	}

	b, err := booking.NewRepository(database).Create(propertyID, userID, startDate, endDate, p.Price)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(b)
	}

	days, _ := booking.ShootDays(startDate, endDate)
	fmt.Printf("Booking #%d created (pending).\n", b.ID)
	fmt.Printf("  %s, %s to %s (%d days)\n", p.Name, b.StartDate, b.EndDate, days)
	fmt.Printf("  Total: %s\n", property.FormatPrice(b.Total))
	return nil
}
