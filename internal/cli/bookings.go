package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lokascout/lokascout/internal/booking"
	"github.com/lokascout/lokascout/internal/property"
)

func newBookingsCmd() *cobra.Command {
	var (
		propertyID int64
		userID     int64
		status     string
	)

	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := booking.ListOptions{}
			if propertyID > 0 {
				opts.PropertyID = &propertyID
			}
			if userID > 0 {
				opts.UserID = &userID
			}
			if status != "" {
				st := booking.Status(status)
				if !st.IsValid() {
					return fmt.Errorf("invalid status: %q", status)
				}
				opts.Status = st
			}
			return runBookings(opts)
		},
	}

	cmd.Flags().Int64Var(&propertyID, "property", 0, "filter by property id")
	cmd.Flags().Int64Var(&userID, "user", 0, "filter by user id")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending|confirmed|completed|cancelled)")

	return cmd
}

func runBookings(opts booking.ListOptions) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	bookings, err := booking.NewRepository(database).List(opts)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(bookings)
	}

	return printBookingTable(bookings)
}

// newBookingStatusCmd builds the confirm/cancel/complete commands, which
// differ only in the target status.
func newBookingStatusCmd(use, short string, target booking.Status) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <booking-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid booking id: %q", args[0])
			}
			return runBookingStatus(id, target)
		},
	}
}

func runBookingStatus(id int64, target booking.Status) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	b, err := booking.NewRepository(database).UpdateStatus(id, target)
	if err != nil {
		return err
	}

	// Confirmation counts against the property's totals.
	if target == booking.StatusConfirmed {
		if err := property.NewRepository(database).RecordBooking(b.PropertyID, b.Total); err != nil {
			return err
		}
	}

	if isJSON() {
		return printJSON(b)
	}

	fmt.Printf("Booking #%d is now %s.\n", b.ID, b.Status)
	return nil
}
