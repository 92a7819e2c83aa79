package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lokascout/lokascout/internal/booking"
	"github.com/lokascout/lokascout/internal/catalog"
	"github.com/lokascout/lokascout/internal/property"
	"github.com/lokascout/lokascout/internal/user"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPropertyPage prints one page of the catalog as a table with a
// pagination footer.
func printPropertyPage(page catalog.Page[*property.Property]) error {
	if page.TotalItems == 0 {
		fmt.Println("No locations found.")
		return nil
	}

	if err := printPropertyTable(page.Items); err != nil {
		return err
	}

	fmt.Printf("\nPage %d of %d (%d locations)\n", page.Page, page.TotalPages, page.TotalItems)
	return nil
}

// printPropertyTable prints listings as a formatted table.
func printPropertyTable(props []*property.Property) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tLOCATION\tCATEGORY\tPRICE/DAY\tRATING\tBOOKINGS\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t--------\t--------\t---------\t------\t--------\t------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range props {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			p.ID, truncate(p.Name, 32), truncate(p.Location, 24), p.Category,
			p.DisplayPrice(), formatRating(p.Rating), p.Bookings, p.Status); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}

// printPropertyDetail prints a single listing with its images.
func printPropertyDetail(p *property.Property, images []*property.Image) {
	fmt.Printf("Location #%d\n", p.ID)
	fmt.Printf("  Name:      %s\n", p.Name)
	fmt.Printf("  Location:  %s\n", p.Location)
	fmt.Printf("  Category:  %s\n", p.Category)
	fmt.Printf("  Status:    %s\n", p.Status)
	fmt.Printf("  Price/day: %s\n", p.DisplayPrice())
	fmt.Printf("  Rating:    %s\n", formatRating(p.Rating))
	fmt.Printf("  Bookings:  %d\n", p.Bookings)
	fmt.Printf("  Views:     %d\n", p.Views)
	fmt.Printf("  Revenue:   %s\n", property.FormatPrice(p.Revenue))
	if p.Description != "" {
		fmt.Printf("  About:     %s\n", p.Description)
	}
	if len(p.Tags) > 0 {
		fmt.Printf("  Tags:      %s\n", strings.Join(p.Tags, ", "))
	}
	if len(p.Features) > 0 {
		fmt.Printf("  Features:  %s\n", strings.Join(p.Features, ", "))
	}
	if len(p.Amenities) > 0 {
		fmt.Printf("  Amenities: %s\n", strings.Join(p.Amenities, ", "))
	}

	if len(images) == 0 {
		fmt.Println("  Images:    none")
		return
	}
	fmt.Println("  Images:")
	for _, img := range images {
		marker := " "
		if img.IsPrimary {
			marker = "*"
		}
		fmt.Printf("  %s #%d %s", marker, img.ID, img.URL)
		if img.Title != "" {
			fmt.Printf(" (%s)", img.Title)
		}
		fmt.Println()
	}
}

// printBookingTable prints bookings as a formatted table.
func printBookingTable(bookings []*booking.Booking) error {
	if len(bookings) == 0 {
		fmt.Println("No bookings found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tPROPERTY\tUSER\tSTART\tEND\tSTATUS\tTOTAL"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t--------\t----\t-----\t---\t------\t-----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, b := range bookings {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%s\t%s\n",
			b.ID, b.PropertyID, b.UserID, b.StartDate, b.EndDate, b.Status,
			property.FormatPrice(b.Total)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d bookings\n", len(bookings))
	return nil
}

// printScoutDetail prints a scout profile header.
func printScoutDetail(u *user.User) {
	fmt.Printf("Scout #%d\n", u.ID)
	fmt.Printf("  Name:   %s\n", u.Name)
	fmt.Printf("  Email:  %s\n", u.Email)
	if u.Region != "" {
		fmt.Printf("  Region: %s\n", u.Region)
	}
	if u.Bio != "" {
		fmt.Printf("  Bio:    %s\n", u.Bio)
	}
}

// formatRating renders a 0-5 rating like "4.8★".
func formatRating(rating float64) string {
	return fmt.Sprintf("%.1f★", rating)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
