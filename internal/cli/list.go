package cli

import (
	"github.com/spf13/cobra"

	"github.com/lokascout/lokascout/internal/catalog"
	"github.com/lokascout/lokascout/internal/property"
)

type listFlags struct {
	search         string
	category       string
	status         string
	minPrice       string
	maxPrice       string
	rating         string
	bookings       string
	tags           []string
	highPerforming bool
	needsAttention bool
	recent         bool
	sortKey        string
	order          string
	page           int
	perPage        int
}

func newListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse the location catalog",
		Long:  "Browse the location catalog with filtering, sorting, and pagination.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(flags)
		},
	}

	cmd.Flags().StringVar(&flags.search, "search", "", "match name, location, or tags")
	cmd.Flags().StringVar(&flags.category, "category", "", "filter by category (Beach, Mountain, Urban, ...)")
	cmd.Flags().StringVar(&flags.status, "status", "", "filter by status (active|inactive|pending)")
	cmd.Flags().StringVar(&flags.minPrice, "min-price", "", "minimum per-day price (plain number or ₱ display string)")
	cmd.Flags().StringVar(&flags.maxPrice, "max-price", "", "maximum per-day price")
	cmd.Flags().StringVar(&flags.rating, "rating", "", "rating bucket (high|medium|low)")
	cmd.Flags().StringVar(&flags.bookings, "bookings", "", "bookings bucket (high|medium|low)")
	cmd.Flags().StringArrayVar(&flags.tags, "tag", nil, "required tag (repeatable; all must match)")
	cmd.Flags().BoolVar(&flags.highPerforming, "high-performing", false, "only high-performing listings")
	cmd.Flags().BoolVar(&flags.needsAttention, "needs-attention", false, "only listings needing attention")
	cmd.Flags().BoolVar(&flags.recent, "recent", false, "only listings updated in the last 7 days")
	cmd.Flags().StringVar(&flags.sortKey, "sort", "", "sort key (name|price|bookings|rating|updated)")
	cmd.Flags().StringVar(&flags.order, "order", "asc", "sort order (asc|desc)")
	cmd.Flags().IntVar(&flags.page, "page", 1, "page number")
	cmd.Flags().IntVar(&flags.perPage, "per-page", 12, "page size")

	return cmd
}

func runList(flags listFlags) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	repo := property.NewRepository(database)
	props, err := repo.List()
	if err != nil {
		return err
	}

	spec := catalog.FilterSpec{
		Search:         flags.search,
		Category:       flags.category,
		Status:         flags.status,
		RatingBucket:   catalog.Bucket(flags.rating),
		BookingsBucket: catalog.Bucket(flags.bookings),
		Tags:           flags.tags,
		HighPerforming: flags.highPerforming,
		NeedsAttention: flags.needsAttention,
		RecentlyAdded:  flags.recent,
	}
	if flags.minPrice != "" {
		min := property.ParsePrice(flags.minPrice)
		spec.PriceMin = &min
	}
	if flags.maxPrice != "" {
		max := property.ParsePrice(flags.maxPrice)
		spec.PriceMax = &max
	}

	filtered := catalog.Filter(props, spec)

	if flags.sortKey != "" {
		order := catalog.Ascending
		if flags.order == "desc" {
			order = catalog.Descending
		}
		catalog.Sort(filtered, catalog.SortKey(flags.sortKey), order)
	}

	page := catalog.Paginate(filtered, flags.perPage, flags.page)

	if isJSON() {
		return printJSON(page)
	}

	return printPropertyPage(page)
}
