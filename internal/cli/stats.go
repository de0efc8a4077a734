package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"showroom/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long:  `Summarize the catalog: car count, types, brands, price and horsepower ranges.`,
	Run:   runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	c := initLoadedContext(context.Background())
	defer c.Close()

	stats := c.Catalog.Stats()
	bold := color.New(color.Bold)

	bold.Printf("%d cars\n\n", stats.TotalCars)
	printField("Types", strings.Join(stats.Types, ", "))
	printField("Brands", strings.Join(stats.Brands, ", "))
	printField("Price", dollarRange(stats.PriceRange))
	printField("Horsepower", hpRange(stats.HorsepowerRange))

	info, err := c.Prefs.Info(c.Selection)
	if err != nil {
		exitError("failed to read storage info: %v", err)
	}
	fmt.Println()
	printField("Favorites", fmt.Sprintf("%d", info.FavoritesCount))
	printField("Compare", fmt.Sprintf("%d", info.CompareListCount))
	printField("Recent", fmt.Sprintf("%d", info.RecentViewsCount))
	printField("Theme", info.Theme)
}

func dollarRange(r catalog.NumberRange) string {
	return fmt.Sprintf("$%s - $%s (avg $%s)",
		humanize.Comma(int64(r.Min)), humanize.Comma(int64(r.Max)), humanize.Comma(int64(r.Avg)))
}

func hpRange(r catalog.NumberRange) string {
	return fmt.Sprintf("%d - %d hp (avg %.0f)", r.Min, r.Max, r.Avg)
}
