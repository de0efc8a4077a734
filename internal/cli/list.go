package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"showroom/internal/view"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cars in the catalog",
	Long: `List the catalog, filtered and sorted.

Filters combine with AND. Flags left unset fall back to the saved
filter preferences; pass --remember to save the criteria you used.

Examples:
  showroom list --type sports --sort price-low
  showroom list --search ferrari
  showroom list --hp 300-500 --price-max 150000`,
	Run: runList,
}

var (
	listSearch   string
	listType     string
	listHP       string
	listPriceMin int
	listPriceMax int
	listSort     string
	listRemember bool
)

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Substring match on brand and model")
	listCmd.Flags().StringVar(&listType, "type", "", `Car type, or "all"`)
	listCmd.Flags().StringVar(&listHP, "hp", "", `Horsepower range "min-max", or "all"`)
	listCmd.Flags().IntVar(&listPriceMin, "price-min", 0, "Minimum price")
	listCmd.Flags().IntVar(&listPriceMax, "price-max", 0, "Maximum price")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort key: default, price-low, price-high, hp-low, hp-high")
	listCmd.Flags().BoolVar(&listRemember, "remember", false, "Save these criteria as the filter preferences")
}

func runList(cmd *cobra.Command, args []string) {
	c := initLoadedContext(context.Background())
	defer c.Close()

	saved, err := c.Prefs.FilterPreferences()
	if err != nil {
		exitError("failed to read filter preferences: %v", err)
	}

	// Flags override the saved preferences field by field.
	if cmd.Flags().Changed("type") {
		saved.Type = listType
	}
	if cmd.Flags().Changed("hp") {
		saved.Horsepower = listHP
	}
	if cmd.Flags().Changed("price-min") {
		saved.PriceMin = listPriceMin
	}
	if cmd.Flags().Changed("price-max") {
		saved.PriceMax = listPriceMax
	}
	if cmd.Flags().Changed("sort") {
		saved.Sort = listSort
	}

	criteria := view.FromPreferences(saved)
	criteria.Search = listSearch

	cars := view.Apply(c.Catalog.All(), criteria)

	if listRemember {
		if err := c.Prefs.SetFilterPreferences(saved); err != nil {
			warnPersistence(err)
		}
	}

	if len(cars) == 0 {
		fmt.Println("No cars match")
		return
	}

	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	for _, car := range cars {
		yellow.Printf("%4d  ", car.ID)
		fmt.Printf("%-28s  %-10s  $%-12s  %4d hp", car.DisplayName(), car.Type, humanize.Comma(int64(car.Price)), car.Horsepower)
		if c.Selection.IsFavorite(car.ID) {
			red.Print("  *fav")
		}
		if c.Selection.InCompare(car.ID) {
			cyan.Print("  [compare]")
		}
		fmt.Println()
	}
	fmt.Printf("\n%d of %d cars\n", len(cars), c.Catalog.Len())
}
