package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"showroom/internal/compare"
	"showroom/internal/kvstore"
	"showroom/internal/selection"
)

var compareCmd = &cobra.Command{
	Use:   "compare [<id> | table | clear]",
	Short: "Manage and render the comparison table",
	Long: `Toggle a car in the compare list (up to 4 cars), render the
side-by-side comparison table, or clear the list.

Examples:
  showroom compare 3        Toggle car 3
  showroom compare table    Render the comparison
  showroom compare clear    Empty the compare list`,
	Args: cobra.ExactArgs(1),
	Run:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) {
	c := initLoadedContext(context.Background())
	defer c.Close()

	switch args[0] {
	case "table":
		renderCompareTable(c)
	case "clear":
		if err := c.Selection.ClearCompare(); err != nil {
			warnPersistence(err)
		}
		fmt.Println("Compare list cleared")
	default:
		id, err := strconv.Atoi(args[0])
		if err != nil {
			exitError("invalid car id %q", args[0])
		}
		if _, err := c.Catalog.Get(id); err != nil {
			exitError("%v", err)
		}
		added, err := c.Selection.ToggleCompare(id)
		if err != nil {
			if errors.Is(err, kvstore.ErrPersistence) {
				warnPersistence(err)
			} else {
				exitError("%v", err)
			}
		}
		if added {
			color.New(color.FgCyan).Printf("Car %d added to compare list (%d/%d)\n", id, len(c.Selection.CompareSet()), selection.MaxCompare)
		} else {
			fmt.Printf("Car %d removed from compare list\n", id)
		}
	}
}

func renderCompareTable(c *cmdContext) {
	cars := selection.ResolveCars(c.Selection.CompareSet(), c.Catalog.All())

	matrix, err := compare.Build(cars)
	if err != nil {
		exitError("%v", err)
	}

	const col = 22
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)

	fmt.Printf("%-14s", "")
	for _, car := range matrix.Cars {
		bold.Printf("%-*s", col, truncate(car.DisplayName(), col-2))
	}
	fmt.Println()

	for _, row := range matrix.Rows {
		fmt.Printf("%-14s", row.Label)
		for i, v := range row.Values {
			if i == row.BestIndex {
				green.Printf("%-*s", col, v)
			} else {
				fmt.Printf("%-*s", col, v)
			}
		}
		fmt.Println()
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}
