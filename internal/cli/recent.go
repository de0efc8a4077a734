package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"showroom/internal/selection"
)

var recentCmd = &cobra.Command{
	Use:   "recent [clear]",
	Short: "Show recently viewed cars",
	Long:  `List the last 10 viewed cars, most recent first, or clear the history.`,
	Args:  cobra.MaximumNArgs(1),
	Run:   runRecent,
}

func runRecent(cmd *cobra.Command, args []string) {
	c := initLoadedContext(context.Background())
	defer c.Close()

	if len(args) == 1 {
		if args[0] != "clear" {
			exitError("unknown argument %q", args[0])
		}
		if err := c.Prefs.ClearRecentViews(); err != nil {
			warnPersistence(err)
		}
		fmt.Println("Recent views cleared")
		return
	}

	ids, err := c.Prefs.RecentViews()
	if err != nil {
		exitError("failed to read recent views: %v", err)
	}

	cars := selection.ResolveCars(ids, c.Catalog.All())
	if len(cars) == 0 {
		fmt.Println("No recent views")
		return
	}

	yellow := color.New(color.FgYellow)
	for _, car := range cars {
		yellow.Printf("%4d  ", car.ID)
		fmt.Printf("%s\n", car.DisplayName())
	}
}
