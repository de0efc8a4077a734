package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"showroom/internal/kvstore"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a car from the catalog",
	Long: `Remove a car. Favorites and compare entries pointing at the removed
id are kept and simply stop resolving; the id itself is never reused.`,
	Args: cobra.ExactArgs(1),
	Run:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid car id %q", args[0])
	}

	c := initLoadedContext(context.Background())
	defer c.Close()

	car, err := c.Catalog.Get(id)
	if err != nil {
		exitError("%v", err)
	}

	if err := c.Catalog.Remove(id); err != nil {
		if errors.Is(err, kvstore.ErrPersistence) {
			warnPersistence(err)
		} else {
			exitError("%v", err)
		}
	}

	color.New(color.FgGreen).Printf("Removed car %d (%s)\n", id, car.DisplayName())
}
