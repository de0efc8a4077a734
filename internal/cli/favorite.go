package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"showroom/internal/kvstore"
	"showroom/internal/selection"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite [<id> | list | clear]",
	Short: "Manage favorite cars",
	Long: `Toggle a car in the favorites list, or list and clear the favorites.

Examples:
  showroom favorite 3       Toggle car 3
  showroom favorite list    List favorites
  showroom favorite clear   Clear all favorites`,
	Args: cobra.ExactArgs(1),
	Run:  runFavorite,
}

func runFavorite(cmd *cobra.Command, args []string) {
	c := initLoadedContext(context.Background())
	defer c.Close()

	switch args[0] {
	case "list":
		listFavorites(c)
	case "clear":
		if err := c.Selection.ClearFavorites(); err != nil {
			warnPersistence(err)
		}
		fmt.Println("Favorites cleared")
	default:
		id, err := strconv.Atoi(args[0])
		if err != nil {
			exitError("invalid car id %q", args[0])
		}
		if _, err := c.Catalog.Get(id); err != nil {
			exitError("%v", err)
		}
		added, err := c.Selection.ToggleFavorite(id)
		if err != nil && errors.Is(err, kvstore.ErrPersistence) {
			warnPersistence(err)
		}
		if added {
			color.New(color.FgRed).Printf("Car %d added to favorites\n", id)
		} else {
			fmt.Printf("Car %d removed from favorites\n", id)
		}
	}
}

func listFavorites(c *cmdContext) {
	cars := selection.ResolveCars(c.Selection.Favorites(), c.Catalog.All())
	if len(cars) == 0 {
		fmt.Println("No favorites yet")
		return
	}

	yellow := color.New(color.FgYellow)
	for _, car := range cars {
		yellow.Printf("%4d  ", car.ID)
		fmt.Printf("%s\n", car.DisplayName())
	}
}
