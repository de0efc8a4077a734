package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"showroom/internal/kvstore"
	"showroom/internal/models"
)

var themeCmd = &cobra.Command{
	Use:   "theme [sport | eco | toggle]",
	Short: "Show or change the UI theme",
	Long: `With no argument, print the active theme. Pass "sport" or "eco" to
set it, or "toggle" to switch between the two.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTheme,
}

func runTheme(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	if len(args) == 0 {
		theme, err := c.Prefs.Theme()
		if err != nil {
			exitError("failed to read theme: %v", err)
		}
		fmt.Println(theme)
		return
	}

	switch args[0] {
	case "toggle":
		theme, err := c.Prefs.ToggleTheme()
		if err != nil {
			if !errors.Is(err, kvstore.ErrPersistence) {
				exitError("%v", err)
			}
			warnPersistence(err)
		}
		fmt.Printf("Theme is now %s\n", theme)
	case models.ThemeSport, models.ThemeEco:
		if err := c.Prefs.SetTheme(args[0]); err != nil {
			if !errors.Is(err, kvstore.ErrPersistence) {
				exitError("%v", err)
			}
			warnPersistence(err)
		}
		fmt.Printf("Theme is now %s\n", args[0])
	default:
		exitError("unknown theme %q (use sport or eco)", args[0])
	}
}
