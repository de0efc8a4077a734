package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Re-seed the catalog",
	Long: `Discard all local catalog changes and restore the catalog from the
seed URL. Favorites, the compare list and preferences are kept.`,
	Run: runReset,
}

var resetForce bool

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) {
	if !resetForce {
		fmt.Print("This discards all local catalog changes. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("Aborted")
			return
		}
	}

	ctx := context.Background()
	c := initContext()
	defer c.Close()

	if err := c.Catalog.ResetToSeed(); err != nil {
		exitError("failed to reset catalog: %v", err)
	}
	if err := c.Catalog.Load(ctx); err != nil {
		exitError("failed to re-seed catalog: %v", err)
	}

	fmt.Printf("Catalog re-seeded with %d cars\n", c.Catalog.Len())
}
