package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"showroom/internal/catalog"
	"showroom/internal/config"
	"showroom/internal/kvstore"
	"showroom/internal/seed"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new showroom profile",
	Long: `Initialize a new showroom profile in the current directory.
This creates a .showroom directory holding the configuration and the
local database, and seeds the catalog from the configured URL.`,
	Run: runInit,
}

var (
	initSeedURL string
	initDriver  string
)

func init() {
	initCmd.Flags().StringVar(&initSeedURL, "seed-url", "http://localhost:8000/data/cars.json", "URL of the seed catalog JSON")
	initCmd.Flags().StringVar(&initDriver, "driver", string(kvstore.DriverBolt), "Storage driver (bolt or sqlite)")
}

func runInit(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	// Check if already initialized
	if _, err := config.FindRoot(); err == nil {
		exitError("showroom profile already exists")
	}

	fmt.Printf("Initializing showroom profile...\n")
	fmt.Printf("Seed URL: %s\n", initSeedURL)

	cfg, err := config.Initialize(initSeedURL, initDriver)
	if err != nil {
		exitError("failed to initialize config: %v", err)
	}

	kv, err := kvstore.Open(kvstore.Driver(cfg.Driver), cfg.DatabasePath())
	if err != nil {
		exitError("failed to open store: %v", err)
	}
	defer kv.Close()

	cat := catalog.New(kv, seed.NewClient(cfg.SeedURL))
	if err := cat.Load(ctx); err != nil {
		if errors.Is(err, kvstore.ErrPersistence) {
			warnPersistence(err)
		} else {
			fmt.Printf("Warning: could not seed the catalog: %v\n", err)
			fmt.Printf("The catalog will be seeded on first use.\n")
		}
	}

	fmt.Printf("Initialized showroom profile in %s\n", cfg.ProfilePath())
	if n := cat.Len(); n > 0 {
		fmt.Printf("Catalog seeded with %d cars\n", n)
	}
}
