// Package cli implements the command-line interface for showroom.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"showroom/internal/catalog"
	"showroom/internal/config"
	"showroom/internal/kvstore"
	"showroom/internal/prefs"
	"showroom/internal/seed"
	"showroom/internal/selection"
)

// cmdContext holds common resources for CLI commands
type cmdContext struct {
	Config    *config.Config
	KV        kvstore.KV
	Catalog   *catalog.Store
	Selection *selection.Store
	Prefs     *prefs.Store
}

// Close releases resources held by cmdContext
func (c *cmdContext) Close() {
	if c.KV != nil {
		c.KV.Close()
	}
}

// initContext opens the profile and builds the stores without loading
// the catalog.
func initContext() *cmdContext {
	cfg, err := config.Load()
	if err != nil {
		exitError("%v", err)
	}

	kv, err := kvstore.Open(kvstore.Driver(cfg.Driver), cfg.DatabasePath())
	if err != nil {
		exitError("failed to open store: %v", err)
	}

	sel, err := selection.New(kv)
	if err != nil {
		if !errors.Is(err, kvstore.ErrPersistence) {
			kv.Close()
			exitError("failed to load selections: %v", err)
		}
		warnPersistence(err)
	}

	return &cmdContext{
		Config:    cfg,
		KV:        kv,
		Catalog:   catalog.New(kv, seed.NewClient(cfg.SeedURL)),
		Selection: sel,
		Prefs:     prefs.New(kv),
	}
}

// initLoadedContext additionally loads the catalog, seeding it from the
// configured URL on first run.
func initLoadedContext(ctx context.Context) *cmdContext {
	c := initContext()

	if err := c.Catalog.Load(ctx); err != nil {
		if errors.Is(err, kvstore.ErrPersistence) {
			warnPersistence(err)
		} else {
			c.Close()
			exitError("failed to load catalog: %v", err)
		}
	}

	return c
}

var rootCmd = &cobra.Command{
	Use:   "showroom",
	Short: "Local-first car catalog",
	Long: `Showroom is a local-first car catalog. Browse, filter and compare cars,
keep favorites and recent views, and serve the catalog over HTTP.
All state lives in a .showroom profile directory.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// warnPersistence reports a persistence failure without aborting. The
// in-memory state stays authoritative for the rest of the run.
func warnPersistence(err error) {
	fmt.Fprintf(os.Stderr, "warning: %v\n", err)
}
