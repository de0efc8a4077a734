package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [userdata | catalog]",
	Short: "Export user data or the catalog as JSON",
	Long: `Write a JSON export to stdout or to a file.

"userdata" bundles favorites, the compare list, the theme, filter
preferences and recent views. "catalog" dumps the full car list.`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) {
	c := initLoadedContext(context.Background())
	defer c.Close()

	var payload any
	switch args[0] {
	case "userdata":
		data, err := c.Prefs.ExportUserData(c.Selection)
		if err != nil {
			exitError("failed to export user data: %v", err)
		}
		payload = data
	case "catalog":
		payload = c.Catalog.ExportSnapshot()
	default:
		exitError("unknown export target %q (use userdata or catalog)", args[0])
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		exitError("failed to encode export: %v", err)
	}
	out = append(out, '\n')

	if exportOutput == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(exportOutput, out, 0644); err != nil {
		exitError("failed to write %s: %v", exportOutput, err)
	}
	fmt.Printf("Exported %s to %s\n", args[0], exportOutput)
}
