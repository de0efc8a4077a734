package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"showroom/internal/kvstore"
	"showroom/internal/models"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import user data from a JSON export",
	Long: `Restore user data from a file written by "showroom export userdata".
Only the fields present in the file are overwritten; the rest of the
state is left untouched.`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func runImport(cmd *cobra.Command, args []string) {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		exitError("failed to read %s: %v", args[0], err)
	}

	var data models.UserData
	if err := json.Unmarshal(raw, &data); err != nil {
		exitError("failed to parse %s: %v", args[0], err)
	}

	c := initContext()
	defer c.Close()

	if err := c.Prefs.ImportUserData(&data, c.Selection); err != nil {
		if errors.Is(err, kvstore.ErrPersistence) {
			warnPersistence(err)
		} else {
			exitError("failed to import user data: %v", err)
		}
	}

	fmt.Printf("Imported user data from %s\n", args[0])
}
