package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"showroom/internal/models"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a car's details",
	Long:  `Display the full record of a single car and note it as recently viewed.`,
	Args:  cobra.ExactArgs(1),
	Run:   runShow,
}

func runShow(cmd *cobra.Command, args []string) {
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

	if err := c.Prefs.AddRecentView(id); err != nil {
		warnPersistence(err)
	}

	printCar(&car, c.Selection.IsFavorite(id), c.Selection.InCompare(id))
}

func printCar(car *models.CarRecord, favorite, inCompare bool) {
	bold := color.New(color.Bold)
	yellow := color.New(color.FgYellow)

	bold.Printf("%s", car.DisplayName())
	if car.Year > 0 {
		bold.Printf(" (%d)", car.Year)
	}
	if favorite {
		color.New(color.FgRed).Print("  *fav")
	}
	if inCompare {
		color.New(color.FgCyan).Print("  [compare]")
	}
	fmt.Println()

	yellow.Printf("id %d\n\n", car.ID)

	printField("Type", car.Type)
	printField("Price", "$"+humanize.Comma(int64(car.Price)))
	printField("Horsepower", strconv.Itoa(car.Horsepower)+" hp")
	if car.Torque > 0 {
		printField("Torque", strconv.Itoa(car.Torque)+" lb-ft")
	}
	if car.TopSpeed > 0 {
		printField("Top speed", strconv.Itoa(car.TopSpeed)+" mph")
	}
	if car.Acceleration > 0 {
		printField("0-60 mph", strconv.FormatFloat(car.Acceleration, 'f', -1, 64)+"s")
	}
	printField("Engine", car.Engine)
	printField("Transmission", car.Transmission)
	printField("Drivetrain", car.Drivetrain)
	printField("Fuel", car.FuelType)
	if car.Weight > 0 {
		printField("Weight", humanize.Comma(int64(car.Weight))+" lbs")
	}
	if car.Seats > 0 {
		printField("Seats", strconv.Itoa(car.Seats))
	}
	if len(car.Features) > 0 {
		printField("Features", strings.Join(car.Features, ", "))
	}
	if car.Description != "" {
		fmt.Printf("\n%s\n", car.Description)
	}
}

func printField(label, value string) {
	if value == "" {
		return
	}
	color.New(color.FgGreen).Printf("%-14s", label)
	fmt.Println(value)
}
