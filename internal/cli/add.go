package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"showroom/internal/kvstore"
	"showroom/internal/models"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a car to the catalog",
	Long: `Add a new car. Brand, model and type are required; the id is
assigned automatically.

Example:
  showroom add --brand Ferrari --model Roma --type sports --price 247000 --hp 612`,
	Run: runAdd,
}

var addCar carFlags

// carFlags carries the shared field flags of add and update.
type carFlags struct {
	brand        string
	model        string
	carType      string
	engine       string
	transmission string
	drivetrain   string
	fuelType     string
	description  string
	image        string
	price        int
	horsepower   int
	torque       int
	topSpeed     int
	acceleration float64
	weight       int
	year         int
	seats        int
	features     []string
}

func (f *carFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.brand, "brand", "", "Brand name")
	cmd.Flags().StringVar(&f.model, "model", "", "Model name")
	cmd.Flags().StringVar(&f.carType, "type", "", `Car type (e.g. "sports", "suv", "electric")`)
	cmd.Flags().StringVar(&f.engine, "engine", "", "Engine description")
	cmd.Flags().StringVar(&f.transmission, "transmission", "", "Transmission")
	cmd.Flags().StringVar(&f.drivetrain, "drivetrain", "", "Drivetrain")
	cmd.Flags().StringVar(&f.fuelType, "fuel", "", "Fuel type")
	cmd.Flags().StringVar(&f.description, "description", "", "Free-form description")
	cmd.Flags().StringVar(&f.image, "image", "", "Image URL")
	cmd.Flags().IntVar(&f.price, "price", 0, "Price in USD")
	cmd.Flags().IntVar(&f.horsepower, "hp", 0, "Horsepower")
	cmd.Flags().IntVar(&f.torque, "torque", 0, "Torque in lb-ft")
	cmd.Flags().IntVar(&f.topSpeed, "top-speed", 0, "Top speed in mph")
	cmd.Flags().Float64Var(&f.acceleration, "acceleration", 0, "0-60 mph time in seconds")
	cmd.Flags().IntVar(&f.weight, "weight", 0, "Weight in lbs")
	cmd.Flags().IntVar(&f.year, "year", 0, "Model year")
	cmd.Flags().IntVar(&f.seats, "seats", 0, "Seat count")
	cmd.Flags().StringSliceVar(&f.features, "feature", nil, "Feature (repeatable)")
}

func (f *carFlags) record() models.CarRecord {
	return models.CarRecord{
		Brand:        f.brand,
		Model:        f.model,
		Type:         f.carType,
		Engine:       f.engine,
		Transmission: f.transmission,
		Drivetrain:   f.drivetrain,
		FuelType:     f.fuelType,
		Description:  f.description,
		Image:        f.image,
		Price:        f.price,
		Horsepower:   f.horsepower,
		Torque:       f.torque,
		TopSpeed:     f.topSpeed,
		Acceleration: f.acceleration,
		Weight:       f.weight,
		Year:         f.year,
		Seats:        f.seats,
		Features:     f.features,
	}
}

func init() {
	addCar.register(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	c := initLoadedContext(context.Background())
	defer c.Close()

	id, err := c.Catalog.Add(addCar.record())
	if err != nil {
		if errors.Is(err, kvstore.ErrPersistence) {
			warnPersistence(err)
		} else {
			exitError("%v", err)
		}
	}

	green := color.New(color.FgGreen)
	green.Printf("Added car %d", id)
	fmt.Printf(" (%s %s)\n", addCar.brand, addCar.model)
}
