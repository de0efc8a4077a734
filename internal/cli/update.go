package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"showroom/internal/kvstore"
	"showroom/internal/models"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a car",
	Long: `Update a car in place. Only the flags you pass are changed.

Example:
  showroom update 3 --price 99000 --description "Facelifted model"`,
	Args: cobra.ExactArgs(1),
	Run:  runUpdate,
}

var updateCar carFlags

func init() {
	updateCar.register(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid car id %q", args[0])
	}

	patch := updateCar.patch(cmd)
	if patch.IsEmpty() {
		exitError("nothing to update: pass at least one field flag")
	}

	c := initLoadedContext(context.Background())
	defer c.Close()

	if err := c.Catalog.Update(id, patch); err != nil {
		if errors.Is(err, kvstore.ErrPersistence) {
			warnPersistence(err)
		} else {
			exitError("%v", err)
		}
	}

	color.New(color.FgGreen).Printf("Updated car %d\n", id)
}

// patch converts the flags that were actually set into a partial update.
func (f *carFlags) patch(cmd *cobra.Command) models.CarPatch {
	var p models.CarPatch
	set := cmd.Flags().Changed

	if set("brand") {
		p.Brand = &f.brand
	}
	if set("model") {
		p.Model = &f.model
	}
	if set("type") {
		p.Type = &f.carType
	}
	if set("engine") {
		p.Engine = &f.engine
	}
	if set("transmission") {
		p.Transmission = &f.transmission
	}
	if set("drivetrain") {
		p.Drivetrain = &f.drivetrain
	}
	if set("fuel") {
		p.FuelType = &f.fuelType
	}
	if set("description") {
		p.Description = &f.description
	}
	if set("image") {
		p.Image = &f.image
	}
	if set("price") {
		p.Price = &f.price
	}
	if set("hp") {
		p.Horsepower = &f.horsepower
	}
	if set("torque") {
		p.Torque = &f.torque
	}
	if set("top-speed") {
		p.TopSpeed = &f.topSpeed
	}
	if set("acceleration") {
		p.Acceleration = &f.acceleration
	}
	if set("weight") {
		p.Weight = &f.weight
	}
	if set("year") {
		p.Year = &f.year
	}
	if set("seats") {
		p.Seats = &f.seats
	}
	if set("feature") {
		p.Features = &f.features
	}
	return p
}
