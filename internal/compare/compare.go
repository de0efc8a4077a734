// Package compare builds the side-by-side comparison matrix for 2-4 cars.
package compare

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"showroom/internal/models"
)

// MaxColumns matches the compare-set size limit.
const MaxColumns = 4

var (
	// ErrTooFew is returned below 2 cars; comparison is undefined.
	ErrTooFew = errors.New("comparison requires at least 2 cars")

	// ErrTooMany is returned above MaxColumns cars.
	ErrTooMany = fmt.Errorf("comparison supports at most %d cars", MaxColumns)
)

// NotAvailable is the placeholder rendered for missing values.
const NotAvailable = "N/A"

// Row is one attribute across all compared cars.
type Row struct {
	Key           string   `json:"key"`
	Label         string   `json:"label"`
	Numeric       bool     `json:"numeric"`
	LowerIsBetter bool     `json:"lowerIsBetter,omitempty"`
	Values        []string `json:"values"`

	// BestIndex is the column holding the extreme value among candidates
	// greater than zero, or -1 when the row is non-numeric or no value
	// qualifies. Ties resolve to the leftmost column.
	BestIndex int `json:"bestIndex"`
}

// Matrix is the full comparison table. Columns follow compare-set order.
type Matrix struct {
	Cars []models.CarRecord `json:"cars"`
	Rows []Row              `json:"rows"`
}

// attribute describes one fixed row of the matrix.
type attribute struct {
	key           string
	label         string
	lowerIsBetter bool
	number        func(c *models.CarRecord) float64 // nil for non-numeric rows
	format        func(c *models.CarRecord) string
}

// attributes is the fixed, ordered row list.
var attributes = []attribute{
	{
		key: "year", label: "Year",
		number: func(c *models.CarRecord) float64 { return float64(c.Year) },
		format: func(c *models.CarRecord) string { return intOrNA(c.Year, "") },
	},
	{
		key: "price", label: "Price", lowerIsBetter: true,
		number: func(c *models.CarRecord) float64 { return float64(c.Price) },
		format: func(c *models.CarRecord) string {
			if c.Price <= 0 {
				return NotAvailable
			}
			return "$" + humanize.Comma(int64(c.Price))
		},
	},
	{
		key: "type", label: "Type",
		format: func(c *models.CarRecord) string { return stringOrNA(c.Type) },
	},
	{
		key: "engine", label: "Engine",
		format: func(c *models.CarRecord) string { return stringOrNA(c.Engine) },
	},
	{
		key: "horsepower", label: "Horsepower",
		number: func(c *models.CarRecord) float64 { return float64(c.Horsepower) },
		format: func(c *models.CarRecord) string { return intOrNA(c.Horsepower, " HP") },
	},
	{
		key: "torque", label: "Torque",
		number: func(c *models.CarRecord) float64 { return float64(c.Torque) },
		format: func(c *models.CarRecord) string { return intOrNA(c.Torque, " lb-ft") },
	},
	{
		key: "topSpeed", label: "Top Speed",
		number: func(c *models.CarRecord) float64 { return float64(c.TopSpeed) },
		format: func(c *models.CarRecord) string { return intOrNA(c.TopSpeed, " mph") },
	},
	{
		key: "acceleration", label: "0-60 mph", lowerIsBetter: true,
		number: func(c *models.CarRecord) float64 { return c.Acceleration },
		format: func(c *models.CarRecord) string {
			if c.Acceleration <= 0 {
				return NotAvailable
			}
			return strconv.FormatFloat(c.Acceleration, 'f', -1, 64) + "s"
		},
	},
	{
		key: "weight", label: "Weight", lowerIsBetter: true,
		number: func(c *models.CarRecord) float64 { return float64(c.Weight) },
		format: func(c *models.CarRecord) string {
			if c.Weight <= 0 {
				return NotAvailable
			}
			return humanize.Comma(int64(c.Weight)) + " lbs"
		},
	},
	{
		key: "transmission", label: "Transmission",
		format: func(c *models.CarRecord) string { return stringOrNA(c.Transmission) },
	},
	{
		key: "drivetrain", label: "Drivetrain",
		format: func(c *models.CarRecord) string { return stringOrNA(c.Drivetrain) },
	},
	{
		key: "fuelType", label: "Fuel Type",
		format: func(c *models.CarRecord) string { return stringOrNA(c.FuelType) },
	},
	{
		key: "seats", label: "Seats",
		number: func(c *models.CarRecord) float64 { return float64(c.Seats) },
		format: func(c *models.CarRecord) string { return intOrNA(c.Seats, " seats") },
	},
	{
		key: "description", label: "Description",
		format: func(c *models.CarRecord) string { return stringOrNA(c.Description) },
	},
	{
		key: "features", label: "Features",
		format: func(c *models.CarRecord) string {
			if len(c.Features) == 0 {
				return NotAvailable
			}
			return strings.Join(c.Features, ", ")
		},
	},
}

// Build produces the comparison matrix for 2-4 cars in the given order.
func Build(cars []models.CarRecord) (*Matrix, error) {
	if len(cars) < 2 {
		return nil, ErrTooFew
	}
	if len(cars) > MaxColumns {
		return nil, ErrTooMany
	}

	m := &Matrix{
		Cars: append([]models.CarRecord(nil), cars...),
		Rows: make([]Row, 0, len(attributes)),
	}

	for _, attr := range attributes {
		row := Row{
			Key:           attr.key,
			Label:         attr.label,
			Numeric:       attr.number != nil,
			LowerIsBetter: attr.lowerIsBetter,
			Values:        make([]string, len(cars)),
			BestIndex:     -1,
		}

		for i := range cars {
			row.Values[i] = attr.format(&cars[i])
		}

		if attr.number != nil {
			row.BestIndex = bestIndex(cars, attr.number, attr.lowerIsBetter)
		}

		m.Rows = append(m.Rows, row)
	}

	return m, nil
}

// bestIndex finds the extreme value among candidates greater than zero.
// Returns -1 when no value qualifies; the first column attaining the
// extreme wins ties.
func bestIndex(cars []models.CarRecord, number func(c *models.CarRecord) float64, lowerIsBetter bool) int {
	best := -1
	var bestVal float64

	for i := range cars {
		v := number(&cars[i])
		if v <= 0 {
			continue
		}
		if best == -1 {
			best, bestVal = i, v
			continue
		}
		if lowerIsBetter && v < bestVal {
			best, bestVal = i, v
		} else if !lowerIsBetter && v > bestVal {
			best, bestVal = i, v
		}
	}

	return best
}

func stringOrNA(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}

func intOrNA(v int, suffix string) string {
	if v <= 0 {
		return NotAvailable
	}
	return strconv.Itoa(v) + suffix
}
