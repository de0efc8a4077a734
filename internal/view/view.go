// Package view projects the catalog into a displayed list. It holds no
// state; Apply is a pure function of (catalog, criteria).
package view

import (
	"sort"
	"strconv"
	"strings"

	"showroom/internal/models"
)

// SortKey selects the final ordering of a filtered list.
type SortKey string

const (
	SortDefault   SortKey = "default" // ascending id
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortHPLow     SortKey = "hp-low"
	SortHPHigh    SortKey = "hp-high"
)

// Wildcard matches everything in the type and horsepower filters.
const Wildcard = "all"

// Criteria narrows and orders the catalog. Zero values behave like the
// filter panel defaults: empty search, wildcard type and horsepower, full
// price range, default ordering.
type Criteria struct {
	Search     string  // case-insensitive substring over brand+model
	Type       string  // exact type match, or "all"
	Horsepower string  // compound "min-max" key, or "all"
	PriceMin   int
	PriceMax   int
	Sort       SortKey
}

// FromPreferences builds criteria from a persisted filter panel state.
func FromPreferences(p models.FilterPreferences) Criteria {
	return Criteria{
		Type:       p.Type,
		Horsepower: p.Horsepower,
		PriceMin:   p.PriceMin,
		PriceMax:   p.PriceMax,
		Sort:       SortKey(p.Sort),
	}
}

// Apply narrows the catalog by search, type, horsepower, and price, then
// orders the result. Filters are AND-combined. The input slice is never
// mutated; a fresh slice is returned.
func Apply(cars []models.CarRecord, c Criteria) []models.CarRecord {
	out := make([]models.CarRecord, 0, len(cars))

	search := strings.ToLower(strings.TrimSpace(c.Search))
	hpMin, hpMax, hpActive := ParseRangeKey(c.Horsepower)
	priceMax := c.PriceMax
	if priceMax == 0 {
		priceMax = models.DefaultPriceMax
	}

	for _, car := range cars {
		if search != "" &&
			!strings.Contains(strings.ToLower(car.Brand), search) &&
			!strings.Contains(strings.ToLower(car.Model), search) {
			continue
		}
		if c.Type != "" && c.Type != Wildcard && car.Type != c.Type {
			continue
		}
		if hpActive && (car.Horsepower < hpMin || car.Horsepower > hpMax) {
			continue
		}
		if car.Price < c.PriceMin || car.Price > priceMax {
			continue
		}
		out = append(out, car)
	}

	sortCars(out, c.Sort)
	return out
}

// sortCars orders in place. The default key sorts by ascending id; it is
// an ordering of its own, not "leave as filtered".
func sortCars(cars []models.CarRecord, key SortKey) {
	var less func(a, b models.CarRecord) bool

	switch key {
	case SortPriceLow:
		less = func(a, b models.CarRecord) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b models.CarRecord) bool { return a.Price > b.Price }
	case SortHPLow:
		less = func(a, b models.CarRecord) bool { return a.Horsepower < b.Horsepower }
	case SortHPHigh:
		less = func(a, b models.CarRecord) bool { return a.Horsepower > b.Horsepower }
	default:
		less = func(a, b models.CarRecord) bool { return a.ID < b.ID }
	}

	// Stable keeps equal sort keys in original catalog order.
	sort.SliceStable(cars, func(i, j int) bool { return less(cars[i], cars[j]) })
}

// ParseRangeKey parses a compound "min-max" key like "300-500" into a
// closed interval. The wildcard, an empty key, or a malformed key reports
// inactive.
func ParseRangeKey(key string) (min, max int, active bool) {
	if key == "" || key == Wildcard {
		return 0, 0, false
	}

	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	max, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return min, max, true
}
