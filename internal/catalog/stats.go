package catalog

import "sort"

// NumberRange summarizes a numeric field across the catalog.
type NumberRange struct {
	Min int     `json:"min"`
	Max int     `json:"max"`
	Avg float64 `json:"avg"`
}

// Statistics describes the catalog as a whole.
type Statistics struct {
	TotalCars       int         `json:"totalCars"`
	Types           []string    `json:"types"`
	Brands          []string    `json:"brands"`
	PriceRange      NumberRange `json:"priceRange"`
	HorsepowerRange NumberRange `json:"horsepowerRange"`
}

// Types returns the sorted set of distinct car types.
func (s *Store) Types() []string {
	return s.distinct(func(i int) string { return s.cars[i].Type })
}

// Brands returns the sorted set of distinct car brands.
func (s *Store) Brands() []string {
	return s.distinct(func(i int) string { return s.cars[i].Brand })
}

func (s *Store) distinct(field func(i int) string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for i := range s.cars {
		v := field(i)
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// Stats computes summary statistics over the catalog. Ranges are zero when
// the catalog is empty.
func (s *Store) Stats() Statistics {
	stats := Statistics{
		Types:  s.Types(),
		Brands: s.Brands(),
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats.TotalCars = len(s.cars)
	if len(s.cars) == 0 {
		return stats
	}

	stats.PriceRange = summarize(s.cars, func(i int) int { return s.cars[i].Price })
	stats.HorsepowerRange = summarize(s.cars, func(i int) int { return s.cars[i].Horsepower })
	return stats
}

func summarize[T any](items []T, value func(i int) int) NumberRange {
	r := NumberRange{Min: value(0), Max: value(0)}
	sum := 0
	for i := range items {
		v := value(i)
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
		sum += v
	}
	r.Avg = float64(sum) / float64(len(items))
	return r
}
