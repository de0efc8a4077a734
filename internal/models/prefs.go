package models

import "time"

// Theme names supported by the UI skin.
const (
	ThemeSport = "sport"
	ThemeEco   = "eco"
)

// DefaultTheme is used when no theme has been persisted.
const DefaultTheme = ThemeEco

// DefaultPriceMax is the upper bound of the price filter when unset.
const DefaultPriceMax = 3_000_000

// FilterPreferences is the persisted filter panel state.
type FilterPreferences struct {
	Type       string `json:"type"`       // exact type or "all"
	Horsepower string `json:"horsepower"` // compound "min-max" key or "all"
	PriceMin   int    `json:"priceMin"`
	PriceMax   int    `json:"priceMax"`
	Sort       string `json:"sort"`
}

// DefaultFilterPreferences returns the filter panel defaults.
func DefaultFilterPreferences() FilterPreferences {
	return FilterPreferences{
		Type:       "all",
		Horsepower: "all",
		PriceMin:   0,
		PriceMax:   DefaultPriceMax,
		Sort:       "default",
	}
}

// UserData bundles all per-user state for export and import. On import,
// nil fields are left untouched; present fields overwrite.
type UserData struct {
	Favorites         []int              `json:"favorites,omitempty"`
	CompareList       []int              `json:"compareList,omitempty"`
	Theme             string             `json:"theme,omitempty"`
	FilterPreferences *FilterPreferences `json:"filterPreferences,omitempty"`
	RecentViews       []int              `json:"recentViews,omitempty"`
	ExportDate        time.Time          `json:"exportDate"`
}
