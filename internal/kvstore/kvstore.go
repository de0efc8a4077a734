// Package kvstore provides string-keyed JSON-blob persistence for showroom.
// All durable state (the catalog, favorites, the compare list, and user
// preferences) lives in one embedded database behind the KV interface.
package kvstore

import "errors"

// Well-known keys used by the stores.
const (
	KeyCatalog         = "carsData"
	KeyFavorites       = "favoriteCars"
	KeyFavoritesLegacy = "favorites"
	KeyCompare         = "compareCars"
	KeyTheme           = "theme"
	KeyFilterPrefs     = "filterPreferences"
	KeyRecentViews     = "recentViews"
)

// ErrPersistence marks a failed durable write. In-memory state remains
// authoritative for the session; callers surface the error as a notice and
// continue.
var ErrPersistence = errors.New("persistence failure")

// KV is a string-keyed blob store. Get returns nil with no error when the
// key is absent; Delete of an absent key is a no-op.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}
