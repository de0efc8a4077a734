// Package selection owns the favorites and compare-set id lists. Both are
// insertion-ordered, duplicate-free, and persisted on every toggle.
package selection

import (
	"encoding/json"
	"fmt"
	"sync"

	"showroom/internal/kvstore"
	"showroom/internal/models"
)

// MaxCompare is the compare-set size limit.
const MaxCompare = 4

// ErrCompareFull is returned when a toggle-on would push the compare set
// past MaxCompare. State is left unchanged.
var ErrCompareFull = fmt.Errorf("compare list is full (max %d cars)", MaxCompare)

// Store holds the favorites and compare id lists.
type Store struct {
	mu        sync.RWMutex
	kv        kvstore.KV
	favorites []int
	compare   []int
}

// New loads the selection state. If the current favorites key is absent
// but the legacy key holds an id list, the legacy data is adopted and
// persisted under the current key; the legacy key is never written again.
func New(kv kvstore.KV) (*Store, error) {
	s := &Store{kv: kv}

	favs, migrated, err := loadFavorites(kv)
	if err != nil {
		return nil, err
	}
	s.favorites = favs

	s.compare, err = readIDList(kv, kvstore.KeyCompare)
	if err != nil {
		return nil, err
	}
	if len(s.compare) > MaxCompare {
		s.compare = s.compare[:MaxCompare]
	}

	if migrated {
		// A failed forward-persist is reported but the store stays
		// usable; in-memory state is authoritative.
		if err := s.persistFavorites(); err != nil {
			return s, err
		}
	}

	return s, nil
}

// loadFavorites reads the current-format key, falling back to the legacy
// key. The second return value reports whether a legacy list was adopted.
func loadFavorites(kv kvstore.KV) ([]int, bool, error) {
	data, err := kv.Get(kvstore.KeyFavorites)
	if err != nil {
		return nil, false, fmt.Errorf("read favorites: %w", err)
	}
	if data != nil {
		ids, err := decodeIDList(data)
		return ids, false, err
	}

	legacy, err := kv.Get(kvstore.KeyFavoritesLegacy)
	if err != nil {
		return nil, false, fmt.Errorf("read legacy favorites: %w", err)
	}
	if legacy == nil {
		return nil, false, nil
	}

	ids, err := decodeIDList(legacy)
	if err != nil {
		return nil, false, err
	}
	return ids, true, nil
}

func readIDList(kv kvstore.KV, key string) ([]int, error) {
	data, err := kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if data == nil {
		return nil, nil
	}
	return decodeIDList(data)
}

func decodeIDList(data []byte) ([]int, error) {
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode id list: %w", err)
	}
	return ids, nil
}

// ToggleFavorite flips the membership of id and persists. Returns the new
// membership state.
func (s *Store) ToggleFavorite(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := indexOf(s.favorites, id); idx >= 0 {
		s.favorites = append(s.favorites[:idx], s.favorites[idx+1:]...)
		return false, s.persistFavorites()
	}
	s.favorites = append(s.favorites, id)
	return true, s.persistFavorites()
}

// ToggleCompare flips the membership of id and persists. Removal always
// succeeds; insertion fails with ErrCompareFull when the set already holds
// MaxCompare ids. Returns the new membership state.
func (s *Store) ToggleCompare(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := indexOf(s.compare, id); idx >= 0 {
		s.compare = append(s.compare[:idx], s.compare[idx+1:]...)
		return false, s.persistCompare()
	}
	if len(s.compare) >= MaxCompare {
		return false, ErrCompareFull
	}
	s.compare = append(s.compare, id)
	return true, s.persistCompare()
}

// IsFavorite reports membership without side effects.
func (s *Store) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.favorites, id) >= 0
}

// InCompare reports membership without side effects.
func (s *Store) InCompare(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.compare, id) >= 0
}

// Favorites returns the favorite ids in insertion order.
func (s *Store) Favorites() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int(nil), s.favorites...)
}

// CompareSet returns the compare ids in insertion order.
func (s *Store) CompareSet() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int(nil), s.compare...)
}

// ClearFavorites empties the favorites list and persists.
func (s *Store) ClearFavorites() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = nil
	return s.persistFavorites()
}

// ClearCompare empties the compare set and persists.
func (s *Store) ClearCompare() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compare = nil
	return s.persistCompare()
}

// SetFavorites replaces the favorites list (used by user-data import) and
// persists. Duplicates are dropped, keeping first occurrence.
func (s *Store) SetFavorites(ids []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = dedupe(ids)
	return s.persistFavorites()
}

// SetCompare replaces the compare set (used by user-data import) and
// persists. Duplicates are dropped; the list is truncated to MaxCompare.
func (s *Store) SetCompare(ids []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	deduped := dedupe(ids)
	if len(deduped) > MaxCompare {
		deduped = deduped[:MaxCompare]
	}
	s.compare = deduped
	return s.persistCompare()
}

// ResolveCars maps ids to catalog records, silently dropping dangling ids.
// Display order follows the id list.
func ResolveCars(ids []int, cars []models.CarRecord) []models.CarRecord {
	byID := make(map[int]models.CarRecord, len(cars))
	for _, car := range cars {
		byID[car.ID] = car
	}

	var out []models.CarRecord
	for _, id := range ids {
		if car, ok := byID[id]; ok {
			out = append(out, car)
		}
	}
	return out
}

func (s *Store) persistFavorites() error {
	return s.persist(kvstore.KeyFavorites, s.favorites)
}

func (s *Store) persistCompare() error {
	return s.persist(kvstore.KeyCompare, s.compare)
}

func (s *Store) persist(key string, ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Put(key, data); err != nil {
		return fmt.Errorf("%w: %v", kvstore.ErrPersistence, err)
	}
	return nil
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func dedupe(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	var out []int
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
