// Package catalog owns the authoritative car list. It hydrates from the
// persisted blob or, on first run, from the remote seed, and persists on
// every mutation.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"showroom/internal/kvstore"
	"showroom/internal/models"
)

var (
	// ErrNotFound is returned when an operation references an id absent
	// from the catalog.
	ErrNotFound = errors.New("car not found")

	// ErrLoadFailure is returned when no persisted catalog exists and the
	// seed fetch failed.
	ErrLoadFailure = errors.New("catalog load failure")
)

// Seeder fetches the initial catalog. Satisfied by seed.Client.
type Seeder interface {
	Fetch(ctx context.Context) ([]models.CarRecord, error)
}

// Store is the single source of truth for the car list.
type Store struct {
	mu     sync.RWMutex
	kv     kvstore.KV
	seeder Seeder
	cars   []models.CarRecord

	// nextID is the session high-watermark for id assignment. Deleting the
	// highest record must not cause its id to be handed out again.
	nextID int
}

// New creates a catalog store. Call Load before reading.
func New(kv kvstore.KV, seeder Seeder) *Store {
	return &Store{kv: kv, seeder: seeder}
}

// Load hydrates the catalog. The persisted blob wins; the seed is fetched
// only when no catalog has ever been persisted. A failed persist of a
// fresh seed is reported as kvstore.ErrPersistence but the in-memory
// catalog is still usable.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(kvstore.KeyCatalog)
	if err != nil {
		return fmt.Errorf("read persisted catalog: %w", err)
	}

	if data != nil {
		var cars []models.CarRecord
		if err := json.Unmarshal(data, &cars); err != nil {
			return fmt.Errorf("%w: corrupt persisted catalog: %v", ErrLoadFailure, err)
		}
		s.cars = cars
		s.resetWatermarkLocked()
		return nil
	}

	if s.seeder == nil {
		return fmt.Errorf("%w: no persisted catalog and no seed source", ErrLoadFailure)
	}

	cars, err := s.seeder.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	s.cars = cars
	s.resetWatermarkLocked()

	return s.persistLocked()
}

// resetWatermarkLocked recomputes nextID from the loaded catalog. The
// caller holds s.mu.
func (s *Store) resetWatermarkLocked() {
	s.nextID = 1
	for _, car := range s.cars {
		if car.ID >= s.nextID {
			s.nextID = car.ID + 1
		}
	}
}

// All returns the full catalog in insertion order. The returned slice is a
// copy; callers may reorder it freely.
func (s *Store) All() []models.CarRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CarRecord(nil), s.cars...)
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cars)
}

// Get returns the record with the given id.
func (s *Store) Get(id int) (models.CarRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, car := range s.cars {
		if car.ID == id {
			return car, nil
		}
	}
	return models.CarRecord{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Add assigns the next id (max existing + 1, never reusing a deleted id
// within the session), appends the record, and persists. Returns the
// assigned id.
func (s *Store) Add(candidate models.CarRecord) (int, error) {
	if candidate.Brand == "" || candidate.Model == "" || candidate.Type == "" {
		return 0, fmt.Errorf("brand, model, and type are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, car := range s.cars {
		if car.ID >= s.nextID {
			s.nextID = car.ID + 1
		}
	}
	candidate.ID = s.nextID
	s.nextID++
	s.cars = append(s.cars, candidate)

	return candidate.ID, s.persistLocked()
}

// Update shallow-merges the patch into the record with the given id and
// persists.
func (s *Store) Update(id int, patch models.CarPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cars {
		if s.cars[i].ID == id {
			patch.Apply(&s.cars[i])
			return s.persistLocked()
		}
	}
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Remove deletes the record with the given id and persists. Favorites and
// compare entries referencing the id are left in place; consumers tolerate
// dangling ids.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cars {
		if s.cars[i].ID == id {
			s.cars = append(s.cars[:i], s.cars[i+1:]...)
			return s.persistLocked()
		}
	}
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// ExportSnapshot returns a serializable copy of the full catalog.
func (s *Store) ExportSnapshot() []models.CarRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.CarRecord, len(s.cars))
	for i, car := range s.cars {
		snapshot[i] = car
		snapshot[i].Features = append([]string(nil), car.Features...)
	}
	return snapshot
}

// ResetToSeed discards the persisted catalog. The next Load fetches the
// seed again.
func (s *Store) ResetToSeed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(kvstore.KeyCatalog); err != nil {
		return fmt.Errorf("%w: %v", kvstore.ErrPersistence, err)
	}
	s.cars = nil
	return nil
}

// persistLocked writes the catalog blob. The caller holds s.mu.
func (s *Store) persistLocked() error {
	data, err := json.Marshal(s.cars)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := s.kv.Put(kvstore.KeyCatalog, data); err != nil {
		return fmt.Errorf("%w: %v", kvstore.ErrPersistence, err)
	}
	return nil
}
