// Package prefs owns user preferences: theme, filter panel state, recent
// views, and the export/import bundle over all per-user data.
package prefs

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"showroom/internal/kvstore"
	"showroom/internal/models"
)

// MaxRecentViews caps the recent-views list, most recent first.
const MaxRecentViews = 10

// Store reads and writes preference blobs. Values are read through to the
// KV on each access; preference reads are rare and cheap.
type Store struct {
	mu sync.Mutex
	kv kvstore.KV
}

// New creates a preferences store over kv.
func New(kv kvstore.KV) *Store {
	return &Store{kv: kv}
}

// Theme returns the persisted theme, defaulting to eco.
func (s *Store) Theme() (string, error) {
	data, err := s.kv.Get(kvstore.KeyTheme)
	if err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}
	if data == nil {
		return models.DefaultTheme, nil
	}

	var theme string
	if err := json.Unmarshal(data, &theme); err != nil {
		return "", fmt.Errorf("decode theme: %w", err)
	}
	if theme == "" {
		return models.DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme persists the theme name.
func (s *Store) SetTheme(theme string) error {
	if theme != models.ThemeSport && theme != models.ThemeEco {
		return fmt.Errorf("unknown theme %q (want %q or %q)", theme, models.ThemeSport, models.ThemeEco)
	}
	return s.putJSON(kvstore.KeyTheme, theme)
}

// ToggleTheme flips sport<->eco and returns the new theme.
func (s *Store) ToggleTheme() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Theme()
	if err != nil {
		return "", err
	}
	next := models.ThemeSport
	if current == models.ThemeSport {
		next = models.ThemeEco
	}
	return next, s.SetTheme(next)
}

// FilterPreferences returns the persisted filter panel state, or the
// defaults when none has been saved.
func (s *Store) FilterPreferences() (models.FilterPreferences, error) {
	data, err := s.kv.Get(kvstore.KeyFilterPrefs)
	if err != nil {
		return models.FilterPreferences{}, fmt.Errorf("read filter preferences: %w", err)
	}
	if data == nil {
		return models.DefaultFilterPreferences(), nil
	}

	var prefs models.FilterPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return models.FilterPreferences{}, fmt.Errorf("decode filter preferences: %w", err)
	}
	return prefs, nil
}

// SetFilterPreferences persists the filter panel state.
func (s *Store) SetFilterPreferences(prefs models.FilterPreferences) error {
	return s.putJSON(kvstore.KeyFilterPrefs, prefs)
}

// RecentViews returns the recently viewed car ids, most recent first.
func (s *Store) RecentViews() ([]int, error) {
	data, err := s.kv.Get(kvstore.KeyRecentViews)
	if err != nil {
		return nil, fmt.Errorf("read recent views: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode recent views: %w", err)
	}
	return ids, nil
}

// AddRecentView moves id to the front of the recent-views list,
// de-duplicating and keeping at most MaxRecentViews entries.
func (s *Store) AddRecentView(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	views, err := s.RecentViews()
	if err != nil {
		return err
	}

	out := make([]int, 0, len(views)+1)
	out = append(out, id)
	for _, v := range views {
		if v != id {
			out = append(out, v)
		}
	}
	if len(out) > MaxRecentViews {
		out = out[:MaxRecentViews]
	}

	return s.putJSON(kvstore.KeyRecentViews, out)
}

// ClearRecentViews removes the recent-views list.
func (s *Store) ClearRecentViews() error {
	if err := s.kv.Delete(kvstore.KeyRecentViews); err != nil {
		return fmt.Errorf("%w: %v", kvstore.ErrPersistence, err)
	}
	return nil
}

func (s *Store) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Put(key, data); err != nil {
		return fmt.Errorf("%w: %v", kvstore.ErrPersistence, err)
	}
	return nil
}

// SelectionReader is the part of the selection store the exporter needs.
type SelectionReader interface {
	Favorites() []int
	CompareSet() []int
}

// SelectionWriter is the part of the selection store the importer needs.
type SelectionWriter interface {
	SetFavorites(ids []int) error
	SetCompare(ids []int) error
}

// ExportUserData assembles the full per-user bundle with an export
// timestamp.
func (s *Store) ExportUserData(sel SelectionReader) (*models.UserData, error) {
	theme, err := s.Theme()
	if err != nil {
		return nil, err
	}
	filterPrefs, err := s.FilterPreferences()
	if err != nil {
		return nil, err
	}
	recent, err := s.RecentViews()
	if err != nil {
		return nil, err
	}

	return &models.UserData{
		Favorites:         sel.Favorites(),
		CompareList:       sel.CompareSet(),
		Theme:             theme,
		FilterPreferences: &filterPrefs,
		RecentViews:       recent,
		ExportDate:        time.Now().UTC(),
	}, nil
}

// ImportUserData overwrites only the fields present in the bundle;
// absent fields are left untouched.
func (s *Store) ImportUserData(data *models.UserData, sel SelectionWriter) error {
	if data.Favorites != nil {
		if err := sel.SetFavorites(data.Favorites); err != nil {
			return err
		}
	}
	if data.CompareList != nil {
		if err := sel.SetCompare(data.CompareList); err != nil {
			return err
		}
	}
	if data.Theme != "" {
		if err := s.SetTheme(data.Theme); err != nil {
			return err
		}
	}
	if data.FilterPreferences != nil {
		if err := s.SetFilterPreferences(*data.FilterPreferences); err != nil {
			return err
		}
	}
	if data.RecentViews != nil {
		views := data.RecentViews
		if len(views) > MaxRecentViews {
			views = views[:MaxRecentViews]
		}
		if err := s.putJSON(kvstore.KeyRecentViews, views); err != nil {
			return err
		}
	}
	return nil
}

// StorageInfo summarizes what the profile currently holds.
type StorageInfo struct {
	FavoritesCount   int    `json:"favoritesCount"`
	CompareListCount int    `json:"compareListCount"`
	RecentViewsCount int    `json:"recentViewsCount"`
	Theme            string `json:"theme"`
}

// Info reports counts and the active theme.
func (s *Store) Info(sel SelectionReader) (*StorageInfo, error) {
	theme, err := s.Theme()
	if err != nil {
		return nil, err
	}
	recent, err := s.RecentViews()
	if err != nil {
		return nil, err
	}

	return &StorageInfo{
		FavoritesCount:   len(sel.Favorites()),
		CompareListCount: len(sel.CompareSet()),
		RecentViewsCount: len(recent),
		Theme:            theme,
	}, nil
}
