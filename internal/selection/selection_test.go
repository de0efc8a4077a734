package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroom/internal/kvstore"
	"showroom/internal/models"
)

func newTestStore(t *testing.T) (*Store, *kvstore.MemoryStore) {
	t.Helper()
	kv := kvstore.NewMemory()
	st, err := New(kv)
	require.NoError(t, err)
	return st, kv
}

func TestToggleFavorite_IsATrueToggle(t *testing.T) {
	st, _ := newTestStore(t)

	on, err := st.ToggleFavorite(7)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []int{7}, st.Favorites())

	off, err := st.ToggleFavorite(7)
	require.NoError(t, err)
	assert.False(t, off)
	assert.Empty(t, st.Favorites())
}

func TestToggleFavorite_PersistsEachToggle(t *testing.T) {
	st, kv := newTestStore(t)

	_, err := st.ToggleFavorite(3)
	require.NoError(t, err)

	data, err := kv.Get(kvstore.KeyFavorites)
	require.NoError(t, err)
	assert.JSONEq(t, `[3]`, string(data))

	// The legacy key is never written
	legacy, err := kv.Get(kvstore.KeyFavoritesLegacy)
	require.NoError(t, err)
	assert.Nil(t, legacy)
}

func TestFavorites_InsertionOrderPreserved(t *testing.T) {
	st, _ := newTestStore(t)

	for _, id := range []int{9, 2, 5} {
		_, err := st.ToggleFavorite(id)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{9, 2, 5}, st.Favorites())

	_, err := st.ToggleFavorite(2)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 5}, st.Favorites())
}

func TestToggleCompare_LimitOfFour(t *testing.T) {
	st, _ := newTestStore(t)

	for _, id := range []int{1, 2, 3, 4} {
		on, err := st.ToggleCompare(id)
		require.NoError(t, err)
		assert.True(t, on)
	}

	// Fifth distinct toggle-on fails and leaves state untouched
	_, err := st.ToggleCompare(5)
	assert.ErrorIs(t, err, ErrCompareFull)
	assert.Equal(t, []int{1, 2, 3, 4}, st.CompareSet())

	// Removal still works at the limit
	on, err := st.ToggleCompare(2)
	require.NoError(t, err)
	assert.False(t, on)
	assert.Equal(t, []int{1, 3, 4}, st.CompareSet())

	// And frees a slot
	on, err = st.ToggleCompare(5)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestMembershipQueries(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.ToggleFavorite(1)
	require.NoError(t, err)
	_, err = st.ToggleCompare(2)
	require.NoError(t, err)

	assert.True(t, st.IsFavorite(1))
	assert.False(t, st.IsFavorite(2))
	assert.True(t, st.InCompare(2))
	assert.False(t, st.InCompare(1))
}

func TestClear(t *testing.T) {
	st, kv := newTestStore(t)

	_, err := st.ToggleFavorite(1)
	require.NoError(t, err)
	_, err = st.ToggleCompare(2)
	require.NoError(t, err)

	require.NoError(t, st.ClearFavorites())
	require.NoError(t, st.ClearCompare())
	assert.Empty(t, st.Favorites())
	assert.Empty(t, st.CompareSet())

	data, err := kv.Get(kvstore.KeyCompare)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestNew_MigratesLegacyFavorites(t *testing.T) {
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Put(kvstore.KeyFavoritesLegacy, []byte(`[4,8]`)))

	st, err := New(kv)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8}, st.Favorites())

	// Adopted data is persisted forward under the current key
	data, err := kv.Get(kvstore.KeyFavorites)
	require.NoError(t, err)
	assert.JSONEq(t, `[4,8]`, string(data))
}

func TestNew_MigrationPersistFailureStillReturnsStore(t *testing.T) {
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Put(kvstore.KeyFavoritesLegacy, []byte(`[4,8]`)))
	kv.FailWrites = assert.AnError

	st, err := New(kv)
	assert.ErrorIs(t, err, kvstore.ErrPersistence)
	require.NotNil(t, st)
	assert.Equal(t, []int{4, 8}, st.Favorites())
}

func TestNew_CurrentKeyWinsOverLegacy(t *testing.T) {
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Put(kvstore.KeyFavorites, []byte(`[1]`)))
	require.NoError(t, kv.Put(kvstore.KeyFavoritesLegacy, []byte(`[4,8]`)))

	st, err := New(kv)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, st.Favorites())
}

func TestNew_TruncatesOversizedCompareSet(t *testing.T) {
	// Hand-edited persisted state may exceed the limit
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Put(kvstore.KeyCompare, []byte(`[1,2,3,4,5,6]`)))

	st, err := New(kv)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, st.CompareSet())
}

func TestSetCompare_DedupesAndCaps(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, st.SetCompare([]int{1, 1, 2, 3, 4, 5}))
	assert.Equal(t, []int{1, 2, 3, 4}, st.CompareSet())
}

func TestResolveCars_DropsDanglingIDs(t *testing.T) {
	cars := []models.CarRecord{
		{ID: 1, Brand: "Aurora", Model: "GT"},
		{ID: 3, Brand: "Koda", Model: "Trail"},
	}

	resolved := ResolveCars([]int{3, 99, 1}, cars)
	require.Len(t, resolved, 2)
	assert.Equal(t, 3, resolved[0].ID)
	assert.Equal(t, 1, resolved[1].ID)
}

func TestPersistFailureIsNonFatal(t *testing.T) {
	st, kv := newTestStore(t)
	kv.FailWrites = assert.AnError

	on, err := st.ToggleFavorite(7)
	assert.ErrorIs(t, err, kvstore.ErrPersistence)

	// The in-memory flip still happened
	assert.True(t, on)
	assert.True(t, st.IsFavorite(7))
}
