package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openBackends opens one store per persistent backend in a temp directory.
func openBackends(t *testing.T) map[string]KV {
	t.Helper()
	dir := t.TempDir()

	boltStore, err := OpenBolt(filepath.Join(dir, "bolt.db"))
	require.NoError(t, err)

	sqliteStore, err := OpenSQLite(filepath.Join(dir, "sqlite.db"))
	require.NoError(t, err)

	stores := map[string]KV{
		"bolt":   boltStore,
		"sqlite": sqliteStore,
		"memory": NewMemory(),
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestKV_Roundtrip(t *testing.T) {
	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			// Absent key returns nil, no error
			val, err := kv.Get("missing")
			require.NoError(t, err)
			assert.Nil(t, val)

			require.NoError(t, kv.Put("theme", []byte(`"sport"`)))

			val, err = kv.Get("theme")
			require.NoError(t, err)
			assert.Equal(t, []byte(`"sport"`), val)

			// Overwrite
			require.NoError(t, kv.Put("theme", []byte(`"eco"`)))
			val, err = kv.Get("theme")
			require.NoError(t, err)
			assert.Equal(t, []byte(`"eco"`), val)
		})
	}
}

func TestKV_Delete(t *testing.T) {
	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, kv.Put("compareCars", []byte(`[1,2]`)))
			require.NoError(t, kv.Delete("compareCars"))

			val, err := kv.Get("compareCars")
			require.NoError(t, err)
			assert.Nil(t, val)

			// Deleting an absent key is fine
			assert.NoError(t, kv.Delete("compareCars"))
		})
	}
}

func TestKV_ValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	for _, driver := range []Driver{DriverBolt, DriverSQLite} {
		t.Run(string(driver), func(t *testing.T) {
			path := filepath.Join(dir, string(driver)+".db")

			kv, err := Open(driver, path)
			require.NoError(t, err)
			require.NoError(t, kv.Put("carsData", []byte(`[{"id":1}]`)))
			require.NoError(t, kv.Close())

			kv, err = Open(driver, path)
			require.NoError(t, err)
			defer kv.Close()

			val, err := kv.Get("carsData")
			require.NoError(t, err)
			assert.Equal(t, []byte(`[{"id":1}]`), val)
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("redis", "")
	assert.Error(t, err)
}

func TestOpen_DefaultsToBolt(t *testing.T) {
	kv, err := Open("", filepath.Join(t.TempDir(), "default.db"))
	require.NoError(t, err)
	defer kv.Close()

	_, ok := kv.(*BoltStore)
	assert.True(t, ok)
}
