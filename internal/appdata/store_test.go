package appdata_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/appdata"
	"github.com/atelierhq/atelier/internal/catalog"
)

func newStore(t *testing.T) (*appdata.FileStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshot.json")

	return appdata.NewFileStore(path), path
}

func TestFileStore_LoadMissingSnapshot(t *testing.T) {
	store, _ := newStore(t)

	data := store.Load()
	assert.Equal(t, appdata.Seed(), data)
	assert.Equal(t, "Atelier", data.Settings.BrandName)
	assert.Empty(t, data.Materials)
}

func TestFileStore_LoadCorruptSnapshot(t *testing.T) {
	store, path := newStore(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Equal(t, appdata.Seed(), store.Load())
}

func TestFileStore_SaveLoadRoundtrip(t *testing.T) {
	store, _ := newStore(t)

	data := appdata.Seed()
	data.Materials = []catalog.Material{
		{ID: uuid.New(), Name: "Cotton", Unit: catalog.UnitLength, CostPerUnit: 10, WidthCM: 150},
	}
	data.Settings.BrandName = "Mar y Sol"

	require.NoError(t, store.Save(data))

	got := store.Load()
	assert.Equal(t, data.Materials, got.Materials)
	assert.Equal(t, "Mar y Sol", got.Settings.BrandName)
}

func TestFileStore_ApplyPersistsTransform(t *testing.T) {
	store, _ := newStore(t)

	next, err := store.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		d.Settings.DefaultMarginPercent = 45
		return d, nil
	})
	require.NoError(t, err)
	assert.InDelta(t, 45, next.Settings.DefaultMarginPercent, 1e-9)

	assert.InDelta(t, 45, store.Load().Settings.DefaultMarginPercent, 1e-9)
}

func TestFileStore_ApplyErrorLeavesSnapshotUntouched(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.Save(appdata.Seed()))

	boom := errors.New("boom")

	_, err := store.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		d.Settings.BrandName = "never persisted"
		return d, boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, "Atelier", store.Load().Settings.BrandName)
}
