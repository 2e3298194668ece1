package geometry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aogaki/NBox/material"
	"github.com/aogaki/NBox/setup"
)

func storeFrom(t *testing.T, catalog, geometryDoc string) *setup.Store {
	t.Helper()
	dir := t.TempDir()
	detPath := filepath.Join(dir, "detectors.json")
	geoPath := filepath.Join(dir, "geometry.json")
	require.NoError(t, os.WriteFile(detPath, []byte(catalog), 0644))
	require.NoError(t, os.WriteFile(geoPath, []byte(geometryDoc), 0644))

	store := setup.NewStore()
	require.NoError(t, store.LoadDetectorCatalog(detPath))
	require.NoError(t, store.LoadGeometry(geoPath))
	return store
}

const testCatalog = `{"detectors": [
	{"name": "D", "Diameter": 25.4, "Length": 1000, "WallT": 0.8, "Pressure": 405.3}
]}`

func TestBuildTwoPlacements(t *testing.T) {
	store := storeFrom(t, testCatalog, `{
		"Box": {"x": 660, "y": 660, "z": 1000},
		"Placements": [
			{"name": "A1", "type": "D", "R": 59, "Phi": 0},
			{"name": "A2", "type": "D", "R": 59, "Phi": 180}
		]
	}`)
	require.NoError(t, store.Validate())

	cache := material.NewCache()
	world, placed, err := Build(store, cache)
	require.NoError(t, err)
	require.NotNil(t, world)
	require.Len(t, placed, 2)

	assert.Equal(t, 0, placed[0].DetectorID)
	assert.Equal(t, 1, placed[1].DetectorID)
	assert.Equal(t, "A1", placed[0].Name)
	assert.Equal(t, "A2", placed[1].Name)

	assert.InDelta(t, 59, placed[0].Position.X, 1e-9)
	assert.InDelta(t, 0, placed[0].Position.Y, 1e-9)
	assert.InDelta(t, -59, placed[1].Position.X, 1e-9)
	assert.InDelta(t, 0, placed[1].Position.Y, 1e-9)
	assert.Equal(t, 0.0, placed[0].Position.Z)

	// Both placements share the same type and pressure, hence one cached gas.
	assert.Equal(t, 1, cache.Len())
	assert.Same(t, placed[0].FillVolume.Gas, placed[1].FillVolume.Gas)
}

func TestBuildVolumeTreeNesting(t *testing.T) {
	store := storeFrom(t, testCatalog, `{
		"Box": {"x": 660, "y": 660, "z": 1000},
		"Placements": [{"name": "A1", "type": "D", "R": 59, "Phi": 0}]
	}`)

	world, placed, err := Build(store, material.NewCache())
	require.NoError(t, err)

	require.Len(t, world.Children, 1)
	moderator := world.Children[0]
	assert.Equal(t, "Moderator", moderator.Name)
	assert.Equal(t, MaterialPolyethylene, moderator.Material)
	assert.Equal(t, BoxShape{Size: Vec3D{X: 660, Y: 660, Z: 1000}}, moderator.Shape)

	require.Len(t, moderator.Children, 1)
	shell := moderator.Children[0]
	assert.Equal(t, "A1_shell", shell.Name)
	assert.Equal(t, MaterialAluminum, shell.Material)
	assert.Equal(t, TubeShape{Radius: 12.7, Length: 1000}, shell.Shape)

	require.Len(t, shell.Children, 1)
	fill := shell.Children[0]
	assert.Equal(t, "A1_fill", fill.Name)
	assert.Equal(t, MaterialHe3Gas, fill.Material)
	assert.Equal(t, TubeShape{Radius: 12.7 - 0.8, Length: 1000 - 1.6}, fill.Shape)
	require.NotNil(t, fill.Gas)
	assert.Equal(t, 405.3, fill.Gas.PressureKPa)

	assert.Same(t, fill, placed[0].FillVolume)
}

func TestBuildDetectorIDsFollowPlacementOrder(t *testing.T) {
	store := storeFrom(t, `{"detectors": [
		{"name": "D1", "Diameter": 25.4, "Length": 1000, "WallT": 0.8, "Pressure": 405.3},
		{"name": "D2", "Diameter": 50.8, "Length": 1000, "WallT": 1.2, "Pressure": 202.6}
	]}`, `{
		"Box": {"x": 660, "y": 660, "z": 1000},
		"Placements": [
			{"name": "A", "type": "D2", "R": 30, "Phi": 0},
			{"name": "B", "type": "D1", "R": 30, "Phi": 120},
			{"name": "C", "type": "D2", "R": 30, "Phi": 240}
		]
	}`)

	_, placed, err := Build(store, material.NewCache())
	require.NoError(t, err)
	require.Len(t, placed, 3)
	for i, instance := range placed {
		assert.Equal(t, i, instance.DetectorID)
		assert.Equal(t, i, instance.PlacementIndex)
	}
}

func TestBuildSkipsUnknownTypeWithoutAborting(t *testing.T) {
	// Bypasses Validate on purpose: the builder must skip the unknown type
	// and still place the rest.
	store := storeFrom(t, testCatalog, `{
		"Box": {"x": 660, "y": 660, "z": 1000},
		"Placements": [
			{"name": "A1", "type": "ghost", "R": 59, "Phi": 0},
			{"name": "A2", "type": "D", "R": 59, "Phi": 180}
		]
	}`)

	_, placed, err := Build(store, material.NewCache())
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.Equal(t, "A2", placed[0].Name)
	// The surviving placement keeps its placement-list identity.
	assert.Equal(t, 1, placed[0].DetectorID)
}

func TestBuildRejectsWallSwallowingFill(t *testing.T) {
	store := storeFrom(t, `{"detectors": [
		{"name": "D", "Diameter": 10, "Length": 100, "WallT": 5, "Pressure": 101.3}
	]}`, `{
		"Box": {"x": 660, "y": 660, "z": 1000},
		"Placements": [{"name": "A1", "type": "D", "R": 59, "Phi": 0}]
	}`)

	_, _, err := Build(store, material.NewCache())
	assert.Error(t, err)
}

func TestBuildEmptyPlacements(t *testing.T) {
	store := storeFrom(t, testCatalog, `{
		"Box": {"x": 660, "y": 660, "z": 1000},
		"Placements": []
	}`)

	world, placed, err := Build(store, material.NewCache())
	require.NoError(t, err)
	assert.NotNil(t, world)
	assert.Empty(t, placed)
}
