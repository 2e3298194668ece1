package sensitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aogaki/NBox/geometry"
)

func testRegion() *Region {
	return NewRegion(geometry.PlacedInstance{
		DetectorID: 3,
		Name:       "A1",
	})
}

func TestFirstTouchLatchesPositionAndTime(t *testing.T) {
	region := testRegion()
	region.BeginEvent()

	first := geometry.Point{X: 1, Y: 2, Z: 3}
	second := geometry.Point{X: 9, Y: 9, Z: 9}
	region.AddDeposit(0.5, first, 10)
	region.AddDeposit(0.25, second, 20)

	hit, ok := region.EndEvent()
	require.True(t, ok)
	assert.Equal(t, 3, hit.DetectorID)
	assert.Equal(t, "A1", hit.DetectorName)
	assert.InDelta(t, 0.75, hit.Edep, 1e-12)
	assert.Equal(t, 10.0, hit.Time)
	assert.Equal(t, first, hit.Position)
}

func TestZeroDepositEmitsNoHit(t *testing.T) {
	region := testRegion()
	region.BeginEvent()

	region.AddDeposit(0, geometry.Point{X: 1}, 5)

	_, ok := region.EndEvent()
	assert.False(t, ok)
}

func TestZeroDepositDoesNotLatch(t *testing.T) {
	region := testRegion()
	region.BeginEvent()

	// A zero deposit at t=5 must not claim the first-touch slot.
	region.AddDeposit(0, geometry.Point{X: 1}, 5)
	touch := geometry.Point{X: 2, Y: 0, Z: 0}
	region.AddDeposit(0.1, touch, 7)

	hit, ok := region.EndEvent()
	require.True(t, ok)
	assert.Equal(t, 7.0, hit.Time)
	assert.Equal(t, touch, hit.Position)
}

func TestBeginEventClearsAccumulation(t *testing.T) {
	region := testRegion()
	region.BeginEvent()
	region.AddDeposit(0.5, geometry.Point{X: 1}, 10)
	_, ok := region.EndEvent()
	require.True(t, ok)

	region.BeginEvent()
	_, ok = region.EndEvent()
	assert.False(t, ok)

	region.BeginEvent()
	region.AddDeposit(0.125, geometry.Point{X: 4}, 40)
	hit, ok := region.EndEvent()
	require.True(t, ok)
	assert.InDelta(t, 0.125, hit.Edep, 1e-12)
	assert.Equal(t, 40.0, hit.Time)
}

func TestEnergyOnlyIncreasesWithinEvent(t *testing.T) {
	region := testRegion()
	region.BeginEvent()

	total := 0.0
	for i := 0; i < 10; i++ {
		region.AddDeposit(0.01, geometry.Point{}, float64(i))
		total += 0.01
	}

	hit, ok := region.EndEvent()
	require.True(t, ok)
	assert.InDelta(t, total, hit.Edep, 1e-12)
	assert.Equal(t, 0.0, hit.Time)
}
