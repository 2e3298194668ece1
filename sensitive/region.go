// Package sensitive implement per-placement energy-deposit scoring. Every
// worker owns its own regions; nothing here is shared across workers, which
// is what keeps per-event scoring lock-free.
package sensitive

import "github.com/aogaki/NBox/geometry"

// Hit accumulates the energy deposited in one detector during one event.
// Energy is in MeV, time in ns. Position and time are latched by the first
// nonzero deposit and never overridden by later deposits.
type Hit struct {
	DetectorID   int
	DetectorName string
	Edep         float64
	Time         float64
	Position     geometry.Point

	touched bool
}

// AddDeposit adds one step's energy deposit. A zero deposit is ignored.
func (h *Hit) AddDeposit(edep float64, position geometry.Point, time float64) {
	if edep == 0 {
		return
	}
	h.Edep += edep
	if !h.touched {
		h.Position = position
		h.Time = time
		h.touched = true
	}
}

// Region is the scoring surface of one placed detector for one worker.
type Region struct {
	detectorID   int
	detectorName string
	current      Hit
}

// NewRegion binds a scoring region to a placed instance.
func NewRegion(instance geometry.PlacedInstance) *Region {
	r := &Region{
		detectorID:   instance.DetectorID,
		detectorName: instance.Name,
	}
	r.BeginEvent()
	return r
}

// DetectorID ...
func (r *Region) DetectorID() int {
	return r.detectorID
}

// DetectorName ...
func (r *Region) DetectorName() string {
	return r.detectorName
}

// BeginEvent arms the region with one fresh hit, pre-tagged with the
// detector's identity.
func (r *Region) BeginEvent() {
	r.current = Hit{DetectorID: r.detectorID, DetectorName: r.detectorName}
}

// AddDeposit scores one step's energy deposit into the current event's hit.
func (r *Region) AddDeposit(edep float64, position geometry.Point, time float64) {
	r.current.AddDeposit(edep, position, time)
}

// EndEvent returns the event's hit when any energy was deposited. A
// zero-energy hit is discarded silently.
func (r *Region) EndEvent() (Hit, bool) {
	if r.current.Edep <= 0 {
		return Hit{}, false
	}
	return r.current, true
}
