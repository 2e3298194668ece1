package spectrum

import (
	"math/rand"
	"sync"
	"time"
)

// ThermalEnergyMeV is the hardcoded last-resort primary energy: a thermal
// neutron at room temperature (0.025 eV).
const ThermalEnergyMeV = 2.5e-8

// Sampler wraps at most one spectral source and exposes thread-safe primary
// energy sampling. When no source is configured it falls back to the fixed
// energy, then to the thermal default.
type Sampler struct {
	source      Distribution
	fixedEnergy float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler wraps source, which may be nil. fixedEnergyMeV of zero means no
// fixed energy is configured.
func NewSampler(source Distribution, fixedEnergyMeV float64) *Sampler {
	return &Sampler{
		source:      source,
		fixedEnergy: fixedEnergyMeV,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Sample draws one primary energy in MeV. It is safe for concurrent use: the
// wrapped source is immutable after load, so callers passing their own rng
// take no lock at all. A nil rng uses the sampler's internal locked source.
func (s *Sampler) Sample(rng *rand.Rand) float64 {
	switch {
	case s.source != nil:
		if rng != nil {
			return s.source.Sample(rng)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.source.Sample(s.rng)
	case s.fixedEnergy > 0:
		return s.fixedEnergy
	default:
		return ThermalEnergyMeV
	}
}

// Source returns the wrapped distribution, nil when none is configured.
func (s *Sampler) Source() Distribution { return s.source }
