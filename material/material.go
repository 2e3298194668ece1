// Package material derives and caches pressure-dependent He-3 fill gases.
package material

import (
	"github.com/aogaki/NBox/config"
)

var log = config.NamedLogger("material")

// He-3 fill gas and ideal-gas constants.
const (
	// He3MolarMass is the He-3 molar mass in g/mol.
	He3MolarMass = 3.016029
	// GasConstant is the ideal gas constant in J/(mol*K).
	GasConstant = 8.314
	// RoomTemperature is the fill gas temperature in K.
	RoomTemperature = 293.15
	// KPaToPascal converts fill pressures to Pa.
	KPaToPascal = 1000.0

	// He3ReactionQValueKeV is the Q-value of the 3He(n,p)3H capture
	// reaction, the full-absorption peak position in the deposit spectrum.
	He3ReactionQValueKeV = 764.0
)

// Gas is a derived fill material, shared by every placement with the same
// (type, pressure) key. Immutable once created; lives for process lifetime.
type Gas struct {
	TypeName    string
	PressureKPa float64
	Density     float64 // g/cm3
	MolarMass   float64 // g/mol
}

type gasKey struct {
	typeName    string
	pressureKPa float64
}

// Cache derives one Gas per distinct (type, pressure) pair. The key includes
// the type name so that two types at the same pressure never collide. There
// is no eviction: the cache is bounded by the distinct pairs of one
// configuration. A Cache is filled during the single-threaded geometry build
// and read-only once workers start.
type Cache struct {
	gases map[gasKey]*Gas
}

// NewCache constructor.
func NewCache() *Cache {
	return &Cache{gases: map[gasKey]*Gas{}}
}

// GetOrCreate returns the shared fill gas for the given detector type and
// pressure, deriving it on first use.
func (c *Cache) GetOrCreate(typeName string, pressureKPa float64) *Gas {
	key := gasKey{typeName: typeName, pressureKPa: pressureKPa}
	if gas, ok := c.gases[key]; ok {
		return gas
	}

	gas := &Gas{
		TypeName:    typeName,
		PressureKPa: pressureKPa,
		Density:     Density(pressureKPa),
		MolarMass:   He3MolarMass,
	}
	c.gases[key] = gas
	log.Debugf(
		"Created He-3 gas for type %q at %g kPa: density %.6g g/cm3",
		typeName, pressureKPa, gas.Density,
	)
	return gas
}

// Len reports the number of distinct cached materials.
func (c *Cache) Len() int {
	return len(c.gases)
}

// Density returns the He-3 density in g/cm3 at the given pressure and room
// temperature, by the ideal-gas law with no real-gas correction.
func Density(pressureKPa float64) float64 {
	molPerM3 := pressureKPa * KPaToPascal / (GasConstant * RoomTemperature)
	return molPerM3 * He3MolarMass * 1e-6
}
