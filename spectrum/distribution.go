// Package spectrum implement sampling of initial particle energy from a
// spectral source. All energies are in MeV.
package spectrum

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Distribution is a probability distribution over initial particle energy.
// Implementations are immutable once built and therefore safe for concurrent
// sampling without external locking.
type Distribution interface {
	// Sample draws one energy using the caller-owned rng.
	Sample(rng *rand.Rand) float64
	// Name returns the source object name from the container.
	Name() string
}

// Tabulated is a binned spectral source. Edges holds len(Contents)+1 strictly
// increasing bin boundaries; Contents holds non-negative bin weights.
type Tabulated struct {
	ObjectName string    `bson:"name"`
	Edges      []float64 `bson:"edges"`
	Contents   []float64 `bson:"contents"`

	cum []float64
}

// Name implements Distribution.
func (t *Tabulated) Name() string { return t.ObjectName }

// Build validates the bins and materializes the cumulative weight table.
// It must be called once before the first Sample call.
func (t *Tabulated) Build() error {
	if len(t.Contents) == 0 {
		return fmt.Errorf("tabulated source %q has no bins", t.ObjectName)
	}
	if len(t.Edges) != len(t.Contents)+1 {
		return fmt.Errorf(
			"tabulated source %q: %d bin edges do not match %d bins",
			t.ObjectName, len(t.Edges), len(t.Contents),
		)
	}
	for i := 1; i < len(t.Edges); i++ {
		if t.Edges[i] <= t.Edges[i-1] {
			return fmt.Errorf(
				"tabulated source %q: bin edges are not strictly increasing at index %d",
				t.ObjectName, i,
			)
		}
	}

	cum := make([]float64, len(t.Contents))
	total := 0.0
	for i, w := range t.Contents {
		if w < 0 {
			return fmt.Errorf(
				"tabulated source %q: negative content in bin %d", t.ObjectName, i,
			)
		}
		total += w
		cum[i] = total
	}
	if total <= 0 {
		return fmt.Errorf("tabulated source %q is empty", t.ObjectName)
	}
	t.cum = cum
	return nil
}

// Sample draws a bin proportionally to its content, then a uniform energy
// within the bin.
func (t *Tabulated) Sample(rng *rand.Rand) float64 {
	total := t.cum[len(t.cum)-1]
	target := rng.Float64() * total
	idx := sort.SearchFloat64s(t.cum, target)
	if idx >= len(t.Contents) {
		idx = len(t.Contents) - 1
	}
	low, high := t.Edges[idx], t.Edges[idx+1]
	return low + rng.Float64()*(high-low)
}

// Supported closed-form spectrum formulas.
const (
	FormulaMaxwell = "maxwell" // Params: [kT]
	FormulaWatt    = "watt"    // Params: [a, b]
	FormulaFlat    = "flat"    // Params: none
)

const cdfTableSize = 1024

// ClosedForm is an analytic spectral source on [XMin, XMax], sampled through
// an inverse cumulative-distribution table built once at load time. Building
// the table eagerly is what makes concurrent Sample calls safe.
type ClosedForm struct {
	ObjectName string    `bson:"name"`
	Formula    string    `bson:"formula"`
	Params     []float64 `bson:"params"`
	XMin       float64   `bson:"xmin"`
	XMax       float64   `bson:"xmax"`

	inv []float64
}

// Name implements Distribution.
func (c *ClosedForm) Name() string { return c.ObjectName }

// BuildCDF materializes the inverse cumulative-distribution table. It must be
// called once, before workers start sampling; Store.LoadSpectralSource does
// so before returning.
func (c *ClosedForm) BuildCDF() error {
	density, err := c.density()
	if err != nil {
		return err
	}
	if c.XMax <= c.XMin {
		return fmt.Errorf(
			"closed-form source %q: invalid range [%g, %g]",
			c.ObjectName, c.XMin, c.XMax,
		)
	}

	// Trapezoid CDF on a uniform grid, inverted by linear interpolation.
	step := (c.XMax - c.XMin) / cdfTableSize
	cdf := make([]float64, cdfTableSize+1)
	prev := density(c.XMin)
	for i := 1; i <= cdfTableSize; i++ {
		x := c.XMin + float64(i)*step
		cur := density(x)
		if cur < 0 || math.IsNaN(cur) || math.IsInf(cur, 0) {
			return fmt.Errorf(
				"closed-form source %q: invalid density at %g", c.ObjectName, x,
			)
		}
		cdf[i] = cdf[i-1] + 0.5*(prev+cur)*step
		prev = cur
	}
	total := cdf[cdfTableSize]
	if total <= 0 {
		return fmt.Errorf(
			"closed-form source %q vanishes on [%g, %g]",
			c.ObjectName, c.XMin, c.XMax,
		)
	}

	inv := make([]float64, cdfTableSize+1)
	inv[0], inv[cdfTableSize] = c.XMin, c.XMax
	j := 0
	for i := 1; i < cdfTableSize; i++ {
		target := total * float64(i) / cdfTableSize
		for cdf[j+1] < target {
			j++
		}
		span := cdf[j+1] - cdf[j]
		frac := 0.0
		if span > 0 {
			frac = (target - cdf[j]) / span
		}
		inv[i] = c.XMin + (float64(j)+frac)*step
	}
	c.inv = inv
	return nil
}

// Sample draws one energy by inverse-transform sampling over the prebuilt
// table.
func (c *ClosedForm) Sample(rng *rand.Rand) float64 {
	u := rng.Float64() * cdfTableSize
	i := int(u)
	if i >= cdfTableSize {
		i = cdfTableSize - 1
	}
	frac := u - float64(i)
	return c.inv[i] + frac*(c.inv[i+1]-c.inv[i])
}

func (c *ClosedForm) density() (func(float64) float64, error) {
	switch c.Formula {
	case FormulaMaxwell:
		if len(c.Params) != 1 || c.Params[0] <= 0 {
			return nil, fmt.Errorf(
				"closed-form source %q: maxwell expects one positive parameter kT",
				c.ObjectName,
			)
		}
		kT := c.Params[0]
		return func(e float64) float64 {
			if e < 0 {
				return 0
			}
			return math.Sqrt(e) * math.Exp(-e/kT)
		}, nil
	case FormulaWatt:
		if len(c.Params) != 2 || c.Params[0] <= 0 || c.Params[1] <= 0 {
			return nil, fmt.Errorf(
				"closed-form source %q: watt expects two positive parameters a, b",
				c.ObjectName,
			)
		}
		a, b := c.Params[0], c.Params[1]
		return func(e float64) float64 {
			if e < 0 {
				return 0
			}
			return math.Exp(-e/a) * math.Sinh(math.Sqrt(b*e))
		}, nil
	case FormulaFlat:
		return func(float64) float64 { return 1 }, nil
	default:
		return nil, fmt.Errorf(
			"closed-form source %q: unknown formula %q", c.ObjectName, c.Formula,
		)
	}
}
