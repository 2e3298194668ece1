// Package geometry builds the placed-volume tree from a validated
// configuration store.
package geometry

import (
	"fmt"
	"math"

	"github.com/aogaki/NBox/config"
	"github.com/aogaki/NBox/material"
	"github.com/aogaki/NBox/setup"
)

var log = config.NamedLogger("geometry")

// WorldExtent is the fixed world volume extent in mm, large enough for any
// moderator configuration.
const WorldExtent = 5000.0

// Build constructs world -> moderator box -> per-placement shell and fill
// volumes, in placement-list order. Detector IDs are assigned densely from
// the placement-list index. Placement positions are the polar-to-Cartesian
// conversion of (R, Phi) in the moderator mid-plane.
//
// A placement with an unknown detector type is skipped with a warning. The
// path is unreachable when Store.Validate ran first, but a skipped placement
// must not abort construction of the others.
func Build(store *setup.Store, cache *material.Cache) (*Volume, []PlacedInstance, error) {
	box := store.Box()

	world := &Volume{
		Name:     "World",
		Material: MaterialAir,
		Shape:    BoxShape{Size: Vec3D{X: WorldExtent, Y: WorldExtent, Z: WorldExtent}},
	}
	moderator := &Volume{
		Name:     "Moderator",
		Material: MaterialPolyethylene,
		Shape:    BoxShape{Size: Vec3D{X: box.X, Y: box.Y, Z: box.Z}},
	}
	world.Children = append(world.Children, moderator)

	placements := store.Placements()
	placed := make([]PlacedInstance, 0, len(placements))
	for i, pl := range placements {
		det, ok := store.DetectorTypeByName(pl.TypeName)
		if !ok {
			log.Warnf("Skipping placement %q: unknown detector type %q", pl.Name, pl.TypeName)
			continue
		}

		fillRadius := det.OuterDiameter/2 - det.WallThickness
		fillLength := det.ActiveLength - 2*det.WallThickness
		if fillRadius <= 0 || fillLength <= 0 {
			return nil, nil, fmt.Errorf(
				"placement %q: wall thickness %g mm leaves no fill volume in type %q",
				pl.Name, det.WallThickness, det.Name,
			)
		}

		phi := pl.Phi * math.Pi / 180
		position := Point{X: pl.R * math.Cos(phi), Y: pl.R * math.Sin(phi), Z: 0}

		shell := &Volume{
			Name:     pl.Name + "_shell",
			Material: MaterialAluminum,
			Shape:    TubeShape{Radius: det.OuterDiameter / 2, Length: det.ActiveLength},
			Position: position,
		}
		fill := &Volume{
			Name:     pl.Name + "_fill",
			Material: MaterialHe3Gas,
			Shape:    TubeShape{Radius: fillRadius, Length: fillLength},
			Gas:      cache.GetOrCreate(det.Name, det.FillPressure),
		}
		shell.Children = append(shell.Children, fill)
		moderator.Children = append(moderator.Children, shell)

		placed = append(placed, PlacedInstance{
			PlacementIndex: i,
			DetectorID:     i,
			Name:           pl.Name,
			TypeName:       det.Name,
			Position:       position,
			FillVolume:     fill,
		})
	}

	log.Infof(
		"Built geometry: %d placed detector(s) in a (%g, %g, %g) mm moderator, %d fill material(s)",
		len(placed), box.X, box.Y, box.Z, cache.Len(),
	)
	return world, placed, nil
}
