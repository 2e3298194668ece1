package geometry

import "github.com/aogaki/NBox/material"

// Construction material names.
const (
	MaterialAir          = "air"
	MaterialPolyethylene = "polyethylene"
	MaterialAluminum     = "aluminum"
	MaterialHe3Gas       = "He3"
)

// BoxShape is a rectangular solid of full extents Size.
type BoxShape struct {
	Size Vec3D `json:"size"`
}

// TubeShape is a cylinder along the local Z axis, of full length Length.
type TubeShape struct {
	Radius float64 `json:"radius"`
	Length float64 `json:"length"`
}

// Volume is one node of the placed-volume tree. Position is relative to the
// parent volume's center. Shape is one of BoxShape or TubeShape.
type Volume struct {
	Name     string
	Material string
	Shape    interface{}
	Position Point
	Children []*Volume

	// Gas is the derived fill material; nil except for detector fill
	// volumes.
	Gas *material.Gas
}

// PlacedInstance joins one placement to its fill volume once the geometry is
// built. DetectorID is the placement-list index, the dense join key between
// sensitivity assignment and output labeling. FillVolume is the handle a
// second, per-worker pass uses to mark the region sensitive.
type PlacedInstance struct {
	PlacementIndex int
	DetectorID     int
	Name           string
	TypeName       string
	Position       Point
	FillVolume     *Volume
}
