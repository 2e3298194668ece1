package setup

import (
	"encoding/json"
	"fmt"
	"os"
)

// BoxGeometry is the moderator box extent in mm. Immutable once loaded.
type BoxGeometry struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Placement is a named instance of a detector type at a polar in-plane
// position: R in mm, Phi in degrees. Immutable once loaded.
type Placement struct {
	Name     string  `json:"name"`
	TypeName string  `json:"type"`
	R        float64 `json:"R"`
	Phi      float64 `json:"Phi"`
}

type rawBox struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`
}

type rawPlacement struct {
	Name *string  `json:"name"`
	Type *string  `json:"type"`
	R    *float64 `json:"R"`
	Phi  *float64 `json:"Phi"`
}

type rawGeometry struct {
	Box        *rawBox         `json:"Box"`
	Placements *[]rawPlacement `json:"Placements"`
}

// LoadGeometry parses the box-and-placement geometry document at path.
// A repeated call replaces the previously loaded geometry.
func (s *Store) LoadGeometry(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot open geometry file: %w", err)
	}

	var raw rawGeometry
	if err := json.Unmarshal(data, &raw); err != nil {
		return ParseError{File: path, Err: err}
	}
	if raw.Box == nil {
		return MissingSectionError{File: path, Section: "Box"}
	}
	if raw.Placements == nil {
		return MissingSectionError{File: path, Section: "Placements"}
	}

	switch {
	case raw.Box.X == nil:
		return MissingFieldError{File: path, Entry: "Box", Field: "x"}
	case raw.Box.Y == nil:
		return MissingFieldError{File: path, Entry: "Box", Field: "y"}
	case raw.Box.Z == nil:
		return MissingFieldError{File: path, Entry: "Box", Field: "z"}
	}
	box := BoxGeometry{X: *raw.Box.X, Y: *raw.Box.Y, Z: *raw.Box.Z}

	placements := make([]Placement, 0, len(*raw.Placements))
	for i, pl := range *raw.Placements {
		entry := fmt.Sprintf("#%d", i)
		if pl.Name != nil {
			entry = *pl.Name
		}
		switch {
		case pl.Name == nil:
			return MissingFieldError{File: path, Entry: entry, Field: "name"}
		case pl.Type == nil:
			return MissingFieldError{File: path, Entry: entry, Field: "type"}
		case pl.R == nil:
			return MissingFieldError{File: path, Entry: entry, Field: "R"}
		case pl.Phi == nil:
			return MissingFieldError{File: path, Entry: entry, Field: "Phi"}
		}
		placements = append(placements, Placement{
			Name:     *pl.Name,
			TypeName: *pl.Type,
			R:        *pl.R,
			Phi:      *pl.Phi,
		})
	}

	s.box = box
	s.placements = placements
	s.geometryLoaded = true
	log.Infof("Loaded box geometry (%g, %g, %g) mm from %s", box.X, box.Y, box.Z, path)
	log.Infof("Loaded %d detector placement(s)", len(placements))
	return nil
}
