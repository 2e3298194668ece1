package setup

import (
	"encoding/json"
	"fmt"
	"os"
)

// DetectorType is a reusable specification of detector-tube dimensions and
// fill pressure. Lengths are in mm, pressure in kPa. Immutable once loaded.
type DetectorType struct {
	Name          string  `json:"name"`
	OuterDiameter float64 `json:"Diameter"`
	ActiveLength  float64 `json:"Length"`
	WallThickness float64 `json:"WallT"`
	FillPressure  float64 `json:"Pressure"`
}

type rawDetectorType struct {
	Name     *string  `json:"name"`
	Diameter *float64 `json:"Diameter"`
	Length   *float64 `json:"Length"`
	WallT    *float64 `json:"WallT"`
	Pressure *float64 `json:"Pressure"`
}

type rawDetectorCatalog struct {
	Detectors *[]rawDetectorType `json:"detectors"`
}

// LoadDetectorCatalog parses the detector-type catalog document at path.
// A repeated call replaces the previously loaded catalog.
func (s *Store) LoadDetectorCatalog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot open detector file: %w", err)
	}

	var raw rawDetectorCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return ParseError{File: path, Err: err}
	}
	if raw.Detectors == nil {
		return MissingFieldError{File: path, Field: "detectors"}
	}

	types := make([]DetectorType, 0, len(*raw.Detectors))
	for i, det := range *raw.Detectors {
		entry := fmt.Sprintf("#%d", i)
		if det.Name != nil {
			entry = *det.Name
		}
		switch {
		case det.Name == nil:
			return MissingFieldError{File: path, Entry: entry, Field: "name"}
		case det.Diameter == nil:
			return MissingFieldError{File: path, Entry: entry, Field: "Diameter"}
		case det.Length == nil:
			return MissingFieldError{File: path, Entry: entry, Field: "Length"}
		case det.WallT == nil:
			return MissingFieldError{File: path, Entry: entry, Field: "WallT"}
		case det.Pressure == nil:
			return MissingFieldError{File: path, Entry: entry, Field: "Pressure"}
		}
		types = append(types, DetectorType{
			Name:          *det.Name,
			OuterDiameter: *det.Diameter,
			ActiveLength:  *det.Length,
			WallThickness: *det.WallT,
			FillPressure:  *det.Pressure,
		})
	}

	s.detectorTypes = types
	s.detectorLoaded = true
	log.Infof("Loaded %d detector type(s) from %s", len(types), path)
	return nil
}
