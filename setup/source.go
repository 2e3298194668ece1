package setup

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/mgo.v2/bson"

	"github.com/aogaki/NBox/spectrum"
	"github.com/aogaki/NBox/utils"
)

var sourceType = struct {
	tabulated  string
	closedForm string
}{
	tabulated:  "tabulated",
	closedForm: "closedform",
}

var sourceTypeMapping = map[string]func() interface{}{
	sourceType.tabulated:  func() interface{} { return &spectrum.Tabulated{} },
	sourceType.closedForm: func() interface{} { return &spectrum.ClosedForm{} },
}

type rawSourceContainer struct {
	Objects []bson.Raw `bson:"objects"`
}

// LoadSpectralSource opens the binary spectral container at path and loads
// its single source object. Container entries of other types are ignored.
// The selected object is decoded into owned values, detached from the
// container buffer, and a closed-form source has its sampling table built
// eagerly here so that concurrent sampling never races on a first-use build.
func (s *Store) LoadSpectralSource(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot open spectral source file: %w", err)
	}

	var raw rawSourceContainer
	if err := bson.Unmarshal(data, &raw); err != nil {
		return ParseError{File: path, Err: err}
	}

	var found []spectrum.Distribution
	for _, obj := range raw.Objects {
		value, err := utils.TypeBasedUnmarshallBSON(obj, sourceTypeMapping)
		if errors.Is(err, utils.ErrUnknownType) {
			continue
		}
		if err != nil {
			return ParseError{File: path, Err: err}
		}
		found = append(found, value.(spectrum.Distribution))
	}

	if len(found) == 0 {
		return SourceNotFoundError{File: path}
	}
	if len(found) > 1 {
		return AmbiguousSourceError{File: path, Count: len(found)}
	}

	source := found[0]
	switch d := source.(type) {
	case *spectrum.Tabulated:
		if err := d.Build(); err != nil {
			return ParseError{File: path, Err: err}
		}
		log.Infof("Loaded tabulated spectral source %q (%d bins)", d.Name(), len(d.Contents))
	case *spectrum.ClosedForm:
		if err := d.BuildCDF(); err != nil {
			return ParseError{File: path, Err: err}
		}
		log.Infof("Loaded closed-form spectral source %q [%g, %g] MeV", d.Name(), d.XMin, d.XMax)
	}

	s.source = source
	s.sourceName = source.Name()
	s.sourceLoaded = true
	return nil
}
