package setup

import "fmt"

// ParseError reports a syntactically malformed configuration document.
type ParseError struct {
	File string
	Err  error
}

// Error ...
func (e ParseError) Error() string {
	return fmt.Sprintf("%s: malformed document: %v", e.File, e.Err)
}

// Unwrap ...
func (e ParseError) Unwrap() error { return e.Err }

// MissingFieldError reports a required field absent from a document entry.
// Entry is empty when the field is missing at the top level.
type MissingFieldError struct {
	File  string
	Entry string
	Field string
}

// Error ...
func (e MissingFieldError) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("%s: missing required field %q", e.File, e.Field)
	}
	return fmt.Sprintf("%s: entry %q: missing required field %q", e.File, e.Entry, e.Field)
}

// MissingSectionError reports a structurally incomplete geometry document.
type MissingSectionError struct {
	File    string
	Section string
}

// Error ...
func (e MissingSectionError) Error() string {
	return fmt.Sprintf("%s: missing required section %q", e.File, e.Section)
}

// DanglingReferenceError reports a placement referencing a detector type
// absent from the catalog. It is detectable only after both the catalog and
// the geometry documents are loaded, hence the separate Validate phase.
type DanglingReferenceError struct {
	Placement string
	TypeName  string
}

// Error ...
func (e DanglingReferenceError) Error() string {
	return fmt.Sprintf(
		"placement %q references unknown detector type %q", e.Placement, e.TypeName,
	)
}

// SourceNotFoundError reports a spectral container holding no source object.
type SourceNotFoundError struct {
	File string
}

// Error ...
func (e SourceNotFoundError) Error() string {
	return fmt.Sprintf("%s: no spectral source object found", e.File)
}

// AmbiguousSourceError reports a spectral container holding more than one
// source object.
type AmbiguousSourceError struct {
	File  string
	Count int
}

// Error ...
func (e AmbiguousSourceError) Error() string {
	return fmt.Sprintf(
		"%s: %d spectral source objects found, exactly one is required", e.File, e.Count,
	)
}
