package grib2

import "fmt"

// ParameterKey identifies a physical parameter by the GRIB2 code triple
// (discipline from the indicator section, category and number from the
// product definition section).
type ParameterKey struct {
	Discipline uint8
	Category   uint8
	Number     uint8
}

// String returns the triple in d-c-n form, e.g. "209-3-200".
func (k ParameterKey) String() string {
	return fmt.Sprintf("%d-%d-%d", k.Discipline, k.Category, k.Number)
}

// Parameter describes a decoded physical parameter.
type Parameter struct {
	Name  string
	Units string
}

// ParameterTable maps code triples to parameter descriptions.
//
// Lookups against a nil table always miss, which downgrades every
// parameter to its Unknown(d-c-n) form.
type ParameterTable map[ParameterKey]Parameter

// Lookup resolves a code triple. When the table has no entry the returned
// Parameter carries the Unknown(d-c-n) sentinel name, empty units, and
// ok is false.
func (t ParameterTable) Lookup(key ParameterKey) (Parameter, bool) {
	if p, ok := t[key]; ok {
		return p, true
	}
	return Parameter{Name: fmt.Sprintf("Unknown(%s)", key)}, false
}

// DefaultParameterTable covers the WMO master-table entries and the JMA
// local-table entries (discipline 192 and above is locally defined) seen in
// the nowcast and landslide mesh feeds.
func DefaultParameterTable() ParameterTable {
	return ParameterTable{
		{Discipline: 0, Category: 0, Number: 0}:   {Name: "Temperature", Units: "K"},
		{Discipline: 0, Category: 1, Number: 8}:   {Name: "TotalPrecipitation", Units: "kg m-2"},
		{Discipline: 0, Category: 1, Number: 52}:  {Name: "TotalPrecipitationRate", Units: "kg m-2 s-1"},
		{Discipline: 0, Category: 1, Number: 201}: {Name: "PrecipitationIntensity", Units: "mm h-1"},
		{Discipline: 209, Category: 3, Number: 3}: {Name: "LandslideRiskLevel", Units: "level"},
	}
}
