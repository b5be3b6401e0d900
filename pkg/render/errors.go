package render

import "errors"

// ErrCountriesNotConfigured is returned when a country input is rendered
// without a country table installed. Wire components/countries (or any other
// source) via WithCountries.
var ErrCountriesNotConfigured = errors.New("render: country input requires a country source; configure one with WithCountries")

// ErrNilRecord is returned by New when no record is bound.
var ErrNilRecord = errors.New("render: record is required")
