// Package temporal splits a date/time attribute into the per-unit sub-inputs
// a composite date/datetime/time control renders. Field positions follow the
// "attr(1i)".."attr(6i)" multiparameter convention so the host framework can
// reassemble a value on submission.
package temporal

import (
	"strings"
	"time"
)

// Unit is one temporal component of a composite input.
type Unit string

const (
	UnitYear   Unit = "year"
	UnitMonth  Unit = "month"
	UnitDay    Unit = "day"
	UnitHour   Unit = "hour"
	UnitMinute Unit = "minute"
	UnitSecond Unit = "second"
)

var positions = map[Unit]int{
	UnitYear:   1,
	UnitMonth:  2,
	UnitDay:    3,
	UnitHour:   4,
	UnitMinute: 5,
	UnitSecond: 6,
}

// Position returns the unit's 1-based multiparameter position (year=1 ..
// second=6), or 0 for an unknown unit.
func Position(u Unit) int {
	return positions[u]
}

// DateUnits returns the locale-ordered date units. The order argument comes
// from the locale (i18n key "date.order"); unrecognized or missing entries
// fall back to year, month, day. Units outside the date segment are ignored.
func DateUnits(order []Unit) []Unit {
	out := make([]Unit, 0, 3)
	seen := make(map[Unit]struct{}, 3)
	for _, unit := range order {
		switch unit {
		case UnitYear, UnitMonth, UnitDay:
			if _, dup := seen[unit]; dup {
				continue
			}
			seen[unit] = struct{}{}
			out = append(out, unit)
		}
	}
	for _, unit := range []Unit{UnitYear, UnitMonth, UnitDay} {
		if _, ok := seen[unit]; !ok {
			out = append(out, unit)
		}
	}
	return out
}

// TimeUnits returns hour and minute, plus second when requested.
func TimeUnits(includeSeconds bool) []Unit {
	units := []Unit{UnitHour, UnitMinute}
	if includeSeconds {
		units = append(units, UnitSecond)
	}
	return units
}

// ParseUnits converts a comma-separated locale order string ("day,month,year")
// into units, skipping anything unrecognized.
func ParseUnits(raw string) []Unit {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]Unit, 0, len(parts))
	for _, part := range parts {
		unit := Unit(strings.ToLower(strings.TrimSpace(part)))
		if _, ok := positions[unit]; ok {
			out = append(out, unit)
		}
	}
	return out
}

// Part is one sub-input of a decomposed value. Hidden parts carry the value
// to submit; visible parts render as selectors.
type Part struct {
	Unit   Unit
	Hidden bool
	Value  int
}

// Decompose walks the supplied units against the current value, honouring
// per-unit discard flags. Discarded date units emit a hidden part carrying the
// value's unit (or 1 when the value is absent) and processing continues with
// the remaining units.
//
// NOTE: a discarded unit in the time segment (hour/minute/second) ends the
// sequence outright, with no hidden part and no later time units, while date
// units fall through. Consumers reassemble the multiparameter field set on
// submit; see DESIGN.md ("temporal discard asymmetry") before changing it.
func Decompose(value *time.Time, units []Unit, discard map[Unit]bool) []Part {
	parts := make([]Part, 0, len(units))
	for _, unit := range units {
		if discard[unit] {
			if timeUnit(unit) {
				break
			}
			hidden := Part{Unit: unit, Hidden: true, Value: 1}
			if value != nil {
				hidden.Value = unitValue(value, unit)
			}
			parts = append(parts, hidden)
			continue
		}
		part := Part{Unit: unit}
		if value != nil {
			part.Value = unitValue(value, unit)
		}
		parts = append(parts, part)
	}
	return parts
}

func timeUnit(unit Unit) bool {
	switch unit {
	case UnitHour, UnitMinute, UnitSecond:
		return true
	default:
		return false
	}
}

func unitValue(value *time.Time, unit Unit) int {
	switch unit {
	case UnitYear:
		return value.Year()
	case UnitMonth:
		return int(value.Month())
	case UnitDay:
		return value.Day()
	case UnitHour:
		return value.Hour()
	case UnitMinute:
		return value.Minute()
	case UnitSecond:
		return value.Second()
	default:
		return 0
	}
}
