package input

import "strings"

// Kind is the closed enumeration of input kinds the renderer dispatches on.
// Resolution picks exactly one Kind per render call and the value is immutable
// for the duration of rendering.
type Kind string

const (
	KindString     Kind = "string"
	KindNumeric    Kind = "numeric"
	KindPassword   Kind = "password"
	KindText       Kind = "text"
	KindFile       Kind = "file"
	KindSelect     Kind = "select"
	KindRadio      Kind = "radio"
	KindCheckBoxes Kind = "check_boxes"
	KindBoolean    Kind = "boolean"
	KindDate       Kind = "date"
	KindDateTime   Kind = "datetime"
	KindTime       Kind = "time"
	KindTimeZone   Kind = "time_zone"
	KindCountry    Kind = "country"
	KindHidden     Kind = "hidden"
)

// Kinds lists every built-in kind. The renderer uses it to verify its
// strategy table stays exhaustive.
func Kinds() []Kind {
	return []Kind{
		KindString, KindNumeric, KindPassword, KindText, KindFile,
		KindSelect, KindRadio, KindCheckBoxes, KindBoolean,
		KindDate, KindDateTime, KindTime,
		KindTimeZone, KindCountry, KindHidden,
	}
}

// ParseKind normalizes a caller-supplied kind string. Unknown values return
// false so callers can fall back to resolution.
func ParseKind(raw string) (Kind, bool) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Kinds() {
		if kind == known {
			return kind, true
		}
	}
	return "", false
}

// Selection reports whether the kind renders an option list.
func (k Kind) Selection() bool {
	switch k {
	case KindSelect, KindRadio, KindCheckBoxes, KindTimeZone, KindCountry:
		return true
	default:
		return false
	}
}

// Temporal reports whether the kind decomposes into per-unit sub-inputs.
func (k Kind) Temporal() bool {
	switch k {
	case KindDate, KindDateTime, KindTime:
		return true
	default:
		return false
	}
}
