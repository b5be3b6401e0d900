package render

import (
	"github.com/goliatone/go-formbuilder/pkg/input"
	"github.com/goliatone/go-formbuilder/pkg/temporal"
)

// InputOptions is the per-call option bag for Builder.Input. Typed fields are
// consumed by the strategies as they apply; anything the renderer does not
// recognize travels in InputHTML/WrapperHTML and is forwarded verbatim onto
// the emitted tags.
type InputOptions struct {
	// As forces the input kind, bypassing resolution.
	As input.Kind
	// Label overrides the translated label text. HideLabel drops the label
	// element (and legend) entirely.
	Label     string
	HideLabel bool
	// Required overrides the config default for this call.
	Required *bool
	// Hint renders as inline help below the control. Inline markup is allowed
	// and sanitized.
	Hint string

	// InputHTML merges onto the control tag; WrapperHTML onto the wrapper.
	// Caller keys win, classes append.
	InputHTML   Attrs
	WrapperHTML Attrs

	// Collection supplies an explicit option source (and implies a select
	// unless As says otherwise). See choices.Options.Collection for accepted
	// shapes.
	Collection any
	// LabelFunc/ValueFunc override option label/value extraction.
	LabelFunc func(any) string
	ValueFunc func(any) string
	// Selected overrides the selected value(s); scalar or slice.
	Selected any
	// IncludeBlank prepends an empty option to single selects.
	IncludeBlank bool

	// PriorityZones overrides the configured priority list for this call.
	PriorityZones []string

	// Discard flags for composite date/time inputs.
	DiscardYear   bool
	DiscardMonth  bool
	DiscardDay    bool
	DiscardHour   bool
	DiscardMinute bool
	DiscardSecond bool
	// IncludeSeconds adds the seconds selector to datetime/time inputs.
	IncludeSeconds bool

	// ValueAsClass tags each radio/check_boxes list item with an
	// "<attr>_<value>" class.
	ValueAsClass bool
	// UncheckedValue is submitted when a boolean checkbox is left unchecked.
	// Defaults to "0".
	UncheckedValue string
}

func (o InputOptions) discardMap() map[temporal.Unit]bool {
	return map[temporal.Unit]bool{
		temporal.UnitYear:   o.DiscardYear,
		temporal.UnitMonth:  o.DiscardMonth,
		temporal.UnitDay:    o.DiscardDay,
		temporal.UnitHour:   o.DiscardHour,
		temporal.UnitMinute: o.DiscardMinute,
		temporal.UnitSecond: o.DiscardSecond,
	}
}

func (o InputOptions) required(fallback bool) bool {
	if o.Required != nil {
		return *o.Required
	}
	return fallback
}
