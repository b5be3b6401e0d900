// Package choices normalizes the many shapes a selection source can take
// (explicit collections, association record sets, boolean domains) into one
// ordered list of label/value pairs the selection strategies render from.
package choices

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Choice is a single option: the display label and the underlying value as it
// will appear in the control's value attribute. Value uniqueness is neither
// guaranteed nor required.
type Choice struct {
	Label string
	Value string
}

// Options steers normalization. The zero value applies the defaults.
type Options struct {
	// Collection supplies an explicit source and takes precedence over
	// association records and the boolean domain. Accepted shapes: []Choice,
	// []string, [][2]string, map[string]string (key-sorted), or any slice
	// whose elements go through the label/value extractors.
	Collection any
	// LabelFunc overrides label extraction for collection members.
	LabelFunc func(any) string
	// ValueFunc overrides value extraction for collection members.
	ValueFunc func(any) string
	// LabelMethods orders the capability probes used when no LabelFunc is
	// set. Recognized names: "label", "name", "title", "string". Empty means
	// DefaultLabelMethods.
	LabelMethods []string
	// TrueLabel/FalseLabel caption the boolean domain. Empty values fall back
	// to "Yes"/"No".
	TrueLabel  string
	FalseLabel string
}

// DefaultLabelMethods is the capability probe order applied when Options does
// not override it.
var DefaultLabelMethods = []string{"label", "name", "title", "string"}

// Normalize produces the ordered option list for an attribute. Source
// precedence: explicit collection, then the association's related records,
// then the boolean domain for boolean columns. Anything else yields an empty
// list; normalization never fails.
func Normalize(attr model.Attribute, opts Options) []Choice {
	if opts.Collection != nil {
		return fromCollection(opts.Collection, opts)
	}

	if assoc, ok := attr.Association(); ok {
		if source, ok := attr.Record.(model.AssociationCollection); ok {
			return fromRecords(source.AssociatedRecords(assoc), opts)
		}
		return nil
	}

	if column, ok := attr.Column(); ok && column.Type == model.ColumnBoolean {
		return BooleanDomain(opts.TrueLabel, opts.FalseLabel)
	}

	return nil
}

// BooleanDomain returns the two-entry true/false option list, true first.
func BooleanDomain(trueLabel, falseLabel string) []Choice {
	if strings.TrimSpace(trueLabel) == "" {
		trueLabel = "Yes"
	}
	if strings.TrimSpace(falseLabel) == "" {
		falseLabel = "No"
	}
	return []Choice{
		{Label: trueLabel, Value: "true"},
		{Label: falseLabel, Value: "false"},
	}
}

// ValueOf runs a single item through the value extraction chain used for
// collection members. Selection renderers use it to stringify current values
// the same way option values were stringified.
func ValueOf(item any, opts Options) string {
	return extractValue(item, opts)
}

func fromCollection(collection any, opts Options) []Choice {
	switch src := collection.(type) {
	case []Choice:
		return append([]Choice(nil), src...)
	case []string:
		out := make([]Choice, 0, len(src))
		for _, item := range src {
			out = append(out, Choice{Label: item, Value: item})
		}
		return out
	case [][2]string:
		out := make([]Choice, 0, len(src))
		for _, pair := range src {
			out = append(out, Choice{Label: pair[0], Value: pair[1]})
		}
		return out
	case map[string]string:
		keys := make([]string, 0, len(src))
		for key := range src {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make([]Choice, 0, len(keys))
		for _, key := range keys {
			out = append(out, Choice{Label: key, Value: src[key]})
		}
		return out
	}

	value := reflect.ValueOf(collection)
	if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
		return nil
	}
	out := make([]Choice, 0, value.Len())
	for i := 0; i < value.Len(); i++ {
		out = append(out, choiceFor(value.Index(i).Interface(), opts))
	}
	return out
}

func fromRecords(records []any, opts Options) []Choice {
	out := make([]Choice, 0, len(records))
	for _, record := range records {
		out = append(out, choiceFor(record, opts))
	}
	return out
}

func choiceFor(item any, opts Options) Choice {
	if choice, ok := item.(Choice); ok {
		return choice
	}
	if primitive, ok := primitiveString(item); ok {
		return Choice{Label: primitive, Value: primitive}
	}
	return Choice{
		Label: extractLabel(item, opts),
		Value: extractValue(item, opts),
	}
}

func extractLabel(item any, opts Options) string {
	if opts.LabelFunc != nil {
		return opts.LabelFunc(item)
	}
	methods := opts.LabelMethods
	if len(methods) == 0 {
		methods = DefaultLabelMethods
	}
	for _, method := range methods {
		switch strings.ToLower(strings.TrimSpace(method)) {
		case "label":
			if v, ok := item.(model.Labeled); ok {
				return v.Label()
			}
		case "name":
			if v, ok := item.(model.Named); ok {
				return v.Name()
			}
		case "title":
			if v, ok := item.(model.Titled); ok {
				return v.Title()
			}
		case "string":
			if v, ok := item.(fmt.Stringer); ok {
				return v.String()
			}
		}
	}
	return fmt.Sprint(item)
}

func extractValue(item any, opts Options) string {
	if opts.ValueFunc != nil {
		return opts.ValueFunc(item)
	}
	if v, ok := item.(model.Identifiable); ok {
		return fmt.Sprint(v.ID())
	}
	if primitive, ok := primitiveString(item); ok {
		return primitive
	}
	return fmt.Sprint(item)
}

func primitiveString(item any) (string, bool) {
	switch v := item.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
