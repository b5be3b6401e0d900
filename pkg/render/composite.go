package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/temporal"
)

// Composite date/time inputs render one selector per temporal unit, named
// with the "attr(1i)".."attr(6i)" multiparameter convention so the host
// application can reassemble a value from the submitted parts.

func dateStrategy(b *Builder, ctx inputContext) (string, error) {
	return b.renderComposite(ctx, b.dateUnits(), ctx.opts.discardMap())
}

func datetimeStrategy(b *Builder, ctx inputContext) (string, error) {
	units := append(b.dateUnits(), temporal.TimeUnits(ctx.opts.IncludeSeconds)...)
	return b.renderComposite(ctx, units, ctx.opts.discardMap())
}

// timeStrategy forces the date segment into hidden fields so the submitted
// multiparameter set still reassembles into a full timestamp.
func timeStrategy(b *Builder, ctx inputContext) (string, error) {
	units := append(b.dateUnits(), temporal.TimeUnits(ctx.opts.IncludeSeconds)...)
	discard := ctx.opts.discardMap()
	discard[temporal.UnitYear] = true
	discard[temporal.UnitMonth] = true
	discard[temporal.UnitDay] = true
	return b.renderComposite(ctx, units, discard)
}

// dateUnits resolves the locale's preferred date ordering ("date.order"),
// defaulting to year, month, day.
func (b *Builder) dateUnits() []temporal.Unit {
	return temporal.DateUnits(temporal.ParseUnits(b.translate("date.order")))
}

func (b *Builder) renderComposite(ctx inputContext, units []temporal.Unit, discard map[temporal.Unit]bool) (string, error) {
	value := temporalValue(ctx.attr.Value())
	parts := temporal.Decompose(value, units, discard)

	var prefix strings.Builder
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part.Hidden {
			b.writeHiddenPart(&prefix, ctx, part)
			continue
		}
		items = append(items, b.renderPartSelect(ctx, part, value != nil))
	}
	return b.wrapFieldset(ctx, prefix.String(), items), nil
}

func (b *Builder) writeHiddenPart(out *strings.Builder, ctx inputContext, part temporal.Part) {
	writeTag(out, "input", Attrs{
		"type":  "hidden",
		"id":    b.partID(ctx, part.Unit),
		"name":  b.partName(ctx, part.Unit),
		"value": strconv.Itoa(part.Value),
	})
}

func (b *Builder) renderPartSelect(ctx inputContext, part temporal.Part, hasValue bool) string {
	id := b.partID(ctx, part.Unit)
	attrs := Attrs{
		"id":   id,
		"name": b.partName(ctx, part.Unit),
	}

	var control strings.Builder
	writeTag(&control, "select", attrs)
	for _, option := range b.unitOptions(part.Unit, part.Value) {
		selected := hasValue && option.value == part.Value
		control.WriteString(`<option value="`)
		control.WriteString(strconv.Itoa(option.value))
		control.WriteByte('"')
		if selected {
			control.WriteString(" selected")
		}
		control.WriteByte('>')
		control.WriteString(escape(option.label))
		control.WriteString("</option>")
	}
	control.WriteString("</select>")

	var item strings.Builder
	item.WriteString("<li>")
	writeContentTag(&item, "label", escape(b.unitPrompt(string(part.Unit))), Attrs{"for": id})
	item.WriteString(control.String())
	item.WriteString("</li>")
	return item.String()
}

// partID produces ids like "post_created_at_1i".
func (b *Builder) partID(ctx inputContext, unit temporal.Unit) string {
	return b.controlID(ctx.attr.Name, fmt.Sprintf("%di", temporal.Position(unit)))
}

// partName produces multiparameter names like "post[created_at(1i)]".
func (b *Builder) partName(ctx inputContext, unit temporal.Unit) string {
	name := b.fieldName(ctx.attr.Name, false)
	suffix := fmt.Sprintf("(%di)]", temporal.Position(unit))
	return strings.TrimSuffix(name, "]") + suffix
}

type unitOption struct {
	value int
	label string
}

func (b *Builder) unitOptions(unit temporal.Unit, current int) []unitOption {
	switch unit {
	case temporal.UnitYear:
		center := current
		if center == 0 {
			center = time.Now().Year()
		}
		radius := b.cfg.YearRadius
		out := make([]unitOption, 0, 2*radius+1)
		for year := center - radius; year <= center+radius; year++ {
			out = append(out, unitOption{value: year, label: strconv.Itoa(year)})
		}
		return out
	case temporal.UnitMonth:
		names := b.monthNames()
		out := make([]unitOption, 0, 12)
		for month := 1; month <= 12; month++ {
			out = append(out, unitOption{value: month, label: names[month-1]})
		}
		return out
	case temporal.UnitDay:
		out := make([]unitOption, 0, 31)
		for day := 1; day <= 31; day++ {
			out = append(out, unitOption{value: day, label: strconv.Itoa(day)})
		}
		return out
	case temporal.UnitHour:
		return paddedRange(0, 23)
	case temporal.UnitMinute, temporal.UnitSecond:
		return paddedRange(0, 59)
	default:
		return nil
	}
}

// monthNames reads the locale's month list ("date.month_names"), tolerating a
// leading blank entry for 1-indexed tables, and falls back to English month
// names.
func (b *Builder) monthNames() []string {
	if raw := b.translate("date.month_names"); raw != "" {
		names := strings.Split(raw, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		if len(names) == 13 && names[0] == "" {
			names = names[1:]
		}
		if len(names) == 12 {
			return names
		}
	}
	names := make([]string, 12)
	for month := time.January; month <= time.December; month++ {
		names[month-1] = month.String()
	}
	return names
}

func paddedRange(from, to int) []unitOption {
	out := make([]unitOption, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, unitOption{value: v, label: fmt.Sprintf("%02d", v)})
	}
	return out
}

// temporalValue coerces the attribute value into the *time.Time the
// decomposer expects.
func temporalValue(value any) *time.Time {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return &v
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil
		}
		return v
	default:
		return nil
	}
}
