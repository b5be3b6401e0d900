package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/choices"
	"github.com/goliatone/go-formbuilder/pkg/input"
)

// strategy renders one input kind. The table below is the closed dispatch
// surface: every input.Kind has exactly one entry, and Input fails loudly for
// anything outside it.
type strategy func(b *Builder, ctx inputContext) (string, error)

var strategies = map[input.Kind]strategy{
	input.KindString:     textFieldStrategy("text"),
	input.KindNumeric:    textFieldStrategy("number"),
	input.KindPassword:   passwordStrategy,
	input.KindText:       textAreaStrategy,
	input.KindFile:       fileStrategy,
	input.KindHidden:     hiddenStrategy,
	input.KindBoolean:    booleanStrategy,
	input.KindSelect:     selectStrategy,
	input.KindRadio:      radioStrategy,
	input.KindCheckBoxes: checkBoxesStrategy,
	input.KindDate:       dateStrategy,
	input.KindDateTime:   datetimeStrategy,
	input.KindTime:       timeStrategy,
	input.KindTimeZone:   timeZoneStrategy,
	input.KindCountry:    countryStrategy,
}

// textFieldStrategy covers the single-line input kinds that differ only in
// their type attribute.
func textFieldStrategy(inputType string) strategy {
	return func(b *Builder, ctx inputContext) (string, error) {
		fieldAttr := ctx.attr.Name
		id := b.controlID(fieldAttr)
		attrs := Attrs{
			"type": inputType,
			"id":   id,
			"name": b.fieldName(fieldAttr, false),
		}
		if value := attrValueString(ctx.attr.Value()); value != "" {
			attrs["value"] = value
		}
		if column, ok := ctx.attr.Column(); ok && column.Limit > 0 && inputType == "text" {
			attrs["maxlength"] = strconv.Itoa(column.Limit)
		}

		var control strings.Builder
		writeTag(&control, "input", attrs.merge(ctx.opts.InputHTML))
		return b.wrapControl(ctx, id, control.String()), nil
	}
}

// passwordStrategy never echoes the current value back into the markup.
func passwordStrategy(b *Builder, ctx inputContext) (string, error) {
	fieldAttr := ctx.attr.Name
	id := b.controlID(fieldAttr)
	attrs := Attrs{
		"type": "password",
		"id":   id,
		"name": b.fieldName(fieldAttr, false),
	}

	var control strings.Builder
	writeTag(&control, "input", attrs.merge(ctx.opts.InputHTML))
	return b.wrapControl(ctx, id, control.String()), nil
}

func textAreaStrategy(b *Builder, ctx inputContext) (string, error) {
	fieldAttr := ctx.attr.Name
	id := b.controlID(fieldAttr)
	attrs := Attrs{
		"id":   id,
		"name": b.fieldName(fieldAttr, false),
		"rows": strconv.Itoa(b.cfg.TextAreaRows),
	}

	var control strings.Builder
	writeContentTag(&control, "textarea",
		escape(attrValueString(ctx.attr.Value())), attrs.merge(ctx.opts.InputHTML))
	return b.wrapControl(ctx, id, control.String()), nil
}

// fileStrategy omits the value attribute; file inputs cannot be prefilled.
func fileStrategy(b *Builder, ctx inputContext) (string, error) {
	fieldAttr := ctx.attr.Name
	id := b.controlID(fieldAttr)
	attrs := Attrs{
		"type": "file",
		"id":   id,
		"name": b.fieldName(fieldAttr, false),
	}

	var control strings.Builder
	writeTag(&control, "input", attrs.merge(ctx.opts.InputHTML))
	return b.wrapControl(ctx, id, control.String()), nil
}

// hiddenStrategy renders the bare control inside the wrapper with no label,
// hint, or error chrome.
func hiddenStrategy(b *Builder, ctx inputContext) (string, error) {
	fieldAttr := ctx.attr.Name
	attrs := Attrs{
		"type": "hidden",
		"id":   b.controlID(fieldAttr),
		"name": b.fieldName(fieldAttr, false),
	}
	if value := attrValueString(ctx.attr.Value()); value != "" {
		attrs["value"] = value
	}

	var out strings.Builder
	writeTag(&out, "li", b.wrapperAttrs(ctx))
	writeTag(&out, "input", attrs.merge(ctx.opts.InputHTML))
	out.WriteString("</li>")
	return out.String(), nil
}

// booleanStrategy pairs a hidden unchecked sentinel with a checkbox wrapped
// inside its own label, so an unticked box still submits a value.
func booleanStrategy(b *Builder, ctx inputContext) (string, error) {
	fieldAttr := ctx.attr.Name
	id := b.controlID(fieldAttr)
	name := b.fieldName(fieldAttr, false)

	unchecked := ctx.opts.UncheckedValue
	if unchecked == "" {
		unchecked = "0"
	}

	var out strings.Builder
	writeTag(&out, "li", b.wrapperAttrs(ctx))
	out.WriteString(`<input name="`)
	out.WriteString(escape(name))
	out.WriteString(`" type="hidden" value="`)
	out.WriteString(escape(unchecked))
	out.WriteString(`">`)

	boxAttrs := Attrs{
		"type":  "checkbox",
		"id":    id,
		"name":  name,
		"value": "1",
	}
	if truthy(ctx.attr.Value()) {
		boxAttrs["checked"] = ""
	}
	var box strings.Builder
	writeTag(&box, "input", boxAttrs.merge(ctx.opts.InputHTML))

	if ctx.opts.HideLabel {
		out.WriteString(box.String())
	} else {
		text := escape(b.labelText(ctx))
		if ctx.required && b.cfg.RequiredMark != "" {
			text += b.cfg.RequiredMark
		}
		writeContentTag(&out, "label", box.String()+text, Attrs{"for": id})
	}
	out.WriteString(b.hintHTML(ctx))
	out.WriteString(b.errorHTML(ctx))
	out.WriteString("</li>")
	return out.String(), nil
}

func selectStrategy(b *Builder, ctx inputContext) (string, error) {
	fieldAttr := b.fieldAttr(ctx)
	options := choices.Normalize(ctx.attr, b.choiceOptions(ctx))
	selected := b.selectedSet(ctx, fieldAttr)

	assoc, hasAssoc := ctx.attr.Association()
	multi := hasAssoc && assoc.Many()

	id := b.controlID(fieldAttr)
	attrs := Attrs{
		"id":   id,
		"name": b.fieldName(fieldAttr, multi),
	}
	if multi {
		attrs["multiple"] = ""
		attrs["size"] = strconv.Itoa(b.cfg.MultiSelectSize)
	}

	var control strings.Builder
	writeTag(&control, "select", attrs.merge(ctx.opts.InputHTML))
	if ctx.opts.IncludeBlank && !multi {
		control.WriteString(`<option value=""></option>`)
	}
	for _, choice := range options {
		_, isSelected := selected[choice.Value]
		writeOption(&control, choice, isSelected, false)
	}
	control.WriteString("</select>")
	return b.wrapControl(ctx, id, control.String()), nil
}

func radioStrategy(b *Builder, ctx inputContext) (string, error) {
	fieldAttr := b.fieldAttr(ctx)
	options := choices.Normalize(ctx.attr, b.choiceOptions(ctx))
	selected := b.selectedSet(ctx, fieldAttr)
	name := b.fieldName(fieldAttr, false)

	items := make([]string, 0, len(options))
	for _, choice := range options {
		id := b.controlID(fieldAttr, choice.Value)
		attrs := Attrs{
			"type":  "radio",
			"id":    id,
			"name":  name,
			"value": choice.Value,
		}
		if _, ok := selected[choice.Value]; ok {
			attrs["checked"] = ""
		}

		var box strings.Builder
		writeTag(&box, "input", attrs.merge(ctx.opts.InputHTML))

		var item strings.Builder
		item.WriteString("<li")
		if ctx.opts.ValueAsClass {
			item.WriteString(` class="`)
			item.WriteString(escape(choiceClass(fieldAttr, choice.Value)))
			item.WriteString(`"`)
		}
		item.WriteString(">")
		writeContentTag(&item, "label", box.String()+escape(choice.Label), Attrs{"for": id})
		item.WriteString("</li>")
		items = append(items, item.String())
	}
	return b.wrapFieldset(ctx, "", items), nil
}

// checkBoxesStrategy emits a hidden blank sentinel ahead of the fieldset so a
// submission with nothing ticked still clears the attribute.
func checkBoxesStrategy(b *Builder, ctx inputContext) (string, error) {
	fieldAttr := b.fieldAttr(ctx)
	options := choices.Normalize(ctx.attr, b.choiceOptions(ctx))
	selected := b.selectedSet(ctx, fieldAttr)
	name := b.fieldName(fieldAttr, true)

	var prefix strings.Builder
	writeTag(&prefix, "input", Attrs{"type": "hidden", "name": name})

	items := make([]string, 0, len(options))
	for _, choice := range options {
		id := b.controlID(fieldAttr, choice.Value)
		attrs := Attrs{
			"type":  "checkbox",
			"id":    id,
			"name":  name,
			"value": choice.Value,
		}
		if _, ok := selected[choice.Value]; ok {
			attrs["checked"] = ""
		}

		var box strings.Builder
		writeTag(&box, "input", attrs.merge(ctx.opts.InputHTML))

		var item strings.Builder
		item.WriteString("<li")
		if ctx.opts.ValueAsClass {
			item.WriteString(` class="`)
			item.WriteString(escape(choiceClass(fieldAttr, choice.Value)))
			item.WriteString(`"`)
		}
		item.WriteString(">")
		writeContentTag(&item, "label", box.String()+escape(choice.Label), Attrs{"for": id})
		item.WriteString("</li>")
		items = append(items, item.String())
	}
	return b.wrapFieldset(ctx, prefix.String(), items), nil
}

func timeZoneStrategy(b *Builder, ctx inputContext) (string, error) {
	priority := ctx.opts.PriorityZones
	if priority == nil {
		priority = b.cfg.PriorityZones
	}
	return b.renderGroupedSelect(ctx, zoneChoices(priority), zoneChoices(remaining(b.cfg.Zones, priority)))
}

func countryStrategy(b *Builder, ctx inputContext) (string, error) {
	if len(b.cfg.Countries) == 0 {
		return "", ErrCountriesNotConfigured
	}
	var priority, rest []choices.Choice
	pinned := make(map[string]struct{}, len(b.cfg.PriorityCountries))
	for _, code := range b.cfg.PriorityCountries {
		pinned[strings.ToUpper(strings.TrimSpace(code))] = struct{}{}
	}
	for _, country := range b.cfg.Countries {
		choice := choices.Choice{Label: country.Name, Value: country.Code}
		if _, ok := pinned[country.Code]; ok {
			priority = append(priority, choice)
			continue
		}
		rest = append(rest, choice)
	}
	return b.renderGroupedSelect(ctx, priority, rest)
}

// separatorLabel divides pinned options from the full list in grouped
// selects.
const separatorLabel = "-------------"

func (b *Builder) renderGroupedSelect(ctx inputContext, priority, rest []choices.Choice) (string, error) {
	fieldAttr := ctx.attr.Name
	selected := b.selectedSet(ctx, fieldAttr)
	id := b.controlID(fieldAttr)
	attrs := Attrs{
		"id":   id,
		"name": b.fieldName(fieldAttr, false),
	}

	var control strings.Builder
	writeTag(&control, "select", attrs.merge(ctx.opts.InputHTML))
	if ctx.opts.IncludeBlank {
		control.WriteString(`<option value=""></option>`)
	}
	for _, choice := range priority {
		_, isSelected := selected[choice.Value]
		writeOption(&control, choice, isSelected, false)
	}
	if len(priority) > 0 && len(rest) > 0 {
		writeOption(&control, choices.Choice{Label: separatorLabel, Value: ""}, false, true)
	}
	for _, choice := range rest {
		_, isSelected := selected[choice.Value]
		writeOption(&control, choice, isSelected, false)
	}
	control.WriteString("</select>")
	return b.wrapControl(ctx, id, control.String()), nil
}

func writeOption(out *strings.Builder, choice choices.Choice, selected, disabled bool) {
	out.WriteString(`<option value="`)
	out.WriteString(escape(choice.Value))
	out.WriteByte('"')
	if selected {
		out.WriteString(" selected")
	}
	if disabled {
		out.WriteString(" disabled")
	}
	out.WriteByte('>')
	out.WriteString(escape(choice.Label))
	out.WriteString("</option>")
}

func zoneChoices(zones []string) []choices.Choice {
	out := make([]choices.Choice, 0, len(zones))
	for _, zone := range zones {
		if zone = strings.TrimSpace(zone); zone != "" {
			out = append(out, choices.Choice{Label: zone, Value: zone})
		}
	}
	return out
}

func remaining(all, priority []string) []string {
	if len(priority) == 0 {
		return all
	}
	pinned := make(map[string]struct{}, len(priority))
	for _, item := range priority {
		pinned[item] = struct{}{}
	}
	out := make([]string, 0, len(all))
	for _, item := range all {
		if _, ok := pinned[item]; !ok {
			out = append(out, item)
		}
	}
	return out
}

// choiceClass derives the per-option list item class used with ValueAsClass.
func choiceClass(fieldAttr, value string) string {
	token := strings.ToLower(strings.TrimSpace(value))
	mapped := make([]rune, 0, len(token))
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			mapped = append(mapped, r)
		default:
			mapped = append(mapped, '_')
		}
	}
	return fieldAttr + "_" + string(mapped)
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		return false
	}
}
