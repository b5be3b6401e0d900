// Package render turns attribute metadata into accessible HTML form
// fragments. Builder.Input is the entry point: it resolves the input kind,
// dispatches to the matching strategy, and wraps the control with label,
// hint, and error chrome. Rendering is stateless and idempotent; identical
// inputs produce byte-identical fragments.
package render

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/choices"
	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/input"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/naming"
)

// Builder renders inputs for one bound record. Builders are cheap; create one
// per record (or per nested child via WithIndex) and discard it with the
// request.
type Builder struct {
	cfg    Config
	record model.Record
	index  int
}

// New binds a record with the supplied options applied over the defaults.
func New(record model.Record, opts ...Option) (*Builder, error) {
	if record == nil {
		return nil, ErrNilRecord
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.Resolver == nil {
		cfg.Resolver = input.NewResolver()
	}
	return &Builder{cfg: cfg, record: record, index: naming.NoIndex}, nil
}

// WithIndex returns a copy of the builder scoped to a nesting index, used
// when the same attribute renders once per child record.
func (b *Builder) WithIndex(index int) *Builder {
	clone := *b
	clone.index = index
	return &clone
}

// Record returns the bound record.
func (b *Builder) Record() model.Record { return b.record }

// Input renders one attribute as a self-contained fragment: a list item
// wrapping label + control, or a list item wrapping a fieldset for multi-part
// inputs (radio sets, check box sets, composite dates/times).
func (b *Builder) Input(attrName string, opts InputOptions) (string, error) {
	attr := model.Attr(b.record, attrName)
	kind := b.kindFor(attr, opts)

	strat, ok := strategies[kind]
	if !ok {
		return "", fmt.Errorf("render: no strategy registered for input kind %q", kind)
	}

	ctx := inputContext{
		attr:     attr,
		kind:     kind,
		opts:     opts,
		required: opts.required(b.cfg.RequiredByDefault),
		errors:   attr.Errors(),
	}
	fragment, err := strat(b, ctx)
	if err != nil {
		return "", fmt.Errorf("render: input %q: %w", attrName, err)
	}
	return fragment, nil
}

// inputContext is the per-call state shared by every strategy.
type inputContext struct {
	attr     model.Attribute
	kind     input.Kind
	opts     InputOptions
	required bool
	errors   []string
}

func (b *Builder) kindFor(attr model.Attribute, opts InputOptions) input.Kind {
	if opts.As != "" {
		if kind, ok := input.ParseKind(string(opts.As)); ok {
			return kind
		}
	}
	if opts.Collection != nil {
		return input.KindSelect
	}
	return b.cfg.Resolver.Resolve(attr)
}

func (b *Builder) objectName() string {
	return b.record.ObjectName()
}

// fieldAttr maps the attribute onto its submission spelling, applying
// association naming for selection kinds ("tags" -> "tag_ids").
func (b *Builder) fieldAttr(ctx inputContext) string {
	if !ctx.kind.Selection() {
		return ctx.attr.Name
	}
	assoc, ok := ctx.attr.Association()
	return naming.AssociationAttr(ctx.attr.Name, assoc, ok)
}

func (b *Builder) controlID(fieldAttr string, parts ...string) string {
	return naming.HTMLID(b.objectName(), b.index, append([]string{fieldAttr}, parts...)...)
}

func (b *Builder) fieldName(fieldAttr string, multi bool) string {
	name := naming.FieldName(b.objectName(), fieldAttr, b.index)
	if multi {
		name += "[]"
	}
	return name
}

// labelText resolves the label through the translation chain
// scope.model.action.attr -> scope.model.attr -> scope.attr, landing on the
// humanized attribute name.
func (b *Builder) labelText(ctx inputContext) string {
	if ctx.opts.Label != "" {
		return ctx.opts.Label
	}
	scope := b.cfg.LabelScope
	modelName := b.objectName()
	attrName := ctx.attr.Name

	keys := make([]string, 0, 3)
	if b.cfg.Action != "" {
		keys = append(keys, strings.Join([]string{scope, modelName, b.cfg.Action, attrName}, "."))
	}
	keys = append(keys,
		strings.Join([]string{scope, modelName, attrName}, "."),
		strings.Join([]string{scope, attrName}, "."),
	)
	return i18n.Lookup(b.cfg.Translator, b.cfg.Locale, keys, naming.Humanize(attrName))
}

// unitPrompt resolves the short label for a temporal unit, falling back to
// the humanized unit name.
func (b *Builder) unitPrompt(unit string) string {
	return i18n.Lookup(b.cfg.Translator, b.cfg.Locale,
		[]string{"datetime.prompts." + unit}, naming.Humanize(unit))
}

func (b *Builder) translate(key string) string {
	return i18n.Lookup(b.cfg.Translator, b.cfg.Locale, []string{key}, "")
}

// wrapperAttrs computes the list-item attributes: kind + required/optional +
// error classes, the deterministic wrapper id, and any caller WrapperHTML.
func (b *Builder) wrapperAttrs(ctx inputContext) Attrs {
	classes := []string{string(ctx.kind)}
	if ctx.required {
		classes = append(classes, "required")
	} else {
		classes = append(classes, "optional")
	}
	if len(ctx.errors) > 0 {
		classes = append(classes, "error")
	}
	attrs := Attrs{
		"class": joinClasses(classes...),
		"id":    naming.WrapperID(b.objectName(), b.index, ctx.attr.Name),
	}
	return attrs.merge(ctx.opts.WrapperHTML)
}

// labelHTML emits the label element; the required mark is trusted config
// markup and appended raw.
func (b *Builder) labelHTML(ctx inputContext, forID string) string {
	text := escape(b.labelText(ctx))
	if ctx.required && b.cfg.RequiredMark != "" {
		text += b.cfg.RequiredMark
	}
	var out strings.Builder
	attrs := Attrs{}
	if forID != "" {
		attrs["for"] = forID
	}
	writeContentTag(&out, "label", text, attrs)
	return out.String()
}

func (b *Builder) hintHTML(ctx inputContext) string {
	hint := sanitizeHint(ctx.opts.Hint)
	if hint == "" {
		return ""
	}
	var out strings.Builder
	writeContentTag(&out, "p", hint, Attrs{"class": "inline-hints"})
	return out.String()
}

func (b *Builder) errorHTML(ctx inputContext) string {
	if len(ctx.errors) == 0 {
		return ""
	}
	messages := make([]string, 0, len(ctx.errors))
	for _, message := range ctx.errors {
		if message = strings.TrimSpace(message); message != "" {
			messages = append(messages, escape(message))
		}
	}
	if len(messages) == 0 {
		return ""
	}
	var out strings.Builder
	writeContentTag(&out, "p", strings.Join(messages, ", "), Attrs{"class": "inline-errors"})
	return out.String()
}

// wrapControl assembles the standard single-control fragment.
func (b *Builder) wrapControl(ctx inputContext, forID, control string) string {
	var out strings.Builder
	writeTag(&out, "li", b.wrapperAttrs(ctx))
	if !ctx.opts.HideLabel {
		out.WriteString(b.labelHTML(ctx, forID))
	}
	out.WriteString(control)
	out.WriteString(b.hintHTML(ctx))
	out.WriteString(b.errorHTML(ctx))
	out.WriteString("</li>")
	return out.String()
}

// wrapFieldset assembles the multi-part fragment: list item wrapping an
// optional prefix (hidden fields), then a fieldset with legend and an ordered
// list of sub-items.
func (b *Builder) wrapFieldset(ctx inputContext, prefix string, items []string) string {
	var out strings.Builder
	writeTag(&out, "li", b.wrapperAttrs(ctx))
	out.WriteString(prefix)
	out.WriteString("<fieldset>")
	if !ctx.opts.HideLabel {
		legend := escape(b.labelText(ctx))
		if ctx.required && b.cfg.RequiredMark != "" {
			legend += b.cfg.RequiredMark
		}
		out.WriteString("<legend><span>")
		out.WriteString(legend)
		out.WriteString("</span></legend>")
	}
	out.WriteString("<ol>")
	for _, item := range items {
		out.WriteString(item)
	}
	out.WriteString("</ol></fieldset>")
	out.WriteString(b.hintHTML(ctx))
	out.WriteString(b.errorHTML(ctx))
	out.WriteString("</li>")
	return out.String()
}

// choiceOptions maps the per-call options onto the normalizer configuration.
func (b *Builder) choiceOptions(ctx inputContext) choices.Options {
	return choices.Options{
		Collection:   ctx.opts.Collection,
		LabelFunc:    ctx.opts.LabelFunc,
		ValueFunc:    ctx.opts.ValueFunc,
		LabelMethods: b.cfg.LabelMethods,
		TrueLabel:    b.booleanLabel(true),
		FalseLabel:   b.booleanLabel(false),
	}
}

func (b *Builder) booleanLabel(truth bool) string {
	key, configured := "formbuilder.yes", b.cfg.TrueLabel
	if !truth {
		key, configured = "formbuilder.no", b.cfg.FalseLabel
	}
	if configured != "" {
		return configured
	}
	return b.translate(key)
}

// selectedSet collects the selected value strings for a selection input: the
// explicit Selected option, else the current value under the submission
// attribute, else the raw attribute value.
func (b *Builder) selectedSet(ctx inputContext, fieldAttr string) map[string]struct{} {
	source := ctx.opts.Selected
	if source == nil {
		source = b.record.Value(fieldAttr)
	}
	if source == nil && fieldAttr != ctx.attr.Name {
		source = ctx.attr.Value()
	}
	if source == nil {
		return nil
	}

	extract := b.choiceOptions(ctx)
	out := make(map[string]struct{})
	value := reflect.ValueOf(source)
	if value.Kind() == reflect.Slice || value.Kind() == reflect.Array {
		for i := 0; i < value.Len(); i++ {
			out[choices.ValueOf(value.Index(i).Interface(), extract)] = struct{}{}
		}
		return out
	}
	out[choices.ValueOf(source, extract)] = struct{}{}
	return out
}

// attrValueString renders the attribute's current value for value attributes.
func attrValueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
