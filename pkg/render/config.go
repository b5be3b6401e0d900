package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/components/countries"
	"github.com/goliatone/go-formbuilder/components/timezones"
	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/input"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
)

// Config is the explicit, request-immutable configuration every Builder
// carries. There is no process-wide state: two builders with different
// configs render independently.
type Config struct {
	// Resolver infers input kinds; nil uses input.NewResolver().
	Resolver *input.Resolver
	// Translator backs label, hint, and prompt lookups; nil skips translation
	// and every lookup lands on its humanized fallback.
	Translator i18n.Translator
	// Locale passed to the translator (e.g. "en-US").
	Locale string
	// LabelScope is the root of the label lookup chain
	// "<scope>.<model>.<action>.<attr>". Defaults to "labels".
	LabelScope string
	// Action is the optional action segment of the label lookup chain
	// (typically "new" or "edit").
	Action string

	// RequiredByDefault marks attributes required unless overridden per call.
	RequiredByDefault bool
	// RequiredMark is trusted markup appended to required labels.
	RequiredMark string

	// TrueLabel/FalseLabel caption the boolean option domain.
	TrueLabel  string
	FalseLabel string
	// LabelMethods orders the capability probes for collection labels.
	LabelMethods []string

	// Zones backs time_zone inputs; defaults to the embedded IANA table.
	Zones []string
	// PriorityZones are listed first, above a disabled separator.
	PriorityZones []string
	// Countries backs country inputs. Nil means country support is not
	// installed and rendering a country input fails.
	Countries []countries.Country
	// PriorityCountries lists ISO codes pinned above the separator.
	PriorityCountries []string

	// MultiSelectSize is the visible row count for multi-selects.
	MultiSelectSize int
	// TextAreaRows is the default rows attribute for text inputs.
	TextAreaRows int
	// YearRadius bounds year selectors at selected-year ± radius.
	YearRadius int

	// Templates renders the fieldset/form chrome; nil loads the embedded
	// bundle through the go-template adapter.
	Templates rendertemplate.TemplateRenderer
	// Theme optionally overrides chrome classes and contributes CSS custom
	// properties on group wrappers.
	Theme *theme.RendererConfig
}

func defaultConfig() Config {
	return Config{
		Resolver:          input.NewResolver(),
		LabelScope:        "labels",
		RequiredByDefault: true,
		RequiredMark:      `<abbr title="required">*</abbr>`,
		MultiSelectSize:   5,
		TextAreaRows:      20,
		YearRadius:        5,
		Zones:             timezones.MustDefaultZones(),
	}
}

// Option mutates the builder configuration at construction time.
type Option func(*Config)

// WithResolver swaps the input kind resolver.
func WithResolver(resolver *input.Resolver) Option {
	return func(cfg *Config) {
		if resolver != nil {
			cfg.Resolver = resolver
		}
	}
}

// WithTranslator installs the translation backend and locale.
func WithTranslator(translator i18n.Translator, locale string) Option {
	return func(cfg *Config) {
		cfg.Translator = translator
		cfg.Locale = locale
	}
}

// WithLabelScope overrides the root of the label lookup chain.
func WithLabelScope(scope string) Option {
	return func(cfg *Config) {
		if scope != "" {
			cfg.LabelScope = scope
		}
	}
}

// WithAction sets the action segment used by label lookups.
func WithAction(action string) Option {
	return func(cfg *Config) { cfg.Action = action }
}

// WithRequiredByDefault flips the default required treatment.
func WithRequiredByDefault(required bool) Option {
	return func(cfg *Config) { cfg.RequiredByDefault = required }
}

// WithRequiredMark replaces the markup appended to required labels.
func WithRequiredMark(mark string) Option {
	return func(cfg *Config) { cfg.RequiredMark = mark }
}

// WithBooleanLabels captions the boolean option domain.
func WithBooleanLabels(trueLabel, falseLabel string) Option {
	return func(cfg *Config) {
		cfg.TrueLabel = trueLabel
		cfg.FalseLabel = falseLabel
	}
}

// WithLabelMethods orders the capability probes for collection labels.
func WithLabelMethods(methods ...string) Option {
	return func(cfg *Config) { cfg.LabelMethods = methods }
}

// WithZones replaces the time-zone table.
func WithZones(zones []string) Option {
	return func(cfg *Config) { cfg.Zones = zones }
}

// WithPriorityZones pins zones above the separator in time_zone selects.
func WithPriorityZones(zones ...string) Option {
	return func(cfg *Config) { cfg.PriorityZones = zones }
}

// WithCountries installs the country table, enabling country inputs.
func WithCountries(table []countries.Country) Option {
	return func(cfg *Config) { cfg.Countries = table }
}

// WithPriorityCountries pins ISO codes above the separator in country selects.
func WithPriorityCountries(codes ...string) Option {
	return func(cfg *Config) { cfg.PriorityCountries = codes }
}

// WithMultiSelectSize sets the visible row count for multi-selects.
func WithMultiSelectSize(size int) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.MultiSelectSize = size
		}
	}
}

// WithTextAreaRows sets the default rows attribute on text inputs.
func WithTextAreaRows(rows int) Option {
	return func(cfg *Config) {
		if rows > 0 {
			cfg.TextAreaRows = rows
		}
	}
}

// WithYearRadius bounds year selectors at selected-year ± radius.
func WithYearRadius(radius int) Option {
	return func(cfg *Config) {
		if radius > 0 {
			cfg.YearRadius = radius
		}
	}
}

// WithTemplateRenderer injects a custom chrome template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *Config) {
		if renderer != nil {
			cfg.Templates = renderer
		}
	}
}

// WithTheme applies a resolved go-theme configuration to chrome rendering.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *Config) { c.Theme = cfg }
}
