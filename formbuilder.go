// Package formbuilder generates semantically rich HTML form markup from
// record metadata. The root package re-exports the common surface; the pkg
// tree holds the building blocks (model contracts, kind resolution, option
// normalization, composite date/time handling, and the renderer itself).
package formbuilder

import (
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/choices"
	"github.com/goliatone/go-formbuilder/pkg/input"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Builder renders form inputs for one bound record.
type Builder = render.Builder

// Config is the immutable per-builder configuration.
type Config = render.Config

// Option configures a Builder at construction time.
type Option = render.Option

// InputOptions is the per-call option bag for Builder.Input.
type InputOptions = render.InputOptions

// Attrs carries extra HTML attributes through InputHTML/WrapperHTML.
type Attrs = render.Attrs

// Kind identifies an input kind ("string", "select", "datetime", ...).
type Kind = input.Kind

// Record is the metadata contract a bound object must satisfy.
type Record = model.Record

// Choice is one normalized option of a selection input.
type Choice = choices.Choice

// New binds a record and returns a Builder ready to render inputs.
func New(record Record, opts ...Option) (*Builder, error) {
	return render.New(record, opts...)
}

// Input is a one-shot convenience for rendering a single attribute.
func Input(record Record, attr string, opts InputOptions, builderOpts ...Option) (string, error) {
	builder, err := render.New(record, builderOpts...)
	if err != nil {
		return "", err
	}
	return builder.Input(attr, opts)
}

// WithThemeSelection resolves a theme/variant through a go-theme selector and
// wires the resulting tokens into chrome rendering. Manifest tokens double as
// CSS custom properties on the group wrappers.
func WithThemeSelection(selector theme.ThemeSelector, name, variant string) (Option, error) {
	if selector == nil {
		return nil, fmt.Errorf("formbuilder: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("formbuilder: select theme %q/%q: %w", name, variant, err)
	}

	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	if selection.Manifest != nil && len(selection.Manifest.Tokens) > 0 {
		cfg.Tokens = selection.Manifest.Tokens
		cfg.CSSVars = make(map[string]string, len(selection.Manifest.Tokens))
		for token, value := range selection.Manifest.Tokens {
			cfg.CSSVars["--"+token] = value
		}
	}
	return render.WithTheme(cfg), nil
}
