package gotemplate

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
)

func templateFS() fstest.MapFS {
	return fstest.MapFS{
		"hello.tmpl":   &fstest.MapFile{Data: []byte(`Hello {{ name }}`)},
		"partial.html": &fstest.MapFile{Data: []byte(`<b>{{ name }}</b>`)},
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without a template source")
	}
}

func TestRenderTemplate(t *testing.T) {
	engine, err := New(WithFS(templateFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("hello", map[string]any{"name": "world"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello world" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderTemplate_CustomExtension(t *testing.T) {
	engine, err := New(WithFS(templateFS()), WithExtension("html"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("partial", map[string]any{"name": "x"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<b>x</b>" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNew_AcceptsGoTemplateOptions(t *testing.T) {
	engine, err := New(WithFS(templateFS()), WithGoTemplateOptions())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("hello", map[string]any{"name": "compat"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello compat" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderString(t *testing.T) {
	engine, err := New(WithFS(templateFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString(`{{ greeting }}!`, map[string]any{"greeting": "hi"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "hi!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRender_RoutesByContent(t *testing.T) {
	engine, err := New(WithFS(templateFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	inline, err := engine.Render(`{{ name }}`, map[string]any{"name": "inline"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "inline" {
		t.Fatalf("unexpected inline output %q", inline)
	}

	named, err := engine.Render("hello", map[string]any{"name": "file"})
	if err != nil {
		t.Fatalf("render named: %v", err)
	}
	if named != "Hello file" {
		t.Fatalf("unexpected named output %q", named)
	}
}

func TestRender_WritesToSinks(t *testing.T) {
	engine, err := New(WithFS(templateFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var sink bytes.Buffer
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "sink"}, &sink)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if sink.String() != got {
		t.Fatalf("expected writer to receive %q, got %q", got, sink.String())
	}
}

func TestGlobalContext(t *testing.T) {
	engine, err := New(WithFS(templateFS()), WithGlobalData(map[string]any{"name": "global"}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("hello", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello global" {
		t.Fatalf("expected global data applied, got %q", got)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine, err := New(WithFS(templateFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	err = engine.RegisterFilter("formbuilder_test_shout", func(input any, _ any) (any, error) {
		return strings.ToUpper(strings.TrimSpace(toString(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	got, err := engine.RenderString(`{{ word|formbuilder_test_shout }}`, map[string]any{"word": "quiet"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "QUIET" {
		t.Fatalf("unexpected output %q", got)
	}

	if err := engine.RegisterFilter("", nil); err == nil {
		t.Fatalf("expected validation error")
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
