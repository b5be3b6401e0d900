package formbuilder

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestInput_Convenience(t *testing.T) {
	record := &testsupport.FakeRecord{
		Object:  "post",
		Columns: map[string]model.Column{"title": {Type: model.ColumnString}},
	}

	got, err := Input(record, "title", InputOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `id="post_title_input"`) {
		t.Fatalf("unexpected markup %s", got)
	}
}

type stubSelector struct {
	selection *theme.Selection
	err       error
}

func (s *stubSelector) Select(string, string, ...theme.QueryOption) (*theme.Selection, error) {
	return s.selection, s.err
}

func TestWithThemeSelection(t *testing.T) {
	selector := &stubSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:   "acme",
			Tokens: map[string]string{"forms.inputsClass": "acme-groups", "brand": "#123456"},
		},
	}}

	opt, err := WithThemeSelection(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("theme selection: %v", err)
	}

	record := &testsupport.FakeRecord{Object: "post"}
	builder, err := New(record, opt)
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	got, err := builder.Inputs("Details")
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	if !strings.Contains(got, `class="acme-groups"`) {
		t.Fatalf("expected themed chrome class, got %s", got)
	}
	if !strings.Contains(got, "--brand: #123456;") {
		t.Fatalf("expected css vars from manifest tokens, got %s", got)
	}
}

func TestWithThemeSelection_NilSelector(t *testing.T) {
	if _, err := WithThemeSelection(nil, "acme", ""); err == nil {
		t.Fatalf("expected error for nil selector")
	}
}

// Keep the root aliases honest: a render.Option must be usable where an
// Option is expected.
func TestAliases(t *testing.T) {
	var opt Option = render.WithRequiredByDefault(false)
	record := &testsupport.FakeRecord{Object: "post"}
	builder, err := New(record, opt)
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	got, err := builder.Input("title", InputOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `class="string optional"`) {
		t.Fatalf("expected option applied through alias, got %s", got)
	}
}
