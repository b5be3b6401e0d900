package render

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
)

//go:embed templates/*.tmpl
var chromeFS embed.FS

// TemplatesFS exposes the embedded chrome bundle so callers can layer their
// own template loaders over it.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(chromeFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("render: embedded templates: %v", err))
	}
	return sub
}

var (
	chromeOnce   sync.Once
	chromeEngine rendertemplate.TemplateRenderer
	chromeErr    error
)

func defaultChrome() (rendertemplate.TemplateRenderer, error) {
	chromeOnce.Do(func() {
		chromeEngine, chromeErr = gotemplate.New(gotemplate.WithFS(TemplatesFS()))
	})
	return chromeEngine, chromeErr
}

func (b *Builder) chrome() (rendertemplate.TemplateRenderer, error) {
	if b.cfg.Templates != nil {
		return b.cfg.Templates, nil
	}
	return defaultChrome()
}

// Inputs wraps the given fragments in the standard fieldset/ordered-list
// chrome. An empty legend drops the legend element.
func (b *Builder) Inputs(legend string, fragments ...string) (string, error) {
	engine, err := b.chrome()
	if err != nil {
		return "", fmt.Errorf("render: chrome engine: %w", err)
	}
	out, err := engine.RenderTemplate("inputs", map[string]any{
		"legend":  legend,
		"content": strings.Join(fragments, ""),
		"class":   chromeClass(b.cfg.Theme, "inputs", chromeInputsClass),
		"style":   cssVarsStyle(b.cfg.Theme),
	})
	if err != nil {
		return "", fmt.Errorf("render: inputs chrome: %w", err)
	}
	return out, nil
}

// Form wraps content in a form element. Methods beyond GET and POST submit as
// POST with a hidden "_method" override, matching the multiparameter
// conventions the composite inputs follow.
func (b *Builder) Form(action, method, content string) (string, error) {
	engine, err := b.chrome()
	if err != nil {
		return "", fmt.Errorf("render: chrome engine: %w", err)
	}

	normalized := strings.ToUpper(strings.TrimSpace(method))
	if normalized == "" {
		normalized = "POST"
	}
	formMethod := "post"
	override := ""
	switch normalized {
	case "GET":
		formMethod = "get"
	case "POST":
	default:
		override = strings.ToLower(normalized)
	}

	out, err := engine.RenderTemplate("form", map[string]any{
		"action":   action,
		"method":   formMethod,
		"override": override,
		"content":  content,
		"class":    chromeClass(b.cfg.Theme, "form", chromeFormClass),
		"style":    cssVarsStyle(b.cfg.Theme),
	})
	if err != nil {
		return "", fmt.Errorf("render: form chrome: %w", err)
	}
	return out, nil
}
