// Command formbuilder renders an HTML form for one component schema of an
// OpenAPI document. Values and validation errors can be supplied as JSON
// files to preview filled and failed states.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	formbuilder "github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/components/countries"
	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

func main() {
	source := flag.String("source", "schema.yaml", "OpenAPI document path")
	component := flag.String("component", "", "component schema to render (required)")
	object := flag.String("object", "", "object name used as the field prefix (required)")
	attrs := flag.String("attrs", "", "comma-separated attribute list; empty renders nothing")
	action := flag.String("action", "/", "form action")
	method := flag.String("method", "POST", "form method")
	legend := flag.String("legend", "", "fieldset legend")
	valuesPath := flag.String("values", "", "JSON file with current attribute values")
	errorsPath := flag.String("errors", "", "JSON file with validation errors per attribute")
	localesDir := flag.String("locales", "", "directory of YAML locale files")
	locale := flag.String("locale", "en", "locale passed to the translator")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if *component == "" || *object == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	doc, err := openapi.LoadFile(ctx, *source)
	if err != nil {
		log.Fatalf("load document: %v", err)
	}
	resource, err := openapi.ResourceFrom(doc, *component, *object)
	if err != nil {
		log.Fatalf("resolve component: %v", err)
	}

	var values map[string]any
	if err := readJSON(*valuesPath, &values); err != nil {
		log.Fatalf("read values: %v", err)
	}
	var validation map[string][]string
	if err := readJSON(*errorsPath, &validation); err != nil {
		log.Fatalf("read errors: %v", err)
	}

	opts := []formbuilder.Option{
		render.WithCountries(countries.MustDefault()),
	}
	if *localesDir != "" {
		store, err := i18n.LoadFS(os.DirFS(*localesDir))
		if err != nil {
			log.Fatalf("load locales: %v", err)
		}
		opts = append(opts, render.WithTranslator(store, *locale))
	}

	builder, err := formbuilder.New(resource.Bind(values, validation), opts...)
	if err != nil {
		log.Fatalf("build renderer: %v", err)
	}

	var fragments []string
	for _, attr := range splitAttrs(*attrs) {
		required := resource.Required(attr)
		fragment, err := builder.Input(attr, formbuilder.InputOptions{Required: &required})
		if err != nil {
			log.Fatalf("render %q: %v", attr, err)
		}
		fragments = append(fragments, fragment)
	}

	grouped, err := builder.Inputs(*legend, fragments...)
	if err != nil {
		log.Fatalf("group inputs: %v", err)
	}
	form, err := builder.Form(*action, *method, grouped)
	if err != nil {
		log.Fatalf("wrap form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(form), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("form written to %s\n", *output)
		return
	}
	fmt.Println(form)
}

func readJSON(path string, target any) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func splitAttrs(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
