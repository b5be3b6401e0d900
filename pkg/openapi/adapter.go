// Package openapi binds OpenAPI component schemas to the model.Record
// contract. A Resource is the parsed, reusable schema view; Bind attaches
// per-request values and validation errors to produce a renderable record.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Schema extensions recognized on properties.
const (
	// extType forces the column type ("text", "datetime", ...) when the
	// OpenAPI type/format mapping is not specific enough.
	extType = "x-formbuilder-type"
	// extRelation declares an association:
	//   x-formbuilder-relation: {kind: hasMany, target: Tag, foreignKey: tag_id}
	extRelation = "x-formbuilder-relation"
)

// LoadFile parses and validates an OpenAPI document from disk.
func LoadFile(ctx context.Context, path string) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %q: %w", path, err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate %q: %w", path, err)
	}
	return doc, nil
}

// LoadData parses and validates an OpenAPI document from memory.
func LoadData(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

// Resource is the schema-level view of one component: column metadata,
// associations, and required attributes. Resources are immutable after
// construction and safe to share across requests.
type Resource struct {
	objectName   string
	columns      map[string]model.Column
	associations map[string]model.Association
	foreignKeys  map[string]string
	required     map[string]struct{}
}

// ResourceFrom extracts a component schema from the document. objectName is
// the singular, underscored prefix used for field names and ids.
func ResourceFrom(doc *openapi3.T, component, objectName string) (*Resource, error) {
	if doc == nil {
		return nil, errors.New("openapi: document is nil")
	}
	objectName = strings.TrimSpace(objectName)
	if objectName == "" {
		return nil, errors.New("openapi: object name is required")
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("openapi: document has no components")
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: component schema %q not found", component)
	}
	schema := ref.Value

	resource := &Resource{
		objectName:   objectName,
		columns:      make(map[string]model.Column),
		associations: make(map[string]model.Association),
		foreignKeys:  make(map[string]string),
		required:     make(map[string]struct{}),
	}
	for _, name := range schema.Required {
		resource.required[name] = struct{}{}
	}
	for name, property := range schema.Properties {
		if property == nil || property.Value == nil {
			continue
		}
		if assoc, ok := relationFor(name, property.Value); ok {
			resource.associations[name] = assoc
			if assoc.ForeignKey != "" {
				resource.foreignKeys[assoc.ForeignKey] = name
			}
			continue
		}
		if column, ok := columnFor(property.Value); ok {
			resource.columns[name] = column
		}
	}
	return resource, nil
}

// ObjectName returns the id/name prefix the resource binds records under.
func (r *Resource) ObjectName() string { return r.objectName }

// Required reports whether the schema lists the attribute as required.
func (r *Resource) Required(attr string) bool {
	_, ok := r.required[attr]
	return ok
}

// Bind attaches per-request values and validation errors, yielding a
// model.Record the renderer can consume. Nil maps are fine.
func (r *Resource) Bind(values map[string]any, errs map[string][]string) *Record {
	return &Record{resource: r, values: values, errors: errs}
}

// Record is one bound instance of a Resource.
type Record struct {
	resource *Resource
	values   map[string]any
	errors   map[string][]string
	// Related supplies association option records, keyed by association name.
	Related map[string][]any
}

var (
	_ model.Record                = (*Record)(nil)
	_ model.AssociationCollection = (*Record)(nil)
)

func (r *Record) ObjectName() string { return r.resource.objectName }

func (r *Record) Value(attr string) any {
	if r.values == nil {
		return nil
	}
	return r.values[attr]
}

func (r *Record) ColumnFor(attr string) (model.Column, bool) {
	column, ok := r.resource.columns[attr]
	return column, ok
}

// AssociationFor resolves the attribute directly or through its foreign-key
// spelling ("author_id" finds the "author" association).
func (r *Record) AssociationFor(attr string) (model.Association, bool) {
	if assoc, ok := r.resource.associations[attr]; ok {
		return assoc, true
	}
	if name, ok := r.resource.foreignKeys[attr]; ok {
		assoc := r.resource.associations[name]
		return assoc, true
	}
	return model.Association{}, false
}

func (r *Record) ErrorsOn(attr string) []string {
	if r.errors == nil {
		return nil
	}
	return r.errors[attr]
}

// AssociatedRecords returns the option source for an association.
func (r *Record) AssociatedRecords(assoc model.Association) []any {
	if r.Related == nil {
		return nil
	}
	return r.Related[assoc.Name]
}

// columnFor maps OpenAPI type/format pairs onto column metadata. The
// extension override wins when present.
func columnFor(schema *openapi3.Schema) (model.Column, bool) {
	column := model.Column{Null: schema.Nullable}
	if schema.MaxLength != nil {
		column.Limit = int(*schema.MaxLength)
	}

	if raw, ok := schema.Extensions[extType]; ok {
		if forced, ok := raw.(string); ok && forced != "" {
			column.Type = model.ColumnType(forced)
			return column, true
		}
	}

	switch typeOf(schema) {
	case "string":
		switch schema.Format {
		case "date":
			column.Type = model.ColumnDate
		case "date-time":
			column.Type = model.ColumnDateTime
		case "time":
			column.Type = model.ColumnTime
		default:
			column.Type = model.ColumnString
		}
	case "integer":
		column.Type = model.ColumnInteger
	case "number":
		if schema.Format == "double" || schema.Format == "decimal" {
			column.Type = model.ColumnDecimal
		} else {
			column.Type = model.ColumnFloat
		}
	case "boolean":
		column.Type = model.ColumnBoolean
	default:
		return model.Column{}, false
	}
	return column, true
}

// relationFor reads the relation extension, falling back to structural
// detection: an array of $ref objects is hasMany, a bare $ref object is
// belongsTo.
func relationFor(name string, schema *openapi3.Schema) (model.Association, bool) {
	if raw, ok := schema.Extensions[extRelation]; ok {
		if decoded, ok := raw.(map[string]any); ok {
			assoc := model.Association{Name: name}
			if kind, _ := decoded["kind"].(string); kind != "" {
				assoc.Kind = model.RelationKind(kind)
			}
			if target, _ := decoded["target"].(string); target != "" {
				assoc.Target = target
			}
			if fk, _ := decoded["foreignKey"].(string); fk != "" {
				assoc.ForeignKey = fk
			}
			if assoc.Kind == "" {
				assoc.Kind = model.RelationBelongsTo
			}
			return assoc, true
		}
	}

	switch typeOf(schema) {
	case "array":
		if schema.Items != nil && schema.Items.Ref != "" {
			return model.Association{
				Kind:   model.RelationHasMany,
				Name:   name,
				Target: refComponent(schema.Items.Ref),
			}, true
		}
	}
	return model.Association{}, false
}

func typeOf(schema *openapi3.Schema) string {
	if schema.Type == nil || len(*schema.Type) == 0 {
		return ""
	}
	return (*schema.Type)[0]
}

func refComponent(ref string) string {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}
