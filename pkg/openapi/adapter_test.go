package openapi

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

const blogDoc = `
openapi: 3.0.3
info:
  title: Blog
  version: 1.0.0
paths: {}
components:
  schemas:
    Tag:
      type: object
      properties:
        id:
          type: integer
        name:
          type: string
    Post:
      type: object
      required: [title]
      properties:
        title:
          type: string
          maxLength: 120
        body:
          type: string
          x-formbuilder-type: text
        published:
          type: boolean
        published_on:
          type: string
          format: date
        created_at:
          type: string
          format: date-time
        rating:
          type: number
        price:
          type: number
          format: decimal
        views:
          type: integer
          nullable: true
        author:
          type: integer
          x-formbuilder-relation:
            kind: belongsTo
            target: Author
            foreignKey: author_id
        tags:
          type: array
          items:
            $ref: '#/components/schemas/Tag'
`

func blogResource(t *testing.T) *Resource {
	t.Helper()
	doc, err := LoadData(context.Background(), []byte(blogDoc))
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	resource, err := ResourceFrom(doc, "Post", "post")
	if err != nil {
		t.Fatalf("resource: %v", err)
	}
	return resource
}

func TestResourceFrom_Columns(t *testing.T) {
	resource := blogResource(t)
	record := resource.Bind(nil, nil)

	cases := []struct {
		attr   string
		expect model.Column
	}{
		{"title", model.Column{Type: model.ColumnString, Limit: 120}},
		{"body", model.Column{Type: model.ColumnText}},
		{"published", model.Column{Type: model.ColumnBoolean}},
		{"published_on", model.Column{Type: model.ColumnDate}},
		{"created_at", model.Column{Type: model.ColumnDateTime}},
		{"rating", model.Column{Type: model.ColumnFloat}},
		{"price", model.Column{Type: model.ColumnDecimal}},
		{"views", model.Column{Type: model.ColumnInteger, Null: true}},
	}
	for _, tc := range cases {
		t.Run(tc.attr, func(t *testing.T) {
			column, ok := record.ColumnFor(tc.attr)
			if !ok {
				t.Fatalf("expected column metadata for %q", tc.attr)
			}
			if column != tc.expect {
				t.Fatalf("column mismatch for %q: got %+v, want %+v", tc.attr, column, tc.expect)
			}
		})
	}

	if _, ok := record.ColumnFor("author"); ok {
		t.Fatalf("relation properties must not double as columns")
	}
}

func TestResourceFrom_Associations(t *testing.T) {
	resource := blogResource(t)
	record := resource.Bind(nil, nil)

	author, ok := record.AssociationFor("author")
	if !ok {
		t.Fatalf("expected author association")
	}
	if author.Kind != model.RelationBelongsTo || author.Target != "Author" || author.ForeignKey != "author_id" {
		t.Fatalf("unexpected association %+v", author)
	}

	// Foreign-key spelling resolves to the same association.
	byFK, ok := record.AssociationFor("author_id")
	if !ok || byFK.Name != "author" {
		t.Fatalf("expected author_id to resolve through the foreign key, got %+v (ok=%v)", byFK, ok)
	}

	tags, ok := record.AssociationFor("tags")
	if !ok {
		t.Fatalf("expected tags association")
	}
	if tags.Kind != model.RelationHasMany || tags.Target != "Tag" {
		t.Fatalf("unexpected association %+v", tags)
	}
}

func TestResource_Required(t *testing.T) {
	resource := blogResource(t)
	if !resource.Required("title") {
		t.Fatalf("expected title required")
	}
	if resource.Required("body") {
		t.Fatalf("expected body optional")
	}
}

func TestRecord_ValuesAndErrors(t *testing.T) {
	resource := blogResource(t)
	record := resource.Bind(
		map[string]any{"title": "Hello"},
		map[string][]string{"title": {"is too short"}},
	)

	if record.ObjectName() != "post" {
		t.Fatalf("unexpected object name %q", record.ObjectName())
	}
	if got := record.Value("title"); got != "Hello" {
		t.Fatalf("unexpected value %v", got)
	}
	if got := record.Value("missing"); got != nil {
		t.Fatalf("expected nil for unknown attribute, got %v", got)
	}
	if got := record.ErrorsOn("title"); len(got) != 1 || got[0] != "is too short" {
		t.Fatalf("unexpected errors %v", got)
	}

	record.Related = map[string][]any{"tags": {"go", "web"}}
	tags, _ := record.AssociationFor("tags")
	if got := record.AssociatedRecords(tags); len(got) != 2 {
		t.Fatalf("expected related records, got %v", got)
	}
}

func TestResourceFrom_Validation(t *testing.T) {
	doc, err := LoadData(context.Background(), []byte(blogDoc))
	if err != nil {
		t.Fatalf("load document: %v", err)
	}

	if _, err := ResourceFrom(doc, "Missing", "post"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected missing component error, got %v", err)
	}
	if _, err := ResourceFrom(doc, "Post", " "); err == nil {
		t.Fatalf("expected object name validation error")
	}
	if _, err := ResourceFrom(nil, "Post", "post"); err == nil {
		t.Fatalf("expected nil document error")
	}
}

func TestLoadData_Empty(t *testing.T) {
	if _, err := LoadData(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
