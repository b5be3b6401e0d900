package naming

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func TestFieldName(t *testing.T) {
	cases := []struct {
		name   string
		object string
		attr   string
		index  int
		expect string
	}{
		{"plain", "post", "title", NoIndex, "post[title]"},
		{"indexed", "post", "title", 2, "post[2][title]"},
		{"zero index", "post", "title", 0, "post[0][title]"},
		{"no object", "", "title", NoIndex, "title"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FieldName(tc.object, tc.attr, tc.index); got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestHTMLID(t *testing.T) {
	cases := []struct {
		name   string
		object string
		index  int
		parts  []string
		expect string
	}{
		{"plain", "post", NoIndex, []string{"title"}, "post_title"},
		{"indexed", "post", 2, []string{"title"}, "post_2_title"},
		{"multipart", "post", NoIndex, []string{"created_at", "1i"}, "post_created_at_1i"},
		{"sanitized", "post", NoIndex, []string{"America/New_York"}, "post_America_New_York"},
		{"blank parts dropped", "post", NoIndex, []string{"", "title"}, "post_title"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTMLID(tc.object, tc.index, tc.parts...); got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestWrapperID(t *testing.T) {
	if got := WrapperID("post", NoIndex, "title"); got != "post_title_input" {
		t.Fatalf("expected post_title_input, got %q", got)
	}
	if got := WrapperID("post", 1, "title"); got != "post_1_title_input" {
		t.Fatalf("expected post_1_title_input, got %q", got)
	}
}

func TestAssociationAttr(t *testing.T) {
	cases := []struct {
		name   string
		attr   string
		assoc  model.Association
		ok     bool
		expect string
	}{
		{
			name:   "has many singularizes and appends _ids",
			attr:   "tags",
			assoc:  model.Association{Kind: model.RelationHasMany, Name: "tags"},
			ok:     true,
			expect: "tag_ids",
		},
		{
			name:   "many to many",
			attr:   "categories",
			assoc:  model.Association{Kind: model.RelationManyToMany, Name: "categories"},
			ok:     true,
			expect: "category_ids",
		},
		{
			name:   "belongs to uses foreign key",
			attr:   "author",
			assoc:  model.Association{Kind: model.RelationBelongsTo, Name: "author", ForeignKey: "writer_id"},
			ok:     true,
			expect: "writer_id",
		},
		{
			name:   "belongs to appends _id",
			attr:   "author",
			assoc:  model.Association{Kind: model.RelationBelongsTo, Name: "author"},
			ok:     true,
			expect: "author_id",
		},
		{
			name:   "belongs to does not double the suffix",
			attr:   "author_id",
			assoc:  model.Association{Kind: model.RelationBelongsTo, Name: "author"},
			ok:     true,
			expect: "author_id",
		},
		{
			name:   "has one passes through",
			attr:   "profile",
			assoc:  model.Association{Kind: model.RelationHasOne, Name: "profile"},
			ok:     true,
			expect: "profile",
		},
		{
			name:   "no association passes through",
			attr:   "title",
			ok:     false,
			expect: "title",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AssociationAttr(tc.attr, tc.assoc, tc.ok); got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestHumanize(t *testing.T) {
	cases := []struct {
		in     string
		expect string
	}{
		{"title", "Title"},
		{"created_at", "Created At"},
		{"author_id", "Author"},
		{"firstName", "First name"},
		{"SKU-code", "Sku Code"},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := Humanize(tc.in); got != tc.expect {
				t.Fatalf("Humanize(%q) = %q, expected %q", tc.in, got, tc.expect)
			}
		})
	}
}
