package choices

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestNormalize_ExplicitCollections(t *testing.T) {
	attr := model.Attr(&testsupport.FakeRecord{Object: "post"}, "status")

	cases := []struct {
		name       string
		collection any
		expect     []Choice
	}{
		{
			name:       "choice slice passes through in order",
			collection: []Choice{{Label: "Draft", Value: "draft"}, {Label: "Live", Value: "live"}},
			expect:     []Choice{{Label: "Draft", Value: "draft"}, {Label: "Live", Value: "live"}},
		},
		{
			name:       "string slice uses value as label",
			collection: []string{"draft", "live"},
			expect:     []Choice{{Label: "draft", Value: "draft"}, {Label: "live", Value: "live"}},
		},
		{
			name:       "pair slice maps label then value",
			collection: [][2]string{{"Draft", "0"}, {"Live", "1"}},
			expect:     []Choice{{Label: "Draft", Value: "0"}, {Label: "Live", Value: "1"}},
		},
		{
			name:       "map sorts by key for stable output",
			collection: map[string]string{"Live": "1", "Draft": "0"},
			expect:     []Choice{{Label: "Draft", Value: "0"}, {Label: "Live", Value: "1"}},
		},
		{
			name:       "int slice stringifies",
			collection: []int{3, 1, 2},
			expect:     []Choice{{Label: "3", Value: "3"}, {Label: "1", Value: "1"}, {Label: "2", Value: "2"}},
		},
		{
			name:       "empty collection yields empty list",
			collection: []string{},
			expect:     []Choice{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(attr, Options{Collection: tc.collection})
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Fatalf("choices mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_AssociationRecords(t *testing.T) {
	record := &testsupport.FakeRecord{
		Object: "post",
		Associations: map[string]model.Association{
			"tags": {Kind: model.RelationHasMany, Name: "tags", Target: "Tag"},
		},
		Related: map[string][]any{
			"tags": {
				testsupport.FakeOption{ObjectID: 1, Text: "go"},
				testsupport.FakeOption{ObjectID: 2, Text: "web"},
			},
		},
	}

	got := Normalize(model.Attr(record, "tags"), Options{})
	expect := []Choice{
		{Label: "go", Value: "1"},
		{Label: "web", Value: "2"},
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_BooleanDomain(t *testing.T) {
	record := &testsupport.FakeRecord{
		Object:  "post",
		Columns: map[string]model.Column{"published": {Type: model.ColumnBoolean}},
	}

	got := Normalize(model.Attr(record, "published"), Options{})
	expect := []Choice{
		{Label: "Yes", Value: "true"},
		{Label: "No", Value: "false"},
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Fatalf("boolean domain mismatch (-want +got):\n%s", diff)
	}

	got = Normalize(model.Attr(record, "published"), Options{TrueLabel: "On", FalseLabel: "Off"})
	if got[0].Label != "On" || got[1].Label != "Off" {
		t.Fatalf("expected configured captions, got %+v", got)
	}
}

func TestNormalize_NoSource(t *testing.T) {
	record := &testsupport.FakeRecord{Object: "post"}
	if got := Normalize(model.Attr(record, "title"), Options{}); len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

func TestNormalize_LabelMethodOrder(t *testing.T) {
	items := []any{testsupport.FakeOption{ObjectID: 7, Text: "Editors"}}

	got := Normalize(model.Attr(&testsupport.FakeRecord{Object: "post"}, "group"), Options{
		Collection:   items,
		LabelMethods: []string{"name"},
	})
	if got[0].Label != "Editors" || got[0].Value != "7" {
		t.Fatalf("unexpected choice %+v", got[0])
	}
}

func TestNormalize_FuncOverrides(t *testing.T) {
	items := []any{testsupport.FakeOption{ObjectID: 7, Text: "Editors"}}

	got := Normalize(model.Attr(&testsupport.FakeRecord{Object: "post"}, "group"), Options{
		Collection: items,
		LabelFunc:  func(any) string { return "custom label" },
		ValueFunc:  func(any) string { return "custom-value" },
	})
	expect := []Choice{{Label: "custom label", Value: "custom-value"}}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Fatalf("override mismatch (-want +got):\n%s", diff)
	}
}

func TestValueOf(t *testing.T) {
	if got := ValueOf(testsupport.FakeOption{ObjectID: 42, Text: "x"}, Options{}); got != "42" {
		t.Fatalf("expected identifiable value, got %q", got)
	}
	if got := ValueOf("draft", Options{}); got != "draft" {
		t.Fatalf("expected primitive pass-through, got %q", got)
	}
	if got := ValueOf(true, Options{}); got != "true" {
		t.Fatalf("expected boolean formatting, got %q", got)
	}
}
