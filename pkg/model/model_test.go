package model

import "testing"

type mapRecord struct {
	values map[string]any
	errs   map[string][]string
}

func (m mapRecord) ObjectName() string                        { return "post" }
func (m mapRecord) Value(attr string) any                     { return m.values[attr] }
func (m mapRecord) ColumnFor(string) (Column, bool)           { return Column{}, false }
func (m mapRecord) AssociationFor(string) (Association, bool) { return Association{}, false }
func (m mapRecord) ErrorsOn(attr string) []string             { return m.errs[attr] }

func TestColumnType_Predicates(t *testing.T) {
	for _, numeric := range []ColumnType{ColumnInteger, ColumnFloat, ColumnDecimal} {
		if !numeric.Numeric() {
			t.Fatalf("expected %s numeric", numeric)
		}
	}
	if ColumnString.Numeric() {
		t.Fatalf("string is not numeric")
	}
	for _, temporal := range []ColumnType{ColumnDate, ColumnDateTime, ColumnTimestamp, ColumnTime} {
		if !temporal.Temporal() {
			t.Fatalf("expected %s temporal", temporal)
		}
	}
	if ColumnBoolean.Temporal() {
		t.Fatalf("boolean is not temporal")
	}
}

func TestAssociation_Many(t *testing.T) {
	if !(Association{Kind: RelationHasMany}).Many() {
		t.Fatalf("hasMany is a collection")
	}
	if !(Association{Kind: RelationManyToMany}).Many() {
		t.Fatalf("manyToMany is a collection")
	}
	if (Association{Kind: RelationBelongsTo}).Many() {
		t.Fatalf("belongsTo is singular")
	}
}

func TestAttribute_Helpers(t *testing.T) {
	record := mapRecord{
		values: map[string]any{"title": "Hello"},
		errs:   map[string][]string{"title": {"is taken"}},
	}

	attr := Attr(record, " title ")
	if attr.Name != "title" {
		t.Fatalf("expected trimmed name, got %q", attr.Name)
	}
	if got := attr.Value(); got != "Hello" {
		t.Fatalf("unexpected value %v", got)
	}
	if !attr.HasErrors() {
		t.Fatalf("expected errors")
	}
}

func TestAttribute_NilRecord(t *testing.T) {
	attr := Attribute{Name: "title"}
	if attr.Value() != nil {
		t.Fatalf("expected nil value")
	}
	if _, ok := attr.Column(); ok {
		t.Fatalf("expected no column")
	}
	if _, ok := attr.Association(); ok {
		t.Fatalf("expected no association")
	}
	if attr.HasErrors() {
		t.Fatalf("expected no errors")
	}
}
