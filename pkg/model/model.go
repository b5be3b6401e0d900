package model

import "strings"

// ColumnType enumerates the schema-level attribute types the resolver
// understands. Values mirror the vocabulary used by relational schema
// introspection so adapters can map their own metadata onto it directly.
type ColumnType string

const (
	ColumnString    ColumnType = "string"
	ColumnText      ColumnType = "text"
	ColumnInteger   ColumnType = "integer"
	ColumnFloat     ColumnType = "float"
	ColumnDecimal   ColumnType = "decimal"
	ColumnBoolean   ColumnType = "boolean"
	ColumnDate      ColumnType = "date"
	ColumnDateTime  ColumnType = "datetime"
	ColumnTimestamp ColumnType = "timestamp"
	ColumnTime      ColumnType = "time"
)

// Numeric reports whether the column holds a numeric value.
func (t ColumnType) Numeric() bool {
	switch t {
	case ColumnInteger, ColumnFloat, ColumnDecimal:
		return true
	default:
		return false
	}
}

// Temporal reports whether the column holds a date/time value.
func (t ColumnType) Temporal() bool {
	switch t {
	case ColumnDate, ColumnDateTime, ColumnTimestamp, ColumnTime:
		return true
	default:
		return false
	}
}

// Column carries per-attribute schema metadata: the declared type, whether
// NULL is permitted, and an optional size limit (0 means unlimited/unknown).
type Column struct {
	Type  ColumnType
	Null  bool
	Limit int
}

// RelationKind enumerates the association shapes the name generator and the
// selection strategies care about.
type RelationKind string

const (
	RelationBelongsTo  RelationKind = "belongsTo"
	RelationHasOne     RelationKind = "hasOne"
	RelationHasMany    RelationKind = "hasMany"
	RelationManyToMany RelationKind = "manyToMany"
)

// Association describes a reflected relationship between two record types.
type Association struct {
	Kind       RelationKind
	Name       string
	Target     string
	ForeignKey string
}

// Many reports whether the association points at a collection, which switches
// selection inputs into multi-select mode and drives the `_ids` field naming.
func (a Association) Many() bool {
	return a.Kind == RelationHasMany || a.Kind == RelationManyToMany
}

// Record is the metadata provider contract every bound object must satisfy.
// Implementations are read-only during rendering; all lookups are expected to
// be in-memory. The pkg/openapi adapter and pkg/testsupport fixtures are the
// bundled implementations.
type Record interface {
	// ObjectName is the singular, underscored name used as the id/name prefix
	// for every generated control (e.g. "post").
	ObjectName() string
	// Value returns the current value for the attribute, or nil.
	Value(attr string) any
	// ColumnFor returns schema metadata for the attribute when known.
	ColumnFor(attr string) (Column, bool)
	// AssociationFor returns association reflection for the attribute (or its
	// foreign-key spelling) when one exists.
	AssociationFor(attr string) (Association, bool)
	// ErrorsOn returns the validation messages currently attached to the
	// attribute; an empty slice means the attribute is clean.
	ErrorsOn(attr string) []string
}

// AssociationCollection is an optional Record capability that exposes the
// full related-record set for an association. Ordering is owned by the data
// layer; the normalizer preserves whatever order it receives.
type AssociationCollection interface {
	AssociatedRecords(assoc Association) []any
}

// Attachment marks attribute values that behave like uploaded files. The
// resolver treats any attribute whose value satisfies this as a file input.
type Attachment interface {
	Filename() string
	ContentType() string
}

// Capability interfaces probed, in configurable order, when deriving a display
// label for a collection member.
type (
	Labeled interface{ Label() string }
	Named   interface{ Name() string }
	Titled  interface{ Title() string }
)

// Identifiable exposes the underlying value used when a collection member is
// rendered as an option.
type Identifiable interface{ ID() any }

// Attribute is the (record, attribute name) pair every component operates on.
type Attribute struct {
	Record Record
	Name   string
}

// Attr builds an attribute reference.
func Attr(record Record, name string) Attribute {
	return Attribute{Record: record, Name: strings.TrimSpace(name)}
}

// Column returns the attribute's column metadata when declared.
func (a Attribute) Column() (Column, bool) {
	if a.Record == nil {
		return Column{}, false
	}
	return a.Record.ColumnFor(a.Name)
}

// Association returns the attribute's association reflection when present.
func (a Attribute) Association() (Association, bool) {
	if a.Record == nil {
		return Association{}, false
	}
	return a.Record.AssociationFor(a.Name)
}

// Value returns the attribute's current value, or nil.
func (a Attribute) Value() any {
	if a.Record == nil {
		return nil
	}
	return a.Record.Value(a.Name)
}

// Errors returns the validation messages attached to the attribute.
func (a Attribute) Errors() []string {
	if a.Record == nil {
		return nil
	}
	return a.Record.ErrorsOn(a.Name)
}

// HasErrors reports whether the record currently holds validation errors for
// this attribute.
func (a Attribute) HasErrors() bool {
	return len(a.Errors()) > 0
}
