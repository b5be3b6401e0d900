// Package testsupport provides map-backed fakes for the model contracts so
// component and renderer tests can declare fixtures inline.
package testsupport

import (
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// FakeRecord is a fully in-memory model.Record. Every field is optional; the
// zero value behaves like a record with no metadata.
type FakeRecord struct {
	Object       string
	Values       map[string]any
	Columns      map[string]model.Column
	Associations map[string]model.Association
	Errors       map[string][]string
	// Related backs AssociatedRecords, keyed by association name.
	Related map[string][]any
}

var (
	_ model.Record                = (*FakeRecord)(nil)
	_ model.AssociationCollection = (*FakeRecord)(nil)
)

func (f *FakeRecord) ObjectName() string { return f.Object }

func (f *FakeRecord) Value(attr string) any {
	if f.Values == nil {
		return nil
	}
	return f.Values[attr]
}

func (f *FakeRecord) ColumnFor(attr string) (model.Column, bool) {
	column, ok := f.Columns[attr]
	return column, ok
}

// AssociationFor matches the attribute name directly, then by foreign key so
// "author_id" finds the "author" association the way a reflection layer
// would.
func (f *FakeRecord) AssociationFor(attr string) (model.Association, bool) {
	if assoc, ok := f.Associations[attr]; ok {
		return assoc, true
	}
	for _, assoc := range f.Associations {
		if assoc.ForeignKey != "" && assoc.ForeignKey == attr {
			return assoc, true
		}
	}
	return model.Association{}, false
}

func (f *FakeRecord) ErrorsOn(attr string) []string {
	if f.Errors == nil {
		return nil
	}
	return f.Errors[attr]
}

func (f *FakeRecord) AssociatedRecords(assoc model.Association) []any {
	if f.Related == nil {
		return nil
	}
	return f.Related[assoc.Name]
}

// FakeOption is a labelled, identifiable collection member for selection
// fixtures.
type FakeOption struct {
	ObjectID any
	Text     string
}

func (o FakeOption) ID() any       { return o.ObjectID }
func (o FakeOption) Name() string  { return o.Text }
func (o FakeOption) Label() string { return o.Text }

// FakeAttachment satisfies model.Attachment for file input fixtures.
type FakeAttachment struct {
	Name string
	Type string
}

func (a FakeAttachment) Filename() string    { return a.Name }
func (a FakeAttachment) ContentType() string { return a.Type }
