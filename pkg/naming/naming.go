// Package naming derives the HTML ids, field names, and human-readable labels
// shared by every rendered input. Field naming follows the rack-style
// "object[attr]" convention so the host application can reassemble nested
// values on submission.
package naming

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// NoIndex marks the absence of a nesting index.
const NoIndex = -1

// FieldName builds the submission name for an attribute, honouring an
// optional nesting index: "post[title]", "post[2][title]".
func FieldName(objectName, attr string, index int) string {
	if objectName == "" {
		return attr
	}
	if index >= 0 {
		return fmt.Sprintf("%s[%d][%s]", objectName, index, attr)
	}
	return fmt.Sprintf("%s[%s]", objectName, attr)
}

// HTMLID builds a deterministic control id from the object name, an optional
// nesting index, and any number of trailing parts: "post_title",
// "post_2_created_at_1i".
func HTMLID(objectName string, index int, parts ...string) string {
	segments := make([]string, 0, len(parts)+2)
	if objectName != "" {
		segments = append(segments, objectName)
	}
	if index >= 0 {
		segments = append(segments, fmt.Sprintf("%d", index))
	}
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	return sanitizeID(strings.Join(segments, "_"))
}

// WrapperID builds the id carried by the list-item wrapper around a control.
func WrapperID(objectName string, index int, attr string) string {
	return HTMLID(objectName, index, attr, "input")
}

// AssociationAttr derives the submission attribute for an association:
// collection associations singularize the attribute and append "_ids"
// ("tags" becomes "tag_ids"); belongs-to uses the configured foreign key or
// appends "_id". Attributes without an association pass through unchanged.
func AssociationAttr(attr string, assoc model.Association, ok bool) string {
	if !ok {
		return attr
	}
	if assoc.Many() {
		return inflect.Singularize(attr) + "_ids"
	}
	if assoc.Kind == model.RelationBelongsTo {
		if assoc.ForeignKey != "" {
			return assoc.ForeignKey
		}
		if strings.HasSuffix(attr, "_id") {
			return attr
		}
		return attr + "_id"
	}
	return attr
}

func sanitizeID(id string) string {
	var out strings.Builder
	out.Grow(len(id))
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}
	return out.String()
}
