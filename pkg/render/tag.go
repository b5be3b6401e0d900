package render

import (
	"html"
	"sort"
	"strings"
)

// Attrs is an HTML attribute map. An empty value renders as a bare boolean
// attribute (multiple, checked, selected, disabled).
type Attrs map[string]string

// clone returns a mutable copy; nil stays cheap to merge into.
func (a Attrs) clone() Attrs {
	if len(a) == 0 {
		return Attrs{}
	}
	out := make(Attrs, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// merge layers updates over the receiver. Caller keys win, except "class",
// which appends so caller classes never silently drop the computed ones.
func (a Attrs) merge(updates Attrs) Attrs {
	out := a.clone()
	for key, value := range updates {
		if key == "class" {
			out[key] = joinClasses(out[key], value)
			continue
		}
		out[key] = value
	}
	return out
}

func joinClasses(classes ...string) string {
	keep := make([]string, 0, len(classes))
	for _, class := range classes {
		if class = strings.TrimSpace(class); class != "" {
			keep = append(keep, class)
		}
	}
	return strings.Join(keep, " ")
}

// writeTag emits a void element. Attributes are written in sorted order so
// identical inputs always produce byte-identical markup.
func writeTag(out *strings.Builder, name string, attrs Attrs) {
	out.WriteByte('<')
	out.WriteString(name)
	writeAttrs(out, attrs)
	out.WriteByte('>')
}

// writeContentTag emits an element wrapping pre-rendered (trusted) content.
func writeContentTag(out *strings.Builder, name, content string, attrs Attrs) {
	writeTag(out, name, attrs)
	out.WriteString(content)
	out.WriteString("</")
	out.WriteString(name)
	out.WriteByte('>')
}

func writeAttrs(out *strings.Builder, attrs Attrs) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		out.WriteByte(' ')
		out.WriteString(key)
		if attrs[key] == "" {
			continue
		}
		out.WriteString(`="`)
		out.WriteString(html.EscapeString(attrs[key]))
		out.WriteByte('"')
	}
}

func escape(s string) string {
	return html.EscapeString(s)
}
