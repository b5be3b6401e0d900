package input

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Matcher decides whether a resolver rule applies to the supplied attribute.
type Matcher func(attr model.Attribute) bool

type rule struct {
	kind     Kind
	priority int
	match    Matcher
	order    int
}

// Resolver infers the input kind for an attribute from naming heuristics,
// association reflection, column metadata, and value capabilities. Rules are
// evaluated by priority; higher wins, ties fall back to registration order.
// Resolution is pure: no rule mutates the attribute or its record.
type Resolver struct {
	mu    sync.RWMutex
	rules []rule
}

// NewResolver constructs a resolver with the built-in rules registered.
func NewResolver() *Resolver {
	res := &Resolver{}
	res.registerBuiltins()
	return res
}

// Register adds a resolution rule. Host applications can layer custom
// heuristics (for example, mapping a "color" column to a bespoke kind
// registered alongside a custom strategy) above or below the built-ins.
func (r *Resolver) Register(kind Kind, priority int, match Matcher) {
	if r == nil || match == nil || kind == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		kind:     kind,
		priority: priority,
		match:    match,
		order:    len(r.rules),
	})
}

// Resolve returns the input kind for the attribute. It never fails: when no
// rule matches, the attribute renders as a plain string input.
func (r *Resolver) Resolve(attr model.Attribute) Kind {
	if r == nil {
		return KindString
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(attr) {
			return entry.kind
		}
	}
	return KindString
}

// Built-in rule priorities. Naming heuristics outrank the column mapping so a
// string column named "user_password" still renders as a password input, but
// they only apply to string columns (or attributes with no column metadata):
// an integer "password_attempts" stays numeric. Association reflection
// outranks the numeric mapping so integer foreign keys render as selects.
func (r *Resolver) registerBuiltins() {
	r.Register(KindPassword, 100, nameRule("password"))
	r.Register(KindTimeZone, 95, nameRule("time_zone"))
	r.Register(KindCountry, 90, nameRule("country"))

	r.Register(KindSelect, 80, func(attr model.Attribute) bool {
		_, ok := attr.Association()
		return ok
	})

	// Integer columns spelled like foreign keys select their target even when
	// the record exposes no association reflection for them.
	r.Register(KindSelect, 75, func(attr model.Attribute) bool {
		column, ok := attr.Column()
		if !ok || column.Type != model.ColumnInteger {
			return false
		}
		return strings.HasSuffix(attr.Name, "_id")
	})

	r.Register(KindNumeric, 70, columnRule(func(t model.ColumnType) bool { return t.Numeric() }))
	r.Register(KindText, 70, columnRule(func(t model.ColumnType) bool { return t == model.ColumnText }))
	r.Register(KindDate, 70, columnRule(func(t model.ColumnType) bool { return t == model.ColumnDate }))
	r.Register(KindDateTime, 70, columnRule(func(t model.ColumnType) bool {
		return t == model.ColumnDateTime || t == model.ColumnTimestamp
	}))
	r.Register(KindTime, 70, columnRule(func(t model.ColumnType) bool { return t == model.ColumnTime }))
	r.Register(KindBoolean, 70, columnRule(func(t model.ColumnType) bool { return t == model.ColumnBoolean }))
	r.Register(KindString, 70, columnRule(func(t model.ColumnType) bool { return t == model.ColumnString }))

	r.Register(KindFile, 60, func(attr model.Attribute) bool {
		_, ok := attr.Value().(model.Attachment)
		return ok
	})
}

// nameRule matches an attribute whose name contains the fragment, but only
// when the column is a string or the record exposes no column metadata. Typed
// columns keep their column mapping regardless of name.
func nameRule(fragment string) Matcher {
	return func(attr model.Attribute) bool {
		if !strings.Contains(strings.ToLower(attr.Name), fragment) {
			return false
		}
		column, ok := attr.Column()
		return !ok || column.Type == model.ColumnString
	}
}

func columnRule(accept func(model.ColumnType) bool) Matcher {
	return func(attr model.Attribute) bool {
		column, ok := attr.Column()
		if !ok {
			return false
		}
		return accept(column.Type)
	}
}
