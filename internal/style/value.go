package style

import (
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
)

// Handler turns a full utility token into a CSS fragment.
type Handler func(token string) string

// Kind identifies what a Value holds.
type Kind int

const (
	KindLiteral Kind = iota
	KindHandler
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindHandler:
		return "handler"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Value is a single theme entry: a literal CSS value or fragment, a handler,
// or a nested group of entries.
type Value struct {
	kind    Kind
	literal string
	handler Handler
	group   Config
}

// Literal wraps a literal CSS value or fragment.
func Literal(s string) Value {
	return Value{kind: KindLiteral, literal: s}
}

// Func wraps a handler.
func Func(h Handler) Value {
	return Value{kind: KindHandler, handler: h}
}

// Group wraps a nested set of entries. Groups merge recursively.
func Group(entries Config) Value {
	return Value{kind: KindGroup, group: entries}
}

// Kind reports what the value holds.
func (v Value) Kind() Kind { return v.kind }

// AsLiteral returns the literal string when the value is a literal.
func (v Value) AsLiteral() (string, bool) {
	if v.kind != KindLiteral {
		return "", false
	}
	return v.literal, true
}

// AsHandler returns the handler when the value is a handler.
func (v Value) AsHandler() (Handler, bool) {
	if v.kind != KindHandler || v.handler == nil {
		return nil, false
	}
	return v.handler, true
}

// AsGroup returns the nested entries when the value is a group.
func (v Value) AsGroup() (Config, bool) {
	if v.kind != KindGroup {
		return nil, false
	}
	return v.group, true
}

// String renders the value the way a theme lookup stringifies it.
func (v Value) String() string {
	switch v.kind {
	case KindLiteral:
		return v.literal
	case KindHandler:
		return "[handler]"
	case KindGroup:
		keys := v.group.Keys()
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+v.group[k].String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}

// Config is a partial theme: style key to value.
type Config map[string]Value

// Keys returns the config keys in sorted order.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Literals builds a Config whose entries are all literals.
func Literals(entries map[string]string) Config {
	cfg := make(Config, len(entries))
	for k, v := range entries {
		cfg[k] = Literal(v)
	}
	return cfg
}

var revisions atomic.Uint64

// Theme is a named, fully merged and immutable style table.
type Theme struct {
	name     string
	revision uint64
	entries  Config
}

// NewTheme merges the style modules with overrides into a complete theme.
// Every call yields a fresh revision, so two themes built under the same name
// never share an identity.
func NewTheme(name string, overrides Config) *Theme {
	return &Theme{
		name:     name,
		revision: revisions.Add(1),
		entries:  Merge(Modules(), overrides),
	}
}

// Name returns the registered theme name.
func (t *Theme) Name() string { return t.name }

// Identity distinguishes this theme build from any other, including earlier
// registrations under the same name.
func (t *Theme) Identity() string {
	return t.name + "@" + strconv.FormatUint(t.revision, 10)
}

// Lookup returns the raw entry for key.
func (t *Theme) Lookup(key string) (Value, bool) {
	if t == nil {
		return Value{}, false
	}
	v, ok := t.entries[key]
	return v, ok
}

// Literal returns the literal entry for key.
func (t *Theme) Literal(key string) (string, bool) {
	v, ok := t.Lookup(key)
	if !ok {
		return "", false
	}
	return v.AsLiteral()
}

// Handler returns the handler entry for key.
func (t *Theme) Handler(key string) (Handler, bool) {
	v, ok := t.Lookup(key)
	if !ok {
		return nil, false
	}
	return v.AsHandler()
}

// Keys returns all style keys in sorted order.
func (t *Theme) Keys() []string {
	if t == nil {
		return nil
	}
	return t.entries.Keys()
}

// Len returns the number of entries.
func (t *Theme) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
