package style

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Op selects how an Entry is written into a Document.
type Op int

const (
	// OpSet replaces the key's value.
	OpSet Op = iota
	// OpChain merges CSS functions into a space separated function list,
	// replacing functions of the same name or appending new ones.
	OpChain
	// OpArbitrary writes a raw CSS property into the arbitrary category.
	OpArbitrary
	// OpDefault sets the key only when nothing has set it yet.
	OpDefault
)

// Entry is one pending write produced by a category parser.
type Entry struct {
	Key   string
	Value Value
	Op    Op
}

// Set builds an OpSet entry.
func Set(key string, v Value) Entry {
	return Entry{Key: key, Value: v, Op: OpSet}
}

// Default builds an OpDefault entry for a value another class implies.
func Default(key string, v Value) Entry {
	return Entry{Key: key, Value: v, Op: OpDefault}
}

// Chain builds an OpChain entry for fn, e.g. "blur(8px)".
func Chain(key, fn string) Entry {
	return Entry{Key: key, Value: Text(fn), Op: OpChain}
}

// Prop builds an OpArbitrary entry for a kebab-case CSS property.
func Prop(property string, v Value) Entry {
	return Entry{Key: property, Value: v, Op: OpArbitrary}
}

// Document is the intermediate style document. Each category is a key/value
// namespace and a key lives in exactly one category.
type Document struct {
	cats map[Category]map[string]Value
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{cats: make(map[Category]map[string]Value)}
}

// Apply writes entries in order.
func (d *Document) Apply(entries ...Entry) {
	for _, e := range entries {
		switch e.Op {
		case OpChain:
			d.chain(e.Key, e.Value.String())
		case OpArbitrary:
			d.SetProperty(e.Key, e.Value)
		case OpDefault:
			if _, ok := d.Get(e.Key); !ok {
				d.Set(e.Key, e.Value)
			}
		default:
			d.Set(e.Key, e.Value)
		}
	}
}

// Set stores v under key in the key's owning category. Writing a key that no
// category declares is a programming error.
func (d *Document) Set(key string, v Value) {
	cat, ok := owners[key]
	if !ok {
		panic(fmt.Sprintf("style: key %q is not owned by any category", key))
	}
	d.put(cat, key, v)
}

// SetProperty stores a raw CSS property. A property whose camel-cased name
// is a declared key goes to that key's category; anything else lands in the
// arbitrary category under its kebab-case name.
func (d *Document) SetProperty(property string, v Value) {
	if cat, ok := owners[CamelCase(property)]; ok {
		d.put(cat, CamelCase(property), v)
		return
	}
	d.put(Arbitrary, property, v)
}

func (d *Document) put(cat Category, key string, v Value) {
	m := d.cats[cat]
	if m == nil {
		m = make(map[string]Value)
		d.cats[cat] = m
	}
	m[key] = v
}

// chain writes the functions of fns into the chain stored under key. All
// existing functions sharing a name with one of fns are replaced, in the
// position of the first of them, so a multi-function value such as two
// drop-shadow() layers never accumulates on re-application.
func (d *Document) chain(key, fns string) {
	incoming := SplitFunctions(fns)
	names := make(map[string]bool, len(incoming))
	for _, fn := range incoming {
		names[functionName(fn)] = true
	}
	current, _ := d.Get(key)
	var parts []string
	if s := current.String(); s != "none" {
		parts = SplitFunctions(s)
	}
	out := make([]string, 0, len(parts)+len(incoming))
	inserted := false
	for _, p := range parts {
		if !names[functionName(p)] {
			out = append(out, p)
			continue
		}
		if !inserted {
			out = append(out, incoming...)
			inserted = true
		}
	}
	if !inserted {
		out = append(out, incoming...)
	}
	d.Set(key, Text(strings.Join(out, " ")))
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (Value, bool) {
	cat, ok := owners[key]
	if !ok {
		cat = Arbitrary
	}
	v, ok := d.cats[cat][key]
	return v, ok
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Text returns the string form of key, or "".
func (d *Document) Text(key string) string {
	v, _ := d.Get(key)
	return v.String()
}

// Category returns a copy of one category's entries.
func (d *Document) Category(cat Category) map[string]Value {
	out := make(map[string]Value, len(d.cats[cat]))
	for k, v := range d.cats[cat] {
		out[k] = v
	}
	return out
}

// HasCategory reports whether any key of cat is set.
func (d *Document) HasCategory(cat Category) bool {
	return len(d.cats[cat]) > 0
}

// IsEmpty reports whether the document holds no values.
func (d *Document) IsEmpty() bool {
	for _, m := range d.cats {
		if len(m) > 0 {
			return false
		}
	}
	return true
}

// Len returns the number of stored keys.
func (d *Document) Len() int {
	n := 0
	for _, m := range d.cats {
		n += len(m)
	}
	return n
}

// Each visits every key in category order, keys sorted within a category.
func (d *Document) Each(fn func(cat Category, key string, v Value)) {
	for _, cat := range Categories {
		m := d.cats[cat]
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fn(cat, k, m[k])
		}
	}
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	c := NewDocument()
	for cat, m := range d.cats {
		if len(m) == 0 {
			continue
		}
		cm := make(map[string]Value, len(m))
		for k, v := range m {
			cm[k] = v
		}
		c.cats[cat] = cm
	}
	return c
}

// Equal reports whether both documents hold the same keys and values.
func (d *Document) Equal(o *Document) bool {
	if d.Len() != o.Len() {
		return false
	}
	for cat, m := range d.cats {
		for k, v := range m {
			ov, ok := o.cats[cat][k]
			if !ok || ov != v {
				return false
			}
		}
	}
	return true
}

// MarshalJSON renders non-empty categories as nested objects.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[Category]map[string]Value)
	for cat, m := range d.cats {
		if len(m) > 0 {
			out[cat] = m
		}
	}
	return json.Marshal(out)
}

// SplitFunctions splits "blur(4px) brightness(1.5)" into its functions,
// keeping spaces inside parentheses.
func SplitFunctions(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 {
				if i > start {
					parts = append(parts, s[start:i])
				}
				start = i + 1
			}
		}
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

func functionName(fn string) string {
	if i := strings.IndexByte(fn, '('); i >= 0 {
		return fn[:i]
	}
	return fn
}

// CamelCase converts a kebab-case CSS property to the document key form.
// Custom properties (--x) are returned unchanged.
func CamelCase(property string) string {
	if strings.HasPrefix(property, "--") {
		return property
	}
	parts := strings.Split(strings.TrimPrefix(property, "-"), "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// KebabCase converts a document key back to its CSS property name.
func KebabCase(key string) string {
	var b strings.Builder
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
