package utility

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/syntax"
	"github.com/easylogic/cssma/internal/theme"
)

// Parser is the contract every category parser implements.
type Parser interface {
	// Name is the category parser name recorded in Utility.Type.
	Name() string
	// IsValidClass reports whether the parser owns base. It never panics.
	IsValidClass(base string) bool
	// ParseValue decomposes base. It returns false for anything
	// IsValidClass rejects.
	ParseValue(base string) (*Utility, bool)
	// Resolve turns a utility this parser produced into document entries
	// and CSS declarations. Passing a foreign utility panics.
	Resolve(u *Utility) Output
}

// keyword is an exact class with fixed output.
type keyword struct {
	property string
	decls    []Declaration
	entries  []style.Entry // derived from decls when nil
	selector string
}

// family is a root plus a value grammar: "p-<spacing>", "bg-<color>/<alpha>".
type family struct {
	root      string
	property  string
	direction string
	axis      string
	bare      string // value implied when the root stands alone; empty disables the bare form
	negative  bool
	arbitrary bool                // accepts [value] and (--name)
	modifier  func(string) bool   // validates a "/x" suffix; nil rejects one
	accept    func(string) bool   // validates a plain value
	hint      func(string) bool   // validates arbitrary content; nil accepts all
	resolve   func(*Utility) Output
}

// category is the data-driven implementation shared by every parser.
type category struct {
	name     string
	r        *theme.Resolver
	keywords map[string]keyword
	families []*family
}

func newCategory(name string, r *theme.Resolver) *category {
	return &category{name: name, r: r, keywords: make(map[string]keyword)}
}

func (c *category) Name() string { return c.name }

func (c *category) IsValidClass(base string) bool {
	_, ok := c.ParseValue(base)
	return ok
}

func (c *category) keyword(class string, k keyword) {
	if _, dup := c.keywords[class]; dup {
		panic(fmt.Sprintf("utility: %s keyword %q declared twice", c.name, class))
	}
	c.keywords[class] = k
}

// keywordSet registers root-value keywords that all set one CSS property.
func (c *category) keywordSet(prefix, property string, values map[string]string) {
	for suffix, v := range values {
		class := prefix
		if suffix != "" {
			class = prefix + "-" + suffix
		}
		c.keyword(class, kw(property, v))
	}
}

func (c *category) family(f *family) {
	c.families = append(c.families, f)
}

// seal orders families so longer roots are tried first.
func (c *category) seal() *category {
	sort.SliceStable(c.families, func(i, j int) bool {
		return len(c.families[i].root) > len(c.families[j].root)
	})
	return c
}

func (c *category) ParseValue(base string) (*Utility, bool) {
	if k, ok := c.keywords[base]; ok {
		return &Utility{Type: c.name, Raw: base, Root: base, Property: k.property, Keyword: true}, true
	}
	rest, neg := strings.CutPrefix(base, "-")
	for _, f := range c.families {
		if neg && !f.negative {
			continue
		}
		if rest == f.root {
			if f.bare == "" {
				continue
			}
			return c.newUtility(base, f, neg), true
		}
		value, ok := strings.CutPrefix(rest, f.root+"-")
		if !ok {
			continue
		}
		if u, ok := c.match(base, f, value, neg); ok {
			return u, true
		}
	}
	return nil, false
}

func (c *category) newUtility(base string, f *family, neg bool) *Utility {
	return &Utility{
		Type:      c.name,
		Raw:       base,
		Root:      f.root,
		Property:  f.property,
		Direction: f.direction,
		Axis:      f.axis,
		Negative:  neg,
		Preset:    f.bare,
	}
}

func (c *category) match(base string, f *family, value string, neg bool) (*Utility, bool) {
	u := c.newUtility(base, f, neg)
	u.Preset = ""
	if i := syntax.LastTopLevel(value, '/'); i > 0 && f.modifier != nil {
		mod := value[i+1:]
		if !f.modifier(mod) {
			return nil, false
		}
		u.Modifier = mod
		value = value[:i]
	}
	if inner, ok := syntax.Bracketed(value); ok {
		if !f.arbitrary || !syntax.WellFormed(syntax.Decode(inner)) {
			return nil, false
		}
		if f.hint != nil && !f.hint(inner) {
			return nil, false
		}
		u.Value, u.Arbitrary = inner, true
		return u, true
	}
	if name, ok := syntax.CustomProperty(value); ok {
		if !f.arbitrary || (f.hint != nil && !f.hint("var("+name+")")) {
			return nil, false
		}
		u.Value, u.CustomProperty = name, true
		return u, true
	}
	if value == "" || f.accept == nil || !f.accept(value) {
		return nil, false
	}
	if value == f.bare {
		u.Preset = f.bare
		return u, true
	}
	u.Value, u.Preset = value, value
	return u, true
}

func (c *category) Resolve(u *Utility) Output {
	if u.Type != c.name {
		panic(fmt.Sprintf("utility: %s parser asked to resolve %s utility %q", c.name, u.Type, u.Raw))
	}
	if u.Keyword {
		k, ok := c.keywords[u.Root]
		if !ok {
			panic(fmt.Sprintf("utility: %s has no keyword %q", c.name, u.Root))
		}
		entries := k.entries
		if entries == nil {
			entries = entriesFromDecls(k.decls)
		}
		return Output{Entries: entries, Decls: k.decls, Selector: k.selector}
	}
	for _, f := range c.families {
		if f.root == u.Root && f.property == u.Property {
			return f.resolve(u)
		}
	}
	panic(fmt.Sprintf("utility: %s has no family %s/%s", c.name, u.Root, u.Property))
}

// bareValue returns the bare value of the family owning root/property.
func (c *category) bareValue(root, property string) string {
	for _, f := range c.families {
		if f.root == root && f.property == property {
			return f.bare
		}
	}
	return ""
}

// entriesFromDecls maps declarations onto document keys. Custom properties
// are CSS plumbing and never enter the document.
func entriesFromDecls(decls []Declaration) []style.Entry {
	entries := make([]style.Entry, 0, len(decls))
	for _, d := range decls {
		if strings.HasPrefix(d.Property, "--") {
			continue
		}
		entries = append(entries, style.Prop(d.Property, style.Text(d.Value)))
	}
	return entries
}

// Declaration helpers.

func decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

func kw(property, value string) keyword {
	return keyword{property: style.CamelCase(property), decls: []Declaration{decl(property, value)}}
}

func kwDecls(property string, decls ...Declaration) keyword {
	return keyword{property: property, decls: decls}
}

// tokenOf returns the token a family resolves: the bare value when the root
// stood alone.
func tokenOf(u *Utility, bare string) string {
	if u.Value == "" && !u.Arbitrary && !u.CustomProperty {
		return bare
	}
	return u.Value
}

var typeHints = map[string]bool{
	"color": true, "length": true, "percentage": true, "number": true, "integer": true,
	"url": true, "image": true, "position": true, "size": true, "bg-size": true,
	"family-name": true, "angle": true, "line-width": true, "shadow": true,
	"absolute-size": true, "relative-size": true, "any": true, "weight": true,
}

// typeHint splits "length:var(--x)" into ("length", "var(--x)").
func typeHint(inner string) (string, string) {
	if i := strings.IndexByte(inner, ':'); i > 0 && typeHints[inner[:i]] {
		return inner[:i], inner[i+1:]
	}
	return "", inner
}

// arbitrary returns the CSS text of an arbitrary or custom property value.
func arbitrary(u *Utility) string {
	if u.CustomProperty {
		return "var(" + u.Value + ")"
	}
	_, v := typeHint(u.Value)
	return syntax.Decode(v)
}

func explicit(u *Utility) bool {
	return u.Arbitrary || u.CustomProperty
}

// Arbitrary value hints.

func hintColor(inner string) bool {
	t, v := typeHint(inner)
	if t != "" {
		return t == "color"
	}
	if strings.HasPrefix(v, "var(") {
		return theme.IsColor(syntax.Decode(v))
	}
	return theme.IsColor(syntax.Decode(v)) || theme.IsLiteralColor(v)
}

func hintNotColor(inner string) bool {
	return !hintColor(inner)
}

func hintLength(inner string) bool {
	if t, _ := typeHint(inner); t != "" {
		return t == "length" || t == "percentage" || t == "line-width" || t == "absolute-size" || t == "relative-size"
	}
	return !hintColor(inner) && !hintImage(inner)
}

// notVar rejects untyped variable references, which roots shared with a
// color family leave to the color reading.
func notVar(h func(string) bool) func(string) bool {
	return func(inner string) bool {
		if t, v := typeHint(inner); t == "" && strings.HasPrefix(v, "var(") {
			return false
		}
		return h(inner)
	}
}

func hintImage(inner string) bool {
	if t, _ := typeHint(inner); t != "" {
		return t == "url" || t == "image"
	}
	for _, p := range []string{"url(", "linear-gradient(", "radial-gradient(", "conic-gradient(", "repeating-linear-gradient(", "repeating-radial-gradient(", "image-set("} {
		if strings.HasPrefix(inner, p) {
			return true
		}
	}
	return false
}

func hintNumber(inner string) bool {
	if t, _ := typeHint(inner); t != "" {
		return t == "number" || t == "integer" || t == "weight"
	}
	_, err := strconv.ParseFloat(inner, 64)
	return err == nil
}

func hintTyped(types ...string) func(string) bool {
	return func(inner string) bool {
		t, _ := typeHint(inner)
		for _, want := range types {
			if t == want {
				return true
			}
		}
		return false
	}
}

// Plain value predicates.

var (
	fractionPattern = regexp.MustCompile(`^(\d+)/(\d+)$`)
	integerPattern  = regexp.MustCompile(`^\d+$`)
	numberPattern   = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

func isInteger(v string) bool { return integerPattern.MatchString(v) }

func isBracketed(v string) bool {
	_, ok := syntax.Bracketed(v)
	return ok
}
func isNumber(v string) bool  { return numberPattern.MatchString(v) }

func isFraction(v string) bool {
	m := fractionPattern.FindStringSubmatch(v)
	return m != nil && m[2] != "0"
}

// fractionPercent converts "1/3" to "33.333333%".
func fractionPercent(v string) string {
	m := fractionPattern.FindStringSubmatch(v)
	a, _ := strconv.ParseFloat(m[1], 64)
	b, _ := strconv.ParseFloat(m[2], 64)
	return formatPercent(a / b * 100)
}

func formatPercent(f float64) string {
	s := strconv.FormatFloat(f, 'f', 6, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + "%"
}

func oneOf(values ...string) func(string) bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return func(v string) bool { return set[v] }
}

func anyOf(fs ...func(string) bool) func(string) bool {
	return func(v string) bool {
		for _, f := range fs {
			if f(v) {
				return true
			}
		}
		return false
	}
}

func (c *category) inScale(s theme.Scale) func(string) bool {
	return func(v string) bool { return c.r.Has(s, v) }
}

func (c *category) isSpacing(v string) bool {
	_, ok := c.r.Spacing(v)
	return ok
}

func (c *category) isColor(v string) bool {
	return c.r.IsColorToken(v)
}

// isAlpha validates an opacity modifier: 0-100 or [0.37].
func isAlpha(mod string) bool {
	if inner, ok := syntax.Bracketed(mod); ok {
		f, err := strconv.ParseFloat(strings.TrimSuffix(inner, "%"), 64)
		return err == nil && f >= 0
	}
	n, err := strconv.Atoi(mod)
	return err == nil && n >= 0 && n <= 100
}

func alphaValue(mod string) float64 {
	if inner, ok := syntax.Bracketed(mod); ok {
		if pct, isPct := strings.CutSuffix(inner, "%"); isPct {
			f, _ := strconv.ParseFloat(pct, 64)
			return f / 100
		}
		f, _ := strconv.ParseFloat(inner, 64)
		return f
	}
	n, _ := strconv.Atoi(mod)
	return float64(n) / 100
}

// Length resolution.

// lengthValue stores css as px when it converts, else as text.
func (c *category) lengthValue(css string) style.Value {
	if px, ok := c.r.Px(css); ok {
		return style.Num(px)
	}
	return style.Text(css)
}

// spacing resolves spacing-scale utilities. keywords maps extra plain values
// (auto, full, px ...) to CSS text; fractions become percentages.
func (c *category) spacing(u *Utility, bare string, keywords map[string]string) (style.Value, string) {
	var v style.Value
	var css string
	token := tokenOf(u, bare)
	switch {
	case explicit(u):
		css = arbitrary(u)
		v = c.lengthValue(css)
		if u.CustomProperty {
			v = style.Text(css)
		}
	case keywords[token] != "":
		css = keywords[token]
		v = c.lengthValue(css)
	case isFraction(token):
		css = fractionPercent(token)
		v = style.Text(css)
	default:
		px, _ := c.r.Spacing(token)
		css, _ = c.r.SpacingCSS(token)
		v = style.Num(px)
	}
	if u.Negative {
		return negateValue(v), negateCSS(css)
	}
	return v, css
}

func negateValue(v style.Value) style.Value {
	if f, ok := v.Number(); ok {
		return style.Num(-f)
	}
	return style.Text(negateCSS(v.String()))
}

func negateCSS(css string) string {
	switch {
	case css == "0" || css == "0px":
		return css
	case strings.HasPrefix(css, "-"):
		return css[1:]
	case len(css) > 0 && (css[0] >= '0' && css[0] <= '9' || css[0] == '.'):
		return "-" + css
	}
	return "calc(" + css + " * -1)"
}

// setKeys writes one value to several document keys.
func setKeys(v style.Value, keys ...string) []style.Entry {
	entries := make([]style.Entry, len(keys))
	for i, k := range keys {
		entries[i] = style.Set(k, v)
	}
	return entries
}

// declAll writes one value to several CSS properties.
func declAll(css string, props ...string) []Declaration {
	decls := make([]Declaration, len(props))
	for i, p := range props {
		decls[i] = decl(p, css)
	}
	return decls
}
