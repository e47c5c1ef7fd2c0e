package utility

import (
	"strconv"
	"strings"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/syntax"
	"github.com/easylogic/cssma/internal/theme"
)

// Composite filter values referencing every per-function custom property.
const (
	filterComposite   = "var(--tw-blur) var(--tw-brightness) var(--tw-contrast) var(--tw-grayscale) var(--tw-hue-rotate) var(--tw-invert) var(--tw-saturate) var(--tw-sepia) var(--tw-drop-shadow)"
	backdropComposite = "var(--tw-backdrop-blur) var(--tw-backdrop-brightness) var(--tw-backdrop-contrast) var(--tw-backdrop-grayscale) var(--tw-backdrop-hue-rotate) var(--tw-backdrop-invert) var(--tw-backdrop-opacity) var(--tw-backdrop-saturate) var(--tw-backdrop-sepia)"
)

// filterFunc describes one filter function utility.
type filterFunc struct {
	name     string
	bare     string
	negative bool
	scale    *theme.Scale
	unit     func(n float64) string // renders an integer token
}

func ratio(n float64) string   { return style.FormatNumber(n / 100) }
func percent(n float64) string { return style.FormatNumber(n) + "%" }
func degrees(n float64) string { return style.FormatNumber(n) + "deg" }

func scalePtr(s theme.Scale) *theme.Scale { return &s }

var filterFuncs = []filterFunc{
	{name: "blur", bare: "DEFAULT", scale: scalePtr(theme.ScaleBlur)},
	{name: "brightness", unit: ratio},
	{name: "contrast", unit: ratio},
	{name: "drop-shadow", bare: "DEFAULT", scale: scalePtr(theme.ScaleDropShadow)},
	{name: "grayscale", bare: "100", unit: percent},
	{name: "hue-rotate", negative: true, unit: degrees},
	{name: "invert", bare: "100", unit: percent},
	{name: "saturate", unit: ratio},
	{name: "sepia", bare: "100", unit: percent},
}

var backdropFuncs = map[string]bool{
	"blur": true, "brightness": true, "contrast": true, "grayscale": true, "hue-rotate": true,
	"invert": true, "saturate": true, "sepia": true,
}

func newFilters(r *theme.Resolver) *category {
	c := newCategory("filters", r)

	// The bare keywords only switch the composite on and record nothing.
	c.keyword("filter", keyword{property: "filter", decls: []Declaration{decl("filter", filterComposite)}, entries: []style.Entry{}})
	c.keyword("filter-none", keyword{
		property: "filter",
		decls:    []Declaration{decl("filter", "none")},
		entries:  []style.Entry{style.Set("filter", style.Text("none"))},
	})
	c.keyword("backdrop-filter", keyword{
		property: "backdropFilter",
		decls:    []Declaration{decl("backdrop-filter", backdropComposite)},
		entries:  []style.Entry{},
	})
	c.keyword("backdrop-filter-none", keyword{
		property: "backdropFilter",
		decls:    []Declaration{decl("backdrop-filter", "none")},
		entries:  []style.Entry{style.Set("backdropFilter", style.Text("none"))},
	})

	for _, f := range filterFuncs {
		c.filterFamily(f, false)
		if backdropFuncs[f.name] {
			c.filterFamily(f, true)
		}
	}
	c.filterFamily(filterFunc{name: "opacity", unit: ratio}, true)

	return c.seal()
}

func (c *category) filterFamily(f filterFunc, backdrop bool) {
	root, key, prop, composite := f.name, "filter", "filter", filterComposite
	if backdrop {
		root, key, prop, composite = "backdrop-"+f.name, "backdropFilter", "backdrop-filter", backdropComposite
	}
	accept := isInteger
	if f.scale != nil {
		accept = c.inScale(*f.scale)
	}
	hint := notVar(hintNotColor)
	if f.unit != nil {
		hint = hintNotColor
	}
	c.family(&family{
		root: root, property: key, bare: f.bare, negative: f.negative, arbitrary: true,
		accept: accept, hint: hint,
		resolve: func(u *Utility) Output {
			fn := c.filterFunctions(u, f)
			return Output{
				Entries: []style.Entry{style.Chain(key, fn)},
				Decls:   []Declaration{decl("--tw-"+root, fn), decl(prop, composite)},
			}
		},
	})
}

// filterFunctions renders the filter value of u. Preset drop shadows may
// hold several comma-separated layers; each becomes its own function.
func (c *category) filterFunctions(u *Utility, f filterFunc) string {
	arg := c.filterArgument(u, f)
	if f.name != "drop-shadow" || explicit(u) {
		return f.name + "(" + arg + ")"
	}
	layers := syntax.SplitTopLevel(arg, ",")
	for i, l := range layers {
		layers[i] = f.name + "(" + strings.TrimSpace(l) + ")"
	}
	return strings.Join(layers, " ")
}

func (c *category) filterArgument(u *Utility, f filterFunc) string {
	var arg string
	token := tokenOf(u, f.bare)
	switch {
	case explicit(u):
		arg = arbitrary(u)
	case f.scale != nil:
		arg = c.r.Resolve(*f.scale, token)
	default:
		n, _ := strconv.ParseFloat(token, 64)
		arg = f.unit(n)
	}
	if u.Negative && !strings.HasPrefix(arg, "-") {
		arg = negateCSS(arg)
	}
	return arg
}
