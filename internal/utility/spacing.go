package utility

import (
	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

// childSelector targets every child but the first, for space-* and divide-*.
const childSelector = " > :not([hidden]) ~ :not([hidden])"

type side struct {
	suffix    string
	direction string
	axis      string
	keys      []string // document key suffixes
	css       []string // CSS property suffixes
}

// boxSides lists the side variants of padding and margin utilities.
var boxSides = []side{
	{suffix: "", keys: []string{"Top", "Right", "Bottom", "Left"}, css: []string{""}},
	{suffix: "x", axis: "x", keys: []string{"Left", "Right"}, css: []string{"-left", "-right"}},
	{suffix: "y", axis: "y", keys: []string{"Top", "Bottom"}, css: []string{"-top", "-bottom"}},
	{suffix: "t", direction: "top", keys: []string{"Top"}, css: []string{"-top"}},
	{suffix: "r", direction: "right", keys: []string{"Right"}, css: []string{"-right"}},
	{suffix: "b", direction: "bottom", keys: []string{"Bottom"}, css: []string{"-bottom"}},
	{suffix: "l", direction: "left", keys: []string{"Left"}, css: []string{"-left"}},
	{suffix: "s", direction: "start", keys: []string{"InlineStart"}, css: []string{"-inline-start"}},
	{suffix: "e", direction: "end", keys: []string{"InlineEnd"}, css: []string{"-inline-end"}},
}

func newSpacing(r *theme.Resolver) *category {
	c := newCategory("spacing", r)

	for _, s := range boxSides {
		c.boxFamily("p", "padding", "padding", s, false, nil)
		c.boxFamily("m", "margin", "margin", s, true, map[string]string{"auto": "auto"})
	}

	gaps := []struct{ root, key, css, axis string }{
		{"gap", "gap", "gap", ""},
		{"gap-x", "columnGap", "column-gap", "x"},
		{"gap-y", "rowGap", "row-gap", "y"},
	}
	for _, g := range gaps {
		g := g
		c.family(&family{
			root: g.root, property: g.key, axis: g.axis, arbitrary: true,
			accept: c.isSpacing, hint: hintLength,
			resolve: func(u *Utility) Output {
				v, css := c.spacing(u, "", nil)
				return Output{Entries: setKeys(v, g.key), Decls: []Declaration{decl(g.css, css)}}
			},
		})
	}

	for _, axis := range []string{"x", "y"} {
		axis := axis
		key := "space" + upper(axis)
		start, end := "margin-left", "margin-right"
		if axis == "y" {
			start, end = "margin-top", "margin-bottom"
		}
		reverse := "--tw-space-" + axis + "-reverse"
		c.family(&family{
			root: "space-" + axis, property: key, axis: axis, negative: true, arbitrary: true,
			accept: c.isSpacing, hint: hintLength,
			resolve: func(u *Utility) Output {
				v, css := c.spacing(u, "", nil)
				return Output{
					Entries: setKeys(v, key),
					Decls: []Declaration{
						decl(reverse, "0"),
						decl(end, "calc("+css+" * var("+reverse+"))"),
						decl(start, "calc("+css+" * calc(1 - var("+reverse+")))"),
					},
					Selector: childSelector,
				}
			},
		})
		c.keyword("space-"+axis+"-reverse", keyword{
			property: key + "Reverse",
			decls:    []Declaration{decl(reverse, "1")},
			entries:  []style.Entry{style.Set(key+"Reverse", style.Text("1"))},
			selector: childSelector,
		})
	}

	return c.seal()
}

// boxFamily registers one side variant of a box property such as padding.
// key and prop are the document key and CSS property the side suffixes extend.
func (c *category) boxFamily(root, key, prop string, s side, negative bool, extra map[string]string) {
	keys := make([]string, len(s.keys))
	for i, k := range s.keys {
		keys[i] = key + k
	}
	props := make([]string, len(s.css))
	for i, p := range s.css {
		props[i] = prop + p
	}
	accept := c.isSpacing
	if extra != nil {
		accept = anyOf(c.isSpacing, func(v string) bool { return extra[v] != "" })
	}
	c.family(&family{
		root: root + s.suffix, property: key, direction: s.direction, axis: s.axis,
		negative: negative, arbitrary: true, accept: accept, hint: hintLength,
		resolve: func(u *Utility) Output {
			v, css := c.spacing(u, "", extra)
			return Output{Entries: setKeys(v, keys...), Decls: declAll(css, props...)}
		},
	})
}

func upper(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
