package utility

import (
	"strconv"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

var displays = map[string]string{
	"block": "block", "inline-block": "inline-block", "inline": "inline",
	"flex": "flex", "inline-flex": "inline-flex", "grid": "grid", "inline-grid": "inline-grid",
	"table": "table", "inline-table": "inline-table", "table-caption": "table-caption",
	"table-cell": "table-cell", "table-column": "table-column", "table-column-group": "table-column-group",
	"table-footer-group": "table-footer-group", "table-header-group": "table-header-group",
	"table-row-group": "table-row-group", "table-row": "table-row",
	"flow-root": "flow-root", "contents": "contents", "list-item": "list-item", "hidden": "none",
}

var (
	contentAlign = map[string]string{
		"normal": "normal", "center": "center", "start": "flex-start", "end": "flex-end",
		"between": "space-between", "around": "space-around", "evenly": "space-evenly",
		"baseline": "baseline", "stretch": "stretch",
	}
	itemsAlign = map[string]string{
		"start": "flex-start", "end": "flex-end", "center": "center", "baseline": "baseline", "stretch": "stretch",
	}
	selfAlign = map[string]string{
		"auto": "auto", "start": "flex-start", "end": "flex-end", "center": "center",
		"stretch": "stretch", "baseline": "baseline",
	}
	justifyContent = map[string]string{
		"normal": "normal", "start": "flex-start", "end": "flex-end", "center": "center",
		"between": "space-between", "around": "space-around", "evenly": "space-evenly", "stretch": "stretch",
	}
	justifyItems = map[string]string{"start": "start", "end": "end", "center": "center", "stretch": "stretch"}
	justifySelf  = map[string]string{"auto": "auto", "start": "start", "end": "end", "center": "center", "stretch": "stretch"}
	placeContent = map[string]string{
		"center": "center", "start": "start", "end": "end", "between": "space-between",
		"around": "space-around", "evenly": "space-evenly", "baseline": "baseline", "stretch": "stretch",
	}
	placeItems = map[string]string{"start": "start", "end": "end", "center": "center", "baseline": "baseline", "stretch": "stretch"}
	placeSelf  = map[string]string{"auto": "auto", "start": "start", "end": "end", "center": "center", "stretch": "stretch"}
)

func newFlexboxGrid(r *theme.Resolver) *category {
	c := newCategory("flexbox-grid", r)

	for class, v := range displays {
		c.keyword(class, kw("display", v))
	}

	// Direction utilities imply a flex container in the document unless an
	// earlier class chose a display. They emit no display declaration.
	for suffix, v := range map[string]string{
		"row": "row", "row-reverse": "row-reverse", "col": "column", "col-reverse": "column-reverse",
	} {
		c.keyword("flex-"+suffix, keyword{
			property: "flexDirection",
			decls:    []Declaration{decl("flex-direction", v)},
			entries: []style.Entry{
				style.Default("display", style.Text("flex")),
				style.Set("flexDirection", style.Text(v)),
			},
		})
	}
	c.keywordSet("flex", "flex-wrap", map[string]string{"wrap": "wrap", "wrap-reverse": "wrap-reverse", "nowrap": "nowrap"})
	c.keywordSet("flex", "flex", map[string]string{"1": "1 1 0%", "auto": "1 1 auto", "initial": "0 1 auto", "none": "none"})

	c.family(&family{
		root: "flex", property: "flex", arbitrary: true, accept: isInteger,
		resolve: func(u *Utility) Output {
			css := u.Value
			if explicit(u) {
				css = arbitrary(u)
			}
			return Output{Entries: []style.Entry{style.Set("flex", style.Text(css))}, Decls: []Declaration{decl("flex", css)}}
		},
	})
	c.numberFamily("grow", "flexGrow", "flex-grow", "1", false)
	c.numberFamily("shrink", "flexShrink", "flex-shrink", "1", false)
	c.numberFamily("order", "order", "order", "", true)
	c.keywordSet("order", "order", map[string]string{"first": "-9999", "last": "9999", "none": "0"})

	basis := map[string]string{"auto": "auto", "full": "100%"}
	c.family(&family{
		root: "basis", property: "flexBasis", arbitrary: true, hint: hintLength,
		accept: anyOf(c.isSpacing, isFraction, c.inScale(theme.ScaleContainer), func(v string) bool { return basis[v] != "" }),
		resolve: func(u *Utility) Output {
			var v style.Value
			var css string
			if cs, ok := c.r.Lookup(theme.ScaleContainer, u.Value); ok && !explicit(u) {
				css = cs
				v = c.lengthValue(css)
			} else {
				v, css = c.spacing(u, "", basis)
			}
			return Output{Entries: setKeys(v, "flexBasis"), Decls: []Declaration{decl("flex-basis", css)}}
		},
	})

	for _, axis := range []struct{ root, key, css string }{
		{"grid-cols", "gridTemplateColumns", "grid-template-columns"},
		{"grid-rows", "gridTemplateRows", "grid-template-rows"},
	} {
		axis := axis
		c.keywordSet(axis.root, axis.css, map[string]string{"none": "none", "subgrid": "subgrid"})
		c.family(&family{
			root: axis.root, property: axis.key, arbitrary: true, accept: isInteger,
			resolve: func(u *Utility) Output {
				css := "repeat(" + u.Value + ", minmax(0, 1fr))"
				if explicit(u) {
					css = arbitrary(u)
				}
				return Output{Entries: setKeys(style.Text(css), axis.key), Decls: []Declaration{decl(axis.css, css)}}
			},
		})
	}

	for _, line := range []struct{ root, key, css string }{
		{"col", "gridColumn", "grid-column"},
		{"row", "gridRow", "grid-row"},
	} {
		line := line
		c.keyword(line.root+"-auto", kw(line.css, "auto"))
		c.keyword(line.root+"-span-full", kw(line.css, "1 / -1"))
		c.family(&family{
			root: line.root + "-span", property: line.key, arbitrary: true, accept: isInteger,
			resolve: func(u *Utility) Output {
				n := u.Value
				if explicit(u) {
					n = arbitrary(u)
				}
				css := "span " + n + " / span " + n
				return Output{Entries: setKeys(style.Text(css), line.key), Decls: []Declaration{decl(line.css, css)}}
			},
		})
		c.family(&family{
			root: line.root, property: line.key, arbitrary: true,
			resolve: func(u *Utility) Output {
				css := arbitrary(u)
				return Output{Entries: setKeys(style.Text(css), line.key), Decls: []Declaration{decl(line.css, css)}}
			},
		})
		for _, edge := range []string{"start", "end"} {
			key, prop := line.key+upper(edge), line.css+"-"+edge
			c.keyword(line.root+"-"+edge+"-auto", kw(prop, "auto"))
			c.family(&family{
				root: line.root + "-" + edge, property: key, arbitrary: true, negative: true, accept: isInteger,
				resolve: func(u *Utility) Output {
					css := u.Value
					if explicit(u) {
						css = arbitrary(u)
					}
					if u.Negative {
						css = negateCSS(css)
					}
					return Output{Entries: setKeys(style.Text(css), key), Decls: []Declaration{decl(prop, css)}}
				},
			})
		}
	}

	c.keywordSet("grid-flow", "grid-auto-flow", map[string]string{
		"row": "row", "col": "column", "dense": "dense", "row-dense": "row dense", "col-dense": "column dense",
	})
	auto := map[string]string{"auto": "auto", "min": "min-content", "max": "max-content", "fr": "minmax(0, 1fr)"}
	c.keywordSet("auto-cols", "grid-auto-columns", auto)
	c.keywordSet("auto-rows", "grid-auto-rows", auto)
	c.arbitraryFamily("auto-cols", "gridAutoColumns", "grid-auto-columns", nil)
	c.arbitraryFamily("auto-rows", "gridAutoRows", "grid-auto-rows", nil)

	c.keywordSet("justify", "justify-content", justifyContent)
	c.keywordSet("justify-items", "justify-items", justifyItems)
	c.keywordSet("justify-self", "justify-self", justifySelf)
	c.keywordSet("content", "align-content", contentAlign)
	c.keywordSet("items", "align-items", itemsAlign)
	c.keywordSet("self", "align-self", selfAlign)
	c.keywordSet("place-content", "place-content", placeContent)
	c.keywordSet("place-items", "place-items", placeItems)
	c.keywordSet("place-self", "place-self", placeSelf)

	return c.seal()
}

// numberFamily registers a unitless integer utility such as grow-2 or
// order-3. bare names the value the root implies on its own.
func (c *category) numberFamily(root, key, prop, bare string, negative bool) {
	c.family(&family{
		root: root, property: key, bare: bare, arbitrary: true, negative: negative,
		accept: isInteger, hint: hintNumber,
		resolve: func(u *Utility) Output {
			css := tokenOf(u, bare)
			if explicit(u) {
				css = arbitrary(u)
			}
			if u.Negative {
				css = negateCSS(css)
			}
			v := style.Text(css)
			if f, err := strconv.ParseFloat(css, 64); err == nil {
				v = style.Num(f)
			}
			return Output{Entries: setKeys(v, key), Decls: []Declaration{decl(prop, css)}}
		},
	})
}

// arbitraryFamily registers root-[value] for a single property, with an
// optional hint.
func (c *category) arbitraryFamily(root, key, prop string, hint func(string) bool) {
	c.family(&family{
		root: root, property: key, arbitrary: true, hint: hint,
		resolve: func(u *Utility) Output {
			css := arbitrary(u)
			return Output{Entries: []style.Entry{style.Prop(prop, style.Text(css))}, Decls: []Declaration{decl(prop, css)}}
		},
	})
}
