package utility

import (
	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

var borderSides = []struct {
	root, direction, axis string
	keys, props           []string
}{
	{root: "border", keys: []string{"borderTopWidth", "borderRightWidth", "borderBottomWidth", "borderLeftWidth"}, props: []string{"border-width"}},
	{root: "border-x", axis: "x", keys: []string{"borderLeftWidth", "borderRightWidth"}, props: []string{"border-left-width", "border-right-width"}},
	{root: "border-y", axis: "y", keys: []string{"borderTopWidth", "borderBottomWidth"}, props: []string{"border-top-width", "border-bottom-width"}},
	{root: "border-t", direction: "top", keys: []string{"borderTopWidth"}, props: []string{"border-top-width"}},
	{root: "border-r", direction: "right", keys: []string{"borderRightWidth"}, props: []string{"border-right-width"}},
	{root: "border-b", direction: "bottom", keys: []string{"borderBottomWidth"}, props: []string{"border-bottom-width"}},
	{root: "border-l", direction: "left", keys: []string{"borderLeftWidth"}, props: []string{"border-left-width"}},
}

var radiusCorners = []struct {
	root, direction string
	keys, props     []string
}{
	{
		root: "rounded",
		keys: []string{"borderTopLeftRadius", "borderTopRightRadius", "borderBottomRightRadius", "borderBottomLeftRadius"},
		props: []string{"border-radius"},
	},
	{root: "rounded-t", direction: "top", keys: []string{"borderTopLeftRadius", "borderTopRightRadius"}, props: []string{"border-top-left-radius", "border-top-right-radius"}},
	{root: "rounded-r", direction: "right", keys: []string{"borderTopRightRadius", "borderBottomRightRadius"}, props: []string{"border-top-right-radius", "border-bottom-right-radius"}},
	{root: "rounded-b", direction: "bottom", keys: []string{"borderBottomRightRadius", "borderBottomLeftRadius"}, props: []string{"border-bottom-right-radius", "border-bottom-left-radius"}},
	{root: "rounded-l", direction: "left", keys: []string{"borderTopLeftRadius", "borderBottomLeftRadius"}, props: []string{"border-top-left-radius", "border-bottom-left-radius"}},
	{root: "rounded-tl", direction: "top-left", keys: []string{"borderTopLeftRadius"}, props: []string{"border-top-left-radius"}},
	{root: "rounded-tr", direction: "top-right", keys: []string{"borderTopRightRadius"}, props: []string{"border-top-right-radius"}},
	{root: "rounded-br", direction: "bottom-right", keys: []string{"borderBottomRightRadius"}, props: []string{"border-bottom-right-radius"}},
	{root: "rounded-bl", direction: "bottom-left", keys: []string{"borderBottomLeftRadius"}, props: []string{"border-bottom-left-radius"}},
}

var lineStyles = map[string]string{
	"solid": "solid", "dashed": "dashed", "dotted": "dotted", "double": "double", "hidden": "hidden", "none": "none",
}

func newBorders(r *theme.Resolver) *category {
	c := newCategory("borders", r)

	for _, s := range borderSides {
		s := s
		c.family(&family{
			root: s.root, property: "borderWidth", direction: s.direction, axis: s.axis,
			bare: "DEFAULT", arbitrary: true, hint: notVar(hintLength),
			accept: c.inScale(theme.ScaleBorderWidth),
			resolve: func(u *Utility) Output {
				css := c.scaled(u, theme.ScaleBorderWidth, "DEFAULT")
				return Output{Entries: setKeys(c.lengthValue(css), s.keys...), Decls: declAll(css, s.props...)}
			},
		})
	}
	c.keywordSet("border", "border-style", lineStyles)

	for _, k := range radiusCorners {
		k := k
		c.family(&family{
			root: k.root, property: "borderRadius", direction: k.direction,
			bare: "DEFAULT", arbitrary: true, hint: hintLength,
			accept: c.inScale(theme.ScaleRadius),
			resolve: func(u *Utility) Output {
				css := c.scaled(u, theme.ScaleRadius, "DEFAULT")
				return Output{Entries: setKeys(c.lengthValue(css), k.keys...), Decls: declAll(css, k.props...)}
			},
		})
	}

	c.keyword("outline", kw("outline-style", "solid"))
	c.keyword("outline-none", keyword{
		property: "outlineStyle",
		decls:    []Declaration{decl("outline", "2px solid transparent"), decl("outline-offset", "2px")},
		entries: []style.Entry{
			style.Set("outlineStyle", style.Text("none")),
			style.Set("outlineOffset", style.Num(2)),
		},
	})
	for _, s := range []string{"dashed", "dotted", "double"} {
		c.keyword("outline-"+s, kw("outline-style", s))
	}
	c.family(&family{
		root: "outline", property: "outlineWidth", arbitrary: true,
		accept: isInteger, hint: notVar(hintLength),
		resolve: c.pxFamily("outlineWidth", "outline-width"),
	})
	c.family(&family{
		root: "outline-offset", property: "outlineOffset", arbitrary: true, negative: true,
		accept: isInteger, hint: hintLength,
		resolve: func(u *Utility) Output {
			out := c.pxFamily("outlineOffset", "outline-offset")(u)
			if u.Negative {
				out.Entries = setKeys(negateValue(out.Entries[0].Value), "outlineOffset")
				out.Decls[0].Value = negateCSS(out.Decls[0].Value)
			}
			return out
		},
	})

	c.keyword("ring-inset", keyword{
		property: "ringInset",
		decls:    []Declaration{decl("--tw-ring-inset", "inset")},
		entries:  []style.Entry{style.Set("ringInset", style.Text("inset"))},
	})
	c.family(&family{
		root: "ring", property: "ringWidth", bare: "3", arbitrary: true,
		accept: isInteger, hint: notVar(hintLength),
		resolve: func(u *Utility) Output {
			css := tokenOf(u, "3") + "px"
			if explicit(u) {
				css = arbitrary(u)
			}
			return Output{
				Entries: setKeys(c.lengthValue(css), "ringWidth"),
				Decls: []Declaration{
					decl("--tw-ring-offset-shadow", "var(--tw-ring-inset) 0 0 0 var(--tw-ring-offset-width) var(--tw-ring-offset-color)"),
					decl("--tw-ring-shadow", "var(--tw-ring-inset) 0 0 0 calc("+css+" + var(--tw-ring-offset-width)) var(--tw-ring-color)"),
					decl("box-shadow", "var(--tw-ring-offset-shadow), var(--tw-ring-shadow), var(--tw-shadow, 0 0 #0000)"),
				},
			}
		},
	})
	c.family(&family{
		root: "ring-offset", property: "ringOffsetWidth", arbitrary: true,
		accept: isInteger, hint: notVar(hintLength),
		resolve: c.pxFamily("ringOffsetWidth", "--tw-ring-offset-width"),
	})

	for _, axis := range []string{"x", "y"} {
		axis := axis
		key := "divide" + upper(axis) + "Width"
		start, end := "border-left-width", "border-right-width"
		if axis == "y" {
			start, end = "border-top-width", "border-bottom-width"
		}
		reverse := "--tw-divide-" + axis + "-reverse"
		c.family(&family{
			root: "divide-" + axis, property: key, axis: axis, bare: "DEFAULT", arbitrary: true,
			accept: c.inScale(theme.ScaleBorderWidth), hint: hintLength,
			resolve: func(u *Utility) Output {
				css := c.scaled(u, theme.ScaleBorderWidth, "DEFAULT")
				return Output{
					Entries: setKeys(c.lengthValue(css), key),
					Decls: []Declaration{
						decl(reverse, "0"),
						decl(end, "calc("+css+" * var("+reverse+"))"),
						decl(start, "calc("+css+" * calc(1 - var("+reverse+")))"),
					},
					Selector: childSelector,
				}
			},
		})
		c.keyword("divide-"+axis+"-reverse", keyword{
			property: key,
			decls:    []Declaration{decl(reverse, "1")},
			entries:  []style.Entry{},
			selector: childSelector,
		})
	}
	for name, v := range lineStyles {
		if name == "hidden" {
			continue
		}
		c.keyword("divide-"+name, keyword{
			property: "divideStyle",
			decls:    []Declaration{decl("border-style", v)},
			entries:  []style.Entry{style.Set("divideStyle", style.Text(v))},
			selector: childSelector,
		})
	}

	return c.seal()
}

// scaled resolves a scale token, the bare key when the root stood alone, or
// the arbitrary value.
func (c *category) scaled(u *Utility, s theme.Scale, bare string) string {
	if explicit(u) {
		return arbitrary(u)
	}
	return c.r.Resolve(s, tokenOf(u, bare))
}
