package utility

import (
	"strconv"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

const transformComposite = "translate(var(--tw-translate-x), var(--tw-translate-y)) rotate(var(--tw-rotate)) skewX(var(--tw-skew-x)) skewY(var(--tw-skew-y)) scaleX(var(--tw-scale-x)) scaleY(var(--tw-scale-y))"

var origins = map[string]string{
	"center": "center", "top": "top", "top-right": "top right", "right": "right",
	"bottom-right": "bottom right", "bottom": "bottom", "bottom-left": "bottom left",
	"left": "left", "top-left": "top left",
}

var perspectives = map[string]string{
	"dramatic": "100px", "near": "300px", "normal": "500px", "midrange": "800px", "distant": "1200px", "none": "none",
}

func newTransforms(r *theme.Resolver) *category {
	c := newCategory("transforms", r)

	for _, axis := range []string{"", "x", "y"} {
		root, keys, vars := "scale", []string{"scaleX", "scaleY"}, []string{"--tw-scale-x", "--tw-scale-y"}
		if axis != "" {
			root = "scale-" + axis
			keys, vars = []string{"scale" + upper(axis)}, []string{"--tw-scale-" + axis}
		}
		c.transformFamily(root, "scale", axis, keys, vars, isInteger, func(n float64) style.Value {
			return style.Num(n / 100)
		}, ratio)
	}
	c.transformFamily("rotate", "rotate", "", []string{"rotate"}, []string{"--tw-rotate"}, isInteger, style.Num, degrees)
	for _, axis := range []string{"x", "y"} {
		c.transformFamily("skew-"+axis, "skew", axis, []string{"skew" + upper(axis)}, []string{"--tw-skew-" + axis}, isInteger, style.Num, degrees)
	}

	translate := map[string]string{"full": "100%"}
	for _, axis := range []string{"x", "y"} {
		axis := axis
		key, v := "translate"+upper(axis), "--tw-translate-"+axis
		c.family(&family{
			root: "translate-" + axis, property: "translate", axis: axis, negative: true, arbitrary: true,
			accept: anyOf(c.isSpacing, isFraction, oneOf("full")), hint: hintLength,
			resolve: func(u *Utility) Output {
				val, css := c.spacing(u, "", translate)
				return Output{Entries: setKeys(val, key), Decls: []Declaration{decl(v, css), decl("transform", transformComposite)}}
			},
		})
	}

	c.keywordSet("origin", "transform-origin", origins)
	c.arbitraryFamily("origin", "transformOrigin", "transform-origin", nil)

	c.keyword("transform", keyword{property: "transform", decls: []Declaration{decl("transform", transformComposite)}, entries: []style.Entry{}})
	c.keyword("transform-cpu", keyword{property: "transform", decls: []Declaration{decl("transform", transformComposite)}, entries: []style.Entry{}})
	c.keyword("transform-gpu", keyword{
		property: "transform",
		decls:    []Declaration{decl("transform", "translate3d(var(--tw-translate-x), var(--tw-translate-y), 0) rotate(var(--tw-rotate)) skewX(var(--tw-skew-x)) skewY(var(--tw-skew-y)) scaleX(var(--tw-scale-x)) scaleY(var(--tw-scale-y))")},
		entries:  []style.Entry{},
	})
	c.keyword("transform-none", kw("transform", "none"))

	c.keywordSet("perspective", "perspective", perspectives)
	c.arbitraryFamily("perspective", "perspective", "perspective", hintLength)

	return c.seal()
}

// transformFamily registers a numeric transform utility writing one custom
// property per key. stored converts the token to its document value and css
// renders it.
func (c *category) transformFamily(root, property, axis string, keys, vars []string, accept func(string) bool,
	stored func(float64) style.Value, css func(float64) string) {
	c.family(&family{
		root: root, property: property, axis: axis, negative: true, arbitrary: true,
		accept: accept, hint: notVar(hintNotColor),
		resolve: func(u *Utility) Output {
			var v style.Value
			var text string
			if explicit(u) {
				text = arbitrary(u)
				v = style.Text(text)
			} else {
				n, _ := strconv.ParseFloat(u.Value, 64)
				v, text = stored(n), css(n)
			}
			if u.Negative {
				v, text = negateValue(v), negateCSS(text)
			}
			decls := declAll(text, vars...)
			return Output{Entries: setKeys(v, keys...), Decls: append(decls, decl("transform", transformComposite))}
		},
	})
}
