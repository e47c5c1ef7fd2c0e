package utility

import (
	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

func newSVG(r *theme.Resolver) *category {
	c := newCategory("svg", r)

	c.keyword("fill-none", kw("fill", "none"))
	c.keyword("stroke-none", kw("stroke", "none"))
	for _, key := range []string{"fill", "stroke"} {
		key := key
		c.family(&family{
			root: key, property: key, arbitrary: true,
			accept: c.isColor, hint: hintColorOrVar, modifier: isAlpha,
			resolve: func(u *Utility) Output {
				css := c.colorCSS(u)
				return Output{Entries: setKeys(style.Text(css), key), Decls: []Declaration{decl(key, css)}}
			},
		})
	}
	c.family(&family{
		root: "stroke", property: "strokeWidth", arbitrary: true,
		accept: isInteger, hint: notVar(hintLength),
		resolve: func(u *Utility) Output {
			css := u.Value
			if explicit(u) {
				css = arbitrary(u)
			}
			return Output{Entries: setKeys(numeric(css), "strokeWidth"), Decls: []Declaration{decl("stroke-width", css)}}
		},
	})

	return c.seal()
}
