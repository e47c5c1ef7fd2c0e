package utility

import "github.com/easylogic/cssma/internal/theme"

func newTables(r *theme.Resolver) *category {
	c := newCategory("tables", r)

	c.keyword("border-collapse", kw("border-collapse", "collapse"))
	c.keyword("border-separate", kw("border-collapse", "separate"))
	c.keyword("table-auto", kw("table-layout", "auto"))
	c.keyword("table-fixed", kw("table-layout", "fixed"))
	c.keyword("caption-top", kw("caption-side", "top"))
	c.keyword("caption-bottom", kw("caption-side", "bottom"))

	for _, axis := range []string{"", "x", "y"} {
		axis := axis
		root, keys := "border-spacing", []string{"borderSpacingX", "borderSpacingY"}
		vars := []string{"--tw-border-spacing-x", "--tw-border-spacing-y"}
		if axis != "" {
			root = "border-spacing-" + axis
			keys, vars = []string{"borderSpacing" + upper(axis)}, []string{"--tw-border-spacing-" + axis}
		}
		c.family(&family{
			root: root, property: "borderSpacing", axis: axis, arbitrary: true,
			accept: c.isSpacing, hint: hintLength,
			resolve: func(u *Utility) Output {
				v, css := c.spacing(u, "", nil)
				decls := append(declAll(css, vars...),
					decl("border-spacing", "var(--tw-border-spacing-x) var(--tw-border-spacing-y)"))
				return Output{Entries: setKeys(v, keys...), Decls: decls}
			},
		})
	}

	return c.seal()
}
