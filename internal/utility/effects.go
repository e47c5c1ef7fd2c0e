package utility

import (
	"regexp"
	"strconv"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

// BlendModes lists the blend mode keywords mix-blend-* and bg-blend-* accept.
var BlendModes = []string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge", "color-burn",
	"hard-light", "soft-light", "difference", "exclusion", "hue", "saturation", "color", "luminosity",
}

var shadowColor = regexp.MustCompile(`rgba?\([^)]*\)|#[0-9a-fA-F]{3,8}\b`)

func newEffects(r *theme.Resolver) *category {
	c := newCategory("effects", r)

	c.family(&family{
		root: "shadow", property: "boxShadow", bare: "DEFAULT", arbitrary: true,
		accept: c.inScale(theme.ScaleShadow), hint: notVar(hintNotColor),
		resolve: func(u *Utility) Output {
			css := c.scaled(u, theme.ScaleShadow, "DEFAULT")
			return Output{
				Entries: setKeys(style.Text(css), "boxShadow"),
				Decls: []Declaration{
					decl("--tw-shadow", css),
					decl("--tw-shadow-colored", shadowColor.ReplaceAllString(css, "var(--tw-shadow-color)")),
					decl("box-shadow", "var(--tw-ring-offset-shadow, 0 0 #0000), var(--tw-ring-shadow, 0 0 #0000), var(--tw-shadow)"),
				},
			}
		},
	})

	c.family(&family{
		root: "opacity", property: "opacity", arbitrary: true,
		accept: anyOf(c.inScale(theme.ScaleOpacity), isAlpha), hint: hintNumber,
		resolve: func(u *Utility) Output {
			css := c.opacity(u)
			return Output{Entries: setKeys(numeric(css), "opacity"), Decls: []Declaration{decl("opacity", css)}}
		},
	})

	for _, m := range BlendModes {
		c.keyword("mix-blend-"+m, kw("mix-blend-mode", m))
		c.keyword("bg-blend-"+m, kw("background-blend-mode", m))
	}
	c.keyword("mix-blend-plus-darker", kw("mix-blend-mode", "plus-darker"))
	c.keyword("mix-blend-plus-lighter", kw("mix-blend-mode", "plus-lighter"))

	return c.seal()
}

// opacity resolves an opacity token: the preset scale, then a bare percentage.
func (c *category) opacity(u *Utility) string {
	if explicit(u) {
		return arbitrary(u)
	}
	if css, ok := c.r.Lookup(theme.ScaleOpacity, u.Value); ok {
		return css
	}
	n, _ := strconv.Atoi(u.Value)
	return style.FormatNumber(float64(n) / 100)
}
