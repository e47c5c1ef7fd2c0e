package utility

import (
	"strings"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

// colorTarget is one utility root that takes a color.
type colorTarget struct {
	root      string
	direction string
	keys      []string
	props     []string
	selector  string
	extra     []Declaration
}

var colorTargets = []colorTarget{
	{root: "text", keys: []string{"color"}, props: []string{"color"}},
	{root: "bg", keys: []string{"backgroundColor"}, props: []string{"background-color"}},
	{root: "border", keys: []string{"borderColor"}, props: []string{"border-color"}},
	{root: "border-x", keys: []string{"borderLeftColor", "borderRightColor"}, props: []string{"border-left-color", "border-right-color"}},
	{root: "border-y", keys: []string{"borderTopColor", "borderBottomColor"}, props: []string{"border-top-color", "border-bottom-color"}},
	{root: "border-t", direction: "top", keys: []string{"borderTopColor"}, props: []string{"border-top-color"}},
	{root: "border-r", direction: "right", keys: []string{"borderRightColor"}, props: []string{"border-right-color"}},
	{root: "border-b", direction: "bottom", keys: []string{"borderBottomColor"}, props: []string{"border-bottom-color"}},
	{root: "border-l", direction: "left", keys: []string{"borderLeftColor"}, props: []string{"border-left-color"}},
	{root: "outline", keys: []string{"outlineColor"}, props: []string{"outline-color"}},
	{root: "ring", keys: []string{"ringColor"}, props: []string{"--tw-ring-color"}},
	{root: "ring-offset", keys: []string{"ringOffsetColor"}, props: []string{"--tw-ring-offset-color"}},
	{root: "divide", keys: []string{"divideColor"}, props: []string{"border-color"}, selector: childSelector},
	{root: "accent", keys: []string{"accentColor"}, props: []string{"accent-color"}},
	{root: "caret", keys: []string{"caretColor"}, props: []string{"caret-color"}},
	{root: "placeholder", keys: []string{"placeholderColor"}, props: []string{"color"}, selector: "::placeholder"},
	{root: "decoration", keys: []string{"textDecorationColor"}, props: []string{"text-decoration-color"}},
	{
		root: "shadow", keys: []string{"shadowColor"}, props: []string{"--tw-shadow-color"},
		extra: []Declaration{decl("--tw-shadow", "var(--tw-shadow-colored)")},
	},
}

func newColors(r *theme.Resolver) *category {
	c := newCategory("colors", r)
	for _, t := range colorTargets {
		t := t
		c.family(&family{
			root: t.root, property: t.keys[0], direction: t.direction, arbitrary: true,
			accept: c.isColor, hint: hintColorOrVar, modifier: isAlpha,
			resolve: func(u *Utility) Output {
				css := c.colorCSS(u)
				return Output{
					Entries:  setKeys(style.Text(css), t.keys...),
					Decls:    append(declAll(css, t.props...), t.extra...),
					Selector: t.selector,
				}
			},
		})
	}
	return c.seal()
}

// hintColorOrVar accepts colors and bare variable references, which default
// to colors.
func hintColorOrVar(inner string) bool {
	if t, v := typeHint(inner); t == "" && strings.HasPrefix(v, "var(") {
		return true
	}
	return hintColor(inner)
}

// colorCSS resolves the color of u and applies its opacity modifier.
func (c *category) colorCSS(u *Utility) string {
	token := u.Value
	if explicit(u) {
		token = arbitrary(u)
	}
	if u.Modifier == "" {
		css, _ := c.r.Color(token)
		return css
	}
	if css, ok := c.r.ColorAlpha(token, alphaValue(u.Modifier)); ok {
		return css
	}
	return token
}
