package utility

import (
	"strings"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

const (
	defaultTiming   = "cubic-bezier(0.4, 0, 0.2, 1)"
	defaultDuration = "150ms"
)

var transitionProperties = map[string]string{
	"DEFAULT":   "color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, filter, backdrop-filter",
	"all":       "all",
	"colors":    "color, background-color, border-color, text-decoration-color, fill, stroke",
	"opacity":   "opacity",
	"shadow":    "box-shadow",
	"transform": "transform",
}

func newTransitions(r *theme.Resolver) *category {
	c := newCategory("transitions", r)

	c.keyword("transition-none", kw("transition-property", "none"))
	c.family(&family{
		root: "transition", property: "transitionProperty", bare: "DEFAULT", arbitrary: true,
		accept: func(v string) bool { return transitionProperties[v] != "" },
		resolve: func(u *Utility) Output {
			css := transitionProperties[tokenOf(u, "DEFAULT")]
			if explicit(u) {
				css = arbitrary(u)
			}
			return Output{
				Entries: []style.Entry{
					style.Set("transitionProperty", style.Text(css)),
					style.Set("transitionTimingFunction", style.Text(defaultTiming)),
					style.Set("transitionDuration", style.Text(defaultDuration)),
				},
				Decls: []Declaration{
					decl("transition-property", css),
					decl("transition-timing-function", defaultTiming),
					decl("transition-duration", defaultDuration),
				},
			}
		},
	})

	c.timeFamily("duration", "transitionDuration", "transition-duration")
	c.timeFamily("delay", "transitionDelay", "transition-delay")

	c.family(&family{
		root: "ease", property: "transitionTimingFunction", arbitrary: true,
		accept: c.inScale(theme.ScaleEase),
		resolve: func(u *Utility) Output {
			css := c.r.Resolve(theme.ScaleEase, u.Value)
			if explicit(u) {
				css = arbitrary(u)
			}
			return Output{Entries: setKeys(style.Text(css), "transitionTimingFunction"), Decls: []Declaration{decl("transition-timing-function", css)}}
		},
	})

	c.family(&family{
		root: "animate", property: "animation", arbitrary: true,
		accept: c.inScale(theme.ScaleAnimation),
		resolve: func(u *Utility) Output {
			css := c.r.Resolve(theme.ScaleAnimation, u.Value)
			if explicit(u) {
				css = arbitrary(u)
			}
			out := Output{Entries: setKeys(style.Text(css), "animation"), Decls: []Declaration{decl("animation", css)}}
			if name, _, _ := strings.Cut(css, " "); name != "none" {
				if _, ok := c.r.Preset().Keyframes[name]; ok {
					out.Keyframes = []string{name}
				}
			}
			return out
		},
	})

	return c.seal()
}

// timeFamily registers duration-like utilities: duration-150 is 150ms.
func (c *category) timeFamily(root, key, prop string) {
	c.family(&family{
		root: root, property: key, arbitrary: true, accept: isInteger, hint: hintNotColor,
		resolve: func(u *Utility) Output {
			css := u.Value + "ms"
			if explicit(u) {
				css = arbitrary(u)
			}
			return Output{Entries: setKeys(style.Text(css), key), Decls: []Declaration{decl(prop, css)}}
		},
	})
}
