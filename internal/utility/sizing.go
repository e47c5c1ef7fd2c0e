package utility

import (
	"strings"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

// Sizing modes recorded next to width and height.
const (
	ModeFixed = "fixed"
	ModeFill  = "fill"
	ModeHug   = "hug"
)

var contentSizes = map[string]string{
	"min": "min-content",
	"max": "max-content",
	"fit": "fit-content",
}

func sizeKeywords(viewport string) map[string]string {
	m := map[string]string{
		"auto":   "auto",
		"full":   "100%",
		"screen": "100" + viewport,
		"svw":    "100svw",
		"lvw":    "100lvw",
		"dvw":    "100dvw",
	}
	if viewport == "vh" {
		delete(m, "svw")
		delete(m, "lvw")
		delete(m, "dvw")
		m["svh"], m["lvh"], m["dvh"] = "100svh", "100lvh", "100dvh"
	}
	for k, v := range contentSizes {
		m[k] = v
	}
	return m
}

func newSizing(r *theme.Resolver) *category {
	c := newCategory("sizing", r)

	width, height := sizeKeywords("vw"), sizeKeywords("vh")
	c.sizeFamily("w", "width", []string{"width"}, []string{"width"}, width, true)
	c.sizeFamily("h", "height", []string{"height"}, []string{"height"}, height, true)

	both := make(map[string]string, len(width))
	for k, v := range width {
		if !strings.HasSuffix(v, "vw") {
			both[k] = v
		}
	}
	c.sizeFamily("size", "size", []string{"width", "height"}, []string{"width", "height"}, both, true)

	minW := map[string]string{"full": "100%", "screen": "100vw"}
	minH := map[string]string{"full": "100%", "screen": "100vh", "svh": "100svh", "lvh": "100lvh", "dvh": "100dvh"}
	for k, v := range contentSizes {
		minW[k], minH[k] = v, v
	}
	c.sizeFamily("min-w", "minWidth", []string{"minWidth"}, []string{"min-width"}, minW, false)
	c.sizeFamily("min-h", "minHeight", []string{"minHeight"}, []string{"min-height"}, minH, false)

	maxH := map[string]string{"none": "none", "full": "100%", "screen": "100vh", "svh": "100svh", "lvh": "100lvh", "dvh": "100dvh"}
	for k, v := range contentSizes {
		maxH[k] = v
	}
	c.sizeFamily("max-h", "maxHeight", []string{"maxHeight"}, []string{"max-height"}, maxH, false)

	c.family(&family{
		root: "max-w", property: "maxWidth", arbitrary: true, hint: hintLength,
		accept: anyOf(c.isSpacing, c.inScale(theme.ScaleMaxWidth), c.isMaxWidthScreen,
			oneOf("full", "min", "max", "fit")),
		resolve: func(u *Utility) Output {
			css := c.maxWidth(u)
			return Output{Entries: setKeys(c.lengthValue(css), "maxWidth"), Decls: []Declaration{decl("max-width", css)}}
		},
	})

	return c.seal()
}

// sizeFamily registers a width/height style family. When modes is set the
// sizing mode is recorded for each key.
func (c *category) sizeFamily(root, property string, keys, props []string, keywords map[string]string, modes bool) {
	c.family(&family{
		root: root, property: property, arbitrary: true, hint: hintLength,
		accept: anyOf(c.isSpacing, isFraction, func(v string) bool { return keywords[v] != "" }),
		resolve: func(u *Utility) Output {
			v, css := c.spacing(u, "", keywords)
			entries := setKeys(v, keys...)
			if modes {
				mode := sizeMode(u)
				for _, k := range keys {
					entries = append(entries, style.Set(k+"Mode", style.Text(mode)))
				}
			}
			return Output{Entries: entries, Decls: declAll(css, props...)}
		},
	})
}

// sizeMode infers how a node sizes along an axis: bracket values are always
// fixed, relative values fill their parent and content keywords hug.
func sizeMode(u *Utility) string {
	if explicit(u) {
		return ModeFixed
	}
	switch {
	case u.Value == "auto" || contentSizes[u.Value] != "":
		return ModeHug
	case u.Value == "full" || isFraction(u.Value) || strings.HasPrefix(u.Value, "screen") ||
		strings.HasSuffix(u.Value, "vw") || strings.HasSuffix(u.Value, "vh"):
		return ModeFill
	}
	return ModeFixed
}

func (c *category) isMaxWidthScreen(v string) bool {
	name, ok := strings.CutPrefix(v, "screen-")
	return ok && c.r.Has(theme.ScaleScreen, name)
}

func (c *category) maxWidth(u *Utility) string {
	if explicit(u) {
		return arbitrary(u)
	}
	if css, ok := c.r.Lookup(theme.ScaleMaxWidth, u.Value); ok {
		return css
	}
	if name, ok := strings.CutPrefix(u.Value, "screen-"); ok {
		return c.r.Resolve(theme.ScaleScreen, name)
	}
	if css := contentSizes[u.Value]; css != "" {
		return css
	}
	if u.Value == "full" {
		return "100%"
	}
	css, _ := c.r.SpacingCSS(u.Value)
	return css
}
