package utility

import (
	"regexp"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

var gradientDirections = map[string]string{
	"t": "to top", "tr": "to top right", "r": "to right", "br": "to bottom right",
	"b": "to bottom", "bl": "to bottom left", "l": "to left", "tl": "to top left",
}

var percentPattern = regexp.MustCompile(`^(\d{1,2}|100)%$`)

func isPercent(v string) bool { return percentPattern.MatchString(v) }

func newBackgrounds(r *theme.Resolver) *category {
	c := newCategory("backgrounds", r)

	c.keywordSet("bg", "background-attachment", map[string]string{"fixed": "fixed", "local": "local", "scroll": "scroll"})
	c.keywordSet("bg-clip", "background-clip", map[string]string{
		"border": "border-box", "padding": "padding-box", "content": "content-box", "text": "text",
	})
	c.keywordSet("bg-origin", "background-origin", map[string]string{
		"border": "border-box", "padding": "padding-box", "content": "content-box",
	})
	c.keywordSet("bg", "background-repeat", map[string]string{
		"repeat": "repeat", "no-repeat": "no-repeat", "repeat-x": "repeat-x", "repeat-y": "repeat-y",
		"repeat-round": "round", "repeat-space": "space",
	})
	c.keywordSet("bg", "background-size", map[string]string{"auto": "auto", "cover": "cover", "contain": "contain"})
	c.keywordSet("bg", "background-position", objectPositions)
	c.keyword("bg-none", kw("background-image", "none"))
	for dir, css := range gradientDirections {
		c.keyword("bg-gradient-to-"+dir, kw("background-image", "linear-gradient("+css+", var(--tw-gradient-stops))"))
	}

	c.arbitraryFamily("bg", "backgroundImage", "background-image", hintImage)
	c.arbitraryFamily("bg", "backgroundSize", "background-size", hintTyped("length", "size", "bg-size", "percentage"))
	c.arbitraryFamily("bg", "backgroundPosition", "background-position", hintTyped("position"))

	for _, stop := range []string{"from", "via", "to"} {
		stop := stop
		key := "gradient" + upper(stop)
		c.family(&family{
			root: stop, property: key, arbitrary: true,
			accept: c.isColor, hint: hintColorOrVar, modifier: isAlpha,
			resolve: func(u *Utility) Output {
				css := c.colorCSS(u)
				return Output{Entries: setKeys(style.Text(css), key), Decls: c.gradientStop(stop, css)}
			},
		})
		pos := "--tw-gradient-" + stop + "-position"
		c.family(&family{
			root: stop, property: key + "Position", arbitrary: true,
			accept: isPercent, hint: notVar(hintLength),
			resolve: func(u *Utility) Output {
				css := u.Value
				if explicit(u) {
					css = arbitrary(u)
				}
				return Output{Entries: setKeys(style.Text(css), key+"Position"), Decls: []Declaration{decl(pos, css)}}
			},
		})
	}

	return c.seal()
}

// gradientStop renders the custom properties one color stop contributes to
// --tw-gradient-stops.
func (c *category) gradientStop(stop, css string) []Declaration {
	faded := "transparent"
	if t, ok := c.r.ColorAlpha(css, 0); ok {
		faded = t
	}
	switch stop {
	case "from":
		return []Declaration{
			decl("--tw-gradient-from", css+" var(--tw-gradient-from-position)"),
			decl("--tw-gradient-to", faded+" var(--tw-gradient-to-position)"),
			decl("--tw-gradient-stops", "var(--tw-gradient-from), var(--tw-gradient-to)"),
		}
	case "via":
		return []Declaration{
			decl("--tw-gradient-to", faded+" var(--tw-gradient-to-position)"),
			decl("--tw-gradient-stops", "var(--tw-gradient-from), "+css+" var(--tw-gradient-via-position), var(--tw-gradient-to)"),
		}
	}
	return []Declaration{decl("--tw-gradient-to", css+" var(--tw-gradient-to-position)")}
}
