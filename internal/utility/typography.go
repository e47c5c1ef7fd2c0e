package utility

import (
	"strconv"
	"strings"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/syntax"
	"github.com/easylogic/cssma/internal/theme"
)

func newTypography(r *theme.Resolver) *category {
	c := newCategory("typography", r)

	c.family(&family{
		root: "font", property: "fontFamily", arbitrary: true,
		hint:   func(v string) bool { return !hintNumber(v) },
		accept: c.inScale(theme.ScaleFontFamily),
		resolve: func(u *Utility) Output {
			css := c.r.Resolve(theme.ScaleFontFamily, u.Value)
			if explicit(u) {
				css = arbitrary(u)
			}
			return Output{Entries: setKeys(style.Text(css), "fontFamily"), Decls: []Declaration{decl("font-family", css)}}
		},
	})
	c.family(&family{
		root: "font", property: "fontWeight", arbitrary: true, hint: hintNumber,
		accept: c.inScale(theme.ScaleFontWeight),
		resolve: func(u *Utility) Output {
			css := c.r.Resolve(theme.ScaleFontWeight, u.Value)
			if explicit(u) {
				css = arbitrary(u)
			}
			return Output{Entries: setKeys(numeric(css), "fontWeight"), Decls: []Declaration{decl("font-weight", css)}}
		},
	})

	lineHeight := anyOf(c.inScale(theme.ScaleLineHeight), c.isSpacing, isBracketed)
	c.family(&family{
		root: "text", property: "fontSize", arbitrary: true, hint: notVar(hintLength),
		accept: c.inScale(theme.ScaleFontSize), modifier: lineHeight,
		resolve: c.fontSize,
	})
	c.keywordSet("text", "text-align", map[string]string{
		"left": "left", "center": "center", "right": "right", "justify": "justify", "start": "start", "end": "end",
	})
	c.keywordSet("text", "text-wrap", map[string]string{"wrap": "wrap", "nowrap": "nowrap", "balance": "balance", "pretty": "pretty"})
	c.keywordSet("text", "text-overflow", map[string]string{"ellipsis": "ellipsis", "clip": "clip"})
	c.keyword("truncate", kwDecls("textOverflow",
		decl("overflow", "hidden"), decl("text-overflow", "ellipsis"), decl("white-space", "nowrap")))

	c.family(&family{
		root: "leading", property: "lineHeight", arbitrary: true, hint: hintNotColor,
		accept: anyOf(c.inScale(theme.ScaleLineHeight), c.isSpacing),
		resolve: func(u *Utility) Output {
			css := c.lineHeight(u.Value)
			if explicit(u) {
				css = arbitrary(u)
			}
			return Output{Entries: setKeys(c.lineHeightValue(css), "lineHeight"), Decls: []Declaration{decl("line-height", css)}}
		},
	})
	c.family(&family{
		root: "tracking", property: "letterSpacing", arbitrary: true, negative: true, hint: hintLength,
		accept: c.inScale(theme.ScaleLetterSpacing),
		resolve: func(u *Utility) Output {
			css := c.r.Resolve(theme.ScaleLetterSpacing, u.Value)
			if explicit(u) {
				css = arbitrary(u)
			}
			if u.Negative {
				css = negateCSS(css)
			}
			return Output{Entries: setKeys(c.lengthValue(css), "letterSpacing"), Decls: []Declaration{decl("letter-spacing", css)}}
		},
	})

	c.keyword("italic", kw("font-style", "italic"))
	c.keyword("not-italic", kw("font-style", "normal"))
	c.keyword("uppercase", kw("text-transform", "uppercase"))
	c.keyword("lowercase", kw("text-transform", "lowercase"))
	c.keyword("capitalize", kw("text-transform", "capitalize"))
	c.keyword("normal-case", kw("text-transform", "none"))
	c.keyword("antialiased", keyword{
		property: "fontSmoothing",
		decls:    []Declaration{decl("-webkit-font-smoothing", "antialiased"), decl("-moz-osx-font-smoothing", "grayscale")},
		entries:  []style.Entry{style.Set("fontSmoothing", style.Text("antialiased"))},
	})
	c.keyword("subpixel-antialiased", keyword{
		property: "fontSmoothing",
		decls:    []Declaration{decl("-webkit-font-smoothing", "auto"), decl("-moz-osx-font-smoothing", "auto")},
		entries:  []style.Entry{style.Set("fontSmoothing", style.Text("auto"))},
	})
	for _, n := range []string{"ordinal", "slashed-zero", "lining-nums", "oldstyle-nums", "proportional-nums", "tabular-nums", "diagonal-fractions", "stacked-fractions"} {
		c.keyword(n, kw("font-variant-numeric", n))
	}
	c.keyword("normal-nums", kw("font-variant-numeric", "normal"))
	c.keywordSet("font-stretch", "font-stretch", map[string]string{
		"ultra-condensed": "ultra-condensed", "extra-condensed": "extra-condensed", "condensed": "condensed",
		"semi-condensed": "semi-condensed", "normal": "normal", "semi-expanded": "semi-expanded",
		"expanded": "expanded", "extra-expanded": "extra-expanded", "ultra-expanded": "ultra-expanded",
	})

	c.keyword("underline", kw("text-decoration-line", "underline"))
	c.keyword("overline", kw("text-decoration-line", "overline"))
	c.keyword("line-through", kw("text-decoration-line", "line-through"))
	c.keyword("no-underline", kw("text-decoration-line", "none"))
	c.keywordSet("decoration", "text-decoration-style", map[string]string{
		"solid": "solid", "double": "double", "dotted": "dotted", "dashed": "dashed", "wavy": "wavy",
	})
	c.keywordSet("decoration", "text-decoration-thickness", map[string]string{"auto": "auto", "from-font": "from-font"})
	c.family(&family{
		root: "decoration", property: "textDecorationThickness", arbitrary: true,
		accept: isInteger, hint: notVar(hintLength),
		resolve: c.pxFamily("textDecorationThickness", "text-decoration-thickness"),
	})
	c.keyword("underline-offset-auto", kw("text-underline-offset", "auto"))
	c.family(&family{
		root: "underline-offset", property: "textUnderlineOffset", arbitrary: true,
		accept: isInteger, hint: hintLength,
		resolve: c.pxFamily("textUnderlineOffset", "text-underline-offset"),
	})

	c.family(&family{
		root: "indent", property: "textIndent", negative: true, arbitrary: true,
		accept: c.isSpacing, hint: hintLength,
		resolve: func(u *Utility) Output {
			v, css := c.spacing(u, "", nil)
			return Output{Entries: setKeys(v, "textIndent"), Decls: []Declaration{decl("text-indent", css)}}
		},
	})

	c.keywordSet("whitespace", "white-space", map[string]string{
		"normal": "normal", "nowrap": "nowrap", "pre": "pre", "pre-line": "pre-line",
		"pre-wrap": "pre-wrap", "break-spaces": "break-spaces",
	})
	c.keyword("break-normal", kwDecls("wordBreak", decl("overflow-wrap", "normal"), decl("word-break", "normal")))
	c.keyword("break-words", kw("overflow-wrap", "break-word"))
	c.keyword("break-all", kw("word-break", "break-all"))
	c.keyword("break-keep", kw("word-break", "keep-all"))
	c.keywordSet("hyphens", "hyphens", map[string]string{"none": "none", "manual": "manual", "auto": "auto"})
	c.keywordSet("align", "vertical-align", map[string]string{
		"baseline": "baseline", "top": "top", "middle": "middle", "bottom": "bottom",
		"text-top": "text-top", "text-bottom": "text-bottom", "sub": "sub", "super": "super",
	})
	c.arbitraryFamily("align", "verticalAlign", "vertical-align", nil)

	c.keyword("line-clamp-none", keyword{
		property: "lineClamp",
		decls: []Declaration{
			decl("overflow", "visible"), decl("display", "block"),
			decl("-webkit-box-orient", "horizontal"), decl("-webkit-line-clamp", "none"),
		},
		entries: []style.Entry{style.Set("lineClamp", style.Text("none"))},
	})
	c.family(&family{
		root: "line-clamp", property: "lineClamp", arbitrary: true, accept: isInteger, hint: hintNumber,
		resolve: func(u *Utility) Output {
			n := u.Value
			if explicit(u) {
				n = arbitrary(u)
			}
			return Output{
				Entries: setKeys(numeric(n), "lineClamp"),
				Decls: []Declaration{
					decl("overflow", "hidden"), decl("display", "-webkit-box"),
					decl("-webkit-box-orient", "vertical"), decl("-webkit-line-clamp", n),
				},
			}
		},
	})

	c.keywordSet("list", "list-style-type", map[string]string{"none": "none", "disc": "disc", "decimal": "decimal"})
	c.keywordSet("list", "list-style-position", map[string]string{"inside": "inside", "outside": "outside"})
	c.keyword("list-image-none", kw("list-style-image", "none"))
	c.arbitraryFamily("list-image", "listStyleImage", "list-style-image", nil)
	c.arbitraryFamily("list", "listStyleType", "list-style-type", nil)

	c.keyword("content-none", kw("content", "none"))
	c.arbitraryFamily("content", "content", "content", nil)

	return c.seal()
}

// fontSize resolves text-<size>[/<line-height>].
func (c *category) fontSize(u *Utility) Output {
	var size, lh string
	if explicit(u) {
		size = arbitrary(u)
	} else if fs, ok := c.r.FontSize(u.Value); ok {
		size, lh = fs.Size, fs.LineHeight
	} else {
		size = u.Value
	}
	if u.Modifier != "" {
		if inner, ok := syntax.Bracketed(u.Modifier); ok {
			lh = syntax.Decode(inner)
		} else {
			lh = c.lineHeight(u.Modifier)
		}
	}
	out := Output{
		Entries: setKeys(c.lengthValue(size), "fontSize"),
		Decls:   []Declaration{decl("font-size", size)},
	}
	if lh != "" {
		out.Entries = append(out.Entries, style.Set("lineHeight", c.lineHeightValue(lh)))
		out.Decls = append(out.Decls, decl("line-height", lh))
	}
	return out
}

// lineHeight resolves a leading token: named scale entries first, then the
// spacing scale.
func (c *category) lineHeight(token string) string {
	if css, ok := c.r.Lookup(theme.ScaleLineHeight, token); ok {
		return css
	}
	if css, ok := c.r.SpacingCSS(token); ok {
		return css
	}
	return token
}

// lineHeightValue keeps unitless multipliers as text and lengths as px.
func (c *category) lineHeightValue(css string) style.Value {
	if px, ok := c.r.Px(css); ok && strings.IndexFunc(css, isLetter) >= 0 {
		return style.Num(px)
	}
	return style.Text(css)
}

// pxFamily resolves integer pixel utilities like decoration-2.
func (c *category) pxFamily(key, prop string) func(*Utility) Output {
	return func(u *Utility) Output {
		css := u.Value + "px"
		if explicit(u) {
			css = arbitrary(u)
		}
		return Output{Entries: setKeys(c.lengthValue(css), key), Decls: []Declaration{decl(prop, css)}}
	}
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func numeric(css string) style.Value {
	if isNumber(css) {
		f, _ := strconv.ParseFloat(css, 64)
		return style.Num(f)
	}
	return style.Text(css)
}
