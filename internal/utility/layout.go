package utility

import (
	"strings"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

var insetSides = []struct {
	root, direction, axis string
	keys, props           []string
}{
	{root: "inset", keys: []string{"top", "right", "bottom", "left"}, props: []string{"inset"}},
	{root: "inset-x", axis: "x", keys: []string{"left", "right"}, props: []string{"left", "right"}},
	{root: "inset-y", axis: "y", keys: []string{"top", "bottom"}, props: []string{"top", "bottom"}},
	{root: "top", direction: "top", keys: []string{"top"}, props: []string{"top"}},
	{root: "right", direction: "right", keys: []string{"right"}, props: []string{"right"}},
	{root: "bottom", direction: "bottom", keys: []string{"bottom"}, props: []string{"bottom"}},
	{root: "left", direction: "left", keys: []string{"left"}, props: []string{"left"}},
	{root: "start", direction: "start", keys: []string{"insetInlineStart"}, props: []string{"inset-inline-start"}},
	{root: "end", direction: "end", keys: []string{"insetInlineEnd"}, props: []string{"inset-inline-end"}},
}

var objectPositions = map[string]string{
	"bottom": "bottom", "center": "center", "left": "left", "left-bottom": "left bottom",
	"left-top": "left top", "right": "right", "right-bottom": "right bottom",
	"right-top": "right top", "top": "top",
}

func newLayout(r *theme.Resolver) *category {
	c := newCategory("layout", r)

	for _, p := range []string{"static", "fixed", "absolute", "relative", "sticky"} {
		c.keyword(p, kw("position", p))
	}

	inset := map[string]string{"auto": "auto", "full": "100%"}
	for _, s := range insetSides {
		s := s
		c.family(&family{
			root: s.root, property: "inset", direction: s.direction, axis: s.axis,
			negative: true, arbitrary: true, hint: hintLength,
			accept: anyOf(c.isSpacing, isFraction, func(v string) bool { return inset[v] != "" }),
			resolve: func(u *Utility) Output {
				v, css := c.spacing(u, "", inset)
				return Output{Entries: setKeys(v, s.keys...), Decls: declAll(css, s.props...)}
			},
		})
	}

	c.keyword("z-auto", kw("z-index", "auto"))
	c.numberFamily("z", "zIndex", "z-index", "", true)

	overflow := map[string]string{"auto": "auto", "hidden": "hidden", "clip": "clip", "visible": "visible", "scroll": "scroll"}
	c.keywordSet("overflow", "overflow", overflow)
	c.keywordSet("overflow-x", "overflow-x", overflow)
	c.keywordSet("overflow-y", "overflow-y", overflow)

	c.keyword("visible", kw("visibility", "visible"))
	c.keyword("invisible", kw("visibility", "hidden"))
	c.keyword("collapse", kw("visibility", "collapse"))

	sides := map[string]string{"left": "left", "right": "right", "start": "inline-start", "end": "inline-end", "none": "none"}
	c.keywordSet("float", "float", sides)
	clears := map[string]string{"both": "both"}
	for k, v := range sides {
		clears[k] = v
	}
	c.keywordSet("clear", "clear", clears)

	c.keywordSet("object", "object-fit", map[string]string{
		"contain": "contain", "cover": "cover", "fill": "fill", "none": "none", "scale-down": "scale-down",
	})
	c.keywordSet("object", "object-position", objectPositions)
	c.arbitraryFamily("object", "objectPosition", "object-position", nil)

	c.keyword("box-border", kw("box-sizing", "border-box"))
	c.keyword("box-content", kw("box-sizing", "content-box"))
	c.keyword("isolate", kw("isolation", "isolate"))
	c.keyword("isolation-auto", kw("isolation", "auto"))

	c.keywordSet("aspect", "aspect-ratio", map[string]string{"auto": "auto", "square": "1 / 1", "video": "16 / 9"})
	c.family(&family{
		root: "aspect", property: "aspectRatio", arbitrary: true, accept: isFraction,
		resolve: func(u *Utility) Output {
			css := strings.Replace(u.Value, "/", " / ", 1)
			if explicit(u) {
				css = arbitrary(u)
			}
			return Output{Entries: setKeys(style.Text(css), "aspectRatio"), Decls: []Declaration{decl("aspect-ratio", css)}}
		},
	})

	c.keyword("columns-auto", kw("columns", "auto"))
	c.family(&family{
		root: "columns", property: "columns", arbitrary: true,
		accept: anyOf(isInteger, c.inScale(theme.ScaleContainer)),
		resolve: func(u *Utility) Output {
			css := c.r.Resolve(theme.ScaleContainer, u.Value)
			if explicit(u) {
				css = arbitrary(u)
			}
			return Output{Entries: setKeys(style.Text(css), "columns"), Decls: []Declaration{decl("columns", css)}}
		},
	})

	pageBreaks := map[string]string{
		"auto": "auto", "avoid": "avoid", "all": "all", "avoid-page": "avoid-page",
		"page": "page", "left": "left", "right": "right", "column": "column",
	}
	c.keywordSet("break-after", "break-after", pageBreaks)
	c.keywordSet("break-before", "break-before", pageBreaks)
	c.keywordSet("break-inside", "break-inside", map[string]string{
		"auto": "auto", "avoid": "avoid", "avoid-page": "avoid-page", "avoid-column": "avoid-column",
	})
	c.keywordSet("box-decoration", "box-decoration-break", map[string]string{"clone": "clone", "slice": "slice"})

	overscroll := map[string]string{"auto": "auto", "contain": "contain", "none": "none"}
	c.keywordSet("overscroll", "overscroll-behavior", overscroll)
	c.keywordSet("overscroll-x", "overscroll-behavior-x", overscroll)
	c.keywordSet("overscroll-y", "overscroll-behavior-y", overscroll)

	c.keyword("sr-only", keyword{
		property: "position",
		decls: []Declaration{
			decl("position", "absolute"), decl("width", "1px"), decl("height", "1px"),
			decl("padding", "0"), decl("margin", "-1px"), decl("overflow", "hidden"),
			decl("clip", "rect(0, 0, 0, 0)"), decl("white-space", "nowrap"), decl("border-width", "0"),
		},
		entries: []style.Entry{
			style.Set("position", style.Text("absolute")),
			style.Set("width", style.Num(1)),
			style.Set("height", style.Num(1)),
			style.Set("overflow", style.Text("hidden")),
		},
	})
	c.keyword("not-sr-only", keyword{
		property: "position",
		decls: []Declaration{
			decl("position", "static"), decl("width", "auto"), decl("height", "auto"),
			decl("padding", "0"), decl("margin", "0"), decl("overflow", "visible"),
			decl("clip", "auto"), decl("white-space", "normal"),
		},
		entries: []style.Entry{
			style.Set("position", style.Text("static")),
			style.Set("width", style.Text("auto")),
			style.Set("height", style.Text("auto")),
			style.Set("overflow", style.Text("visible")),
		},
	})

	c.keyword("@container", keyword{
		property: "container",
		decls:    []Declaration{decl("container-type", "inline-size")},
		entries:  []style.Entry{style.Set("container", style.Text("inline-size"))},
	})
	c.keyword("@container-normal", keyword{
		property: "container",
		decls:    []Declaration{decl("container-type", "normal")},
		entries:  []style.Entry{style.Set("container", style.Text("normal"))},
	})

	return c.seal()
}
