package utility

import (
	"strings"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

var cursors = []string{
	"auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed", "none",
	"context-menu", "progress", "cell", "crosshair", "vertical-text", "alias", "copy", "no-drop",
	"grab", "grabbing", "all-scroll", "col-resize", "row-resize", "n-resize", "e-resize", "s-resize",
	"w-resize", "ne-resize", "nw-resize", "se-resize", "sw-resize", "ew-resize", "ns-resize",
	"nesw-resize", "nwse-resize", "zoom-in", "zoom-out",
}

func newInteractivity(r *theme.Resolver) *category {
	c := newCategory("interactivity", r)

	for _, cur := range cursors {
		c.keyword("cursor-"+cur, kw("cursor", cur))
	}
	c.arbitraryFamily("cursor", "cursor", "cursor", nil)

	c.keywordSet("pointer-events", "pointer-events", map[string]string{"none": "none", "auto": "auto"})
	c.keywordSet("resize", "resize", map[string]string{"": "both", "none": "none", "x": "horizontal", "y": "vertical"})
	c.keywordSet("select", "user-select", map[string]string{"none": "none", "text": "text", "all": "all", "auto": "auto"})
	c.keywordSet("appearance", "appearance", map[string]string{"none": "none", "auto": "auto"})
	c.keywordSet("touch", "touch-action", map[string]string{
		"auto": "auto", "none": "none", "pan-x": "pan-x", "pan-left": "pan-left", "pan-right": "pan-right",
		"pan-y": "pan-y", "pan-up": "pan-up", "pan-down": "pan-down", "pinch-zoom": "pinch-zoom",
		"manipulation": "manipulation",
	})
	c.keywordSet("will-change", "will-change", map[string]string{
		"auto": "auto", "scroll": "scroll-position", "contents": "contents", "transform": "transform",
	})
	c.arbitraryFamily("will-change", "willChange", "will-change", nil)
	c.keywordSet("scheme", "color-scheme", map[string]string{
		"normal": "normal", "dark": "dark", "light": "light", "light-dark": "light dark",
		"only-dark": "only dark", "only-light": "only light",
	})
	c.keyword("accent-auto", kw("accent-color", "auto"))

	c.keywordSet("scroll", "scroll-behavior", map[string]string{"auto": "auto", "smooth": "smooth"})
	c.keywordSet("snap", "scroll-snap-align", map[string]string{"start": "start", "end": "end", "center": "center", "align-none": "none"})
	c.keywordSet("snap", "scroll-snap-stop", map[string]string{"normal": "normal", "always": "always"})
	c.keyword("snap-none", kw("scroll-snap-type", "none"))
	for axis, v := range map[string]string{"x": "x", "y": "y", "both": "both"} {
		c.keyword("snap-"+axis, keyword{
			property: "scrollSnapType",
			decls:    []Declaration{decl("scroll-snap-type", v+" var(--tw-scroll-snap-strictness)")},
			entries:  []style.Entry{style.Set("scrollSnapType", style.Text(v))},
		})
	}
	for _, s := range []string{"mandatory", "proximity"} {
		c.keyword("snap-"+s, keyword{
			property: "scrollSnapType",
			decls:    []Declaration{decl("--tw-scroll-snap-strictness", s)},
			entries:  []style.Entry{},
		})
	}

	for _, s := range boxSides {
		if strings.Contains(s.keys[0], "Inline") {
			continue
		}
		c.boxFamily("scroll-m", "scrollMargin", "scroll-margin", s, true, nil)
		c.boxFamily("scroll-p", "scrollPadding", "scroll-padding", s, false, nil)
	}

	return c.seal()
}
