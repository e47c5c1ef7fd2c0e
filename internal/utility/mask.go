package utility

import "github.com/easylogic/cssma/internal/theme"

var maskBoxes = map[string]string{
	"border": "border-box", "padding": "padding-box", "content": "content-box",
	"fill": "fill-box", "stroke": "stroke-box", "view": "view-box",
}

func newMask(r *theme.Resolver) *category {
	c := newCategory("mask", r)

	c.keyword("mask-none", kw("mask-image", "none"))
	c.arbitraryFamily("mask", "maskImage", "mask-image", hintImage)

	c.keywordSet("mask", "mask-mode", map[string]string{"alpha": "alpha", "luminance": "luminance", "match": "match-source"})
	c.keywordSet("mask-type", "mask-type", map[string]string{"alpha": "alpha", "luminance": "luminance"})

	c.keywordSet("mask", "mask-size", map[string]string{"auto": "auto", "cover": "cover", "contain": "contain"})
	c.arbitraryFamily("mask-size", "maskSize", "mask-size", nil)

	c.keywordSet("mask", "mask-position", objectPositions)
	c.arbitraryFamily("mask-position", "maskPosition", "mask-position", nil)

	c.keywordSet("mask", "mask-repeat", map[string]string{
		"repeat": "repeat", "no-repeat": "no-repeat", "repeat-x": "repeat-x", "repeat-y": "repeat-y",
		"repeat-space": "space", "repeat-round": "round",
	})

	c.keywordSet("mask-clip", "mask-clip", maskBoxes)
	c.keyword("mask-no-clip", kw("mask-clip", "no-clip"))
	c.keywordSet("mask-origin", "mask-origin", maskBoxes)

	c.keywordSet("mask", "mask-composite", map[string]string{
		"add": "add", "subtract": "subtract", "intersect": "intersect", "exclude": "exclude",
	})

	return c.seal()
}
