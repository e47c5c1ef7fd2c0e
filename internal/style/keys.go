package style

import "fmt"

// Category names one namespace of the style document.
type Category string

// Document categories, in the order they are reported.
const (
	Spacing       Category = "spacing"
	Sizing        Category = "sizing"
	Colors        Category = "colors"
	Typography    Category = "typography"
	Effects       Category = "effects"
	Layout        Category = "layout"
	FlexboxGrid   Category = "flexboxGrid"
	Mask          Category = "mask"
	Borders       Category = "borders"
	Backgrounds   Category = "backgrounds"
	Transforms    Category = "transforms"
	Transitions   Category = "transitions"
	Tables        Category = "tables"
	Interactivity Category = "interactivity"
	SVG           Category = "svg"
	Arbitrary     Category = "arbitrary"
)

// Categories lists every category in report order.
var Categories = []Category{
	Spacing, Sizing, Colors, Typography, Effects, Layout, FlexboxGrid, Mask,
	Borders, Backgrounds, Transforms, Transitions, Tables, Interactivity, SVG, Arbitrary,
}

// ownership declares which category owns each document key. Arbitrary owns
// no fixed keys; it receives properties no other category declares.
var ownership = map[Category][]string{
	Spacing: {
		"paddingTop", "paddingRight", "paddingBottom", "paddingLeft",
		"paddingInlineStart", "paddingInlineEnd",
		"marginTop", "marginRight", "marginBottom", "marginLeft",
		"marginInlineStart", "marginInlineEnd",
		"gap", "rowGap", "columnGap",
		"spaceX", "spaceY", "spaceXReverse", "spaceYReverse",
	},
	Sizing: {
		"width", "height", "minWidth", "minHeight", "maxWidth", "maxHeight",
		"widthMode", "heightMode",
	},
	Colors: {
		"color", "backgroundColor",
		"borderColor", "borderTopColor", "borderRightColor", "borderBottomColor", "borderLeftColor",
		"outlineColor", "ringColor", "ringOffsetColor", "divideColor",
		"accentColor", "caretColor", "placeholderColor", "textDecorationColor", "shadowColor",
	},
	Typography: {
		"fontFamily", "fontSize", "lineHeight", "fontWeight", "fontStyle", "letterSpacing",
		"fontVariantNumeric", "fontSmoothing", "fontStretch",
		"textAlign", "textTransform", "textDecorationLine", "textDecorationStyle",
		"textDecorationThickness", "textUnderlineOffset", "textOverflow", "textWrap",
		"textIndent", "whiteSpace", "wordBreak", "overflowWrap", "hyphens", "verticalAlign",
		"lineClamp", "listStyleType", "listStylePosition", "listStyleImage", "content",
	},
	Effects: {
		"boxShadow", "opacity", "mixBlendMode", "backgroundBlendMode",
		"filter", "backdropFilter",
		"ringWidth", "ringInset", "ringOffsetWidth",
	},
	Layout: {
		"position", "top", "right", "bottom", "left", "insetInlineStart", "insetInlineEnd",
		"zIndex", "overflow", "overflowX", "overflowY", "visibility", "float", "clear",
		"objectFit", "objectPosition", "boxSizing", "isolation", "aspectRatio", "columns",
		"breakAfter", "breakBefore", "breakInside", "boxDecorationBreak",
		"overscrollBehavior", "overscrollBehaviorX", "overscrollBehaviorY", "container",
	},
	FlexboxGrid: {
		"display", "flexDirection", "flexWrap", "flex", "flexGrow", "flexShrink", "flexBasis",
		"order", "alignItems", "alignContent", "alignSelf",
		"justifyContent", "justifyItems", "justifySelf",
		"placeContent", "placeItems", "placeSelf",
		"gridTemplateColumns", "gridTemplateRows", "gridColumn", "gridColumnStart", "gridColumnEnd",
		"gridRow", "gridRowStart", "gridRowEnd", "gridAutoFlow", "gridAutoColumns", "gridAutoRows",
	},
	Mask: {
		"maskImage", "maskMode", "maskSize", "maskPosition", "maskRepeat",
		"maskClip", "maskOrigin", "maskComposite", "maskType",
	},
	Borders: {
		"borderTopWidth", "borderRightWidth", "borderBottomWidth", "borderLeftWidth",
		"borderStyle",
		"borderTopLeftRadius", "borderTopRightRadius", "borderBottomRightRadius", "borderBottomLeftRadius",
		"outlineWidth", "outlineStyle", "outlineOffset",
		"divideXWidth", "divideYWidth", "divideStyle",
	},
	Backgrounds: {
		"backgroundImage", "backgroundSize", "backgroundPosition", "backgroundRepeat",
		"backgroundAttachment", "backgroundClip", "backgroundOrigin",
		"gradientFrom", "gradientVia", "gradientTo",
		"gradientFromPosition", "gradientViaPosition", "gradientToPosition",
	},
	Transforms: {
		"translateX", "translateY", "rotate", "scaleX", "scaleY", "skewX", "skewY",
		"transformOrigin", "transform", "perspective",
	},
	Transitions: {
		"transitionProperty", "transitionDuration", "transitionTimingFunction",
		"transitionDelay", "animation",
	},
	Tables: {
		"borderCollapse", "borderSpacingX", "borderSpacingY", "tableLayout", "captionSide",
	},
	Interactivity: {
		"cursor", "pointerEvents", "resize", "userSelect", "appearance", "touchAction",
		"willChange", "colorScheme",
		"scrollBehavior", "scrollSnapType", "scrollSnapAlign", "scrollSnapStop",
		"scrollMarginTop", "scrollMarginRight", "scrollMarginBottom", "scrollMarginLeft",
		"scrollPaddingTop", "scrollPaddingRight", "scrollPaddingBottom", "scrollPaddingLeft",
	},
	SVG: {
		"fill", "stroke", "strokeWidth",
	},
}

// owners maps every declared key to its category.
var owners = buildOwners()

func buildOwners() map[string]Category {
	idx := make(map[string]Category)
	for _, cat := range Categories {
		for _, key := range ownership[cat] {
			if prev, dup := idx[key]; dup {
				panic(fmt.Sprintf("style: key %q declared by both %s and %s", key, prev, cat))
			}
			idx[key] = cat
		}
	}
	return idx
}

// Owner returns the category that owns key. Keys outside the declared set
// are never owned; they can only enter a document as arbitrary properties.
func Owner(key string) (Category, bool) {
	cat, ok := owners[key]
	return cat, ok
}

// Keys returns the declared keys of a category in declaration order.
func Keys(cat Category) []string {
	return append([]string(nil), ownership[cat]...)
}
