// Package props maps style documents onto the node property schema of a
// design surface: paints, strokes, effects, corner radii, auto layout and
// text metrics.
package props

// PaintType discriminates paints.
type PaintType string

// Paint types.
const (
	PaintSolid          PaintType = "SOLID"
	PaintLinearGradient PaintType = "GRADIENT_LINEAR"
	PaintImage          PaintType = "IMAGE"
)

// EffectType discriminates effects.
type EffectType string

// Effect types.
const (
	DropShadow     EffectType = "DROP_SHADOW"
	InnerShadow    EffectType = "INNER_SHADOW"
	LayerBlur      EffectType = "LAYER_BLUR"
	BackgroundBlur EffectType = "BACKGROUND_BLUR"
)

// Sizing is how a node sizes along one axis.
type Sizing string

// Sizing modes.
const (
	SizingFixed Sizing = "FIXED"
	SizingFill  Sizing = "FILL"
	SizingHug   Sizing = "HUG"
)

// Unit qualifies line height and letter spacing.
type Unit string

// Units.
const (
	UnitAuto    Unit = "AUTO"
	UnitPixels  Unit = "PIXELS"
	UnitPercent Unit = "PERCENT"
)

// Text auto-resize modes.
const (
	ResizeNone           = "NONE"
	ResizeHeight         = "HEIGHT"
	ResizeWidthAndHeight = "WIDTH_AND_HEIGHT"
)

// Color has channels in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// ColorStop is one gradient stop. Position is in [0,1].
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Paint is a fill or stroke. Solid paints keep alpha in Opacity and an
// opaque Color.
type Paint struct {
	Type          PaintType   `json:"type"`
	Color         *Color      `json:"color,omitempty"`
	Opacity       *float64    `json:"opacity,omitempty"`
	GradientStops []ColorStop `json:"gradientStops,omitempty"`
	Angle         *float64    `json:"angle,omitempty"` // degrees clockwise from "to top"
	ImageURL      string      `json:"imageUrl,omitempty"`
	ScaleMode     string      `json:"scaleMode,omitempty"`
}

// Vector is a 2D offset.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Effect is a shadow or blur.
type Effect struct {
	Type    EffectType `json:"type"`
	Color   *Color     `json:"color,omitempty"`
	Offset  *Vector    `json:"offset,omitempty"`
	Radius  float64    `json:"radius"`
	Spread  *float64   `json:"spread,omitempty"`
	Visible bool       `json:"visible"`
}

// FontName is a font family and style name, e.g. {"Inter", "Semi Bold"}.
type FontName struct {
	Family string `json:"family"`
	Style  string `json:"style"`
}

// Metric is a line height or letter spacing.
type Metric struct {
	Unit  Unit    `json:"unit"`
	Value float64 `json:"value,omitempty"`
}

// Text holds text-node properties.
type Text struct {
	FontSize            *float64  `json:"fontSize,omitempty"`
	FontName            *FontName `json:"fontName,omitempty"`
	FontWeight          *float64  `json:"fontWeight,omitempty"`
	LineHeight          *Metric   `json:"lineHeight,omitempty"`
	LetterSpacing       *Metric   `json:"letterSpacing,omitempty"`
	TextAlignHorizontal string    `json:"textAlignHorizontal,omitempty"`
	TextCase            string    `json:"textCase,omitempty"`
	TextDecoration      string    `json:"textDecoration,omitempty"`
	TextAutoResize      string    `json:"textAutoResize,omitempty"`
	TextTruncation      string    `json:"textTruncation,omitempty"`
	MaxLines            *int      `json:"maxLines,omitempty"`
}

// Properties is the property set of one node. A nil pointer or empty
// string means the property was not set.
type Properties struct {
	Fills              []Paint   `json:"fills,omitempty"`
	Strokes            []Paint   `json:"strokes,omitempty"`
	StrokeWeight       *float64  `json:"strokeWeight,omitempty"`
	StrokeTopWeight    *float64  `json:"strokeTopWeight,omitempty"`
	StrokeRightWeight  *float64  `json:"strokeRightWeight,omitempty"`
	StrokeBottomWeight *float64  `json:"strokeBottomWeight,omitempty"`
	StrokeLeftWeight   *float64  `json:"strokeLeftWeight,omitempty"`
	StrokeAlign        string    `json:"strokeAlign,omitempty"`
	DashPattern        []float64 `json:"dashPattern,omitempty"`

	CornerRadius      *float64 `json:"cornerRadius,omitempty"`
	TopLeftRadius     *float64 `json:"topLeftRadius,omitempty"`
	TopRightRadius    *float64 `json:"topRightRadius,omitempty"`
	BottomRightRadius *float64 `json:"bottomRightRadius,omitempty"`
	BottomLeftRadius  *float64 `json:"bottomLeftRadius,omitempty"`

	Effects   []Effect `json:"effects,omitempty"`
	Opacity   *float64 `json:"opacity,omitempty"`
	BlendMode string   `json:"blendMode,omitempty"`
	Rotation  *float64 `json:"rotation,omitempty"`
	Visible   *bool    `json:"visible,omitempty"`

	LayoutMode            string   `json:"layoutMode,omitempty"` // HORIZONTAL, VERTICAL, GRID, NONE
	LayoutWrap            string   `json:"layoutWrap,omitempty"`
	PrimaryAxisAlignItems string   `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems string   `json:"counterAxisAlignItems,omitempty"`
	ItemSpacing           *float64 `json:"itemSpacing,omitempty"`
	CounterAxisSpacing    *float64 `json:"counterAxisSpacing,omitempty"`
	PaddingTop            *float64 `json:"paddingTop,omitempty"`
	PaddingRight          *float64 `json:"paddingRight,omitempty"`
	PaddingBottom         *float64 `json:"paddingBottom,omitempty"`
	PaddingLeft           *float64 `json:"paddingLeft,omitempty"`
	ClipsContent          *bool    `json:"clipsContent,omitempty"`
	LayoutPositioning     string   `json:"layoutPositioning,omitempty"`
	X                     *float64 `json:"x,omitempty"`
	Y                     *float64 `json:"y,omitempty"`
	LayoutGrow            *float64 `json:"layoutGrow,omitempty"`
	LayoutAlign           string   `json:"layoutAlign,omitempty"`

	Width                  *float64 `json:"width,omitempty"`
	Height                 *float64 `json:"height,omitempty"`
	MinWidth               *float64 `json:"minWidth,omitempty"`
	MaxWidth               *float64 `json:"maxWidth,omitempty"`
	MinHeight              *float64 `json:"minHeight,omitempty"`
	MaxHeight              *float64 `json:"maxHeight,omitempty"`
	LayoutSizingHorizontal Sizing   `json:"layoutSizingHorizontal,omitempty"`
	LayoutSizingVertical   Sizing   `json:"layoutSizingVertical,omitempty"`

	Text *Text `json:"text,omitempty"`
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}

func ptr[T any](v T) *T {
	return &v
}
