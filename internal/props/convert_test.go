package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easylogic/cssma/internal/aggregate"
	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
	"github.com/easylogic/cssma/internal/utility"
)

func convert(t *testing.T, classes string, kind NodeKind) *Properties {
	t.Helper()
	r := theme.NewResolver(theme.Default(), theme.Options{})
	agg := aggregate.New(utility.NewRegistry(r, utility.Options{}), aggregate.DefaultConfig(), nil)
	res := agg.Aggregate(classes)
	require.Empty(t, res.Diagnostics, classes)
	return New(r, Options{}, nil).Convert(res.Base, kind)
}

func TestSizingModes(t *testing.T) {
	tests := []struct {
		classes string
		h, v    Sizing
		width   *float64
		height  *float64
	}{
		{"w-64 h-10", SizingFixed, SizingFixed, Float(256), Float(40)},
		{"w-full h-auto", SizingFill, SizingHug, nil, nil},
		{"w-1/2 h-screen", SizingFill, SizingFill, nil, nil},
		{"w-fit", SizingHug, "", nil, nil},
		{"w-[200px]", SizingFixed, "", Float(200), nil},
		{"w-[50%]", SizingFixed, "", nil, nil},
		{"size-8", SizingFixed, SizingFixed, Float(32), Float(32)},
	}
	for _, tt := range tests {
		t.Run(tt.classes, func(t *testing.T) {
			p := convert(t, tt.classes, FrameNode)
			assert.Equal(t, tt.h, p.LayoutSizingHorizontal)
			assert.Equal(t, tt.v, p.LayoutSizingVertical)
			assert.Equal(t, tt.width, p.Width)
			assert.Equal(t, tt.height, p.Height)
		})
	}
}

func TestSizingWithoutRecordedMode(t *testing.T) {
	doc := style.NewDocument()
	doc.Set("width", style.Num(120))
	doc.Set("height", style.Text("100%"))
	p := New(theme.NewResolver(theme.Default(), theme.Options{}), Options{}, nil).Convert(doc, FrameNode)

	assert.Equal(t, SizingFixed, p.LayoutSizingHorizontal)
	assert.Equal(t, Float(120), p.Width)
	assert.Equal(t, SizingFill, p.LayoutSizingVertical)
}

func TestTextAutoResize(t *testing.T) {
	tests := []struct {
		classes string
		want    string
	}{
		{"w-full h-auto", ResizeHeight},
		{"w-full", ResizeHeight},
		{"w-[100px] h-[20px]", ResizeNone},
		{"text-sm", ResizeWidthAndHeight},
		{"w-auto", ResizeWidthAndHeight},
		{"w-48 whitespace-nowrap", ResizeNone},
	}
	for _, tt := range tests {
		t.Run(tt.classes, func(t *testing.T) {
			p := convert(t, tt.classes, TextNode)
			require.NotNil(t, p.Text)
			assert.Equal(t, tt.want, p.Text.TextAutoResize)
		})
	}
}

func TestSolidFill(t *testing.T) {
	p := convert(t, "bg-blue-500/50", FrameNode)
	require.Len(t, p.Fills, 1)
	f := p.Fills[0]
	assert.Equal(t, PaintSolid, f.Type)
	assert.InDelta(t, 59.0/255, f.Color.R, 1e-6)
	assert.InDelta(t, 130.0/255, f.Color.G, 1e-6)
	assert.InDelta(t, 246.0/255, f.Color.B, 1e-6)
	assert.Equal(t, 1.0, f.Color.A)
	require.NotNil(t, f.Opacity)
	assert.Equal(t, 0.5, *f.Opacity)

	arbitrary := convert(t, "bg-[#112233]", FrameNode)
	require.Len(t, arbitrary.Fills, 1)
	assert.InDelta(t, 0x11/255.0, arbitrary.Fills[0].Color.R, 1e-6)
	assert.Nil(t, arbitrary.Fills[0].Opacity)
}

func TestTextFillUsesColor(t *testing.T) {
	p := convert(t, "bg-white text-red-500", TextNode)
	require.Len(t, p.Fills, 1)
	assert.InDelta(t, 0xef/255.0, p.Fills[0].Color.R, 1e-6)
}

func TestGradientFill(t *testing.T) {
	p := convert(t, "bg-gradient-to-r from-red-500 via-green-500 to-blue-500", FrameNode)
	require.Len(t, p.Fills, 1)
	g := p.Fills[0]
	assert.Equal(t, PaintLinearGradient, g.Type)
	require.NotNil(t, g.Angle)
	assert.Equal(t, 90.0, *g.Angle)
	require.Len(t, g.GradientStops, 3)
	assert.Equal(t, []float64{0, 0.5, 1}, []float64{
		g.GradientStops[0].Position, g.GradientStops[1].Position, g.GradientStops[2].Position,
	})
	assert.InDelta(t, 0xef/255.0, g.GradientStops[0].Color.R, 1e-6)

	faded := convert(t, "bg-gradient-to-b from-blue-500 from-10%", FrameNode)
	require.Len(t, faded.Fills, 1)
	stops := faded.Fills[0].GradientStops
	require.Len(t, stops, 2)
	assert.Equal(t, 0.1, stops[0].Position)
	assert.Equal(t, 1.0, stops[0].Color.A)
	assert.Equal(t, 0.0, stops[1].Color.A)
}

func TestStrokes(t *testing.T) {
	p := convert(t, "border-2 border-red-500 border-dashed", FrameNode)
	require.NotNil(t, p.StrokeWeight)
	assert.Equal(t, 2.0, *p.StrokeWeight)
	assert.Nil(t, p.StrokeTopWeight)
	assert.Equal(t, "INSIDE", p.StrokeAlign)
	assert.Equal(t, []float64{4, 4}, p.DashPattern)
	require.Len(t, p.Strokes, 1)
	assert.InDelta(t, 0xef/255.0, p.Strokes[0].Color.R, 1e-6)

	sides := convert(t, "border border-t-4", FrameNode)
	assert.Nil(t, sides.StrokeWeight)
	assert.Equal(t, Float(4), sides.StrokeTopWeight)
	assert.Equal(t, Float(1), sides.StrokeLeftWeight)
	require.Len(t, sides.Strokes, 1)
	assert.InDelta(t, 0xe5/255.0, sides.Strokes[0].Color.R, 1e-6)

	assert.Empty(t, convert(t, "border-red-500", FrameNode).Strokes)
}

func TestCorners(t *testing.T) {
	p := convert(t, "rounded-lg", FrameNode)
	assert.Equal(t, Float(8), p.CornerRadius)
	assert.Nil(t, p.TopLeftRadius)

	mixed := convert(t, "rounded-lg rounded-tl-none", FrameNode)
	assert.Nil(t, mixed.CornerRadius)
	assert.Equal(t, Float(0), mixed.TopLeftRadius)
	assert.Equal(t, Float(8), mixed.BottomRightRadius)
}

func TestEffects(t *testing.T) {
	p := convert(t, "shadow-lg", FrameNode)
	require.Len(t, p.Effects, 1)
	e := p.Effects[0]
	assert.Equal(t, DropShadow, e.Type)
	assert.Equal(t, 10.0, e.Radius)
	assert.Equal(t, Float(-3), e.Spread)
	assert.Equal(t, &Vector{X: 0, Y: 10}, e.Offset)
	assert.InDelta(t, 0.1, e.Color.A, 1e-6)

	custom := convert(t, "shadow-[0_4px_8px_rgba(0,0,0,0.2)]", FrameNode)
	require.Len(t, custom.Effects, 1)
	assert.Equal(t, 8.0, custom.Effects[0].Radius)
	assert.Nil(t, custom.Effects[0].Spread)
	assert.InDelta(t, 0.2, custom.Effects[0].Color.A, 1e-6)

	inner := convert(t, "shadow-inner", FrameNode)
	require.Len(t, inner.Effects, 1)
	assert.Equal(t, InnerShadow, inner.Effects[0].Type)

	blurs := convert(t, "blur-sm backdrop-blur-md", FrameNode)
	require.Len(t, blurs.Effects, 2)
	assert.Equal(t, Effect{Type: LayerBlur, Radius: 4, Visible: true}, blurs.Effects[0])
	assert.Equal(t, Effect{Type: BackgroundBlur, Radius: 12, Visible: true}, blurs.Effects[1])

	drop := convert(t, "drop-shadow-lg", FrameNode)
	require.Len(t, drop.Effects, 2, "one effect per drop-shadow layer")
	assert.Equal(t, DropShadow, drop.Effects[0].Type)
	assert.Equal(t, &Vector{X: 0, Y: 10}, drop.Effects[0].Offset)
	assert.Equal(t, 8.0, drop.Effects[0].Radius)
	assert.Equal(t, &Vector{X: 0, Y: 4}, drop.Effects[1].Offset)
	assert.Equal(t, 3.0, drop.Effects[1].Radius)

	ring := convert(t, "ring-2 ring-red-500", FrameNode)
	require.Len(t, ring.Effects, 1)
	assert.Equal(t, Float(2), ring.Effects[0].Spread)
	assert.Equal(t, 0.0, ring.Effects[0].Radius)
}

func TestOpacityAndBlend(t *testing.T) {
	p := convert(t, "opacity-50 mix-blend-color-dodge", FrameNode)
	assert.Equal(t, Float(0.5), p.Opacity)
	assert.Equal(t, "COLOR_DODGE", p.BlendMode)
}

func TestAutoLayout(t *testing.T) {
	p := convert(t, "flex flex-col items-center justify-between gap-4 p-4 px-2 overflow-hidden", FrameNode)
	assert.Equal(t, "VERTICAL", p.LayoutMode)
	assert.Equal(t, "CENTER", p.CounterAxisAlignItems)
	assert.Equal(t, "SPACE_BETWEEN", p.PrimaryAxisAlignItems)
	assert.Equal(t, Float(16), p.ItemSpacing)
	assert.Nil(t, p.CounterAxisSpacing)
	assert.Equal(t, Float(16), p.PaddingTop)
	assert.Equal(t, Float(8), p.PaddingLeft)
	assert.Equal(t, ptr(true), p.ClipsContent)

	wrapped := convert(t, "flex flex-wrap gap-x-2 gap-y-6", FrameNode)
	assert.Equal(t, "HORIZONTAL", wrapped.LayoutMode)
	assert.Equal(t, "WRAP", wrapped.LayoutWrap)
	assert.Equal(t, Float(8), wrapped.ItemSpacing)
	assert.Equal(t, Float(24), wrapped.CounterAxisSpacing)

	abs := convert(t, "absolute top-4 left-2 hidden", FrameNode)
	assert.Equal(t, "ABSOLUTE", abs.LayoutPositioning)
	assert.Equal(t, Float(8), abs.X)
	assert.Equal(t, Float(16), abs.Y)
	assert.Equal(t, ptr(false), abs.Visible)
}

func TestTextMetrics(t *testing.T) {
	p := convert(t, "text-lg font-semibold leading-7 tracking-tight text-center uppercase underline truncate", TextNode)
	require.NotNil(t, p.Text)
	txt := p.Text
	assert.Equal(t, Float(18), txt.FontSize)
	assert.Equal(t, &FontName{Family: "Inter", Style: "Semi Bold"}, txt.FontName)
	assert.Equal(t, Float(600), txt.FontWeight)
	assert.Equal(t, &Metric{Unit: UnitPixels, Value: 28}, txt.LineHeight)
	assert.Equal(t, &Metric{Unit: UnitPercent, Value: -2.5}, txt.LetterSpacing)
	assert.Equal(t, "CENTER", txt.TextAlignHorizontal)
	assert.Equal(t, "UPPER", txt.TextCase)
	assert.Equal(t, "UNDERLINE", txt.TextDecoration)
	assert.Equal(t, "ENDING", txt.TextTruncation)

	relative := convert(t, "leading-normal italic font-serif", TextNode)
	assert.Equal(t, &Metric{Unit: UnitPercent, Value: 150}, relative.Text.LineHeight)
	assert.Equal(t, &FontName{Family: "Georgia", Style: "Italic"}, relative.Text.FontName)

	clamped := convert(t, "line-clamp-3", TextNode)
	assert.Equal(t, ptr(3), clamped.Text.MaxLines)
}

func TestFontStyle(t *testing.T) {
	tests := []struct {
		weight float64
		italic bool
		want   string
	}{
		{400, false, "Regular"},
		{400, true, "Italic"},
		{700, true, "Bold Italic"},
		{650, false, "Bold"},
		{50, false, "Thin"},
		{950, false, "Black"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FontStyle(tt.weight, tt.italic))
	}
}

func TestFirstFamily(t *testing.T) {
	assert.Equal(t, "", FirstFamily("ui-sans-serif, system-ui, sans-serif"))
	assert.Equal(t, "Inter var", FirstFamily(`"Inter var", sans-serif`))
	assert.Equal(t, "Roboto", FirstFamily("Roboto"))
	assert.Equal(t, "", FirstFamily(`ui-sans-serif, system-ui, sans-serif, "Apple Color Emoji"`))
}

func TestConvertNilDocument(t *testing.T) {
	p := New(theme.NewResolver(theme.Default(), theme.Options{}), Options{}, nil).Convert(nil, FrameNode)
	assert.Equal(t, &Properties{}, p)
}
