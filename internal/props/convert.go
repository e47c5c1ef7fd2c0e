package props

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/syntax"
	"github.com/easylogic/cssma/internal/theme"
)

// NodeKind selects which document keys feed a node's paints.
type NodeKind string

// Node kinds.
const (
	FrameNode  NodeKind = "frame"
	TextNode   NodeKind = "text"
	VectorNode NodeKind = "vector"
)

// Options configures a Converter.
type Options struct {
	DefaultFontFamily  string // family used when only weight or style is set, "Inter" when empty
	DefaultBorderColor string // stroke color of borders without a color, the preset's gray-200 when empty
	DefaultRingColor   string // "rgb(59 130 246 / 0.5)" when empty
}

// Converter maps style documents to node properties. It is safe for
// concurrent use.
type Converter struct {
	r    *theme.Resolver
	opts Options
	log  *zap.Logger
}

// New returns a converter resolving lengths and colors with r.
func New(r *theme.Resolver, opts Options, log *zap.Logger) *Converter {
	if opts.DefaultFontFamily == "" {
		opts.DefaultFontFamily = "Inter"
	}
	if opts.DefaultBorderColor == "" {
		opts.DefaultBorderColor = "#e5e7eb"
		if css, ok := r.Color("gray-200"); ok {
			opts.DefaultBorderColor = css
		}
	}
	if opts.DefaultRingColor == "" {
		opts.DefaultRingColor = "rgb(59 130 246 / 0.5)"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{r: r, opts: opts, log: log.Named("props")}
}

// Convert maps doc onto the properties of a node of the given kind. Values
// the schema cannot express are dropped.
func (c *Converter) Convert(doc *style.Document, kind NodeKind) *Properties {
	p := &Properties{}
	if doc == nil {
		return p
	}
	c.paints(doc, kind, p)
	c.strokes(doc, kind, p)
	c.corners(doc, p)
	c.effects(doc, p)
	c.layout(doc, p)
	c.sizing(doc, p)
	if kind == TextNode {
		p.Text = c.text(doc, p)
	}
	return p
}

// Paints.

var gradientAngles = map[string]float64{
	"to top": 0, "to top right": 45, "to right": 90, "to bottom right": 135,
	"to bottom": 180, "to bottom left": 225, "to left": 270, "to top left": 315,
}

func (c *Converter) paints(doc *style.Document, kind NodeKind, p *Properties) {
	switch kind {
	case TextNode:
		if paint, ok := solid(doc.Text("color")); ok {
			p.Fills = append(p.Fills, paint)
		}
		return
	case VectorNode:
		if paint, ok := solid(doc.Text("fill")); ok {
			p.Fills = append(p.Fills, paint)
		}
		return
	}
	if paint, ok := solid(doc.Text("backgroundColor")); ok {
		p.Fills = append(p.Fills, paint)
	}
	if img := doc.Text("backgroundImage"); img != "" && img != "none" {
		paint, ok := c.backgroundImage(doc, img)
		if !ok {
			c.log.Debug("background image dropped", zap.String("value", img))
			return
		}
		p.Fills = append(p.Fills, paint)
	}
}

func solid(css string) (Paint, bool) {
	col, ok := theme.ParseColor(css)
	if !ok {
		return Paint{}, false
	}
	paint := Paint{Type: PaintSolid, Color: &Color{R: col.R, G: col.G, B: col.B, A: 1}}
	if col.A < 1 {
		paint.Opacity = Float(round(col.A))
	}
	return paint, true
}

func toColor(c theme.RGBA) *Color {
	return &Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c *Converter) backgroundImage(doc *style.Document, img string) (Paint, bool) {
	if inner, ok := strings.CutPrefix(img, "url("); ok {
		url := strings.Trim(strings.TrimSuffix(inner, ")"), `"'`)
		paint := Paint{Type: PaintImage, ImageURL: url, ScaleMode: "FILL"}
		if doc.Text("backgroundSize") == "contain" {
			paint.ScaleMode = "FIT"
		}
		return paint, true
	}
	inner, ok := strings.CutPrefix(img, "linear-gradient(")
	if !ok {
		return Paint{}, false
	}
	dir, rest, _ := strings.Cut(strings.TrimSuffix(inner, ")"), ",")
	angle, ok := gradientAngles[strings.TrimSpace(dir)]
	if !ok || !strings.Contains(rest, "--tw-gradient-stops") {
		return Paint{}, false
	}
	stops := c.gradientStops(doc)
	if len(stops) == 0 {
		return Paint{}, false
	}
	return Paint{Type: PaintLinearGradient, Angle: Float(angle), GradientStops: stops}, true
}

// gradientStops builds from/via/to stops. A missing end stop fades the
// nearest color to transparent.
func (c *Converter) gradientStops(doc *style.Document) []ColorStop {
	from, hasFrom := theme.ParseColor(doc.Text("gradientFrom"))
	via, hasVia := theme.ParseColor(doc.Text("gradientVia"))
	to, hasTo := theme.ParseColor(doc.Text("gradientTo"))
	if !hasFrom && !hasVia && !hasTo {
		return nil
	}
	fade := func(col theme.RGBA) theme.RGBA {
		col.A = 0
		return col
	}
	if !hasFrom {
		if hasVia {
			from = fade(via)
		} else {
			from = fade(to)
		}
	}
	if !hasTo {
		if hasVia {
			to = fade(via)
		} else {
			to = fade(from)
		}
	}
	stops := []ColorStop{{Position: stopPosition(doc, "gradientFromPosition", 0), Color: *toColor(from)}}
	if hasVia {
		stops = append(stops, ColorStop{Position: stopPosition(doc, "gradientViaPosition", 0.5), Color: *toColor(via)})
	}
	return append(stops, ColorStop{Position: stopPosition(doc, "gradientToPosition", 1), Color: *toColor(to)})
}

func stopPosition(doc *style.Document, key string, def float64) float64 {
	if s, ok := strings.CutSuffix(doc.Text(key), "%"); ok {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return round(f / 100)
		}
	}
	return def
}

// Strokes and corners.

var (
	widthKeys  = [4]string{"borderTopWidth", "borderRightWidth", "borderBottomWidth", "borderLeftWidth"}
	radiusKeys = [4]string{"borderTopLeftRadius", "borderTopRightRadius", "borderBottomRightRadius", "borderBottomLeftRadius"}
)

func (c *Converter) strokes(doc *style.Document, kind NodeKind, p *Properties) {
	if kind == VectorNode {
		if paint, ok := solid(doc.Text("stroke")); ok {
			p.Strokes = append(p.Strokes, paint)
		}
		if w, ok := c.number(doc, "strokeWidth"); ok {
			p.StrokeWeight = Float(w)
		}
		return
	}
	switch doc.Text("borderStyle") {
	case "none", "hidden":
		return
	case "dashed":
		p.DashPattern = []float64{4, 4}
	case "dotted":
		p.DashPattern = []float64{1, 1}
	}
	all, sides := c.quad(doc, widthKeys)
	if all == nil && sides == [4]*float64{} {
		p.DashPattern = nil
		return
	}
	p.StrokeWeight = all
	p.StrokeTopWeight, p.StrokeRightWeight, p.StrokeBottomWeight, p.StrokeLeftWeight = sides[0], sides[1], sides[2], sides[3]
	p.StrokeAlign = "INSIDE"

	color := doc.Text("borderColor")
	if color == "" {
		color = doc.Text("borderTopColor")
	}
	if color == "" {
		color = c.opts.DefaultBorderColor
	}
	if paint, ok := solid(color); ok {
		p.Strokes = append(p.Strokes, paint)
	}
}

func (c *Converter) corners(doc *style.Document, p *Properties) {
	all, sides := c.quad(doc, radiusKeys)
	p.CornerRadius = all
	p.TopLeftRadius, p.TopRightRadius, p.BottomRightRadius, p.BottomLeftRadius = sides[0], sides[1], sides[2], sides[3]
}

// quad reads four per-side lengths. When all four are set and equal the
// shared value is returned instead of the sides.
func (c *Converter) quad(doc *style.Document, keys [4]string) (*float64, [4]*float64) {
	var sides [4]*float64
	for i, k := range keys {
		if v, ok := c.px(doc, k); ok {
			sides[i] = Float(v)
		}
	}
	for _, s := range sides {
		if s == nil || *s != *sides[0] {
			return nil, sides
		}
	}
	return sides[0], [4]*float64{}
}

// Effects.

var colorPattern = regexp.MustCompile(`(?:rgba?|hsla?|oklch)\([^)]*\)|#[0-9a-fA-F]{3,8}\b`)

func (c *Converter) effects(doc *style.Document, p *Properties) {
	p.Effects = append(p.Effects, c.boxShadow(doc)...)
	p.Effects = append(p.Effects, c.ring(doc)...)

	for _, fn := range style.SplitFunctions(doc.Text("filter")) {
		name, arg := splitFunction(fn)
		switch name {
		case "blur":
			if px, ok := c.r.Px(arg); ok && px > 0 {
				p.Effects = append(p.Effects, Effect{Type: LayerBlur, Radius: px, Visible: true})
			}
		case "drop-shadow":
			if e, ok := c.shadowLayer(arg); ok {
				p.Effects = append(p.Effects, e)
			}
		default:
			c.log.Debug("filter function dropped", zap.String("function", fn))
		}
	}
	for _, fn := range style.SplitFunctions(doc.Text("backdropFilter")) {
		if name, arg := splitFunction(fn); name == "blur" {
			if px, ok := c.r.Px(arg); ok && px > 0 {
				p.Effects = append(p.Effects, Effect{Type: BackgroundBlur, Radius: px, Visible: true})
			}
		}
	}

	if v, ok := c.number(doc, "opacity"); ok {
		p.Opacity = Float(v)
	}
	if m := doc.Text("mixBlendMode"); m != "" {
		p.BlendMode = BlendMode(m)
	}
}

// BlendMode converts a CSS blend mode keyword to its schema name.
func BlendMode(css string) string {
	return strings.ToUpper(strings.ReplaceAll(css, "-", "_"))
}

func splitFunction(fn string) (string, string) {
	name, arg, ok := strings.Cut(fn, "(")
	if !ok {
		return fn, ""
	}
	return name, strings.TrimSuffix(arg, ")")
}

func (c *Converter) boxShadow(doc *style.Document) []Effect {
	css := doc.Text("boxShadow")
	if css == "" || css == "none" {
		return nil
	}
	var effects []Effect
	if name, sh, ok := c.r.ShadowByCSS(css); ok {
		if name == "none" {
			return nil
		}
		e := Effect{
			Type:    DropShadow,
			Offset:  &Vector{X: sh.Effect.OffsetX, Y: sh.Effect.OffsetY},
			Radius:  sh.Effect.Radius,
			Spread:  Float(sh.Effect.Spread),
			Visible: true,
		}
		if sh.Effect.Inset {
			e.Type = InnerShadow
		}
		col := theme.RGBA{A: 0.1}
		if m := colorPattern.FindString(css); m != "" {
			if parsed, ok := theme.ParseColor(m); ok {
				col = parsed
			}
		}
		e.Color = toColor(col)
		effects = append(effects, e)
	} else {
		for _, layer := range syntax.SplitTopLevel(css, ",") {
			e, ok := c.shadowLayer(layer)
			if !ok {
				c.log.Debug("shadow layer dropped", zap.String("value", layer))
				continue
			}
			effects = append(effects, e)
		}
	}
	if sc, ok := theme.ParseColor(doc.Text("shadowColor")); ok {
		for i := range effects {
			effects[i].Color = toColor(sc)
		}
	}
	return effects
}

// shadowLayer parses "[inset] x y [blur [spread]] [color]".
func (c *Converter) shadowLayer(layer string) (Effect, bool) {
	e := Effect{Type: DropShadow, Visible: true}
	col, hasColor := theme.RGBA{A: 1}, false
	if m := colorPattern.FindString(layer); m != "" {
		if parsed, ok := theme.ParseColor(m); ok {
			col, hasColor = parsed, true
			layer = strings.Replace(layer, m, " ", 1)
		}
	}
	var lengths []float64
	for _, f := range strings.Fields(layer) {
		if f == "inset" {
			e.Type = InnerShadow
			continue
		}
		if px, ok := c.r.Px(f); ok {
			lengths = append(lengths, px)
			continue
		}
		if parsed, ok := theme.ParseColor(f); ok && !hasColor {
			col, hasColor = parsed, true
			continue
		}
		return Effect{}, false
	}
	if len(lengths) < 2 {
		return Effect{}, false
	}
	e.Offset = &Vector{X: lengths[0], Y: lengths[1]}
	if len(lengths) > 2 {
		e.Radius = lengths[2]
	}
	if len(lengths) > 3 {
		e.Spread = Float(lengths[3])
	}
	e.Color = toColor(col)
	return e, true
}

// ring renders a ring as a zero-blur shadow spread by the ring width.
func (c *Converter) ring(doc *style.Document) []Effect {
	w, ok := c.px(doc, "ringWidth")
	if !ok || w == 0 {
		return nil
	}
	css := doc.Text("ringColor")
	if css == "" {
		css = c.opts.DefaultRingColor
	}
	col, ok := theme.ParseColor(css)
	if !ok {
		return nil
	}
	e := Effect{Type: DropShadow, Color: toColor(col), Offset: &Vector{}, Spread: Float(w), Visible: true}
	if doc.Has("ringInset") {
		e.Type = InnerShadow
	}
	return []Effect{e}
}

// Layout.

var (
	primaryAlign = map[string]string{
		"flex-start": "MIN", "start": "MIN", "normal": "MIN", "center": "CENTER",
		"flex-end": "MAX", "end": "MAX", "space-between": "SPACE_BETWEEN",
	}
	counterAlign = map[string]string{
		"flex-start": "MIN", "start": "MIN", "center": "CENTER",
		"flex-end": "MAX", "end": "MAX", "baseline": "BASELINE",
	}
)

func (c *Converter) layout(doc *style.Document, p *Properties) {
	horizontal := true
	switch doc.Text("display") {
	case "flex", "inline-flex":
		p.LayoutMode = "HORIZONTAL"
		if strings.HasPrefix(doc.Text("flexDirection"), "column") {
			p.LayoutMode, horizontal = "VERTICAL", false
		}
	case "grid", "inline-grid":
		p.LayoutMode = "GRID"
	case "block", "inline-block", "flow-root":
		p.LayoutMode = "NONE"
	case "none":
		p.Visible = ptr(false)
	}
	switch doc.Text("flexWrap") {
	case "wrap", "wrap-reverse":
		p.LayoutWrap = "WRAP"
	case "nowrap":
		p.LayoutWrap = "NO_WRAP"
	}
	p.PrimaryAxisAlignItems = primaryAlign[doc.Text("justifyContent")]
	p.CounterAxisAlignItems = counterAlign[doc.Text("alignItems")]

	if gap, ok := c.px(doc, "gap"); ok {
		p.ItemSpacing = Float(gap)
		if p.LayoutWrap == "WRAP" || p.LayoutMode == "GRID" {
			p.CounterAxisSpacing = Float(gap)
		}
	}
	along, across := "columnGap", "rowGap"
	if !horizontal {
		along, across = across, along
	}
	if v, ok := c.px(doc, along); ok {
		p.ItemSpacing = Float(v)
	}
	if v, ok := c.px(doc, across); ok {
		p.CounterAxisSpacing = Float(v)
	}

	p.PaddingTop = c.pxPtr(doc, "paddingTop")
	p.PaddingRight = c.pxPtr(doc, "paddingRight")
	p.PaddingBottom = c.pxPtr(doc, "paddingBottom")
	p.PaddingLeft = c.pxPtr(doc, "paddingLeft")

	switch doc.Text("position") {
	case "absolute", "fixed":
		p.LayoutPositioning = "ABSOLUTE"
	}
	p.X = c.pxPtr(doc, "left")
	p.Y = c.pxPtr(doc, "top")

	switch doc.Text("overflow") {
	case "hidden", "clip":
		p.ClipsContent = ptr(true)
	case "visible":
		p.ClipsContent = ptr(false)
	}
	if doc.Text("visibility") == "hidden" {
		p.Visible = ptr(false)
	}
	if deg, ok := c.number(doc, "rotate"); ok {
		p.Rotation = Float(deg)
	}
	if g, ok := c.number(doc, "flexGrow"); ok {
		p.LayoutGrow = Float(g)
	} else if strings.HasPrefix(doc.Text("flex"), "1 ") {
		p.LayoutGrow = Float(1)
	}
	if doc.Text("alignSelf") == "stretch" {
		p.LayoutAlign = "STRETCH"
	}
}

// Sizing.

var sizingModes = map[string]Sizing{"fixed": SizingFixed, "fill": SizingFill, "hug": SizingHug}

func (c *Converter) sizing(doc *style.Document, p *Properties) {
	p.LayoutSizingHorizontal, p.Width = c.axis(doc, "width")
	p.LayoutSizingVertical, p.Height = c.axis(doc, "height")
	p.MinWidth = c.pxPtr(doc, "minWidth")
	p.MaxWidth = c.pxPtr(doc, "maxWidth")
	p.MinHeight = c.pxPtr(doc, "minHeight")
	p.MaxHeight = c.pxPtr(doc, "maxHeight")
}

// axis derives the sizing mode and fixed size of one axis. The mode the
// sizing utilities recorded wins; otherwise a pixel size is fixed and a
// relative one fills.
func (c *Converter) axis(doc *style.Document, key string) (Sizing, *float64) {
	v, ok := doc.Get(key)
	if !ok {
		return "", nil
	}
	px, isPx := c.px(doc, key)
	mode := sizingModes[doc.Text(key+"Mode")]
	if mode == "" {
		s := v.String()
		switch {
		case isPx:
			mode = SizingFixed
		case strings.HasSuffix(s, "%") || strings.HasSuffix(s, "vw") || strings.HasSuffix(s, "vh"):
			mode = SizingFill
		default:
			mode = SizingHug
		}
	}
	if mode == SizingFixed && isPx {
		return mode, Float(px)
	}
	return mode, nil
}

// Text.

var (
	textAligns  = map[string]string{"left": "LEFT", "start": "LEFT", "center": "CENTER", "right": "RIGHT", "end": "RIGHT", "justify": "JUSTIFIED"}
	textCases   = map[string]string{"uppercase": "UPPER", "lowercase": "LOWER", "capitalize": "TITLE", "none": "ORIGINAL"}
	decorations = map[string]string{"underline": "UNDERLINE", "line-through": "STRIKETHROUGH", "none": "NONE"}
	weightNames = map[int]string{
		100: "Thin", 200: "Extra Light", 300: "Light", 400: "Regular", 500: "Medium",
		600: "Semi Bold", 700: "Bold", 800: "Extra Bold", 900: "Black",
	}
	genericFamilies = map[string]bool{
		"ui-sans-serif": true, "ui-serif": true, "ui-monospace": true, "system-ui": true,
		"sans-serif": true, "serif": true, "monospace": true, "cursive": true, "fantasy": true,
		"-apple-system": true, "BlinkMacSystemFont": true,
		"Apple Color Emoji": true, "Segoe UI Emoji": true, "Segoe UI Symbol": true, "Noto Color Emoji": true,
	}
)

func (c *Converter) text(doc *style.Document, p *Properties) *Text {
	t := &Text{}
	if size, ok := c.px(doc, "fontSize"); ok {
		t.FontSize = Float(size)
	}
	weight, hasWeight := c.number(doc, "fontWeight")
	if hasWeight {
		t.FontWeight = Float(weight)
	}
	family := FirstFamily(doc.Text("fontFamily"))
	italic := doc.Text("fontStyle") == "italic"
	if family != "" || hasWeight || italic {
		if family == "" {
			family = c.opts.DefaultFontFamily
		}
		if !hasWeight {
			weight = 400
		}
		t.FontName = &FontName{Family: family, Style: FontStyle(weight, italic)}
	}
	t.LineHeight = c.lineHeight(doc)
	t.LetterSpacing = c.letterSpacing(doc)
	t.TextAlignHorizontal = textAligns[doc.Text("textAlign")]
	t.TextCase = textCases[doc.Text("textTransform")]
	t.TextDecoration = decorations[doc.Text("textDecorationLine")]
	if doc.Text("textOverflow") == "ellipsis" {
		t.TextTruncation = "ENDING"
	}
	if n, ok := c.number(doc, "lineClamp"); ok && n > 0 {
		t.MaxLines = ptr(int(n))
		t.TextTruncation = "ENDING"
	}
	t.TextAutoResize = AutoResize(p.LayoutSizingHorizontal, p.LayoutSizingVertical, doc.Text("whiteSpace"))
	return t
}

// AutoResize infers how a text node grows from its sizing modes: bounded
// on both axes is fixed, bounded width grows in height only, and anything
// else grows in both directions.
func AutoResize(h, v Sizing, whiteSpace string) string {
	bounded := func(s Sizing) bool { return s == SizingFixed || s == SizingFill }
	switch {
	case bounded(h) && bounded(v):
		return ResizeNone
	case bounded(h) && whiteSpace != "nowrap" && whiteSpace != "pre":
		return ResizeHeight
	case bounded(h):
		return ResizeNone
	}
	return ResizeWidthAndHeight
}

// FontStyle names a weight, e.g. 600 is "Semi Bold" and 400 italic is
// "Italic".
func FontStyle(weight float64, italic bool) string {
	w := int(math.Round(weight/100)) * 100
	w = max(100, min(900, w))
	name := weightNames[w]
	if !italic {
		return name
	}
	if w == 400 {
		return "Italic"
	}
	return name + " Italic"
}

// FirstFamily returns the first non-generic family of a font-family list.
func FirstFamily(css string) string {
	for _, f := range syntax.SplitTopLevel(css, ",") {
		f = strings.Trim(strings.TrimSpace(f), `"'`)
		if f != "" && !genericFamilies[f] {
			return f
		}
	}
	return ""
}

func (c *Converter) lineHeight(doc *style.Document) *Metric {
	v, ok := doc.Get("lineHeight")
	if !ok {
		return nil
	}
	if f, ok := v.Number(); ok {
		return &Metric{Unit: UnitPixels, Value: f}
	}
	s := v.String()
	if s == "normal" {
		return &Metric{Unit: UnitAuto}
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		if f, err := strconv.ParseFloat(pct, 64); err == nil {
			return &Metric{Unit: UnitPercent, Value: f}
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return &Metric{Unit: UnitPercent, Value: round(f * 100)}
	}
	if px, ok := c.r.Px(s); ok {
		return &Metric{Unit: UnitPixels, Value: px}
	}
	return nil
}

func (c *Converter) letterSpacing(doc *style.Document) *Metric {
	v, ok := doc.Get("letterSpacing")
	if !ok {
		return nil
	}
	if f, ok := v.Number(); ok {
		return &Metric{Unit: UnitPixels, Value: f}
	}
	if em, ok := strings.CutSuffix(v.String(), "em"); ok {
		if f, err := strconv.ParseFloat(em, 64); err == nil {
			return &Metric{Unit: UnitPercent, Value: round(f * 100)}
		}
	}
	return nil
}

// Value helpers.

// px reads key as a length in px.
func (c *Converter) px(doc *style.Document, key string) (float64, bool) {
	v, ok := doc.Get(key)
	if !ok {
		return 0, false
	}
	if f, ok := v.Number(); ok {
		return f, true
	}
	return c.r.Px(v.String())
}

func (c *Converter) pxPtr(doc *style.Document, key string) *float64 {
	if f, ok := c.px(doc, key); ok {
		return Float(f)
	}
	return nil
}

// number reads key as a plain number, accepting degrees.
func (c *Converter) number(doc *style.Document, key string) (float64, bool) {
	v, ok := doc.Get(key)
	if !ok {
		return 0, false
	}
	if f, ok := v.Number(); ok {
		return f, true
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v.String(), "deg"), 64)
	return f, err == nil
}

func round(f float64) float64 {
	return math.Round(f*1e4) / 1e4
}
