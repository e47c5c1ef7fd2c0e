package reverse

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/easylogic/cssma/internal/props"
	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
	"github.com/easylogic/cssma/internal/utility"
)

var gradientDirections = map[float64]string{
	0: "t", 45: "tr", 90: "r", 135: "br", 180: "b", 225: "bl", 270: "l", 315: "tl",
}

// fills encodes the first solid paint as a color and the first gradient or
// image paint as a background image. Further paints have no class form.
func (e *Emitter) fills(p *props.Properties, kind props.NodeKind) []string {
	root := "bg"
	switch kind {
	case props.TextNode:
		root = "text"
	case props.VectorNode:
		root = "fill"
	}
	var out []string
	var solid, image bool
	for _, paint := range p.Fills {
		switch {
		case paint.Type == props.PaintSolid && paint.Color != nil && !solid:
			solid = true
			out = append(out, e.color(root, *paint.Color, paint.Opacity))
		case paint.Type == props.PaintLinearGradient && root == "bg" && !image && len(paint.GradientStops) > 0:
			image = true
			out = append(out, e.gradient(paint)...)
		case paint.Type == props.PaintImage && root == "bg" && !image && paint.ImageURL != "":
			image = true
			out = append(out, "bg-[url("+paint.ImageURL+")]")
			if paint.ScaleMode == "FIT" {
				out = append(out, "bg-contain")
			} else {
				out = append(out, "bg-cover")
			}
		default:
			e.log.Debug("paint dropped", zap.String("type", string(paint.Type)))
		}
	}
	return out
}

// gradient encodes a linear gradient as a direction plus from-, via- and
// to- stops, one via- per interior stop. Positions that differ from the
// defaults get their own stop-position class.
func (e *Emitter) gradient(paint props.Paint) []string {
	var out []string
	angle := 180.0
	if paint.Angle != nil {
		angle = math.Mod(math.Mod(*paint.Angle, 360)+360, 360)
	}
	if dir, ok := gradientDirections[angle]; ok {
		out = append(out, "bg-gradient-to-"+dir)
	} else {
		out = append(out, "bg-[linear-gradient("+style.FormatNumber(round(angle))+"deg,var(--tw-gradient-stops))]")
	}
	stops := paint.GradientStops
	last := len(stops) - 1
	for i, s := range stops {
		stop, def := "via", 0.5
		switch i {
		case 0:
			stop, def = "from", 0
		case last:
			stop, def = "to", 1
		}
		if last == 0 {
			stop, def = "from", 0
		}
		out = append(out, e.color(stop, s.Color, nil))
		if pos := round(s.Position * 100); pos != def*100 && pos >= 0 && pos <= 100 && pos == math.Trunc(pos) {
			out = append(out, stop+"-"+style.FormatNumber(pos)+"%")
		}
	}
	return out
}

// Strokes and corners.

func (e *Emitter) strokes(p *props.Properties, kind props.NodeKind) []string {
	var out []string
	if kind == props.VectorNode {
		if p.StrokeWeight != nil {
			w := *p.StrokeWeight
			if w >= 0 && w == math.Trunc(w) {
				out = append(out, "stroke-"+style.FormatNumber(w))
			} else {
				out = append(out, "stroke-["+pxText(w)+"]")
			}
		}
		if len(p.Strokes) > 0 && p.Strokes[0].Color != nil {
			out = append(out, e.color("stroke", *p.Strokes[0].Color, p.Strokes[0].Opacity))
		}
		return out
	}

	if p.StrokeWeight != nil {
		out = append(out, e.scaled("border", theme.ScaleBorderWidth, *p.StrokeWeight))
	} else {
		out = append(out, e.sides(p.StrokeTopWeight, p.StrokeRightWeight, p.StrokeBottomWeight, p.StrokeLeftWeight)...)
	}
	if len(out) == 0 {
		return nil
	}
	if len(p.Strokes) > 0 && p.Strokes[0].Type == props.PaintSolid && p.Strokes[0].Color != nil {
		s := p.Strokes[0]
		c := *s.Color
		if s.Opacity != nil {
			c.A *= *s.Opacity
		}
		if !e.hasBorder || !sameColor(c, e.borderColor) {
			out = append(out, e.color("border", *s.Color, s.Opacity))
		}
	}
	switch {
	case len(p.DashPattern) == 0:
	case p.DashPattern[0] <= 1:
		out = append(out, "border-dotted")
	default:
		out = append(out, "border-dashed")
	}
	return out
}

// sides encodes per-side border widths, pairing equal opposite sides.
func (e *Emitter) sides(t, r, b, l *float64) []string {
	eq := func(a, b *float64) bool { return a != nil && b != nil && *a == *b }
	var out []string
	if eq(l, r) {
		out = append(out, e.scaled("border-x", theme.ScaleBorderWidth, *l))
		l, r = nil, nil
	}
	if eq(t, b) {
		out = append(out, e.scaled("border-y", theme.ScaleBorderWidth, *t))
		t, b = nil, nil
	}
	for _, s := range []struct {
		root string
		v    *float64
	}{{"border-t", t}, {"border-r", r}, {"border-b", b}, {"border-l", l}} {
		if s.v != nil {
			out = append(out, e.scaled(s.root, theme.ScaleBorderWidth, *s.v))
		}
	}
	return out
}

func (e *Emitter) corners(p *props.Properties) []string {
	if p.CornerRadius != nil {
		return []string{e.scaled("rounded", theme.ScaleRadius, *p.CornerRadius)}
	}
	var out []string
	for _, c := range []struct {
		root string
		v    *float64
	}{
		{"rounded-tl", p.TopLeftRadius}, {"rounded-tr", p.TopRightRadius},
		{"rounded-br", p.BottomRightRadius}, {"rounded-bl", p.BottomLeftRadius},
	} {
		if c.v != nil {
			out = append(out, e.scaled(c.root, theme.ScaleRadius, *c.v))
		}
	}
	return out
}

// Effects.

func (e *Emitter) effects(p *props.Properties) []string {
	var out []string
	var shadows []props.Effect
	for _, fx := range p.Effects {
		if !fx.Visible {
			continue
		}
		switch fx.Type {
		case props.DropShadow, props.InnerShadow:
			if isRing(fx) {
				out = append(out, e.ring(fx)...)
			} else {
				shadows = append(shadows, fx)
			}
		case props.LayerBlur:
			out = append(out, e.scaled("blur", theme.ScaleBlur, fx.Radius))
		case props.BackgroundBlur:
			out = append(out, e.scaled("backdrop-blur", theme.ScaleBlur, fx.Radius))
		}
	}
	out = append(e.shadow(shadows), out...)

	if p.Opacity != nil {
		out = append(out, opacity(e.r, *p.Opacity))
	}
	if p.BlendMode != "" {
		if c, ok := blendClass(p.BlendMode); ok {
			out = append(out, c)
		} else {
			e.log.Debug("blend mode dropped", zap.String("mode", p.BlendMode))
		}
	}
	return out
}

// isRing reports whether a shadow is a ring: no blur and no offset, spread
// by the ring width.
func isRing(fx props.Effect) bool {
	return fx.Radius == 0 && fx.Spread != nil && *fx.Spread > 0 &&
		(fx.Offset == nil || (fx.Offset.X == 0 && fx.Offset.Y == 0))
}

func (e *Emitter) ring(fx props.Effect) []string {
	w := *fx.Spread
	var out []string
	switch {
	case w == 3:
		out = append(out, "ring")
	case w == math.Trunc(w):
		out = append(out, "ring-"+style.FormatNumber(w))
	default:
		out = append(out, "ring-["+pxText(w)+"]")
	}
	if fx.Type == props.InnerShadow {
		out = append(out, "ring-inset")
	}
	if fx.Color != nil && !sameColor(*fx.Color, e.ringColor) {
		out = append(out, e.color("ring", *fx.Color, nil))
	}
	return out
}

// shadow encodes box shadows. A single shadow whose radius and spread match
// a preset becomes the named utility, with a shadow color class when its
// color is not the preset's black. Anything else is written as one bracket
// value.
func (e *Emitter) shadow(shadows []props.Effect) []string {
	if len(shadows) == 0 {
		return nil
	}
	if len(shadows) == 1 {
		fx := shadows[0]
		spread := 0.0
		if fx.Spread != nil {
			spread = *fx.Spread
		}
		if name, ok := e.r.ShadowByEffect(fx.Radius, spread, fx.Type == props.InnerShadow); ok {
			out := []string{"shadow"}
			if name != "DEFAULT" {
				out[0] = "shadow-" + name
			}
			if c := fx.Color; c != nil && (c.R != 0 || c.G != 0 || c.B != 0) {
				out = append(out, e.color("shadow", *c, nil))
			}
			return out
		}
	}
	layers := make([]string, len(shadows))
	for i, fx := range shadows {
		layers[i] = shadowLayer(fx)
	}
	return []string{"shadow-[" + strings.Join(layers, ",") + "]"}
}

// shadowLayer writes one shadow in bracket form, e.g.
// "0_4px_8px_rgba(0,0,0,0.2)".
func shadowLayer(fx props.Effect) string {
	var parts []string
	if fx.Type == props.InnerShadow {
		parts = append(parts, "inset")
	}
	var x, y float64
	if fx.Offset != nil {
		x, y = fx.Offset.X, fx.Offset.Y
	}
	parts = append(parts, length(x), length(y), length(fx.Radius))
	if fx.Spread != nil {
		parts = append(parts, length(*fx.Spread))
	}
	c := props.Color{A: 1}
	if fx.Color != nil {
		c = *fx.Color
	}
	parts = append(parts, fmt.Sprintf("rgba(%d,%d,%d,%s)",
		channel(c.R), channel(c.G), channel(c.B), style.FormatNumber(round(c.A))))
	return strings.Join(parts, "_")
}

func length(px float64) string {
	if px == 0 {
		return "0"
	}
	return pxText(px)
}

func channel(f float64) int {
	return int(math.Round(math.Max(0, math.Min(1, f)) * 255))
}

func opacity(r *theme.Resolver, o float64) string {
	v := style.FormatNumber(round(o))
	if key, ok := r.KeyByValue(theme.ScaleOpacity, v); ok {
		return "opacity-" + key
	}
	return "opacity-[" + v + "]"
}

// blendClass maps a schema blend mode (COLOR_DODGE) to its utility.
func blendClass(mode string) (string, bool) {
	css := strings.ToLower(strings.ReplaceAll(mode, "_", "-"))
	for _, m := range utility.BlendModes {
		if m == css {
			return "mix-blend-" + css, true
		}
	}
	switch css {
	case "plus-darker", "plus-lighter":
		return "mix-blend-" + css, true
	}
	return "", false
}
