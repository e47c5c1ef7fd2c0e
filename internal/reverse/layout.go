package reverse

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/easylogic/cssma/internal/props"
	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
)

var (
	justifyClasses = map[string]string{
		"MIN": "justify-start", "CENTER": "justify-center", "MAX": "justify-end", "SPACE_BETWEEN": "justify-between",
	}
	itemsClasses = map[string]string{
		"MIN": "items-start", "CENTER": "items-center", "MAX": "items-end", "BASELINE": "items-baseline",
	}
)

func (e *Emitter) layout(p *props.Properties) []string {
	var out []string
	horizontal := true
	switch p.LayoutMode {
	case "HORIZONTAL":
		out = append(out, "flex")
	case "VERTICAL":
		out = append(out, "flex", "flex-col")
		horizontal = false
	case "GRID":
		out = append(out, "grid")
	}
	if p.LayoutWrap == "WRAP" {
		out = append(out, "flex-wrap")
	}
	if c, ok := justifyClasses[p.PrimaryAxisAlignItems]; ok {
		out = append(out, c)
	}
	if c, ok := itemsClasses[p.CounterAxisAlignItems]; ok {
		out = append(out, c)
	}
	out = append(out, e.gaps(p, horizontal)...)
	out = append(out, e.box("p", p.PaddingTop, p.PaddingRight, p.PaddingBottom, p.PaddingLeft)...)

	if p.LayoutPositioning == "ABSOLUTE" {
		out = append(out, "absolute")
	}
	if p.X != nil {
		out = append(out, e.spacing("left", *p.X, true))
	}
	if p.Y != nil {
		out = append(out, e.spacing("top", *p.Y, true))
	}
	if p.ClipsContent != nil && *p.ClipsContent {
		out = append(out, "overflow-hidden")
	}
	if p.LayoutGrow != nil {
		switch g := *p.LayoutGrow; {
		case g == 1:
			out = append(out, "grow")
		case g >= 0 && g == math.Trunc(g):
			out = append(out, "grow-"+style.FormatNumber(g))
		default:
			out = append(out, "grow-["+style.FormatNumber(g)+"]")
		}
	}
	if p.LayoutAlign == "STRETCH" {
		out = append(out, "self-stretch")
	}
	if p.Rotation != nil && *p.Rotation != 0 {
		out = append(out, rotate(*p.Rotation))
	}
	if p.Visible != nil && !*p.Visible {
		out = append(out, "invisible")
	}
	return out
}

func rotate(deg float64) string {
	sign := ""
	if deg < 0 {
		sign, deg = "-", -deg
	}
	if deg == math.Trunc(deg) {
		return sign + "rotate-" + style.FormatNumber(deg)
	}
	return sign + "rotate-[" + style.FormatNumber(round(deg)) + "deg]"
}

// gaps encodes item and counter-axis spacing. Item spacing runs along the
// layout direction: columns for horizontal layouts, rows for vertical ones.
func (e *Emitter) gaps(p *props.Properties, horizontal bool) []string {
	item, counter := p.ItemSpacing, p.CounterAxisSpacing
	switch {
	case item == nil && counter == nil:
		return nil
	case item != nil && (counter == nil || *counter == *item):
		return []string{e.spacing("gap", *item, false)}
	}
	along, across := "gap-x", "gap-y"
	if !horizontal {
		along, across = across, along
	}
	var out []string
	if item != nil {
		out = append(out, e.spacing(along, *item, false))
	}
	return append(out, e.spacing(across, *counter, false))
}

// box encodes four sides with the shortest of root, root-x/y and the
// single-side roots.
func (e *Emitter) box(root string, t, r, b, l *float64) []string {
	eq := func(a, b *float64) bool { return a != nil && b != nil && *a == *b }
	if eq(t, r) && eq(t, b) && eq(t, l) {
		return []string{e.spacing(root, *t, false)}
	}
	var out []string
	if eq(l, r) {
		out = append(out, e.spacing(root+"x", *l, false))
		l, r = nil, nil
	}
	if eq(t, b) {
		out = append(out, e.spacing(root+"y", *t, false))
		t, b = nil, nil
	}
	for _, s := range []struct {
		suffix string
		v      *float64
	}{{"t", t}, {"r", r}, {"b", b}, {"l", l}} {
		if s.v != nil {
			out = append(out, e.spacing(root+s.suffix, *s.v, false))
		}
	}
	return out
}

func (e *Emitter) sizing(p *props.Properties) []string {
	var out []string
	w := axisClass("w", p.LayoutSizingHorizontal, p.Width)
	h := axisClass("h", p.LayoutSizingVertical, p.Height)
	if p.Width != nil && p.Height != nil && *p.Width == *p.Height && w.fixed && h.fixed {
		out = append(out, e.spacing("size", *p.Width, false))
	} else {
		out = append(out, w.class(e)...)
		out = append(out, h.class(e)...)
	}
	for _, m := range []struct {
		root string
		v    *float64
	}{{"min-w", p.MinWidth}, {"max-w", p.MaxWidth}, {"min-h", p.MinHeight}, {"max-h", p.MaxHeight}} {
		if m.v != nil {
			out = append(out, e.spacing(m.root, *m.v, false))
		}
	}
	return out
}

type axisSize struct {
	root    string
	keyword string
	fixed   bool
	px      float64
}

// axisClass resolves one axis. A fixed size without a pixel value (a fixed
// percentage, say) cannot be recovered and yields nothing.
func axisClass(root string, mode props.Sizing, size *float64) axisSize {
	a := axisSize{root: root}
	switch {
	case mode == props.SizingFill:
		a.keyword = "full"
	case mode == props.SizingHug:
		a.keyword = "fit"
	case size != nil:
		a.fixed, a.px = true, *size
	}
	return a
}

func (a axisSize) class(e *Emitter) []string {
	switch {
	case a.keyword != "":
		return []string{a.root + "-" + a.keyword}
	case a.fixed:
		return []string{e.spacing(a.root, a.px, false)}
	}
	return nil
}

// Text.

var (
	alignClasses = map[string]string{
		"LEFT": "text-left", "CENTER": "text-center", "RIGHT": "text-right", "JUSTIFIED": "text-justify",
	}
	caseClasses       = map[string]string{"UPPER": "uppercase", "LOWER": "lowercase", "TITLE": "capitalize"}
	decorationClasses = map[string]string{"UNDERLINE": "underline", "STRIKETHROUGH": "line-through"}
	styleWeights      = map[string]float64{
		"Thin": 100, "Extra Light": 200, "Light": 300, "Regular": 400, "Medium": 500,
		"Semi Bold": 600, "Bold": 700, "Extra Bold": 800, "Black": 900,
	}
)

func (e *Emitter) text(t *props.Text) []string {
	var out []string
	sizeKey := ""
	if t.FontSize != nil {
		var c string
		c, sizeKey = e.fontSize(*t.FontSize)
		out = append(out, c)
	}
	out = append(out, e.font(t)...)
	if t.LineHeight != nil && !e.defaultLeading(sizeKey, *t.LineHeight) {
		if c, ok := e.leading(*t.LineHeight); ok {
			out = append(out, c)
		}
	}
	if t.LetterSpacing != nil {
		if c, ok := e.tracking(*t.LetterSpacing); ok {
			out = append(out, c)
		}
	}
	if c, ok := alignClasses[t.TextAlignHorizontal]; ok {
		out = append(out, c)
	}
	if c, ok := caseClasses[t.TextCase]; ok {
		out = append(out, c)
	}
	if c, ok := decorationClasses[t.TextDecoration]; ok {
		out = append(out, c)
	}
	if t.TextTruncation == "ENDING" {
		if t.MaxLines != nil && *t.MaxLines > 1 {
			out = append(out, "line-clamp-"+style.FormatNumber(float64(*t.MaxLines)))
		} else {
			out = append(out, "truncate")
		}
	}
	return out
}

// fontSize returns the class for a size and the preset key it matched.
func (e *Emitter) fontSize(px float64) (string, string) {
	sizes := e.r.Preset().FontSize
	for _, k := range sortedKeys(sizes) {
		if v, ok := e.r.Px(sizes[k].Size); ok && v == px {
			return "text-" + k, k
		}
	}
	return "text-[" + pxText(px) + "]", ""
}

// defaultLeading reports whether lh is the line height the font size key
// already sets.
func (e *Emitter) defaultLeading(sizeKey string, lh props.Metric) bool {
	if sizeKey == "" {
		return false
	}
	fs, _ := e.r.FontSize(sizeKey)
	if fs.LineHeight == "" {
		return false
	}
	switch lh.Unit {
	case props.UnitPixels:
		px, ok := e.r.Px(fs.LineHeight)
		return ok && px == lh.Value
	case props.UnitPercent:
		return fs.LineHeight == style.FormatNumber(round(lh.Value/100))
	}
	return false
}

func (e *Emitter) font(t *props.Text) []string {
	var out []string
	weight, italic := t.FontWeight, false
	if t.FontName != nil {
		if fam := t.FontName.Family; fam != "" && fam != e.opts.DefaultFontFamily {
			out = append(out, e.fontFamily(fam))
		}
		var name string
		name, italic = strings.CutSuffix(t.FontName.Style, "Italic")
		if w, ok := styleWeights[strings.TrimSpace(name)]; ok && weight == nil && w != 400 {
			weight = props.Float(w)
		}
	}
	if weight != nil {
		v := style.FormatNumber(*weight)
		if key, ok := e.r.KeyByValue(theme.ScaleFontWeight, v); ok {
			out = append(out, "font-"+key)
		} else {
			out = append(out, "font-["+v+"]")
		}
	}
	if italic {
		out = append(out, "italic")
	}
	return out
}

// fontFamily matches family against the first named family of each preset
// stack.
func (e *Emitter) fontFamily(family string) string {
	stacks := e.r.Preset().FontFamily
	for _, k := range sortedKeys(stacks) {
		if props.FirstFamily(stacks[k]) == family {
			return "font-" + k
		}
	}
	return "font-" + arbitrary(family)
}

func (e *Emitter) leading(lh props.Metric) (string, bool) {
	switch lh.Unit {
	case props.UnitPixels:
		if key, ok := e.r.KeyByPx(theme.ScaleLineHeight, lh.Value); ok {
			return "leading-" + key, true
		}
		return "leading-[" + pxText(lh.Value) + "]", true
	case props.UnitPercent:
		v := style.FormatNumber(round(lh.Value / 100))
		if key, ok := e.r.KeyByValue(theme.ScaleLineHeight, v); ok {
			return "leading-" + key, true
		}
		return "leading-[" + v + "]", true
	}
	return "", false
}

func (e *Emitter) tracking(ls props.Metric) (string, bool) {
	switch ls.Unit {
	case props.UnitPercent:
		v := style.FormatNumber(round(ls.Value/100)) + "em"
		if key, ok := e.r.KeyByValue(theme.ScaleLetterSpacing, v); ok {
			return "tracking-" + key, true
		}
		return "tracking-[" + v + "]", true
	case props.UnitPixels:
		return "tracking-[" + pxText(ls.Value) + "]", true
	}
	e.log.Debug("letter spacing dropped", zap.String("unit", string(ls.Unit)))
	return "", false
}
