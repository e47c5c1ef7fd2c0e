// Package reverse derives utility classes from node properties. Preset
// entries are matched exactly first; values without a preset entry fall
// back to bracket forms such as bg-[#112233] and p-[13.5px].
//
// The mapping is lossy. Properties the schema does not carry (transitions,
// animations, variants) are never reconstructed.
package reverse

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/easylogic/cssma/internal/props"
	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/syntax"
	"github.com/easylogic/cssma/internal/theme"
)

// ColorMatch selects how colors are matched against the palette.
type ColorMatch string

// Color matching modes.
const (
	MatchExact   ColorMatch = "exact"
	MatchNearest ColorMatch = "nearest"
)

// Options configures an Emitter.
type Options struct {
	ColorMatch ColorMatch
	// MaxDistance bounds nearest matching by CIEDE2000 distance. Zero
	// accepts the nearest entry whatever its distance.
	MaxDistance        float64
	DefaultFontFamily  string // family that needs no class, "Inter" when empty
	DefaultRingColor   string // ring color that needs no class
	DefaultBorderColor string // border color that needs no class, none when empty
}

// Emitter encodes properties as utility classes. It is safe for concurrent
// use.
type Emitter struct {
	r    *theme.Resolver
	opts Options
	log  *zap.Logger

	ringColor   theme.RGBA
	borderColor theme.RGBA
	hasBorder   bool
}

// New returns an emitter matching against r's preset.
func New(r *theme.Resolver, opts Options, log *zap.Logger) *Emitter {
	if opts.ColorMatch == "" {
		opts.ColorMatch = MatchExact
	}
	if opts.DefaultFontFamily == "" {
		opts.DefaultFontFamily = "Inter"
	}
	if opts.DefaultRingColor == "" {
		opts.DefaultRingColor = "rgb(59 130 246 / 0.5)"
	}
	if log == nil {
		log = zap.NewNop()
	}
	e := &Emitter{r: r, opts: opts, log: log.Named("reverse")}
	e.ringColor, _ = theme.ParseColor(opts.DefaultRingColor)
	e.borderColor, e.hasBorder = theme.ParseColor(opts.DefaultBorderColor)
	return e
}

// Classes returns the classes that reproduce p on a node of the given kind,
// in a stable order: layout, sizing, paints, strokes, corners, effects and
// text.
func (e *Emitter) Classes(p *props.Properties, kind props.NodeKind) []string {
	if p == nil {
		return nil
	}
	var out []string
	out = append(out, e.layout(p)...)
	out = append(out, e.sizing(p)...)
	out = append(out, e.fills(p, kind)...)
	out = append(out, e.strokes(p, kind)...)
	out = append(out, e.corners(p)...)
	out = append(out, e.effects(p)...)
	if kind == props.TextNode && p.Text != nil {
		out = append(out, e.text(p.Text)...)
	}
	return out
}

// String joins Classes with spaces.
func (e *Emitter) String(p *props.Properties, kind props.NodeKind) string {
	return strings.Join(e.Classes(p, kind), " ")
}

// Colors.

// color encodes c under root, e.g. "bg-blue-500/50" or "text-[#112233]".
// An opacity outside the color (solid paints) is passed separately.
func (e *Emitter) color(root string, c props.Color, opacity *float64) string {
	rgba := theme.RGBA{R: c.R, G: c.G, B: c.B, A: 1}
	alpha := c.A
	if opacity != nil {
		alpha *= *opacity
	}
	return root + "-" + e.colorToken(rgba) + alphaSuffix(alpha)
}

// colorToken returns the palette name of c or its bracket form.
func (e *Emitter) colorToken(c theme.RGBA) string {
	if name, ok := e.colorName(c); ok {
		return name
	}
	return "[" + c.Hex() + "]"
}

func (e *Emitter) colorName(c theme.RGBA) (string, bool) {
	switch c.Hex() {
	case "#000000":
		return "black", true
	case "#ffffff":
		return "white", true
	}
	if name, ok := e.r.ColorName(c); ok {
		return name, true
	}
	if e.opts.ColorMatch != MatchNearest {
		return "", false
	}
	name, dist := e.r.NearestColorName(c)
	if name == "" || (e.opts.MaxDistance > 0 && dist > e.opts.MaxDistance) {
		return "", false
	}
	e.log.Debug("nearest color", zap.String("color", c.Hex()), zap.String("name", name), zap.Float64("distance", dist))
	return name, true
}

// alphaSuffix renders an alpha as "/50" or "/[0.37]"; opaque colors get none.
func alphaSuffix(a float64) string {
	if a >= 1 {
		return ""
	}
	pct := a * 100
	if r := math.Round(pct); math.Abs(pct-r) < 1e-6 {
		return fmt.Sprintf("/%d", int(r))
	}
	return "/[" + style.FormatNumber(round(a)) + "]"
}

func sameColor(a props.Color, b theme.RGBA) bool {
	const eps = 1.0 / 512
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < 1e-3
}

// Lengths.

// spacing encodes px on the spacing scale: "p-4", "-m-2", "p-3.25", "p-[13.5px]".
func (e *Emitter) spacing(root string, px float64, negative bool) string {
	sign := ""
	if px < 0 && negative {
		sign, px = "-", -px
	}
	if key, ok := e.r.SpacingKey(px); ok {
		return sign + root + "-" + key
	}
	if px == 0 {
		return root + "-0"
	}
	return sign + root + "-[" + pxText(px) + "]"
}

// scaled encodes px against a scale whose DEFAULT entry is the bare root,
// e.g. "rounded", "rounded-lg", "rounded-[6px]".
func (e *Emitter) scaled(root string, s theme.Scale, px float64) string {
	key, ok := e.r.KeyByPx(s, px)
	switch {
	case !ok:
		return root + "-[" + pxText(px) + "]"
	case key == "DEFAULT":
		return root
	}
	return root + "-" + key
}

func pxText(px float64) string {
	return style.FormatNumber(round(px)) + "px"
}

func round(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// arbitrary wraps CSS text as a bracket value.
func arbitrary(css string) string {
	return "[" + syntax.Encode(css) + "]"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
