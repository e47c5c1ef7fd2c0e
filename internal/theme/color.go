package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// ColorFormat selects how resolved colors are written.
type ColorFormat string

// Supported color output formats.
const (
	FormatHex   ColorFormat = "hex"
	FormatRGB   ColorFormat = "rgb"
	FormatOKLCH ColorFormat = "oklch"
)

// RGBA is a color with channels in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// Hex returns "#rrggbb", ignoring alpha.
func (c RGBA) Hex() string {
	return c.toColorful().Clamped().Hex()
}

// RGB returns "rgb(r g b)" or "rgb(r g b / a)".
func (c RGBA) RGB() string {
	r, g, b := c.toColorful().Clamped().RGB255()
	if c.A < 1 {
		return fmt.Sprintf("rgb(%d %d %d / %s)", r, g, b, formatFloat(c.A))
	}
	return fmt.Sprintf("rgb(%d %d %d)", r, g, b)
}

// OKLCH returns "oklch(L C H)" with lightness as a percentage.
func (c RGBA) OKLCH() string {
	l, ch, h := c.toColorful().OkLch()
	s := fmt.Sprintf("oklch(%s%% %s %s", formatFloat(round(l*100, 2)), formatFloat(round(ch, 3)), formatFloat(round(h, 2)))
	if c.A < 1 {
		s += " / " + formatFloat(c.A)
	}
	return s + ")"
}

// Format writes c in the requested format. Hex output with alpha falls back
// to rgb() so the alpha channel is preserved.
func (c RGBA) Format(f ColorFormat) string {
	switch f {
	case FormatRGB:
		return c.RGB()
	case FormatOKLCH:
		return c.OKLCH()
	default:
		if c.A < 1 {
			return c.RGB()
		}
		return c.Hex()
	}
}

// Distance returns the CIEDE2000 distance between two colors.
func (c RGBA) Distance(o RGBA) float64 {
	return c.toColorful().DistanceCIEDE2000(o.toColorful())
}

func (c RGBA) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}

// ParseColor decodes a CSS color. It understands everything the CSS color
// parser does plus oklch() and var(--x, fallback), where the fallback is
// decoded. Keywords such as currentColor are not colors.
func ParseColor(s string) (RGBA, bool) {
	s = strings.TrimSpace(s)
	if inner, ok := strings.CutPrefix(s, "var("); ok && strings.HasSuffix(inner, ")") {
		_, fallback, found := strings.Cut(inner[:len(inner)-1], ",")
		if !found {
			return RGBA{}, false
		}
		return ParseColor(fallback)
	}
	if strings.HasPrefix(s, "oklch(") {
		return parseOKLCH(s)
	}
	switch strings.ToLower(s) {
	case "", "currentcolor", "inherit", "initial", "unset", "none":
		return RGBA{}, false
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return RGBA{}, false
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

// IsColor reports whether s is a literal CSS color or color keyword.
func IsColor(s string) bool {
	switch s {
	case "transparent", "currentColor", "currentcolor", "inherit":
		return true
	}
	_, ok := ParseColor(s)
	return ok
}

func parseOKLCH(s string) (RGBA, bool) {
	body := strings.TrimSuffix(strings.TrimPrefix(s, "oklch("), ")")
	alpha := 1.0
	if main, a, ok := strings.Cut(body, "/"); ok {
		body = main
		v, ok := parseNumber(strings.TrimSpace(a), 1)
		if !ok {
			return RGBA{}, false
		}
		alpha = v
	}
	fields := strings.Fields(body)
	if len(fields) != 3 {
		return RGBA{}, false
	}
	l, ok1 := parseNumber(fields[0], 1)
	ch, ok2 := parseNumber(fields[1], 0.4)
	h, ok3 := parseNumber(strings.TrimSuffix(fields[2], "deg"), 1)
	if !ok1 || !ok2 || !ok3 {
		return RGBA{}, false
	}
	c := colorful.OkLch(l, ch, h).Clamped()
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, true
}

// parseNumber parses "0.5" or "50%"; percentages scale to pct100.
func parseNumber(s string, pct100 float64) (float64, bool) {
	if v, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f / 100 * pct100, true
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
