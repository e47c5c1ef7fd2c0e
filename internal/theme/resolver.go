package theme

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Scale names one of the preset's lookup tables.
type Scale int

// Preset scales.
const (
	ScaleSpacing Scale = iota
	ScaleFontSize
	ScaleFontWeight
	ScaleFontFamily
	ScaleLineHeight
	ScaleLetterSpacing
	ScaleRadius
	ScaleBorderWidth
	ScaleShadow
	ScaleDropShadow
	ScaleBlur
	ScaleOpacity
	ScaleScreen
	ScaleContainer
	ScaleMaxWidth
	ScaleAnimation
	ScaleEase
)

// Options controls how the resolver renders values.
type Options struct {
	Format       ColorFormat
	CSSVariables bool    // wrap palette colors as var(--color-x, value)
	UseOKLCH     bool    // keep oklch() preset values as stored
	RemBase      float64 // px per rem, DefaultRemBase when zero
}

// Resolver resolves tokens against one preset. It never mutates the preset
// and is safe for concurrent use.
type Resolver struct {
	preset   *Preset
	opts     Options
	colorIdx map[string]string // "#rrggbb" -> "family-shade"
	colorSeq []namedColor
}

type namedColor struct {
	name string
	rgba RGBA
}

// NewResolver builds a resolver for p. A nil preset resolves nothing and
// passes every token through.
func NewResolver(p *Preset, opts Options) *Resolver {
	if p == nil {
		p = &Preset{}
	}
	if opts.RemBase <= 0 {
		opts.RemBase = DefaultRemBase
	}
	if opts.Format == "" {
		opts.Format = FormatHex
	}
	r := &Resolver{preset: p, opts: opts, colorIdx: make(map[string]string)}
	r.indexColors()
	return r
}

// Preset returns the preset the resolver reads from.
func (r *Resolver) Preset() *Preset { return r.preset }

// RemBase returns the px-per-rem conversion factor.
func (r *Resolver) RemBase() float64 { return r.opts.RemBase }

func (r *Resolver) indexColors() {
	families := make([]string, 0, len(r.preset.Colors))
	order := map[string]int{}
	for i, f := range FamilyOrder() {
		order[f] = i
	}
	for f := range r.preset.Colors {
		families = append(families, f)
	}
	sort.Slice(families, func(i, j int) bool {
		oi, iok := order[families[i]]
		oj, jok := order[families[j]]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		}
		return families[i] < families[j]
	})
	for _, fam := range families {
		keys := make([]string, 0, len(r.preset.Colors[fam]))
		for shade := range r.preset.Colors[fam] {
			keys = append(keys, shade)
		}
		sort.Slice(keys, func(i, j int) bool {
			ni, ei := strconv.Atoi(keys[i])
			nj, ej := strconv.Atoi(keys[j])
			if ei == nil && ej == nil {
				return ni < nj
			}
			return keys[i] < keys[j]
		})
		for _, shade := range keys {
			c, ok := ParseColor(r.preset.Colors[fam][shade])
			if !ok {
				continue
			}
			name := fam + "-" + shade
			if shade == "DEFAULT" {
				name = fam
			}
			r.colorSeq = append(r.colorSeq, namedColor{name: name, rgba: c})
			if _, dup := r.colorIdx[c.Hex()]; !dup {
				r.colorIdx[c.Hex()] = name
			}
		}
	}
}

var colorFunctions = []string{"#", "rgb(", "rgba(", "hsl(", "hsla(", "hwb(", "lab(", "lch(", "oklab(", "oklch(", "color(", "color-mix(", "var("}

// IsLiteralColor reports whether token is already written in CSS color syntax.
func IsLiteralColor(token string) bool {
	for _, p := range colorFunctions {
		if strings.HasPrefix(token, p) {
			return true
		}
	}
	return false
}

// Color resolves a color token: literal syntax, then named constants, then
// the palette. It returns the token and false when nothing matches.
func (r *Resolver) Color(token string) (string, bool) {
	if IsLiteralColor(token) {
		return token, true
	}
	switch token {
	case "transparent", "inherit":
		return token, true
	case "current", "currentColor":
		return "currentColor", true
	case "black":
		if _, ok := r.paletteValue("black"); !ok {
			return r.format("black", "#000000"), true
		}
	case "white":
		if _, ok := r.paletteValue("white"); !ok {
			return r.format("white", "#ffffff"), true
		}
	}
	if v, ok := r.paletteValue(token); ok {
		return r.format(token, v), true
	}
	return token, false
}

// IsColorToken reports whether Color would resolve token.
func (r *Resolver) IsColorToken(token string) bool {
	_, ok := r.Color(token)
	return ok
}

// ColorAlpha resolves token and applies an alpha in [0,1].
func (r *Resolver) ColorAlpha(token string, alpha float64) (string, bool) {
	resolved, ok := r.Color(token)
	if !ok {
		return token, false
	}
	raw := resolved
	if v, found := r.paletteValue(token); found {
		raw = v
	}
	c, parsed := ParseColor(raw)
	if !parsed {
		pct := formatFloat(round(alpha*100, 2))
		return "color-mix(in srgb, " + resolved + " " + pct + "%, transparent)", true
	}
	c.A = alpha
	return c.Format(r.opts.Format), true
}

func (r *Resolver) paletteValue(token string) (string, bool) {
	if shades, ok := r.preset.Colors[token]; ok {
		v, ok := shades["DEFAULT"]
		return v, ok
	}
	i := strings.LastIndexByte(token, '-')
	if i <= 0 {
		return "", false
	}
	v, ok := r.preset.Colors[token[:i]][token[i+1:]]
	return v, ok
}

func (r *Resolver) format(name, stored string) string {
	out := stored
	if !(r.opts.UseOKLCH && strings.HasPrefix(stored, "oklch(")) {
		if c, ok := ParseColor(stored); ok {
			out = c.Format(r.opts.Format)
		}
	}
	if r.opts.CSSVariables {
		return "var(--color-" + name + ", " + out + ")"
	}
	return out
}

// ColorName returns the palette name whose value equals c exactly (alpha
// ignored), e.g. "blue-500".
func (r *Resolver) ColorName(c RGBA) (string, bool) {
	name, ok := r.colorIdx[c.Hex()]
	return name, ok
}

// NearestColorName returns the palette entry closest to c by CIEDE2000
// distance, with the distance.
func (r *Resolver) NearestColorName(c RGBA) (string, float64) {
	best, bestDist := "", math.Inf(1)
	for _, nc := range r.colorSeq {
		if d := c.Distance(nc.rgba); d < bestDist {
			best, bestDist = nc.name, d
		}
	}
	return best, bestDist
}

func (r *Resolver) table(s Scale) map[string]string {
	p := r.preset
	switch s {
	case ScaleSpacing:
		return p.Spacing
	case ScaleFontWeight:
		return p.FontWeight
	case ScaleFontFamily:
		return p.FontFamily
	case ScaleLineHeight:
		return p.LineHeight
	case ScaleLetterSpacing:
		return p.LetterSpacing
	case ScaleRadius:
		return p.BorderRadius
	case ScaleBorderWidth:
		return p.BorderWidth
	case ScaleDropShadow:
		return p.DropShadow
	case ScaleBlur:
		return p.Blur
	case ScaleOpacity:
		return p.Opacity
	case ScaleScreen:
		return p.Screens
	case ScaleContainer:
		return p.Containers
	case ScaleMaxWidth:
		return p.MaxWidth
	case ScaleAnimation:
		return p.Animation
	case ScaleEase:
		return p.Ease
	}
	return nil
}

// Lookup finds key in a scale table. Font sizes return the size and shadows
// return their CSS text.
func (r *Resolver) Lookup(s Scale, key string) (string, bool) {
	switch s {
	case ScaleFontSize:
		fs, ok := r.preset.FontSize[key]
		return fs.Size, ok
	case ScaleShadow:
		sh, ok := r.preset.Shadows[key]
		return sh.CSS, ok
	}
	v, ok := r.table(s)[key]
	return v, ok
}

// Has reports whether key is in the scale.
func (r *Resolver) Has(s Scale, key string) bool {
	_, ok := r.Lookup(s, key)
	return ok
}

// Resolve runs the scale lookup and falls back to the token itself.
func (r *Resolver) Resolve(s Scale, token string) string {
	if v, ok := r.Lookup(s, token); ok {
		return v
	}
	return token
}

// FontSize returns the font size entry for key.
func (r *Resolver) FontSize(key string) (FontSize, bool) {
	fs, ok := r.preset.FontSize[key]
	return fs, ok
}

// Shadow returns the named shadow preset.
func (r *Resolver) Shadow(key string) (Shadow, bool) {
	sh, ok := r.preset.Shadows[key]
	return sh, ok
}

// ShadowByCSS finds the preset whose CSS text equals css.
func (r *Resolver) ShadowByCSS(css string) (string, Shadow, bool) {
	for _, name := range sortedKeys(r.preset.Shadows) {
		if sh := r.preset.Shadows[name]; sh.CSS == css {
			return name, sh, true
		}
	}
	return "", Shadow{}, false
}

// ShadowByEffect finds the preset whose effect has the given radius and
// spread.
func (r *Resolver) ShadowByEffect(radius, spread float64, inset bool) (string, bool) {
	for _, name := range sortedKeys(r.preset.Shadows) {
		e := r.preset.Shadows[name].Effect
		if name == "none" {
			continue
		}
		if e.Radius == radius && e.Spread == spread && e.Inset == inset {
			return name, true
		}
	}
	return "", false
}

// KeyByPx returns the first key (in sorted order) of scale whose value
// converts to px.
func (r *Resolver) KeyByPx(s Scale, px float64) (string, bool) {
	t := r.table(s)
	for _, k := range sortedKeys(t) {
		if v, ok := ParseLength(t[k], r.opts.RemBase); ok && v == px {
			return k, true
		}
	}
	return "", false
}

// KeyByValue returns the first key of scale whose value equals v.
func (r *Resolver) KeyByValue(s Scale, v string) (string, bool) {
	t := r.table(s)
	for _, k := range sortedKeys(t) {
		if t[k] == v {
			return k, true
		}
	}
	return "", false
}

// Spacing resolves a spacing key to px. Keys missing from the table are
// accepted when they are multiples of 0.25 steps.
func (r *Resolver) Spacing(key string) (float64, bool) {
	if v, ok := r.preset.Spacing[key]; ok {
		return ParseLength(v, r.opts.RemBase)
	}
	f, err := strconv.ParseFloat(key, 64)
	if err != nil || f < 0 || math.Mod(f*4, 1) != 0 {
		return 0, false
	}
	return f * SpacingUnit, true
}

// SpacingCSS returns the CSS text for a spacing key: the preset value when
// present, otherwise rem.
func (r *Resolver) SpacingCSS(key string) (string, bool) {
	if v, ok := r.preset.Spacing[key]; ok {
		return v, true
	}
	px, ok := r.Spacing(key)
	if !ok {
		return "", false
	}
	return r.Rem(px), true
}

// SpacingKey returns the spacing key for a px value, preferring preset
// keys and then plain multiples of the spacing unit.
func (r *Resolver) SpacingKey(px float64) (string, bool) {
	if k, ok := r.KeyByPx(ScaleSpacing, px); ok {
		return k, true
	}
	steps := px / SpacingUnit
	if px > 0 && math.Mod(steps*4, 1) == 0 {
		return formatFloat(steps), true
	}
	return "", false
}

// Px converts a CSS length to px.
func (r *Resolver) Px(css string) (float64, bool) {
	return ParseLength(css, r.opts.RemBase)
}

// Rem renders px as rem, keeping 0 and 1px in px form.
func (r *Resolver) Rem(px float64) string {
	if px == 0 {
		return "0px"
	}
	if math.Abs(px) == 1 {
		return formatFloat(px) + "px"
	}
	return formatRem(px / r.opts.RemBase)
}

// ParseLength converts "16px", "1rem" or "0" to px.
func ParseLength(s string, remBase float64) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "0" {
		return 0, true
	}
	mult := 1.0
	switch {
	case strings.HasSuffix(s, "rem"):
		s, mult = strings.TrimSuffix(s, "rem"), remBase
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f * mult, true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		fi, ei := strconv.ParseFloat(keys[i], 64)
		fj, ej := strconv.ParseFloat(keys[j], 64)
		if ei == nil && ej == nil {
			return fi < fj
		}
		return keys[i] < keys[j]
	})
	return keys
}
