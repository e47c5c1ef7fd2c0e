// Package theme holds design presets and resolves utility tokens against
// them.
package theme

import (
	"sort"
)

// FontSize pairs a font size with its default line height.
type FontSize struct {
	Size       string `yaml:"size" json:"size"`
	LineHeight string `yaml:"lineHeight,omitempty" json:"lineHeight,omitempty"`
}

// ShadowEffect is the design-surface form of a box shadow preset.
type ShadowEffect struct {
	OffsetX float64 `yaml:"offsetX" json:"offsetX"`
	OffsetY float64 `yaml:"offsetY" json:"offsetY"`
	Radius  float64 `yaml:"radius" json:"radius"`
	Spread  float64 `yaml:"spread" json:"spread"`
	Inset   bool    `yaml:"inset,omitempty" json:"inset,omitempty"`
}

// Shadow is a named box shadow: its CSS value and the effect it maps to.
type Shadow struct {
	CSS    string       `yaml:"css" json:"css"`
	Effect ShadowEffect `yaml:"effect" json:"effect"`
}

// Preset is a design theme. Treat a Preset as immutable once an engine has
// been built from it; build a new one to change values.
type Preset struct {
	Name          string                       `yaml:"name" json:"name"`
	Colors        map[string]map[string]string `yaml:"colors" json:"colors"`
	Spacing       map[string]string            `yaml:"spacing" json:"spacing"`
	FontSize      map[string]FontSize          `yaml:"fontSize" json:"fontSize"`
	FontWeight    map[string]string            `yaml:"fontWeight" json:"fontWeight"`
	FontFamily    map[string]string            `yaml:"fontFamily" json:"fontFamily"`
	LineHeight    map[string]string            `yaml:"lineHeight" json:"lineHeight"`
	LetterSpacing map[string]string            `yaml:"letterSpacing" json:"letterSpacing"`
	BorderRadius  map[string]string            `yaml:"borderRadius" json:"borderRadius"`
	BorderWidth   map[string]string            `yaml:"borderWidth" json:"borderWidth"`
	Shadows       map[string]Shadow            `yaml:"shadows" json:"shadows"`
	DropShadow    map[string]string            `yaml:"dropShadow" json:"dropShadow"`
	Blur          map[string]string            `yaml:"blur" json:"blur"`
	Opacity       map[string]string            `yaml:"opacity" json:"opacity"`
	Screens       map[string]string            `yaml:"screens" json:"screens"`
	Containers    map[string]string            `yaml:"containers" json:"containers"`
	MaxWidth      map[string]string            `yaml:"maxWidth" json:"maxWidth"`
	Animation     map[string]string            `yaml:"animation" json:"animation"`
	Keyframes     map[string]string            `yaml:"keyframes" json:"keyframes"`
	Ease          map[string]string            `yaml:"ease" json:"ease"`
}

// ScreenNames returns screen names ordered by ascending min-width.
func (p *Preset) ScreenNames() []string {
	return namesByWidth(p.Screens)
}

// ContainerNames returns container size names ordered by ascending width.
func (p *Preset) ContainerNames() []string {
	return namesByWidth(p.Containers)
}

func namesByWidth(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		wi, _ := ParseLength(m[names[i]], DefaultRemBase)
		wj, _ := ParseLength(m[names[j]], DefaultRemBase)
		if wi != wj {
			return wi < wj
		}
		return names[i] < names[j]
	})
	return names
}

// Merge returns a copy of p with every non-empty entry of o laid over it.
// Color families merge shade by shade.
func (p *Preset) Merge(o *Preset) *Preset {
	out := p.Clone()
	if o == nil {
		return out
	}
	if o.Name != "" {
		out.Name = o.Name
	}
	for fam, shades := range o.Colors {
		if out.Colors[fam] == nil {
			out.Colors[fam] = make(map[string]string, len(shades))
		}
		for shade, v := range shades {
			out.Colors[fam][shade] = v
		}
	}
	mergeStrings(&out.Spacing, o.Spacing)
	for k, v := range o.FontSize {
		if out.FontSize == nil {
			out.FontSize = make(map[string]FontSize)
		}
		out.FontSize[k] = v
	}
	mergeStrings(&out.FontWeight, o.FontWeight)
	mergeStrings(&out.FontFamily, o.FontFamily)
	mergeStrings(&out.LineHeight, o.LineHeight)
	mergeStrings(&out.LetterSpacing, o.LetterSpacing)
	mergeStrings(&out.BorderRadius, o.BorderRadius)
	mergeStrings(&out.BorderWidth, o.BorderWidth)
	for k, v := range o.Shadows {
		if out.Shadows == nil {
			out.Shadows = make(map[string]Shadow)
		}
		out.Shadows[k] = v
	}
	mergeStrings(&out.DropShadow, o.DropShadow)
	mergeStrings(&out.Blur, o.Blur)
	mergeStrings(&out.Opacity, o.Opacity)
	mergeStrings(&out.Screens, o.Screens)
	mergeStrings(&out.Containers, o.Containers)
	mergeStrings(&out.MaxWidth, o.MaxWidth)
	mergeStrings(&out.Animation, o.Animation)
	mergeStrings(&out.Keyframes, o.Keyframes)
	mergeStrings(&out.Ease, o.Ease)
	return out
}

func mergeStrings(dst *map[string]string, src map[string]string) {
	if len(src) == 0 {
		return
	}
	if *dst == nil {
		*dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		(*dst)[k] = v
	}
}

func cloneStrings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of p.
func (p *Preset) Clone() *Preset {
	out := &Preset{
		Name:          p.Name,
		Colors:        make(map[string]map[string]string, len(p.Colors)),
		Spacing:       cloneStrings(p.Spacing),
		FontWeight:    cloneStrings(p.FontWeight),
		FontFamily:    cloneStrings(p.FontFamily),
		LineHeight:    cloneStrings(p.LineHeight),
		LetterSpacing: cloneStrings(p.LetterSpacing),
		BorderRadius:  cloneStrings(p.BorderRadius),
		BorderWidth:   cloneStrings(p.BorderWidth),
		DropShadow:    cloneStrings(p.DropShadow),
		Blur:          cloneStrings(p.Blur),
		Opacity:       cloneStrings(p.Opacity),
		Screens:       cloneStrings(p.Screens),
		Containers:    cloneStrings(p.Containers),
		MaxWidth:      cloneStrings(p.MaxWidth),
		Animation:     cloneStrings(p.Animation),
		Keyframes:     cloneStrings(p.Keyframes),
		Ease:          cloneStrings(p.Ease),
	}
	for fam, shades := range p.Colors {
		out.Colors[fam] = cloneStrings(shades)
	}
	if p.FontSize != nil {
		out.FontSize = make(map[string]FontSize, len(p.FontSize))
		for k, v := range p.FontSize {
			out.FontSize[k] = v
		}
	}
	if p.Shadows != nil {
		out.Shadows = make(map[string]Shadow, len(p.Shadows))
		for k, v := range p.Shadows {
			out.Shadows[k] = v
		}
	}
	return out
}
