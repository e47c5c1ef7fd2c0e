package cssma

import (
	"sort"
	"strings"

	"github.com/easylogic/cssma/internal/utility"
)

// Section groups CSS declarations in inspect reports.
type Section string

// Report sections, in display order.
const (
	SectionLayout        Section = "layout"
	SectionSpacing       Section = "spacing"
	SectionTypography    Section = "typography"
	SectionVisual        Section = "visual"
	SectionEffects       Section = "effects"
	SectionInteractivity Section = "interactivity"
	SectionVendor        Section = "vendor"
	SectionVariables     Section = "variables"
)

// Sections lists every section in display order.
var Sections = []Section{
	SectionLayout, SectionSpacing, SectionTypography, SectionVisual,
	SectionEffects, SectionInteractivity, SectionVendor, SectionVariables,
}

// propertySections maps CSS property names to report sections
var propertySections = map[string]Section{
	// Visual
	"background":          SectionVisual,
	"background-color":    SectionVisual,
	"background-image":    SectionVisual,
	"background-size":     SectionVisual,
	"background-position": SectionVisual,
	"background-repeat":   SectionVisual,
	"color":               SectionVisual,
	"border":              SectionVisual,
	"border-color":        SectionVisual,
	"border-radius":       SectionVisual,
	"border-width":        SectionVisual,
	"border-style":        SectionVisual,
	"border-top":          SectionVisual,
	"border-right":        SectionVisual,
	"border-bottom":       SectionVisual,
	"border-left":         SectionVisual,
	"border-inline":       SectionVisual,
	"border-block":        SectionVisual,
	"box-shadow":          SectionVisual,
	"opacity":             SectionVisual,
	"outline":             SectionVisual,
	"outline-color":       SectionVisual,
	"outline-width":       SectionVisual,
	"outline-style":       SectionVisual,
	"fill":                SectionVisual,
	"stroke":              SectionVisual,

	// Layout
	"display":               SectionLayout,
	"flex":                  SectionLayout,
	"flex-direction":        SectionLayout,
	"flex-wrap":             SectionLayout,
	"flex-grow":             SectionLayout,
	"flex-shrink":           SectionLayout,
	"flex-basis":            SectionLayout,
	"justify-content":       SectionLayout,
	"align-items":           SectionLayout,
	"align-self":            SectionLayout,
	"align-content":         SectionLayout,
	"grid":                  SectionLayout,
	"grid-template-columns": SectionLayout,
	"grid-template-rows":    SectionLayout,
	"grid-template-areas":   SectionLayout,
	"grid-column":           SectionLayout,
	"grid-row":              SectionLayout,
	"position":              SectionLayout,
	"inset":                 SectionLayout,
	"inset-block":           SectionLayout,
	"inset-block-start":     SectionLayout,
	"inset-block-end":       SectionLayout,
	"inset-inline":          SectionLayout,
	"inset-inline-start":    SectionLayout,
	"inset-inline-end":      SectionLayout,
	"top":                   SectionLayout,
	"right":                 SectionLayout,
	"bottom":                SectionLayout,
	"left":                  SectionLayout,
	"width":                 SectionLayout,
	"height":                SectionLayout,
	"inline-size":           SectionLayout,
	"block-size":            SectionLayout,
	"min-width":             SectionLayout,
	"min-height":            SectionLayout,
	"min-inline-size":       SectionLayout,
	"min-block-size":        SectionLayout,
	"max-width":             SectionLayout,
	"max-height":            SectionLayout,
	"max-inline-size":       SectionLayout,
	"max-block-size":        SectionLayout,
	"overflow":              SectionLayout,
	"overflow-x":            SectionLayout,
	"overflow-y":            SectionLayout,
	"z-index":               SectionLayout,
	"aspect-ratio":          SectionLayout,
	"object-fit":            SectionLayout,
	"object-position":       SectionLayout,

	// Typography
	"font-family":          SectionTypography,
	"font-size":            SectionTypography,
	"font-weight":          SectionTypography,
	"font-style":           SectionTypography,
	"font-variant":         SectionTypography,
	"font-variant-numeric": SectionTypography,
	"line-height":          SectionTypography,
	"letter-spacing":       SectionTypography,
	"text-align":           SectionTypography,
	"text-decoration":      SectionTypography,
	"text-transform":       SectionTypography,
	"text-overflow":        SectionTypography,
	"white-space":          SectionTypography,
	"word-break":           SectionTypography,
	"word-wrap":            SectionTypography,
	"hyphens":              SectionTypography,

	// Effects
	"transition":                 SectionEffects,
	"transition-property":        SectionEffects,
	"transition-duration":        SectionEffects,
	"transition-timing-function": SectionEffects,
	"transition-delay":           SectionEffects,
	"transform":                  SectionEffects,
	"transform-origin":           SectionEffects,
	"animation":                  SectionEffects,
	"animation-name":             SectionEffects,
	"animation-duration":         SectionEffects,
	"animation-timing-function":  SectionEffects,
	"animation-delay":            SectionEffects,
	"animation-iteration-count":  SectionEffects,
	"animation-direction":        SectionEffects,
	"filter":                     SectionEffects,
	"backdrop-filter":            SectionEffects,
	"mix-blend-mode":             SectionEffects,
	"clip-path":                  SectionEffects,
	"mask":                       SectionEffects,

	// Spacing
	"padding":     SectionSpacing,
	"margin":      SectionSpacing,
	"gap":         SectionSpacing,
	"row-gap":     SectionSpacing,
	"column-gap":  SectionSpacing,
	"text-indent": SectionSpacing,

	// Interactivity
	"cursor":          SectionInteractivity,
	"pointer-events":  SectionInteractivity,
	"user-select":     SectionInteractivity,
	"resize":          SectionInteractivity,
	"touch-action":    SectionInteractivity,
	"scroll-behavior": SectionInteractivity,
	"caret-color":     SectionInteractivity,
	"accent-color":    SectionInteractivity,
	"appearance":      SectionInteractivity,
	"will-change":     SectionInteractivity,
}

// SectionOf returns the report section of a CSS property.
func SectionOf(name string) Section {
	if s, ok := propertySections[name]; ok {
		return s
	}
	if strings.HasPrefix(name, "--") {
		return SectionVariables
	}
	if strings.HasPrefix(name, "-webkit-") ||
		strings.HasPrefix(name, "-moz-") ||
		strings.HasPrefix(name, "-ms-") ||
		strings.HasPrefix(name, "-o-") {
		return SectionVendor
	}
	for _, p := range []string{"padding-", "margin-", "scroll-m", "scroll-p"} {
		if strings.HasPrefix(name, p) {
			return SectionSpacing
		}
	}
	switch {
	case strings.HasPrefix(name, "flex-"), strings.HasPrefix(name, "grid-"),
		strings.HasPrefix(name, "place-"), strings.HasPrefix(name, "overscroll"):
		return SectionLayout
	case strings.HasPrefix(name, "border-"), strings.HasPrefix(name, "outline-"),
		strings.HasPrefix(name, "background-"), strings.HasPrefix(name, "stroke-"):
		return SectionVisual
	case strings.HasPrefix(name, "font-"), strings.HasPrefix(name, "text-"),
		strings.HasPrefix(name, "line-"), strings.HasPrefix(name, "list-"):
		return SectionTypography
	case strings.HasPrefix(name, "mask-"), strings.HasPrefix(name, "transition-"),
		strings.HasPrefix(name, "animation-"), strings.HasPrefix(name, "backdrop-"):
		return SectionEffects
	}
	return SectionLayout
}

// SectionedDeclaration is a declaration tagged with its report section.
type SectionedDeclaration struct {
	Property string  `json:"property"`
	Value    string  `json:"value"`
	Section  Section `json:"section"`
	IsToken  bool    `json:"token"` // value reads a theme or utility variable
}

// isTokenValue reports whether a value reads a theme or utility variable.
func isTokenValue(value string) bool {
	return strings.Contains(value, "var(--color-") || strings.Contains(value, "var(--tw-")
}

// groupDeclarations groups declarations by section, sorted by property
// within each section.
func groupDeclarations(decls []utility.Declaration) map[Section][]SectionedDeclaration {
	result := make(map[Section][]SectionedDeclaration)
	for _, d := range decls {
		s := SectionOf(d.Property)
		result[s] = append(result[s], SectionedDeclaration{
			Property: d.Property,
			Value:    d.Value,
			Section:  s,
			IsToken:  isTokenValue(d.Value),
		})
	}
	for s := range result {
		sort.SliceStable(result[s], func(i, j int) bool {
			return result[s][i].Property < result[s][j].Property
		})
	}
	return result
}
