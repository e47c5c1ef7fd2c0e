package modifier

import (
	"regexp"
	"strings"

	"github.com/easylogic/cssma/internal/syntax"
)

// pseudoClasses maps variant names to the pseudo-class they render.
var pseudoClasses = map[string]string{
	"hover":             ":hover",
	"focus":             ":focus",
	"focus-visible":     ":focus-visible",
	"focus-within":      ":focus-within",
	"active":            ":active",
	"visited":           ":visited",
	"target":            ":target",
	"first":             ":first-child",
	"last":              ":last-child",
	"only":              ":only-child",
	"odd":               ":nth-child(odd)",
	"even":              ":nth-child(even)",
	"first-of-type":     ":first-of-type",
	"last-of-type":      ":last-of-type",
	"only-of-type":      ":only-of-type",
	"empty":             ":empty",
	"disabled":          ":disabled",
	"enabled":           ":enabled",
	"checked":           ":checked",
	"indeterminate":     ":indeterminate",
	"default":           ":default",
	"required":          ":required",
	"optional":          ":optional",
	"valid":             ":valid",
	"invalid":           ":invalid",
	"user-valid":        ":user-valid",
	"user-invalid":      ":user-invalid",
	"in-range":          ":in-range",
	"out-of-range":      ":out-of-range",
	"placeholder-shown": ":placeholder-shown",
	"autofill":          ":autofill",
	"read-only":         ":read-only",
}

var pseudoElements = map[string]string{
	"before":       "::before",
	"after":        "::after",
	"placeholder":  "::placeholder",
	"file":         "::file-selector-button",
	"marker":       "::marker",
	"selection":    "::selection",
	"first-line":   "::first-line",
	"first-letter": "::first-letter",
	"backdrop":     "::backdrop",
}

var states = map[string]string{
	"open":  "[open]",
	"inert": "[inert]",
}

var mediaFeatures = map[string]string{
	"print":          "print",
	"portrait":       "(orientation: portrait)",
	"landscape":      "(orientation: landscape)",
	"contrast-more":  "(prefers-contrast: more)",
	"contrast-less":  "(prefers-contrast: less)",
	"forced-colors":  "(forced-colors: active)",
	"pointer-fine":   "(pointer: fine)",
	"pointer-coarse": "(pointer: coarse)",
	"pointer-none":   "(pointer: none)",
}

var ariaBooleans = map[string]bool{
	"busy": true, "checked": true, "disabled": true, "expanded": true, "hidden": true,
	"pressed": true, "readonly": true, "required": true, "selected": true,
}

var (
	nthPattern       = regexp.MustCompile(`^nth-(last-of-type|of-type|last)?-?(\d+|\[[^\]]+\])$`)
	attributePattern = regexp.MustCompile(`^([a-zA-Z][\w-]*)(?:([~|^$*]?=)(.+))?$`)
	groupPattern     = regexp.MustCompile(`^(group|peer)-(.+?)(?:/([\w-]+))?$`)
)

// PseudoClass returns the selector for a pseudo-class variant name.
func PseudoClass(name string) (string, bool) {
	s, ok := pseudoClasses[name]
	return s, ok
}

// PseudoElementSelector returns the selector for a pseudo-element variant name.
func PseudoElementSelector(name string) (string, bool) {
	s, ok := pseudoElements[name]
	return s, ok
}

// StateSelector returns the attribute selector for a state variant name.
func StateSelector(name string) (string, bool) {
	s, ok := states[name]
	return s, ok
}

// Tokenizer splits class tokens and classifies their modifier segments.
// Build one per engine; it is safe for concurrent use.
type Tokenizer struct {
	sep        string
	screens    map[string]bool
	containers map[string]bool
}

// NewTokenizer returns a tokenizer for the given separator and the screen
// and container size names of the active preset.
func NewTokenizer(sep string, screens, containers []string) *Tokenizer {
	if sep == "" {
		sep = ":"
	}
	t := &Tokenizer{
		sep:        sep,
		screens:    make(map[string]bool, len(screens)),
		containers: make(map[string]bool, len(containers)),
	}
	for _, s := range screens {
		t.screens[s] = true
	}
	for _, c := range containers {
		t.containers[c] = true
	}
	return t
}

// Separator returns the modifier separator.
func (t *Tokenizer) Separator() string {
	return t.sep
}

// Split peels modifiers off token left to right and returns them with the
// remaining base class. Unknown segments are kept as Unknown.
func (t *Tokenizer) Split(token string) ([]Modifier, string) {
	parts := syntax.SplitTopLevel(token, t.sep)
	base := parts[len(parts)-1]
	if len(parts) == 1 {
		return nil, base
	}
	mods := make([]Modifier, 0, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		mods = append(mods, t.Classify(p))
	}
	return mods, base
}

// Classify turns one segment into a modifier. Rules are tried from the
// most specific to the most generic.
func (t *Tokenizer) Classify(s string) Modifier {
	raw := seg{raw: s}

	// screens
	if t.screens[s] {
		return Responsive{seg: raw, Name: s}
	}
	if name, ok := strings.CutPrefix(s, "max-"); ok && t.screens[name] {
		return Responsive{seg: raw, Name: name, Max: true}
	}
	if w, ok := strings.CutPrefix(s, "min-"); ok {
		if v, ok := syntax.Bracketed(w); ok {
			return Breakpoint{seg: raw, Width: syntax.Decode(v)}
		}
	}
	if w, ok := strings.CutPrefix(s, "max-"); ok {
		if v, ok := syntax.Bracketed(w); ok {
			return Breakpoint{seg: raw, Width: syntax.Decode(v), Max: true}
		}
	}

	// keyword sets
	if _, ok := pseudoClasses[s]; ok {
		return Pseudo{seg: raw, Name: s}
	}
	if _, ok := pseudoElements[s]; ok {
		return PseudoElement{seg: raw, Name: s}
	}
	if _, ok := states[s]; ok {
		return State{seg: raw, Name: s}
	}

	// group-* / peer-*
	if m := groupPattern.FindStringSubmatch(s); m != nil {
		if mod, ok := groupOrPeer(raw, m[1], m[2], m[3]); ok {
			return mod
		}
	}

	// attribute families, most specific first
	if rest, ok := strings.CutPrefix(s, "aria-"); ok {
		if mod, ok := aria(raw, rest); ok {
			return mod
		}
	}
	if rest, ok := strings.CutPrefix(s, "data-"); ok {
		if mod, ok := data(raw, rest); ok {
			return mod
		}
	}
	if inner, ok := syntax.Bracketed(s); ok && !strings.ContainsAny(inner, "&@") {
		if m := attributePattern.FindStringSubmatch(inner); m != nil {
			return Attribute{seg: raw, Attr: m[1], Op: m[2], Value: unquote(syntax.Decode(m[3]))}
		}
	}
	if mod, ok := logical(raw, s); ok {
		return mod
	}

	// nth family
	if m := nthPattern.FindStringSubmatch(s); m != nil {
		value := m[2]
		if v, ok := syntax.Bracketed(value); ok {
			value = syntax.Decode(v)
		}
		switch m[1] {
		case "of-type":
			return NthOfType{seg: raw, Value: value}
		case "last-of-type":
			return NthLastOfType{seg: raw, Value: value}
		case "last":
			return Nth{seg: raw, Value: value, Last: true}
		default:
			return Nth{seg: raw, Value: value}
		}
	}

	// arbitrary selector or at-rule
	if inner, ok := syntax.Bracketed(s); ok {
		decoded := syntax.Decode(inner)
		switch {
		case strings.HasPrefix(decoded, "@"):
			return Arbitrary{seg: raw, AtRule: decoded}
		case strings.Contains(decoded, "&"):
			return Arbitrary{seg: raw, Selector: decoded}
		}
		return Unknown{seg: raw}
	}

	// environment keywords
	switch s {
	case "dark":
		return DarkMode{seg: raw}
	case "motion-safe":
		return Motion{seg: raw}
	case "motion-reduce":
		return Motion{seg: raw, Reduce: true}
	case "ltr":
		return Direction{seg: raw}
	case "rtl":
		return Direction{seg: raw, RTL: true}
	}
	if q, ok := mediaFeatures[s]; ok {
		return Media{seg: raw, Name: s, Query: q}
	}
	if rest, ok := strings.CutPrefix(s, "supports-"); ok {
		if v, ok := syntax.Bracketed(rest); ok {
			cond := syntax.Decode(v)
			if !strings.HasPrefix(cond, "(") {
				cond = "(" + strings.Replace(cond, ":", ": ", 1) + ")"
			}
			return Supports{seg: raw, Condition: cond}
		}
		if syntax.Ident(rest) {
			return Supports{seg: raw, Condition: "(" + rest + ": var(--tw))"}
		}
	}
	if rest, ok := strings.CutPrefix(s, "@"); ok {
		if mod, ok := t.container(raw, rest); ok {
			return mod
		}
	}

	return Unknown{seg: raw}
}

func groupOrPeer(raw seg, kind, state, name string) (Modifier, bool) {
	var sel, st string
	switch {
	case strings.HasPrefix(state, "["):
		v, ok := syntax.Bracketed(state)
		if !ok {
			return nil, false
		}
		sel = syntax.Decode(v)
	case pseudoClasses[state] != "" || states[state] != "":
		st = state
	default:
		return nil, false
	}
	if kind == "group" {
		return Group{seg: raw, State: st, Selector: sel, Name: name}, true
	}
	return Peer{seg: raw, State: st, Selector: sel, Name: name}, true
}

func aria(raw seg, rest string) (Modifier, bool) {
	if inner, ok := syntax.Bracketed(rest); ok {
		name, value, _ := strings.Cut(syntax.Decode(inner), "=")
		if !syntax.Ident(name) {
			return nil, false
		}
		return Aria{seg: raw, Name: name, Value: unquote(value)}, true
	}
	if ariaBooleans[rest] {
		return Aria{seg: raw, Name: rest, Value: "true"}, true
	}
	return nil, false
}

func data(raw seg, rest string) (Modifier, bool) {
	if inner, ok := syntax.Bracketed(rest); ok {
		name, value, _ := strings.Cut(syntax.Decode(inner), "=")
		if !syntax.Ident(name) {
			return nil, false
		}
		return Data{seg: raw, Name: name, Value: unquote(value)}, true
	}
	if syntax.Ident(rest) {
		return Data{seg: raw, Name: rest}, true
	}
	return nil, false
}

func logical(raw seg, s string) (Modifier, bool) {
	op, rest, ok := strings.Cut(s, "-")
	if !ok || (op != "has" && op != "not") {
		return nil, false
	}
	if inner, ok := syntax.Bracketed(rest); ok {
		return Logical{seg: raw, Op: op, Selector: syntax.Decode(inner)}, true
	}
	if sel, ok := pseudoClasses[rest]; ok {
		return Logical{seg: raw, Op: op, Selector: sel}, true
	}
	if sel, ok := states[rest]; ok {
		return Logical{seg: raw, Op: op, Selector: sel}, true
	}
	return nil, false
}

func (t *Tokenizer) container(raw seg, rest string) (Modifier, bool) {
	name := ""
	if i := syntax.LastTopLevel(rest, '/'); i > 0 {
		rest, name = rest[:i], rest[i+1:]
	}
	isMax := false
	if r, ok := strings.CutPrefix(rest, "max-"); ok {
		rest, isMax = r, true
	}
	if v, ok := syntax.Bracketed(rest); ok {
		return Container{seg: raw, Width: syntax.Decode(v), Max: isMax, Name: name}, true
	}
	if t.containers[rest] {
		return Container{seg: raw, Size: rest, Max: isMax, Name: name}, true
	}
	return nil, false
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
