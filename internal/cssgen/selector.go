package cssgen

import (
	"fmt"
	"strings"

	"github.com/easylogic/cssma/internal/modifier"
)

// Escape writes a class name as a CSS identifier: every character outside
// [A-Za-z0-9_-] and non-ASCII gets a backslash, and a leading digit is
// written as a code point escape.
func Escape(class string) string {
	var b strings.Builder
	for i, r := range class {
		switch {
		case i == 0 && r >= '0' && r <= '9':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 1 && class[0] == '-' && r >= '0' && r <= '9':
			fmt.Fprintf(&b, "\\%x ", r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r >= 0x80:
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// selector assembles the selector for a class from its selector-affecting
// modifiers, already in canonical order, and the utility's own suffix.
// Modifiers that do not apply to selectors contribute nothing.
func (g *Generator) selector(class string, mods []modifier.Modifier, suffix string) string {
	sel := "." + Escape(class)
	var scope []string
	var elements []string
	for _, m := range mods {
		switch v := m.(type) {
		case modifier.Pseudo:
			s, _ := modifier.PseudoClass(v.Name)
			sel += s
		case modifier.PseudoElement:
			s, _ := modifier.PseudoElementSelector(v.Name)
			elements = append(elements, s)
		case modifier.State:
			s, _ := modifier.StateSelector(v.Name)
			sel += s
		case modifier.Group:
			scope = append(scope, g.marker("group", v.Name)+condition(v.State, v.Selector)+" ")
		case modifier.Peer:
			scope = append(scope, g.marker("peer", v.Name)+condition(v.State, v.Selector)+" ~ ")
		case modifier.Attribute:
			sel += attribute(v.Attr, v.Op, v.Value)
		case modifier.Aria:
			sel += attribute("aria-"+v.Name, "=", v.Value)
		case modifier.Data:
			if v.Value == "" {
				sel += attribute("data-"+v.Name, "", "")
			} else {
				sel += attribute("data-"+v.Name, "=", v.Value)
			}
		case modifier.Logical:
			sel += ":" + v.Op + "(" + v.Selector + ")"
		case modifier.Nth:
			if v.Last {
				sel += ":nth-last-child(" + v.Value + ")"
			} else {
				sel += ":nth-child(" + v.Value + ")"
			}
		case modifier.NthOfType:
			sel += ":nth-of-type(" + v.Value + ")"
		case modifier.NthLastOfType:
			sel += ":nth-last-of-type(" + v.Value + ")"
		case modifier.Direction:
			dir := "ltr"
			if v.RTL {
				dir = "rtl"
			}
			scope = append(scope, `[dir="`+dir+`"] `)
		case modifier.Arbitrary:
			if v.Selector != "" {
				sel = strings.ReplaceAll(v.Selector, "&", sel)
			}
		}
	}
	sel += suffix
	for _, e := range elements {
		sel += e
	}
	for i := len(scope) - 1; i >= 0; i-- {
		sel = scope[i] + sel
	}
	return sel
}

func (g *Generator) marker(kind, name string) string {
	m := "." + Escape(g.opts.Prefix+kind)
	if name != "" {
		m += `\/` + Escape(name)
	}
	return m
}

// condition renders the state of a group or peer marker.
func condition(state, sel string) string {
	if sel != "" {
		return strings.ReplaceAll(strings.TrimPrefix(sel, "&"), "&", "")
	}
	if s, ok := modifier.PseudoClass(state); ok {
		return s
	}
	s, _ := modifier.StateSelector(state)
	return s
}

func attribute(name, op, value string) string {
	if op == "" {
		return "[" + name + "]"
	}
	return "[" + name + op + `"` + strings.ReplaceAll(value, `"`, `\"`) + `"]`
}

// wrapper renders the at-rule prelude of a wrapper modifier. It returns
// false for modifiers that need no at-rule under the current options.
func (g *Generator) wrapper(m modifier.Modifier) (string, bool) {
	switch v := m.(type) {
	case modifier.Responsive:
		w, ok := g.preset.Screens[v.Name]
		if !ok {
			return "", false
		}
		if v.Max {
			return "@media not all and (min-width: " + w + ")", true
		}
		return "@media (min-width: " + w + ")", true
	case modifier.Breakpoint:
		if v.Max {
			return "@media (max-width: " + v.Width + ")", true
		}
		return "@media (min-width: " + v.Width + ")", true
	case modifier.Container:
		w := v.Width
		if w == "" {
			w = g.preset.Containers[v.Size]
		}
		if w == "" {
			return "", false
		}
		feature := "min-width"
		if v.Max {
			feature = "max-width"
		}
		prelude := "@container"
		if v.Name != "" {
			prelude += " " + v.Name
		}
		return prelude + " (" + feature + ": " + w + ")", true
	case modifier.DarkMode:
		if g.opts.DarkMode == DarkClass {
			return "", false
		}
		return "@media (prefers-color-scheme: dark)", true
	case modifier.Motion:
		if v.Reduce {
			return "@media (prefers-reduced-motion: reduce)", true
		}
		return "@media (prefers-reduced-motion: no-preference)", true
	case modifier.Media:
		return "@media " + v.Query, true
	case modifier.Supports:
		return "@supports " + v.Condition, true
	case modifier.Arbitrary:
		if v.AtRule != "" {
			return v.AtRule, true
		}
	}
	return "", false
}
