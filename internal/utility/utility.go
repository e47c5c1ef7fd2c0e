// Package utility parses base utility classes ("p-4", "bg-blue-500/50",
// "[mask-type:luminance]") with an ordered registry of category parsers and
// resolves them into style document entries and CSS declarations.
package utility

import (
	"strings"

	"github.com/easylogic/cssma/internal/modifier"
	"github.com/easylogic/cssma/internal/style"
)

// Utility is one parsed base class.
type Utility struct {
	Type           string // owning category parser, e.g. "spacing"
	Raw            string // base class as written, without prefix or important marker
	Root           string // grammar root, e.g. "p", "rounded-tl"; the whole class for keywords
	Value          string // value as written; bracket and parenthesis contents for arbitrary values
	Preset         string // preset key the value matched, if any
	Property       string // canonical property, e.g. "padding", "backgroundColor"
	Direction      string // side or corner targeted, e.g. "top", "top-left"
	Axis           string // "x" or "y" for axis utilities
	Modifier       string // text after "/" (opacity, line height)
	Negative       bool
	Arbitrary      bool // value came from [...]
	CustomProperty bool // value came from (--name)
	Important      bool
	Keyword        bool // exact keyword class with no value part
}

// Class is one class token split into modifiers and its utility. Utility is
// nil when the class was not recognized; Reason then explains why.
type Class struct {
	Original  string
	Modifiers []modifier.Modifier
	Utility   *Utility
	Reason    string
}

// Recognized reports whether the class parsed into a utility.
func (c Class) Recognized() bool {
	return c.Utility != nil
}

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Output is what a category parser produces for one utility: entries for the
// style document and the CSS it renders to.
type Output struct {
	Entries   []style.Entry
	Decls     []Declaration
	Selector  string   // appended to the class selector, e.g. " > :not([hidden]) ~ :not([hidden])"
	Keyframes []string // keyframe names the declarations reference
}

// Empty reports whether the output carries nothing.
func (o Output) Empty() bool {
	return len(o.Entries) == 0 && len(o.Decls) == 0
}

// Serialize writes u back in canonical class form. For every class c a
// parser accepts, Serialize(parse(c)) == Normalize(c).
func Serialize(u *Utility) string {
	var b strings.Builder
	if u.Important {
		b.WriteByte('!')
	}
	if u.Negative {
		b.WriteByte('-')
	}
	if u.Root == "" && u.Arbitrary {
		b.WriteString("[" + u.Value + "]")
		return b.String()
	}
	b.WriteString(u.Root)
	if u.Keyword {
		return b.String()
	}
	switch {
	case u.Arbitrary:
		b.WriteString("-[" + u.Value + "]")
	case u.CustomProperty:
		b.WriteString("-(" + u.Value + ")")
	case u.Value != "":
		b.WriteString("-" + u.Value)
	}
	if u.Modifier != "" {
		b.WriteString("/" + u.Modifier)
	}
	return b.String()
}
