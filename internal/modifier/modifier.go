// Package modifier models the prefix segments of a utility class
// ("md:", "hover:", "group-focus/item:") and splits class tokens into
// modifiers and a base class.
package modifier

// Kind names a modifier variant.
type Kind string

// Modifier kinds.
const (
	KindResponsive    Kind = "responsive"
	KindBreakpoint    Kind = "breakpoint"
	KindPseudo        Kind = "pseudo"
	KindPseudoElement Kind = "pseudo-element"
	KindState         Kind = "state"
	KindGroup         Kind = "group"
	KindPeer          Kind = "peer"
	KindAttribute     Kind = "attribute"
	KindAria          Kind = "aria"
	KindData          Kind = "data"
	KindLogical       Kind = "logical"
	KindNth           Kind = "nth"
	KindNthOfType     Kind = "nth-of-type"
	KindNthLastOfType Kind = "nth-last-of-type"
	KindContainer     Kind = "container"
	KindMotion        Kind = "motion"
	KindDirection     Kind = "direction"
	KindMedia         Kind = "media"
	KindSupports      Kind = "supports"
	KindDarkMode      Kind = "dark"
	KindArbitrary     Kind = "arbitrary"
	KindUnknown       Kind = "unknown"
)

// Modifier is one classified prefix segment. The set of implementations is
// closed; switch on the concrete type.
type Modifier interface {
	Raw() string
	Kind() Kind
	modifier()
}

type seg struct{ raw string }

func (s seg) Raw() string { return s.raw }
func (seg) modifier()     {}

// Responsive is a named screen breakpoint: "md" or "max-md".
type Responsive struct {
	seg
	Name string
	Max  bool
}

// Breakpoint is an arbitrary width query: "min-[640px]" or "max-[1024px]".
type Breakpoint struct {
	seg
	Width string
	Max   bool
}

// Pseudo is a pseudo-class such as hover or first.
type Pseudo struct {
	seg
	Name string
}

// PseudoElement is a pseudo-element such as before or placeholder.
type PseudoElement struct {
	seg
	Name string
}

// State is an element state expressed as an attribute: open, inert.
type State struct {
	seg
	Name string
}

// Group conditions on an ancestor marked with the group class.
// Exactly one of State or Selector is set; Name holds the "/name" suffix.
type Group struct {
	seg
	State    string
	Selector string
	Name     string
}

// Peer conditions on a preceding sibling marked with the peer class.
type Peer struct {
	seg
	State    string
	Selector string
	Name     string
}

// Attribute is a bare attribute selector: "[open]" or "[dir=rtl]".
type Attribute struct {
	seg
	Attr  string
	Op    string // "=", "~=", "^=" ... empty for presence checks
	Value string
}

// Aria targets an aria-* attribute. Boolean shorthands (aria-checked)
// carry Value "true".
type Aria struct {
	seg
	Name  string
	Value string
}

// Data targets a data-* attribute. Value is empty for presence checks.
type Data struct {
	seg
	Name  string
	Value string
}

// Logical wraps a selector in :has() or :not().
type Logical struct {
	seg
	Op       string // "has" or "not"
	Selector string // resolved inner selector, e.g. ":checked" or "img"
}

// Nth is :nth-child (or :nth-last-child when Last).
type Nth struct {
	seg
	Value string
	Last  bool
}

// NthOfType is :nth-of-type.
type NthOfType struct {
	seg
	Value string
}

// NthLastOfType is :nth-last-of-type.
type NthLastOfType struct {
	seg
	Value string
}

// Container is a container query: "@md", "@max-lg", "@[400px]", "@md/sidebar".
type Container struct {
	seg
	Size  string // named size, empty when Width is set
	Width string // arbitrary width
	Max   bool
	Name  string
}

// Motion is motion-safe or motion-reduce.
type Motion struct {
	seg
	Reduce bool
}

// Direction is ltr or rtl.
type Direction struct {
	seg
	RTL bool
}

// Media is a named media feature variant such as print or portrait.
type Media struct {
	seg
	Name  string
	Query string
}

// Supports wraps the rule in @supports.
type Supports struct {
	seg
	Condition string
}

// DarkMode is the dark variant.
type DarkMode struct {
	seg
}

// Arbitrary is a bracketed selector "[&:nth-child(3)]" or at-rule
// "[@media(min-width:900px)]". Underscores are already decoded to spaces.
type Arbitrary struct {
	seg
	Selector string
	AtRule   string
}

// Unknown is a segment no rule recognized.
type Unknown struct {
	seg
}

func (Responsive) Kind() Kind    { return KindResponsive }
func (Breakpoint) Kind() Kind    { return KindBreakpoint }
func (Pseudo) Kind() Kind        { return KindPseudo }
func (PseudoElement) Kind() Kind { return KindPseudoElement }
func (State) Kind() Kind         { return KindState }
func (Group) Kind() Kind         { return KindGroup }
func (Peer) Kind() Kind          { return KindPeer }
func (Attribute) Kind() Kind     { return KindAttribute }
func (Aria) Kind() Kind          { return KindAria }
func (Data) Kind() Kind          { return KindData }
func (Logical) Kind() Kind       { return KindLogical }
func (Nth) Kind() Kind           { return KindNth }
func (NthOfType) Kind() Kind     { return KindNthOfType }
func (NthLastOfType) Kind() Kind { return KindNthLastOfType }
func (Container) Kind() Kind     { return KindContainer }
func (Motion) Kind() Kind        { return KindMotion }
func (Direction) Kind() Kind     { return KindDirection }
func (Media) Kind() Kind         { return KindMedia }
func (Supports) Kind() Kind      { return KindSupports }
func (DarkMode) Kind() Kind      { return KindDarkMode }
func (Arbitrary) Kind() Kind     { return KindArbitrary }
func (Unknown) Kind() Kind       { return KindUnknown }

// Family groups modifiers for feature gating.
type Family int

const (
	// FamilyEnvironment covers dark mode, motion, media, supports and direction.
	FamilyEnvironment Family = iota
	// FamilyResponsive covers screen breakpoints and container queries.
	FamilyResponsive
	// FamilyState covers every selector-affecting modifier.
	FamilyState
)

// FamilyOf returns the gating family of m.
func FamilyOf(m Modifier) Family {
	switch v := m.(type) {
	case Responsive, Breakpoint, Container:
		return FamilyResponsive
	case DarkMode, Motion, Media, Supports, Direction:
		return FamilyEnvironment
	case Arbitrary:
		if v.AtRule != "" {
			return FamilyEnvironment
		}
		return FamilyState
	default:
		return FamilyState
	}
}

// IsWrapper reports whether m produces an enclosing at-rule rather than a
// selector fragment.
func IsWrapper(m Modifier) bool {
	switch v := m.(type) {
	case Responsive, Breakpoint, Container, DarkMode, Motion, Media, Supports:
		return true
	case Arbitrary:
		return v.AtRule != ""
	}
	return false
}
