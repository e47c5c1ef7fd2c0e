package modifier

import (
	"sort"
	"strings"
)

// selectorPriority is the canonical order of selector-affecting modifiers.
// Pseudo-elements always come last since nothing may follow them.
var selectorPriority = map[Kind]int{
	KindDirection:     0,
	KindGroup:         1,
	KindPeer:          2,
	KindAttribute:     3,
	KindAria:          4,
	KindData:          5,
	KindState:         6,
	KindLogical:       7,
	KindNth:           8,
	KindNthOfType:     9,
	KindNthLastOfType: 10,
	KindPseudo:        11,
	KindArbitrary:     12,
	KindPseudoElement: 13,
}

// Priority returns the canonical position of a selector-affecting modifier.
// Wrappers and unknown segments sort after every selector modifier.
func Priority(m Modifier) int {
	if IsWrapper(m) {
		return len(selectorPriority)
	}
	if p, ok := selectorPriority[m.Kind()]; ok {
		return p
	}
	return len(selectorPriority) + 1
}

// Partition separates wrappers (kept in source order) from selector
// modifiers (sorted canonically).
func Partition(mods []Modifier) (selectors, wrappers []Modifier) {
	for _, m := range mods {
		if IsWrapper(m) {
			wrappers = append(wrappers, m)
		} else {
			selectors = append(selectors, m)
		}
	}
	sort.SliceStable(selectors, func(i, j int) bool {
		return Priority(selectors[i]) < Priority(selectors[j])
	})
	return selectors, wrappers
}

// Key returns the canonical variant key for mods, e.g. "md:dark:hover".
// Two modifier lists that select the same variant share a key.
func Key(mods []Modifier) string {
	if len(mods) == 0 {
		return ""
	}
	selectors, wrappers := Partition(mods)
	parts := make([]string, 0, len(mods))
	for _, m := range wrappers {
		parts = append(parts, m.Raw())
	}
	for _, m := range selectors {
		parts = append(parts, m.Raw())
	}
	return strings.Join(parts, ":")
}

// HasUnknown reports whether any modifier is Unknown.
func HasUnknown(mods []Modifier) (Unknown, bool) {
	for _, m := range mods {
		if u, ok := m.(Unknown); ok {
			return u, true
		}
	}
	return Unknown{}, false
}
