package utility

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/syntax"
)

// ArbitraryType is the Utility.Type of arbitrary property classes.
const ArbitraryType = "arbitrary"

var propertyName = regexp.MustCompile(`^(--[a-zA-Z0-9_-]+|-?[a-z][a-z0-9-]*)$`)

// arbitraryProperty parses [property:value] classes. The property lands in
// the category that owns it, or the arbitrary category otherwise.
type arbitraryProperty struct{}

func (arbitraryProperty) Name() string { return ArbitraryType }

func (p arbitraryProperty) IsValidClass(base string) bool {
	_, ok := p.ParseValue(base)
	return ok
}

func (arbitraryProperty) ParseValue(base string) (*Utility, bool) {
	inner, ok := syntax.Bracketed(base)
	if !ok {
		return nil, false
	}
	prop, value, ok := strings.Cut(inner, ":")
	if !ok || value == "" || !propertyName.MatchString(prop) || !syntax.WellFormed(syntax.Decode(value)) {
		return nil, false
	}
	return &Utility{
		Type:      ArbitraryType,
		Raw:       base,
		Value:     inner,
		Property:  prop,
		Arbitrary: true,
	}, true
}

func (arbitraryProperty) Resolve(u *Utility) Output {
	if u.Type != ArbitraryType {
		panic(fmt.Sprintf("utility: arbitrary parser asked to resolve %s utility %q", u.Type, u.Raw))
	}
	_, raw, _ := strings.Cut(u.Value, ":")
	value := syntax.Decode(raw)
	return Output{
		Entries: []style.Entry{style.Prop(u.Property, style.Text(value))},
		Decls:   []Declaration{decl(u.Property, value)},
	}
}
