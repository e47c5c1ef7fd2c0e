package utility

import (
	"fmt"
	"strings"

	"github.com/easylogic/cssma/internal/modifier"
	"github.com/easylogic/cssma/internal/theme"
)

// Options configures class recognition.
type Options struct {
	Prefix    string // required class prefix, e.g. "tw-"
	Separator string // modifier separator, ":" when empty
}

// aliases maps legacy class names onto their canonical spelling. Legacy
// flex-grow-* and flex-shrink-* values are rewritten by prefix in strip.
var aliases = map[string]string{
	"flex-grow":         "grow",
	"flex-shrink":       "shrink",
	"overflow-ellipsis": "text-ellipsis",
	"decoration-clone":  "box-decoration-clone",
	"decoration-slice":  "box-decoration-slice",
}

// Registry is the ordered list of category parsers. It is built once and
// only read afterwards, so one registry may serve concurrent callers.
type Registry struct {
	parsers []Parser
	byName  map[string]Parser
	tok     *modifier.Tokenizer
	prefix  string
	bare    map[string]string // "root-bare" -> "root"
}

// NewRegistry builds the registry for a resolver. Parsers are consulted in
// registration order and the first one accepting a class wins.
func NewRegistry(r *theme.Resolver, opts Options) *Registry {
	p := r.Preset()
	cats := []*category{
		newLayout(r),
		newFlexboxGrid(r),
		newSpacing(r),
		newSizing(r),
		newTypography(r),
		newBackgrounds(r),
		newColors(r),
		newBorders(r),
		newEffects(r),
		newFilters(r),
		newTransforms(r),
		newTransitions(r),
		newTables(r),
		newInteractivity(r),
		newSVG(r),
		newMask(r),
	}
	g := &Registry{
		parsers: []Parser{arbitraryProperty{}},
		byName:  map[string]Parser{ArbitraryType: arbitraryProperty{}},
		tok:     modifier.NewTokenizer(opts.Separator, p.ScreenNames(), p.ContainerNames()),
		prefix:  opts.Prefix,
		bare:    make(map[string]string),
	}
	for _, c := range cats {
		if _, dup := g.byName[c.name]; dup {
			panic(fmt.Sprintf("utility: parser %q registered twice", c.name))
		}
		g.parsers = append(g.parsers, c)
		g.byName[c.name] = c
		for _, f := range c.families {
			if f.bare != "" {
				g.bare[f.root+"-"+f.bare] = f.root
			}
		}
	}
	return g
}

// Tokenizer returns the modifier tokenizer the registry splits classes with.
func (g *Registry) Tokenizer() *modifier.Tokenizer {
	return g.tok
}

// Parsers returns the parsers in dispatch order.
func (g *Registry) Parsers() []Parser {
	out := make([]Parser, len(g.parsers))
	copy(out, g.parsers)
	return out
}

// Parser returns the parser registered under name.
func (g *Registry) Parser(name string) (Parser, bool) {
	p, ok := g.byName[name]
	return p, ok
}

// ParseClass splits token into modifiers and a base class and parses the
// base. Unrecognized classes come back with a nil Utility and a Reason.
func (g *Registry) ParseClass(token string) Class {
	mods, base := g.tok.Split(token)
	c := Class{Original: token, Modifiers: mods}
	if base == "" {
		c.Reason = "empty base class"
		return c
	}
	u, ok := g.Parse(base)
	if !ok {
		c.Reason = fmt.Sprintf("no parser accepts %q", base)
		return c
	}
	c.Utility = u
	return c
}

// Parse recognizes one base class: the important marker and prefix are
// stripped, legacy aliases rewritten and the parsers tried in order.
func (g *Registry) Parse(base string) (*Utility, bool) {
	base, important := g.strip(base)
	if base == "" {
		return nil, false
	}
	for _, p := range g.parsers {
		if u, ok := p.ParseValue(base); ok {
			u.Important = important
			return u, true
		}
	}
	return nil, false
}

// strip removes the important marker and prefix and applies aliases.
func (g *Registry) strip(base string) (string, bool) {
	important := false
	if b, ok := strings.CutPrefix(base, "!"); ok {
		base, important = b, true
	} else if b, ok := strings.CutSuffix(base, "!"); ok {
		base, important = b, true
	}
	if g.prefix != "" {
		rest, neg := strings.CutPrefix(base, "-")
		rest, ok := strings.CutPrefix(rest, g.prefix)
		if !ok {
			return "", important
		}
		base = rest
		if neg {
			base = "-" + rest
		}
	}
	if a, ok := aliases[base]; ok {
		base = a
	} else if v, ok := strings.CutPrefix(base, "flex-grow-"); ok {
		base = "grow-" + v
	} else if v, ok := strings.CutPrefix(base, "flex-shrink-"); ok {
		base = "shrink-" + v
	}
	return base, important
}

// Resolve hands u to the parser that produced it.
func (g *Registry) Resolve(u *Utility) Output {
	p, ok := g.byName[u.Type]
	if !ok {
		panic(fmt.Sprintf("utility: no parser named %q", u.Type))
	}
	return p.Resolve(u)
}

// Normalize rewrites a base class into the canonical spelling Serialize
// produces: a leading important marker, no prefix, aliases applied and an
// explicit bare value dropped ("shrink-1" is "shrink").
func (g *Registry) Normalize(base string) string {
	stripped, important := g.strip(base)
	if stripped == "" {
		return base
	}
	rest, neg := strings.CutPrefix(stripped, "-")
	if root, ok := g.bare[rest]; ok {
		rest = root
	}
	if neg {
		rest = "-" + rest
	}
	if important {
		rest = "!" + rest
	}
	return rest
}
