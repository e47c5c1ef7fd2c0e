// Package cssgen renders parsed classes as CSS rules and assembles them
// into stylesheets.
package cssgen

import (
	"strings"

	"go.uber.org/zap"

	"github.com/easylogic/cssma/internal/modifier"
	"github.com/easylogic/cssma/internal/theme"
	"github.com/easylogic/cssma/internal/utility"
)

// DarkStrategy selects how the dark variant is expressed.
type DarkStrategy string

// Dark mode strategies.
const (
	DarkMedia DarkStrategy = "media" // @media (prefers-color-scheme: dark)
	DarkClass DarkStrategy = "class" // .dark ancestor
)

// Options configures rule generation.
type Options struct {
	Prefix    string       // class prefix, used for group and peer markers
	Important bool         // mark every declaration !important
	DarkMode  DarkStrategy // DarkMedia when empty
	Minify    bool
}

// Rule is the CSS for one class.
type Rule struct {
	Class     string
	Selector  string
	Decls     []utility.Declaration
	Wrappers  []string // at-rule preludes, outermost first
	Important bool
	Keyframes []string

	rank  int     // stylesheet position: plain, environment, min-width, max-width, container
	width float64 // px width of the first responsive wrapper
}

// Empty reports whether the rule has no declarations.
func (r Rule) Empty() bool {
	return len(r.Decls) == 0
}

// String renders the rule with two-space indentation.
func (r Rule) String() string {
	var b strings.Builder
	for i, w := range r.Wrappers {
		indent(&b, i)
		b.WriteString(w + " {\n")
	}
	writeBody(&b, r, len(r.Wrappers))
	for i := len(r.Wrappers) - 1; i >= 0; i-- {
		indent(&b, i)
		b.WriteString("}\n")
	}
	return b.String()
}

func writeBody(b *strings.Builder, r Rule, level int) {
	indent(b, level)
	b.WriteString(r.Selector + " {\n")
	for _, d := range r.Decls {
		indent(b, level+1)
		b.WriteString(d.Property + ": " + d.Value)
		if r.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	}
	indent(b, level)
	b.WriteString("}\n")
}

func indent(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteString("  ")
	}
}

// Generator turns classes into rules. It is safe for concurrent use.
type Generator struct {
	preset *theme.Preset
	opts   Options
	log    *zap.Logger
}

// New returns a generator reading screens, containers and keyframes from p.
func New(p *theme.Preset, opts Options, log *zap.Logger) *Generator {
	if p == nil {
		p = &theme.Preset{}
	}
	if opts.DarkMode == "" {
		opts.DarkMode = DarkMedia
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{preset: p, opts: opts, log: log.Named("cssgen")}
}

// Rule builds the rule for a recognized class and its resolved output.
// Selector modifiers are applied in canonical order and wrappers are
// folded so the first one written is the outermost. A modifier the
// generator cannot express contributes nothing.
func (g *Generator) Rule(c utility.Class, out utility.Output) Rule {
	selectors, wrappers := modifier.Partition(c.Modifiers)
	r := Rule{
		Class:     c.Original,
		Selector:  g.selector(c.Original, selectors, out.Selector),
		Decls:     out.Decls,
		Important: g.opts.Important || (c.Utility != nil && c.Utility.Important),
		Keyframes: out.Keyframes,
	}
	for _, m := range wrappers {
		if _, dark := m.(modifier.DarkMode); dark && g.opts.DarkMode == DarkClass {
			r.Selector = ".dark " + r.Selector
			continue
		}
		w, ok := g.wrapper(m)
		if !ok {
			g.log.Debug("wrapper dropped", zap.String("class", c.Original), zap.String("modifier", m.Raw()))
			continue
		}
		r.Wrappers = append(r.Wrappers, w)
		g.rankWrapper(&r, m)
	}
	return r
}

// Stylesheet ranks. Lower ranks are written first so that responsive
// rules override plain ones.
const (
	rankPlain = iota
	rankEnvironment
	rankMin
	rankMax
	rankContainer
)

func (g *Generator) rankWrapper(r *Rule, m modifier.Modifier) {
	rank, width := rankEnvironment, ""
	switch v := m.(type) {
	case modifier.Responsive:
		rank, width = rankMin, g.preset.Screens[v.Name]
		if v.Max {
			rank = rankMax
		}
	case modifier.Breakpoint:
		rank, width = rankMin, v.Width
		if v.Max {
			rank = rankMax
		}
	case modifier.Container:
		rank, width = rankContainer, v.Width
		if width == "" {
			width = g.preset.Containers[v.Size]
		}
	}
	if rank <= r.rank {
		return
	}
	r.rank = rank
	r.width, _ = theme.ParseLength(width, theme.DefaultRemBase)
}
