package cssgen

import (
	"io"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	"go.uber.org/zap"

	"github.com/easylogic/cssma/internal/utility"
)

// twDefaults are the initial values of the custom properties composite
// utilities read. Only the ones a stylesheet references are written.
var twDefaults = []struct{ name, value string }{
	{"--tw-border-spacing-x", "0"},
	{"--tw-border-spacing-y", "0"},
	{"--tw-translate-x", "0"},
	{"--tw-translate-y", "0"},
	{"--tw-rotate", "0"},
	{"--tw-skew-x", "0"},
	{"--tw-skew-y", "0"},
	{"--tw-scale-x", "1"},
	{"--tw-scale-y", "1"},
	{"--tw-scroll-snap-strictness", "proximity"},
	{"--tw-gradient-from-position", " "},
	{"--tw-gradient-via-position", " "},
	{"--tw-gradient-to-position", " "},
	{"--tw-ring-inset", " "},
	{"--tw-ring-offset-width", "0px"},
	{"--tw-ring-offset-color", "#fff"},
	{"--tw-ring-color", "rgb(59 130 246 / 0.5)"},
	{"--tw-ring-offset-shadow", "0 0 #0000"},
	{"--tw-ring-shadow", "0 0 #0000"},
	{"--tw-shadow", "0 0 #0000"},
	{"--tw-shadow-colored", "0 0 #0000"},
	{"--tw-blur", " "},
	{"--tw-brightness", " "},
	{"--tw-contrast", " "},
	{"--tw-grayscale", " "},
	{"--tw-hue-rotate", " "},
	{"--tw-invert", " "},
	{"--tw-saturate", " "},
	{"--tw-sepia", " "},
	{"--tw-drop-shadow", " "},
	{"--tw-backdrop-blur", " "},
	{"--tw-backdrop-brightness", " "},
	{"--tw-backdrop-contrast", " "},
	{"--tw-backdrop-grayscale", " "},
	{"--tw-backdrop-hue-rotate", " "},
	{"--tw-backdrop-invert", " "},
	{"--tw-backdrop-opacity", " "},
	{"--tw-backdrop-saturate", " "},
	{"--tw-backdrop-sepia", " "},
}

var varRef = regexp.MustCompile(`var\((--tw-[a-z-]+)`)

// Stylesheet collects rules, dropping exact duplicates. It is not safe for
// concurrent use.
type Stylesheet struct {
	g         *Generator
	rules     []Rule
	seen      map[uint64]struct{}
	keyframes []string
	frameSet  map[string]bool
}

// NewStylesheet returns an empty stylesheet bound to g's options.
func (g *Generator) NewStylesheet() *Stylesheet {
	return &Stylesheet{g: g, seen: make(map[uint64]struct{}), frameSet: make(map[string]bool)}
}

// Add builds and adds the rule for one class. It reports whether the rule
// was new.
func (s *Stylesheet) Add(c utility.Class, out utility.Output) bool {
	return s.AddRule(s.g.Rule(c, out))
}

// AddRule adds a built rule. Empty rules and duplicates are ignored.
func (s *Stylesheet) AddRule(r Rule) bool {
	if r.Empty() {
		return false
	}
	h := xxhash.Sum64String(r.String())
	if _, dup := s.seen[h]; dup {
		s.g.log.Debug("duplicate rule", zap.String("class", r.Class))
		return false
	}
	s.seen[h] = struct{}{}
	s.rules = append(s.rules, r)
	for _, k := range r.Keyframes {
		if !s.frameSet[k] {
			s.frameSet[k] = true
			s.keyframes = append(s.keyframes, k)
		}
	}
	return true
}

// Len returns the number of rules.
func (s *Stylesheet) Len() int {
	return len(s.rules)
}

// Rules returns the rules in output order: plain rules in insertion order,
// then environment variants, then min-width queries by ascending width,
// max-width queries by descending width and container queries.
func (s *Stylesheet) Rules() []Rule {
	out := append([]Rule(nil), s.rules...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		if a.rank == rankMax {
			return a.width > b.width
		}
		return a.width < b.width
	})
	return out
}

// String renders the stylesheet. Consecutive rules sharing the same
// wrappers are written inside one at-rule block.
func (s *Stylesheet) String() string {
	var b strings.Builder
	rules := s.Rules()
	s.writeDefaults(&b, rules)
	for i := 0; i < len(rules); {
		j := i + 1
		for j < len(rules) && slices.Equal(rules[i].Wrappers, rules[j].Wrappers) {
			j++
		}
		ws := rules[i].Wrappers
		for k, w := range ws {
			indent(&b, k)
			b.WriteString(w + " {\n")
		}
		for _, r := range rules[i:j] {
			writeBody(&b, r, len(ws))
		}
		for k := len(ws) - 1; k >= 0; k-- {
			indent(&b, k)
			b.WriteString("}\n")
		}
		i = j
	}
	for _, name := range s.keyframes {
		body, ok := s.g.preset.Keyframes[name]
		if !ok {
			continue
		}
		b.WriteString("@keyframes " + name + " {\n  " + body + "\n}\n")
	}
	return b.String()
}

// Bytes renders the stylesheet, minified when the generator was built with
// Minify.
func (s *Stylesheet) Bytes() ([]byte, error) {
	text := s.String()
	if !s.g.opts.Minify {
		return []byte(text), nil
	}
	return Minify(text)
}

// WriteTo writes Bytes to w.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	data, err := s.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Minify minifies CSS text.
func Minify(text string) ([]byte, error) {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	return m.Bytes("text/css", []byte(text))
}

func (s *Stylesheet) writeDefaults(b *strings.Builder, rules []Rule) {
	used := make(map[string]bool)
	for _, r := range rules {
		for _, d := range r.Decls {
			for _, m := range varRef.FindAllStringSubmatch(d.Value, -1) {
				used[m[1]] = true
			}
		}
	}
	var lines []string
	for _, d := range twDefaults {
		if used[d.name] {
			lines = append(lines, "  "+d.name+": "+d.value+";\n")
		}
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString("*, ::before, ::after {\n")
	for _, l := range lines {
		b.WriteString(l)
	}
	b.WriteString("}\n")
}
