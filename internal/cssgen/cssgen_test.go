package cssgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easylogic/cssma/internal/theme"
	"github.com/easylogic/cssma/internal/utility"
)

type fixture struct {
	reg *utility.Registry
	gen *Generator
}

func newFixture(t *testing.T, opts Options) fixture {
	t.Helper()
	p := theme.Default()
	r := theme.NewResolver(p, theme.Options{})
	return fixture{
		reg: utility.NewRegistry(r, utility.Options{Prefix: opts.Prefix}),
		gen: New(p, opts, nil),
	}
}

func (f fixture) rule(t *testing.T, token string) Rule {
	t.Helper()
	c := f.reg.ParseClass(token)
	require.True(t, c.Recognized(), "%s: %s", token, c.Reason)
	return f.gen.Rule(c, f.reg.Resolve(c.Utility))
}

func (f fixture) sheet(t *testing.T, tokens ...string) *Stylesheet {
	t.Helper()
	s := f.gen.NewStylesheet()
	for _, tok := range tokens {
		s.AddRule(f.rule(t, tok))
	}
	return s
}

func TestEscape(t *testing.T) {
	tests := []struct {
		class string
		want  string
	}{
		{"p-4", "p-4"},
		{"-m-4", "-m-4"},
		{"md:p-4", `md\:p-4`},
		{"w-1/2", `w-1\/2`},
		{"p-0.5", `p-0\.5`},
		{"p-[16px]", `p-\[16px\]`},
		{"!p-4", `\!p-4`},
		{"2xl:p-4", `\32 xl\:p-4`},
		{"[&>*]:p-4", `\[\&\>\*\]\:p-4`},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.class))
		})
	}
}

func TestResponsiveHoverScenario(t *testing.T) {
	f := newFixture(t, Options{})
	r := f.rule(t, "md:hover:rounded-lg")

	assert.Equal(t, `.md\:hover\:rounded-lg:hover`, r.Selector)
	assert.Equal(t, []string{"@media (min-width: 768px)"}, r.Wrappers)

	want := "@media (min-width: 768px) {\n" +
		"  .md\\:hover\\:rounded-lg:hover {\n" +
		"    border-radius: 0.5rem;\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, want, r.String())

	rules, err := ParseStylesheet(r.String())
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Len(t, rules[0].AtRules, 1)
	assert.Contains(t, rules[0].AtRules[0], "min-width")
	assert.Contains(t, rules[0].AtRules[0], "768px")
	assert.Equal(t, `.md\:hover\:rounded-lg:hover`, rules[0].Selector)
	v, ok := rules[0].Get("border-radius")
	require.True(t, ok)
	assert.Equal(t, "0.5rem", v)
}

func TestSelectors(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"hover:focus:p-4", `.hover\:focus\:p-4:hover:focus`},
		{"before:hover:p-4", `.before\:hover\:p-4:hover::before`},
		{"group-hover:p-4", `.group:hover .group-hover\:p-4`},
		{"peer-checked:p-4", `.peer:checked ~ .peer-checked\:p-4`},
		{"aria-checked:p-4", `.aria-checked\:p-4[aria-checked="true"]`},
		{"data-active:p-4", `.data-active\:p-4[data-active]`},
		{"has-[img]:p-4", `.has-\[img\]\:p-4:has(img)`},
		{"nth-3:p-4", `.nth-3\:p-4:nth-child(3)`},
		{"rtl:p-4", `[dir="rtl"] .rtl\:p-4`},
		{"[&>*]:p-4", `.\[\&\>\*\]\:p-4>*`},
		{"open:p-4", `.open\:p-4[open]`},
		{"space-x-4", `.space-x-4 > :not([hidden]) ~ :not([hidden])`},
	}
	f := newFixture(t, Options{})
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, f.rule(t, tt.token).Selector)
		})
	}
}

func TestGroupMarkerUsesPrefix(t *testing.T) {
	f := newFixture(t, Options{Prefix: "tw-"})
	r := f.rule(t, "group-hover:tw-p-4")
	assert.Equal(t, `.tw-group:hover .group-hover\:tw-p-4`, r.Selector)
}

func TestWrappers(t *testing.T) {
	tests := []struct {
		token string
		want  []string
	}{
		{"dark:p-4", []string{"@media (prefers-color-scheme: dark)"}},
		{"max-md:p-4", []string{"@media not all and (min-width: 768px)"}},
		{"min-[900px]:p-4", []string{"@media (min-width: 900px)"}},
		{"max-[600px]:p-4", []string{"@media (max-width: 600px)"}},
		{"motion-reduce:p-4", []string{"@media (prefers-reduced-motion: reduce)"}},
		{"motion-safe:p-4", []string{"@media (prefers-reduced-motion: no-preference)"}},
		{"print:p-4", []string{"@media print"}},
		{"supports-[display:grid]:p-4", []string{"@supports (display: grid)"}},
		{"@md:p-4", []string{"@container (min-width: 28rem)"}},
		{"[@media(hover:hover)]:p-4", []string{"@media(hover:hover)"}},
		{"md:dark:p-4", []string{"@media (min-width: 768px)", "@media (prefers-color-scheme: dark)"}},
	}
	f := newFixture(t, Options{})
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, f.rule(t, tt.token).Wrappers)
		})
	}
}

func TestDarkClassStrategy(t *testing.T) {
	f := newFixture(t, Options{DarkMode: DarkClass})
	r := f.rule(t, "dark:hover:p-4")
	assert.Empty(t, r.Wrappers)
	assert.Equal(t, `.dark .dark\:hover\:p-4:hover`, r.Selector)
}

func TestImportant(t *testing.T) {
	f := newFixture(t, Options{})
	assert.Contains(t, f.rule(t, "!p-4").String(), "padding: 1rem !important;")
	assert.NotContains(t, f.rule(t, "p-4").String(), "!important")

	forced := newFixture(t, Options{Important: true})
	assert.Contains(t, forced.rule(t, "p-4").String(), "padding: 1rem !important;")
}

func TestStylesheetOrder(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.sheet(t, "md:p-4", "max-md:p-5", "p-2", "@sm:p-7", "sm:p-1", "max-lg:p-3", "dark:p-6", "m-1")

	var got []string
	for _, r := range s.Rules() {
		got = append(got, r.Class)
	}
	assert.Equal(t, []string{"p-2", "m-1", "dark:p-6", "sm:p-1", "md:p-4", "max-lg:p-3", "max-md:p-5", "@sm:p-7"}, got)
}

func TestStylesheetDedupe(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.gen.NewStylesheet()
	assert.True(t, s.AddRule(f.rule(t, "p-4")))
	assert.False(t, s.AddRule(f.rule(t, "p-4")))
	assert.False(t, s.AddRule(Rule{Class: "empty", Selector: ".empty"}))
	assert.Equal(t, 1, s.Len())
}

func TestStylesheetGroupsWrappers(t *testing.T) {
	f := newFixture(t, Options{})
	out := f.sheet(t, "md:p-4", "md:m-2").String()
	assert.Equal(t, 1, strings.Count(out, "@media (min-width: 768px) {"))

	rules, err := ParseStylesheet(out)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, `.md\:p-4`, rules[0].Selector)
	assert.Equal(t, `.md\:m-2`, rules[1].Selector)
}

func TestStylesheetKeyframes(t *testing.T) {
	f := newFixture(t, Options{})
	out := f.sheet(t, "animate-spin", "hover:animate-spin").String()
	assert.Equal(t, 1, strings.Count(out, "@keyframes spin {"))
	assert.Contains(t, out, "to { transform: rotate(360deg); }")
}

func TestStylesheetDefaults(t *testing.T) {
	f := newFixture(t, Options{})

	plain := f.sheet(t, "p-4").String()
	assert.NotContains(t, plain, "::before")

	filtered := f.sheet(t, "blur-sm").String()
	assert.True(t, strings.HasPrefix(filtered, "*, ::before, ::after {\n"))
	assert.Contains(t, filtered, "--tw-blur: ")
	assert.Contains(t, filtered, "--tw-blur: blur(4px);")
	assert.NotContains(t, filtered, "--tw-rotate")

	_, err := ParseStylesheet(filtered)
	require.NoError(t, err)
}

func TestStylesheetMinify(t *testing.T) {
	f := newFixture(t, Options{Minify: true})
	data, err := f.sheet(t, "p-4", "md:hover:rounded-lg").Bytes()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, ".p-4{padding:1rem}")
	assert.NotContains(t, out, "\n  ")
}

func TestParseStylesheetCustomProperties(t *testing.T) {
	rules, err := ParseStylesheet(".a { --x: 1; color: red; }\n@supports (display: grid) { .b { display: grid; } }")
	require.NoError(t, err)
	require.Len(t, rules, 2)

	v, ok := rules[0].Get("--x")
	require.True(t, ok)
	assert.Equal(t, "1", v)
	v, _ = rules[0].Get("color")
	assert.Equal(t, "red", v)

	assert.Equal(t, ".b", rules[1].Selector)
	require.Len(t, rules[1].AtRules, 1)
	assert.True(t, strings.HasPrefix(rules[1].AtRules[0], "@supports"))
}
