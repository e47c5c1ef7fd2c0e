package cssma

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lintLine(t *testing.T, e *Engine, line string, config LintConfig) *LintResult {
	t.Helper()
	refs := ScanText("page.html", line)
	require.NotEmpty(t, refs, "no class string in %q", line)
	return e.LintReferences(refs, config)
}

func issueTexts(issues []Issue) []string {
	out := make([]string, len(issues))
	for i, is := range issues {
		out[i] = is.Text
	}
	return out
}

func TestLintIssues(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "clean",
			line: `<div class="flex p-4 hover:bg-red-500">`,
		},
		{
			name: "unrecognized class",
			line: `<div class="p-4 bogus-thing">`,
			want: []string{`unrecognized class "bogus-thing"`},
		},
		{
			name: "non-canonical spelling",
			line: `<div class="flex-shrink-0 p-4!">`,
			want: []string{
				`class "flex-shrink-0" should be written "shrink-0"`,
				`class "p-4!" should be written "!p-4"`,
			},
		},
		{
			name: "overridden by a later class",
			line: `<div class="pt-2 p-4">`,
			want: []string{`class "pt-2" is overridden by "p-4"`},
		},
		{
			name: "partial override is fine",
			line: `<div class="p-4 pt-2">`,
		},
		{
			name: "different variants do not conflict",
			line: `<div class="p-4 hover:p-2 md:p-8">`,
		},
		{
			name: "chained filters do not conflict",
			line: `<div class="blur-sm grayscale">`,
		},
		{
			name: "same filter twice",
			line: `<div class="blur-sm blur-lg">`,
			want: []string{`class "blur-sm" is overridden by "blur-lg"`},
		},
		{
			name: "implied display does not override",
			line: `<div class="hidden md:block flex-col">`,
		},
		{
			name: "repeated class",
			line: `<div class="p-4 m-2 p-4">`,
			want: []string{`class "p-4" is repeated`},
		},
	}

	e := newTestEngine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := lintLine(t, e, tt.line, LintConfig{})
			assert.Equal(t, tt.want, nilIfEmpty(issueTexts(res.Issues)))
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestLintIssuePositions(t *testing.T) {
	e := newTestEngine(t)
	res := lintLine(t, e, `<div class="p-4 m-2 p-4">`, LintConfig{})
	require.Len(t, res.Issues, 1)

	is := res.Issues[0]
	assert.Equal(t, LinterConflicts, is.FromLinter)
	assert.Equal(t, SeverityWarning, is.Severity)
	assert.Equal(t, "page.html", is.Pos.Filename)
	assert.Equal(t, 1, is.Pos.Line)
	assert.Equal(t, 21, is.Pos.Column, "the later p-4")
	assert.Equal(t, []string{`<div class="p-4 m-2 p-4">`}, is.SourceLines)
}

func TestLintSkipOptions(t *testing.T) {
	e := newTestEngine(t)
	line := `<div class="pt-2 flex-grow p-4">`

	all := lintLine(t, e, line, LintConfig{})
	assert.Len(t, all.Issues, 2)

	res := lintLine(t, e, line, LintConfig{SkipCanonical: true, SkipConflicts: true})
	assert.Empty(t, res.Issues)
}

func TestLintSuggestions(t *testing.T) {
	t.Run("missing prefix", func(t *testing.T) {
		e := newTestEngine(t, func(c *Config) { c.Prefix = "tw-" })
		res := lintLine(t, e, `<div class="tw-flex hover:p-4">`, LintConfig{})
		require.Len(t, res.Issues, 1)
		assert.Equal(t, `unrecognized class "hover:p-4", did you mean "hover:tw-p-4"?`, res.Issues[0].Text)
		require.NotNil(t, res.Issues[0].Replacement)
		assert.Equal(t, "hover:tw-p-4", res.Issues[0].Replacement.NewText)
	})

	t.Run("stray prefix", func(t *testing.T) {
		e := newTestEngine(t)
		res := lintLine(t, e, `<div class="tw-p-4">`, LintConfig{})
		require.Len(t, res.Issues, 1)
		assert.Equal(t, SeverityError, res.Issues[0].Severity)
		assert.Equal(t, `unrecognized class "tw-p-4", did you mean "p-4"?`, res.Issues[0].Text)
		assert.Equal(t, []ClassCount{{Class: "tw-p-4", Occurrences: 1, Suggestion: "p-4"}}, res.TopUnrecognized)
	})
}

func TestLintDisabledFeatures(t *testing.T) {
	e := newTestEngine(t, func(c *Config) { c.EnableArbitraryValues = false })
	res := lintLine(t, e, `<div class="p-[3px]">`, LintConfig{})

	require.Len(t, res.Issues, 1)
	assert.Equal(t, SeverityWarning, res.Issues[0].Severity)
	assert.Equal(t, `class "p-[3px]" is ignored: arbitrary values are disabled`, res.Issues[0].Text)
	assert.Equal(t, 1, res.RecognizedClasses)
	assert.Equal(t, 0, res.ErrorCount)
}

func TestLintStatistics(t *testing.T) {
	e := newTestEngine(t)
	refs := ScanText("a.html", "<a class=\"p-4 nope\">\n<b class=\"nope m-2 other\">")
	res := e.LintReferences(refs, LintConfig{})

	assert.Equal(t, 2, res.ReferencesFound)
	assert.Equal(t, 5, res.ClassesFound)
	assert.Equal(t, 2, res.RecognizedClasses)
	assert.InDelta(t, 40.0, res.UsagePercentage, 0.001)
	assert.Equal(t, 3, res.ErrorCount)
	assert.Len(t, res.IssuesByCategory[SeverityError], 3)
	assert.Equal(t, map[string]int{"spacing": 2}, res.ParserUsage)
	assert.Equal(t, []ClassCount{
		{Class: "nope", Occurrences: 2},
		{Class: "other", Occurrences: 1},
	}, res.TopUnrecognized)
}

func TestLintFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b.html": `<p class="bogus">`,
		"a.html": `<p class="p-4 p-4">`,
	})
	e := newTestEngine(t)
	res, err := e.Lint(LintConfig{ScanPaths: []string{filepath.Join(dir, "*.html")}})
	require.NoError(t, err)

	assert.Equal(t, 2, res.FilesScanned)
	require.Len(t, res.Issues, 2)
	assert.Equal(t, filepath.Join(dir, "a.html"), res.Issues[0].Pos.Filename, "issues are sorted by file")
	assert.Equal(t, filepath.Join(dir, "b.html"), res.Issues[1].Pos.Filename)
}

func TestLimitIssues(t *testing.T) {
	var issues []Issue
	for i := 0; i < 4; i++ {
		issues = append(issues, Issue{FromLinter: LinterClasses, Text: fmt.Sprintf(IssueUnrecognizedClass, "x")})
	}
	issues = append(issues,
		Issue{FromLinter: LinterConflicts, Text: "a"},
		Issue{FromLinter: LinterConflicts, Text: "b"},
	)

	tests := []struct {
		name          string
		config        LintConfig
		wantLen       int
		wantTruncated int
	}{
		{"per linter", LintConfig{MaxIssuesPerLinter: 1}, 2, 4},
		{"same message", LintConfig{MaxSameIssues: 2}, 4, 2},
		{"both", LintConfig{MaxIssuesPerLinter: 3, MaxSameIssues: 1}, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := limitIssues(issues, tt.config)
			assert.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestDeduplicateSameIssues(t *testing.T) {
	issues := []Issue{{Text: "a"}, {Text: "a"}, {Text: "b"}, {Text: "a"}}
	got := deduplicateSameIssues(issues, 2)
	assert.Equal(t, []Issue{{Text: "a"}, {Text: "a"}, {Text: "b"}}, got)
}
