package cssma

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		width      int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"p-4\">",
			column:     15,
			width:      1,
			want:       "              ^", // 14 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<button class=\"flex\">",
			column:     17,
			want:       "\t\t              ^", // 2 tabs + 14 spaces + caret
		},
		{
			name:       "underlines the class",
			sourceLine: "<div class=\"p-4 flex-grow\">",
			column:     17,
			width:      9,
			want:       "                ^~~~~~~~~",
		},
		{
			name:       "underline stops at end of line",
			sourceLine: "class=p-4",
			column:     7,
			width:      10,
			want:       "      ^~~",
		},
		{
			name:       "start of line",
			sourceLine: "class=\"p-4\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column, tt.width)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf, printLines: true, printLinterName: true}

	r.PrintIssues([]Issue{{
		FromLinter:  LinterCanonical,
		Text:        `class "flex-grow" should be written "grow"`,
		Severity:    SeverityWarning,
		SourceLines: []string{`<div class="flex-grow">`},
		Pos:         IssuePos{Filename: "a.html", Line: 2, Column: 13},
		Replacement: &Replacement{NewText: "grow", InlineLength: 9},
	}})

	want := "a.html:2:13: class \"flex-grow\" should be written \"grow\" (canonical)\n" +
		"\t<div class=\"flex-grow\">\n" +
		"\t            ^~~~~~~~~\n" +
		"\tfix: grow\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result LintResult
		want   string
	}{
		{
			name: "no issues",
			want: "\n0 issues:\n",
		},
		{
			name: "mixed severities",
			result: LintResult{Issues: []Issue{
				{FromLinter: LinterConflicts, Severity: SeverityWarning},
				{FromLinter: LinterClasses, Severity: SeverityError},
				{FromLinter: LinterClasses, Severity: SeverityError},
			}},
			want: "\n3 issues (2 errors, 1 warning):\n* classlint: 2\n* conflicts: 1\n",
		},
		{
			name: "truncated",
			result: LintResult{
				Issues:         []Issue{{FromLinter: LinterClasses, Severity: SeverityError}},
				TruncatedCount: 4,
			},
			want: "\n1 issue (4 issues truncated):\n* classlint: 1\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &Reporter{w: &buf}
			r.PrintSummary(tt.result)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
