package cssma

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{
			name:     "explicit quiet flag",
			quiet:    true,
			expected: OutputIssues,
		},
		{
			name:       "explicit summary format",
			formatFlag: "summary",
			expected:   OutputSummary,
		},
		{
			name:       "explicit full format",
			formatFlag: "full",
			expected:   OutputFull,
		},
		{
			name:       "explicit json format",
			formatFlag: "json",
			expected:   OutputJSON,
		},
		{
			name:       "markdown shorthand (md)",
			formatFlag: "md",
			expected:   OutputMarkdown,
		},
		{
			name:       "unknown format falls back to issues",
			formatFlag: "xml",
			expected:   OutputIssues,
		},
		{
			name:       "quiet overrides format flag",
			formatFlag: "full",
			quiet:      true,
			expected:   OutputIssues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func sampleResult() *LintResult {
	return &LintResult{
		FilesScanned:      3,
		ReferencesFound:   12,
		ClassesFound:      40,
		RecognizedClasses: 38,
		UsagePercentage:   95,
		ParserUsage:       map[string]int{"spacing": 20, "colors": 18},
		TruncatedCount:    1,
		Issues: []Issue{
			{
				FromLinter:  LinterClasses,
				Text:        `unrecognized class "tw-p-4", did you mean "p-4"?`,
				Severity:    SeverityError,
				Class:       "tw-p-4",
				SourceLines: []string{`<div class="tw-p-4">`},
				Pos:         IssuePos{Filename: "a.html", Line: 4, Column: 13},
				Replacement: &Replacement{NewText: "p-4", InlineLength: 6},
			},
			{
				FromLinter: LinterConflicts,
				Text:       `class "a|b" is repeated`,
				Severity:   SeverityWarning,
				Class:      "a|b",
				Pos:        IssuePos{Filename: "b.html", Line: 1, Column: 2},
			},
		},
		TopUnrecognized: []ClassCount{{Class: "tw-p-4", Occurrences: 2, Suggestion: "p-4"}},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.NotEmpty(t, output.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 2, Errors: 1, Warnings: 1, Truncated: 1, FilesScanned: 3}, output.Summary)
	assert.Equal(t, 12, output.Stats.ClassStrings)
	assert.Equal(t, 40, output.Stats.Classes)
	assert.InDelta(t, 95.0, output.Stats.RecognizedPercent, 0.01)
	assert.Equal(t, 20, output.Stats.ByCategory["spacing"])

	require.Len(t, output.Issues, 2)
	assert.Equal(t, JSONIssue{
		File:        "a.html",
		Line:        4,
		Column:      13,
		Severity:    "error",
		Message:     `unrecognized class "tw-p-4", did you mean "p-4"?`,
		Linter:      "classlint",
		Class:       "tw-p-4",
		Replacement: "p-4",
		Source:      `<div class="tw-p-4">`,
	}, output.Issues[0])
	assert.Empty(t, output.Issues[1].Replacement)
	assert.Equal(t, sampleResult().TopUnrecognized, output.TopUnrecognized)
}

func TestBuildJSONOutputEmpty(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	out := buildJSONOutput(&LintResult{}, now)

	assert.Equal(t, "2024-05-01T12:00:00Z", out.Timestamp)
	assert.NotNil(t, out.Issues)
	assert.NotNil(t, out.TopUnrecognized)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"issues":[]`)
	assert.Contains(t, string(data), `"top_unrecognized":[]`)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleResult()))
	markdown := buf.String()

	assert.Contains(t, markdown, "## Utility class report")
	assert.Contains(t, markdown, "| 3 | 40 | 38 (95.0%) | 2 |")
	assert.Contains(t, markdown, "| `a.html:4:13` | error | unrecognized class \"tw-p-4\", did you mean \"p-4\"? |")
	assert.Contains(t, markdown, `class "a\|b" is repeated`)
	assert.Contains(t, markdown, "1. `tw-p-4` (2): use `p-4`")
}

func TestWriteMarkdownWithoutIssues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, &LintResult{}))
	assert.NotContains(t, buf.String(), "### Issues")
	assert.NotContains(t, buf.String(), "### Most frequent")
}

func TestWriteOutputSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteOutput(&buf, sampleResult(), OutputSummary, LintConfig{})
	out := buf.String()

	assert.Contains(t, out, "Class Statistics")
	assert.Contains(t, out, "Recognized:          38 (95.0%)")
	assert.Contains(t, out, "] 95.0%")
	assert.Contains(t, out, `1. "tw-p-4" - 2 occurrences → Use p-4`)
}
