package cssma

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// OutputFormat selects how lint results are written.
type OutputFormat string

// Output formats
const (
	OutputIssues   OutputFormat = "issues"   // golangci-lint style issues and a summary
	OutputSummary  OutputFormat = "summary"  // statistics only
	OutputFull     OutputFormat = "full"     // issues and statistics
	OutputJSON     OutputFormat = "json"     // machine readable export
	OutputMarkdown OutputFormat = "markdown" // report for pull request comments
)

// DetermineOutputFormat selects the output format from the flag value
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}
	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format: issues
// only, like golangci-lint.
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		verboseReporter := NewVerboseReporter(w, shouldUseColors(config))
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintRecognition(*result)
		verboseReporter.PrintTopUnrecognized(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verboseReporter := NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintRecognition(*result)
		verboseReporter.PrintTopUnrecognized(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			os.Stderr.WriteString("Error writing Markdown: " + err.Error() + "\n")
		}
	}
}

// WriteMarkdown writes the lint result as a Markdown report.
func WriteMarkdown(w io.Writer, result *LintResult) error {
	var b strings.Builder
	b.WriteString("## Utility class report\n\n")
	fmt.Fprintf(&b, "| Files | Classes | Recognized | Issues |\n|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d (%.1f%%) | %d |\n",
		result.FilesScanned, result.ClassesFound, result.RecognizedClasses, result.UsagePercentage, len(result.Issues))

	if len(result.Issues) > 0 {
		b.WriteString("\n### Issues\n\n| Location | Severity | Message |\n|---|---|---|\n")
		for _, issue := range result.Issues {
			severity := issue.Severity
			if severity == SeverityInfo {
				severity = "info"
			}
			fmt.Fprintf(&b, "| `%s:%d:%d` | %s | %s |\n",
				issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column, severity, escapeMarkdownCell(issue.Text))
		}
	}

	if len(result.TopUnrecognized) > 0 {
		b.WriteString("\n### Most frequent unrecognized classes\n\n")
		for i, c := range result.TopUnrecognized {
			if i >= 10 {
				break
			}
			fmt.Fprintf(&b, "%d. `%s` (%d)", i+1, c.Class, c.Occurrences)
			if c.Suggestion != "" {
				fmt.Fprintf(&b, ": use `%s`", c.Suggestion)
			}
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
