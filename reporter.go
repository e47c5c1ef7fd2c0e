package cssma

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter writes lint issues and their summary.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

func NewReporter(w io.Writer, config LintConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors: the explicit flag, then FORCE_COLOR and GitHub Actions,
// then NO_COLOR, then whether stdout is a terminal.
func shouldUseColors(config LintConfig) bool {
	switch {
	case config.UseColors, os.Getenv("FORCE_COLOR") != "", os.Getenv("GITHUB_ACTIONS") == "true":
		return true
	case os.Getenv("NO_COLOR") != "":
		return false
	}
	fi, err := os.Stdout.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// PrintIssues writes issues sorted by position, one golangci-lint style
// block per issue.
func (r *Reporter) PrintIssues(issues []Issue) {
	sortIssues(issues)
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue writes "file:line:col: message (linter)", the source line with
// the class underlined, and the fix when one is known.
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
	locStyle := StyleCyan
	if issue.Severity == SeverityError {
		locStyle = StyleRed
	}

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}
	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(locStyle, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		marker := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column, classWidth(issue))
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, marker, r.useColors))
	}
	if rep := issue.Replacement; rep != nil && rep.NewText != "" {
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleGreen, "fix: "+rep.NewText, r.useColors))
	}
}

// classWidth is the number of bytes the issue's class spans in its line.
func classWidth(issue Issue) int {
	if issue.Replacement != nil && issue.Replacement.InlineLength > 0 {
		return issue.Replacement.InlineLength
	}
	return len(issue.Class)
}

// buildCaretIndicator builds the marker line under a source line: a caret at
// column followed by "~" for the rest of the class. Tabs in the prefix are
// copied so the caret lines up; the underline never runs past the line.
func (r *Reporter) buildCaretIndicator(sourceLine string, column, width int) string {
	if column <= 0 {
		return "^"
	}
	prefixLen := min(column-1, len(sourceLine))

	var b strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
	}
	b.WriteRune('^')
	if rest := len(sourceLine) - prefixLen - 1; width > 1 && rest > 0 {
		b.WriteString(strings.Repeat("~", min(width-1, rest)))
	}
	return b.String()
}

// PrintSummary writes the issue count, split by severity when both occur,
// and a per-linter breakdown.
func (r *Reporter) PrintSummary(result LintResult) {
	total := len(result.Issues)
	var errors, warnings int
	counts := make(map[string]int)
	var linters []string
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
		if counts[issue.FromLinter] == 0 {
			linters = append(linters, issue.FromLinter)
		}
		counts[issue.FromLinter]++
	}

	var details []string
	if errors > 0 && warnings > 0 {
		details = append(details, pluralizeCount(errors, "error", "errors")+", "+pluralizeCount(warnings, "warning", "warnings"))
	}
	if result.TruncatedCount > 0 {
		details = append(details, pluralizeCount(result.TruncatedCount, "issue", "issues")+" truncated")
	}
	header := pluralizeCount(total, "issue", "issues")
	if len(details) > 0 {
		header += " (" + strings.Join(details, "; ") + ")"
	}
	fmt.Fprintf(r.w, "\n%s:\n", header)

	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, counts[linter])
	}

	if total > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: run with --output-format full for statistics and the most frequent unrecognized classes", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
