package cssma

import (
	"fmt"
	"io"
	"sort"
)

// VerboseReporter prints statistics and the most frequent unrecognized
// classes.
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Class Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------")

	fmt.Fprintf(r.w, "Files Scanned:       %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Class Strings:       %d\n", result.ReferencesFound)
	fmt.Fprintf(r.w, "Classes:             %d\n", result.ClassesFound)
	fmt.Fprintf(r.w, "Recognized:          %d (%.1f%%)\n", result.RecognizedClasses, result.UsagePercentage)
	fmt.Fprintf(r.w, "Unrecognized:        %d\n", result.ClassesFound-result.RecognizedClasses)

	if len(result.ParserUsage) == 0 {
		return
	}
	names := make([]string, 0, len(result.ParserUsage))
	for name := range result.ParserUsage {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := result.ParserUsage[names[i]], result.ParserUsage[names[j]]
		if a != b {
			return a > b
		}
		return names[i] < names[j]
	})
	fmt.Fprintln(r.w, "\nBy category:")
	for _, name := range names {
		fmt.Fprintf(r.w, "  %-18s %d\n", name, result.ParserUsage[name])
	}
}

// PrintRecognition shows the share of recognized classes as a bar.
func (r *VerboseReporter) PrintRecognition(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Recognized Classes", r.useColors))
	fmt.Fprintln(r.w, "------------------")
	printProgressBar(r.w, result.UsagePercentage)
}

// PrintTopUnrecognized lists the most frequent unrecognized classes.
func (r *VerboseReporter) PrintTopUnrecognized(result LintResult) {
	if len(result.TopUnrecognized) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Most Frequent Unrecognized", r.useColors))
	fmt.Fprintln(r.w, "--------------------------")

	for i, c := range result.TopUnrecognized {
		if i >= 10 {
			break
		}
		if c.Suggestion != "" {
			fmt.Fprintf(r.w, "%d. %q - %d occurrences → Use %s\n", i+1, c.Class, c.Occurrences, c.Suggestion)
		} else {
			fmt.Fprintf(r.w, "%d. %q - %d occurrences\n", i+1, c.Class, c.Occurrences)
		}
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
