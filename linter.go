package cssma

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/easylogic/cssma/internal/aggregate"
	"github.com/easylogic/cssma/internal/style"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths []string // glob patterns, e.g. "web/**/*.{html,tsx,templ}"
	Verbose   bool
	Strict    bool // exit with code 1 if issues are found

	SkipCanonical bool // do not report non-canonical spellings
	SkipConflicts bool // do not report overridden classes

	MaxIssuesPerLinter int  // 0 = unlimited
	MaxSameIssues      int  // 0 = unlimited
	PrintIssuedLines   bool // show source lines with issues
	PrintLinterName    bool // show the (linter) suffix
	UseColors          bool // force color output
}

// ClassCount is a class with the number of times it was seen.
type ClassCount struct {
	Class       string `json:"class"`
	Occurrences int    `json:"occurrences"`
	Suggestion  string `json:"suggestion,omitempty"`
}

// LintResult contains linting analysis results
type LintResult struct {
	// Statistics
	FilesScanned      int
	ReferencesFound   int // class strings found
	ClassesFound      int // class tokens found
	RecognizedClasses int
	UsagePercentage   float64 // share of recognized tokens
	ParserUsage       map[string]int

	Issues           []Issue
	IssuesByCategory map[string][]Issue // grouped by severity
	ErrorCount       int
	TruncatedCount   int // issues removed by the limits

	TopUnrecognized []ClassCount // most frequent unrecognized classes
	Warnings        []string
}

// Lint scans config.ScanPaths and lints every class string found.
// Unreadable files become warnings on the result.
func (e *Engine) Lint(config LintConfig) (*LintResult, error) {
	refs, stats, err := ScanFiles(config.ScanPaths, e.log)
	if err != nil && stats.FilesFailed == 0 {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	result := e.LintReferences(refs, config)
	result.FilesScanned = stats.FilesScanned
	if err != nil {
		result.Warnings = append(result.Warnings, splitErrors(err)...)
	}
	return result, nil
}

// LintReferences lints class strings that were already scanned.
func (e *Engine) LintReferences(refs []ClassReference, config LintConfig) *LintResult {
	result := &LintResult{
		ReferencesFound: len(refs),
		ParserUsage:     make(map[string]int),
	}
	unrecognized := make(map[string]int)
	suggestions := make(map[string]string)

	for _, ref := range refs {
		tokens := ref.Tokens()
		result.ClassesFound += len(tokens)
		checked := make([]checkedToken, len(tokens))
		for i, tok := range tokens {
			checked[i] = e.checkToken(tok)
			ct := checked[i]
			switch {
			case ct.applied != nil:
				result.RecognizedClasses++
				result.ParserUsage[ct.applied.Class.Utility.Type]++
			case ct.diag.Reason == aggregate.ReasonUnrecognized:
				unrecognized[tok.Class]++
				if s, ok := e.suggest(tok.Class); ok {
					suggestions[tok.Class] = s
				}
			default:
				// recognized but disabled by configuration
				result.RecognizedClasses++
			}
		}
		result.Issues = append(result.Issues, e.tokenIssues(ref, checked, config)...)
		if !config.SkipConflicts {
			result.Issues = append(result.Issues, conflictIssues(ref, checked)...)
		}
	}

	if result.ClassesFound > 0 {
		result.UsagePercentage = float64(result.RecognizedClasses) / float64(result.ClassesFound) * 100
	}
	result.TopUnrecognized = sortByFrequency(unrecognized, suggestions)

	sortIssues(result.Issues)
	result.IssuesByCategory = make(map[string][]Issue)
	for _, issue := range result.Issues {
		result.IssuesByCategory[issue.Severity] = append(result.IssuesByCategory[issue.Severity], issue)
		if issue.Severity == SeverityError {
			result.ErrorCount++
		}
	}
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}
	e.log.Debug("lint done",
		zap.Int("references", result.ReferencesFound),
		zap.Int("classes", result.ClassesFound),
		zap.Int("issues", len(result.Issues)))
	return result
}

type checkedToken struct {
	tok     ClassToken
	applied *aggregate.Applied
	diag    aggregate.Diagnostic
}

func (e *Engine) checkToken(tok ClassToken) checkedToken {
	res := e.agg.AggregateTokens([]string{tok.Class})
	ct := checkedToken{tok: tok}
	if len(res.Applied) > 0 {
		ct.applied = &res.Applied[0]
	} else if len(res.Diagnostics) > 0 {
		ct.diag = res.Diagnostics[0]
	}
	return ct
}

// tokenIssues reports skipped and non-canonical classes.
func (e *Engine) tokenIssues(ref ClassReference, checked []checkedToken, config LintConfig) []Issue {
	var issues []Issue
	for _, ct := range checked {
		tok := ct.tok
		switch {
		case ct.applied == nil && ct.diag.Reason == aggregate.ReasonUnrecognized:
			issue := newIssue(ref, tok, LinterClasses, SeverityError, fmt.Sprintf(IssueUnrecognizedClass, tok.Class))
			if s, ok := e.suggest(tok.Class); ok {
				issue.Text += fmt.Sprintf(", did you mean %q?", s)
				issue.Replacement = &Replacement{NewText: s, InlineLength: len(tok.Class)}
			}
			issues = append(issues, issue)
		case ct.applied == nil:
			issues = append(issues, newIssue(ref, tok, LinterClasses, SeverityWarning,
				fmt.Sprintf(IssueSkippedClass, tok.Class, ct.diag.Message)))
		case !config.SkipCanonical:
			if n := e.Normalize(tok.Class); n != tok.Class {
				issue := newIssue(ref, tok, LinterCanonical, SeverityWarning, fmt.Sprintf(IssueNonCanonical, tok.Class, n))
				issue.Replacement = &Replacement{NewText: n, InlineLength: len(tok.Class)}
				issues = append(issues, issue)
			}
		}
	}
	return issues
}

// suggest finds a recognized spelling for an unrecognized class: the same
// class without a stray prefix, or with the configured prefix.
func (e *Engine) suggest(class string) (string, bool) {
	_, base := e.reg.Tokenizer().Split(class)
	prefix := class[:len(class)-len(base)]
	var candidates []string
	if p := e.cfg.Prefix; p != "" && !strings.HasPrefix(strings.TrimPrefix(base, "-"), p) {
		if rest, neg := strings.CutPrefix(base, "-"); neg {
			candidates = append(candidates, "-"+p+rest)
		} else {
			candidates = append(candidates, p+base)
		}
	}
	if rest, ok := strings.CutPrefix(base, "tw-"); ok && e.cfg.Prefix != "tw-" {
		candidates = append(candidates, rest)
	}
	for _, c := range candidates {
		if e.reg.ParseClass(prefix + c).Recognized() {
			return prefix + c, true
		}
	}
	return "", false
}

// conflictIssues reports classes whose every style key is written again
// by a later class under the same modifiers.
func conflictIssues(ref ClassReference, checked []checkedToken) []Issue {
	var issues []Issue
	for i, a := range checked {
		if a.applied == nil {
			continue
		}
		keys := writtenKeys(a.applied)
		if len(keys) == 0 {
			continue
		}
		for _, b := range checked[i+1:] {
			if b.applied == nil || b.applied.Variant != a.applied.Variant {
				continue
			}
			if b.tok.Class == a.tok.Class {
				issues = append(issues, newIssue(ref, b.tok, LinterConflicts, SeverityWarning,
					fmt.Sprintf(IssueDuplicate, b.tok.Class)))
				break
			}
			if covers(writtenKeys(b.applied), keys) {
				issues = append(issues, newIssue(ref, a.tok, LinterConflicts, SeverityWarning,
					fmt.Sprintf(IssueOverridden, a.tok.Class, b.tok.Class)))
				break
			}
		}
	}
	return issues
}

// writtenKeys lists the document keys a class writes. Chained functions
// count per function, so "blur-sm" and "grayscale" do not collide. Implied
// defaults are left out.
func writtenKeys(a *aggregate.Applied) map[string]bool {
	keys := make(map[string]bool, len(a.Output.Entries))
	for _, en := range a.Output.Entries {
		switch en.Op {
		case style.OpChain:
			fn, _, _ := strings.Cut(en.Value.String(), "(")
			keys[en.Key+"/"+fn] = true
		case style.OpArbitrary:
			keys[style.CamelCase(en.Key)] = true
		case style.OpDefault:
			// implied values never override
		default:
			keys[en.Key] = true
		}
	}
	return keys
}

func covers(later, earlier map[string]bool) bool {
	for k := range earlier {
		if !later[k] {
			return false
		}
	}
	return true
}

func newIssue(ref ClassReference, tok ClassToken, linter, severity, text string) Issue {
	return Issue{
		FromLinter:  linter,
		Text:        text,
		Severity:    severity,
		Class:       tok.Class,
		SourceLines: []string{ref.Location.Text},
		Pos: IssuePos{
			Filename: ref.Location.File,
			Line:     ref.Location.Line,
			Column:   tok.Column,
		},
	}
}

func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Pos, issues[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// sortByFrequency converts a frequency map to a sorted slice, most
// frequent first.
func sortByFrequency(freq map[string]int, suggestions map[string]string) []ClassCount {
	out := make([]ClassCount, 0, len(freq))
	for class, n := range freq {
		out = append(out, ClassCount{Class: class, Occurrences: n, Suggestion: suggestions[class]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Occurrences != out[j].Occurrences {
			return out[i].Occurrences > out[j].Occurrences
		}
		return out[i].Class < out[j].Class
	})
	return out
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 {
		perLinter := make(map[string]int)
		var kept []Issue
		for _, issue := range issues {
			if perLinter[issue.FromLinter] < config.MaxIssuesPerLinter {
				kept = append(kept, issue)
				perLinter[issue.FromLinter]++
			}
		}
		issues = kept
	}
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}
	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}
	return filtered
}

func splitErrors(err error) []string {
	var out []string
	for _, e := range multierr.Errors(err) {
		out = append(out, e.Error())
	}
	return out
}
