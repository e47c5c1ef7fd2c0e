package cssma

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version         string       `json:"version"`
	Timestamp       string       `json:"timestamp"`
	Summary         JSONSummary  `json:"summary"`
	Stats           JSONStats    `json:"stats"`
	Issues          []JSONIssue  `json:"issues"`
	TopUnrecognized []ClassCount `json:"top_unrecognized"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains class usage statistics
type JSONStats struct {
	ClassStrings      int            `json:"class_strings"`
	Classes           int            `json:"classes"`
	Recognized        int            `json:"recognized"`
	RecognizedPercent float64        `json:"recognized_percentage"`
	ByCategory        map[string]int `json:"by_category"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Linter      string `json:"linter"`
	Class       string `json:"class"`
	Replacement string `json:"replacement,omitempty"`
	Source      string `json:"source,omitempty"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		replacement := ""
		if issue.Replacement != nil {
			replacement = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:        issue.Pos.Filename,
			Line:        issue.Pos.Line,
			Column:      issue.Pos.Column,
			Severity:    issue.Severity,
			Message:     issue.Text,
			Linter:      issue.FromLinter,
			Class:       issue.Class,
			Replacement: replacement,
			Source:      source,
		}
	}

	top := result.TopUnrecognized
	if top == nil {
		top = []ClassCount{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			ClassStrings:      result.ReferencesFound,
			Classes:           result.ClassesFound,
			Recognized:        result.RecognizedClasses,
			RecognizedPercent: result.UsagePercentage,
			ByCategory:        result.ParserUsage,
		},
		Issues:          jsonIssues,
		TopUnrecognized: top,
	}
}
