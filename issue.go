package cssma

// Issue is a single lint finding in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "classlint"
	Text        string       `json:"Text"`        // "unrecognized class \"bg-blu-500\""
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	Class       string       `json:"Class"`       // the class the issue is about
	SourceLines []string     `json:"SourceLines"` // lines of code with the issue
	Pos         IssuePos     `json:"Pos"`
	Replacement *Replacement `json:"Replacement"` // fix, when one is known
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, first character of the class
}

// Replacement replaces InlineLength bytes at Pos with NewText. An empty
// NewText deletes the class.
type Replacement struct {
	NewText      string
	InlineLength int
}

// Issue severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names
const (
	LinterClasses   = "classlint" // unrecognized or disabled classes
	LinterCanonical = "canonical" // non-canonical spellings
	LinterConflicts = "conflicts" // classes overridden in the same attribute
)

// Issue messages
const (
	IssueUnrecognizedClass = "unrecognized class %q"
	IssueSkippedClass      = "class %q is ignored: %s"
	IssueNonCanonical      = "class %q should be written %q"
	IssueOverridden        = "class %q is overridden by %q"
	IssueDuplicate         = "class %q is repeated"
)
