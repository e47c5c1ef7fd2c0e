package cssma

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ClassReference is one class attribute value found in a source file.
type ClassReference struct {
	Value       string       // full attribute value: "flex items-center p-4"
	Location    FileLocation // position of the first character of Value
	Source      string       // pattern that matched, e.g. "class attribute"
	LineContent string       // the full line, trimmed
}

// ClassToken is one class of a reference with its own column.
type ClassToken struct {
	Class  string
	Column int // 1-based
}

// Tokens splits the value into classes. Fragments of template
// interpolation (${...}, {{...}}) are left out.
func (r ClassReference) Tokens() []ClassToken {
	var out []ClassToken
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		tok := r.Value[start:end]
		if !isDynamic(tok) {
			out = append(out, ClassToken{Class: tok, Column: r.Location.Column + start})
		}
		start = -1
	}
	for i := 0; i < len(r.Value); i++ {
		switch r.Value[i] {
		case ' ', '\t', '\n', '\r':
			flush(i)
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(r.Value))
	return out
}

func isDynamic(tok string) bool {
	return strings.Contains(tok, "${") || strings.Contains(tok, "{{") ||
		strings.Contains(tok, "}}") || strings.HasPrefix(tok, "{") || strings.HasSuffix(tok, "}")
}

// FileLocation tracks where a class reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based
	Text   string // full line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // files matched by the glob patterns
	FilesScanned    int // files read after filtering
	FilesSkipped    int // generated or gitignored files
	FilesFailed     int // files that could not be read
}

// scanPattern finds class strings; group 1 is the value.
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Ordered from most specific to least specific. A value matched by an
	// earlier pattern is not matched again.
	patterns = []scanPattern{
		{
			name:  "class expression with string literal",
			regex: regexp.MustCompile(`\bclass(?:Name)?=\{\s*"([^"]+)"`),
		},
		{
			name:  "class expression with template literal",
			regex: regexp.MustCompile("\\bclass(?:Name)?=\\{\\s*`([^`]+)`"),
		},
		{
			name:  "class attribute",
			regex: regexp.MustCompile(`\bclass(?:Name)?="([^"]+)"`),
		},
		{
			name:  "class attribute with single quotes",
			regex: regexp.MustCompile(`\bclass(?:Name)?='([^']+)'`),
		},
		{
			name:  "@apply rule",
			regex: regexp.MustCompile(`@apply\s+([^;{}]+?)\s*;`),
		},
	}

	// Class helper calls whose string arguments are class lists.
	classCalls = regexp.MustCompile(`\b(templ\.Classes|templ\.KV|clsx|classNames|cn)\(`)

	commentPattern = regexp.MustCompile(`^\s*//`)

	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated checks if a file is a templ-generated Go file
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// isMinified reports bundler output that would only produce noise.
func isMinified(path string) bool {
	return strings.HasSuffix(path, ".min.js") || strings.HasSuffix(path, ".min.css")
}

// loadGitIgnore loads .gitignore from the working directory once. A
// missing file disables gitignore filtering.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports generated files, and gitignored files for paths
// relative to the working directory.
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) || isMinified(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ScanFiles scans the files matching the glob patterns for class strings.
// Unreadable files are skipped and reported together in the returned
// error, next to the references found in the other files.
func ScanFiles(scanPatterns []string, log *zap.Logger) ([]ClassReference, ScanStats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("scan")
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}
	log.Debug("files discovered",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("skipped", stats.FilesSkipped))

	var (
		allRefs []ClassReference
		errs    error
	)
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			stats.FilesFailed++
			stats.FilesScanned--
			errs = multierr.Append(errs, err)
			log.Debug("scan failed", zap.String("file", file), zap.Error(err))
			continue
		}
		log.Debug("scanned", zap.String("file", file), zap.Int("references", len(refs)))
		allRefs = append(allRefs, refs...)
	}
	return allRefs, stats, errs
}

// expandGlobPatterns expands doublestar globs into de-duplicated regular
// files, dropping skipped ones.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++
			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}
	return allFiles, stats, nil
}

// scanFile scans a single file for class strings
func scanFile(filePath string) ([]ClassReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return refs, nil
}

// ScanText extracts the class strings of one in-memory file.
func ScanText(name, content string) []ClassReference {
	var refs []ClassReference
	for i, line := range strings.Split(content, "\n") {
		refs = append(refs, extractClassesFromLine(strings.TrimSuffix(line, "\r"), i+1, name)...)
	}
	return refs
}

// extractClassesFromLine extracts all class strings from a line
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []ClassReference
	taken := make(map[int]bool) // value start offsets already reported
	add := func(start, end int, source string) {
		if taken[start] || start >= end {
			return
		}
		taken[start] = true
		refs = append(refs, ClassReference{
			Value: line[start:end],
			Location: FileLocation{
				File:   file,
				Line:   lineNum,
				Column: start + 1,
				Text:   line,
			},
			Source:      source,
			LineContent: strings.TrimSpace(line),
		})
	}

	for _, m := range classCalls.FindAllStringSubmatchIndex(line, -1) {
		name := line[m[2]:m[3]]
		open := m[1] // just past "("
		args := splitCallArgs(line, open)
		if name == "templ.KV" && len(args) > 1 {
			args = args[:1]
		}
		for _, a := range args {
			if start, end, ok := stringLiteral(line, a.start, a.end); ok {
				add(start, end, name+" argument")
			}
		}
	}

	for _, p := range patterns {
		for _, m := range p.regex.FindAllStringSubmatchIndex(line, -1) {
			if len(m) < 4 || m[2] < 0 {
				continue
			}
			add(m[2], m[3], p.name)
		}
	}
	return refs
}

type span struct{ start, end int }

// splitCallArgs returns the spans of the comma-separated arguments of a
// call whose "(" ends just before open. Nested parentheses and string
// literals are skipped over. A call not closed on this line runs to the
// end of the line.
func splitCallArgs(line string, open int) []span {
	var out []span
	depth := 0
	start := open
	var quote byte
	for i := open; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
		case c == '(' || c == '{' || c == '[':
			depth++
		case c == ')' || c == '}' || c == ']':
			if depth == 0 {
				return append(out, span{start, i})
			}
			depth--
		case c == ',' && depth == 0:
			out = append(out, span{start, i})
			start = i + 1
		}
	}
	return append(out, span{start, len(line)})
}

// stringLiteral returns the content bounds of an argument that is a single
// quoted literal.
func stringLiteral(line string, start, end int) (int, int, bool) {
	for start < end && (line[start] == ' ' || line[start] == '\t') {
		start++
	}
	if start >= end {
		return 0, 0, false
	}
	q := line[start]
	if q != '"' && q != '\'' && q != '`' {
		return 0, 0, false
	}
	n := strings.IndexByte(line[start+1:end], q)
	if n < 0 || strings.TrimSpace(line[start+1+n+1:end]) != "" {
		return 0, 0, false
	}
	return start + 1, start + 1 + n, true
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}
	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}
	return rel
}
