package cssma

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// GenerateConfig configures stylesheet generation from source files.
type GenerateConfig struct {
	ScanPaths []string // glob patterns of files to scan
	Safelist  []string // classes always included
	Output    string   // stylesheet path; nothing is written when empty
}

// GenerateResult reports what Generate did.
type GenerateResult struct {
	FilesScanned    int
	ReferencesFound int
	ClassesFound    int // distinct class tokens
	RulesGenerated  int
	Diagnostics     []Diagnostic // one per distinct skipped class
	Warnings        []string
	CSS             []byte
}

// Generate scans the source files and compiles every class found into
// one stylesheet.
func (e *Engine) Generate(config GenerateConfig) (*GenerateResult, error) {
	refs, stats, err := ScanFiles(config.ScanPaths, e.log)
	if err != nil && stats.FilesFailed == 0 {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result, genErr := e.GenerateFromReferences(refs, config.Safelist)
	if genErr != nil {
		return nil, genErr
	}
	result.FilesScanned = stats.FilesScanned
	if err != nil {
		result.Warnings = append(result.Warnings, splitErrors(err)...)
	}

	if config.Output != "" {
		if err := writeFile(config.Output, result.CSS); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		e.log.Debug("stylesheet written", zap.String("path", config.Output), zap.Int("bytes", len(result.CSS)))
	}
	return result, nil
}

// GenerateFromReferences compiles already scanned class strings. Each
// distinct class is compiled once, in first-seen order.
func (e *Engine) GenerateFromReferences(refs []ClassReference, safelist []string) (*GenerateResult, error) {
	result := &GenerateResult{ReferencesFound: len(refs)}

	seen := make(map[string]bool)
	var tokens []string
	add := func(class string) {
		if !seen[class] {
			seen[class] = true
			tokens = append(tokens, class)
		}
	}
	for _, class := range safelist {
		add(class)
	}
	for _, ref := range refs {
		for _, tok := range ref.Tokens() {
			add(tok.Class)
		}
	}
	result.ClassesFound = len(tokens)

	res := e.CompileTokens(tokens)
	result.Diagnostics = res.Diagnostics

	sheet := e.Stylesheet(res)
	result.RulesGenerated = sheet.Len()
	css, err := sheet.Bytes()
	if err != nil {
		return nil, fmt.Errorf("render stylesheet: %w", err)
	}
	result.CSS = css
	e.log.Debug("stylesheet generated",
		zap.Int("classes", result.ClassesFound),
		zap.Int("rules", result.RulesGenerated),
		zap.Int("skipped", len(result.Diagnostics)))
	return result, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
