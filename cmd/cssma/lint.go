package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/easylogic/cssma"
)

// errLintFailed makes the process exit with status 1 without printing an
// error; the report has already been written.
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint utility class usage in source files",
	Long: `Check class strings in source files. Reports unrecognized classes,
classes skipped by the configuration, non-canonical spellings and classes
overridden by a later class in the same attribute.`,
	PreRunE: preRun,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd, nil)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringArray("paths", nil, "File patterns to scan for class strings (repeatable)")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Float64("threshold", 0.0, "Minimum recognized percentage for strict mode")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (linter) suffix on issues")
	f.Bool("skip-canonical", false, "Do not report non-canonical spellings")
	f.Bool("skip-conflicts", false, "Do not report overridden classes")
}

// runLint is shared between `cssma lint` and `cssma generate --lint`.
func runLint(cmd *cobra.Command, e *cssma.Engine) error {
	e, err := engineOrNew(e)
	if err != nil {
		return err
	}
	lintConfig := buildLintConfig()

	lintResult, err := e.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := cssma.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		cssma.WriteOutput(cmd.OutOrStdout(), lintResult, format, lintConfig)
	}

	// Exit code logic - "Soft Gate" approach
	if lintConfig.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(lintResult.Issues) > 0 {
			return errLintFailed
		}

		threshold := getFloat64WithFallback("threshold", "lint.threshold", 0.0)
		if threshold > 0 && lintResult.UsagePercentage < threshold {
			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "\nStrict mode: recognized %.1f%% is below threshold %.1f%%\n",
					lintResult.UsagePercentage, threshold)
			}
			return errLintFailed
		}
	} else if lintResult.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		return errLintFailed
	}
	return nil
}
