package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/easylogic/cssma"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a stylesheet from the classes used in source files",
	Long: `Scan source files for class strings and compile every class found into
one stylesheet. The stylesheet is written to --output, or to stdout when no
output is configured.`,
	PreRunE: preRun,
	RunE:    runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringArray("paths", nil, "File patterns to scan for class strings (repeatable)")
	f.StringSlice("safelist", nil, "Classes to always include")
	f.StringP("output", "o", "", "Stylesheet path")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	config := buildGenerateConfig()

	result, err := e.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if config.Output == "" {
		if _, err := cmd.OutOrStdout().Write(result.CSS); err != nil {
			return err
		}
	}
	if !quiet {
		w := cmd.ErrOrStderr()
		if config.Output != "" {
			fmt.Fprintf(w, "Generated %s\n", cssma.GetRelativePath(config.Output))
		}
		fmt.Fprintf(w, "  Files scanned: %d\n", result.FilesScanned)
		fmt.Fprintf(w, "  Classes found: %d\n", result.ClassesFound)
		fmt.Fprintf(w, "  Rules generated: %d\n", result.RulesGenerated)
		if n := len(result.Diagnostics); n > 0 {
			fmt.Fprintf(w, "  Classes skipped: %d (run lint for details)\n", n)
		}
		for _, warn := range result.Warnings {
			fmt.Fprintf(w, "  Warning: %s\n", warn)
		}
	}

	// Run lint after generate if --lint flag set
	if lint, _ := cmd.Flags().GetBool("lint"); lint {
		return runLint(cmd, e)
	}
	return nil
}

// engineOrNew returns e, or a new engine when e is nil.
func engineOrNew(e *cssma.Engine) (*cssma.Engine, error) {
	if e != nil {
		return e, nil
	}
	return newEngine()
}
