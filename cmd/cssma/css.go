package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/easylogic/cssma/internal/cssgen"
)

var cssCmd = &cobra.Command{
	Use:   "css [classes...]",
	Short: "Compile utility classes to CSS",
	Long: `Compile class strings to a stylesheet. Classes are read from the
arguments, or from stdin when there are none. Skipped classes are reported
on stderr.`,
	PreRunE: preRun,
	RunE:    runCSS,
}

func init() {
	cssCmd.Flags().Bool("verify", false, "Parse the generated CSS back and fail if it is malformed")
}

func runCSS(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	classes, err := readClasses(cmd, args)
	if err != nil {
		return err
	}

	res := e.Compile(classes)
	css, err := e.CSS(res)
	if err != nil {
		return fmt.Errorf("rendering CSS: %w", err)
	}
	if getBoolWithFallback("verify", "css.verify", false) {
		if _, err := cssgen.ParseStylesheet(string(css)); err != nil {
			return fmt.Errorf("generated CSS does not parse: %w", err)
		}
	}

	if _, err := cmd.OutOrStdout().Write(css); err != nil {
		return err
	}
	printDiagnostics(cmd.ErrOrStderr(), res.Diagnostics)
	return nil
}
