package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/easylogic/cssma"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect <class>...",
	Aliases: []string{"explain"},
	Short:   "Show how classes are parsed and what they produce",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: preRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		var insps []cssma.Inspection
		for _, arg := range args {
			for _, tok := range strings.Fields(arg) {
				insps = append(insps, e.Inspect(tok))
			}
		}

		w := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(insps)
		}
		useColors := getBoolWithFallback("color", "color", false)
		for i, insp := range insps {
			if i > 0 {
				fmt.Fprintln(w)
			}
			cssma.WriteInspection(w, insp, useColors)
		}
		return nil
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [classes...]",
	Short: "Rewrite classes into their canonical spelling",
	Long: `Print the canonical spelling of every class: legacy aliases replaced,
explicit default values dropped and the important marker moved to the front.
Unrecognized classes are printed unchanged.`,
	PreRunE: preRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		classes, err := readClasses(cmd, args)
		if err != nil {
			return err
		}
		fields := strings.Fields(classes)
		for i, f := range fields {
			fields[i] = e.Normalize(f)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(fields, " "))
		return err
	},
}

func init() {
	inspectCmd.Flags().Bool("json", false, "Print inspections as JSON")
}
