package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/easylogic/cssma"
)

var propsCmd = &cobra.Command{
	Use:   "props [classes...]",
	Short: "Convert utility classes to design node properties",
	Long: `Aggregate class strings and print the properties of a design node as
JSON. Conditioned classes are ignored unless --variant selects them.`,
	PreRunE: preRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := nodeKind(cmd)
		if err != nil {
			return err
		}
		e, err := newEngine()
		if err != nil {
			return err
		}
		classes, err := readClasses(cmd, args)
		if err != nil {
			return err
		}

		res := e.Compile(classes)
		p := e.Properties(res, kind)
		if variant, _ := cmd.Flags().GetString("variant"); variant != "" {
			vp, ok := e.VariantProperties(res, variant, kind)
			if !ok {
				return fmt.Errorf("no classes use variant %q (have %v)", variant, res.VariantKeys())
			}
			p = vp
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return err
		}
		printDiagnostics(cmd.ErrOrStderr(), res.Diagnostics)
		return nil
	},
}

var reverseCmd = &cobra.Command{
	Use:   "reverse [file]",
	Short: "Derive utility classes from design node properties",
	Long: `Read node properties as JSON (comments and trailing commas allowed)
from a file, or from stdin, and print the classes that reproduce them.
The conversion is lossy: only the first solid fill and the first image fill
are kept.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: preRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := nodeKind(cmd)
		if err != nil {
			return err
		}
		e, err := newEngine()
		if err != nil {
			return err
		}

		var data []byte
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("reading properties: %w", err)
		}
		var p cssma.Properties
		if err := json.Unmarshal(jsonc.ToJSON(data), &p); err != nil {
			return fmt.Errorf("decoding properties: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), e.Reverse(&p, kind))
		return err
	},
}

func init() {
	for _, c := range []*cobra.Command{propsCmd, reverseCmd} {
		c.Flags().String("kind", "frame", "Node kind: frame|text|vector")
	}
	propsCmd.Flags().String("variant", "", `Variant key to convert instead of the base, e.g. "hover" or "md:dark"`)
}

func nodeKind(cmd *cobra.Command) (cssma.NodeKind, error) {
	kind, _ := cmd.Flags().GetString("kind")
	switch k := cssma.NodeKind(kind); k {
	case cssma.FrameNode, cssma.TextNode, cssma.VectorNode:
		return k, nil
	}
	return "", fmt.Errorf("invalid node kind %q (want frame, text or vector)", kind)
}
