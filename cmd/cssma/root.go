package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/easylogic/cssma"
)

var rootCmd = &cobra.Command{
	Use:   "cssma",
	Short: "Utility class engine for CSS and design properties",
	Long: `Parse Tailwind-style utility classes, emit CSS rules, convert them to
design-tool node properties and derive classes back from properties.`,
	// Default behavior: run generate when no subcommand is given.
	// We must call loadConfig here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.BoolP("verbose", "v", false, "Enable verbose logging")
	f.Bool("quiet", false, "Suppress all output (exit code only)")
	f.Bool("color", false, "Force color output")
	f.String("config", defaultConfigFile, "Config file path")

	// Engine flags; each has an engine.* config key.
	f.String("prefix", "", "Required class prefix, e.g. tw-")
	f.String("separator", ":", "Modifier separator")
	f.Bool("important", false, "Mark every declaration !important")
	f.Bool("arbitrary-values", true, "Accept arbitrary values such as p-[13px]")
	f.Bool("state-modifiers", true, "Accept state modifiers such as hover:")
	f.Bool("responsive-modifiers", true, "Accept responsive modifiers such as md:")
	f.String("color-format", "hex", "Color output format: hex|rgb|oklch")
	f.Bool("css-variables", false, "Emit palette colors as var(--color-*, value)")
	f.Bool("oklch", false, "Keep oklch() preset colors as stored")
	f.Float64("rem-base", 16, "Pixels per rem")
	f.String("color-match", "exact", "Reverse color matching: exact|nearest")
	f.Float64("max-color-distance", 0, "Largest CIEDE2000 distance for nearest matching (0=unbounded)")
	f.String("dark-mode", "media", "Dark mode strategy: media|class")
	f.String("default-font", "Inter", "Font family that needs no class")
	f.Bool("minify", false, "Minify generated CSS")
	f.String("preset", "", "YAML or JSON preset file laid over the default preset")

	rootCmd.AddCommand(cssCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(propsCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// preRun loads configuration; it is the PreRunE of every engine command.
func preRun(cmd *cobra.Command, _ []string) error {
	return loadConfig(cmd)
}

// newEngine builds an engine from the loaded configuration.
func newEngine() (*cssma.Engine, error) {
	log := newLogger(getBoolWithFallback("verbose", "verbose", false), getBoolWithFallback("color", "color", false))
	return cssma.New(buildEngineConfig(), cssma.WithLogger(log))
}

// readClasses joins the arguments, or reads stdin when there are none.
func readClasses(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading classes: %w", err)
	}
	return string(data), nil
}

// printDiagnostics reports skipped classes unless --quiet is set.
func printDiagnostics(w io.Writer, diags []cssma.Diagnostic) {
	if getBoolWithFallback("quiet", "quiet", false) {
		return
	}
	useColors := getBoolWithFallback("color", "color", false)
	for _, d := range diags {
		fmt.Fprintf(w, "%s %s\n", cssma.RenderStyle(cssma.StyleYellow, "skipped:", useColors), d.String())
	}
}
