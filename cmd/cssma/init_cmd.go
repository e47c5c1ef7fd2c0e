package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssma.yaml config file",
	Long:  `Create a .cssma.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# cssma configuration

verbose: false

# Parsing and output settings
engine:
  prefix: ""
  separator: ":"
  important: false
  arbitrary-values: true
  state-modifiers: true
  responsive-modifiers: true
  color-format: hex        # hex | rgb | oklch
  css-variables: false
  oklch: false
  rem-base: 16
  dark-mode: media         # media | class
  minify: false
  preset: ""               # YAML or JSON preset file

  # Reverse conversion (properties to classes)
  color-match: exact       # exact | nearest
  max-color-distance: 0    # 0 = unbounded
  default-font: Inter

# Stylesheet generation
generate:
  paths:
    - "src/**/*.{html,jsx,tsx,vue,svelte}"
    - "**/*.templ"
  safelist: []
  output: dist/utilities.css

# Linting settings
lint:
  paths:
    - "src/**/*.{html,jsx,tsx,vue,svelte}"
    - "**/*.templ"
  strict: false
  threshold: 0.0
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
  skip-canonical: false
  skip-conflicts: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
