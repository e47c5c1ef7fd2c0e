package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/easylogic/cssma"
)

const defaultConfigFile = ".cssma.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Without a koanf instance only flags that were explicitly set are
	// loaded, so flag defaults never hide file and env values.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}
	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// CSSMA_ENGINE_PREFIX -> engine.prefix, CSSMA_LINT_STRICT -> lint.strict
	if err := k.Load(env.Provider("CSSMA_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSMA_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}
	return nil
}

// buildEngineConfig constructs the engine configuration from koanf state.
func buildEngineConfig() cssma.Config {
	d := cssma.DefaultConfig()
	return cssma.Config{
		Prefix:    getStringWithFallback("prefix", "engine.prefix", d.Prefix),
		Separator: getStringWithFallback("separator", "engine.separator", d.Separator),
		Important: getBoolWithFallback("important", "engine.important", d.Important),

		EnableArbitraryValues:     getBoolWithFallback("arbitrary-values", "engine.arbitrary-values", d.EnableArbitraryValues),
		EnableStateModifiers:      getBoolWithFallback("state-modifiers", "engine.state-modifiers", d.EnableStateModifiers),
		EnableResponsiveModifiers: getBoolWithFallback("responsive-modifiers", "engine.responsive-modifiers", d.EnableResponsiveModifiers),

		ColorFormat:        getStringWithFallback("color-format", "engine.color-format", d.ColorFormat),
		OutputCSSVariables: getBoolWithFallback("css-variables", "engine.css-variables", d.OutputCSSVariables),
		UseOKLCH:           getBoolWithFallback("oklch", "engine.oklch", d.UseOKLCH),
		RemBase:            getFloat64WithFallback("rem-base", "engine.rem-base", d.RemBase),

		ColorMatch:       getStringWithFallback("color-match", "engine.color-match", d.ColorMatch),
		MaxColorDistance: getFloat64WithFallback("max-color-distance", "engine.max-color-distance", d.MaxColorDistance),

		DarkMode:          getStringWithFallback("dark-mode", "engine.dark-mode", d.DarkMode),
		DefaultFontFamily: getStringWithFallback("default-font", "engine.default-font", d.DefaultFontFamily),
		Minify:            getBoolWithFallback("minify", "engine.minify", d.Minify),
		PresetFile:        getStringWithFallback("preset", "engine.preset", d.PresetFile),
	}
}

// buildGenerateConfig constructs the generate configuration from koanf state.
func buildGenerateConfig() cssma.GenerateConfig {
	return cssma.GenerateConfig{
		ScanPaths: getStringsWithFallback("paths", "generate.paths", defaultScanPaths),
		Safelist:  getStringsWithFallback("safelist", "generate.safelist", nil),
		Output:    getStringWithFallback("output", "generate.output", ""),
	}
}

var defaultScanPaths = []string{
	"src/**/*.{html,jsx,tsx,vue,svelte}",
	"**/*.templ",
}

// buildLintConfig constructs the lint configuration from koanf state.
func buildLintConfig() cssma.LintConfig {
	return cssma.LintConfig{
		ScanPaths:          getStringsWithFallback("paths", "lint.paths", defaultScanPaths),
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		SkipCanonical:      getBoolWithFallback("skip-canonical", "lint.skip-canonical", false),
		SkipConflicts:      getBoolWithFallback("skip-conflicts", "lint.skip-conflicts", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback is getStringWithFallback for lists. A plain
// string, as set from the environment, is split on commas.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	for _, key := range []string{flagKey, configKey} {
		if !k.Exists(key) {
			continue
		}
		values := k.Strings(key)
		if len(values) == 0 {
			values = strings.Split(k.String(key), ",")
		}
		var out []string
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
