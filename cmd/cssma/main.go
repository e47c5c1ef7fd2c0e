// Command cssma compiles utility classes to CSS and design properties,
// derives classes back from properties and lints class usage in source
// files.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errLintFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
