// latexhooks bundles pre-commit style checks for LaTeX sources.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = cobra.Command{
	Use:   "latexhooks",
	Short: "Pre-commit checks for LaTeX sources",
	Long: `latexhooks bundles checks for LaTeX sources:

   ensure-labels: every sectioning command carries its canonical \label
   unique-labels: no \label identifier is defined twice
   consistent-spelling: phrases are spelled the same way everywhere

Each check prints its findings and exits non-zero when documents do not
pass, so the commands slot directly into pre-commit or CI pipelines.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
