package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brsdoc",
	Short: "BrighterScript documentation comment transpiler",
	Long: `brsdoc turns BrighterScript documentation comments and declaration
shapes into synthetic JavaScript declarations that a JSDoc-style generator
can parse, reconciling author-written tags with the types, defaults and
visibility recovered from the declarations themselves.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
