package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cl",
	Short: "CL language lexer, parser, evaluator and C compiler",
	Long: `cl is the reference toolchain for CL, a small statically-typed
scripting language with int/float/string/bool values, lexically scoped
functions, and if/while control flow.

  cl run FILE       lex, parse, type-check and evaluate a program
  cl compile FILE   lex, parse, type-check and lower a program to C
  cl lex FILE       print the token stream
  cl parse FILE     print the parsed AST`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
