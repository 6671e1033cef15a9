package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/clscript/cl/internal/ast"
	"github.com/spf13/cobra"
)

var parseExpression bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse CL source and print the AST",
	Long: `Parse CL source code and print its Abstract Syntax Tree.

If no file is provided, reads from stdin.
Use -e to parse source code given as the command-line argument; it is
parsed as a whole program, so statements need their terminating ';'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse source code given on the command line")
}

func runParse(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input, filename = args[0], "<eval>"
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input, filename = string(data), args[0]
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input, filename = string(data), "<stdin>"
	}

	prog, err := parseSource(input, filename)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Program (%d statements)\n", len(prog.Statements))
	}
	fmt.Print(ast.Print(prog))
	return nil
}
