package cmd

import (
	"fmt"
	"os"

	"github.com/clscript/cl/internal/ast"
	"github.com/clscript/cl/internal/errors"
	"github.com/clscript/cl/internal/interp"
	"github.com/clscript/cl/internal/lexer"
	"github.com/clscript/cl/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a CL program from a file or inline expression",
	Long: `Lex, parse, type-check and evaluate a CL program.

Examples:
  # Run a script file
  cl run script.cl

  # Evaluate inline code
  cl run -e 'println("Hello, World!");'

  # Run with an AST dump first
  cl run --dump-ast script.cl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the re-serialized AST before running")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	prog, perr := parseSource(input, filename)
	if perr != nil {
		return perr
	}

	if dumpAST {
		fmt.Println(ast.Print(prog))
	}

	ev := interp.New(os.Stdout)
	if err := ev.Run(prog); err != nil {
		fmt.Fprintln(os.Stderr, err.Format(true))
		return fmt.Errorf("execution failed")
	}
	return nil
}

// readSource resolves -e/inline vs. file-argument input, the shared
// shape of run/lex's argument handling.
func readSource(inline string, args []string) (input, filename string, err error) {
	if inline != "" {
		return inline, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}

// parseSource lexes and parses input, formatting the first error (lex
// or parse — whichever fires first; there is no error recovery, so the
// first one aborts) against the original source.
func parseSource(input, filename string) (*ast.Program, error) {
	l := lexer.New(input)
	p := parser.New(l)
	prog, perr := p.ParseProgram()

	// Lexical errors are discovered lazily as the parser consumes
	// tokens, so they only surface once parsing has run; a lexical
	// error always precedes any parse error built on its token stream.
	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		reportLexError(lexErrs[0], input, filename)
		return nil, fmt.Errorf("lexing failed")
	}
	if perr != nil {
		reportParseError(perr, input, filename)
		return nil, fmt.Errorf("parsing failed")
	}
	return prog, nil
}

func reportLexError(e lexer.Error, source, filename string) {
	ce := errors.NewAt(errors.KindLexError, e.Msg, e.Pos)
	ce.Source, ce.File = source, filename
	fmt.Fprintln(os.Stderr, ce.Format(true))
}

func reportParseError(e *parser.Error, source, filename string) {
	ce := errors.NewAt(errors.KindParseError, e.Msg, e.Pos)
	ce.Source, ce.File = source, filename
	fmt.Fprintln(os.Stderr, ce.Format(true))
}
