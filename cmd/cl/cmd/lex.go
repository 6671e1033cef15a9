package cmd

import (
	"fmt"
	"os"

	"github.com/clscript/cl/internal/lexer"
	"github.com/clscript/cl/internal/token"
	"github.com/spf13/cobra"
)

var (
	showPos    bool
	showKind   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a CL file or expression",
	Long: `Tokenize a CL program and print the resulting token stream.

Examples:
  # Tokenize a script file
  cl lex script.cl

  # Tokenize inline code
  cl lex -e "int x = 42;"

  # Show token kinds and positions
  cl lex --show-kind --show-pos script.cl`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showKind, "show-kind", false, "show token kind names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(input)
	tokenCount, errorCount := 0, 0

	for {
		tok := l.NextToken()

		if onlyErrors && tok.Kind != token.ILLEGAL {
			if tok.Kind == token.EOF {
				break
			}
			continue
		}

		tokenCount++
		if tok.Kind == token.ILLEGAL {
			errorCount++
		}
		printToken(tok)

		if tok.Kind == token.EOF {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
		if errorCount > 0 {
			fmt.Printf("Errors: %d\n", errorCount)
		}
	}

	if len(l.Errors()) > 0 {
		for _, e := range l.Errors() {
			fmt.Fprintf(os.Stderr, "%s: %s\n", e.Pos, e.Msg)
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(l.Errors()))
	}

	return nil
}

func printToken(tok token.Token) {
	var output string
	if showKind {
		output = fmt.Sprintf("[%-10s]", tok.Kind)
	}

	switch {
	case tok.Kind == token.EOF:
		output += " EOF"
	case tok.Kind == token.ILLEGAL:
		output += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	case tok.Literal == "":
		output += fmt.Sprintf(" %s", tok.Kind)
	default:
		output += fmt.Sprintf(" %q", tok.Literal)
	}

	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}

	fmt.Println(output)
}
