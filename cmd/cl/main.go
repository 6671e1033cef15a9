// Command cl is the CL language's lexer/parser/evaluator/C-lowerer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/clscript/cl/cmd/cl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
