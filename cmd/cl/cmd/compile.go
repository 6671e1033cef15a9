package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/clscript/cl/internal/codegen"
	"github.com/clscript/cl/internal/interp"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

var (
	outputFile    string
	skipTypeCheck bool
	buildBinary   bool
	compileVerbose bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Lower a CL program to C",
	Long: `Lex, parse, type-check and lower a CL program into a single C
translation unit against clrt, the runtime ABI's reference
implementation.

Examples:
  # Lower a script to C
  cl compile script.cl

  # Lower and invoke the C compiler to produce a binary
  cl compile script.cl --build

  # Skip the type-checking dry run (faster, less safe)
  cl compile script.cl --skip-type-check

The C compiler invoked by --build is read from the CL_CC environment
variable, defaulting to "cc"; clrt's headers are found via CL_RT_DIR,
defaulting to "clrt" relative to the working directory.`,
	Args: cobra.ExactArgs(1),
	RunE: compileScript,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input>.c)")
	compileCmd.Flags().BoolVar(&skipTypeCheck, "skip-type-check", false, "skip the dry-run type check (faster but less safe)")
	compileCmd.Flags().BoolVar(&buildBinary, "build", false, "invoke the C compiler on the generated source")
	compileCmd.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "verbose output")
}

func compileScript(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	input := string(content)

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", filename)
	}

	prog, perr := parseSource(input, filename)
	if perr != nil {
		return perr
	}

	if !skipTypeCheck {
		// A dry run performs every check the evaluator normally would
		// without executing print/println, so compile-time errors
		// surface before C is ever emitted.
		dryRun := interp.New(nil)
		dryRun.DryRun = true
		if err := dryRun.Run(prog); err != nil {
			err.Source = input
			err.File = filename
			fmt.Fprintln(os.Stderr, err.Format(true))
			return fmt.Errorf("type check failed")
		}
	} else if compileVerbose {
		fmt.Fprintln(os.Stderr, "Type checking disabled")
	}

	source, cerr := codegen.Generate(prog)
	if cerr != nil {
		fmt.Fprintln(os.Stderr, cerr.Format(true))
		return fmt.Errorf("code generation failed")
	}

	outFile := outputFile
	if outFile == "" {
		ext := filepath.Ext(filename)
		if ext != "" {
			outFile = strings.TrimSuffix(filename, ext) + ".c"
		} else {
			outFile = filename + ".c"
		}
	}

	if err := os.WriteFile(outFile, []byte(source), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "C source written to %s (%d bytes)\n", outFile, len(source))
	} else {
		fmt.Printf("Compiled %s -> %s\n", filename, outFile)
	}

	if buildBinary {
		return buildWithCC(outFile)
	}
	return nil
}

// buildWithCC shells out to the configured C compiler to link the
// generated translation unit against clrt, the runtime ABI's reference
// implementation.
func buildWithCC(cFile string) error {
	cc := env.Str("CL_CC", "cc")
	rtDir := env.Str("CL_RT_DIR", "clrt")
	binOut := strings.TrimSuffix(cFile, ".c")

	cmd := exec.Command(cc, "-std=c11", "-I"+rtDir, "-o", binOut, cFile, filepath.Join(rtDir, "rt.c"))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Running: %s\n", strings.Join(cmd.Args, " "))
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("C build failed: %w", err)
	}
	fmt.Printf("Built %s\n", binOut)
	return nil
}
