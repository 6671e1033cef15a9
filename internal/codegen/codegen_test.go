package codegen_test

import (
	"strings"
	"testing"

	"github.com/clscript/cl/internal/codegen"
	"github.com/clscript/cl/internal/lexer"
	"github.com/clscript/cl/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func mustGenerate(t *testing.T, src string) string {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog, perr := p.ParseProgram()
	require.Nil(t, perr)
	out, err := codegen.Generate(prog)
	require.Nil(t, err)
	return out
}

func TestGenerateEmitsRuntimeInclude(t *testing.T) {
	out := mustGenerate(t, `int x = 1;`)
	require.True(t, strings.Contains(out, `#include "rt.h"`))
	require.True(t, strings.Contains(out, "int32_t x = 1;"))
}

func TestGenerateBinaryOperatorUsesRuntimeABI(t *testing.T) {
	out := mustGenerate(t, `int x = 1 + 2;`)
	require.True(t, strings.Contains(out, "rt_operator_add_int_int(1, 2)"))
}

func TestGenerateFloatWideningUsesMixedOperator(t *testing.T) {
	out := mustGenerate(t, `float f = 1 + 2.5;`)
	require.True(t, strings.Contains(out, "rt_operator_add_int_float(1, 2.5)"))
}

func TestGenerateBuiltinCall(t *testing.T) {
	out := mustGenerate(t, `println(intToString(42));`)
	require.True(t, strings.Contains(out, "rt_builtin_println(rt_builtin_intToString(42))"))
}

func TestGenerateFunctionGetsPrototypeAndDefinition(t *testing.T) {
	out := mustGenerate(t, `int add(int a, int b) { return a + b; }`)
	require.True(t, strings.Contains(out, "int32_t add(int32_t a, int32_t b);"))
	require.True(t, strings.Contains(out, "int32_t add(int32_t a, int32_t b) {"))
	require.True(t, strings.Contains(out, "return rt_operator_add_int_int(a, b);"))
}

func TestGenerateShortCircuitOperatorsStayNative(t *testing.T) {
	out := mustGenerate(t, `bool b = true && false;`)
	require.True(t, strings.Contains(out, "(true && false)"))
}

func TestGenerateWhileLoop(t *testing.T) {
	out := mustGenerate(t, `int i = 0; while (i < 3) { i = i + 1; }`)
	require.True(t, strings.Contains(out, "while (rt_operator_lt_int_int(i, 3)) {"))
}

func TestGenerateFullProgramSnapshot(t *testing.T) {
	out := mustGenerate(t, `
int fib(int n) {
	if (n < 2) {
		return n;
	}
	return fib(n - 1) + fib(n - 2);
}

int i = 0;
while (i < 5) {
	println(intToString(fib(i)));
	i = i + 1;
}
`)
	snaps.MatchSnapshot(t, out)
}
