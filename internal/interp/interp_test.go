package interp_test

import (
	"bytes"
	"testing"

	"github.com/clscript/cl/internal/errors"
	"github.com/clscript/cl/internal/interp"
	"github.com/clscript/cl/internal/lexer"
	"github.com/clscript/cl/internal/parser"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, *errors.Error) {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog, perr := p.ParseProgram()
	require.Nil(t, perr, "unexpected parse error: %v", perr)

	var buf bytes.Buffer
	ev := interp.New(&buf)
	err := ev.Run(prog)
	return buf.String(), err
}

func TestRunPrintsConvertedValues(t *testing.T) {
	out, err := run(t, `println(intToString(42));`)
	require.Nil(t, err)
	require.Equal(t, "42\n", out)
}

func TestRunWhileLoopAccumulates(t *testing.T) {
	out, err := run(t, `
		int i = 0;
		int sum = 0;
		while (i < 5) {
			sum = sum + i;
			i = i + 1;
		}
		println(intToString(sum));
	`)
	require.Nil(t, err)
	require.Equal(t, "10\n", out)
}

func TestRunFunctionCallAndReturn(t *testing.T) {
	out, err := run(t, `
		int add(int a, int b) { return a + b; }
		println(intToString(add(2, 3)));
	`)
	require.Nil(t, err)
	require.Equal(t, "5\n", out)
}

func TestRunIfElseIfElseChain(t *testing.T) {
	out, err := run(t, `
		int x = 2;
		if (x == 1) { println("one"); }
		else if (x == 2) { println("two"); }
		else { println("other"); }
	`)
	require.Nil(t, err)
	require.Equal(t, "two\n", out)
}

func TestRunOperatorPrecedenceShortCircuit(t *testing.T) {
	// true || false && false => true || (false && false) => true.
	out, err := run(t, `
		bool b = true || false && false;
		println(boolToString(b));
	`)
	require.Nil(t, err)
	require.Equal(t, "true\n", out)
}

func TestRunIntFloatWidening(t *testing.T) {
	out, err := run(t, `
		float f = 1 + 2.5;
		println(floatToString(f));
	`)
	require.Nil(t, err)
	require.Equal(t, "3.5\n", out)
}

func TestRunDivisionByZero(t *testing.T) {
	_, err := run(t, `int x = 1 / 0;`)
	require.NotNil(t, err)
	require.Equal(t, errors.KindDivisionByZero, err.Kind)
}

func TestRunVariableNotFound(t *testing.T) {
	_, err := run(t, `x = 1;`)
	require.NotNil(t, err)
	require.Equal(t, errors.KindVariableNotFound, err.Kind)
}

func TestRunVariableUninitialized(t *testing.T) {
	_, err := run(t, `int x; int y = x + 1;`)
	require.NotNil(t, err)
	require.Equal(t, errors.KindVariableUninitialized, err.Kind)
}

func TestRunVarDeclShadowsPriorValue(t *testing.T) {
	out, err := run(t, `int x = 1; int x = 2; println(intToString(x));`)
	require.Nil(t, err)
	require.Equal(t, "2\n", out)
}

func TestRunNameConflict(t *testing.T) {
	_, err := run(t, `int add() { return 1; } int add = 2;`)
	require.NotNil(t, err)
	require.Equal(t, errors.KindNameConflict, err.Kind)
}

func TestRunIllegalArgumentCount(t *testing.T) {
	_, err := run(t, `int add(int a, int b) { return a + b; } add(1);`)
	require.NotNil(t, err)
	require.Equal(t, errors.KindIllegalArgumentCount, err.Kind)
}

func TestRunIllegalReturnOutsideFunction(t *testing.T) {
	_, err := run(t, `return 1;`)
	require.NotNil(t, err)
	require.Equal(t, errors.KindIllegalReturn, err.Kind)
}

func TestRunTypeMismatchOnAssignment(t *testing.T) {
	_, err := run(t, `int x = 1; x = "hi";`)
	require.NotNil(t, err)
	require.Equal(t, errors.KindTypeMismatch, err.Kind)
}

func TestRunIllegalOperation(t *testing.T) {
	_, err := run(t, `bool b = true + false;`)
	require.NotNil(t, err)
	require.Equal(t, errors.KindIllegalOperation, err.Kind)
}

// TestFunctionLookupCrossesCallBoundary exercises the frame-crossing
// rule directly: a function declared at global scope remains callable
// from inside another function's body, even though that lookup crosses
// a call boundary that would hide a plain value.
func TestFunctionLookupCrossesCallBoundary(t *testing.T) {
	out, err := run(t, `
		string greet() { return "hi"; }
		string callsGreet() { return greet(); }
		println(callsGreet());
	`)
	require.Nil(t, err)
	require.Equal(t, "hi\n", out)
}

// A function body cannot see an ancestor frame's plain value binding
// once the lookup has crossed the call boundary — only functions
// remain visible above that point.
func TestValueBindingInvisibleAcrossCallBoundary(t *testing.T) {
	_, err := run(t, `
		int x = 10;
		int readX() { return x; }
		readX();
	`)
	require.NotNil(t, err)
	require.Equal(t, errors.KindVariableNotFound, err.Kind)
}

func TestDryRunSuppressesOutput(t *testing.T) {
	var buf bytes.Buffer
	p := parser.New(lexer.New(`println("hello");`))
	prog, perr := p.ParseProgram()
	require.Nil(t, perr)

	ev := interp.New(&buf)
	ev.DryRun = true
	err := ev.Run(prog)
	require.Nil(t, err)
	require.Equal(t, "", buf.String())
}
