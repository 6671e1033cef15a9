package parser_test

import (
	"testing"

	"github.com/clscript/cl/internal/ast"
	"github.com/clscript/cl/internal/lexer"
	"github.com/clscript/cl/internal/parser"
	"github.com/clscript/cl/internal/token"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// ignorePosition treats all token.Position values as equal, since
// re-serializing and re-parsing legitimately changes source offsets.
var ignorePosition = cmp.Comparer(func(a, b token.Position) bool { return true })

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog, err := p.ParseProgram()
	require.Nil(t, err, "unexpected parse error: %v", err)
	return prog
}

func TestParseVarDeclVsFnDeclDisambiguation(t *testing.T) {
	prog := mustParse(t, `int x; int add(int a, int b) { return a + b; }`)
	require.Len(t, prog.Statements, 2)

	decl, ok := prog.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, "int", decl.Type)
	require.Equal(t, "x", decl.Name)
	require.Nil(t, decl.Init)

	fn, ok := prog.Statements[1].(*ast.FnDecl)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
}

func TestParseOperatorPrecedence(t *testing.T) {
	// && binds tighter than ||.
	prog := mustParse(t, `bool b = true || false && false;`)
	decl := prog.Statements[0].(*ast.VarDecl)
	bin := decl.Init.(*ast.Binary)
	require.Equal(t, "||", bin.Op.String())
	require.IsType(t, &ast.BoolLit{}, bin.Left)
	andExpr, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "&&", andExpr.Op.String())
}

func TestParseIfElseIfElseChain(t *testing.T) {
	prog := mustParse(t, `
		if (x == 1) { return 1; }
		else if (x == 2) { return 2; }
		else { return 3; }
	`)
	ifStmt := prog.Statements[0].(*ast.If)
	require.Len(t, ifStmt.Branches, 2)
	require.NotNil(t, ifStmt.Else)
}

func TestParseWhileLoop(t *testing.T) {
	prog := mustParse(t, `while (i < 3) { i = i + 1; }`)
	w := prog.Statements[0].(*ast.While)
	require.NotNil(t, w.Cond)
	require.Len(t, w.Body.Statements, 1)
}

func TestParseAssignmentIsStatementNotExpression(t *testing.T) {
	prog := mustParse(t, `x = 5;`)
	_, ok := prog.Statements[0].(*ast.Assign)
	require.True(t, ok)
}

func TestParseCallExpression(t *testing.T) {
	prog := mustParse(t, `println("hi there!");`)
	stmt := prog.Statements[0].(*ast.ExprStmt)
	call := stmt.Expr.(*ast.Call)
	require.Equal(t, "println", call.Callee)
	require.Len(t, call.Args, 1)
}

func TestParseTrailingDotFloatLiteralIsError(t *testing.T) {
	p := parser.New(lexer.New(`float x = 5.;`))
	_, err := p.ParseProgram()
	require.NotNil(t, err)
}

func TestParseUnaryNot(t *testing.T) {
	prog := mustParse(t, `bool b = !true;`)
	decl := prog.Statements[0].(*ast.VarDecl)
	u := decl.Init.(*ast.Unary)
	require.Equal(t, "!", u.Op.String())
}

// TestRoundTrip exercises the round-trip property: re-serializing the
// AST and re-parsing it yields a structurally equivalent tree.
func TestRoundTrip(t *testing.T) {
	srcs := []string{
		`int i = 0; while (i < 3) { i = i + 1; }`,
		`void printInt(int i) { print(intToString(i)); }`,
		`if (true) { return; } else if (false) { return; } else { return; }`,
		`bool b = true || false && false;`,
		`string s = "zero-width \u{200b} and a smiley \u{1f600} and a NUL \u{0}";`,
	}
	for _, src := range srcs {
		prog := mustParse(t, src)
		reprinted := ast.Print(prog)
		again := mustParse(t, reprinted)

		if diff := cmp.Diff(prog, again, ignorePosition); diff != "" {
			t.Errorf("round-trip mismatch for %q (-original +reparsed):\n%s", src, diff)
		}
	}
}
