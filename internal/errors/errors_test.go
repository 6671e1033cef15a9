package errors_test

import (
	"testing"

	"github.com/clscript/cl/internal/errors"
	"github.com/clscript/cl/internal/token"
	"github.com/stretchr/testify/require"
)

func TestErrorStringMatchesContract(t *testing.T) {
	e := errors.New(errors.KindDivisionByZero, "")
	require.Equal(t, "Error: DivisionByZero", e.Error())

	e = errors.New(errors.KindVariableNotFound, "x")
	require.Equal(t, "Error: VariableNotFound(x)", e.Error())
}

func TestErrorAtIncludesPosition(t *testing.T) {
	e := errors.NewAt(errors.KindParseError, "unexpected token", token.Position{Line: 3, Column: 7})
	require.Contains(t, e.Error(), "3:7")
}

func TestFormatWithSourceContextRendersCaret(t *testing.T) {
	e := errors.NewAt(errors.KindTypeMismatch, "", token.Position{Line: 1, Column: 5})
	e.Source = "Int x = \"hi\";"
	e.File = "test.cl"
	out := e.Format(false)
	require.Contains(t, out, "test.cl:1:5")
	require.Contains(t, out, "^")
}
