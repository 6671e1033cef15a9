package types_test

import (
	"testing"

	"github.com/clscript/cl/internal/token"
	"github.com/clscript/cl/internal/types"
	"github.com/stretchr/testify/require"
)

func TestResolveBinaryArithmeticWidening(t *testing.T) {
	tests := []struct {
		lhs, rhs types.Type
		op       token.Kind
		want     types.Type
	}{
		{types.Int, types.Int, token.PLUS, types.Int},
		{types.Int, types.Float, token.PLUS, types.Float},
		{types.Float, types.Int, token.PLUS, types.Float},
		{types.Float, types.Float, token.PLUS, types.Float},
		{types.String, types.String, token.PLUS, types.String},
	}
	for _, tt := range tests {
		got, ok := types.ResolveBinary(tt.lhs, tt.op, tt.rhs)
		require.True(t, ok)
		require.Equal(t, tt.want, got)
	}
}

func TestResolveBinaryRejectsStringArithmeticBesidesPlus(t *testing.T) {
	_, ok := types.ResolveBinary(types.String, token.MINUS, types.String)
	require.False(t, ok)
}

func TestResolveBinaryRejectsBoolArithmetic(t *testing.T) {
	_, ok := types.ResolveBinary(types.Bool, token.PLUS, types.Bool)
	require.False(t, ok)
}

func TestResolveBinaryLogicalOnlyOnBool(t *testing.T) {
	got, ok := types.ResolveBinary(types.Bool, token.AND, types.Bool)
	require.True(t, ok)
	require.Equal(t, types.Bool, got)

	_, ok = types.ResolveBinary(types.Int, token.AND, types.Int)
	require.False(t, ok)
}

func TestResolveUnaryOnlyOnBool(t *testing.T) {
	got, ok := types.ResolveUnary(token.NOT, types.Bool)
	require.True(t, ok)
	require.Equal(t, types.Bool, got)

	_, ok = types.ResolveUnary(token.NOT, types.Int)
	require.False(t, ok)
}
