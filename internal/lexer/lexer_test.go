package lexer_test

import (
	"testing"

	"github.com/clscript/cl/internal/lexer"
	"github.com/clscript/cl/internal/token"
	"github.com/stretchr/testify/require"
)

func tokenKinds(t *testing.T, input string) []token.Kind {
	t.Helper()
	l := lexer.New(input)
	var kinds []token.Kind
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	return kinds
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		lit   string
	}{
		{"123", token.INT, "123"},
		{"123.45", token.FLOAT, "123.45"},
		{".7", token.FLOAT, "0.7"},
		{"0", token.INT, "0"},
	}
	for _, tt := range tests {
		l := lexer.New(tt.input)
		tok := l.NextToken()
		require.Equal(t, tt.kind, tok.Kind, tt.input)
		require.Equal(t, tt.lit, tok.Literal, tt.input)
		require.Empty(t, l.Errors())
	}
}

func TestTrailingDotIsError(t *testing.T) {
	l := lexer.New("5.")
	tok := l.NextToken()
	require.Equal(t, token.ILLEGAL, tok.Kind)
	require.Len(t, l.Errors(), 1)
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hi\n"`, "hi\n"},
		{`"\t\r\b\0\f\v\a"`, "\t\r\b\x00\f\v\a"},
		{`"\\\""`, `\"`},
		{`"\u{48}\u{65}\u{6C}\u{6C}\u{6F}"`, "Hello"},
		{`"\x41\x42"`, "AB"},
		{`"\q"`, "q"},
	}
	for _, tt := range tests {
		l := lexer.New(tt.input)
		tok := l.NextToken()
		require.Equal(t, token.STRING, tok.Kind, tt.input)
		require.Equal(t, tt.want, tok.Literal, tt.input)
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	l := lexer.New(`"abc`)
	l.NextToken()
	require.Len(t, l.Errors(), 1)
}

func TestBlockComments(t *testing.T) {
	kinds := tokenKinds(t, "1 /* comment \n still comment */ + 2")
	require.Equal(t, []token.Kind{token.INT, token.PLUS, token.INT, token.EOF}, kinds)
}

func TestUnterminatedCommentIsError(t *testing.T) {
	l := lexer.New("1 /* never closes")
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
	}
	require.NotEmpty(t, l.Errors())
}

func TestOperatorLongestMatch(t *testing.T) {
	kinds := tokenKinds(t, "== != <= >= && || = < > ! + - * /")
	want := []token.Kind{
		token.EQ, token.NEQ, token.LE, token.GE, token.AND, token.OR,
		token.ASSIGN, token.LT, token.GT, token.NOT,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.EOF,
	}
	require.Equal(t, want, kinds)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	kinds := tokenKinds(t, "int float string bool void if else while return true false myVar _x2")
	want := []token.Kind{
		token.INT_T, token.FLOAT_T, token.STRING_T, token.BOOL_T, token.VOID_T,
		token.IF, token.ELSE, token.WHILE, token.RETURN,
		token.BOOL, token.BOOL, token.IDENT, token.IDENT, token.EOF,
	}
	require.Equal(t, want, kinds)
}

func TestIllegalCharacter(t *testing.T) {
	l := lexer.New("@")
	tok := l.NextToken()
	require.Equal(t, token.ILLEGAL, tok.Kind)
	require.Len(t, l.Errors(), 1)
}

func TestPositionTracking(t *testing.T) {
	l := lexer.New("int\nx")
	first := l.NextToken()
	require.Equal(t, 1, first.Pos.Line)
	second := l.NextToken()
	require.Equal(t, 2, second.Pos.Line)
	require.Equal(t, 1, second.Pos.Column)
}
