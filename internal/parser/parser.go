// Package parser implements CL's recursive-descent parser: a program is
// a sequence of top-level statements, dispatched by looking at most two
// tokens past the current one, with a precedence-climbing expression
// grammar.
package parser

import (
	"fmt"

	"github.com/clscript/cl/internal/ast"
	"github.com/clscript/cl/internal/lexer"
	"github.com/clscript/cl/internal/token"
)

// Parser turns a token stream into an ast.Program. It has no error
// recovery: the first error it encounters aborts parsing.
type Parser struct {
	c *cursor
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	return &Parser{c: newCursor(l)}
}

// ParseProgram parses a full CL source file. It returns the program and
// a nil error on success, or a nil program and the single Error that
// aborted parsing.
func (p *Parser) ParseProgram() (*ast.Program, *Error) {
	prog := &ast.Program{}
	for !p.c.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *Parser) errorAt(pos token.Position, format string, args ...any) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) errorHere(format string, args ...any) *Error {
	return p.errorAt(p.c.cur().Pos, format, args...)
}

// expect asserts that the current token has kind and advances past it,
// otherwise producing a parse error.
func (p *Parser) expect(kind token.Kind) *Error {
	if !p.c.curIs(kind) {
		return p.errorHere("expected %s, got %s", kind, p.c.cur().Kind)
	}
	p.c.advance()
	return nil
}

// expectIdent asserts the current token is an identifier, returning its
// literal and advancing past it.
func (p *Parser) expectIdent() (token.Token, *Error) {
	if !p.c.curIs(token.IDENT) {
		return token.Token{}, p.errorHere("expected identifier, got %s", p.c.cur().Kind)
	}
	tok := p.c.cur()
	p.c.advance()
	return tok, nil
}

// typeKeywordName returns the lowercase spelling parseVarDecl/parseFnDecl
// store in ast.VarDecl.Type / ast.FnDecl.RetType / ast.Param.Type.
func typeKeywordName(kind token.Kind) string {
	return kind.String()
}
