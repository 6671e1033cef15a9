package parser

import (
	"strconv"

	"github.com/clscript/cl/internal/ast"
	"github.com/clscript/cl/internal/token"
)

// parseExpr enters the precedence ladder at its lowest level (logical
// or).
func (p *Parser) parseExpr() (ast.Expr, *Error) {
	return p.parseOr()
}

// parseLeftAssoc factors the repeated "parse one level, then fold in
// same-precedence operators left-to-right" shape shared by rules 1-6.
func (p *Parser) parseLeftAssoc(next func() (ast.Expr, *Error), ops ...token.Kind) (ast.Expr, *Error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.c.curIsAny(ops...) {
		opTok := p.c.cur()
		p.c.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Position: opTok.Pos, Op: opTok.Kind, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseOr() (ast.Expr, *Error) {
	return p.parseLeftAssoc(p.parseAnd, token.OR)
}

func (p *Parser) parseAnd() (ast.Expr, *Error) {
	return p.parseLeftAssoc(p.parseEquality, token.AND)
}

func (p *Parser) parseEquality() (ast.Expr, *Error) {
	return p.parseLeftAssoc(p.parseRelational, token.EQ, token.NEQ)
}

func (p *Parser) parseRelational() (ast.Expr, *Error) {
	return p.parseLeftAssoc(p.parseAdditive, token.LT, token.GT, token.LE, token.GE)
}

func (p *Parser) parseAdditive() (ast.Expr, *Error) {
	return p.parseLeftAssoc(p.parseMultiplicative, token.PLUS, token.MINUS)
}

func (p *Parser) parseMultiplicative() (ast.Expr, *Error) {
	return p.parseLeftAssoc(p.parseUnary, token.STAR, token.SLASH)
}

// parseUnary handles `!`, right-associative, applying only to booleans
// at the grammar level (type enforcement happens in the checker). There
// is no unary minus in CL's grammar: users write `0 - n` instead.
func (p *Parser) parseUnary() (ast.Expr, *Error) {
	if p.c.curIs(token.NOT) {
		opTok := p.c.cur()
		p.c.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Position: opTok.Pos, Op: opTok.Kind, Operand: operand}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles literals, identifiers (with optional call), and
// parenthesized sub-expressions.
func (p *Parser) parsePrimary() (ast.Expr, *Error) {
	tok := p.c.cur()
	switch tok.Kind {
	case token.INT:
		p.c.advance()
		v, convErr := strconv.ParseInt(tok.Literal, 10, 32)
		if convErr != nil {
			return nil, p.errorAt(tok.Pos, "malformed integer literal %q", tok.Literal)
		}
		return &ast.IntLit{Position: tok.Pos, Value: int32(v)}, nil

	case token.FLOAT:
		p.c.advance()
		v, convErr := strconv.ParseFloat(tok.Literal, 64)
		if convErr != nil {
			return nil, p.errorAt(tok.Pos, "malformed float literal %q", tok.Literal)
		}
		return &ast.FloatLit{Position: tok.Pos, Value: v}, nil

	case token.STRING:
		p.c.advance()
		return &ast.StringLit{Position: tok.Pos, Value: tok.Literal}, nil

	case token.BOOL:
		p.c.advance()
		return &ast.BoolLit{Position: tok.Pos, Value: tok.Literal == "true"}, nil

	case token.IDENT:
		p.c.advance()
		if p.c.curIs(token.LPAREN) {
			return p.parseCallArgs(tok)
		}
		return &ast.Var{Position: tok.Pos, Name: tok.Literal}, nil

	case token.LPAREN:
		p.c.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	}

	return nil, p.errorAt(tok.Pos, "unexpected token %s in expression", tok.Kind)
}

// parseCallArgs parses the `(args,...)` suffix of a call, given the
// callee's identifier token.
func (p *Parser) parseCallArgs(callee token.Token) (ast.Expr, *Error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expr
	if !p.c.curIs(token.RPAREN) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.c.curIs(token.COMMA) {
				p.c.advance()
				continue
			}
			break
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Call{Position: callee.Pos, Callee: callee.Literal, Args: args}, nil
}
