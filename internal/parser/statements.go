package parser

import (
	"github.com/clscript/cl/internal/ast"
	"github.com/clscript/cl/internal/token"
)

// parseStatement dispatches on the current (and, for type-prefixed
// declarations, the next two) tokens.
func (p *Parser) parseStatement() (ast.Stmt, *Error) {
	switch {
	case token.IsTypeKeyword(p.c.cur().Kind):
		return p.parseTypePrefixedDecl()
	case p.c.curIs(token.IF):
		return p.parseIf()
	case p.c.curIs(token.WHILE):
		return p.parseWhile()
	case p.c.curIs(token.RETURN):
		return p.parseReturn()
	case p.c.curIs(token.LBRACE):
		return p.parseBlock()
	case p.c.curIs(token.IDENT) && p.c.peekIs(token.ASSIGN):
		return p.parseAssign()
	default:
		return p.parseExprStmt()
	}
}

// parseTypePrefixedDecl disambiguates a function declaration from a
// variable declaration by looking three tokens ahead: `Type IDENT (` is
// a function; `Type IDENT` followed by `;` or `=` is a variable.
func (p *Parser) parseTypePrefixedDecl() (ast.Stmt, *Error) {
	if p.c.peekN(1).Kind == token.IDENT && p.c.peekN(2).Kind == token.LPAREN {
		return p.parseFnDecl()
	}
	return p.parseVarDecl()
}

func (p *Parser) parseVarDecl() (ast.Stmt, *Error) {
	typeTok := p.c.cur()
	pos := typeTok.Pos
	p.c.advance()

	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	decl := &ast.VarDecl{Position: pos, Type: typeKeywordName(typeTok.Kind), Name: nameTok.Literal}

	if p.c.curIs(token.ASSIGN) {
		p.c.advance()
		init, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		decl.Init = init
	}

	if err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseAssign parses `IDENT = expr;` as an assignment statement, not as
// an expression.
func (p *Parser) parseAssign() (ast.Stmt, *Error) {
	nameTok := p.c.cur()
	pos := nameTok.Pos
	p.c.advance() // IDENT
	p.c.advance() // '='

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Assign{Position: pos, Name: nameTok.Literal, Value: value}, nil
}

func (p *Parser) parseIf() (ast.Stmt, *Error) {
	pos := p.c.cur().Pos
	node := &ast.If{Position: pos}

	for {
		if err := p.expect(token.IF); err != nil {
			return nil, err
		}
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Branches = append(node.Branches, ast.IfBranch{Cond: cond, Body: body})

		if !p.c.curIs(token.ELSE) {
			return node, nil
		}
		p.c.advance() // 'else'
		if p.c.curIs(token.IF) {
			continue
		}
		elseBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Else = elseBody
		return node, nil
	}
}

func (p *Parser) parseWhile() (ast.Stmt, *Error) {
	pos := p.c.cur().Pos
	if err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Position: pos, Cond: cond, Body: body}, nil
}

// parseReturn parses `return expr? ;`. Whether it occurs inside a
// function body is a semantic question (IllegalReturn), not a syntactic
// one: the parser accepts it anywhere.
func (p *Parser) parseReturn() (ast.Stmt, *Error) {
	pos := p.c.cur().Pos
	p.c.advance() // 'return'

	node := &ast.Return{Position: pos}
	if !p.c.curIs(token.SEMICOLON) {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Value = value
	}
	if err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) parseFnDecl() (ast.Stmt, *Error) {
	typeTok := p.c.cur()
	pos := typeTok.Pos
	p.c.advance() // return type

	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var params []ast.Param
	if !p.c.curIs(token.RPAREN) {
		for {
			if !token.IsTypeKeyword(p.c.cur().Kind) {
				return nil, p.errorHere("expected parameter type, got %s", p.c.cur().Kind)
			}
			paramType := typeKeywordName(p.c.cur().Kind)
			p.c.advance()
			paramName, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			params = append(params, ast.Param{Type: paramType, Name: paramName.Literal})
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

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FnDecl{
		Position: pos,
		RetType:  typeKeywordName(typeTok.Kind),
		Name:     nameTok.Literal,
		Params:   params,
		Body:     body,
	}, nil
}

func (p *Parser) parseBlock() (*ast.Block, *Error) {
	pos := p.c.cur().Pos
	if err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	block := &ast.Block{Position: pos}
	for !p.c.curIs(token.RBRACE) {
		if p.c.curIs(token.EOF) {
			return nil, p.errorHere("unexpected EOF, expected }")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseExprStmt() (ast.Stmt, *Error) {
	pos := p.c.cur().Pos
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Position: pos, Expr: expr}, nil
}
