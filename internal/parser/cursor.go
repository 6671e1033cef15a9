package parser

import (
	"github.com/clscript/cl/internal/lexer"
	"github.com/clscript/cl/internal/token"
)

// cursor wraps a Lexer with a small ring of buffered lookahead: statement
// dispatch needs to see a type keyword, the identifier after it, and the
// token after that (`(` vs `;`/`=`) before committing to a production.
type cursor struct {
	l   *lexer.Lexer
	buf []token.Token
}

const lookahead = 3

func newCursor(l *lexer.Lexer) *cursor {
	c := &cursor{l: l}
	for i := 0; i < lookahead; i++ {
		c.buf = append(c.buf, l.NextToken())
	}
	return c
}

// cur is the current token.
func (c *cursor) cur() token.Token { return c.buf[0] }

// peekN returns the token n positions ahead of cur (peekN(0) == cur()).
func (c *cursor) peekN(n int) token.Token {
	if n < len(c.buf) {
		return c.buf[n]
	}
	return c.buf[len(c.buf)-1]
}

// advance consumes cur and reads one new token into the lookahead buffer.
func (c *cursor) advance() {
	copy(c.buf, c.buf[1:])
	c.buf[len(c.buf)-1] = c.l.NextToken()
}

func (c *cursor) curIs(kind token.Kind) bool  { return c.cur().Kind == kind }
func (c *cursor) peekIs(kind token.Kind) bool { return c.peekN(1).Kind == kind }

func (c *cursor) curIsAny(kinds ...token.Kind) bool {
	cur := c.cur().Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}
