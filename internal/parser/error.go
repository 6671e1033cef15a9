package parser

import "github.com/clscript/cl/internal/token"

// Error is a single parse failure with its source position. Syntax
// errors abort parsing outright — the parser has no error recovery, so
// ParseProgram returns at most one Error.
type Error struct {
	Pos token.Position
	Msg string
}

func (e *Error) Error() string { return e.Msg }
