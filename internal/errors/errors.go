// Package errors implements CL's closed error taxonomy and the
// source-context formatting the CLI reports errors with.
package errors

import (
	"fmt"
	"strings"

	"github.com/clscript/cl/internal/token"
)

// Kind identifies one member of CL's closed error taxonomy. Propagation
// is non-recoverable: the first error terminates the current phase;
// there is no try/catch surface in CL.
type Kind string

const (
	KindLexError              Kind = "LexError"
	KindParseError            Kind = "ParseError"
	KindTypeMismatch          Kind = "TypeMismatch"
	KindIllegalOperation      Kind = "IllegalOperation"
	KindDivisionByZero        Kind = "DivisionByZero"
	KindVariableNotFound      Kind = "VariableNotFound"
	KindVariableUninitialized Kind = "VariableUninitialized"
	KindNameConflict          Kind = "NameConflict"
	KindIllegalArgumentCount  Kind = "IllegalArgumentCount"
	KindIllegalReturn         Kind = "IllegalReturn"
	KindInvalidType           Kind = "InvalidType"
)

// Error is a single CL error: a taxonomy Kind, an optional payload (a
// name, a count, or a free-form message) and, for lexical/parse errors,
// a source position.
type Error struct {
	Kind    Kind
	Payload string
	Pos     token.Position
	HasPos  bool
	Source  string
	File    string
}

// New builds an Error without a position (semantic/runtime phase).
func New(kind Kind, payload string) *Error {
	return &Error{Kind: kind, Payload: payload}
}

// NewAt builds an Error with a source position (lexical/parse phase).
func NewAt(kind Kind, payload string, pos token.Position) *Error {
	return &Error{Kind: kind, Payload: payload, Pos: pos, HasPos: true}
}

// Error implements the error interface, rendering as
// `Error: <Kind>[(payload)]`, followed by a position for lexical/parse
// errors.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("Error: ")
	sb.WriteString(string(e.Kind))
	if e.Payload != "" {
		fmt.Fprintf(&sb, "(%s)", e.Payload)
	}
	if e.HasPos {
		fmt.Fprintf(&sb, " at %s", e.Pos)
	}
	return sb.String()
}

// Format renders the error together with the offending source line and
// a caret. color enables ANSI highlighting for terminal output.
func (e *Error) Format(color bool) string {
	if !e.HasPos {
		return e.Error()
	}

	var sb strings.Builder
	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%s\n", e.File, e.Pos)
	} else {
		fmt.Fprintf(&sb, "Error at %s\n", e.Pos)
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(string(e.Kind))
	if e.Payload != "" {
		fmt.Fprintf(&sb, "(%s)", e.Payload)
	}
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a sequence of errors one after another, separated
// by a blank line. CL aborts on the first error per phase; the CLI
// reports errors one at a time through Format and does not call
// FormatAll.
func FormatAll(errs []*Error, color bool) string {
	var sb strings.Builder
	for i, e := range errs {
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
