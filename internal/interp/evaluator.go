package interp

import (
	"io"

	"github.com/clscript/cl/internal/ast"
	"github.com/clscript/cl/internal/errors"
	"github.com/clscript/cl/internal/types"
)

// Evaluator walks a parsed Program directly, checking types as it
// goes: there is no separate static pass ahead of evaluation. DryRun
// suppresses print/println's side effects so `cl compile` can run the
// same checks ahead of lowering without producing program output.
type Evaluator struct {
	global *Frame
	Out    io.Writer
	DryRun bool
}

// New creates an Evaluator whose print/println output goes to out. out
// may be nil, in which case print/println are no-ops regardless of
// DryRun — used by `cl compile`'s type-check-only pass.
func New(out io.Writer) *Evaluator {
	return &Evaluator{global: NewGlobalFrame(), Out: out}
}

func (e *Evaluator) write(s string) {
	if e.Out == nil {
		return
	}
	_, _ = e.Out.Write([]byte(s))
}

// callCtx carries the enclosing function's declared return type through
// statement execution, so Return can validate and IllegalReturn can be
// detected outside of any function.
type callCtx struct {
	inFunction bool
	retType    types.Type
}

// flow reports how a statement or block finished: either by running off
// the end, or by a `return`, carrying the returned value.
type flow struct {
	returned bool
	value    Value
}

// Run executes every top-level statement of prog in the global frame.
// A bare `return` at the top level is an IllegalReturn.
func (e *Evaluator) Run(prog *ast.Program) *errors.Error {
	_, err := e.execStmts(prog.Statements, e.global, nil)
	return err
}

// execStmts runs stmts directly in frame (no new scope is pushed — the
// caller decides whether frame is already a fresh scope), stopping at
// the first `return` or error.
func (e *Evaluator) execStmts(stmts []ast.Stmt, frame *Frame, ctx *callCtx) (flow, *errors.Error) {
	for _, stmt := range stmts {
		f, err := e.execStmt(stmt, frame, ctx)
		if err != nil {
			return flow{}, err
		}
		if f.returned {
			return f, nil
		}
	}
	return flow{}, nil
}

// execBlock pushes a fresh non-boundary scope for block and runs its
// statements in it.
func (e *Evaluator) execBlock(block *ast.Block, parent *Frame, ctx *callCtx) (flow, *errors.Error) {
	return e.execStmts(block.Statements, NewBlockFrame(parent), ctx)
}
