package interp

import (
	"fmt"

	"github.com/clscript/cl/internal/ast"
	"github.com/clscript/cl/internal/errors"
	"github.com/clscript/cl/internal/types"
)

// execStmt dispatches a single statement, evolving frame/ctx.
func (e *Evaluator) execStmt(stmt ast.Stmt, frame *Frame, ctx *callCtx) (flow, *errors.Error) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return flow{}, e.execVarDecl(s, frame)
	case *ast.Assign:
		return flow{}, e.execAssign(s, frame)
	case *ast.If:
		return e.execIf(s, frame, ctx)
	case *ast.While:
		return e.execWhile(s, frame, ctx)
	case *ast.FnDecl:
		return flow{}, e.execFnDecl(s, frame)
	case *ast.Return:
		return e.execReturn(s, frame, ctx)
	case *ast.ExprStmt:
		_, err := e.evalExpr(s.Expr, frame)
		return flow{}, err
	case *ast.Block:
		return e.execBlock(s, frame, ctx)
	default:
		return flow{}, errors.New(errors.KindInvalidType, fmt.Sprintf("unhandled statement %T", stmt))
	}
}

// execVarDecl declares a new binding in frame's own scope. Redeclaring a
// name already owned by frame as a *Function* is a NameConflict; a
// prior *value* binding in the same frame is legal to redeclare and is
// simply replaced (shadow-redeclaration). An initializer's type must
// strictly equal the declared type — there is no widening on
// assignment; an uninitialized declaration records the declared type
// but leaves the slot uninitialized, and its first assignment (see
// execAssign) sets the slot's type to the assigned value's type.
func (e *Evaluator) execVarDecl(s *ast.VarDecl, frame *Frame) *errors.Error {
	if b, exists := frame.Own(s.Name); exists {
		if _, isFn := b.(*Function); isFn {
			return errors.New(errors.KindNameConflict, s.Name)
		}
	}
	declared, ok := types.FromName(s.Type)
	if !ok {
		return errors.New(errors.KindInvalidType, s.Type)
	}

	slot := &ValueSlot{DeclaredType: declared}
	if s.Init != nil {
		v, err := e.evalExpr(s.Init, frame)
		if err != nil {
			return err
		}
		if v.Type != declared {
			return errors.New(errors.KindTypeMismatch, fmt.Sprintf("cannot initialize %s with %s", declared, v.Type))
		}
		slot.Value = v
		slot.Initialized = true
	}
	frame.Declare(s.Name, slot)
	return nil
}

// execAssign resolves name via frame-crossing lookup and requires it
// to already be a value binding. An initialized binding must have the
// same type as the new value; an uninitialized one takes the new
// value's type.
func (e *Evaluator) execAssign(s *ast.Assign, frame *Frame) *errors.Error {
	b, _, ok := frame.Lookup(s.Name)
	if !ok {
		return errors.New(errors.KindVariableNotFound, s.Name)
	}
	slot, ok := b.(*ValueSlot)
	if !ok {
		return errors.New(errors.KindTypeMismatch, s.Name+" is a function, not a variable")
	}

	v, err := e.evalExpr(s.Value, frame)
	if err != nil {
		return err
	}
	if slot.Initialized && v.Type != slot.DeclaredType {
		return errors.New(errors.KindTypeMismatch, fmt.Sprintf("cannot assign %s to %s", v.Type, slot.DeclaredType))
	}
	if !slot.Initialized {
		slot.DeclaredType = v.Type
	}
	slot.Value = v
	slot.Initialized = true
	return nil
}

// execIf evaluates each branch's condition — which must be Bool — in
// source order, running the first whose condition is true; if none
// match and an else exists, it runs. Each branch and the else run in
// their own block frame.
func (e *Evaluator) execIf(s *ast.If, frame *Frame, ctx *callCtx) (flow, *errors.Error) {
	for _, branch := range s.Branches {
		cond, err := e.evalExpr(branch.Cond, frame)
		if err != nil {
			return flow{}, err
		}
		if cond.Type != types.Bool {
			return flow{}, errors.New(errors.KindTypeMismatch, "if condition must be bool, got "+cond.Type.String())
		}
		if cond.B {
			return e.execBlock(branch.Body, frame, ctx)
		}
	}
	if s.Else != nil {
		return e.execBlock(s.Else, frame, ctx)
	}
	return flow{}, nil
}

// execWhile repeats Body, in a fresh block frame each iteration, while
// Cond evaluates to true.
func (e *Evaluator) execWhile(s *ast.While, frame *Frame, ctx *callCtx) (flow, *errors.Error) {
	for {
		cond, err := e.evalExpr(s.Cond, frame)
		if err != nil {
			return flow{}, err
		}
		if cond.Type != types.Bool {
			return flow{}, errors.New(errors.KindTypeMismatch, "while condition must be bool, got "+cond.Type.String())
		}
		if !cond.B {
			return flow{}, nil
		}
		f, err := e.execBlock(s.Body, frame, ctx)
		if err != nil {
			return flow{}, err
		}
		if f.returned {
			return f, nil
		}
	}
}

// execFnDecl declares a function binding in frame's own scope, capturing
// frame itself as the call frame's future parent: a call is parented by
// the defining frame, never the caller's.
func (e *Evaluator) execFnDecl(s *ast.FnDecl, frame *Frame) *errors.Error {
	if _, exists := frame.Own(s.Name); exists {
		return errors.New(errors.KindNameConflict, s.Name)
	}
	if _, isBuiltin := builtins[s.Name]; isBuiltin {
		return errors.New(errors.KindNameConflict, s.Name)
	}
	retType, ok := types.FromName(s.RetType)
	if !ok {
		return errors.New(errors.KindInvalidType, s.RetType)
	}
	for _, p := range s.Params {
		if _, ok := types.FromName(p.Type); !ok {
			return errors.New(errors.KindInvalidType, p.Type)
		}
	}
	frame.Declare(s.Name, &Function{
		RetType:       retType,
		Params:        s.Params,
		Body:          s.Body,
		DefiningFrame: frame,
	})
	return nil
}

// execReturn is only legal within a function call (ctx.inFunction);
// outside of one it is IllegalReturn. The returned value's type must
// strictly equal the enclosing function's declared return type; a
// function declared void accepts only a bare `return;`.
func (e *Evaluator) execReturn(s *ast.Return, frame *Frame, ctx *callCtx) (flow, *errors.Error) {
	if ctx == nil || !ctx.inFunction {
		return flow{}, errors.New(errors.KindIllegalReturn, "")
	}
	if ctx.retType == types.Void {
		if s.Value != nil {
			return flow{}, errors.New(errors.KindTypeMismatch, "void function cannot return a value")
		}
		return flow{returned: true, value: VoidValue}, nil
	}
	if s.Value == nil {
		return flow{}, errors.New(errors.KindTypeMismatch, "missing return value, expected "+ctx.retType.String())
	}
	v, err := e.evalExpr(s.Value, frame)
	if err != nil {
		return flow{}, err
	}
	if v.Type != ctx.retType {
		return flow{}, errors.New(errors.KindTypeMismatch, fmt.Sprintf("cannot return %s, expected %s", v.Type, ctx.retType))
	}
	return flow{returned: true, value: v}, nil
}
