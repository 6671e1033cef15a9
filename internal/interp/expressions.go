package interp

import (
	"fmt"

	"github.com/clscript/cl/internal/ast"
	"github.com/clscript/cl/internal/errors"
	"github.com/clscript/cl/internal/token"
	"github.com/clscript/cl/internal/types"
)

func (e *Evaluator) evalExpr(expr ast.Expr, frame *Frame) (Value, *errors.Error) {
	switch n := expr.(type) {
	case *ast.IntLit:
		return IntValue(n.Value), nil
	case *ast.FloatLit:
		return FloatValue(n.Value), nil
	case *ast.StringLit:
		return StringValue(n.Value), nil
	case *ast.BoolLit:
		return BoolValue(n.Value), nil
	case *ast.Var:
		return e.evalVar(n, frame)
	case *ast.Unary:
		return e.evalUnary(n, frame)
	case *ast.Binary:
		return e.evalBinary(n, frame)
	case *ast.Call:
		return e.evalCall(n, frame)
	default:
		return Value{}, errors.New(errors.KindInvalidType, fmt.Sprintf("unhandled expression %T", expr))
	}
}

// evalVar resolves an identifier used as a value via frame-crossing
// lookup. Resolving to a Function is an error: functions are not
// first-class values in CL.
func (e *Evaluator) evalVar(n *ast.Var, frame *Frame) (Value, *errors.Error) {
	b, _, ok := frame.Lookup(n.Name)
	if !ok {
		return Value{}, errors.New(errors.KindVariableNotFound, n.Name)
	}
	slot, ok := b.(*ValueSlot)
	if !ok {
		return Value{}, errors.New(errors.KindTypeMismatch, n.Name+" is a function, not a value")
	}
	if !slot.Initialized {
		return Value{}, errors.New(errors.KindVariableUninitialized, n.Name)
	}
	return slot.Value, nil
}

// evalUnary implements CL's sole unary operator, `!`, defined only on
// Bool.
func (e *Evaluator) evalUnary(n *ast.Unary, frame *Frame) (Value, *errors.Error) {
	v, err := e.evalExpr(n.Operand, frame)
	if err != nil {
		return Value{}, err
	}
	if _, ok := types.ResolveUnary(n.Op, v.Type); !ok {
		return Value{}, errors.New(errors.KindIllegalOperation, fmt.Sprintf("%s%s", n.Op, v.Type))
	}
	return BoolValue(!v.B), nil
}

// evalBinary resolves the result type via the static operator lattice,
// then performs the operation, checking DivisionByZero for `/` and
// short-circuiting `&&`/`||` before evaluating the right operand.
func (e *Evaluator) evalBinary(n *ast.Binary, frame *Frame) (Value, *errors.Error) {
	lhs, err := e.evalExpr(n.Left, frame)
	if err != nil {
		return Value{}, err
	}

	if n.Op == token.AND || n.Op == token.OR {
		if lhs.Type != types.Bool {
			return Value{}, errors.New(errors.KindIllegalOperation, fmt.Sprintf("%s %s %s", lhs.Type, n.Op, "?"))
		}
		if n.Op == token.AND && !lhs.B {
			return BoolValue(false), nil
		}
		if n.Op == token.OR && lhs.B {
			return BoolValue(true), nil
		}
		rhs, err := e.evalExpr(n.Right, frame)
		if err != nil {
			return Value{}, err
		}
		if rhs.Type != types.Bool {
			return Value{}, errors.New(errors.KindIllegalOperation, fmt.Sprintf("%s %s %s", lhs.Type, n.Op, rhs.Type))
		}
		return BoolValue(rhs.B), nil
	}

	rhs, err := e.evalExpr(n.Right, frame)
	if err != nil {
		return Value{}, err
	}

	resultType, ok := types.ResolveBinary(lhs.Type, n.Op, rhs.Type)
	if !ok {
		return Value{}, errors.New(errors.KindIllegalOperation, fmt.Sprintf("%s %s %s", lhs.Type, n.Op, rhs.Type))
	}
	return applyBinary(n.Op, lhs, rhs, resultType)
}

// evalCall dispatches to either the fixed built-in table or a
// user-declared Function binding, resolved via frame-crossing lookup so
// a function can call itself and its sibling declarations: ancestor
// functions remain visible across a call boundary.
func (e *Evaluator) evalCall(n *ast.Call, frame *Frame) (Value, *errors.Error) {
	args := make([]Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := e.evalExpr(a, frame)
		if err != nil {
			return Value{}, err
		}
		args = append(args, v)
	}

	if bi, ok := builtins[n.Callee]; ok {
		if len(args) != len(bi.params) {
			return Value{}, errors.New(errors.KindIllegalArgumentCount, fmt.Sprintf("%s expects %d argument(s), got %d", n.Callee, len(bi.params), len(args)))
		}
		for i, p := range bi.params {
			if args[i].Type != p {
				return Value{}, errors.New(errors.KindTypeMismatch, fmt.Sprintf("%s argument %d: expected %s, got %s", n.Callee, i+1, p, args[i].Type))
			}
		}
		return bi.call(e, args)
	}

	b, _, ok := frame.Lookup(n.Callee)
	if !ok {
		return Value{}, errors.New(errors.KindVariableNotFound, n.Callee)
	}
	fn, ok := b.(*Function)
	if !ok {
		return Value{}, errors.New(errors.KindTypeMismatch, n.Callee+" is not a function")
	}
	return e.callFunction(fn, args)
}

// callFunction pushes a boundary frame parented by fn.DefiningFrame,
// binds parameters as initialized slots, and executes the body directly
// in that frame (the call frame itself serves as the body's top-level
// scope — no extra block frame is pushed for it).
func (e *Evaluator) callFunction(fn *Function, args []Value) (Value, *errors.Error) {
	if len(args) != len(fn.Params) {
		return Value{}, errors.New(errors.KindIllegalArgumentCount, fmt.Sprintf("expected %d argument(s), got %d", len(fn.Params), len(args)))
	}

	callFrame := NewCallFrame(fn.DefiningFrame)
	for i, p := range fn.Params {
		paramType, ok := types.FromName(p.Type)
		if !ok {
			return Value{}, errors.New(errors.KindInvalidType, p.Type)
		}
		if args[i].Type != paramType {
			return Value{}, errors.New(errors.KindTypeMismatch, fmt.Sprintf("parameter %s: expected %s, got %s", p.Name, paramType, args[i].Type))
		}
		callFrame.Declare(p.Name, &ValueSlot{DeclaredType: paramType, Initialized: true, Value: args[i]})
	}

	f, err := e.execStmts(fn.Body.Statements, callFrame, &callCtx{inFunction: true, retType: fn.RetType})
	if err != nil {
		return Value{}, err
	}
	if f.returned {
		return f.value, nil
	}
	if fn.RetType != types.Void {
		return Value{}, errors.New(errors.KindTypeMismatch, "function falls through without returning a value of type "+fn.RetType.String())
	}
	return VoidValue, nil
}

// asFloat widens an Int or Float value to float64, for operators whose
// result type the lattice has already resolved to Float.
func asFloat(v Value) float64 {
	if v.Type == types.Int {
		return float64(v.I)
	}
	return v.F
}

// applyBinary performs op on lhs/rhs once the lattice has already
// resolved resultType, widening Int to Float where one side is Float.
func applyBinary(op token.Kind, lhs, rhs Value, _ types.Type) (Value, *errors.Error) {
	bothInt := lhs.Type == types.Int && rhs.Type == types.Int
	bothString := lhs.Type == types.String && rhs.Type == types.String
	bothBool := lhs.Type == types.Bool && rhs.Type == types.Bool

	switch op {
	case token.PLUS:
		if bothString {
			return StringValue(lhs.S + rhs.S), nil
		}
		if bothInt {
			return IntValue(lhs.I + rhs.I), nil
		}
		return FloatValue(asFloat(lhs) + asFloat(rhs)), nil

	case token.MINUS:
		if bothInt {
			return IntValue(lhs.I - rhs.I), nil
		}
		return FloatValue(asFloat(lhs) - asFloat(rhs)), nil

	case token.STAR:
		if bothInt {
			return IntValue(lhs.I * rhs.I), nil
		}
		return FloatValue(asFloat(lhs) * asFloat(rhs)), nil

	case token.SLASH:
		if bothInt {
			if rhs.I == 0 {
				return Value{}, errors.New(errors.KindDivisionByZero, "")
			}
			return IntValue(lhs.I / rhs.I), nil
		}
		r := asFloat(rhs)
		if r == 0 {
			return Value{}, errors.New(errors.KindDivisionByZero, "")
		}
		return FloatValue(asFloat(lhs) / r), nil

	case token.EQ, token.NEQ:
		var eq bool
		switch {
		case bothString:
			eq = lhs.S == rhs.S
		case bothBool:
			eq = lhs.B == rhs.B
		default:
			eq = asFloat(lhs) == asFloat(rhs)
		}
		if op == token.NEQ {
			eq = !eq
		}
		return BoolValue(eq), nil

	case token.LT:
		return BoolValue(asFloat(lhs) < asFloat(rhs)), nil
	case token.GT:
		return BoolValue(asFloat(lhs) > asFloat(rhs)), nil
	case token.LE:
		return BoolValue(asFloat(lhs) <= asFloat(rhs)), nil
	case token.GE:
		return BoolValue(asFloat(lhs) >= asFloat(rhs)), nil

	default:
		return Value{}, errors.New(errors.KindIllegalOperation, op.String())
	}
}
