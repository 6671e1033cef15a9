// Package codegen lowers a checked CL program into a single C
// translation unit against the frozen runtime ABI: binary operators
// become rt_operator_<op>_<lty>_<rty> calls and built-ins become
// rt_builtin_<name> calls, leaving clrt/rt.c to supply the actual
// arithmetic, string and conversion semantics.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clscript/cl/internal/ast"
	"github.com/clscript/cl/internal/errors"
	"github.com/clscript/cl/internal/token"
	"github.com/clscript/cl/internal/types"
)

// Generator walks a Program and accumulates C source text.
type Generator struct {
	out         strings.Builder
	globals     []*ast.VarDecl
	fns         []*ast.FnDecl
	mainStmts   []ast.Stmt
	globalTypes map[string]types.Type
	localTypes  map[string]types.Type // reset per function/main body; seeded from globalTypes
}

// Generate lowers prog into one complete C translation unit. The
// program must already have passed a dry-run evaluation (see
// internal/interp) — Generate does not re-check types, it only needs
// enough type information to pick operator/builtin ABI symbols, which
// it recovers structurally (literal kinds, declared types, and the
// static operator lattice) rather than re-running the checker.
func Generate(prog *ast.Program) (string, *errors.Error) {
	g := &Generator{globalTypes: map[string]types.Type{}}
	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.VarDecl:
			g.globals = append(g.globals, s)
			if t, ok := types.FromName(s.Type); ok {
				g.globalTypes[s.Name] = t
			}
		case *ast.FnDecl:
			g.fns = append(g.fns, s)
		default:
			g.mainStmts = append(g.mainStmts, s)
		}
	}

	g.writeLine("/* generated by cl compile — do not edit by hand */")
	g.writeLine("#include \"rt.h\"")
	g.writeLine("")

	for _, v := range g.globals {
		if err := g.genGlobalVarDecl(v); err != nil {
			return "", err
		}
	}
	g.writeLine("")

	for _, fn := range g.fns {
		g.genPrototype(fn)
	}
	g.writeLine("")

	for _, fn := range g.fns {
		if err := g.genFunction(fn); err != nil {
			return "", err
		}
		g.writeLine("")
	}

	g.resetLocalScope()
	g.writeLine("int main(void) {")
	for _, s := range g.mainStmts {
		if err := g.genStmt(s, 1); err != nil {
			return "", err
		}
	}
	g.writeLine("\treturn 0;")
	g.writeLine("}")

	return g.out.String(), nil
}

func (g *Generator) writeLine(s string) {
	g.out.WriteString(s)
	g.out.WriteString("\n")
}

func (g *Generator) indent(depth int) string { return strings.Repeat("\t", depth) }

// resetLocalScope starts a fresh function/main body with only the
// global bindings visible, mirroring the fact that two CL functions'
// locals never share a scope even when they share a name.
func (g *Generator) resetLocalScope() {
	g.localTypes = make(map[string]types.Type, len(g.globalTypes))
	for name, t := range g.globalTypes {
		g.localTypes[name] = t
	}
}

// cType maps a CL type to its C spelling.
func cType(t types.Type) string {
	switch t {
	case types.Int:
		return "int32_t"
	case types.Float:
		return "double"
	case types.String:
		return "CLString"
	case types.Bool:
		return "bool"
	case types.Void:
		return "void"
	default:
		return "void"
	}
}

func (g *Generator) genGlobalVarDecl(v *ast.VarDecl) *errors.Error {
	t, ok := types.FromName(v.Type)
	if !ok {
		return errors.New(errors.KindInvalidType, v.Type)
	}
	if v.Init == nil {
		g.writeLine(fmt.Sprintf("%s %s;", cType(t), v.Name))
		return nil
	}
	expr, exprType, err := g.genExpr(v.Init)
	if err != nil {
		return err
	}
	if exprType != t {
		return errors.New(errors.KindTypeMismatch, "global "+v.Name)
	}
	g.writeLine(fmt.Sprintf("%s %s = %s;", cType(t), v.Name, expr))
	return nil
}

func (g *Generator) genPrototype(fn *ast.FnDecl) {
	retType, _ := types.FromName(fn.RetType)
	g.writeLine(fmt.Sprintf("%s %s(%s);", cType(retType), fn.Name, g.paramList(fn.Params)))
}

func (g *Generator) paramList(params []ast.Param) string {
	if len(params) == 0 {
		return "void"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		t, _ := types.FromName(p.Type)
		parts[i] = fmt.Sprintf("%s %s", cType(t), p.Name)
	}
	return strings.Join(parts, ", ")
}

func (g *Generator) genFunction(fn *ast.FnDecl) *errors.Error {
	retType, ok := types.FromName(fn.RetType)
	if !ok {
		return errors.New(errors.KindInvalidType, fn.RetType)
	}
	g.resetLocalScope()
	for _, p := range fn.Params {
		if t, ok := types.FromName(p.Type); ok {
			g.localTypes[p.Name] = t
		}
	}

	g.writeLine(fmt.Sprintf("%s %s(%s) {", cType(retType), fn.Name, g.paramList(fn.Params)))
	for _, s := range fn.Body.Statements {
		if err := g.genStmt(s, 1); err != nil {
			return err
		}
	}
	g.writeLine("}")
	return nil
}

func (g *Generator) genStmt(stmt ast.Stmt, depth int) *errors.Error {
	ind := g.indent(depth)
	switch s := stmt.(type) {
	case *ast.VarDecl:
		t, ok := types.FromName(s.Type)
		if !ok {
			return errors.New(errors.KindInvalidType, s.Type)
		}
		g.localTypes[s.Name] = t
		if s.Init == nil {
			g.writeLine(fmt.Sprintf("%s%s %s;", ind, cType(t), s.Name))
			return nil
		}
		expr, _, err := g.genExpr(s.Init)
		if err != nil {
			return err
		}
		g.writeLine(fmt.Sprintf("%s%s %s = %s;", ind, cType(t), s.Name, expr))

	case *ast.Assign:
		expr, _, err := g.genExpr(s.Value)
		if err != nil {
			return err
		}
		g.writeLine(fmt.Sprintf("%s%s = %s;", ind, s.Name, expr))

	case *ast.If:
		for i, branch := range s.Branches {
			cond, _, err := g.genExpr(branch.Cond)
			if err != nil {
				return err
			}
			kw := "if"
			if i > 0 {
				kw = "} else if"
			}
			g.writeLine(fmt.Sprintf("%s%s (%s) {", ind, kw, cond))
			for _, inner := range branch.Body.Statements {
				if err := g.genStmt(inner, depth+1); err != nil {
					return err
				}
			}
		}
		if s.Else != nil {
			g.writeLine(ind + "} else {")
			for _, inner := range s.Else.Statements {
				if err := g.genStmt(inner, depth+1); err != nil {
					return err
				}
			}
		}
		g.writeLine(ind + "}")

	case *ast.While:
		cond, _, err := g.genExpr(s.Cond)
		if err != nil {
			return err
		}
		g.writeLine(fmt.Sprintf("%swhile (%s) {", ind, cond))
		for _, inner := range s.Body.Statements {
			if err := g.genStmt(inner, depth+1); err != nil {
				return err
			}
		}
		g.writeLine(ind + "}")

	case *ast.Return:
		if s.Value == nil {
			g.writeLine(ind + "return;")
			return nil
		}
		expr, _, err := g.genExpr(s.Value)
		if err != nil {
			return err
		}
		g.writeLine(fmt.Sprintf("%sreturn %s;", ind, expr))

	case *ast.ExprStmt:
		expr, _, err := g.genExpr(s.Expr)
		if err != nil {
			return err
		}
		g.writeLine(fmt.Sprintf("%s%s;", ind, expr))

	case *ast.Block:
		g.writeLine(ind + "{")
		for _, inner := range s.Statements {
			if err := g.genStmt(inner, depth+1); err != nil {
				return err
			}
		}
		g.writeLine(ind + "}")

	default:
		return errors.New(errors.KindInvalidType, fmt.Sprintf("unhandled statement %T", stmt))
	}
	return nil
}

// genExpr renders expr as a C expression and reports its CL type (best
// effort — VariableNotFound-style structural failures are left to the
// interpreter's dry run, which `cl compile` runs ahead of Generate
// unless --skip-type-check is given).
func (g *Generator) genExpr(expr ast.Expr) (string, types.Type, *errors.Error) {
	switch n := expr.(type) {
	case *ast.IntLit:
		return strconv.FormatInt(int64(n.Value), 10), types.Int, nil
	case *ast.FloatLit:
		return strconv.FormatFloat(n.Value, 'g', -1, 64), types.Float, nil
	case *ast.StringLit:
		return fmt.Sprintf("rt_string_from_literal(%s)", strconv.Quote(n.Value)), types.String, nil
	case *ast.BoolLit:
		if n.Value {
			return "true", types.Bool, nil
		}
		return "false", types.Bool, nil
	case *ast.Var:
		return n.Name, g.localTypes[n.Name], nil
	case *ast.Unary:
		operand, _, err := g.genExpr(n.Operand)
		if err != nil {
			return "", types.Unknown, err
		}
		return fmt.Sprintf("(!%s)", operand), types.Bool, nil
	case *ast.Binary:
		return g.genBinary(n)
	case *ast.Call:
		return g.genCall(n)
	default:
		return "", types.Unknown, errors.New(errors.KindInvalidType, fmt.Sprintf("unhandled expression %T", expr))
	}
}

// opName maps an operator token to the ABI's symbol-name fragment.
func opName(op token.Kind) string {
	switch op {
	case token.PLUS:
		return "add"
	case token.MINUS:
		return "sub"
	case token.STAR:
		return "mul"
	case token.SLASH:
		return "div"
	case token.EQ:
		return "eq"
	case token.NEQ:
		return "neq"
	case token.LT:
		return "lt"
	case token.GT:
		return "gt"
	case token.LE:
		return "le"
	case token.GE:
		return "ge"
	default:
		return "unknown"
	}
}

func (g *Generator) genBinary(n *ast.Binary) (string, types.Type, *errors.Error) {
	lhs, lt, err := g.genExpr(n.Left)
	if err != nil {
		return "", types.Unknown, err
	}

	// && and || stay native C, short-circuit the same way CL does; only
	// non-short-circuit binary operators go through the runtime ABI.
	if n.Op == token.AND || n.Op == token.OR {
		rhs, _, err := g.genExpr(n.Right)
		if err != nil {
			return "", types.Unknown, err
		}
		csym := "&&"
		if n.Op == token.OR {
			csym = "||"
		}
		return fmt.Sprintf("(%s %s %s)", lhs, csym, rhs), types.Bool, nil
	}

	rhs, rt, err := g.genExpr(n.Right)
	if err != nil {
		return "", types.Unknown, err
	}
	resultType, ok := types.ResolveBinary(lt, n.Op, rt)
	if !ok {
		return "", types.Unknown, errors.New(errors.KindIllegalOperation, fmt.Sprintf("%s %s %s", lt, n.Op, rt))
	}
	fn := fmt.Sprintf("rt_operator_%s_%s_%s", opName(n.Op), lt, rt)
	return fmt.Sprintf("%s(%s, %s)", fn, lhs, rhs), resultType, nil
}

func (g *Generator) genCall(n *ast.Call) (string, types.Type, *errors.Error) {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		s, _, err := g.genExpr(a)
		if err != nil {
			return "", types.Unknown, err
		}
		args[i] = s
	}
	argList := strings.Join(args, ", ")

	if ret, ok := builtinReturnTypes[n.Callee]; ok {
		return fmt.Sprintf("rt_builtin_%s(%s)", n.Callee, argList), ret, nil
	}
	// A user-defined function: emitted under its own C name, matching
	// its forward-declared prototype, and typed by its declared return
	// type.
	for _, fn := range g.fns {
		if fn.Name == n.Callee {
			ret, _ := types.FromName(fn.RetType)
			return fmt.Sprintf("%s(%s)", n.Callee, argList), ret, nil
		}
	}
	return fmt.Sprintf("%s(%s)", n.Callee, argList), types.Unknown, nil
}

// builtinReturnTypes mirrors interp's built-in table so calls to them
// can be typed here without re-running the checker.
var builtinReturnTypes = map[string]types.Type{
	"print":         types.Void,
	"println":       types.Void,
	"boolToString":  types.String,
	"intToString":   types.String,
	"floatToString": types.String,
	"stringToBool":  types.Bool,
	"intToBool":     types.Bool,
	"floatToBool":   types.Bool,
	"stringToInt":   types.Int,
	"boolToInt":     types.Int,
	"floatToInt":    types.Int,
	"stringToFloat": types.Float,
	"boolToFloat":   types.Float,
	"intToFloat":    types.Float,
}
