// Package types implements CL's type lattice: the five concrete types
// plus the internal Unknown marker, and the static operator-resolution
// table used to type-check binary and unary expressions.
package types

import "github.com/clscript/cl/internal/token"

// Type is one of CL's value types, or Void/Unknown.
type Type int

const (
	// Unknown marks a declared-but-uninitialized variable whose type is
	// fixed at first assignment.
	Unknown Type = iota
	Int
	Float
	String
	Bool
	Void
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Void:
		return "void"
	default:
		return "unknown"
	}
}

// FromName maps a type keyword's lowercase spelling (as stored in
// ast.VarDecl.Type, ast.FnDecl.RetType and ast.Param.Type) to its Type.
func FromName(name string) (Type, bool) {
	switch name {
	case "int":
		return Int, true
	case "float":
		return Float, true
	case "string":
		return String, true
	case "bool":
		return Bool, true
	case "void":
		return Void, true
	default:
		return Unknown, false
	}
}

type opKey struct {
	Lhs Type
	Op  token.Kind
	Rhs Type
}

// binaryTable is the static (lhs, op, rhs) -> result lattice. Any
// combination absent from this table is an illegal operation.
var binaryTable = map[opKey]Type{
	{Int, token.PLUS, Int}:      Int,
	{Int, token.PLUS, Float}:    Float,
	{Float, token.PLUS, Int}:    Float,
	{Float, token.PLUS, Float}:  Float,
	{String, token.PLUS, String}: String,

	{Int, token.MINUS, Int}:     Int,
	{Int, token.MINUS, Float}:   Float,
	{Float, token.MINUS, Int}:   Float,
	{Float, token.MINUS, Float}: Float,

	{Int, token.STAR, Int}:     Int,
	{Int, token.STAR, Float}:   Float,
	{Float, token.STAR, Int}:   Float,
	{Float, token.STAR, Float}: Float,

	{Int, token.SLASH, Int}:     Int,
	{Int, token.SLASH, Float}:   Float,
	{Float, token.SLASH, Int}:   Float,
	{Float, token.SLASH, Float}: Float,

	{Int, token.EQ, Int}:       Bool,
	{Int, token.EQ, Float}:     Bool,
	{Float, token.EQ, Int}:     Bool,
	{Float, token.EQ, Float}:   Bool,
	{String, token.EQ, String}: Bool,
	{Bool, token.EQ, Bool}:     Bool,

	{Int, token.NEQ, Int}:       Bool,
	{Int, token.NEQ, Float}:     Bool,
	{Float, token.NEQ, Int}:     Bool,
	{Float, token.NEQ, Float}:   Bool,
	{String, token.NEQ, String}: Bool,
	{Bool, token.NEQ, Bool}:     Bool,

	{Int, token.LT, Int}:     Bool,
	{Int, token.LT, Float}:   Bool,
	{Float, token.LT, Int}:   Bool,
	{Float, token.LT, Float}: Bool,

	{Int, token.GT, Int}:     Bool,
	{Int, token.GT, Float}:   Bool,
	{Float, token.GT, Int}:   Bool,
	{Float, token.GT, Float}: Bool,

	{Int, token.LE, Int}:     Bool,
	{Int, token.LE, Float}:   Bool,
	{Float, token.LE, Int}:   Bool,
	{Float, token.LE, Float}: Bool,

	{Int, token.GE, Int}:     Bool,
	{Int, token.GE, Float}:   Bool,
	{Float, token.GE, Int}:   Bool,
	{Float, token.GE, Float}: Bool,

	{Bool, token.AND, Bool}: Bool,
	{Bool, token.OR, Bool}:  Bool,
}

// ResolveBinary looks up the result type of applying op to (lhs, rhs).
func ResolveBinary(lhs Type, op token.Kind, rhs Type) (Type, bool) {
	t, ok := binaryTable[opKey{lhs, op, rhs}]
	return t, ok
}

// IsNumeric reports whether t is Int or Float.
func IsNumeric(t Type) bool { return t == Int || t == Float }

// ResolveUnary reports the result type of applying op to operand; `!`
// is defined only on Bool.
func ResolveUnary(op token.Kind, operand Type) (Type, bool) {
	if op == token.NOT && operand == Bool {
		return Bool, true
	}
	return Unknown, false
}
