package ast

import "github.com/clscript/cl/internal/token"

// Extension-point nodes for the `class` / `static Self T(...)` /
// `.new(...)` / `self.<field>` surface. Whether that surface is actually
// implemented or merely aspirational in its source material is an open
// question; these node types exist so a future class pass has somewhere
// to attach, but the parser never constructs them and the checker,
// evaluator and lowerer have no case for them. Constructing one outside
// of tests is not reachable from any CL source the current parser
// accepts.

// Field is one `Type name` member of a ClassDecl.
type Field struct {
	Type string
	Name string
}

// ClassDecl declares a class with fields and methods. Unexecuted in v1.
type ClassDecl struct {
	Position token.Position
	Name     string
	Fields   []Field
	Methods  []*FnDecl
}

func (n *ClassDecl) Pos() token.Position { return n.Position }
func (*ClassDecl) stmtNode()             {}

// New is a `ClassName.new(args...)` constructor call. Unexecuted in v1.
type New struct {
	Position  token.Position
	ClassName string
	Args      []Expr
}

func (n *New) Pos() token.Position { return n.Position }
func (*New) exprNode()             {}

// MethodCall is a `receiver.method(args...)` call. Unexecuted in v1.
type MethodCall struct {
	Position token.Position
	Receiver Expr
	Method   string
	Args     []Expr
}

func (n *MethodCall) Pos() token.Position { return n.Position }
func (*MethodCall) exprNode()             {}

// FieldAccess is a `receiver.field` access, including `self.field`.
// Unexecuted in v1.
type FieldAccess struct {
	Position token.Position
	Receiver Expr
	Field    string
}

func (n *FieldAccess) Pos() token.Position { return n.Position }
func (*FieldAccess) exprNode()             {}
