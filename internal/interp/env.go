// Package interp is the co-resident type/scope checker and tree-walking
// evaluator: evaluation performs type checking as it proceeds, and a
// dry-run mode gives the same diagnostics without the side effects of
// print/println (used by `cl compile`'s type-checking pass ahead of
// lowering).
package interp

import (
	"github.com/clscript/cl/internal/ast"
	"github.com/clscript/cl/internal/types"
)

// ValueSlot is a variable binding: a declared type, whether it has been
// assigned yet, and (once initialized) its value.
type ValueSlot struct {
	DeclaredType types.Type
	Initialized  bool
	Value        Value
}

// Function is a function binding: it captures DefiningFrame, the frame
// that was active when the function was declared, which becomes the
// parent frame of every call to it — never the caller's frame.
type Function struct {
	RetType       types.Type
	Params        []ast.Param
	Body          *ast.Block
	DefiningFrame *Frame
}

// Binding is implemented by *ValueSlot and *Function; the two are never
// interchangeable.
type Binding interface{ bindingKind() string }

func (*ValueSlot) bindingKind() string { return "value" }
func (*Function) bindingKind() string  { return "function" }

// Frame is one lexical scope's bindings. Frames form a stack; boundary
// marks a frame pushed for a function call, at which point walking
// further up the parent chain only exposes Function bindings from its
// ancestors — the frame-crossing rule. Block frames (if/while bodies)
// are not boundaries: the rule only fires at a function-call boundary,
// never at a block boundary.
type Frame struct {
	parent   *Frame
	boundary bool
	bindings map[string]Binding
}

// NewGlobalFrame creates the bottom-of-stack frame with no parent.
func NewGlobalFrame() *Frame {
	return &Frame{bindings: make(map[string]Binding)}
}

// NewBlockFrame pushes a non-boundary scope (if/while bodies and nested
// blocks) onto parent. The top level of a function body runs directly
// in its call frame instead (see callFunction).
func NewBlockFrame(parent *Frame) *Frame {
	return &Frame{parent: parent, bindings: make(map[string]Binding)}
}

// NewCallFrame pushes a boundary scope parented by definingFrame — the
// frame active when the called function was declared, not the caller's
// frame.
func NewCallFrame(definingFrame *Frame) *Frame {
	return &Frame{parent: definingFrame, boundary: true, bindings: make(map[string]Binding)}
}

// Own returns the binding declared directly in f (not an ancestor), used
// by VarDecl/FnDecl's current-frame-only conflict checks.
func (f *Frame) Own(name string) (Binding, bool) {
	b, ok := f.bindings[name]
	return b, ok
}

// Declare installs a binding directly in f, unconditionally overwriting
// whatever was there (callers must have already checked NameConflict).
func (f *Frame) Declare(name string, b Binding) {
	f.bindings[name] = b
}

// Lookup implements CL's identifier-resolution rule: search outward
// frame by frame; a frame's own bindings are always visible, but once
// the walk crosses a call-frame boundary, only Function bindings from
// every frame above it are visible — a value found above that point is
// treated as not visible, and the search continues past it looking for
// a Function with the same name.
func (f *Frame) Lookup(name string) (Binding, *Frame, bool) {
	restricted := false
	for cur := f; cur != nil; cur = cur.parent {
		if b, ok := cur.bindings[name]; ok {
			if !restricted {
				return b, cur, true
			}
			if fn, ok := b.(*Function); ok {
				return fn, cur, true
			}
			// A non-function binding beyond a call boundary is invisible;
			// keep walking in case a Function with the same name exists
			// further up (it cannot share a frame with this value, since
			// a frame never holds two bindings with the same name).
		}
		if cur.boundary {
			restricted = true
		}
	}
	return nil, nil, false
}
