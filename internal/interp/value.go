package interp

import (
	"fmt"
	"strconv"

	"github.com/clscript/cl/internal/types"
)

// Value is CL's tagged-union runtime value: exactly one of Int, Float,
// String or Bool is meaningful, selected by Type. Void has no payload
// and is produced only by a function with no return value.
type Value struct {
	Type types.Type
	I    int32
	F    float64
	S    string
	B    bool
}

// VoidValue is the single unit value produced by a Void-returning
// function body that falls through without `return`.
var VoidValue = Value{Type: types.Void}

func IntValue(v int32) Value     { return Value{Type: types.Int, I: v} }
func FloatValue(v float64) Value { return Value{Type: types.Float, F: v} }
func StringValue(v string) Value { return Value{Type: types.String, S: v} }
func BoolValue(v bool) Value     { return Value{Type: types.Bool, B: v} }

// String renders v for diagnostics.
func (v Value) String() string {
	switch v.Type {
	case types.Int:
		return strconv.FormatInt(int64(v.I), 10)
	case types.Float:
		return strconv.FormatFloat(v.F, 'g', -1, 64)
	case types.String:
		return v.S
	case types.Bool:
		return strconv.FormatBool(v.B)
	case types.Void:
		return "<void>"
	default:
		return fmt.Sprintf("<unknown:%v>", v.Type)
	}
}
