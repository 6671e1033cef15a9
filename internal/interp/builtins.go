package interp

import (
	"strconv"

	"github.com/clscript/cl/internal/errors"
	"github.com/clscript/cl/internal/types"
)

// builtin is one entry of CL's fixed built-in table: a function name is
// never shadowable by a user declaration of the same name from inside
// the global frame (NameConflict, checked in statements.go), and calls
// to it bypass frame lookup entirely.
type builtin struct {
	params []types.Type
	ret    types.Type
	call   func(e *Evaluator, args []Value) (Value, *errors.Error)
}

var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"print":    {params: []types.Type{types.String}, ret: types.Void, call: biPrint},
		"println":  {params: []types.Type{types.String}, ret: types.Void, call: biPrintln},
		"boolToString":  {params: []types.Type{types.Bool}, ret: types.String, call: biBoolToString},
		"intToString":   {params: []types.Type{types.Int}, ret: types.String, call: biIntToString},
		"floatToString": {params: []types.Type{types.Float}, ret: types.String, call: biFloatToString},
		"stringToBool":  {params: []types.Type{types.String}, ret: types.Bool, call: biStringToBool},
		"intToBool":     {params: []types.Type{types.Int}, ret: types.Bool, call: biIntToBool},
		"floatToBool":   {params: []types.Type{types.Float}, ret: types.Bool, call: biFloatToBool},
		"stringToInt":   {params: []types.Type{types.String}, ret: types.Int, call: biStringToInt},
		"boolToInt":     {params: []types.Type{types.Bool}, ret: types.Int, call: biBoolToInt},
		"floatToInt":    {params: []types.Type{types.Float}, ret: types.Int, call: biFloatToInt},
		"stringToFloat": {params: []types.Type{types.String}, ret: types.Float, call: biStringToFloat},
		"boolToFloat":   {params: []types.Type{types.Bool}, ret: types.Float, call: biBoolToFloat},
		"intToFloat":    {params: []types.Type{types.Int}, ret: types.Float, call: biIntToFloat},
	}
}

func biPrint(e *Evaluator, args []Value) (Value, *errors.Error) {
	if !e.DryRun {
		e.write(args[0].S)
	}
	return VoidValue, nil
}

func biPrintln(e *Evaluator, args []Value) (Value, *errors.Error) {
	if !e.DryRun {
		e.write(args[0].S + "\n")
	}
	return VoidValue, nil
}

func biBoolToString(_ *Evaluator, args []Value) (Value, *errors.Error) {
	return StringValue(strconv.FormatBool(args[0].B)), nil
}

func biIntToString(_ *Evaluator, args []Value) (Value, *errors.Error) {
	return StringValue(strconv.FormatInt(int64(args[0].I), 10)), nil
}

func biFloatToString(_ *Evaluator, args []Value) (Value, *errors.Error) {
	return StringValue(strconv.FormatFloat(args[0].F, 'g', -1, 64)), nil
}

func biStringToBool(_ *Evaluator, args []Value) (Value, *errors.Error) {
	b, err := strconv.ParseBool(args[0].S)
	if err != nil {
		return Value{}, errors.New(errors.KindInvalidType, "cannot convert "+strconv.Quote(args[0].S)+" to bool")
	}
	return BoolValue(b), nil
}

func biIntToBool(_ *Evaluator, args []Value) (Value, *errors.Error) {
	return BoolValue(args[0].I != 0), nil
}

func biFloatToBool(_ *Evaluator, args []Value) (Value, *errors.Error) {
	return BoolValue(args[0].F != 0), nil
}

func biStringToInt(_ *Evaluator, args []Value) (Value, *errors.Error) {
	i, err := strconv.ParseInt(args[0].S, 10, 32)
	if err != nil {
		return Value{}, errors.New(errors.KindInvalidType, "cannot convert "+strconv.Quote(args[0].S)+" to int")
	}
	return IntValue(int32(i)), nil
}

func biBoolToInt(_ *Evaluator, args []Value) (Value, *errors.Error) {
	if args[0].B {
		return IntValue(1), nil
	}
	return IntValue(0), nil
}

func biFloatToInt(_ *Evaluator, args []Value) (Value, *errors.Error) {
	return IntValue(int32(args[0].F)), nil
}

func biStringToFloat(_ *Evaluator, args []Value) (Value, *errors.Error) {
	f, err := strconv.ParseFloat(args[0].S, 64)
	if err != nil {
		return Value{}, errors.New(errors.KindInvalidType, "cannot convert "+strconv.Quote(args[0].S)+" to float")
	}
	return FloatValue(f), nil
}

func biBoolToFloat(_ *Evaluator, args []Value) (Value, *errors.Error) {
	if args[0].B {
		return FloatValue(1), nil
	}
	return FloatValue(0), nil
}

func biIntToFloat(_ *Evaluator, args []Value) (Value, *errors.Error) {
	return FloatValue(float64(args[0].I)), nil
}
