/*
File    : minij/eval/evaluator_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Built-in dispatch tables for Math.* and string methods (spec §4.4 Method
// dispatch, §9 Design Notes: "prefer a compile-time-constant table keyed
// by method name over chained conditionals").
package eval

import (
	"math"
	"strings"

	"github.com/akashmaji946/minij/object"
	"github.com/akashmaji946/minij/parser"
)

// mathBuiltins maps a Math.* method name to its implementation. Every
// entry receives already-evaluated arguments and returns an arity/type
// Error, an Integer (abs, max and min when every argument is an Integer),
// or a Double.
var mathBuiltins = map[string]func(args []object.Object) object.Object{
	"abs": func(args []object.Object) object.Object {
		if err := requireArity("Math.abs", args, 1); err != nil {
			return err
		}
		if i, ok := args[0].(*object.Integer); ok {
			if i.Value < 0 {
				return &object.Integer{Value: -i.Value}
			}
			return i
		}
		return &object.Double{Value: math.Abs(asFloat64(args[0]))}
	},
	"sqrt": func(args []object.Object) object.Object { return mathUnary("Math.sqrt", args, math.Sqrt) },
	"sin":  func(args []object.Object) object.Object { return mathUnary("Math.sin", args, math.Sin) },
	"cos":  func(args []object.Object) object.Object { return mathUnary("Math.cos", args, math.Cos) },
	"tan":  func(args []object.Object) object.Object { return mathUnary("Math.tan", args, math.Tan) },
	"floor": func(args []object.Object) object.Object {
		return mathUnary("Math.floor", args, math.Floor)
	},
	"ceil": func(args []object.Object) object.Object { return mathUnary("Math.ceil", args, math.Ceil) },
	"pow": func(args []object.Object) object.Object {
		if err := requireArity("Math.pow", args, 2); err != nil {
			return err
		}
		return &object.Double{Value: math.Pow(asFloat64(args[0]), asFloat64(args[1]))}
	},
	"max": func(args []object.Object) object.Object {
		if err := requireArity("Math.max", args, 2); err != nil {
			return err
		}
		a, okA := args[0].(*object.Integer)
		b, okB := args[1].(*object.Integer)
		if okA && okB {
			if a.Value >= b.Value {
				return a
			}
			return b
		}
		return &object.Double{Value: math.Max(asFloat64(args[0]), asFloat64(args[1]))}
	},
	"min": func(args []object.Object) object.Object {
		if err := requireArity("Math.min", args, 2); err != nil {
			return err
		}
		a, okA := args[0].(*object.Integer)
		b, okB := args[1].(*object.Integer)
		if okA && okB {
			if a.Value <= b.Value {
				return a
			}
			return b
		}
		return &object.Double{Value: math.Min(asFloat64(args[0]), asFloat64(args[1]))}
	},
}

func mathUnary(name string, args []object.Object, fn func(float64) float64) object.Object {
	if err := requireArity(name, args, 1); err != nil {
		return err
	}
	return &object.Double{Value: fn(asFloat64(args[0]))}
}

func requireArity(name string, args []object.Object, n int) *object.Error {
	if len(args) != n {
		return errorf("%s expects %d argument(s), got %d", name, n, len(args))
	}
	for _, a := range args {
		if !isNumeric(a) {
			return errorf("%s expects numeric arguments, got %s", name, a.Type())
		}
	}
	return nil
}

// evalMathCall dispatches a `Math.method(args)` call (spec §4.4: "a call
// with receiver named Math dispatches to built-in mathematical
// operations").
func (e *Evaluator) evalMathCall(n *parser.MethodCall) object.Object {
	fn, ok := mathBuiltins[n.Name]
	if !ok {
		return errorf("Math has no method '%s'", n.Name)
	}
	args, errObj := e.evalArgs(n.Args)
	if errObj != nil {
		return errObj
	}
	return fn(args)
}

// stringBuiltins maps a string method name to its implementation, each
// receiving the receiver string's Go value and already-evaluated
// arguments (spec §4.4: "a call whose receiver evaluates to a string
// dispatches to string built-ins").
var stringBuiltins = map[string]func(recv string, args []object.Object) object.Object{
	"length": func(recv string, args []object.Object) object.Object {
		return &object.Integer{Value: int64(len(recv))}
	},
	"substring": func(recv string, args []object.Object) object.Object {
		switch len(args) {
		case 1:
			start, ok := args[0].(*object.Integer)
			if !ok || start.Value < 0 || int(start.Value) > len(recv) {
				return errorf("substring: invalid start index")
			}
			return &object.String{Value: recv[start.Value:]}
		case 2:
			start, ok1 := args[0].(*object.Integer)
			end, ok2 := args[1].(*object.Integer)
			if !ok1 || !ok2 || start.Value < 0 || end.Value > int64(len(recv)) || start.Value > end.Value {
				return errorf("substring: invalid range")
			}
			return &object.String{Value: recv[start.Value:end.Value]}
		default:
			return errorf("substring expects 1 or 2 arguments, got %d", len(args))
		}
	},
	"toUpperCase": func(recv string, args []object.Object) object.Object {
		return &object.String{Value: strings.ToUpper(recv)}
	},
	"toLowerCase": func(recv string, args []object.Object) object.Object {
		return &object.String{Value: strings.ToLower(recv)}
	},
	"charAt": func(recv string, args []object.Object) object.Object {
		if len(args) != 1 {
			return errorf("charAt expects 1 argument, got %d", len(args))
		}
		idx, ok := args[0].(*object.Integer)
		if !ok || idx.Value < 0 || int(idx.Value) >= len(recv) {
			return errorf("charAt: index out of range")
		}
		return &object.Char{Value: recv[idx.Value]}
	},
	"indexOf": func(recv string, args []object.Object) object.Object {
		if len(args) != 1 {
			return errorf("indexOf expects 1 argument, got %d", len(args))
		}
		sub, ok := args[0].(*object.String)
		if !ok {
			return errorf("indexOf expects a string argument, got %s", args[0].Type())
		}
		return &object.Integer{Value: int64(strings.Index(recv, sub.Value))}
	},
	"replace": func(recv string, args []object.Object) object.Object {
		if len(args) != 2 {
			return errorf("replace expects 2 arguments, got %d", len(args))
		}
		oldS, ok1 := args[0].(*object.String)
		newS, ok2 := args[1].(*object.String)
		if !ok1 || !ok2 {
			return errorf("replace expects string arguments")
		}
		return &object.String{Value: strings.ReplaceAll(recv, oldS.Value, newS.Value)}
	},
}

// evalStringMethod dispatches a method call on a string-valued receiver.
func (e *Evaluator) evalStringMethod(recv *object.String, n *parser.MethodCall) object.Object {
	fn, ok := stringBuiltins[n.Name]
	if !ok {
		return errorf("String has no method '%s'", n.Name)
	}
	args, errObj := e.evalArgs(n.Args)
	if errObj != nil {
		return errObj
	}
	return fn(recv.Value, args)
}
