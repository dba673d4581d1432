/*
File    : minij/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/minij/object"
)

// UnwrapReturn extracts the carried value from a Return signal, returning
// obj unchanged if it isn't one. Used once evaluation has exited the
// frame a return escapes to (spec §4.4 "return unwinds to the nearest
// method/constructor frame and yields its optional value").
func UnwrapReturn(obj object.Object) object.Object {
	if ret, ok := obj.(*object.Return); ok {
		if ret.Value == nil {
			return object.NULL
		}
		return ret.Value
	}
	return obj
}

// isNumeric reports whether obj is an Integer or a Double.
func isNumeric(obj object.Object) bool {
	switch obj.Type() {
	case object.IntegerType, object.DoubleType:
		return true
	default:
		return false
	}
}

// asFloat64 widens an Integer or Double to float64 for mixed arithmetic.
func asFloat64(obj object.Object) float64 {
	switch v := obj.(type) {
	case *object.Integer:
		return float64(v.Value)
	case *object.Double:
		return v.Value
	default:
		return 0
	}
}

// isTruthy reports the boolean-context value of obj: Boolean values use
// their own value; every other type is truthy except Null, matching the
// teacher's permissive "don't defend against ill-typed programs" stance
// carried over from spec §4.4's short-circuit note.
func isTruthy(obj object.Object) bool {
	switch v := obj.(type) {
	case *object.Boolean:
		return v.Value
	case *object.Null:
		return false
	default:
		return true
	}
}

// canonicalString renders obj's canonical string form (spec GLOSSARY:
// "integer without decimal, float with decimal, boolean as true/false,
// null as null, object/array as an implementation-defined reference
// notation").
func canonicalString(obj object.Object) string {
	switch v := obj.(type) {
	case *object.Integer:
		return strconv.FormatInt(v.Value, 10)
	case *object.Double:
		s := strconv.FormatFloat(v.Value, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case *object.Boolean:
		if v.Value {
			return "true"
		}
		return "false"
	case *object.Char:
		return string(v.Value)
	case *object.String:
		return v.Value
	case *object.Null:
		return "null"
	default:
		return obj.String()
	}
}

// referenceEqual reports reference identity for instances and arrays, and
// value equality for every other runtime value kind (spec §3: "equality is
// reference identity" for instances and arrays).
func referenceEqual(a, b object.Object) bool {
	switch av := a.(type) {
	case *object.Instance:
		bv, ok := b.(*object.Instance)
		return ok && av == bv
	case *object.Array:
		bv, ok := b.(*object.Array)
		return ok && av == bv
	case *object.Integer:
		bv, ok := b.(*object.Integer)
		return ok && av.Value == bv.Value
	case *object.Double:
		bv, ok := b.(*object.Double)
		return ok && av.Value == bv.Value
	case *object.Boolean:
		bv, ok := b.(*object.Boolean)
		return ok && av.Value == bv.Value
	case *object.Char:
		bv, ok := b.(*object.Char)
		return ok && av.Value == bv.Value
	case *object.String:
		bv, ok := b.(*object.String)
		return ok && av.Value == bv.Value
	case *object.Null:
		_, ok := b.(*object.Null)
		return ok
	default:
		return false
	}
}

func errorf(format string, args ...interface{}) *object.Error {
	return object.Errorf(format, args...)
}
