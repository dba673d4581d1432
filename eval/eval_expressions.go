/*
File    : minij/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/minij/object"
	"github.com/akashmaji946/minij/parser"
)

// evalExpr dispatches on the expression node's concrete type, exhaustively
// covering every variant in parser/node.go (spec §9 Design Notes: "closed
// sum type with exhaustive pattern matching").
func (e *Evaluator) evalExpr(expr parser.Expr) object.Object {
	switch n := expr.(type) {
	case *parser.IntLit:
		return &object.Integer{Value: n.Value}
	case *parser.FloatLit:
		return &object.Double{Value: n.Value}
	case *parser.StringLit:
		return &object.String{Value: n.Value}
	case *parser.CharLit:
		return &object.Char{Value: n.Value}
	case *parser.BoolLit:
		return object.BoolOf(n.Value)
	case *parser.NullLit:
		return object.NULL
	case *parser.Variable:
		return e.lookupVariable(n.Name)
	case *parser.This:
		if e.Receiver == nil {
			return errorf("'this' referenced outside a method or constructor body")
		}
		return e.Receiver
	case *parser.BinOp:
		return e.evalBinOp(n)
	case *parser.UnaryOp:
		return e.evalUnaryOp(n)
	case *parser.Ternary:
		return e.evalTernary(n)
	case *parser.ArrayAccess:
		return e.evalArrayAccess(n)
	case *parser.FieldAccess:
		return e.evalFieldAccess(n)
	case *parser.MethodCall:
		return e.evalMethodCall(n)
	case *parser.NewObject:
		return e.evalNewObject(n)
	case *parser.NewArray:
		return e.evalNewArray(n)
	case *parser.ArrayLit:
		return e.evalArrayLit(n)
	case *parser.Cast:
		return e.evalCast(n)
	default:
		return errorf("unhandled expression node %T", expr)
	}
}

// lookupVariable implements spec §4.4 Name resolution: frames top to
// bottom, then the current receiver's fields if set, else "not defined".
func (e *Evaluator) lookupVariable(name string) object.Object {
	if v, ok := e.Scp.LookUp(name); ok {
		return v
	}
	if e.Receiver != nil {
		if _, has := e.Receiver.Fields[name]; has {
			return e.Receiver.GetField(name)
		}
	}
	return errorf("Variable '%s' is not defined", name)
}

// setVariable implements spec §4.4 Assignment (`set_var`): write to the
// nearest frame that already binds the name; else to the current
// receiver's field of that name if it has one; else create a new binding
// in the top (current) frame.
func (e *Evaluator) setVariable(name string, value object.Object) {
	if e.Scp.Assign(name, value) {
		return
	}
	if e.Receiver != nil {
		if _, has := e.Receiver.Fields[name]; has {
			e.Receiver.SetField(name, value)
			return
		}
	}
	e.Scp.Bind(name, value)
}

// evalBinOp implements spec §4.4 arithmetic/comparison/logical semantics.
// Operand evaluation is strictly left-then-right, and && / || short-circuit
// without evaluating the right operand.
func (e *Evaluator) evalBinOp(n *parser.BinOp) object.Object {
	if n.Operator == "&&" {
		left := e.evalExpr(n.Left)
		if object.IsError(left) {
			return left
		}
		if !isTruthy(left) {
			return left
		}
		return e.evalExpr(n.Right)
	}
	if n.Operator == "||" {
		left := e.evalExpr(n.Left)
		if object.IsError(left) {
			return left
		}
		if isTruthy(left) {
			return left
		}
		return e.evalExpr(n.Right)
	}

	left := e.evalExpr(n.Left)
	if object.IsError(left) {
		return left
	}
	right := e.evalExpr(n.Right)
	if object.IsError(right) {
		return right
	}

	switch n.Operator {
	case "+":
		return evalPlus(left, right)
	case "-", "*", "/", "%":
		return evalArithmetic(n.Operator, left, right)
	case "==":
		return object.BoolOf(referenceEqual(left, right))
	case "!=":
		return object.BoolOf(!referenceEqual(left, right))
	case "<", "<=", ">", ">=":
		return evalRelational(n.Operator, left, right)
	default:
		return errorf("unknown operator: %s", n.Operator)
	}
}

// evalPlus implements the overloaded `+` of spec §4.4: if either operand is
// a string, convert the other to its canonical string form and concatenate;
// otherwise perform numeric addition.
func evalPlus(left, right object.Object) object.Object {
	if left.Type() == object.StringType || right.Type() == object.StringType {
		return &object.String{Value: canonicalString(left) + canonicalString(right)}
	}
	if !isNumeric(left) || !isNumeric(right) {
		return errorf("operator + not supported for types %s and %s", left.Type(), right.Type())
	}
	if left.Type() == object.IntegerType && right.Type() == object.IntegerType {
		return &object.Integer{Value: left.(*object.Integer).Value + right.(*object.Integer).Value}
	}
	return &object.Double{Value: asFloat64(left) + asFloat64(right)}
}

// evalArithmetic implements -, *, /, % (spec §4.4: "other arithmetic
// operators require numeric operands; / fails with 'Division by zero' when
// the right operand is zero").
func evalArithmetic(op string, left, right object.Object) object.Object {
	if !isNumeric(left) || !isNumeric(right) {
		return errorf("operator %s not supported for types %s and %s", op, left.Type(), right.Type())
	}
	bothInt := left.Type() == object.IntegerType && right.Type() == object.IntegerType
	if bothInt {
		l, r := left.(*object.Integer).Value, right.(*object.Integer).Value
		switch op {
		case "-":
			return &object.Integer{Value: l - r}
		case "*":
			return &object.Integer{Value: l * r}
		case "/":
			if r == 0 {
				return errorf("Division by zero")
			}
			return &object.Integer{Value: l / r}
		case "%":
			if r == 0 {
				return errorf("Division by zero")
			}
			return &object.Integer{Value: l % r}
		}
	}
	l, r := asFloat64(left), asFloat64(right)
	switch op {
	case "-":
		return &object.Double{Value: l - r}
	case "*":
		return &object.Double{Value: l * r}
	case "/":
		if r == 0 {
			return errorf("Division by zero")
		}
		return &object.Double{Value: l / r}
	case "%":
		if r == 0 {
			return errorf("Division by zero")
		}
		return &object.Double{Value: float64(int64(l) % int64(r))}
	}
	return errorf("unknown operator: %s", op)
}

// evalRelational implements <, <=, >, >= over numeric operands (spec §4.2
// level 5: non-associative, at most one per expression — enforced by the
// parser, not here).
func evalRelational(op string, left, right object.Object) object.Object {
	if !isNumeric(left) || !isNumeric(right) {
		return errorf("operator %s not supported for types %s and %s", op, left.Type(), right.Type())
	}
	l, r := asFloat64(left), asFloat64(right)
	switch op {
	case "<":
		return object.BoolOf(l < r)
	case "<=":
		return object.BoolOf(l <= r)
	case ">":
		return object.BoolOf(l > r)
	case ">=":
		return object.BoolOf(l >= r)
	default:
		return errorf("unknown operator: %s", op)
	}
}

// evalUnaryOp implements spec §4.4 Unary: !, -, +, prefix/postfix ++/--.
// The referent of ++/-- must be a simple variable name.
func (e *Evaluator) evalUnaryOp(n *parser.UnaryOp) object.Object {
	switch n.Operator {
	case "!":
		val := e.evalExpr(n.Operand)
		if object.IsError(val) {
			return val
		}
		return object.BoolOf(!isTruthy(val))
	case "-":
		val := e.evalExpr(n.Operand)
		if object.IsError(val) {
			return val
		}
		if !isNumeric(val) {
			return errorf("operator - not supported for type %s", val.Type())
		}
		if i, ok := val.(*object.Integer); ok {
			return &object.Integer{Value: -i.Value}
		}
		return &object.Double{Value: -asFloat64(val)}
	case "+":
		return e.evalExpr(n.Operand)
	case "++", "--":
		return e.evalIncDec(n)
	default:
		return errorf("unknown unary operator: %s", n.Operator)
	}
}

// evalIncDec implements prefix/postfix ++/-- (spec §4.4: "prefix mutate and
// return the new value; postfix mutate and return the prior value").
func (e *Evaluator) evalIncDec(n *parser.UnaryOp) object.Object {
	varNode, ok := n.Operand.(*parser.Variable)
	if !ok {
		return errorf("operand of %s must be a variable", n.Operator)
	}
	current := e.lookupVariable(varNode.Name)
	if object.IsError(current) {
		return current
	}
	if !isNumeric(current) {
		return errorf("operator %s not supported for type %s", n.Operator, current.Type())
	}

	delta := int64(1)
	if n.Operator == "--" {
		delta = -1
	}

	var updated object.Object
	if i, ok := current.(*object.Integer); ok {
		updated = &object.Integer{Value: i.Value + delta}
	} else {
		updated = &object.Double{Value: asFloat64(current) + float64(delta)}
	}
	e.setVariable(varNode.Name, updated)

	if n.Postfix {
		return current
	}
	return updated
}

// evalTernary implements `cond ? then : else`.
func (e *Evaluator) evalTernary(n *parser.Ternary) object.Object {
	cond := e.evalExpr(n.Cond)
	if object.IsError(cond) {
		return cond
	}
	if isTruthy(cond) {
		return e.evalExpr(n.Then)
	}
	return e.evalExpr(n.Else)
}

// evalArrayAccess implements `array[index]` with bounds checking (spec §7
// Runtime error taxonomy: "array index out of range").
func (e *Evaluator) evalArrayAccess(n *parser.ArrayAccess) object.Object {
	arrObj := e.evalExpr(n.Array)
	if object.IsError(arrObj) {
		return arrObj
	}
	arr, ok := arrObj.(*object.Array)
	if !ok {
		return errorf("not an array: %s", arrObj.Type())
	}
	idxObj := e.evalExpr(n.Index)
	if object.IsError(idxObj) {
		return idxObj
	}
	idx, ok := idxObj.(*object.Integer)
	if !ok {
		return errorf("array index must be an integer, got %s", idxObj.Type())
	}
	if idx.Value < 0 || int(idx.Value) >= arr.Len() {
		return errorf("array index out of range: %d", idx.Value)
	}
	return arr.Elements[idx.Value]
}

// evalFieldAccess implements spec §4.4 Field access: instance field reads
// (missing fields yield null), and the `.length` pseudo-field on arrays and
// strings.
func (e *Evaluator) evalFieldAccess(n *parser.FieldAccess) object.Object {
	obj := e.evalExpr(n.Object)
	if object.IsError(obj) {
		return obj
	}
	switch v := obj.(type) {
	case *object.Instance:
		return v.GetField(n.Name)
	case *object.Array:
		if n.Name == "length" {
			return &object.Integer{Value: int64(v.Len())}
		}
		return errorf("array has no field '%s'", n.Name)
	case *object.String:
		if n.Name == "length" {
			return &object.Integer{Value: int64(len(v.Value))}
		}
		return errorf("string has no field '%s'", n.Name)
	default:
		return errorf("cannot access field '%s' on %s", n.Name, obj.Type())
	}
}

// evalNewObject implements spec §4.4 Object construction.
func (e *Evaluator) evalNewObject(n *parser.NewObject) object.Object {
	args, errObj := e.evalArgs(n.Args)
	if errObj != nil {
		return errObj
	}
	return e.construct(n.ClassName, args)
}

// evalNewArray implements spec §4.4 Array construction: `new T[n]` yields a
// mutable array of length n, zero-filled for numeric element types and
// null-filled otherwise. Only the outermost dimension is initialized for
// multi-dimensional constructions.
func (e *Evaluator) evalNewArray(n *parser.NewArray) object.Object {
	if len(n.Sizes) == 0 {
		return errorf("array construction requires at least one dimension")
	}
	sizeObj := e.evalExpr(n.Sizes[0])
	if object.IsError(sizeObj) {
		return sizeObj
	}
	size, ok := sizeObj.(*object.Integer)
	if !ok {
		return errorf("array size must be an integer, got %s", sizeObj.Type())
	}
	if size.Value < 0 {
		return errorf("negative array size")
	}
	var fill object.Object = object.NULL
	switch n.ElemType {
	case "int":
		fill = &object.Integer{Value: 0}
	case "float", "double":
		fill = &object.Double{Value: 0}
	case "boolean":
		fill = object.FALSE
	case "char":
		fill = &object.Char{Value: 0}
	}
	return object.NewArray(int(size.Value), fill)
}

// evalArrayLit implements `{ e, e, ... }` brace array initializers.
func (e *Evaluator) evalArrayLit(n *parser.ArrayLit) object.Object {
	elements := make([]object.Object, len(n.Elements))
	for i, elemExpr := range n.Elements {
		val := e.evalExpr(elemExpr)
		if object.IsError(val) {
			return val
		}
		elements[i] = val
	}
	return &object.Array{Elements: elements}
}

// evalCast implements spec §4.4 Casts: int truncates toward zero,
// float/double widens, String converts to canonical string form, boolean
// yields the operand's truthiness, char turns an Integer into the Char with
// that byte value (other operands pass through unchanged), and every other
// target is identity (per §9 Open Questions: "do not tighten this without
// a versioning decision").
func (e *Evaluator) evalCast(n *parser.Cast) object.Object {
	val := e.evalExpr(n.Inner)
	if object.IsError(val) {
		return val
	}
	switch n.TargetType {
	case "int":
		if !isNumeric(val) {
			return errorf("cannot cast %s to int", val.Type())
		}
		return &object.Integer{Value: int64(asFloat64(val))}
	case "float", "double":
		if !isNumeric(val) {
			return errorf("cannot cast %s to %s", val.Type(), n.TargetType)
		}
		return &object.Double{Value: asFloat64(val)}
	case "boolean":
		return object.BoolOf(isTruthy(val))
	case "char":
		if i, ok := val.(*object.Integer); ok {
			return &object.Char{Value: byte(i.Value)}
		}
		return val
	case "String":
		// Unreachable via the parser today (PRIMITIVE_TYPES excludes String,
		// so `(String) x` never parses as a Cast), kept for spec fidelity.
		return &object.String{Value: canonicalString(val)}
	default:
		return val
	}
}

// evalArgs evaluates an argument list left-to-right, short-circuiting on
// the first error.
func (e *Evaluator) evalArgs(exprs []parser.Expr) ([]object.Object, object.Object) {
	args := make([]object.Object, len(exprs))
	for i, a := range exprs {
		val := e.evalExpr(a)
		if object.IsError(val) {
			return nil, val
		}
		args[i] = val
	}
	return args, nil
}
