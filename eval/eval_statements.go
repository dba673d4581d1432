/*
File    : minij/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/minij/object"
	"github.com/akashmaji946/minij/parser"
	"github.com/akashmaji946/minij/scope"
)

// evalBlock runs a statement list in the current scope, stopping and
// returning immediately on the first error or non-local control signal
// (Return/Break/Continue) — the propagation channel spec §9 Design Notes
// calls for instead of host-language exceptions.
func (e *Evaluator) evalBlock(stmts []parser.Stmt) object.Object {
	var result object.Object = object.NULL
	for _, stmt := range stmts {
		result = e.evalStmt(stmt)
		if result == nil {
			continue
		}
		if object.IsError(result) || object.IsSignal(result) {
			return result
		}
	}
	return result
}

// evalStmt dispatches on the statement node's concrete type, exhaustively
// covering every variant in parser/node.go.
func (e *Evaluator) evalStmt(stmt parser.Stmt) object.Object {
	switch n := stmt.(type) {
	case *parser.VarDecl:
		return e.evalVarDecl(n)
	case *parser.Assign:
		return e.evalAssign(n)
	case *parser.ArrayAssign:
		return e.evalArrayAssign(n)
	case *parser.FieldAssign:
		return e.evalFieldAssign(n)
	case *parser.If:
		return e.evalIf(n)
	case *parser.While:
		return e.evalWhile(n)
	case *parser.DoWhile:
		return e.evalDoWhile(n)
	case *parser.For:
		return e.evalFor(n)
	case *parser.ForEach:
		return e.evalForEach(n)
	case *parser.Switch:
		return e.evalSwitch(n)
	case *parser.Break:
		return &object.Break{}
	case *parser.Continue:
		return &object.Continue{}
	case *parser.Return:
		return e.evalReturn(n)
	case *parser.ExprStmt:
		return e.evalExpr(n.Expr)
	case *parser.Try:
		return e.evalTry(n)
	default:
		return errorf("unhandled statement node %T", stmt)
	}
}

// evalVarDecl binds a new variable in the current frame, evaluating its
// optional initializer first (spec §3 Statement variants: VarDecl).
func (e *Evaluator) evalVarDecl(n *parser.VarDecl) object.Object {
	var value object.Object = object.NULL
	if n.Init != nil {
		value = e.evalExpr(n.Init)
		if object.IsError(value) {
			return value
		}
	}
	e.Scp.Bind(n.Name, value)
	return object.NULL
}

// evalAssign implements plain `name = value;` per spec §4.4 Assignment.
func (e *Evaluator) evalAssign(n *parser.Assign) object.Object {
	value := e.evalExpr(n.Value)
	if object.IsError(value) {
		return value
	}
	e.setVariable(n.Name, value)
	return object.NULL
}

// evalArrayAssign implements `name[index] = value;`.
func (e *Evaluator) evalArrayAssign(n *parser.ArrayAssign) object.Object {
	arrObj := e.lookupVariable(n.Name)
	if object.IsError(arrObj) {
		return arrObj
	}
	arr, ok := arrObj.(*object.Array)
	if !ok {
		return errorf("not an array: %s", n.Name)
	}
	idxObj := e.evalExpr(n.Index)
	if object.IsError(idxObj) {
		return idxObj
	}
	idx, ok := idxObj.(*object.Integer)
	if !ok {
		return errorf("array index must be an integer, got %s", idxObj.Type())
	}
	value := e.evalExpr(n.Value)
	if object.IsError(value) {
		return value
	}
	if idx.Value < 0 || int(idx.Value) >= arr.Len() {
		return errorf("array index out of range: %d", idx.Value)
	}
	arr.Elements[idx.Value] = value
	return object.NULL
}

// evalFieldAssign implements `object.field = value;`, including
// `this.field = value;` (spec §4.2 Statement parsing, §4.4 Field access).
func (e *Evaluator) evalFieldAssign(n *parser.FieldAssign) object.Object {
	obj := e.evalExpr(n.Object)
	if object.IsError(obj) {
		return obj
	}
	inst, ok := obj.(*object.Instance)
	if !ok {
		return errorf("cannot assign field '%s' on %s", n.Field, obj.Type())
	}
	value := e.evalExpr(n.Value)
	if object.IsError(value) {
		return value
	}
	inst.SetField(n.Field, value)
	return object.NULL
}

// evalIf implements if/else if/else.
func (e *Evaluator) evalIf(n *parser.If) object.Object {
	cond := e.evalExpr(n.Cond)
	if object.IsError(cond) {
		return cond
	}
	if isTruthy(cond) {
		return e.evalBlock(n.Then)
	}
	if n.Else != nil {
		return e.evalBlock(n.Else)
	}
	return object.NULL
}

// evalReturn implements `return;` / `return expr;`, wrapping the result in
// a Return signal for propagation up to the enclosing method/constructor
// frame (spec §4.4: "return unwinds to the nearest method/constructor
// frame and yields its optional value").
func (e *Evaluator) evalReturn(n *parser.Return) object.Object {
	if n.Value == nil {
		return &object.Return{Value: object.NULL}
	}
	value := e.evalExpr(n.Value)
	if object.IsError(value) {
		return value
	}
	return &object.Return{Value: value}
}

// evalTry implements spec §4.2/§7 try/catch/finally: catch binds the caught
// error's stringified message (not an exception object) to the declared
// binder; finally always runs, on every exit path, and does not itself
// catch a runtime error — only non-local control signals and the
// try-block's own result flow through it.
func (e *Evaluator) evalTry(n *parser.Try) object.Object {
	result := e.evalBlock(n.Body)

	if object.IsError(result) {
		caughtErr := result.(*object.Error)
		if len(n.Catches) > 0 {
			c := n.Catches[0]
			frame := scope.NewScope(e.Scp)
			frame.Bind(c.Binder, &object.String{Value: caughtErr.Message})
			old := e.Scp
			e.Scp = frame
			result = e.evalBlock(c.Body)
			e.Scp = old
		}
	}

	if n.Finally != nil {
		finallyResult := e.evalBlock(n.Finally)
		if object.IsError(finallyResult) || object.IsSignal(finallyResult) {
			return finallyResult
		}
	}

	return result
}
