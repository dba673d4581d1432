/*
File    : minij/eval/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Loop and switch evaluation (spec §4.4 Control flow): while, do-while,
// regular for, for-each, and switch-with-fallthrough.
package eval

import (
	"github.com/akashmaji946/minij/object"
	"github.com/akashmaji946/minij/parser"
	"github.com/akashmaji946/minij/scope"
)

// evalWhile implements `while (cond) body`.
func (e *Evaluator) evalWhile(n *parser.While) object.Object {
	for {
		cond := e.evalExpr(n.Cond)
		if object.IsError(cond) {
			return cond
		}
		if !isTruthy(cond) {
			return object.NULL
		}
		result := e.evalBlock(n.Body)
		if object.IsError(result) {
			return result
		}
		if _, isBreak := result.(*object.Break); isBreak {
			return object.NULL
		}
		if _, isReturn := result.(*object.Return); isReturn {
			return result
		}
	}
}

// evalDoWhile implements `do body while (cond);` — the body runs at least
// once.
func (e *Evaluator) evalDoWhile(n *parser.DoWhile) object.Object {
	for {
		result := e.evalBlock(n.Body)
		if object.IsError(result) {
			return result
		}
		if _, isBreak := result.(*object.Break); isBreak {
			return object.NULL
		}
		if _, isReturn := result.(*object.Return); isReturn {
			return result
		}
		cond := e.evalExpr(n.Cond)
		if object.IsError(cond) {
			return cond
		}
		if !isTruthy(cond) {
			return object.NULL
		}
	}
}

// evalFor implements the regular C-style for loop. Init runs once in a
// fresh child frame so a loop-local `int i` doesn't leak into the
// enclosing scope; condition and update share that same frame across
// iterations.
func (e *Evaluator) evalFor(n *parser.For) object.Object {
	oldScope := e.Scp
	e.Scp = scope.NewScope(oldScope)
	defer func() { e.Scp = oldScope }()

	if n.Init != nil {
		if result := e.evalStmt(n.Init); object.IsError(result) {
			return result
		}
	}

	for {
		if n.Cond != nil {
			cond := e.evalExpr(n.Cond)
			if object.IsError(cond) {
				return cond
			}
			if !isTruthy(cond) {
				return object.NULL
			}
		}

		result := e.evalBlock(n.Body)
		if object.IsError(result) {
			return result
		}
		if _, isBreak := result.(*object.Break); isBreak {
			return object.NULL
		}
		if _, isReturn := result.(*object.Return); isReturn {
			return result
		}

		if n.Update != nil {
			if result := e.evalStmt(n.Update); object.IsError(result) {
				return result
			}
		}
	}
}

// evalForEach implements `for (T binder : iterable) body` over an array or
// a string (iterating over characters).
func (e *Evaluator) evalForEach(n *parser.ForEach) object.Object {
	iterable := e.evalExpr(n.Iterable)
	if object.IsError(iterable) {
		return iterable
	}

	var elements []object.Object
	switch v := iterable.(type) {
	case *object.Array:
		elements = v.Elements
	case *object.String:
		for i := 0; i < len(v.Value); i++ {
			elements = append(elements, &object.Char{Value: v.Value[i]})
		}
	default:
		return errorf("cannot iterate over %s", iterable.Type())
	}

	oldScope := e.Scp
	e.Scp = scope.NewScope(oldScope)
	defer func() { e.Scp = oldScope }()

	for _, elem := range elements {
		e.Scp.Bind(n.Binder, elem)
		result := e.evalBlock(n.Body)
		if object.IsError(result) {
			return result
		}
		if _, isBreak := result.(*object.Break); isBreak {
			return object.NULL
		}
		if _, isReturn := result.(*object.Return); isReturn {
			return result
		}
	}
	return object.NULL
}

// evalSwitch implements spec §4.4 Control flow: evaluate the scrutinee
// once, test each case value in order for equality, and once matched
// execute that case's statements and every subsequent case's statements in
// turn (fall-through) until a break or the switch ends; default runs only
// if no case matched.
func (e *Evaluator) evalSwitch(n *parser.Switch) object.Object {
	scrutinee := e.evalExpr(n.Scrutinee)
	if object.IsError(scrutinee) {
		return scrutinee
	}

	matchedIdx := -1
	for i, c := range n.Cases {
		caseVal := e.evalExpr(c.Value)
		if object.IsError(caseVal) {
			return caseVal
		}
		if referenceEqual(scrutinee, caseVal) {
			matchedIdx = i
			break
		}
	}

	if matchedIdx == -1 {
		return e.runFallthrough(n.Default)
	}

	for i := matchedIdx; i < len(n.Cases); i++ {
		result := e.evalBlock(n.Cases[i].Body)
		if object.IsError(result) {
			return result
		}
		if _, isBreak := result.(*object.Break); isBreak {
			return object.NULL
		}
		if _, isReturn := result.(*object.Return); isReturn {
			return result
		}
		if _, isContinue := result.(*object.Continue); isContinue {
			return result
		}
	}
	return object.NULL
}

// runFallthrough executes the default arm's statements, honoring an early
// break.
func (e *Evaluator) runFallthrough(stmts []parser.Stmt) object.Object {
	if stmts == nil {
		return object.NULL
	}
	result := e.evalBlock(stmts)
	if _, isBreak := result.(*object.Break); isBreak {
		return object.NULL
	}
	return result
}
