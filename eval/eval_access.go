/*
File    : minij/eval/eval_access.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Method call dispatch (spec §4.4 Method dispatch): print/println,
// Math.*, string builtins, instance methods, and static methods.
package eval

import (
	"fmt"

	"github.com/akashmaji946/minij/object"
	"github.com/akashmaji946/minij/parser"
)

// evalMethodCall implements spec §4.4's five method-dispatch rules in
// order: no-receiver print/println, Math.* on a bare `Math` receiver name,
// string builtins on a string-valued receiver, instance methods on an
// object-instance receiver, and static methods for the no-receiver,
// non-builtin, unqualified case.
func (e *Evaluator) evalMethodCall(n *parser.MethodCall) object.Object {
	if n.Receiver == nil {
		if n.Name == "print" || n.Name == "println" {
			return e.evalPrint(n)
		}
		return e.evalUnqualifiedCall(n)
	}

	if recvVar, ok := n.Receiver.(*parser.Variable); ok && recvVar.Name == "Math" {
		if _, isVar := e.Scp.LookUp("Math"); !isVar {
			return e.evalMathCall(n)
		}
	}

	receiver := e.evalExpr(n.Receiver)
	if object.IsError(receiver) {
		return receiver
	}

	switch recv := receiver.(type) {
	case *object.String:
		return e.evalStringMethod(recv, n)
	case *object.Instance:
		return e.evalInstanceMethod(recv, n)
	default:
		return errorf("cannot call method '%s' on %s", n.Name, receiver.Type())
	}
}

// evalPrint implements the no-receiver print/println builtins (spec §4.4:
// "writes the first argument (if any) to standard output; println appends
// a newline").
func (e *Evaluator) evalPrint(n *parser.MethodCall) object.Object {
	var text string
	if len(n.Args) > 0 {
		val := e.evalExpr(n.Args[0])
		if object.IsError(val) {
			return val
		}
		text = canonicalString(val)
	}
	if n.Name == "println" {
		fmt.Fprintln(e.Writer, text)
	} else {
		fmt.Fprint(e.Writer, text)
	}
	return object.NULL
}

// evalUnqualifiedCall resolves a no-receiver call that isn't print/println:
// a static method entry (spec §4.4 last bullet).
func (e *Evaluator) evalUnqualifiedCall(n *parser.MethodCall) object.Object {
	method, ok := e.StaticMethods[n.Name]
	if !ok {
		return errorf("function not found: %s", n.Name)
	}
	args, errObj := e.evalArgs(n.Args)
	if errObj != nil {
		return errObj
	}
	if len(args) != len(method.Params) {
		return errorf("wrong number of arguments to %s: expected %d, got %d", n.Name, len(method.Params), len(args))
	}
	frame := e.newStaticFrame()
	for i, param := range method.Params {
		frame.Bind(param.Name, args[i])
	}
	oldScope, oldReceiver := e.Scp, e.Receiver
	e.Scp, e.Receiver = frame, nil
	result := e.evalBlock(method.Body)
	e.Scp, e.Receiver = oldScope, oldReceiver
	return UnwrapReturn(result)
}

// evalInstanceMethod implements spec §4.4's instance-method dispatch rule.
func (e *Evaluator) evalInstanceMethod(recv *object.Instance, n *parser.MethodCall) object.Object {
	class, ok := e.Classes[recv.ClassName]
	if !ok {
		return errorf("class not found: %s", recv.ClassName)
	}
	args, errObj := e.evalArgs(n.Args)
	if errObj != nil {
		return errObj
	}
	method := e.findMethod(class, n.Name, len(args))
	if method == nil {
		return errorf("method not found: %s.%s/%d", recv.ClassName, n.Name, len(args))
	}
	return e.invokeMethod(recv, method, args)
}
