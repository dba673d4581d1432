/*
File    : minij/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks the AST produced by parser, maintaining a stack of
// scopes, a class registry, and a static-method table (spec §3 Class
// registry, §4.4 Evaluator).
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/minij/object"
	"github.com/akashmaji946/minij/parser"
	"github.com/akashmaji946/minij/scope"
)

// Evaluator holds the execution state for a single run of a MiniJ program:
// the current scope, the class registry, the static-method table, the
// current receiver, and the output writer.
type Evaluator struct {
	Scp           *scope.Scope
	Global        *scope.Scope
	Classes       map[string]*parser.Class
	StaticMethods map[string]*parser.Method
	Receiver      *object.Instance
	Writer        io.Writer
}

// NewEvaluator creates a fresh Evaluator with a new global scope, an empty
// class registry, and stdout as the default writer (spec §9 Design Notes:
// "the only true global is standard output; all other globals are scoped
// to an evaluator instance, which should be constructable multiple times").
func NewEvaluator() *Evaluator {
	global := scope.NewScope(nil)
	return &Evaluator{
		Scp:           global,
		Global:        global,
		Classes:       make(map[string]*parser.Class),
		StaticMethods: make(map[string]*parser.Method),
		Writer:        os.Stdout,
	}
}

// newStaticFrame creates a fresh frame parented to the global scope — not
// the caller's current scope — since static methods in this language have
// no closures (spec §4.4: "dispatches to that method in a fresh frame (no
// receiver)").
func (e *Evaluator) newStaticFrame() *scope.Scope {
	return scope.NewScope(e.Global)
}

// SetWriter redirects builtin output (print/println) to w, primarily for
// test capture.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Run executes a parsed program per spec §4.4 Execution entry: register
// every class's fields/constructors/methods, then either run a static
// `main` method if one exists, or run the free-standing top-level
// statements otherwise. If both a `main` method and top-level statements
// are present, `main` wins and the top-level statements are silently
// dropped (§9 Open Questions: resolved here in favor of "main wins").
func (e *Evaluator) Run(prog *parser.Program) object.Object {
	for _, class := range prog.Classes {
		e.RegisterClass(class)
	}

	if mainClass, mainMethod := e.findMain(); mainMethod != nil {
		return UnwrapReturn(e.invokeStaticMethod(mainClass, mainMethod, nil))
	}

	return UnwrapReturn(e.evalBlock(prog.Statements))
}

// RegisterClass adds a class declaration to the registry and indexes its
// static methods into the static-method table (spec §3 Class registry).
func (e *Evaluator) RegisterClass(class *parser.Class) {
	e.Classes[class.Name] = class
	for _, m := range class.Methods {
		if m.IsStatic() {
			e.StaticMethods[m.Name] = m
		}
	}
}

// findMain searches every registered class for a static method named
// "main" (spec §4.4 Execution entry).
func (e *Evaluator) findMain() (*parser.Class, *parser.Method) {
	for _, class := range e.Classes {
		for _, m := range class.Methods {
			if m.IsStatic() && m.Name == "main" {
				return class, m
			}
		}
	}
	return nil, nil
}

// invokeStaticMethod runs a static method's body in a fresh frame with no
// receiver set (spec §4.4 Method dispatch: "a call with no receiver... that
// matches a static method entry dispatches to that method in a fresh frame
// (no receiver)").
func (e *Evaluator) invokeStaticMethod(class *parser.Class, m *parser.Method, args []object.Object) object.Object {
	frame := e.newStaticFrame()
	for i, param := range m.Params {
		if i < len(args) {
			frame.Bind(param.Name, args[i])
		}
	}

	oldScope, oldReceiver := e.Scp, e.Receiver
	e.Scp, e.Receiver = frame, nil
	result := e.evalBlock(m.Body)
	e.Scp, e.Receiver = oldScope, oldReceiver

	return result
}
