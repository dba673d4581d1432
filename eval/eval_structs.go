/*
File    : minij/eval/eval_structs.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Object construction and method dispatch over class instances (spec §4.4
// Object construction, Method dispatch).
package eval

import (
	"github.com/akashmaji946/minij/object"
	"github.com/akashmaji946/minij/parser"
	"github.com/akashmaji946/minij/scope"
)

// construct implements spec §4.4 Object construction:
// 1. look up the class declaration;
// 2. allocate a fresh instance with fields initialized by evaluating each
//    field's initializer with no receiver set;
// 3. select the first constructor whose parameter arity equals len(args);
// 4. bind parameters in a new frame, set the receiver, run the body,
//    restore the prior receiver and frame;
// 5. yield the instance.
func (e *Evaluator) construct(className string, args []object.Object) object.Object {
	class, ok := e.Classes[className]
	if !ok {
		return errorf("class not found: %s", className)
	}

	inst := object.NewInstance(className)
	if errObj := e.initFields(class, inst); errObj != nil {
		return errObj
	}

	ctor := findConstructor(class, len(args))
	if ctor == nil {
		if len(class.Constructors) == 0 && len(args) == 0 {
			return inst
		}
		return errorf("no constructor of %s takes %d argument(s)", className, len(args))
	}

	frame := scope.NewScope(e.Scp)
	for i, param := range ctor.Params {
		frame.Bind(param.Name, args[i])
	}

	oldScope, oldReceiver := e.Scp, e.Receiver
	e.Scp, e.Receiver = frame, inst
	result := e.evalBlock(ctor.Body)
	e.Scp, e.Receiver = oldScope, oldReceiver

	if object.IsError(result) {
		return result
	}
	return inst
}

// initFields evaluates every field initializer of class (and its ancestor
// chain, root first, so subclass fields can shadow) with no receiver set
// (spec §4.4: "initializers may not reference this").
func (e *Evaluator) initFields(class *parser.Class, inst *object.Instance) object.Object {
	var chain []*parser.Class
	for c := class; c != nil; c = e.Classes[c.Extends] {
		chain = append([]*parser.Class{c}, chain...)
		if c.Extends == "" {
			break
		}
	}
	for _, c := range chain {
		for _, field := range c.Fields {
			var value object.Object = object.NULL
			if field.Init != nil {
				value = e.evalExpr(field.Init)
				if object.IsError(value) {
					return value
				}
			}
			inst.SetField(field.Name, value)
		}
	}
	return nil
}

// findConstructor selects the first constructor whose parameter arity
// equals arity (spec §4.4 step 3).
func findConstructor(class *parser.Class, arity int) *parser.Constructor {
	for _, ctor := range class.Constructors {
		if len(ctor.Params) == arity {
			return ctor
		}
	}
	return nil
}

// findMethod locates a method by name and arity on class or its ancestor
// chain (spec §4.4: "dispatches to a method of that instance's class
// matched by name and arity").
func (e *Evaluator) findMethod(class *parser.Class, name string, arity int) *parser.Method {
	for c := class; c != nil; {
		for _, m := range c.Methods {
			if m.Name == name && len(m.Params) == arity {
				return m
			}
		}
		if c.Extends == "" {
			break
		}
		c = e.Classes[c.Extends]
	}
	return nil
}

// invokeMethod runs a method body bound to receiver, with a fresh frame
// for its parameters (spec §4.4 Method dispatch, final bullet).
func (e *Evaluator) invokeMethod(receiver *object.Instance, m *parser.Method, args []object.Object) object.Object {
	frame := scope.NewScope(e.Scp)
	for i, param := range m.Params {
		frame.Bind(param.Name, args[i])
	}

	oldScope, oldReceiver := e.Scp, e.Receiver
	e.Scp, e.Receiver = frame, receiver
	result := e.evalBlock(m.Body)
	e.Scp, e.Receiver = oldScope, oldReceiver

	return UnwrapReturn(result)
}
