/*
File    : minij/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements MiniJ's environment stack (spec §3 Environments):
// a stack of frames, each a mapping from binder name to value, with name
// resolution searching frames top to bottom before falling back to the
// current receiver's fields (the receiver fallback is the evaluator's
// concern, not the scope's).
package scope

import "github.com/akashmaji946/minij/object"

// Scope is one frame in the environment stack. The bottom frame (Parent ==
// nil) is the global frame; every other frame is pushed for a method or
// constructor invocation, a for or for-each loop, or a catch clause.
type Scope struct {
	// Variables maps binder names to their current values in this frame.
	Variables map[string]object.Object

	// Parent points to the enclosing frame, forming the frame stack.
	// nil indicates this is the global (root) frame.
	Parent *Scope
}

// NewScope creates a frame with the given parent. parent == nil builds the
// global frame.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]object.Object),
		Parent:    parent,
	}
}

// LookUp searches this frame and its ancestors, top to bottom, for varName
// (spec §3/§4.4 Name resolution). The receiver fallback on miss is the
// evaluator's job, not the scope's.
func (s *Scope) LookUp(varName string) (object.Object, bool) {
	if v, ok := s.Variables[varName]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.LookUp(varName)
	}
	return nil, false
}

// Bind creates or overwrites a binding in this frame only, never searching
// parents. Used for variable declarations, method parameters, and for-each
// binders.
func (s *Scope) Bind(varName string, obj object.Object) {
	s.Variables[varName] = obj
}

// Assign writes to the nearest frame (this one, or an ancestor) that
// already binds varName, returning false if no frame does. MiniJ's
// implicit-declaration assignment semantics (spec §4.4 Assignment: "else
// create a new binding in the top frame") are the evaluator's
// responsibility, since they also consult the current receiver — Assign
// only implements the frame-stack half of that rule.
func (s *Scope) Assign(varName string, obj object.Object) bool {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}
