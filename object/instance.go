/*
File    : minij/object/instance.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import "fmt"

// Instance is a heap-allocated object instance (spec §3): a class name and
// a mapping from field name to current value. Instances are shared by
// reference; equality is reference identity (ordinary Go pointer identity
// suffices here).
type Instance struct {
	ClassName string
	Fields    map[string]Object
}

// NewInstance allocates an empty instance of the named class. Field
// initializers are populated by the evaluator, not here, since they may
// need to evaluate expressions against the class registry.
func NewInstance(className string) *Instance {
	return &Instance{ClassName: className, Fields: make(map[string]Object)}
}

func (o *Instance) Type() Type { return InstanceType }

// String renders the implementation-defined reference notation the
// glossary's "canonical string form" calls for on objects.
func (o *Instance) String() string {
	return fmt.Sprintf("%s@%p", o.ClassName, o)
}

// GetField reads a field, yielding NULL for a name that has no entry in the
// field map (spec §4.4 Field access: "missing fields yield null").
func (o *Instance) GetField(name string) Object {
	if v, ok := o.Fields[name]; ok {
		return v
	}
	return NULL
}

// SetField writes a field unconditionally; MiniJ does not enforce that the
// field was declared by the class (spec carries no such invariant).
func (o *Instance) SetField(name string, value Object) {
	o.Fields[name] = value
}
