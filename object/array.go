/*
File    : minij/object/array.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import "strings"

// Array is a mutable, fixed-length, reference-shared sequence of values
// (spec §3). Its length is fixed at construction time; individual elements
// may be reassigned in place.
type Array struct {
	Elements []Object
}

// NewArray builds an array of the given length, filling every slot with
// fill (spec §4.4 Array construction: zero for numeric element types, null
// otherwise — callers pick fill accordingly).
func NewArray(length int, fill Object) *Array {
	elems := make([]Object, length)
	for i := range elems {
		elems[i] = fill
	}
	return &Array{Elements: elems}
}

func (a *Array) Type() Type { return ArrayType }

func (a *Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, el := range a.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(el.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Len returns the array's element count, backing the `.length` pseudo-field
// (spec §4.4 Field access).
func (a *Array) Len() int {
	return len(a.Elements)
}
