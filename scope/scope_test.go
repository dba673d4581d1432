/*
File    : minij/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/akashmaji946/minij/object"
	"github.com/stretchr/testify/assert"
)

func TestLookUpSearchesParentChain(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &object.Integer{Value: 1})

	frame := NewScope(global)
	v, ok := frame.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.(*object.Integer).Value)

	_, ok = frame.LookUp("missing")
	assert.False(t, ok)
}

func TestBindShadowsWithoutTouchingParent(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &object.Integer{Value: 1})

	frame := NewScope(global)
	frame.Bind("x", &object.Integer{Value: 2})

	v, _ := frame.LookUp("x")
	assert.Equal(t, int64(2), v.(*object.Integer).Value)

	v, _ = global.LookUp("x")
	assert.Equal(t, int64(1), v.(*object.Integer).Value)
}

func TestAssignUpdatesOwningFrame(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &object.Integer{Value: 1})

	frame := NewScope(global)
	ok := frame.Assign("x", &object.Integer{Value: 99})
	assert.True(t, ok)

	v, _ := global.LookUp("x")
	assert.Equal(t, int64(99), v.(*object.Integer).Value)

	_, inFrame := frame.Variables["x"]
	assert.False(t, inFrame)
}

func TestAssignUnboundNameFails(t *testing.T) {
	frame := NewScope(NewScope(nil))
	ok := frame.Assign("never_declared", object.NULL)
	assert.False(t, ok)
}
