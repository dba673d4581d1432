/*
File    : minij/object/object_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArraySharedByReference(t *testing.T) {
	arr := NewArray(3, &Integer{Value: 0})
	other := arr
	other.Elements[1] = &Integer{Value: 9}
	assert.Equal(t, int64(9), arr.Elements[1].(*Integer).Value)
	assert.Equal(t, 3, arr.Len())
}

func TestInstanceMissingFieldYieldsNull(t *testing.T) {
	inst := NewInstance("Counter")
	assert.Equal(t, NULL, inst.GetField("n"))

	inst.SetField("n", &Integer{Value: 5})
	assert.Equal(t, int64(5), inst.GetField("n").(*Integer).Value)
}

func TestInstanceIdentity(t *testing.T) {
	a := NewInstance("Point")
	b := NewInstance("Point")
	assert.NotSame(t, a, b)

	alias := a
	assert.Same(t, a, alias)
}

func TestBoolOfReturnsSingletons(t *testing.T) {
	assert.Same(t, TRUE, BoolOf(true))
	assert.Same(t, FALSE, BoolOf(false))
}

func TestIsErrorAndIsSignal(t *testing.T) {
	assert.True(t, IsError(Errorf("boom: %d", 1)))
	assert.False(t, IsError(&Integer{Value: 1}))

	assert.True(t, IsSignal(&Break{}))
	assert.True(t, IsSignal(&Continue{}))
	assert.True(t, IsSignal(&Return{Value: NULL}))
	assert.False(t, IsSignal(&Integer{Value: 1}))
}

func TestCanonicalStringForms(t *testing.T) {
	assert.Equal(t, "42", (&Integer{Value: 42}).String())
	assert.Equal(t, "true", (&Boolean{Value: true}).String())
	assert.Equal(t, "null", NULL.String())
	assert.Equal(t, "x", (&Char{Value: 'x'}).String())
}
