package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberStringOmitsDecimalForIntegers(t *testing.T) {
	assert.Equal(t, "3", (&Number{Value: 3}).String())
	assert.Equal(t, "3.5", (&Number{Value: 3.5}).String())
}

func TestObjectMergeRightWinsAndIsFresh(t *testing.T) {
	a := NewObject()
	a.Set("x", &Number{Value: 1})
	b := NewObject()
	b.Set("x", &Number{Value: 2})
	b.Set("y", &Number{Value: 3})

	merged := a.Merge(b)
	x, _ := merged.Get("x")
	y, _ := merged.Get("y")
	assert.Equal(t, float64(2), x.(*Number).Value)
	assert.Equal(t, float64(3), y.(*Number).Value)

	origX, _ := a.Get("x")
	assert.Equal(t, float64(1), origX.(*Number).Value)
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("b", &Number{Value: 1})
	o.Set("a", &Number{Value: 2})
	assert.Equal(t, []string{"b", "a"}, o.Keys)
}

func TestErrorSignalIsDetectedButReturnIsNot(t *testing.T) {
	e := &ErrorSignal{Value: &String{Value: "boom"}}
	r := &ReturnSignal{Value: &String{Value: "ok"}}
	assert.True(t, IsErrorFlagged(e))
	assert.False(t, IsErrorFlagged(r))
	assert.True(t, IsSignal(e))
	assert.True(t, IsSignal(r))
}

func TestUnwrapStripsSignals(t *testing.T) {
	inner := &Number{Value: 42}
	assert.Equal(t, inner, Unwrap(&ReturnSignal{Value: inner}))
	assert.Equal(t, inner, Unwrap(&ErrorSignal{Value: inner}))
	assert.Equal(t, inner, Unwrap(inner))
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(NullValue))
	assert.False(t, Truthy(&Bool{Value: false}))
	assert.True(t, Truthy(&Bool{Value: true}))
	assert.True(t, Truthy(&Number{Value: 0}))
	assert.True(t, Truthy(&String{Value: ""}))
}
