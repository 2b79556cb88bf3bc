package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/susumu-lang/susumu/parser"
	"github.com/susumu-lang/susumu/scope"
	"github.com/susumu-lang/susumu/values"
)

func TestFunctionValueShape(t *testing.T) {
	env := scope.New(nil)
	fn := &Function{Name: "double", Params: []string{"x"}, Body: &parser.Block{}, Env: env}

	assert.Equal(t, values.FunctionKind, fn.Kind())
	assert.Equal(t, "double", fn.CallableName())
	assert.Equal(t, "function(double)", fn.String())
	assert.Equal(t, "<function[double(x)]>", fn.Inspect())

	var _ values.Callable = fn
}
