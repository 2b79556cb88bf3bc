package builtin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susumu-lang/susumu/values"
)

type fakeRuntime struct{}

func (fakeRuntime) CallFunction(fn values.Value, args []values.Value) (values.Value, error) {
	return values.NullValue, nil
}

func TestArithmeticBuiltins(t *testing.T) {
	var buf bytes.Buffer
	v, err := biAdd(fakeRuntime{}, &buf, []values.Value{numVal(2), numVal(3)})
	require.NoError(t, err)
	assert.Equal(t, float64(5), v.(*values.Number).Value)

	_, err = biDivide(fakeRuntime{}, &buf, []values.Value{numVal(1), numVal(0)})
	require.Error(t, err)
}

func TestLengthAcrossKinds(t *testing.T) {
	var buf bytes.Buffer
	arr := &values.Array{Elements: []values.Value{numVal(1), numVal(2)}}
	v, err := biLength(fakeRuntime{}, &buf, []values.Value{arr})
	require.NoError(t, err)
	assert.Equal(t, float64(2), v.(*values.Number).Value)

	v, err = biLength(fakeRuntime{}, &buf, []values.Value{&values.String{Value: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, float64(2), v.(*values.Number).Value)
}

func TestPushDoesNotMutateOriginal(t *testing.T) {
	var buf bytes.Buffer
	original := &values.Array{Elements: []values.Value{numVal(1)}}
	v, err := biPush(fakeRuntime{}, &buf, []values.Value{original, numVal(2)})
	require.NoError(t, err)
	assert.Len(t, original.Elements, 1)
	assert.Len(t, v.(*values.Array).Elements, 2)
}

func TestConcatStringsAndArrays(t *testing.T) {
	var buf bytes.Buffer
	v, err := biConcat(fakeRuntime{}, &buf, []values.Value{&values.String{Value: "ab"}, &values.String{Value: "cd"}})
	require.NoError(t, err)
	assert.Equal(t, "abcd", v.(*values.String).Value)

	v, err = biConcat(fakeRuntime{}, &buf, []values.Value{
		&values.Array{Elements: []values.Value{numVal(1)}},
		&values.Array{Elements: []values.Value{numVal(2)}},
	})
	require.NoError(t, err)
	assert.Len(t, v.(*values.Array).Elements, 2)
}

func TestPrintWritesSpaceJoinedValues(t *testing.T) {
	var buf bytes.Buffer
	_, err := biPrintln(fakeRuntime{}, &buf, []values.Value{&values.String{Value: "a"}, numVal(1)})
	require.NoError(t, err)
	assert.Equal(t, "a 1\n", buf.String())
}

func TestTableRespectsModuleToggles(t *testing.T) {
	all := Table(nil)
	_, hasJSON := all["json_encode"]
	assert.True(t, hasJSON)

	filtered := Table(map[string]bool{"json": false})
	_, hasJSON = filtered["json_encode"]
	assert.False(t, hasJSON)
	_, hasAdd := filtered["add"]
	assert.True(t, hasAdd)
}
