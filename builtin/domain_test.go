package builtin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susumu-lang/susumu/values"
)

func TestHumanBytesAndOrdinal(t *testing.T) {
	var buf bytes.Buffer
	v, err := biHumanBytes(fakeRuntime{}, &buf, []values.Value{numVal(1024)})
	require.NoError(t, err)
	assert.NotEmpty(t, v.(*values.String).Value)

	v, err = biHumanOrdinal(fakeRuntime{}, &buf, []values.Value{numVal(3)})
	require.NoError(t, err)
	assert.Equal(t, "3rd", v.(*values.String).Value)
}

func TestUUIDProducesDistinctValues(t *testing.T) {
	var buf bytes.Buffer
	a, err := biUUID(fakeRuntime{}, &buf, nil)
	require.NoError(t, err)
	b, err := biUUID(fakeRuntime{}, &buf, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.(*values.String).Value, b.(*values.String).Value)
}

func TestTitleCase(t *testing.T) {
	var buf bytes.Buffer
	v, err := biTitleCase(fakeRuntime{}, &buf, []values.Value{&values.String{Value: "hello world"}})
	require.NoError(t, err)
	assert.Equal(t, "Hello World", v.(*values.String).Value)
}

func TestInspectProducesNonEmptyDump(t *testing.T) {
	var buf bytes.Buffer
	v, err := biInspect(fakeRuntime{}, &buf, []values.Value{numVal(5)})
	require.NoError(t, err)
	assert.NotEmpty(t, v.(*values.String).Value)
}
