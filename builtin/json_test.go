package builtin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susumu-lang/susumu/values"
)

func TestJSONRoundTripsObject(t *testing.T) {
	var buf bytes.Buffer
	obj := values.NewObject()
	obj.Set("name", &values.String{Value: "susumu"})
	obj.Set("count", &values.Number{Value: 3})

	encoded, err := biJSONEncode(fakeRuntime{}, &buf, []values.Value{obj})
	require.NoError(t, err)

	decoded, err := biJSONDecode(fakeRuntime{}, &buf, []values.Value{encoded})
	require.NoError(t, err)

	back := decoded.(*values.Object)
	name, _ := back.Get("name")
	count, _ := back.Get("count")
	assert.Equal(t, "susumu", name.(*values.String).Value)
	assert.Equal(t, float64(3), count.(*values.Number).Value)
}

func TestJSONDecodeRejectsInvalidInput(t *testing.T) {
	var buf bytes.Buffer
	_, err := biJSONDecode(fakeRuntime{}, &buf, []values.Value{&values.String{Value: "{not json"}})
	require.Error(t, err)
}
