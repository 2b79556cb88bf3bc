package susumu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susumu-lang/susumu/config"
	"github.com/susumu-lang/susumu/diagnostics"
	"github.com/susumu-lang/susumu/values"
)

func TestRunEndToEndPipeline(t *testing.T) {
	var buf bytes.Buffer
	v, err := Run(`double(x) { x -> multiply <- 2 }
21 -> double -> println`, &buf, config.Default())
	require.NoError(t, err)
	assert.Equal(t, values.NullValue, v) // println returns Null; its side effect went to buf
	assert.Equal(t, "42\n", buf.String())
}

func TestParseSurfacesDanglingArrowAsParseError(t *testing.T) {
	_, err := Parse("5 ->")
	require.Error(t, err)
	d := err.(*diagnostics.Diagnostic)
	assert.Equal(t, diagnostics.ParseError, d.Kind)
}

func TestTraceRecordsArrowSteps(t *testing.T) {
	result, err := Trace("5 -> add <- 3", config.Default())
	require.NoError(t, err)
	assert.Equal(t, float64(8), result.Value.(*values.Number).Value)
	require.Len(t, result.Trace, 2)
}

func TestStepBudgetExceededIsResourceError(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{StepBudget: 2}
	_, err := Run(`mut n = 0
w true {
    n = n -> add <- 1
}`, &buf, cfg)
	require.Error(t, err)
	d := err.(*diagnostics.Diagnostic)
	assert.Equal(t, diagnostics.ResourceError, d.Kind)
}

func TestDisablingJSONModuleMakesItUndefined(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{Modules: map[string]bool{"json": false}}
	_, err := Run(`{a: 1} -> json_encode`, &buf, cfg)
	require.Error(t, err)
	d := err.(*diagnostics.Diagnostic)
	assert.Equal(t, diagnostics.NameError, d.Kind)
}
