package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susumu-lang/susumu/config"
	"github.com/susumu-lang/susumu/diagnostics"
	"github.com/susumu-lang/susumu/parser"
	"github.com/susumu-lang/susumu/values"
)

func run(t *testing.T, src string) (values.Value, error) {
	t.Helper()
	p := parser.New(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), p.Errors)
	var buf bytes.Buffer
	ev := New(&buf, config.Default())
	return ev.Run(prog)
}

func TestArrowChainForwardAndBackward(t *testing.T) {
	v, err := run(t, "5 -> add <- 3 <- 2 -> multiply <- 10")
	require.NoError(t, err)
	assert.Equal(t, float64(100), v.(*values.Number).Value)
}

func TestUserFunctionDefinitionAndCall(t *testing.T) {
	v, err := run(t, "double(x) { x -> multiply <- 2 }\n21 -> double")
	require.NoError(t, err)
	assert.Equal(t, float64(42), v.(*values.Number).Value)
}

func TestIfPositiveBranch(t *testing.T) {
	v, err := run(t, `5 -> i positive { "yes" } e { "no" }`)
	require.NoError(t, err)
	assert.Equal(t, "yes", v.(*values.String).Value)
}

func TestIfElifElse(t *testing.T) {
	v, err := run(t, `0 -> i positive { "pos" } ei zero { "zed" } e { "neg" }`)
	require.NoError(t, err)
	assert.Equal(t, "zed", v.(*values.String).Value)
}

func TestMutMergeUnionsObjectKeys(t *testing.T) {
	v, err := run(t, "{a: 1} <~ {a: 2, b: 3} -> keys -> length")
	require.NoError(t, err)
	assert.Equal(t, float64(2), v.(*values.Number).Value)
}

func TestMatchSomeNoneWithBinder(t *testing.T) {
	v, err := run(t, `mut x = 5
match x { some <- v -> { v -> multiply <- 10 } none -> { 0 } }`)
	require.NoError(t, err)
	assert.Equal(t, float64(50), v.(*values.Number).Value)
}

func TestMatchNoArmSatisfiedIsMatchError(t *testing.T) {
	_, err := run(t, `match null { found -> { 1 } }`)
	require.Error(t, err)
	d := err.(*diagnostics.Diagnostic)
	assert.Equal(t, diagnostics.MatchError, d.Kind)
}

func TestReturnStopsFunctionAtOwningCall(t *testing.T) {
	v, err := run(t, `early(x) {
    x -> i positive {
        return <- "stopped early"
    }
    "never reached"
}
5 -> early`)
	require.NoError(t, err)
	assert.Equal(t, "stopped early", v.(*values.String).Value)
}

func TestErrorSurvivesIntoCallResult(t *testing.T) {
	v, err := run(t, `risky(x) {
    error <- "bad input"
}
1 -> risky -> i error { "caught" } e { "fine" }`)
	require.NoError(t, err)
	assert.Equal(t, "caught", v.(*values.String).Value)
}

func TestUndefinedIdentifierIsNameError(t *testing.T) {
	_, err := run(t, "unbound_name")
	require.Error(t, err)
	d := err.(*diagnostics.Diagnostic)
	assert.Equal(t, diagnostics.NameError, d.Kind)
}

func TestTypeMismatchInMultiplyIsTypeError(t *testing.T) {
	_, err := run(t, `"a" -> multiply <- 2`)
	require.Error(t, err)
	d := err.(*diagnostics.Diagnostic)
	assert.Equal(t, diagnostics.TypeError, d.Kind)
}

func TestDivisionByZeroIsArithmeticError(t *testing.T) {
	_, err := run(t, "1 -> divide <- 0")
	require.Error(t, err)
	d := err.(*diagnostics.Diagnostic)
	assert.Equal(t, diagnostics.ArithmeticError, d.Kind)
}

func TestForeachAccumulatesOverMutableBinding(t *testing.T) {
	v, err := run(t, `mut total = 0
fe n in [1, 2, 3] {
    total = total -> add <- n
}
total`)
	require.NoError(t, err)
	assert.Equal(t, float64(6), v.(*values.Number).Value)
}

func TestWhileLoopsUntilConditionFalse(t *testing.T) {
	// No comparison operator exists in the grammar (spec.md §3 only defines
	// +,-,*,/), so "n < 3" is expressed as "3 - n is positive".
	v, err := run(t, `mut n = 0
w ((3 -> subtract <- n) -> i positive { true } e { false }) {
    n = n -> add <- 1
}
n`)
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.(*values.Number).Value)
}

func TestMainFunctionIsCalledAutomaticallyAfterTopLevelItems(t *testing.T) {
	v, err := run(t, `double(x) { x -> multiply <- 2 }
main() { 21 -> double }`)
	require.NoError(t, err)
	assert.Equal(t, float64(42), v.(*values.Number).Value)
}

func TestNoMainFallsBackToFinalItemValue(t *testing.T) {
	v, err := run(t, `double(x) { x -> multiply <- 2 }
21 -> double`)
	require.NoError(t, err)
	assert.Equal(t, float64(42), v.(*values.Number).Value)
}

func TestMissingArgumentsBindToNullRatherThanErroring(t *testing.T) {
	v, err := run(t, `describe(a, b) { b -> i none { "b missing" } e { "b present" } }
1 -> describe`)
	require.NoError(t, err)
	assert.Equal(t, "b missing", v.(*values.String).Value)
}

func TestExcessArgumentsAreStillAnArityError(t *testing.T) {
	_, err := run(t, `one(a) { a }
1 -> one <- 2`)
	require.Error(t, err)
	d := err.(*diagnostics.Diagnostic)
	assert.Equal(t, diagnostics.ArityError, d.Kind)
}

func TestSuccessTreatsNullAndFalseAsNotSuccessful(t *testing.T) {
	v, err := run(t, `null -> i success { "ok" } e { "not ok" }`)
	require.NoError(t, err)
	assert.Equal(t, "not ok", v.(*values.String).Value)

	v, err = run(t, `false -> i success { "ok" } e { "not ok" }`)
	require.NoError(t, err)
	assert.Equal(t, "not ok", v.(*values.String).Value)
}

func TestAddIsVariadicAcrossMultipleConvergedArguments(t *testing.T) {
	v, err := run(t, "1 -> add <- 2 <- 3 <- 4")
	require.NoError(t, err)
	assert.Equal(t, float64(10), v.(*values.Number).Value)
}
