/*
File    : susumu/eval/eval_control.go

Condition-name dispatch (spec.md §4.4) and the if/foreach/while control
constructs that use it. If never carries its own scrutinee expression —
it always tests the value flowing in from its enclosing arrow chain
(evalArrowChain passes it explicitly); used anywhere else (e.g. as a
chain's head) its subject defaults to Null.
*/
package eval

import (
	"github.com/susumu-lang/susumu/diagnostics"
	"github.com/susumu-lang/susumu/lexer"
	"github.com/susumu-lang/susumu/parser"
	"github.com/susumu-lang/susumu/scope"
	"github.com/susumu-lang/susumu/values"
)

// matchCondition reports whether subject satisfies the named condition
// (spec.md §4.4's closed table of ten condition names).
func matchCondition(name lexer.TokenType, subject values.Value) bool {
	if name == lexer.KW_ERROR {
		return values.IsErrorFlagged(subject)
	}
	inner := values.Unwrap(subject)
	switch name {
	case lexer.KW_SUCCESS, lexer.KW_VALID:
		return values.Truthy(inner) && !values.IsErrorFlagged(subject)
	case lexer.KW_POSITIVE:
		n, ok := inner.(*values.Number)
		return ok && n.Value > 0
	case lexer.KW_NEGATIVE:
		n, ok := inner.(*values.Number)
		return ok && n.Value < 0
	case lexer.KW_ZERO:
		n, ok := inner.(*values.Number)
		return ok && n.Value == 0
	case lexer.KW_EMPTY:
		switch v := inner.(type) {
		case *values.Array:
			return len(v.Elements) == 0
		case *values.String:
			return len(v.Value) == 0
		case *values.Object:
			return len(v.Keys) == 0
		case *values.Null:
			return true
		}
		return false
	case lexer.KW_FOUND:
		_, isNull := inner.(*values.Null)
		return !isNull
	case lexer.KW_SOME:
		_, isNull := inner.(*values.Null)
		return !isNull
	case lexer.KW_NONE:
		_, isNull := inner.(*values.Null)
		return isNull
	default:
		return false
	}
}

// evalIf selects the first matching branch (Then, then each Elif in order)
// and falls back to Else, evaluating the winning block against subject. No
// branch matching and no Else present evaluates to Null.
func (e *Evaluator) evalIf(node *parser.If, env *scope.Scope, subject values.Value) (values.Value, error) {
	if matchCondition(node.Then.CondName, subject) {
		return e.EvalBlock(node.Then.Body, env)
	}
	for _, elif := range node.Elifs {
		if matchCondition(elif.CondName, subject) {
			return e.EvalBlock(elif.Body, env)
		}
	}
	if node.Else != nil {
		return e.EvalBlock(node.Else, env)
	}
	return values.NullValue, nil
}

// evalForeach iterates an Array, binding Var to each element in a fresh
// child scope per iteration. A ReturnSignal/ErrorSignal produced by the
// body stops the loop and propagates immediately.
func (e *Evaluator) evalForeach(node *parser.Foreach, env *scope.Scope) (values.Value, error) {
	iterable, err := e.EvalExpr(node.Iterable, env)
	if err != nil {
		return nil, err
	}
	arr, ok := values.Unwrap(iterable).(*values.Array)
	if !ok {
		pos := node.Position()
		return nil, diagnostics.New(diagnostics.TypeError, pos.Line, pos.Column, "'fe' requires an array, got %s", iterable.Kind())
	}

	var last values.Value = values.NullValue
	for _, el := range arr.Elements {
		iterScope := scope.New(env)
		iterScope.Bind(node.Var, el, false)
		v, err := e.EvalBlock(node.Body, iterScope)
		if err != nil {
			return nil, err
		}
		last = v
		if values.IsSignal(v) {
			return last, nil
		}
	}
	return last, nil
}

// evalWhile evaluates Body while Cond is truthy (spec.md §3.3's Truthy
// notion, not a condition-name check).
func (e *Evaluator) evalWhile(node *parser.While, env *scope.Scope) (values.Value, error) {
	var last values.Value = values.NullValue
	for {
		cond, err := e.EvalExpr(node.Cond, env)
		if err != nil {
			return nil, err
		}
		if !values.Truthy(values.Unwrap(cond)) {
			break
		}
		if err := e.step(node.Position()); err != nil {
			return nil, err
		}
		v, err := e.EvalBlock(node.Body, env)
		if err != nil {
			return nil, err
		}
		last = v
		if values.IsSignal(v) {
			return last, nil
		}
	}
	return last, nil
}
