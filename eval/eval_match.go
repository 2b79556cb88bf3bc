/*
File    : susumu/eval/eval_match.go

Match evaluation (spec.md §4.3.4, P5): the scrutinee is evaluated once,
then tested against each arm's condition name in order; the first match
wins, binding the scrutinee (unwrapped of any signal) to the arm's
binder name if one was given. No arm matching is a MatchError — Susumu
match is exhaustive by construction, not by a compiler check.
*/
package eval

import (
	"github.com/susumu-lang/susumu/diagnostics"
	"github.com/susumu-lang/susumu/parser"
	"github.com/susumu-lang/susumu/scope"
	"github.com/susumu-lang/susumu/values"
)

func (e *Evaluator) evalMatch(node *parser.Match, env *scope.Scope) (values.Value, error) {
	subject, err := e.EvalExpr(node.Scrutinee, env)
	if err != nil {
		return nil, err
	}

	for _, arm := range node.Arms {
		if !matchCondition(arm.PatternName, subject) {
			continue
		}
		armScope := scope.New(env)
		if arm.Bind != "" {
			armScope.Bind(arm.Bind, values.Unwrap(subject), false)
		}
		return e.EvalBlock(arm.Body, armScope)
	}

	pos := node.Position()
	return nil, diagnostics.New(diagnostics.MatchError, pos.Line, pos.Column, "no match arm satisfied by a value of kind %s", subject.Kind())
}
