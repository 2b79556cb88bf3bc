/*
File    : susumu/eval/eval_arrow.go

The arrow-composition engine (spec.md §4.3.2): evaluating an ArrowChain
walks its steps left to right over two pieces of state — the current
flowing value and a pending call being assembled. `->` finalizes whatever
call is pending and opens a new one with the current value as its first
argument; `<-` appends another evaluated argument to the call already
being assembled; `<~` merges two Object values directly, with no call
involved at all. This is not currying: pendingCall is accumulator state
on the evaluator's walk, not a curried function value.
*/
package eval

import (
	"github.com/susumu-lang/susumu/diagnostics"
	"github.com/susumu-lang/susumu/parser"
	"github.com/susumu-lang/susumu/scope"
	"github.com/susumu-lang/susumu/values"
)

// pendingCall is the call being assembled by a run of `->`/`<-` steps,
// not yet invoked.
type pendingCall struct {
	Callee values.Value
	Args   []values.Value
}

func (e *Evaluator) evalArrowChain(chain *parser.ArrowChain, env *scope.Scope) (values.Value, error) {
	current, err := e.EvalExpr(chain.Head, env)
	if err != nil {
		return nil, err
	}

	var pending *pendingCall

	for _, step := range chain.Steps {
		pos := step.Operand.Position()

		switch step.Direction {
		case parser.Forward:
			if pending != nil {
				result, err := e.finalize(pending, pos)
				if err != nil {
					return nil, err
				}
				current = result
				pending = nil
			}
			// An `i`/`ei`/`e` operand is tested against the chain's current
			// flowing value rather than resolved as a callee (spec.md §4.3.4).
			if ifExpr, ok := step.Operand.(*parser.If); ok {
				result, err := e.evalIf(ifExpr, env, current)
				if err != nil {
					return nil, err
				}
				current = result
				e.recordTrace(pos, step.Direction, current, current)
				continue
			}
			callee, err := e.EvalExpr(step.Operand, env)
			if err != nil {
				return nil, err
			}
			if _, ok := callee.(values.Callable); !ok {
				return nil, diagnostics.New(diagnostics.TypeError, pos.Line, pos.Column, "cannot pipe into value of kind %s", callee.Kind())
			}
			pending = &pendingCall{Callee: callee, Args: []values.Value{current}}
			e.recordTrace(pos, step.Direction, callee, current)

		case parser.Backward:
			arg, err := e.EvalExpr(step.Operand, env)
			if err != nil {
				return nil, err
			}
			if pending == nil {
				return nil, diagnostics.New(diagnostics.ControlError, pos.Line, pos.Column, "'<-' has no pending call to converge into")
			}
			pending.Args = append(pending.Args, arg)
			e.recordTrace(pos, step.Direction, arg, current)

		case parser.Mut:
			if pending != nil {
				result, err := e.finalize(pending, pos)
				if err != nil {
					return nil, err
				}
				current = result
				pending = nil
			}
			rhs, err := e.EvalExpr(step.Operand, env)
			if err != nil {
				return nil, err
			}
			lhsObj, lok := values.Unwrap(current).(*values.Object)
			rhsObj, rok := values.Unwrap(rhs).(*values.Object)
			if !lok || !rok {
				return nil, diagnostics.New(diagnostics.TypeError, pos.Line, pos.Column, "'<~' requires two objects, got %s and %s", current.Kind(), rhs.Kind())
			}
			current = lhsObj.Merge(rhsObj)
			e.recordTrace(pos, step.Direction, rhs, current)
		}
	}

	if pending != nil {
		result, err := e.finalize(pending, chain.Position())
		if err != nil {
			return nil, err
		}
		current = result
	}
	return current, nil
}

// finalize invokes a pending call, stamping the diagnostic's position only
// when the callee itself didn't know its call site (builtins report
// Line/Column 0). A diagnostic already carrying a real position came from
// inside a user function's own body and must keep it.
func (e *Evaluator) finalize(p *pendingCall, pos parser.Pos) (values.Value, error) {
	v, err := e.CallFunction(p.Callee, p.Args)
	if d, ok := err.(*diagnostics.Diagnostic); ok && d.Line == 0 && d.Column == 0 {
		return nil, diagnostics.New(d.Kind, pos.Line, pos.Column, "%s", d.Message)
	}
	return v, err
}
