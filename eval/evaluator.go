/*
File    : susumu/eval/evaluator.go

Package eval implements Susumu's tree-walking evaluator (spec.md §4.3):
the central arrow-composition engine (eval_arrow.go), condition-name
dispatch and loop/if evaluation (eval_control.go), match (eval_match.go),
and an optional execution trace (trace.go). Structurally grounded on
akashmaji946-go-mix/eval's Evaluator{Par, Scp, Builtins, Writer} shape,
generalized from its switch-on-AST-type Eval(node) entry point to
Susumu's Item/Expr split.
*/
package eval

import (
	"io"

	"github.com/susumu-lang/susumu/builtin"
	"github.com/susumu-lang/susumu/config"
	"github.com/susumu-lang/susumu/diagnostics"
	"github.com/susumu-lang/susumu/function"
	"github.com/susumu-lang/susumu/parser"
	"github.com/susumu-lang/susumu/scope"
	"github.com/susumu-lang/susumu/values"
)

// Evaluator walks a parsed Program against a Scope, consulting the builtin
// table for names a scope lookup doesn't resolve.
type Evaluator struct {
	Scope    *scope.Scope
	Builtins map[string]*builtin.Builtin
	Writer   io.Writer
	Config   config.Config
	steps    int
	tracing  bool
	trace    []TraceEntry
}

// New builds an Evaluator with a fresh global scope and the builtin table
// selected by cfg.Modules.
func New(w io.Writer, cfg config.Config) *Evaluator {
	return &Evaluator{
		Scope:    scope.New(nil),
		Builtins: builtin.Table(cfg.Modules),
		Writer:   w,
		Config:   cfg,
	}
}

// Run evaluates every top-level item of prog in order. If a user function
// named "main" was defined, it is then called with no arguments and its
// result returned; otherwise Run returns the value of the final item
// (spec.md §4.3.1).
func (e *Evaluator) Run(prog *parser.Program) (values.Value, error) {
	var last values.Value = values.NullValue
	for _, item := range prog.Items {
		v, err := e.EvalItem(item, e.Scope)
		if err != nil {
			return nil, err
		}
		last = v
	}
	if main, ok := e.Scope.LookUp("main"); ok {
		if fn, ok := main.(*function.Function); ok {
			return e.callUserFunction(fn, nil)
		}
	}
	return last, nil
}

func (e *Evaluator) step(pos parser.Pos) error {
	if e.Config.StepBudget <= 0 {
		return nil
	}
	e.steps++
	if e.steps > e.Config.StepBudget {
		return diagnostics.New(diagnostics.ResourceError, pos.Line, pos.Column, "step budget of %d exceeded", e.Config.StepBudget)
	}
	return nil
}

// EvalItem evaluates one top-level or block-level Item.
func (e *Evaluator) EvalItem(item parser.Item, env *scope.Scope) (values.Value, error) {
	if err := e.step(item.Position()); err != nil {
		return nil, err
	}
	switch it := item.(type) {
	case *parser.FunctionDef:
		fn := &function.Function{Name: it.Name, Params: it.Params, Body: it.Body, Env: env}
		env.Bind(it.Name, fn, false)
		return values.NullValue, nil
	case *parser.Assignment:
		val, err := e.EvalExpr(it.Value, env)
		if err != nil {
			return nil, err
		}
		// `mut x = ...` always declares a fresh mutable binding in the
		// current scope. Plain `x = ...` reassigns an existing mutable
		// binding wherever it was declared (so a foreach/while body can
		// update an accumulator bound outside its own child scope) and
		// only falls back to a fresh (immutable) declaration when no such
		// binding exists yet.
		if it.Mutable {
			env.Bind(it.Target, val, true)
			return val, nil
		}
		switch env.Assign(it.Target, val) {
		case scope.Assigned:
			return val, nil
		case scope.Immutable:
			pos := it.Position()
			return nil, diagnostics.New(diagnostics.NameError, pos.Line, pos.Column, "%q is not mutable", it.Target)
		default: // scope.Undefined
			env.Bind(it.Target, val, false)
			return val, nil
		}
	case *parser.ExprStmt:
		return e.EvalExpr(it.Expr, env)
	default:
		return nil, diagnostics.New(diagnostics.ControlError, item.Position().Line, item.Position().Column, "unhandled item type %T", item)
	}
}

// EvalBlock runs every item of b in a fresh child scope of env, in order.
// It stops and propagates immediately if an item evaluates to a
// ReturnSignal or ErrorSignal (spec.md §4.3.3): both are early-exit
// signals that must reach the owning function call unobstructed by any
// intervening if/foreach/while/match block.
func (e *Evaluator) EvalBlock(b *parser.Block, env *scope.Scope) (values.Value, error) {
	child := scope.New(env)
	var last values.Value = values.NullValue
	for _, item := range b.Items {
		v, err := e.EvalItem(item, child)
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

// CallFunction invokes any Callable (user Function or Builtin) with args,
// implementing builtin.Runtime so domain builtins can call back into
// Susumu function values (e.g. a future higher-order builtin).
func (e *Evaluator) CallFunction(callee values.Value, args []values.Value) (values.Value, error) {
	switch fn := callee.(type) {
	case *function.Function:
		return e.callUserFunction(fn, args)
	case *builtin.Builtin:
		// Builtins report diagnostics with Line/Column left at 0; the caller
		// (finalize, evalCall) stamps in the real call-site position.
		return fn.Callback(e, e.Writer, args)
	default:
		return nil, diagnostics.New(diagnostics.TypeError, 0, 0, "value of kind %s is not callable", callee.Kind())
	}
}

// callUserFunction binds args to fn's declared parameters (spec.md §4.3.3):
// excess arguments are an arity error, missing trailing parameters bind to
// Null rather than erroring.
func (e *Evaluator) callUserFunction(fn *function.Function, args []values.Value) (values.Value, error) {
	if len(args) > len(fn.Params) {
		return nil, diagnostics.New(diagnostics.ArityError, 0, 0, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	callScope := scope.New(fn.Env)
	for i, param := range fn.Params {
		if i < len(args) {
			callScope.Bind(param, args[i], false)
		} else {
			callScope.Bind(param, values.NullValue, false)
		}
	}
	result, err := e.EvalBlock(fn.Body, callScope)
	if err != nil {
		return nil, err
	}
	if ret, ok := result.(*values.ReturnSignal); ok {
		return ret.Value, nil
	}
	return result, nil
}

// resolveCallee looks up name first as a scope binding (user functions and
// any value holding a function), falling back to the builtin table.
func (e *Evaluator) resolveCallee(name string, env *scope.Scope) (values.Value, error) {
	if v, ok := env.LookUp(name); ok {
		return v, nil
	}
	if b, ok := e.Builtins[name]; ok {
		return b, nil
	}
	return nil, diagnostics.New(diagnostics.NameError, 0, 0, "undefined name %q", name)
}
